package interfaces

// Input is what a front end collected since the previous frame.
type Input struct {
	Actions int  // trigger edges, not held keys
	Quit    bool // window closed or quit key
}

// Frontend is a host that paces nothing itself: loop.Run asks it for input
// and hands it a snapshot to draw once per tick.
type Frontend interface {
	Renderer
	Poll() Input
}
