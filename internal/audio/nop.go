package audio

// Nop plays nothing. Used when audio is disabled or failed to start.
type Nop struct{}

func (Nop) PlayClick()   {}
func (Nop) StartMusic()  {}
func (Nop) Close() error { return nil }
