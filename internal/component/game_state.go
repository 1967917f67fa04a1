package component

// ResetKind says which transition reset the ring last.
type ResetKind int

const (
	ResetNone ResetKind = iota
	ResetHit
	ResetLoss
)

func (k ResetKind) String() string {
	switch k {
	case ResetHit:
		return "hit"
	case ResetLoss:
		return "loss"
	default:
		return "none"
	}
}
