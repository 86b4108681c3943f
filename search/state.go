package search

// State is the state of a level at a given moment.
// A level goes from Unbuilt to Building to Frozen, and never back.
type State byte

const (
	// Unbuilt means the level was not computed yet.
	Unbuilt = State(iota)
	// Building means the level is being computed from all shorter levels.
	Building
	// Frozen means the level is complete and will never be modified again.
	Frozen
)

func (s State) String() string {
	switch s {
	case Unbuilt:
		return "UNBUILT"
	case Building:
		return "BUILDING"
	case Frozen:
		return "FROZEN"
	default:
		panic("invalid state")
	}
}
