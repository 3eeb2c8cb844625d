package screen

// State is the lifecycle state of a Controller
type State int

const (
	// StateIdle is the initial state; the list is empty
	StateIdle State = iota
	// StateLoaded means the fetched list is displayed
	StateLoaded
	// StateFailed means the fetch failed and the list stays empty
	StateFailed
)

// String returns the string representation of the state
func (s State) String() string {
	switch s {
	case StateIdle:
		return "IDLE"
	case StateLoaded:
		return "LOADED"
	case StateFailed:
		return "FAILED"
	default:
		return "UNKNOWN"
	}
}
