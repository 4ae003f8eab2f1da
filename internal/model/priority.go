package model

// Priority orders coordinator recommendations during arbitration.
// Lower values outrank higher ones.
type Priority int

const (
	PriorityCritical Priority = iota // life-threatening situations
	PriorityHigh                     // important tactical decisions
	PriorityMedium                   // normal operations
	PriorityLow                      // optional optimizations
	PriorityIdle                     // background tasks
)

// String returns a human-readable priority name.
func (p Priority) String() string {
	switch p {
	case PriorityCritical:
		return "CRITICAL"
	case PriorityHigh:
		return "HIGH"
	case PriorityMedium:
		return "MEDIUM"
	case PriorityLow:
		return "LOW"
	case PriorityIdle:
		return "IDLE"
	default:
		return "UNKNOWN"
	}
}
