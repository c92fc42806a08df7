package task

type Priority string

const (
	PriorityStandard Priority = "standard"
	PriorityHigh     Priority = "high-priority"
	PriorityTop      Priority = "top-priority"
)

var AllPriorities = []Priority{
	PriorityStandard,
	PriorityHigh,
	PriorityTop,
}

func (p Priority) IsValid() bool {
	for _, v := range AllPriorities {
		if p == v {
			return true
		}
	}
	return false
}

// ParsePriority maps anything unrecognised, including the empty string, to
// PriorityStandard.
func ParsePriority(s string) Priority {
	p := Priority(s)
	if p.IsValid() {
		return p
	}
	return PriorityStandard
}
