package sneak

import "fmt"

func (s State) String() string {
	switch s {
	case StateAwaitingKey:
		return "awaiting-key"
	case StateCycling:
		return "cycling"
	case StateLabeling:
		return "labeling"
	case StateDone:
		return "done"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

func (k ActionKind) String() string {
	switch k {
	case ActionStay:
		return "stay"
	case ActionSelect:
		return "select"
	case ActionExit:
		return "exit"
	}
	return fmt.Sprintf("ActionKind(%d)", int(k))
}

func (a Action) String() string {
	if a.Kind != ActionSelect {
		return a.Kind.String()
	}
	return fmt.Sprintf("select %d:%d", a.Match.Line, a.Match.Byte)
}

// Selected returns the selected match, if the action carries one.
func (a Action) Selected() (int, int, bool) {
	if a.Kind != ActionSelect {
		return 0, 0, false
	}
	return a.Match.Offset, a.Match.End(), true
}
