package puzzle

import "strconv"

// Stage selects one of the two parts of a day's puzzle.
type Stage uint8

// Known stages.
const (
	First Stage = iota
	Second
)

// ParseStage accepts the numeric ("0", "1") or word ("first", "second")
// forms. Matching is case-sensitive.
func ParseStage(text string) (Stage, error) {
	switch text {
	case "0", "first":
		return First, nil
	case "1", "second":
		return Second, nil
	default:
		return 0, &StageParseError{Text: text}
	}
}

func (s Stage) String() string {
	switch s {
	case First:
		return "first"
	case Second:
		return "second"
	default:
		return "stage(" + strconv.Itoa(int(s)) + ")"
	}
}
