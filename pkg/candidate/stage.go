package candidate

import (
	"fmt"
	"strings"
)

// Stage is a recruiter-facing pipeline label.
type Stage string

const (
	StageNew       Stage = "new"
	StageReviewing Stage = "reviewing"
	StageDecision  Stage = "decision"
)

var stageTitles = map[Stage]string{
	StageNew:       "New Applications",
	StageReviewing: "Under Review",
	StageDecision:  "Decision Stage",
}

// Stages returns the closed stage set in board order.
func Stages() []Stage {
	return []Stage{StageNew, StageReviewing, StageDecision}
}

// InitialStage is assigned at creation and nowhere else.
func InitialStage() Stage { return StageNew }

func (s Stage) Valid() bool {
	_, ok := stageTitles[s]
	return ok
}

// Title is the column heading shown on the board.
func (s Stage) Title() string {
	return stageTitles[s]
}

// ParseStage accepts the stage id case-insensitively.
func ParseStage(v string) (Stage, error) {
	s := Stage(strings.ToLower(strings.TrimSpace(v)))
	if !s.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStage, v)
	}
	return s, nil
}
