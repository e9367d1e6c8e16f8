package planner

// Status is the progress label shown for a goal
type Status string

const (
	StatusAchieved       Status = "achieved"
	StatusOnTrack        Status = "on_track"
	StatusNeedsAttention Status = "needs_attention"
	StatusJustStarted    Status = "just_started"
)

var statusLabels = map[Status]string{
	StatusAchieved:       "Achieved",
	StatusOnTrack:        "On Track",
	StatusNeedsAttention: "Needs Attention",
	StatusJustStarted:    "Just Started",
}

// Label returns the display label of the status
func (s Status) Label() string {
	return statusLabels[s]
}

// GoalProgress returns progress toward the target in percent.
// A zero target counts as fully achieved.
func GoalProgress(g Goal) float64 {
	if g.TargetAmount <= 0 {
		return 100
	}
	return g.CurrentAmount / g.TargetAmount * 100
}

// StatusFor maps a progress percentage onto a status
func StatusFor(progress float64) Status {
	switch {
	case progress >= 100:
		return StatusAchieved
	case progress > 70:
		return StatusOnTrack
	case progress > 30:
		return StatusNeedsAttention
	default:
		return StatusJustStarted
	}
}

// GoalStatus returns the status of a goal from its own progress
func GoalStatus(g Goal) Status {
	return StatusFor(GoalProgress(g))
}
