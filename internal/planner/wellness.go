package planner

import "math"

// Component weights of the wellness score
const (
	SavingsWeight    = 40
	EmergencyWeight  = 30
	RetirementWeight = 30
)

// ScoreBand is a qualitative reading of a wellness score
type ScoreBand string

const (
	BandExcellent ScoreBand = "excellent"
	BandGood      ScoreBand = "good"
	BandFair      ScoreBand = "fair"
	BandNeedsWork ScoreBand = "needs_work"
)

var bandMessages = map[ScoreBand]string{
	BandExcellent: "Excellent! You're in a strong financial position.",
	BandGood:      "Good job! You're on the right track.",
	BandFair:      "There's room for improvement. Keep working at it!",
	BandNeedsWork: "Let's work on a plan to improve your financial health.",
}

// Message returns the user-facing message for the band
func (b ScoreBand) Message() string {
	return bandMessages[b]
}

// BandFor maps a score onto its band
func BandFor(score int) ScoreBand {
	switch {
	case score > 75:
		return BandExcellent
	case score > 50:
		return BandGood
	case score > 25:
		return BandFair
	default:
		return BandNeedsWork
	}
}

// Wellness is the composite wellness score with its components
type Wellness struct {
	Score            int
	SavingsRate      float64
	SavingsPoints    float64
	EmergencyPoints  float64
	RetirementPoints float64
	Band             ScoreBand
}

// WellnessScore scores the snapshot from 0 to 100
func WellnessScore(s Snapshot) Wellness {
	income := s.MonthlyIncome()
	savingsRate := 0.0
	if income > 0 {
		savingsRate = s.MonthlySavings() / income
	}

	w := Wellness{
		SavingsRate:     savingsRate,
		SavingsPoints:   savingsPoints(savingsRate),
		EmergencyPoints: goalPoints(s, GoalEmergencyFund, EmergencyWeight),
	}
	w.RetirementPoints = goalPoints(s, GoalRetirement, RetirementWeight)
	w.Score = int(math.Round(w.SavingsPoints + w.EmergencyPoints + w.RetirementPoints))
	w.Band = BandFor(w.Score)
	return w
}

// savingsPoints is a step function of the savings rate, not a continuous one
func savingsPoints(rate float64) float64 {
	switch {
	case rate > 0.3:
		return SavingsWeight
	case rate > 0.2:
		return 30
	case rate > 0.1:
		return 20
	case rate > 0:
		return 10
	default:
		return 0
	}
}

func goalPoints(s Snapshot, id string, weight float64) float64 {
	g, ok := s.Goal(id)
	if !ok || g.TargetAmount <= 0 {
		return 0
	}
	return math.Min(g.CurrentAmount/g.TargetAmount, 1) * weight
}
