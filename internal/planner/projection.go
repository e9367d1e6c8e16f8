package planner

// ProjectionYears is the horizon of the wealth projection
const ProjectionYears = 30

// ProjectionPoint is the projected net worth at the end of a calendar year
type ProjectionPoint struct {
	Year  int
	Value float64
}

// ProjectWealth projects net worth for ProjectionYears years after baseYear.
// Point i (1-based) is for year baseYear+i.
func ProjectWealth(s Snapshot, baseYear int) []ProjectionPoint {
	return ProjectWealthN(s, baseYear, ProjectionYears)
}

// ProjectWealthN projects net worth for the given number of years after baseYear.
// Capital starts at the sum of goal balances and compounds monthly at the investment
// return rate, with monthly net savings added after each month's growth. Negative
// savings shrink capital and values may go below zero.
func ProjectWealthN(s Snapshot, baseYear, years int) []ProjectionPoint {
	if years <= 0 {
		return []ProjectionPoint{}
	}

	rate := float64(s.InvestmentReturnRate.Monthly())
	savings := s.MonthlySavings()
	capital := s.InitialCapital()

	points := make([]ProjectionPoint, 0, years)
	for year := 1; year <= years; year++ {
		for month := 0; month < 12; month++ {
			capital = capital*(1+rate) + savings
		}
		points = append(points, ProjectionPoint{
			Year:  baseYear + year,
			Value: capital,
		})
	}

	return points
}
