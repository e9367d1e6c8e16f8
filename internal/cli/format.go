// Package cli renders plan projections for terminal output and reads plan files.
package cli

import (
	"fmt"
	"math"
	"strings"

	"github.com/dafibh/nivesh/nivesh-backend/internal/planner"
	"github.com/shopspring/decimal"
)

// FormatINR formats a rupee amount rounded to whole rupees with Indian digit grouping.
// e.g., 1234567 -> "₹12,34,567"
func FormatINR(amount float64) string {
	if math.IsInf(amount, 0) || math.IsNaN(amount) {
		return "n/a"
	}

	rounded := decimal.NewFromFloat(amount).Round(0)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
	}
	return sign + "₹" + groupIndian(rounded.Abs().String())
}

// groupIndian groups the last three digits, then every two
func groupIndian(s string) string {
	if len(s) <= 3 {
		return s
	}

	head, tail := s[:len(s)-3], s[len(s)-3:]
	var parts []string
	for len(head) > 2 {
		parts = append([]string{head[len(head)-2:]}, parts...)
		head = head[:len(head)-2]
	}
	if head != "" {
		parts = append([]string{head}, parts...)
	}
	return strings.Join(parts, ",") + "," + tail
}

// FormatPercent formats a percentage value with one decimal.
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}

// FormatRate formats an annual rate.
func FormatRate(r planner.AnnualPercentRate) string {
	return FormatPercent(float64(r))
}

// FormatContribution renders a monthly contribution; unreachable ones read as deadline passed.
func FormatContribution(v float64) string {
	if planner.IsUnreachable(v) {
		return "deadline passed"
	}
	return FormatINR(v) + "/mo"
}

// FormatRequiredReturn renders the annual return needed to hit a goal.
func FormatRequiredReturn(rr *planner.RequiredReturn) string {
	if rr == nil {
		return "-"
	}
	if rr.AtCeiling {
		return "> " + FormatRate(rr.Rate)
	}
	return FormatRate(rr.Rate)
}
