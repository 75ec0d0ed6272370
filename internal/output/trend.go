package output

import "fmt"

// TrendArrow returns a styled trend indicator for an integer delta
// between two scans. Positive shows an up arrow, negative down, zero a
// dash. The higherIsBetter parameter picks the color.
func TrendArrow(delta int, higherIsBetter bool) string {
	if delta == 0 {
		return StyleMuted.Render("─")
	}

	isPositive := delta > 0
	isImproved := (isPositive && higherIsBetter) || (!isPositive && !higherIsBetter)

	var arrow string
	if isPositive {
		arrow = fmt.Sprintf("▲ +%d", delta)
	} else {
		arrow = fmt.Sprintf("▼ %d", delta)
	}

	if isImproved {
		return StyleSuccess.Render(arrow)
	}
	return StyleError.Render(arrow)
}
