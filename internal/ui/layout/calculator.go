// Package layout provides pure functions for UI dimension calculations.
package layout

// ContentOpts contains the parameters needed to calculate content height.
type ContentOpts struct {
	HeaderHeight int
	JobBarHeight int // 0 if no uploads are in flight
	StatusHeight int
}

// ContentHeight calculates the available height for the active view.
// This is the terminal height minus header, job bar and status line,
// never negative.
func ContentHeight(windowHeight int, opts ContentOpts) int {
	height := windowHeight
	height -= opts.HeaderHeight
	height -= opts.JobBarHeight
	height -= opts.StatusHeight
	return max(height, 0)
}

