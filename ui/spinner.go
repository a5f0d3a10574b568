package ui

import (
	"github.com/briandowns/spinner"
)

// DefaultSpinnerCharsetIndex is the charset index used across views.
const DefaultSpinnerCharsetIndex = 14

// SpinnerCharAt returns the spinner character for the given frame index.
// Falls back to an ellipsis if spinner charset is not available.
func SpinnerCharAt(frame int) string {
	frames := spinner.CharSets[DefaultSpinnerCharsetIndex]
	if len(frames) == 0 {
		return "…"
	}
	return frames[frame%len(frames)]
}

// SpinnerFrameCount reports how many frames the default charset has.
func SpinnerFrameCount() int {
	return len(spinner.CharSets[DefaultSpinnerCharsetIndex])
}
