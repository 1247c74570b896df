package internal

import (
	"os"

	"github.com/NSBTW/courier/internal/contract"
	"golang.org/x/term"
)

// GetMaxNameWidth calculates the maximum width for item names or keys in
// table output based on terminal width.
func GetMaxNameWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default for narrow terminals and CI
			termWidth = 80
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for rank, size and status columns with table formatting
	available := termWidth - 35
	if available < 15 {
		return 15
	}
	if available > 70 {
		return 70
	}
	return available
}
