package internal

import (
	"fmt"
	"strings"

	"github.com/NSBTW/courier/internal/contract"
)

// LogSendHeader prints the run parameters before a batch dispatch.
func LogSendHeader(cfg *contract.Config) {
	fmt.Println("Courier dispatch:")

	labels := []string{"Items:", "Outbox:", "Formats:", "Freshness:", "Workers:", "Key:"}
	values := []any{
		cfg.ItemsPath,
		cfg.OutboxPath,
		strings.Join(cfg.FormatList(), ", "),
		fmt.Sprintf("%d month(s)", cfg.FreshnessMonths),
		cfg.Workers,
		cfg.KeyID,
	}

	// Find the longest label for consistent padding
	maxLabelLen := 0
	for _, label := range labels {
		if len(label) > maxLabelLen {
			maxLabelLen = len(label)
		}
	}
	for i, label := range labels {
		fmt.Printf("  %-*s %v\n", maxLabelLen+1, label, values[i])
	}
	fmt.Println()
}
