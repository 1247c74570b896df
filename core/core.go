// Package core has core logic for payload dispatch and registry resolution.
package core

import (
	"context"
	"fmt"

	"github.com/NSBTW/courier/internal"
	"github.com/NSBTW/courier/internal/contract"
	"github.com/NSBTW/courier/schema"
)

// ExecuteCourierSend runs the batch dispatch pipeline over the items folder
// and prints the dispatch report. It serves as the main entry point for the
// 'send' command. A batch with skipped items returns an error so the CLI can
// exit non-zero for CI gating.
func ExecuteCourierSend(ctx context.Context, cfg *contract.Config) error {
	if len(cfg.SigningKey) == 0 {
		return fmt.Errorf("signing-key is required (set --signing-key or COURIER_SIGNING_KEY)")
	}

	internal.LogSendHeader(cfg)

	items, err := internal.LoadItems(cfg.ItemsPath)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return fmt.Errorf("no items found in %s", cfg.ItemsPath)
	}

	sender := NewBatchSender(
		internal.NewEnvelopeRecognizer(),
		internal.NewHMACSigner(),
		internal.NewOutboxTransmitter(cfg.OutboxPath),
		cfg,
	)
	result := sender.SendAll(ctx, items, cfg.SigningContext())

	rows := buildItemReports(items, result)
	if err := internal.PrintDispatchReport(rows, &result, cfg); err != nil {
		return err
	}

	if len(result.Skipped) > 0 {
		return fmt.Errorf("%d of %d items skipped", len(result.Skipped), result.Attempted)
	}
	return nil
}

// ExecuteCourierResolve resolves each key through a memoizing cache in front
// of the local registry and prints the resolution report. It serves as the
// main entry point for the 'resolve' command.
func ExecuteCourierResolve(ctx context.Context, cfg *contract.Config, keys []string) error {
	cache := NewLookupCache(internal.NewLocalRegistry(cfg.RegistryPath))

	rows := make([]schema.Resolution, 0, len(keys))
	for _, key := range keys {
		value, found := cache.Get(ctx, key)
		rows = append(rows, schema.Resolution{
			Key:       key,
			Found:     found,
			SizeBytes: len(value),
		})
	}

	return internal.PrintResolveReport(rows, cfg)
}

// ExecuteCourierFormats displays the accepted envelope formats and the
// freshness window. This is a static display that does not touch any items.
func ExecuteCourierFormats(cfg *contract.Config) error {
	return internal.PrintFormatDefinitions(cfg)
}

// buildItemReports derives per-item report rows from the batch result.
// Both the input and the skipped subset preserve input order, so a single
// forward walk over the skipped list recovers each item's terminal state.
func buildItemReports(items []schema.Item, result schema.BatchResult) []schema.ItemReport {
	rows := make([]schema.ItemReport, 0, len(items))
	next := 0
	for _, item := range items {
		status := schema.SentStatus
		if next < len(result.Skipped) && result.Skipped[next].Name == item.Name {
			status = schema.SkippedStatus
			next++
		}
		rows = append(rows, schema.ItemReport{
			Name:      item.Name,
			SizeBytes: len(item.Content),
			Status:    status,
		})
	}
	return rows
}
