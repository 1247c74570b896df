package core

import (
	"context"
	"sync"
	"time"

	"github.com/NSBTW/courier/internal/contract"
	"github.com/NSBTW/courier/schema"
)

// BatchSender runs each item of a batch through the recognize, validate,
// sign and transmit pipeline. Items are processed independently: one item's
// failure never short-circuits or skips the rest of the batch.
type BatchSender struct {
	recognizer  contract.Recognizer
	signer      contract.Signer
	transmitter contract.Transmitter

	formats         map[schema.FormatVersion]struct{}
	freshnessMonths int
	workers         int

	now func() time.Time // Overridable for tests
}

// NewBatchSender builds a sender from its collaborators and configuration.
// The format allow-list and the freshness window come from cfg; workers
// controls how many items are processed concurrently.
func NewBatchSender(recognizer contract.Recognizer, signer contract.Signer, transmitter contract.Transmitter, cfg *contract.Config) *BatchSender {
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	return &BatchSender{
		recognizer:      recognizer,
		signer:          signer,
		transmitter:     transmitter,
		formats:         cfg.AcceptedFormats,
		freshnessMonths: cfg.FreshnessMonths,
		workers:         workers,
		now:             time.Now,
	}
}

// SendAll processes every item independently and returns the subset that
// failed any pipeline gate, preserving input relative order.
//
// Items are fanned out to a worker pool. Each worker records its outcome in a
// per-index slot, so the skipped sequence is normalized back to input order
// regardless of completion order.
func (s *BatchSender) SendAll(ctx context.Context, items []schema.Item, sctx schema.SigningContext) schema.BatchResult {
	start := time.Now()

	sent := make([]bool, len(items))
	indexCh := make(chan int, len(items))
	var wg sync.WaitGroup

	// Start worker pool
	for range s.workers {
		wg.Go(func() {
			for idx := range indexCh {
				sent[idx] = s.trySend(ctx, items[idx], sctx)
			}
		})
	}

	// Send item indexes to the worker channel
	for idx := range items {
		indexCh <- idx
	}
	close(indexCh)
	wg.Wait()

	result := schema.BatchResult{Attempted: len(items)}
	for idx, item := range items {
		if sent[idx] {
			result.Sent++
		} else {
			result.Skipped = append(result.Skipped, item)
		}
	}
	result.Duration = time.Since(start)
	return result
}

// trySend runs a single item through the four pipeline gates. Each gate is a
// hard stop: the first negative outcome skips the item. There are no retries
// within a single batch run.
func (s *BatchSender) trySend(ctx context.Context, item schema.Item, sctx schema.SigningContext) bool {
	// Gate 1: recognition
	parsed, ok := s.recognizer.TryRecognize(ctx, item)
	if !ok {
		return false
	}

	// Gate 2: format allow-list
	if _, ok := s.formats[parsed.Format]; !ok {
		return false
	}

	// Gate 3: freshness window
	if !s.isFresh(parsed.Created) {
		return false
	}

	// Gate 4: sign and transmit
	signed := s.signer.Sign(parsed.Content, sctx)
	return s.transmitter.TrySend(ctx, signed)
}

// isFresh reports whether created plus the freshness window is strictly after
// the current time. The window is a calendar-month count evaluated with
// time.Time.AddDate, which normalizes month-end overflow forward
// (Jan 31 + 1 month lands on Mar 2 or Mar 3).
func (s *BatchSender) isFresh(created time.Time) bool {
	return created.AddDate(0, s.freshnessMonths, 0).After(s.now())
}
