// Package parquet provides data structures and functions for exporting
// courier dispatch reports to Parquet files using
// github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/NSBTW/courier/internal/contract"
	"github.com/NSBTW/courier/schema"
	"github.com/parquet-go/parquet-go"
)

// DispatchRecord represents a single item outcome in a dispatch run.
type DispatchRecord struct {
	// Rank is the 1-based position of the item in the batch
	Rank int32 `parquet:"rank,snappy"`

	// ItemName is the name of the submitted item
	ItemName string `parquet:"item_name,snappy"`

	// SizeBytes is the raw payload size of the item
	SizeBytes int64 `parquet:"size_bytes,snappy"`

	// Status is the terminal state: sent or skipped
	Status string `parquet:"status,snappy"`

	// ReportTime is when the report was produced (TIMESTAMP, nanosecond precision)
	ReportTime time.Time `parquet:"report_time,snappy"`
}

// ConvertItemReports maps report rows to parquet records.
func ConvertItemReports(rows []schema.ItemReport, reportTime time.Time) []DispatchRecord {
	records := make([]DispatchRecord, 0, len(rows))
	for i, r := range rows {
		records = append(records, DispatchRecord{
			Rank:       int32(i + 1),
			ItemName:   r.Name,
			SizeBytes:  int64(r.SizeBytes),
			Status:     contract.GetPlainStatusLabel(r.Status),
			ReportTime: reportTime,
		})
	}
	return records
}

// WriteDispatchReport writes dispatch records to a Parquet file.
func WriteDispatchReport(records []DispatchRecord, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is automatically derived from the DispatchRecord struct tags
	writer := parquet.NewGenericWriter[DispatchRecord](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(records); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	return nil
}
