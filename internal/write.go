package internal

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/NSBTW/courier/internal/contract"
	"github.com/NSBTW/courier/internal/parquet"
	"github.com/NSBTW/courier/schema"
)

// timePrecision rounds durations in summary lines.
const timePrecision = time.Millisecond

// selectOutputFile returns the file handle for report output, falling back
// to stdout with a warning when the requested file cannot be created.
func selectOutputFile(path string) (*os.File, error) {
	if path == "" {
		return os.Stdout, nil
	}
	file, err := os.Create(path)
	if err != nil {
		contract.LogWarn(fmt.Sprintf("Cannot open output file %s, falling back to stdout", path), err)
		return os.Stdout, nil
	}
	return file, nil
}

// notifyOutputFile tells the user where output landed when it was not stdout.
func notifyOutputFile(file *os.File, path string, kind string) {
	if file != os.Stdout {
		fmt.Fprintf(os.Stderr, "Wrote %s to %s\n", kind, path)
	}
}

// printJSONDispatch writes the dispatch rows as a JSON array.
func printJSONDispatch(rows []schema.ItemReport, cfg *contract.Config) error {
	file, err := selectOutputFile(cfg.OutputFile)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rows); err != nil {
		return err
	}
	notifyOutputFile(file, cfg.OutputFile, "JSON")
	return nil
}

// printJSONResolve writes the resolution rows as a JSON array.
func printJSONResolve(rows []schema.Resolution, cfg *contract.Config) error {
	file, err := selectOutputFile(cfg.OutputFile)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rows); err != nil {
		return err
	}
	notifyOutputFile(file, cfg.OutputFile, "JSON")
	return nil
}

// printParquetDispatch exports the dispatch rows to a Parquet file.
// Parquet is a binary columnar format, so a real file path is required.
func printParquetDispatch(rows []schema.ItemReport, cfg *contract.Config) error {
	if cfg.OutputFile == "" {
		return fmt.Errorf("parquet output requires --output-file")
	}
	records := parquet.ConvertItemReports(rows, time.Now())
	if err := parquet.WriteDispatchReport(records, cfg.OutputFile); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Wrote Parquet to %s\n", cfg.OutputFile)
	return nil
}
