package internal

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/NSBTW/courier/internal/contract"
	"github.com/NSBTW/courier/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintDispatchReport outputs the batch result, dispatching based on the
// output format configured.
func PrintDispatchReport(rows []schema.ItemReport, result *schema.BatchResult, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return printJSONDispatch(rows, cfg)
	case schema.CSVOut:
		return printCSVDispatch(rows, cfg)
	case schema.ParquetOut:
		return printParquetDispatch(rows, cfg)
	default:
		// Default to human-readable table plus a summary line
		if err := printDispatchTable(rows, cfg); err != nil {
			return err
		}
		fmt.Printf("\nSent %d of %d items in %v\n", result.Sent, result.Attempted, result.Duration.Round(timePrecision))
		return nil
	}
}

// PrintResolveReport outputs the resolution rows, dispatching based on the
// output format configured. Parquet output is not offered here; resolution
// reports are small and interactive.
func PrintResolveReport(rows []schema.Resolution, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return printJSONResolve(rows, cfg)
	case schema.CSVOut:
		return printCSVResolve(rows, cfg)
	default:
		return printResolveTable(rows, cfg)
	}
}

// PrintFormatDefinitions prints the static format and freshness configuration.
func PrintFormatDefinitions(cfg *contract.Config) error {
	fmt.Println("Accepted envelope formats:")
	for _, f := range cfg.FormatList() {
		fmt.Printf("  - %s\n", f)
	}
	fmt.Println()
	unit := "months"
	if cfg.FreshnessMonths == 1 {
		unit = "month"
	}
	fmt.Printf("Freshness window: %d calendar %s from item creation\n", cfg.FreshnessMonths, unit)
	fmt.Println("Month-end overflow follows Go AddDate normalization (Jan 31 + 1 month = Mar 2/3).")
	return nil
}

// printDispatchTable prints the per-item rows using the tablewriter API.
func printDispatchTable(rows []schema.ItemReport, cfg *contract.Config) error {
	table := tablewriter.NewWriter(os.Stdout)

	// 1. Define headers
	table.Header([]string{"#", "Item", "Size(B)", "Status"})

	// 2. Configure alignment
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Prepare data rows
	maxName := GetMaxNameWidth(cfg)
	var data [][]string
	for i, r := range rows {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			contract.TruncateName(r.Name, maxName),
			strconv.Itoa(r.SizeBytes),
			statusLabel(r.Status, cfg),
		})
	}

	// 4. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// printResolveTable prints the resolution rows using the tablewriter API.
func printResolveTable(rows []schema.Resolution, cfg *contract.Config) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"#", "Key", "Size(B)", "Status"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	maxName := GetMaxNameWidth(cfg)
	var data [][]string
	for i, r := range rows {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			contract.TruncateName(r.Key, maxName),
			strconv.Itoa(r.SizeBytes),
			resolutionLabel(r.Found, cfg),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// printCSVDispatch handles opening the file and writing the CSV rows.
func printCSVDispatch(rows []schema.ItemReport, cfg *contract.Config) error {
	file, err := selectOutputFile(cfg.OutputFile)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	w := csv.NewWriter(file)
	_ = w.Write([]string{"rank", "item", "size_bytes", "status"})
	for i, r := range rows {
		_ = w.Write([]string{
			strconv.Itoa(i + 1),
			r.Name,
			strconv.Itoa(r.SizeBytes),
			strings.ToLower(contract.GetPlainStatusLabel(r.Status)),
		})
	}
	w.Flush()

	notifyOutputFile(file, cfg.OutputFile, "CSV")
	return w.Error()
}

// printCSVResolve handles opening the file and writing the CSV rows.
func printCSVResolve(rows []schema.Resolution, cfg *contract.Config) error {
	file, err := selectOutputFile(cfg.OutputFile)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	w := csv.NewWriter(file)
	_ = w.Write([]string{"rank", "key", "size_bytes", "status"})
	for i, r := range rows {
		_ = w.Write([]string{
			strconv.Itoa(i + 1),
			r.Key,
			strconv.Itoa(r.SizeBytes),
			strings.ToLower(contract.GetPlainResolutionLabel(r.Found)),
		})
	}
	w.Flush()

	notifyOutputFile(file, cfg.OutputFile, "CSV")
	return w.Error()
}

// statusLabel applies color only when configured.
func statusLabel(status schema.ItemStatus, cfg *contract.Config) string {
	if cfg.UseColors {
		return contract.GetColorStatusLabel(status)
	}
	return contract.GetPlainStatusLabel(status)
}

// resolutionLabel applies color only when configured.
func resolutionLabel(found bool, cfg *contract.Config) string {
	if cfg.UseColors {
		return contract.GetColorResolutionLabel(found)
	}
	return contract.GetPlainResolutionLabel(found)
}
