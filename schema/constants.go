package schema

// Custom string types for type safety.
type (
	// FormatVersion represents a recognized envelope format version.
	FormatVersion string

	// ItemStatus represents the terminal state of an item in a batch run.
	ItemStatus string

	// OutputMode represents the format of the output.
	OutputMode string
)

// Terminal item states. Every item ends a batch run in exactly one of these.
const (
	SentStatus    ItemStatus = "sent"
	SkippedStatus ItemStatus = "skipped"
)

// Output modes supported by report printing.
const (
	TextOut    OutputMode = "text"
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// ValidOutputModes is the allow-list used during config validation.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}

// DefaultAcceptedFormats are the envelope versions accepted when the user
// does not override --formats.
var DefaultAcceptedFormats = []FormatVersion{"4.0", "3.1"}
