package contract

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/NSBTW/courier/schema"
)

// Default values for configuration.
const (
	DefaultFreshnessMonths = 1
	MaxFreshnessMonths     = 120
	DefaultOutboxPath      = "outbox"
	DefaultRegistryPath    = "registry"
	DefaultKeyID           = "courier-dev"
)

// DefaultWorkers is the default number of concurrent workers to use.
var DefaultWorkers = runtime.GOMAXPROCS(0)

// DefaultFormats is the comma-separated default for the --formats flag.
var DefaultFormats = joinFormats(schema.DefaultAcceptedFormats)

// Config holds the runtime configuration for a courier run.
// This struct remains the "final, validated" config.
type Config struct {
	ItemsPath    string
	RegistryPath string
	OutboxPath   string

	AcceptedFormats map[schema.FormatVersion]struct{}
	FreshnessMonths int

	SigningKey []byte
	KeyID      string

	Workers    int
	Output     schema.OutputMode
	OutputFile string
	Width      int // Terminal width override (0 = auto-detect)
	UseColors  bool
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	ItemsPathStr string

	Formats    string `mapstructure:"formats"`
	Freshness  int    `mapstructure:"freshness"`
	Outbox     string `mapstructure:"outbox"`
	Registry   string `mapstructure:"registry"`
	SigningKey string `mapstructure:"signing-key"`
	KeyID      string `mapstructure:"key-id"`
	Workers    int    `mapstructure:"workers"`
	Output     string `mapstructure:"output"`
	OutputFile string `mapstructure:"output-file"`
	Width      int    `mapstructure:"width"`
	Color      string `mapstructure:"color"`
}

// SigningContext builds the signing context from the validated config.
func (c *Config) SigningContext() schema.SigningContext {
	return schema.SigningContext{KeyID: c.KeyID, Key: c.SigningKey}
}

// AcceptsFormat reports whether the given format version is on the allow-list.
func (c *Config) AcceptsFormat(f schema.FormatVersion) bool {
	_, ok := c.AcceptedFormats[f]
	return ok
}

// FormatList returns the accepted formats in the order they were configured.
func (c *Config) FormatList() []string {
	out := make([]string, 0, len(c.AcceptedFormats))
	for _, f := range schema.DefaultAcceptedFormats {
		if c.AcceptsFormat(f) {
			out = append(out, string(f))
		}
	}
	for f := range c.AcceptedFormats {
		if !containsString(out, string(f)) {
			out = append(out, string(f))
		}
	}
	return out
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	// --- 1. Paths ---
	cfg.ItemsPath = strings.TrimSpace(input.ItemsPathStr)
	if cfg.ItemsPath == "" {
		cfg.ItemsPath = "."
	}
	cfg.OutboxPath = strings.TrimSpace(input.Outbox)
	if cfg.OutboxPath == "" {
		cfg.OutboxPath = DefaultOutboxPath
	}
	cfg.RegistryPath = strings.TrimSpace(input.Registry)
	if cfg.RegistryPath == "" {
		cfg.RegistryPath = DefaultRegistryPath
	}

	// --- 2. Format allow-list ---
	formats, err := ParseFormatList(input.Formats)
	if err != nil {
		return err
	}
	cfg.AcceptedFormats = formats

	// --- 3. Freshness Validation ---
	if input.Freshness < 1 || input.Freshness > MaxFreshnessMonths {
		return fmt.Errorf("freshness must be between 1 and %d months (received %d)", MaxFreshnessMonths, input.Freshness)
	}
	cfg.FreshnessMonths = input.Freshness

	// --- 4. Workers Validation ---
	if input.Workers <= 0 {
		return fmt.Errorf("workers must be greater than 0 (received %d)", input.Workers)
	}
	cfg.Workers = input.Workers

	// --- 5. Output Validation ---
	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", input.Output)
	}
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width

	// --- 6. Signing material ---
	cfg.KeyID = strings.TrimSpace(input.KeyID)
	if cfg.KeyID == "" {
		cfg.KeyID = DefaultKeyID
	}
	// Key presence is enforced by the send path; resolve and formats run without one.
	cfg.SigningKey = []byte(input.SigningKey)

	// --- 7. Color flag ---
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	return nil
}

// ParseFormatList parses a comma-separated list of accepted format versions
// into the allow-list set. At least one version is required.
func ParseFormatList(s string) (map[schema.FormatVersion]struct{}, error) {
	formats := make(map[schema.FormatVersion]struct{})
	parts := strings.SplitSeq(s, ",")
	for p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			formats[schema.FormatVersion(p)] = struct{}{}
		}
	}
	if len(formats) == 0 {
		return nil, fmt.Errorf("formats must list at least one accepted version (received %q)", s)
	}
	return formats, nil
}

func joinFormats(formats []schema.FormatVersion) string {
	parts := make([]string, len(formats))
	for i, f := range formats {
		parts[i] = string(f)
	}
	return strings.Join(parts, ",")
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
