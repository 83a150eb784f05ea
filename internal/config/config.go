package config

import (
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/nao1215/sgreport/internal/model"
)

// Default configuration values.
// The input and output paths are the conventional locations used by CI jobs
// that run `semgrep --json -o semgrep_report/semgrep.json` before this tool.
const (
	// DefaultInputPath is where semgrep JSON output is read from.
	DefaultInputPath = "semgrep_report/semgrep.json"

	// DefaultOutputPath is where the HTML report is written.
	DefaultOutputPath = "semgrep_report/semgrep-report.html"

	// DefaultTitle is the report heading.
	DefaultTitle = "🔍 Semgrep Security Report"

	// DefaultFormat is the report output format.
	DefaultFormat = FormatHTML

	// DefaultTaxonomy is the severity taxonomy used for classification.
	DefaultTaxonomy = model.TaxonomyStandard

	// AppName is the application name used for XDG directory paths.
	AppName = "sgreport"
)

// Report output formats.
const (
	FormatHTML     = "html"
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
)

// formatExtensions maps each format to the file extension of its output.
var formatExtensions = map[string]string{
	FormatHTML:     ".html",
	FormatMarkdown: ".md",
	FormatJSON:     ".json",
}

// Config holds all configuration options for sgreport.
// It is populated from defaults, an optional config file and CLI flags,
// in that order of increasing precedence.
type Config struct {
	// InputPath is the semgrep JSON file to read.
	InputPath string

	// OutputPath is the report file to write. Parent directories are
	// created as needed and any existing file is overwritten.
	OutputPath string

	// Format selects the report writer: html, markdown or json.
	Format string

	// Taxonomy is the name of the severity taxonomy (standard or extended).
	Taxonomy string

	// Title is the report heading.
	Title string

	// Verbose enables debug logging on stderr.
	Verbose bool

	// NoColor disables colored console notices.
	NoColor bool

	// ConfigFilePath is the path of an explicit configuration file.
	// If empty, the default locations are searched.
	ConfigFilePath string
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		InputPath:  DefaultInputPath,
		OutputPath: DefaultOutputPath,
		Format:     DefaultFormat,
		Taxonomy:   DefaultTaxonomy,
		Title:      DefaultTitle,
	}
}

// Apply overlays the non-empty values of a config file onto c.
func (c *Config) Apply(f *File) {
	if f == nil {
		return
	}
	if f.Input != "" {
		c.InputPath = f.Input
	}
	if f.Output != "" {
		c.OutputPath = f.Output
	}
	if f.Format != "" {
		c.Format = f.Format
	}
	if f.Taxonomy != "" {
		c.Taxonomy = f.Taxonomy
	}
	if f.Title != "" {
		c.Title = f.Title
	}
}

// DefaultOutputPathFor returns the default output path for a format:
// DefaultOutputPath with its extension swapped for the format's one.
func DefaultOutputPathFor(format string) string {
	ext, ok := formatExtensions[strings.ToLower(format)]
	if !ok {
		return DefaultOutputPath
	}
	return strings.TrimSuffix(DefaultOutputPath, filepath.Ext(DefaultOutputPath)) + ext
}

// XDGConfigDir returns the XDG config directory for sgreport.
// On Linux: ~/.config/sgreport
// On macOS: ~/Library/Application Support/sgreport
// On Windows: %APPDATA%\sgreport
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns the first problem found as one of the sentinel errors.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.InputPath) == "" {
		return ErrEmptyInputPath
	}
	if strings.TrimSpace(c.OutputPath) == "" {
		return ErrEmptyOutputPath
	}
	if _, ok := formatExtensions[strings.ToLower(c.Format)]; !ok {
		return ErrUnknownFormat
	}
	if _, err := model.LookupTaxonomy(c.Taxonomy); err != nil {
		return ErrUnknownTaxonomy
	}
	return nil
}
