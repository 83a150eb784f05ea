package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/nao1215/sgreport/internal/config"
	"github.com/nao1215/sgreport/internal/log"
	"github.com/nao1215/sgreport/internal/model"
	"github.com/nao1215/sgreport/internal/pipeline"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for sgreport.
// Running it without a subcommand generates the report.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sgreport",
		Short: "Generate an HTML report from semgrep findings",
		Long: `sgreport reads semgrep JSON output and writes a self-contained report
with a severity summary and a detailed findings table.

With no flags it reads semgrep_report/semgrep.json and writes
semgrep_report/semgrep-report.html. A missing input file or an empty
result set is not an error: a notice is printed and nothing is written.

Examples:
  # Generate the default HTML report
  sgreport

  # Read from and write to custom locations
  sgreport -i out/semgrep.json -o public/security.html

  # Markdown for a pull request comment, five-level severity scale
  sgreport -f markdown -t extended`,
		Version:       getVersion(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runRootCmd,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	cmd.Flags().StringP("input", "i", config.DefaultInputPath,
		"Semgrep JSON output to read")
	cmd.Flags().StringP("output", "o", "",
		"Report file to write (default: semgrep_report/semgrep-report.<ext>)")
	cmd.Flags().StringP("format", "f", config.DefaultFormat,
		"Report format: html, markdown or json")
	cmd.Flags().StringP("taxonomy", "t", config.DefaultTaxonomy,
		fmt.Sprintf("Severity scale: %v", model.TaxonomyNames()))
	cmd.Flags().String("title", config.DefaultTitle,
		"Report title")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file (default: .sgreport, then XDG config dir, then home)")
	cmd.Flags().Bool("no-color", false,
		"Disable colored notices")

	// Add subcommands
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runRootCmd executes report generation.
func runRootCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := log.NewLogger(cmd.ErrOrStderr(), cfg.Verbose)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return runGenerate(ctx, cmd, cfg, logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig constructs a Config from defaults, the config file and flags,
// in that order of increasing precedence.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.Verbose = getVerboseFlag(cmd)

	var err error
	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// If user explicitly specified a config file path, error if not found.
	// If no path specified, silently keep the defaults when no file is found.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	outputSet := false
	if configPath != "" {
		file, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		cfg.Apply(file)
		outputSet = file.Output != ""
	} else if explicitConfigPath {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	flags := []struct {
		name string
		dst  *string
	}{
		{name: "input", dst: &cfg.InputPath},
		{name: "output", dst: &cfg.OutputPath},
		{name: "format", dst: &cfg.Format},
		{name: "taxonomy", dst: &cfg.Taxonomy},
		{name: "title", dst: &cfg.Title},
	}
	for _, f := range flags {
		if !cmd.Flags().Changed(f.name) {
			continue
		}
		if *f.dst, err = cmd.Flags().GetString(f.name); err != nil {
			return nil, err
		}
		if f.name == "output" {
			outputSet = true
		}
	}

	// Without an explicit output, follow the format's file extension.
	if !outputSet {
		cfg.OutputPath = config.DefaultOutputPathFor(cfg.Format)
	}

	cfg.NoColor, err = cmd.Flags().GetBool("no-color")
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// runGenerate builds and executes the generator pipeline.
func runGenerate(ctx context.Context, cmd *cobra.Command, cfg *config.Config, logger *slog.Logger) error {
	taxonomy, err := model.LookupTaxonomy(cfg.Taxonomy)
	if err != nil {
		return err
	}

	var opts []log.NotifierOption
	if cfg.NoColor {
		opts = append(opts, log.WithoutColor())
	}
	notifier := log.NewNotifier(cmd.OutOrStdout(), opts...)

	logger.Info("generating report",
		"input", cfg.InputPath,
		"output", cfg.OutputPath,
		"format", cfg.Format,
		"taxonomy", taxonomy.Name(),
	)

	run := &pipeline.Run{
		InputPath:  cfg.InputPath,
		OutputPath: cfg.OutputPath,
		Format:     cfg.Format,
		Title:      cfg.Title,
		Taxonomy:   taxonomy,
	}
	return pipeline.NewGenerator(notifier, pipeline.WithLogger(logger)).Execute(ctx, run)
}
