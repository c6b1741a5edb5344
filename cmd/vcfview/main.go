// Package main provides the vcfview command-line tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/progen-bio/vcfview/internal/tui"
	"github.com/progen-bio/vcfview/internal/vcf"
)

// Version information (set at build time)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	// Global flags
	verbose bool
	logFile string

	// Viewer flags
	parserFlag   string
	passOnlyFlag bool
	themeFlag    string

	// Logger; Nop unless --log-file is given so the TUI owns the terminal
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "vcfview [file]",
	Short: "Terminal viewer for VCF variant-call files",
	Long: `vcfview is a terminal viewer for VCF files.

It loads a plain or gzipped VCF, shows the records in an interactive table,
filters live on a free-text query and a PASS-only toggle and shows the full
detail of the selected record. Loaded files can also be exported to a DuckDB
database for ad-hoc SQL.`,
	Example: `  vcfview sample.vcf
  vcfview calls.vcf.gz --pass-only
  vcfview export sample.vcf -o variants.duckdb`,
	Version: fmt.Sprintf("%s (%s) built %s", version, commit, date),
	Args:    cobra.MaximumNArgs(1),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := initConfig(); err != nil {
			return err
		}
		return initLogger(cmd)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) > 0 {
			path = args[0]
		}
		return tui.Run(tui.Options{
			Path:     path,
			Mode:     readerMode(cmd),
			PassOnly: passOnly(cmd),
			Theme:    theme(cmd),
			Logger:   logger,
		})
	},
}

func main() {
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newConfigCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initConfig loads ~/.vcfview.yaml when present. A missing config file is
// not an error.
func initConfig() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}

	viper.SetConfigName(".vcfview")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(home)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}
	return nil
}

// initLogger builds the zap logger. Without --log-file the logger stays a
// Nop: the interactive viewer cannot share stdout with log output.
func initLogger(cmd *cobra.Command) error {
	if logFile == "" {
		return nil
	}

	config := zap.NewProductionConfig()
	config.OutputPaths = []string{logFile}
	config.ErrorOutputPaths = []string{logFile}
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	var err error
	logger, err = config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

// readerMode resolves the parser selection: flag first, then config, then
// the structured default.
func readerMode(cmd *cobra.Command) vcf.ReaderMode {
	if cmd.Flags().Changed("parser") {
		return vcf.ReaderMode(parserFlag)
	}
	if v := viper.GetString("parser"); v != "" {
		return vcf.ReaderMode(v)
	}
	return vcf.ReaderStructured
}

func passOnly(cmd *cobra.Command) bool {
	if cmd.Flags().Changed("pass-only") {
		return passOnlyFlag
	}
	return viper.GetBool("ui.pass_only")
}

func theme(cmd *cobra.Command) string {
	if cmd.Flags().Changed("theme") {
		return themeFlag
	}
	return viper.GetString("ui.theme")
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to this file (default: logging disabled)")
	rootCmd.PersistentFlags().StringVar(&parserFlag, "parser", "structured", "Parser implementation: structured or basic")

	rootCmd.Flags().BoolVar(&passOnlyFlag, "pass-only", false, "Start with the PASS-only toggle enabled")
	rootCmd.Flags().StringVar(&themeFlag, "theme", "dark", "Color theme: dark or light")
}
