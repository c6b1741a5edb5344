package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/progen-bio/vcfview/internal/duckdb"
	"github.com/progen-bio/vcfview/internal/vcf"
)

func newExportCmd() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "export <input.vcf[.gz]>",
		Short: "Export a VCF file into a DuckDB database",
		Long: `Export loads a VCF file with the same parse pipeline as the viewer and
writes every record into a DuckDB database, one row per record, so the file
can be queried with plain SQL.`,
		Example: `  vcfview export sample.vcf -o variants.duckdb
  vcfview export calls.vcf.gz -o calls.duckdb --parser basic`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, args[0], outputPath)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output DuckDB file path (required)")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func runExport(cmd *cobra.Command, inputPath, outputPath string) error {
	set, err := vcf.Load(inputPath, vcf.LoadOptions{Mode: readerMode(cmd), Logger: logger})
	if err != nil {
		return err
	}

	store, err := duckdb.Open(outputPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.WriteRecords(set.Records); err != nil {
		return fmt.Errorf("write records: %w", err)
	}

	pass, err := store.CountPass()
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d records to %s (%d PASS", set.Len(), outputPath, pass)
	if set.Skipped > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), ", %d malformed lines skipped", set.Skipped)
	}
	fmt.Fprintln(cmd.OutOrStdout(), ")")

	return nil
}
