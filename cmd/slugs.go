package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/brogergvhs/pokenames/internal/config"
	"github.com/brogergvhs/pokenames/internal/names"
	"github.com/brogergvhs/pokenames/internal/ui"

	"github.com/spf13/cobra"
)

var (
	flagSlugInput  string
	flagSlugOutput string
	flagSlugFormat string
)

func init() {
	slugsCmd := &cobra.Command{
		Use:   "slugs",
		Short: "Turn an index,name,german_name list into a name,german_name,slug CSV",
		Args:  cobra.NoArgs,
		RunE:  runSlugs,
	}

	slugsCmd.Flags().StringVar(&flagSlugInput, "input", "", "input name list")
	slugsCmd.Flags().StringVar(&flagSlugOutput, "output", "", "output CSV file")
	slugsCmd.Flags().StringVar(&flagSlugFormat, "format", "", "input format: plain or csv")

	rootCmd.AddCommand(slugsCmd)
}

func runSlugs(cmd *cobra.Command, _ []string) error {
	cfg, logSvc, err := loadConfig(config.Options{
		SlugInput:  flagSlugInput,
		SlugOutput: flagSlugOutput,
		Format:     flagSlugFormat,
	})
	if err != nil {
		return err
	}

	format, err := names.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	start := time.Now()

	in, err := os.Open(cfg.SlugInput)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	entries, err := names.ReadEntries(in, format)
	_ = in.Close()
	if err != nil {
		return fmt.Errorf("read %s: %w", cfg.SlugInput, err)
	}

	records := names.BuildSlugRecords(entries)
	logSvc.Debugf("derived %d slugs from %s", len(records), cfg.SlugInput)

	if err := ensureParentDir(cfg.SlugOutput); err != nil {
		return err
	}

	out, err := os.Create(cfg.SlugOutput)
	if err != nil {
		return fmt.Errorf("create %s: %w", cfg.SlugOutput, err)
	}

	pm := ui.NewProgressManager(!cfg.NoProgress)
	rows := pm.Register("slugs", ui.UnitRows, int64(len(records)))
	err = names.WriteSlugRecords(out, records, rows.Rows)
	rows.MarkDone()
	pm.Close()

	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("write %s: %w", cfg.SlugOutput, err)
	}

	logSvc.Infof("wrote %d rows to %s", len(records), cfg.SlugOutput)

	ui.Stats{
		Records: len(records),
		Elapsed: time.Since(start),
	}.Print(cmd.OutOrStdout(), "Slug")

	return nil
}
