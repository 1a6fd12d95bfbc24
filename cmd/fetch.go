package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/brogergvhs/pokenames/internal/config"
	"github.com/brogergvhs/pokenames/internal/names"
	"github.com/brogergvhs/pokenames/internal/scrape"
	"github.com/brogergvhs/pokenames/internal/ui"
	"github.com/brogergvhs/pokenames/internal/util"

	"github.com/spf13/cobra"
)

var (
	flagFetchURL      string
	flagFetchOutput   string
	flagFetchFormat   string
	flagFetchSelector string
	flagFetchTimeout  time.Duration
	flagUserAgent     string
	flagCookie        string
	flagCloudflare    bool
)

func init() {
	fetchCmd := &cobra.Command{
		Use:   "fetch",
		Short: "Scrape the German name list page into a dex,english,german text file",
		Args:  cobra.NoArgs,
		RunE:  runFetch,
	}

	fetchCmd.Flags().StringVar(&flagFetchURL, "url", "", "name list page URL")
	fetchCmd.Flags().StringVar(&flagFetchOutput, "output", "", "output file for the name list")
	fetchCmd.Flags().StringVar(&flagFetchFormat, "format", "", "output format: plain or csv")
	fetchCmd.Flags().StringVar(&flagFetchSelector, "table-selector", "", "CSS selector of the name tables")
	fetchCmd.Flags().DurationVar(&flagFetchTimeout, "timeout", 0, "HTTP request timeout (e.g. 30s)")
	fetchCmd.Flags().StringVar(&flagUserAgent, "user-agent", "", "override User-Agent")
	fetchCmd.Flags().StringVar(&flagCookie, "cookie", "", "cookie string, e.g. \"key=value; other=123\"")
	fetchCmd.Flags().BoolVar(&flagCloudflare, "cloudflare-bypass", false, "use a browser-like transport for Cloudflare protected pages")

	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, _ []string) error {
	cfg, logSvc, err := loadConfig(config.Options{
		SourceURL:        flagFetchURL,
		NamesFile:        flagFetchOutput,
		Format:           flagFetchFormat,
		TableSelector:    flagFetchSelector,
		Timeout:          flagFetchTimeout,
		UserAgent:        flagUserAgent,
		Cookie:           flagCookie,
		CloudflareBypass: flagCloudflare,
	})
	if err != nil {
		return err
	}

	format, err := names.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	client, err := util.NewHTTPClient(util.HTTPClientOptions{
		Timeout:          cfg.Timeout,
		UserAgent:        util.PickUserAgent(cfg.UserAgent),
		Cookie:           cfg.Cookie,
		CloudflareBypass: cfg.CloudflareBypass,
		DebugLogger:      logSvc,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pm := ui.NewProgressManager(!cfg.NoProgress)
	defer pm.Close()

	start := time.Now()
	logSvc.Infof("fetching %s", cfg.SourceURL)

	page := pm.Register("page ", ui.UnitBytes, 0)
	res, err := scrape.NewFetcher(client, cfg.TableSelector, logSvc).Fetch(ctx, cfg.SourceURL, page.SetCurrent)
	page.MarkDone()
	if err != nil {
		return err
	}

	if err := writeNameList(pm, cfg.NamesFile, res.Records, format); err != nil {
		return err
	}
	pm.Close()

	logSvc.Infof("wrote %d records to %s", len(res.Records), cfg.NamesFile)

	ui.Stats{
		Records: len(res.Records),
		Skipped: res.Skipped,
		Tables:  res.Tables,
		Bytes:   res.Bytes,
		Elapsed: time.Since(start),
	}.Print(cmd.OutOrStdout(), "Fetch")

	return nil
}

func writeNameList(pm *ui.ProgressManager, path string, records []names.NameRecord, format names.Format) error {
	if err := ensureParentDir(path); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	rows := pm.Register("names", ui.UnitRows, int64(len(records)))
	err = names.WriteNameList(f, records, format, rows.Rows)
	rows.MarkDone()

	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}

func ensureParentDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("cannot create output folder: %w", err)
	}

	return nil
}
