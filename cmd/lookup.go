package cmd

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/brogergvhs/pokenames/internal/config"
	"github.com/brogergvhs/pokenames/internal/dex"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

var (
	flagListFile string
	flagFuzzy    bool
	flagPick     bool
	flagRandom   bool
	flagRegion   string
	flagRange    string
	flagIDs      string
)

func init() {
	lookupCmd := &cobra.Command{
		Use:   "lookup [name|dex number]",
		Short: "Look up Pokémon in the slug list by name, dex number, range or at random",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLookup,
	}

	lookupCmd.Flags().StringVar(&flagListFile, "list-file", "", "slug CSV to read (defaults to the slug output)")
	lookupCmd.Flags().BoolVar(&flagFuzzy, "fuzzy", false, "match the closest English or German name")
	lookupCmd.Flags().BoolVar(&flagPick, "pick", false, "choose interactively among the closest names")
	lookupCmd.Flags().BoolVar(&flagRandom, "random", false, "pick a random Pokémon")
	lookupCmd.Flags().StringVar(&flagRegion, "region", "", "pick a random Pokémon from a region (e.g. Kanto, Einall)")
	lookupCmd.Flags().StringVar(&flagRange, "range", "", "list a range of dex numbers (e.g. 1-151)")
	lookupCmd.Flags().StringVar(&flagIDs, "ids", "", "list specific dex numbers (e.g. 1,4,7)")

	formatCmd := &cobra.Command{
		Use:   "format <slug>",
		Short: "Print the display name for a sprite slug",
		Args:  cobra.ExactArgs(1),
		RunE:  runFormat,
	}
	formatCmd.Flags().StringVar(&flagListFile, "list-file", "", "slug CSV to read (defaults to the slug output)")

	rootCmd.AddCommand(lookupCmd, formatCmd)
}

func loadList() (*dex.List, error) {
	cfg, logSvc, err := loadConfig(config.Options{ListFile: flagListFile})
	if err != nil {
		return nil, err
	}

	l, err := dex.LoadFile(cfg.ListFile)
	if err != nil {
		return nil, err
	}
	logSvc.Debugf("loaded %d entries from %s", l.Len(), cfg.ListFile)

	return l, nil
}

func runLookup(cmd *cobra.Command, args []string) error {
	l, err := loadList()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	switch {
	case flagRegion != "" || flagRandom:
		slug, err := randomSlug(l)
		if err != nil {
			return err
		}
		return printSlugs(out, l, slug)

	case flagRange != "" || flagIDs != "":
		selected := l.Select(flagRange, flagIDs)
		if len(selected) == 0 {
			return errors.New("no Pokémon selected")
		}
		return printEntries(out, selected)
	}

	if len(args) == 0 {
		return errors.New("missing name or dex number (or use --random, --region, --range, --ids)")
	}

	slug, err := lookupOne(l, args[0])
	if err != nil {
		return err
	}

	return printSlugs(out, l, slug)
}

func lookupOne(l *dex.List, query string) (string, error) {
	if n, err := strconv.Atoi(strings.TrimSpace(query)); err == nil {
		return l.ByDex(n)
	}

	switch {
	case flagPick:
		return pickCandidate(l, query)
	case flagFuzzy:
		return l.ByNameFuzzy(query)
	default:
		return l.ByName(query)
	}
}

func randomSlug(l *dex.List) (string, error) {
	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))

	if flagRegion == "" {
		return l.Random(rng)
	}

	region, err := dex.ParseRegion(flagRegion)
	if err != nil {
		return "", err
	}

	return l.RandomInRegion(region, rng)
}

func pickCandidate(l *dex.List, query string) (string, error) {
	candidates := l.Candidates(query, 10)
	if len(candidates) == 0 {
		return "", fmt.Errorf("%w: %q", dex.ErrNotFound, query)
	}

	items := make([]string, 0, len(candidates))
	for _, c := range candidates {
		items = append(items, fmt.Sprintf("%s  (%s)", c.Name, c.Slug))
	}

	prompt := promptui.Select{
		Label: fmt.Sprintf("Closest matches for %q", query),
		Items: items,
	}

	idx, _, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("selection cancelled")
	}

	return candidates[idx].Slug, nil
}

func printSlugs(w io.Writer, l *dex.List, slugs ...string) error {
	entries := make([]dex.Pokemon, 0, len(slugs))
	for _, s := range slugs {
		p, ok := l.BySlug(s)
		if !ok {
			return fmt.Errorf("%w: slug %q", dex.ErrNotFound, s)
		}
		entries = append(entries, p)
	}

	return printEntries(w, entries)
}

func printEntries(w io.Writer, entries []dex.Pokemon) error {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	_, _ = fmt.Fprintln(tw, "DEX\tSLUG\tNAME\tGERMAN")

	for _, p := range entries {
		_, _ = fmt.Fprintf(tw, "%04d\t%s\t%s\t%s\n", p.Dex, p.Slug, p.Name, p.GermanName)
	}

	return tw.Flush()
}

func runFormat(cmd *cobra.Command, args []string) error {
	l, err := loadList()
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), l.FormatName(args[0]))
	return err
}
