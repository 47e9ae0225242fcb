package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/janelia-scicomp/biblio/doi"
)

var (
	doiPretty bool
	doiRaw    bool
)

// doiSummary is the normalized view of a record the doi command prints.
type doiSummary struct {
	DOI       string `json:"doi"`
	Variant   string `json:"variant"`
	Title     string `json:"title,omitempty"`
	Journal   string `json:"journal,omitempty"`
	Published string `json:"published"`
	Preprint  bool   `json:"preprint"`
	Authors   int    `json:"authors"`
}

var doiCmd = &cobra.Command{
	Use:   "doi <doi>",
	Short: "Fetch and print a DOI record",
	Long: `Fetch a DOI record from Crossref or DataCite, routed by the DOI
itself, and print a normalized summary as JSON. With --raw, print the
registry document instead.

When REDIS_URL is set, records are served from the cache and fetches
are written back to it.

Examples:
  biblio doi 10.7554/elife.98405
  biblio doi 10.25378/janelia.13147670 --raw --pretty`,
	Args: cobra.ExactArgs(1),
	RunE: runDOI,
}

func init() {
	doiCmd.Flags().BoolVar(&doiPretty, "pretty", false, "Pretty-print JSON output")
	doiCmd.Flags().BoolVar(&doiRaw, "raw", false, "Print the raw registry document")
}

func runDOI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := doiStore(cfg)
	if err != nil {
		return err
	}

	rec, err := doi.GetRecord(cmd.Context(), args[0], store, doiClient(cfg))
	if err != nil {
		return fmt.Errorf("fetching %s: %w", args[0], err)
	}
	if rec == nil {
		return fmt.Errorf("no record found for %s", args[0])
	}
	if doiRaw {
		return printJSON(rec, doiPretty)
	}
	return printJSON(doiSummary{
		DOI:       rec.DOI(),
		Variant:   rec.Variant().String(),
		Title:     rec.Title(),
		Journal:   rec.Journal(true),
		Published: rec.PublishingDate(),
		Preprint:  rec.IsPreprint(),
		Authors:   len(rec.Authors()),
	}, doiPretty)
}
