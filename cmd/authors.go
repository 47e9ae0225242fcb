package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/janelia-scicomp/biblio/citation"
	"github.com/janelia-scicomp/biblio/doi"
	"github.com/janelia-scicomp/biblio/identity"
)

var (
	authorsPretty  bool
	authorsResolve bool
)

var authorsCmd = &cobra.Command{
	Use:   "authors <doi>",
	Short: "Print a DOI's authors as resolved payloads",
	Long: `Fetch a DOI record and print one JSON payload per author, in record
order, with first/last markers and affiliation data.

With --resolve (and DATABASE_URL set), each author is matched against
the identity registry and the payloads carry the resolution outcome.

Examples:
  biblio authors 10.7554/elife.98405
  biblio authors 10.7554/elife.98405 --resolve --pretty`,
	Args: cobra.ExactArgs(1),
	RunE: runAuthors,
}

func init() {
	authorsCmd.Flags().BoolVar(&authorsPretty, "pretty", false, "Pretty-print JSON output")
	authorsCmd.Flags().BoolVar(&authorsResolve, "resolve", false, "Resolve authors against the identity registry")
}

func runAuthors(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := doiStore(cfg)
	if err != nil {
		return err
	}

	var reg identity.Registry
	if authorsResolve {
		pg, err := registry(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer pg.Close()
		reg = pg
	}

	rec, err := doi.GetRecord(cmd.Context(), args[0], store, doiClient(cfg))
	if err != nil {
		return fmt.Errorf("fetching %s: %w", args[0], err)
	}
	if rec == nil {
		return fmt.Errorf("no record found for %s", args[0])
	}

	payloads, err := citation.AuthorDetails(cmd.Context(), rec, reg, cfg.OrgName)
	if err != nil {
		return err
	}
	if payloads == nil {
		return fmt.Errorf("%s has no authors", args[0])
	}
	return printJSON(payloads, authorsPretty)
}
