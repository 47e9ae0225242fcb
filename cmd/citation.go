package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/janelia-scicomp/biblio/citation"
	"github.com/janelia-scicomp/biblio/doi"
)

var (
	citationExpanded bool
	citationList     bool
	citationStyle    string
	citationORCID    bool
)

var citationCmd = &cobra.Command{
	Use:   "citation <doi>",
	Short: "Print a short citation for a DOI",
	Long: `Fetch a DOI record and print a short citation, like
"Meissner et al. 2024". With --expanded, the title and journal replace
the bare year. With --list, print the formatted author list instead.

Examples:
  biblio citation 10.7554/elife.98405
  biblio citation 10.7554/elife.98405 --expanded
  biblio citation 10.7554/elife.98405 --list --style flylight`,
	Args: cobra.ExactArgs(1),
	RunE: runCitation,
}

func init() {
	citationCmd.Flags().BoolVar(&citationExpanded, "expanded", false, "Include title and journal")
	citationCmd.Flags().BoolVar(&citationList, "list", false, "Print the author list instead of a citation")
	citationCmd.Flags().StringVar(&citationStyle, "style", "dis", "Author list style (dis or flylight)")
	citationCmd.Flags().BoolVar(&citationORCID, "orcid-links", false, "Wrap linked authors in ORCID anchors")
}

func runCitation(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := doiStore(cfg)
	if err != nil {
		return err
	}

	if citationList {
		style := citation.Style(citationStyle)
		if style != citation.StyleDIS && style != citation.StyleFlyLight {
			return fmt.Errorf("unknown style %q", citationStyle)
		}
		rec, err := doi.GetRecord(cmd.Context(), args[0], store, doiClient(cfg))
		if err != nil {
			return fmt.Errorf("fetching %s: %w", args[0], err)
		}
		if rec == nil {
			return fmt.Errorf("no record found for %s", args[0])
		}
		projects, err := projectMap(cfg)
		if err != nil {
			return err
		}
		text := citation.AuthorListText(rec, citation.ListOptions{
			Style:      style,
			ORCIDLinks: citationORCID,
			ORCIDLogo:  cfg.ORCIDLogo,
			Projects:   projects,
		})
		if text == "" {
			return fmt.Errorf("%s has no authors", args[0])
		}
		fmt.Println(text)
		return nil
	}

	composer := &citation.Composer{
		Store:  store,
		Client: doiClient(cfg),
		PubMed: pubmedClient(cfg),
	}
	cite, err := composer.Short(cmd.Context(), args[0], citationExpanded)
	if err != nil {
		return err
	}
	if cite == "" {
		return fmt.Errorf("no citation available for %s", args[0])
	}
	fmt.Println(cite)
	return nil
}
