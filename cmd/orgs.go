package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/janelia-scicomp/biblio/orgs"
)

var orgsPretty bool

var orgsCmd = &cobra.Command{
	Use:   "orgs",
	Short: "Print the supervisory organizations",
	Long: `Fetch the supervisory organizations scoped to the configured
location and print a name-to-code JSON map.

Example:
  biblio orgs --pretty`,
	Args: cobra.NoArgs,
	RunE: runOrgs,
}

func init() {
	orgsCmd.Flags().BoolVar(&orgsPretty, "pretty", false, "Pretty-print JSON output")
}

func runOrgs(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	client := orgs.NewClient(cfg.OrgsURL, cfg.OrgName, nil)
	codes, err := client.Fetch(cmd.Context())
	if err != nil {
		return fmt.Errorf("fetching supervisory organizations: %w", err)
	}
	return printJSON(codes, orgsPretty)
}
