package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/janelia-scicomp/biblio/identity"
)

var (
	lookupORCID    string
	lookupEmployee string
	lookupPretty   bool
)

var lookupCmd = &cobra.Command{
	Use:   "lookup",
	Short: "Look up one identity record",
	Long: `Look up a single identity record by ORCID or employee ID and print
it as JSON.

Examples:
  biblio lookup --orcid 0000-0003-0369-9788
  biblio lookup --employee-id 19339 --pretty`,
	Args: cobra.NoArgs,
	RunE: runLookup,
}

func init() {
	lookupCmd.Flags().StringVar(&lookupORCID, "orcid", "", "ORCID to look up")
	lookupCmd.Flags().StringVar(&lookupEmployee, "employee-id", "", "Employee ID to look up")
	lookupCmd.Flags().BoolVar(&lookupPretty, "pretty", false, "Pretty-print JSON output")
	lookupCmd.MarkFlagsOneRequired("orcid", "employee-id")
	lookupCmd.MarkFlagsMutuallyExclusive("orcid", "employee-id")
}

func runLookup(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	reg, err := registry(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer reg.Close()

	val, by := lookupORCID, identity.ByORCID
	if lookupEmployee != "" {
		val, by = lookupEmployee, identity.ByEmployeeID
	}
	rec, err := identity.LookupOne(cmd.Context(), reg, val, by)
	if err != nil {
		return err
	}
	if rec == nil {
		return fmt.Errorf("no identity record for %s %s", by, val)
	}
	return printJSON(rec, lookupPretty)
}
