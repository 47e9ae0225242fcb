package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/janelia-scicomp/biblio/identity"
	"github.com/janelia-scicomp/biblio/people"
)

var (
	enrollMerge  bool
	enrollPretty bool
)

var enrollCmd = &cobra.Command{
	Use:   "enroll <employee-id>",
	Short: "Enroll a person in the identity registry",
	Long: `Fetch a person from the personnel directory and insert them into the
identity registry with their name variants and affiliations.

With --merge, an existing record for the person is updated in place
instead of the enrollment failing.

Examples:
  biblio enroll 19339
  biblio enroll 19339 --merge`,
	Args: cobra.ExactArgs(1),
	RunE: runEnroll,
}

func init() {
	enrollCmd.Flags().BoolVar(&enrollMerge, "merge", false, "Update an existing record instead of failing")
	enrollCmd.Flags().BoolVar(&enrollPretty, "pretty", false, "Pretty-print JSON output")
}

func runEnroll(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.PeopleURL == "" {
		return fmt.Errorf("PEOPLE_URL is not set")
	}
	reg, err := registry(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer reg.Close()

	directory := people.NewClient(cfg.PeopleURL, cfg.PeopleAPIKey, nil)
	person, err := directory.Lookup(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("looking up %s: %w", args[0], err)
	}
	if person == nil {
		return fmt.Errorf("no directory entry for %s", args[0])
	}

	rec, err := identity.Enroll(cmd.Context(), reg, person)
	if errors.Is(err, identity.ErrExists) && enrollMerge {
		existing, lerr := identity.LookupOne(cmd.Context(), reg, args[0], identity.ByEmployeeID)
		if lerr != nil {
			return lerr
		}
		rec, err = identity.Merge(cmd.Context(), reg, existing, person)
	}
	if err != nil {
		return err
	}
	return printJSON(rec, enrollPretty)
}
