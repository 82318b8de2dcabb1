package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/licensegen/licensegen/internal/license"
)

func newSelectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "select",
		Short: "Print the license that matches the given preferences",
		Long: `Print the SPDX identifier chosen for the two preferences, followed by
the reason. No text is rendered and nothing is written.

Examples:
  licensegen select --copyleft yes
  licensegen select --patent "Yes (Corporate / Safe)"`,
		Args:    cobra.NoArgs,
		PreRunE: validateGenerateFlags,
		RunE:    runSelect,
	}
	cmd.Flags().String("copyleft", license.ShareAlikeNo, "Share-alike requirement")
	cmd.Flags().String("patent", license.PatentNo, "Patent protection requirement")
	cmd.Flags().Bool("quiet", false, "Print only the identifier")
	return cmd
}

func runSelect(cmd *cobra.Command, _ []string) error {
	copyleft, err := license.ParseShareAlike(getStringFlag(cmd, "copyleft"))
	if err != nil {
		return err
	}
	patent, err := license.ParsePatent(getStringFlag(cmd, "patent"))
	if err != nil {
		return err
	}

	id, rec := license.Recommend(copyleft, patent)
	out := cmd.OutOrStdout()
	if getBoolFlag(cmd, "quiet") {
		_, _ = fmt.Fprintln(out, id)
		return nil
	}

	name := string(id)
	if t, ok := deps.Store.Lookup(id); ok {
		name = t.DisplayName
	}
	_, _ = fmt.Fprintf(out, "%s (%s)\nReason: %s\n", name, id, rec.Reason)
	return nil
}
