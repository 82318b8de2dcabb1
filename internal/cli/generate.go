package cli

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/licensegen/licensegen/internal/cli/wizard"
	"github.com/licensegen/licensegen/internal/license"
	"github.com/licensegen/licensegen/internal/ui"
)

// nowFunc supplies the current time for the default copyright year.
var nowFunc = time.Now

// runWizard collects answers interactively. Tests replace it.
var runWizard = wizard.RunWithDefaults

// previewShower shows rendered text and reports whether to save it.
type previewShower interface {
	Show(title, content string) (ui.PreviewAction, error)
}

// newPreviewer builds the preview for cmd. Tests replace it.
var newPreviewer = func(cmd *cobra.Command) previewShower {
	return ui.NewPreviewer(deps.Theme, deps.Headless, cmd.InOrStdin(), cmd.OutOrStdout())
}

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Recommend a license and write LICENSE.txt",
		Long: `Recommend a license from two preferences and write the filled-in text.

Decision order (first match wins):
  share-alike required      -> GNU GPL v3
  patent protection needed  -> Apache 2.0
  otherwise                 -> MIT License

Without a terminal, or with --non-interactive, answers come from flags
and the config file.

Examples:
  licensegen generate
  licensegen generate --non-interactive --name "Ada Lovelace" --year 2024
  licensegen generate --name "Linus T." --patent yes --stdout`,
		Args:    cobra.NoArgs,
		PreRunE: validateGenerateFlags,
		RunE:    runGenerate,
	}

	cmd.Flags().String("name", "", "Developer name printed as the copyright holder")
	cmd.Flags().Int("year", 0, "Copyright year (default: current year)")
	cmd.Flags().String("copyleft", "", fmt.Sprintf("Share-alike requirement: %q, %q, yes or no", license.ShareAlikeYes, license.ShareAlikeNo))
	cmd.Flags().String("patent", "", fmt.Sprintf("Patent protection: %q, %q, yes or no", license.PatentYes, license.PatentNo))
	cmd.Flags().StringP("output", "o", "", "Output file (default: LICENSE.txt)")
	cmd.Flags().Bool("stdout", false, "Print the license text to stdout instead of writing a file")
	cmd.Flags().Bool("force", false, "Overwrite an existing output file")
	cmd.Flags().Bool("preview", false, "Show the text and confirm before saving")
	cmd.Flags().Bool("non-interactive", false, "Skip the interactive wizard; use flags and config")
	return cmd
}

// validateGenerateFlags validates flag values before execution.
func validateGenerateFlags(cmd *cobra.Command, _ []string) error {
	if v := getStringFlag(cmd, "copyleft"); v != "" {
		if _, err := license.ParseShareAlike(v); err != nil {
			return fmt.Errorf("invalid --copyleft value %q: must be one of: %q, %q, yes, no", v, license.ShareAlikeYes, license.ShareAlikeNo)
		}
	}
	if v := getStringFlag(cmd, "patent"); v != "" {
		if _, err := license.ParsePatent(v); err != nil {
			return fmt.Errorf("invalid --patent value %q: must be one of: %q, %q, yes, no", v, license.PatentYes, license.PatentNo)
		}
	}
	return nil
}

// generateOptions is the resolved view of flags and config for one run.
type generateOptions struct {
	name        string
	year        int
	copyleft    string
	patent      string
	output      string
	overwrite   bool
	stdout      bool
	preview     bool
	interactive bool
}

func resolveGenerateOptions(cmd *cobra.Command) generateOptions {
	cfg := deps.Config
	opts := generateOptions{
		name:      cfg.Author.Name,
		year:      cfg.Author.Year,
		copyleft:  getStringFlag(cmd, "copyleft"),
		patent:    getStringFlag(cmd, "patent"),
		output:    cfg.Output.Path,
		overwrite: cfg.Output.Overwrite || getBoolFlag(cmd, "force"),
		stdout:    getBoolFlag(cmd, "stdout"),
		preview:   getBoolFlag(cmd, "preview"),
	}

	if cmd.Flags().Changed("name") {
		opts.name = getStringFlag(cmd, "name")
	}
	if cmd.Flags().Changed("year") {
		opts.year, _ = cmd.Flags().GetInt("year")
	} else if opts.year == 0 {
		opts.year = nowFunc().Year()
	}
	if v := getStringFlag(cmd, "output"); v != "" {
		opts.output = v
	}

	nonInteractive := getBoolFlag(cmd, "non-interactive") || cfg.System.NonInteractive
	opts.interactive = !nonInteractive && !opts.stdout && !deps.Headless.IsHeadless()
	return opts
}

// collectInputs gathers a generation request from the wizard or from flags.
func collectInputs(opts generateOptions) (license.UserInputs, error) {
	if opts.interactive {
		styles := wizard.NewStyles()
		if deps.Theme.NoColor {
			styles = wizard.NoColorStyles()
		}
		answers, err := runWizard(wizard.Defaults{AuthorName: opts.name, Year: opts.year}, styles)
		if err != nil {
			return license.UserInputs{}, err
		}
		return answers.Inputs()
	}

	answers := wizard.Answers{
		AuthorName: opts.name,
		Year:       fmt.Sprint(opts.year),
		ShareAlike: orDefault(opts.copyleft, license.ShareAlikeNo),
		Patent:     orDefault(opts.patent, license.PatentNo),
	}
	return answers.Inputs()
}

// orDefault returns v, or fallback when v is empty.
func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

// runGenerate executes the license generation workflow.
func runGenerate(cmd *cobra.Command, _ []string) error {
	if deps == nil {
		return fmt.Errorf("dependencies not initialized")
	}
	out := cmd.OutOrStdout()
	opts := resolveGenerateOptions(cmd)

	inputs, err := collectInputs(opts)
	if err != nil {
		if errors.Is(err, wizard.ErrCancelled) {
			_, _ = fmt.Fprintln(out, "License generation cancelled.")
			return nil
		}
		return err
	}

	generated, err := deps.Generator.Generate(inputs)
	if err != nil {
		if errors.Is(err, license.ErrMissingField) {
			_, _ = fmt.Fprintln(cmd.ErrOrStderr(), ui.ErrorLine(deps.Theme, wizard.MsgMissingAuthor))
			return &reportedError{err: err}
		}
		return fmt.Errorf("generate license: %w", err)
	}

	if opts.stdout {
		_, err := io.WriteString(out, generated.Text)
		return err
	}

	rec, err := ui.RenderRecommendation(deps.Theme, generated)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(out, rec)

	if opts.interactive || opts.preview {
		action, err := newPreviewer(cmd).Show("Result: "+generated.DisplayName, generated.Text)
		if err != nil {
			return err
		}
		if action == ui.PreviewDiscard {
			_, _ = fmt.Fprintln(out, "License discarded; nothing was written.")
			return nil
		}
	}

	artifact := generated.Artifact()
	path, err := writeArtifact(opts.output, artifact, opts.overwrite)
	if err != nil {
		return err
	}

	deps.Logger.Info("license written", "path", path, "license", generated.ID, "bytes", len(artifact.Content))
	_, _ = fmt.Fprintln(out, ui.SuccessCard(deps.Theme,
		"Saved "+path,
		fmt.Sprintf("License: %s (%s)", generated.DisplayName, generated.ID),
		"Type:    "+artifact.MIMEType,
	))
	return nil
}
