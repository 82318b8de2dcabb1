package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"

	"github.com/licensegen/licensegen/internal/cli/wizard"
	"github.com/licensegen/licensegen/internal/license"
	"github.com/licensegen/licensegen/internal/ui"
)

type cmdResult struct {
	stdout string
	stderr string
	err    error
}

// executeCmd runs a fresh command tree in headless mode with an isolated
// config file. configYAML may be empty.
func executeCmd(t *testing.T, configYAML string, args ...string) cmdResult {
	t.Helper()

	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	if configYAML != "" {
		if err := os.WriteFile(cfgPath, []byte(configYAML), 0o644); err != nil {
			t.Fatalf("write config: %v", err)
		}
	}

	InitDependencies()
	deps.Headless.ForceHeadless(true)

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(""))
	cmd.SetArgs(append(args, "--config", cfgPath, "--no-color"))

	err := cmd.Execute()
	return cmdResult{stdout: out.String(), stderr: errOut.String(), err: err}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

func stubNow(t *testing.T, year int) {
	t.Helper()
	old := nowFunc
	nowFunc = func() time.Time { return time.Date(year, time.June, 1, 0, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { nowFunc = old })
}

func TestRootCmd_HasSubcommands(t *testing.T) {
	want := map[string]bool{"generate": false, "select": false, "list": false, "config": false}
	for _, c := range newRootCmd().Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("%s should be registered as a subcommand of root", name)
		}
	}
}

func TestGenerateCmd_HasFlags(t *testing.T) {
	cmd := newGenerateCmd()
	flags := []string{"name", "year", "copyleft", "patent", "output", "stdout", "force", "preview", "non-interactive"}
	for _, name := range flags {
		if cmd.Flags().Lookup(name) == nil {
			t.Errorf("generate command should have --%s flag", name)
		}
	}
}

func TestGenerate_Scenarios(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantPrefix string
		wantLine   string
		wantCard   string
	}{
		{
			name:       "permissive",
			args:       []string{"--name", "Ada Lovelace", "--year", "2024"},
			wantPrefix: "MIT License",
			wantLine:   "Copyright (c) 2024 Ada Lovelace",
			wantCard:   "License: MIT License (MIT)",
		},
		{
			name:       "copyleft dominates patent",
			args:       []string{"--name", "Grace Hopper", "--year", "1959", "--copyleft", "yes", "--patent", "yes"},
			wantPrefix: "GNU GENERAL PUBLIC LICENSE",
			wantLine:   "Copyright (C) 1959 Grace Hopper",
			wantCard:   "License: GNU GPL v3 (GPL-3.0)",
		},
		{
			name:       "patent clause",
			args:       []string{"--name", "Linus T.", "--year", "1991", "--copyleft", license.ShareAlikeNo, "--patent", license.PatentYes},
			wantPrefix: "Apache License",
			wantLine:   "Copyright 1991 Linus T.",
			wantCard:   "License: Apache 2.0 (Apache-2.0)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outPath := filepath.Join(t.TempDir(), "LICENSE.txt")
			args := append([]string{"generate", "--non-interactive", "--output", outPath}, tt.args...)

			res := executeCmd(t, "", args...)
			if res.err != nil {
				t.Fatalf("generate error = %v (stderr: %s)", res.err, res.stderr)
			}

			text := readFile(t, outPath)
			if !strings.HasPrefix(text, tt.wantPrefix) {
				t.Errorf("LICENSE.txt does not begin with %q", tt.wantPrefix)
			}
			if !strings.Contains(text, tt.wantLine) {
				t.Errorf("LICENSE.txt does not contain %q", tt.wantLine)
			}
			if !strings.Contains(res.stdout, "Recommendation:") {
				t.Errorf("expected recommendation in output, got: %q", res.stdout)
			}
			if !strings.Contains(res.stdout, tt.wantCard) {
				t.Errorf("expected %q in output, got: %q", tt.wantCard, res.stdout)
			}
		})
	}
}

func TestGenerate_MissingName(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "LICENSE.txt")

	res := executeCmd(t, "", "generate", "--non-interactive", "--output", outPath, "--copyleft", "yes")
	if !errors.Is(res.err, license.ErrMissingField) {
		t.Fatalf("generate error = %v, want ErrMissingField", res.err)
	}
	var reported *reportedError
	if !errors.As(res.err, &reported) {
		t.Error("missing-name error should be marked as already reported")
	}
	if !strings.Contains(res.stderr, wizard.MsgMissingAuthor) {
		t.Errorf("expected %q on stderr, got: %q", wizard.MsgMissingAuthor, res.stderr)
	}
	if _, err := os.Stat(outPath); !os.IsNotExist(err) {
		t.Error("no file should be written when the name is missing")
	}
	if strings.Contains(res.stdout, "Recommendation") {
		t.Error("no recommendation should be shown when the name is missing")
	}
}

func TestGenerate_ExistingFile(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "LICENSE.txt")
	if err := os.WriteFile(outPath, []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}

	res := executeCmd(t, "", "generate", "--non-interactive", "--name", "Ada", "--output", outPath)
	if !errors.Is(res.err, ErrOutputExists) {
		t.Fatalf("generate error = %v, want ErrOutputExists", res.err)
	}
	if readFile(t, outPath) != "old" {
		t.Error("existing file must not be modified without --force")
	}

	res = executeCmd(t, "", "generate", "--non-interactive", "--name", "Ada", "--output", outPath, "--force")
	if res.err != nil {
		t.Fatalf("generate --force error = %v", res.err)
	}
	if !strings.HasPrefix(readFile(t, outPath), "MIT License") {
		t.Error("--force should replace the file")
	}
}

func TestGenerate_Stdout(t *testing.T) {
	dir := t.TempDir()
	outPath := filepath.Join(dir, "LICENSE.txt")

	res := executeCmd(t, "", "generate", "--name", "Ada Lovelace", "--year", "2024", "--stdout", "--output", outPath)
	if res.err != nil {
		t.Fatalf("generate --stdout error = %v", res.err)
	}
	if !strings.HasPrefix(res.stdout, "MIT License\n") {
		t.Errorf("stdout should be the bare license text, got: %q", res.stdout)
	}
	if strings.Contains(res.stdout, "Recommendation") {
		t.Error("--stdout should print only the license text")
	}
	if _, err := os.Stat(outPath); !os.IsNotExist(err) {
		t.Error("--stdout should not write a file")
	}
}

func TestGenerate_DefaultsFromConfigAndClock(t *testing.T) {
	stubNow(t, 2031)
	outPath := filepath.Join(t.TempDir(), "COPYING")

	cfg := "author:\n  name: Config Author\noutput:\n  path: " + outPath + "\n"
	res := executeCmd(t, cfg, "generate", "--non-interactive")
	if res.err != nil {
		t.Fatalf("generate error = %v (stderr: %s)", res.err, res.stderr)
	}
	if !strings.Contains(readFile(t, outPath), "Copyright (c) 2031 Config Author") {
		t.Error("expected config author and current year in license")
	}
}

func TestGenerate_FlagOverridesConfigName(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "LICENSE.txt")

	cfg := "author:\n  name: Config Author\n  year: 2000\n"
	res := executeCmd(t, cfg, "generate", "--non-interactive", "--name", "Flag Author", "--output", outPath)
	if res.err != nil {
		t.Fatalf("generate error = %v", res.err)
	}
	if !strings.Contains(readFile(t, outPath), "Copyright (c) 2000 Flag Author") {
		t.Error("expected flag name and config year in license")
	}
}

func TestGenerate_PreviewHeadless(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "LICENSE.txt")

	res := executeCmd(t, "", "generate", "--non-interactive", "--preview", "--name", "Ada", "--year", "2024", "--output", outPath)
	if res.err != nil {
		t.Fatalf("generate --preview error = %v", res.err)
	}
	if !strings.Contains(res.stdout, "Copyright (c) 2024 Ada") {
		t.Errorf("headless preview should print the text, got: %q", res.stdout)
	}
	if _, err := os.Stat(outPath); err != nil {
		t.Errorf("headless preview should still save: %v", err)
	}
}

type fixedPreview struct {
	action ui.PreviewAction
	shown  string
}

func (p *fixedPreview) Show(_, content string) (ui.PreviewAction, error) {
	p.shown = content
	return p.action, nil
}

func TestGenerate_PreviewDiscard(t *testing.T) {
	preview := &fixedPreview{action: ui.PreviewDiscard}
	old := newPreviewer
	newPreviewer = func(*cobra.Command) previewShower { return preview }
	t.Cleanup(func() { newPreviewer = old })

	dir := t.TempDir()
	existing := filepath.Join(dir, "LICENSE.txt")
	if err := os.WriteFile(existing, []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}

	res := executeCmd(t, "", "generate", "--non-interactive", "--preview", "--force", "--name", "Ada", "--output", existing)
	if res.err != nil {
		t.Fatalf("discarded preview should not be an error, got %v", res.err)
	}
	if !strings.Contains(preview.shown, "Ada") {
		t.Errorf("preview should receive the rendered text, got: %q", preview.shown)
	}
	if !strings.Contains(res.stdout, "discarded") {
		t.Errorf("expected discard notice, got: %q", res.stdout)
	}
	if readFile(t, existing) != "old" {
		t.Error("discarding must leave the existing file untouched even with --force")
	}

	fresh := filepath.Join(dir, "COPYING")
	res = executeCmd(t, "", "generate", "--non-interactive", "--preview", "--name", "Ada", "--output", fresh)
	if res.err != nil {
		t.Fatalf("generate error = %v", res.err)
	}
	if _, err := os.Stat(fresh); !os.IsNotExist(err) {
		t.Error("discarding must not create the output file")
	}
}

func TestGenerate_InvalidFlags(t *testing.T) {
	tests := [][]string{
		{"generate", "--non-interactive", "--name", "Ada", "--copyleft", "sometimes"},
		{"generate", "--non-interactive", "--name", "Ada", "--patent", "maybe"},
		{"generate", "--non-interactive", "--name", "Ada", "--year", "MMXXIV"},
	}
	for _, args := range tests {
		if res := executeCmd(t, "", args...); res.err == nil {
			t.Errorf("%v: expected an error", args)
		}
	}
}

func TestGenerate_WizardCancelled(t *testing.T) {
	old := runWizard
	runWizard = func(wizard.Defaults, *wizard.Styles) (*wizard.Answers, error) {
		return nil, wizard.ErrCancelled
	}
	t.Cleanup(func() { runWizard = old })

	InitDependencies()
	deps.Headless.ForceHeadless(false)
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"generate", "--config", filepath.Join(t.TempDir(), "none.yaml"), "--no-color"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("cancelled wizard should not be an error, got %v", err)
	}
	if !strings.Contains(out.String(), "cancelled") {
		t.Errorf("expected cancellation notice, got: %q", out.String())
	}
}

func TestCollectInputs_Interactive(t *testing.T) {
	InitDependencies()

	var gotDefaults wizard.Defaults
	old := runWizard
	runWizard = func(d wizard.Defaults, _ *wizard.Styles) (*wizard.Answers, error) {
		gotDefaults = d
		return &wizard.Answers{
			AuthorName: "Grace Hopper",
			Year:       "1959",
			ShareAlike: license.ShareAlikeYes,
			Patent:     license.PatentYes,
		}, nil
	}
	t.Cleanup(func() { runWizard = old })

	in, err := collectInputs(generateOptions{name: "Default Name", year: 2024, interactive: true})
	if err != nil {
		t.Fatalf("collectInputs() error = %v", err)
	}
	if gotDefaults.AuthorName != "Default Name" || gotDefaults.Year != 2024 {
		t.Errorf("wizard defaults = %+v", gotDefaults)
	}
	want := license.UserInputs{AuthorName: "Grace Hopper", Year: 1959, WantsCopyleft: true, WantsPatentClause: true}
	if in != want {
		t.Errorf("collectInputs() = %+v, want %+v", in, want)
	}
}

func TestSelectCmd(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"select", "--quiet"}, "MIT\n"},
		{[]string{"select", "--quiet", "--patent", "yes"}, "Apache-2.0\n"},
		{[]string{"select", "--quiet", "--copyleft", "yes", "--patent", "yes"}, "GPL-3.0\n"},
	}
	for _, tt := range tests {
		res := executeCmd(t, "", tt.args...)
		if res.err != nil {
			t.Fatalf("%v error = %v", tt.args, res.err)
		}
		if res.stdout != tt.want {
			t.Errorf("%v = %q, want %q", tt.args, res.stdout, tt.want)
		}
	}

	res := executeCmd(t, "", "select", "--copyleft", license.ShareAlikeYes)
	if !strings.Contains(res.stdout, "GNU GPL v3 (GPL-3.0)") || !strings.Contains(res.stdout, "Reason:") {
		t.Errorf("select output = %q", res.stdout)
	}
}

func TestListCmd(t *testing.T) {
	res := executeCmd(t, "", "list")
	if res.err != nil {
		t.Fatalf("list error = %v", res.err)
	}
	for _, want := range []string{"MIT", "MIT License", "Apache-2.0", "Apache 2.0", "GPL-3.0", "GNU GPL v3"} {
		if !strings.Contains(res.stdout, want) {
			t.Errorf("list output missing %q: %q", want, res.stdout)
		}
	}
}

func TestConfigCmd(t *testing.T) {
	res := executeCmd(t, "author:\n  name: Ada\n", "config", "show")
	if res.err != nil {
		t.Fatalf("config show error = %v", res.err)
	}
	if !strings.Contains(res.stdout, "name: Ada") {
		t.Errorf("config show output = %q", res.stdout)
	}

	res = executeCmd(t, "", "config", "path")
	if res.err != nil || !strings.HasSuffix(strings.TrimSpace(res.stdout), "config.yaml") {
		t.Errorf("config path = %q, err = %v", res.stdout, res.err)
	}
}

func TestInvalidConfigFails(t *testing.T) {
	res := executeCmd(t, "system:\n  log_level: loud\n", "list")
	if res.err == nil {
		t.Fatal("expected an error for an invalid log level")
	}

	res = executeCmd(t, "", "list", "--log-level", "loud")
	if res.err == nil {
		t.Fatal("expected an error for an invalid --log-level")
	}
}

func TestWriteArtifact_Directory(t *testing.T) {
	dir := t.TempDir()
	a := license.Artifact{FileName: license.ArtifactFileName, Content: []byte("text\n")}

	path, err := writeArtifact(dir, a, false)
	if err != nil {
		t.Fatalf("writeArtifact() error = %v", err)
	}
	if path != filepath.Join(dir, "LICENSE.txt") {
		t.Errorf("path = %q", path)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != licenseFileMode {
		t.Errorf("mode = %v, want %v", info.Mode().Perm(), os.FileMode(licenseFileMode))
	}
}

func TestWriteArtifact_Overwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "LICENSE.txt")
	if err := os.WriteFile(path, []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}
	a := license.Artifact{FileName: license.ArtifactFileName, Content: []byte("new\n")}

	if _, err := writeArtifact(path, a, false); !errors.Is(err, ErrOutputExists) {
		t.Fatalf("writeArtifact(overwrite=false) error = %v, want ErrOutputExists", err)
	}
	if got := readFile(t, path); got != "old" {
		t.Errorf("content = %q, want the original file", got)
	}

	if _, err := writeArtifact(path, a, true); err != nil {
		t.Fatalf("writeArtifact(overwrite=true) error = %v", err)
	}
	if got := readFile(t, path); got != "new\n" {
		t.Errorf("content = %q, want replaced file", got)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("temp files left behind: %d entries", len(entries))
	}
}

func TestConfigAuthorWithDollarSign(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "LICENSE.txt")

	res := executeCmd(t, "author:\n  name: Ke$HA Records\n", "generate", "--non-interactive", "--year", "2024", "--output", outPath)
	if res.err != nil {
		t.Fatalf("generate error = %v (stderr: %s)", res.err, res.stderr)
	}
	if !strings.Contains(readFile(t, outPath), "Copyright (c) 2024 Ke$HA Records") {
		t.Error("expected the configured name verbatim")
	}
}

func TestReportedError(t *testing.T) {
	inner := &license.MissingFieldError{Field: license.FieldAuthorName}
	err := &reportedError{err: inner}
	if err.Error() != inner.Error() {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, license.ErrMissingField) {
		t.Error("reportedError should unwrap to the missing-field error")
	}
}
