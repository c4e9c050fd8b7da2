package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/urfave/cli/v2"

	"github.com/ember-lang/ember/cli/config"
)

// newTestApp builds an app whose exit handler never calls os.Exit, so
// cli.Exit errors come back from Run.
func newTestApp(cmds ...*cli.Command) *cli.App {
	return &cli.App{
		Name:           "ember",
		Commands:       cmds,
		ExitErrHandler: func(*cli.Context, error) {},
	}
}

func writeSource(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "main.em")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing source file: %v", err)
	}
	return path
}

func exitCode(t *testing.T, err error) int {
	t.Helper()
	if err == nil {
		return 0
	}
	var coder cli.ExitCoder
	if !errors.As(err, &coder) {
		t.Fatalf("expected an exit coder, got %v", err)
	}
	return coder.ExitCode()
}

func TestLoadConfig_FlagOverrides(t *testing.T) {
	// Point the conventional location at an empty dir so a real user
	// config cannot leak in.
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var got *config.Config
	app := &cli.App{
		Flags: ReplFlags(),
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			got = cfg
			return err
		},
	}

	args := []string{"ember", "--workers", "3", "--log-level", "debug", "--no-color", "--prompt", ">> "}
	if err := app.Run(args); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if got.Workers != 3 {
		t.Errorf("workers = %d, want 3", got.Workers)
	}
	if got.LogLevel != "debug" {
		t.Errorf("log_level = %q, want debug", got.LogLevel)
	}
	if !got.NoColor {
		t.Error("expected no_color=true")
	}
	if got.Prompt != ">> " {
		t.Errorf("prompt = %q", got.Prompt)
	}
}

func TestLoadConfig_FileThenFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ember.yaml")
	if err := os.WriteFile(path, []byte("workers: 8\nlog_level: info\n"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	var got *config.Config
	app := &cli.App{
		Flags: ReplFlags(),
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			got = cfg
			return err
		},
	}

	// --workers overrides the file; log_level comes from the file.
	if err := app.Run([]string{"ember", "--config", path, "--workers", "2"}); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if got.Workers != 2 {
		t.Errorf("workers = %d, want flag override 2", got.Workers)
	}
	if got.LogLevel != "info" {
		t.Errorf("log_level = %q, want file value info", got.LogLevel)
	}
}

func TestRunCommand_CleanFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	path := writeSource(t, "let x = 2; x * 3")

	app := newTestApp(RunCommand())
	err := app.Run([]string{"ember", "run", path})
	if code := exitCode(t, err); code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}
}

func TestRunCommand_ErrorFileExitsOne(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	path := writeSource(t, "ghost + 1")

	app := newTestApp(RunCommand())
	err := app.Run([]string{"ember", "run", path})
	if code := exitCode(t, err); code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
}

func TestRunCommand_RequiresOneArgument(t *testing.T) {
	app := newTestApp(RunCommand())
	err := app.Run([]string{"ember", "run"})
	if code := exitCode(t, err); code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if err == nil || !strings.Contains(err.Error(), "one file argument") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestCheckCommand_TypeErrorExitsOne(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	clean := writeSource(t, "let f = fn(x: Int) => x + 1")
	app := newTestApp(CheckCommand())
	if err := app.Run([]string{"ember", "check", clean}); exitCode(t, err) != 0 {
		t.Errorf("clean file should pass, got %v", err)
	}

	// Type error but no evaluation hazard: check must still fail.
	bad := writeSource(t, `1 + "one"`)
	err := app.Run([]string{"ember", "check", bad})
	if code := exitCode(t, err); code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
}

func TestCheckCommand_DoesNotEvaluate(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	// Well-typed but divides by zero; check passes because nothing runs.
	path := writeSource(t, "1 / 0")
	app := newTestApp(CheckCommand())
	err := app.Run([]string{"ember", "check", path})
	if code := exitCode(t, err); code != 0 {
		t.Errorf("exit code = %d, want 0: check must not evaluate", code)
	}
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	app := newTestApp(VersionCommand("abc1234"))
	app.Writer = &out

	if err := app.Run([]string{"ember", "version"}); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "Ember ") || !strings.Contains(got, "abc1234") {
		t.Errorf("unexpected version output %q", got)
	}
}
