package app

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shandysiswandi/parserconfig/internal/pkg/pkgerror"
)

const tutorialContent = `[tutorial]
username = my_username
password = my_password
bearer_token = my_bearer_token
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func run(t *testing.T, args ...string) (string, string, int) {
	t.Helper()

	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	var stdout, stderr bytes.Buffer
	code := New(&stdout, &stderr).Run(context.Background(), args)
	return stdout.String(), stderr.String(), code
}

func TestCredentialsCommand(t *testing.T) {
	path := writeFile(t, "settings.ini", tutorialContent)

	stdout, stderr, code := run(t, "credentials", "--file", path, "tutorial", "password", "username")
	if code != pkgerror.ExitOK {
		t.Fatalf("unexpected exit %d: %s", code, stderr)
	}
	if stdout != "password=my_password\nusername=my_username\n" {
		t.Fatalf("unexpected output %q", stdout)
	}

	stdout, _, code = run(t, "credentials", "-f", path, "--values", "tutorial", "bearer_token")
	if code != pkgerror.ExitOK || stdout != "my_bearer_token\n" {
		t.Fatalf("unexpected values output %q (exit %d)", stdout, code)
	}
}

func TestSetThenGet(t *testing.T) {
	path := writeFile(t, "settings.ini", tutorialContent)

	if _, stderr, code := run(t, "set", "-f", path, "tutorial", "example", "my_example"); code != pkgerror.ExitOK {
		t.Fatalf("set: exit %d: %s", code, stderr)
	}

	stdout, stderr, code := run(t, "get", "-f", path, "tutorial", "example")
	if code != pkgerror.ExitOK {
		t.Fatalf("get: exit %d: %s", code, stderr)
	}
	if stdout != "my_example\n" {
		t.Fatalf("unexpected value %q", stdout)
	}

	_, _, code = run(t, "set", "-f", path, "api", "token", "abc")
	if code != pkgerror.ExitLookup {
		t.Fatalf("expected lookup failure for missing section, got %d", code)
	}
	if _, stderr, code := run(t, "set", "-f", path, "--add-section", "api", "token", "abc"); code != pkgerror.ExitOK {
		t.Fatalf("set --add-section: exit %d: %s", code, stderr)
	}

	stdout, _, _ = run(t, "sections", "-f", path)
	if stdout != "tutorial\napi\n" {
		t.Fatalf("unexpected sections %q", stdout)
	}
}

func TestSectionEditingCommands(t *testing.T) {
	path := writeFile(t, "settings.ini", tutorialContent)

	if _, stderr, code := run(t, "add-section", "-f", path, "api"); code != pkgerror.ExitOK {
		t.Fatalf("add-section: exit %d: %s", code, stderr)
	}
	if _, _, code := run(t, "add-section", "-f", path, "api"); code != pkgerror.ExitParse {
		t.Fatalf("expected duplicate section exit, got %d", code)
	}
	if _, stderr, code := run(t, "remove-section", "-f", path, "api"); code != pkgerror.ExitOK {
		t.Fatalf("remove-section: exit %d: %s", code, stderr)
	}
	if _, _, code := run(t, "remove-section", "-f", path, "api"); code != pkgerror.ExitLookup {
		t.Fatalf("expected missing section exit, got %d", code)
	}
	if _, stderr, code := run(t, "remove-option", "-f", path, "tutorial", "bearer_token"); code != pkgerror.ExitOK {
		t.Fatalf("remove-option: exit %d: %s", code, stderr)
	}
	_, stderr, code := run(t, "remove-option", "-f", path, "tutorial", "bearer_token")
	if code != pkgerror.ExitLookup || !strings.Contains(stderr, "bearer_token") {
		t.Fatalf("expected missing option exit, got %d: %s", code, stderr)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if strings.Contains(string(data), "bearer_token") || strings.Contains(string(data), "[api]") {
		t.Fatalf("unexpected file content %q", data)
	}
}

func TestFileErrors(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "missing.ini")

	_, stderr, code := run(t, "sections", "-f", missing)
	if code != pkgerror.ExitNoFile || !strings.Contains(stderr, missing+" not found on the filesystem") {
		t.Fatalf("expected not found, got %d: %s", code, stderr)
	}

	if _, stderr, code := run(t, "sections", "-f", missing, "--create"); code != pkgerror.ExitOK {
		t.Fatalf("expected --create to succeed, got %d: %s", code, stderr)
	}
	if _, err := os.Stat(missing); err != nil {
		t.Fatalf("expected file to be created: %v", err)
	}

	_, stderr, code = run(t, "sections", "-f", dir, "--create")
	if code != pkgerror.ExitUsage || !strings.Contains(stderr, dir+" is a directory") {
		t.Fatalf("expected directory error, got %d: %s", code, stderr)
	}

	dup := writeFile(t, "dup.ini", "[a]\n[a]\n")
	if _, _, code := run(t, "sections", "-f", dup); code != pkgerror.ExitParse {
		t.Fatalf("expected duplicate section exit, got %d", code)
	}
}

func TestLookupErrors(t *testing.T) {
	path := writeFile(t, "settings.ini", tutorialContent)

	if _, _, code := run(t, "get", "-f", path, "missing", "username"); code != pkgerror.ExitLookup {
		t.Fatalf("expected lookup exit for section, got %d", code)
	}
	if _, _, code := run(t, "credentials", "-f", path, "tutorial", "username", "api_key"); code != pkgerror.ExitLookup {
		t.Fatalf("expected lookup exit for option, got %d", code)
	}
}

func TestUsageErrors(t *testing.T) {
	path := writeFile(t, "settings.ini", tutorialContent)

	if _, stderr, code := run(t, "sections"); code != pkgerror.ExitUsage || !strings.Contains(stderr, "--file") {
		t.Fatalf("expected missing --file usage error, got %d: %s", code, stderr)
	}
	if _, _, code := run(t, "get", "-f", path, "tutorial"); code != pkgerror.ExitUsage {
		t.Fatalf("expected argument count usage error, got %d", code)
	}
	if _, _, code := run(t, "sections", "-f", path, "--bogus"); code != pkgerror.ExitUsage {
		t.Fatalf("expected unknown flag usage error, got %d", code)
	}
	if _, _, code := run(t, "sections", "-f", path, "--log-level", "loud"); code != pkgerror.ExitUsage {
		t.Fatalf("expected bad log level usage error, got %d", code)
	}
	if _, _, code := run(t, "--help"); code != pkgerror.ExitOK {
		t.Fatalf("expected help without --file to succeed, got %d", code)
	}
}

func TestSettingsSources(t *testing.T) {
	path := writeFile(t, "settings.ini", tutorialContent)

	t.Setenv("PARSERCONFIG_STORE_PATH", path)
	stdout, stderr, code := run(t, "sections")
	if code != pkgerror.ExitOK || stdout != "tutorial\n" {
		t.Fatalf("expected env path to be used, got %d %q: %s", code, stdout, stderr)
	}

	settings := writeFile(t, "parserconfig.yaml", "store:\n  path: 42\nlog:\n  format: text\n")
	t.Setenv("PARSERCONFIG_STORE_PATH", "")
	_, stderr, code = run(t, "sections", "--config", settings)
	if code != pkgerror.ExitUsage || !strings.Contains(stderr, `received a "int"`) {
		t.Fatalf("expected type mismatch, got %d: %s", code, stderr)
	}

	_, _, code = run(t, "sections", "--config", filepath.Join(t.TempDir(), "missing.yaml"), "-f", path)
	if code != pkgerror.ExitUsage {
		t.Fatalf("expected missing settings file usage error, got %d", code)
	}
}

func TestLogsCarryRunID(t *testing.T) {
	path := writeFile(t, "settings.ini", tutorialContent)

	_, stderr, code := run(t, "sections", "-f", path, "--log-format", "text", "--log-level", "debug")
	if code != pkgerror.ExitOK {
		t.Fatalf("unexpected exit %d: %s", code, stderr)
	}
	if !strings.Contains(stderr, "configuration file loaded") || !strings.Contains(stderr, "run_id=") {
		t.Fatalf("expected load notice with run id, got %q", stderr)
	}
}

func TestStopRunsClosersOnce(t *testing.T) {
	app := New(&bytes.Buffer{}, &bytes.Buffer{})

	calls := 0
	app.closerFn = map[string]func(context.Context) error{
		"Config": func(context.Context) error {
			calls++
			return nil
		},
	}

	app.Stop(context.Background())
	app.Stop(context.Background())

	if calls != 1 {
		t.Fatalf("expected closers to run once, got %d", calls)
	}
}
