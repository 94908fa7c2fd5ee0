package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type cliTestEnv struct {
	baseDir    string
	configPath string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	configPath := filepath.Join(base, "config.toml")
	content := fmt.Sprintf(
		"[paths]\ndata_dir = %q\nlog_dir = %q\n",
		filepath.Join(base, "data"),
		filepath.Join(base, "logs"),
	)
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	return &cliTestEnv{baseDir: base, configPath: configPath}
}

func runCLI(t *testing.T, env *cliTestEnv, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--config", env.configPath}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, want string) {
	t.Helper()
	if !strings.Contains(output, want) {
		t.Fatalf("expected output to contain %q, got:\n%s", want, output)
	}
}

func TestCLIStatusFirstRun(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, env, "status")
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	requireContains(t, out, "Album Dashboard")
	requireContains(t, out, "Song 1")
	requireContains(t, out, "Song 12")
	requireContains(t, out, "Overall: 0%")
}

func TestCLISongEditing(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, env, "song", "title", "3", "Night", "Drive")
	if err != nil {
		t.Fatalf("song title: %v", err)
	}
	requireContains(t, out, `Song 3 is now "Night Drive"`)

	// Out-of-range tempo input clamps and says so.
	out, _, err = runCLI(t, env, "song", "tempo", "3", "500")
	if err != nil {
		t.Fatalf("song tempo: %v", err)
	}
	requireContains(t, out, "tempo set to 300 BPM")
	requireContains(t, out, "adjusted")

	out, _, err = runCLI(t, env, "song", "key", "3", "C#", "major")
	if err != nil {
		t.Fatalf("song key: %v", err)
	}
	requireContains(t, out, "key set to Db Major")

	out, _, err = runCLI(t, env, "song", "duration", "3", "4", "75")
	if err != nil {
		t.Fatalf("song duration: %v", err)
	}
	requireContains(t, out, "length set to 4:59")

	out, _, err = runCLI(t, env, "status")
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	requireContains(t, out, "Night Drive")
	requireContains(t, out, "Db Major")
	requireContains(t, out, "4:59")
}

func TestCLISongKeyClear(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, _, err := runCLI(t, env, "song", "key", "1", "A", "minor"); err != nil {
		t.Fatalf("set key: %v", err)
	}
	out, _, err := runCLI(t, env, "song", "key", "1")
	if err != nil {
		t.Fatalf("clear key: %v", err)
	}
	requireContains(t, out, "key cleared")
}

func TestCLISongKeyRejectsUnknownNote(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, env, "song", "key", "1", "Zebra", "major")
	if err == nil || !strings.Contains(err.Error(), `unknown note "Zebra"`) {
		t.Fatalf("expected unknown-note error, got %v", err)
	}

	out, _, err := runCLI(t, env, "show", "1")
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	requireContains(t, out, "Key: -")
}

func TestCLIUnknownSong(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, env, "song", "tempo", "99", "140")
	if err == nil || !strings.Contains(err.Error(), "song 99 not found") {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestCLIStageEditing(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, env, "stage", "set", "1", "1", "--value", "150")
	if err != nil {
		t.Fatalf("stage set: %v", err)
	}
	// Value clamps to 100; one of eight stages full is 13%.
	requireContains(t, out, "at 100%")
	requireContains(t, out, "song 13% complete")

	out, _, err = runCLI(t, env, "stage", "add", "1")
	if err != nil {
		t.Fatalf("stage add: %v", err)
	}
	requireContains(t, out, `Added "Stage 9"`)

	out, _, err = runCLI(t, env, "stage", "move", "1", "1", "3")
	if err != nil {
		t.Fatalf("stage move: %v", err)
	}
	requireContains(t, out, `Moved "Demo" to position 3`)

	out, _, err = runCLI(t, env, "stage", "remove", "1", "9")
	if err != nil {
		t.Fatalf("stage remove: %v", err)
	}
	requireContains(t, out, `Removed "Stage 9"`)

	out, _, err = runCLI(t, env, "show", "1")
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	requireContains(t, out, "Completion: 13%")
	requireContains(t, out, "Demo")

	_, _, err = runCLI(t, env, "stage", "set", "1", "20", "--value", "10")
	if err == nil || !strings.Contains(err.Error(), "out of range") {
		t.Fatalf("expected out-of-range error, got %v", err)
	}
}

func TestCLISongMove(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, _, err := runCLI(t, env, "song", "title", "1", "First"); err != nil {
		t.Fatalf("rename: %v", err)
	}
	out, _, err := runCLI(t, env, "song", "move", "1", "3")
	if err != nil {
		t.Fatalf("song move: %v", err)
	}
	requireContains(t, out, `Moved "First" to position 3`)

	out, _, err = runCLI(t, env, "song", "move", "2", "2")
	if err != nil {
		t.Fatalf("song move no-op: %v", err)
	}
	requireContains(t, out, "No change")
}

func TestCLIAlbumSettings(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, env, "album", "title", "Midnight", "Sessions")
	if err != nil {
		t.Fatalf("album title: %v", err)
	}
	requireContains(t, out, `Album is now "Midnight Sessions"`)

	// A blank-after-trim title keeps the current one.
	out, _, err = runCLI(t, env, "album", "title", "   ")
	if err != nil {
		t.Fatalf("blank album title: %v", err)
	}
	requireContains(t, out, "No change")
	out, _, err = runCLI(t, env, "status")
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	requireContains(t, out, "Midnight Sessions")

	out, _, err = runCLI(t, env, "album", "deadline", "2027-03-01")
	if err != nil {
		t.Fatalf("album deadline: %v", err)
	}
	requireContains(t, out, "Deadline set to 2027-03-01")

	out, _, err = runCLI(t, env, "countdown")
	if err != nil {
		t.Fatalf("countdown: %v", err)
	}
	requireContains(t, out, "Due in:")

	_, _, err = runCLI(t, env, "album", "deadline", "not-a-date")
	if err == nil {
		t.Fatal("expected error for unparsable deadline")
	}
}

func TestCLIExportImportReset(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, _, err := runCLI(t, env, "album", "title", "Keeper"); err != nil {
		t.Fatalf("album title: %v", err)
	}

	exportPath := filepath.Join(env.baseDir, "backup.json")
	out, _, err := runCLI(t, env, "export", "--output", exportPath)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	requireContains(t, out, "Exported 12 songs")

	_, _, err = runCLI(t, env, "reset")
	if err == nil || !strings.Contains(err.Error(), "--force") {
		t.Fatalf("expected reset to demand --force, got %v", err)
	}

	if _, _, err := runCLI(t, env, "reset", "--force"); err != nil {
		t.Fatalf("reset --force: %v", err)
	}
	out, _, err = runCLI(t, env, "status")
	if err != nil {
		t.Fatalf("status after reset: %v", err)
	}
	requireContains(t, out, "Album Dashboard")

	out, _, err = runCLI(t, env, "import", exportPath)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	requireContains(t, out, "Imported 12 songs")

	out, _, err = runCLI(t, env, "status")
	if err != nil {
		t.Fatalf("status after import: %v", err)
	}
	requireContains(t, out, "Keeper")
}

func TestCLIImportRejectsMalformedFile(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, _, err := runCLI(t, env, "album", "title", "Untouched"); err != nil {
		t.Fatalf("album title: %v", err)
	}

	badPath := filepath.Join(env.baseDir, "bad.json")
	if err := os.WriteFile(badPath, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write bad file: %v", err)
	}

	_, _, err := runCLI(t, env, "import", badPath)
	if err == nil || !strings.Contains(err.Error(), "invalid file") {
		t.Fatalf("expected invalid-file error, got %v", err)
	}

	out, _, err := runCLI(t, env, "status")
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	requireContains(t, out, "Untouched")
}
