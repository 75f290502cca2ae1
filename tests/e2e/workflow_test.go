package e2e

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// TestEndToEndWorkflow drives a built lifeadvance binary through a typical
// session. Build it into ./bin (or point LIFEADVANCE_BIN_DIR elsewhere) first.
func TestEndToEndWorkflow(t *testing.T) {
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get cwd: %v", err)
	}

	binDir := os.Getenv("LIFEADVANCE_BIN_DIR")
	if binDir == "" {
		binDir = filepath.Join(cwd, "..", "..", "bin")
	}
	binDir, _ = filepath.Abs(binDir)
	cliPath := filepath.Join(binDir, "lifeadvance")
	if _, err := os.Stat(cliPath); os.IsNotExist(err) {
		t.Skipf("CLI binary not found at %s. Please build it first.", cliPath)
	}

	tempDir := t.TempDir()
	var env []string
	for _, e := range os.Environ() {
		if !strings.HasPrefix(e, "HOME=") && !strings.HasPrefix(e, "XDG_CONFIG_HOME=") {
			env = append(env, e)
		}
	}
	env = append(env, fmt.Sprintf("HOME=%s", tempDir))
	env = append(env, fmt.Sprintf("XDG_CONFIG_HOME=%s", filepath.Join(tempDir, ".config")))

	configPath := filepath.Join(tempDir, "config.toml")
	dataPath := filepath.Join(tempDir, "data", "lifeadvance.db")
	if err := os.WriteFile(configPath, []byte(fmt.Sprintf("data_path = %q\ntimezone = \"UTC\"\n", dataPath)), 0600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	run := func(args ...string) string {
		return runCmd(t, cliPath, env, append([]string{"--config", configPath}, args...)...)
	}

	// Commands other than init refuse to run on missing storage
	cmd := exec.Command(cliPath, "--config", configPath, "goal", "list")
	cmd.Env = env
	if out, err := cmd.CombinedOutput(); err == nil {
		t.Fatalf("Expected goal list to fail before init, got: %s", out)
	}

	if out := run("init"); !strings.Contains(out, "Welcome to LifeAdvance") {
		t.Errorf("Expected welcome text on first init, got: %s", out)
	}
	if _, err := os.Stat(dataPath); err != nil {
		t.Fatalf("Data file not created: %v", err)
	}

	run("goal", "add", "Run a 5k", "--priority", "high")
	run("habit", "add", "Meditate", "--target", "5")
	run("hobby", "add", "Guitar", "--duration", "30", "-a", "first chord")

	goals := run("goal", "list")
	if !strings.Contains(goals, "Run a 5k") {
		t.Errorf("Goal missing from list: %s", goals)
	}
	fields := strings.Fields(goals[strings.Index(goals, "[ ]"):])
	if len(fields) < 3 {
		t.Fatalf("Unexpected goal list output: %s", goals)
	}
	run("goal", "toggle", fields[2])

	stats := run("stats")
	for _, want := range []string{"1 completed, 0 pending", "0 of 1 done today", "0 read, 6 unread", "30m total"} {
		if !strings.Contains(stats, want) {
			t.Errorf("Expected %q in stats output:\n%s", want, stats)
		}
	}

	if out := run("backup", "create"); !strings.Contains(out, "Backup created") {
		t.Errorf("Unexpected backup output: %s", out)
	}
	if out := run("doctor"); !strings.Contains(out, "All diagnostics passed!") {
		t.Errorf("Doctor reported problems: %s", out)
	}

	run("reset", "--yes")
	if out := run("goal", "list"); !strings.Contains(out, "No goals yet") {
		t.Errorf("Expected empty goal list after reset, got: %s", out)
	}
}

func runCmd(t *testing.T, path string, env []string, args ...string) string {
	t.Helper()
	cmd := exec.Command(path, args...)
	cmd.Env = env
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("Command %s %v failed: %v\nOutput: %s", path, args, err, out)
	}
	return string(out)
}
