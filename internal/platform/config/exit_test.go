package config_test

import (
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/louisbranch/contactbook/internal/platform/config"
)

// TestExitfTerminatesWithCode1 runs itself as a subprocess because os.Exit
// cannot be intercepted in-process.
func TestExitfTerminatesWithCode1(t *testing.T) {
	if os.Getenv("TEST_EXITF_SUBPROCESS") == "1" {
		config.Exitf("parse flags: %s", "missing session secret")
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestExitfTerminatesWithCode1$")
	cmd.Env = append(os.Environ(), "TEST_EXITF_SUBPROCESS=1")

	out, err := cmd.CombinedOutput()

	exitErr, ok := err.(*exec.ExitError)
	if !ok {
		t.Fatalf("expected *exec.ExitError, got %T: %v", err, err)
	}
	if exitErr.ExitCode() != 1 {
		t.Fatalf("exit code = %d, want 1", exitErr.ExitCode())
	}
	if !strings.Contains(string(out), "parse flags: missing session secret") {
		t.Fatalf("stderr = %q, want the formatted message", string(out))
	}
}
