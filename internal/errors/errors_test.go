package errors

import (
	stderrors "errors"
	"os"
	"os/exec"
	"strings"
	"testing"
)

func TestFormat(t *testing.T) {
	if got := Format(nil); got != "" {
		t.Errorf("Format(nil) = %q, want empty", got)
	}
	if got := Format(stderrors.New("boom")); got != "Error: boom" {
		t.Errorf("Format = %q", got)
	}
}

func TestFormatf(t *testing.T) {
	if got := Formatf("bad value %d", 7); got != "Error: bad value 7" {
		t.Errorf("Formatf = %q", got)
	}
}

func TestFatal_NilIsNoOp(t *testing.T) {
	// Fatal(nil) must return instead of exiting; reaching the next line is
	// the assertion.
	Fatal(nil)
}

func TestFatal_ExitsWithCodeOne(t *testing.T) {
	if os.Getenv("TEST_FATAL") == "1" {
		Fatal(stderrors.New("boom"))
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestFatal_ExitsWithCodeOne")
	cmd.Env = append(os.Environ(), "TEST_FATAL=1")
	out, err := cmd.CombinedOutput()

	var exitErr *exec.ExitError
	if !stderrors.As(err, &exitErr) {
		t.Fatalf("expected exit error, got %v", err)
	}
	if exitErr.ExitCode() != 1 {
		t.Errorf("exit code = %d, want 1", exitErr.ExitCode())
	}
	if !strings.Contains(string(out), "Error: boom") {
		t.Errorf("stderr = %q, want it to contain 'Error: boom'", out)
	}
}
