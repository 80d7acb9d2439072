// Testing Strategy Design Decision:
//
// The cmd/ package contains CLI integration tests that exercise the full
// stack: command parsing -> variant resolution -> textpath library -> output.
//
// The extension packages show "[no test files]" - this is intentional. Their
// RunE bodies are thin wrappers over the textpath library, which carries its
// own unit tests; the CLI tests here prove the wiring (flags, config
// precedence, JSON output, error reporting) against the real binary.

package cmd

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

var (
	binaryPath string
	buildOnce  sync.Once
	buildErr   error
)

// buildBinary compiles the pathcalc binary once for all tests.
func buildBinary(t *testing.T) string {
	t.Helper()

	buildOnce.Do(func() {
		tmpDir, err := os.MkdirTemp("", "pathcalc-test-bin-*")
		if err != nil {
			buildErr = err
			return
		}

		binaryName := "pathcalc"
		if os.PathSeparator == '\\' {
			binaryName = "pathcalc.exe"
		}
		binaryPath = filepath.Join(tmpDir, binaryName)

		// Find project root (parent of cmd/)
		wd := mustGetwd()
		projectRoot := filepath.Dir(wd)

		cmd := exec.Command("go", "build", "-o", binaryPath, ".")
		cmd.Dir = projectRoot
		if out, err := cmd.CombinedOutput(); err != nil {
			buildErr = &buildError{err: err, output: string(out)}
			return
		}
	})

	if buildErr != nil {
		t.Fatalf("failed to build binary: %v", buildErr)
	}
	return binaryPath
}

type buildError struct {
	err    error
	output string
}

func (e *buildError) Error() string {
	return e.err.Error() + "\n" + e.output
}

func mustGetwd() string {
	dir, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	return dir
}

// testEnv holds test environment state.
type testEnv struct {
	t      *testing.T
	dir    string
	home   string
	binary string
}

// newTestEnv creates a temporary working directory and an isolated HOME so
// the global config and the audit log never touch the developer's machine.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	return &testEnv{
		t:      t,
		dir:    t.TempDir(),
		home:   t.TempDir(),
		binary: buildBinary(t),
	}
}

// run executes pathcalc with the given args and returns combined output.
func (e *testEnv) run(args ...string) string {
	e.t.Helper()
	out, err := e.runErr(args...)
	if err != nil {
		e.t.Fatalf("pathcalc %v failed: %v\noutput: %s", args, err, out)
	}
	return out
}

// runErr executes pathcalc and returns combined output and any error.
func (e *testEnv) runErr(args ...string) (string, error) {
	e.t.Helper()

	cmd := exec.Command(e.binary, args...)
	cmd.Dir = e.dir
	cmd.Env = append(os.Environ(), "HOME="+e.home, "USERPROFILE="+e.home)
	out, err := cmd.CombinedOutput()
	return string(out), err
}

// line returns the trimmed output of a successful run, for single-result
// commands.
func (e *testEnv) line(args ...string) string {
	e.t.Helper()
	return strings.TrimSpace(e.run(args...))
}

// contains fails the test when output does not contain want.
func (e *testEnv) contains(output, want string) {
	e.t.Helper()
	if !strings.Contains(output, want) {
		e.t.Errorf("output %q does not contain %q", output, want)
	}
}
