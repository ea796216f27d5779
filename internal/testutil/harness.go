package testutil

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/specialistvlad/petagego/internal/app"
	"github.com/specialistvlad/petagego/internal/cli"
)

// SafeBuffer is a thread-safe buffer for capturing output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessTermWidth pins the bar geometry of harness runs so goldens do not
// depend on the terminal the tests happen to run in. 38 columns leaves a
// 20-column bar body next to the default 10-column label gutter.
const HarnessTermWidth = 38

// CLIResult holds the outcomes of a full CLI run.
type CLIResult struct {
	Stdout   string
	Stderr   string
	Err      error
	ExitCode int
}

// RunCLI drives the whole stack the way cmd/cli does: parse the arguments,
// build the app against in-memory streams, run it, and map the resulting
// error to the exit code the process would return.
func RunCLI(t *testing.T, args ...string) *CLIResult {
	t.Helper()

	outW := &SafeBuffer{}
	errW := &SafeBuffer{}

	cfg, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return &CLIResult{
			Stdout:   outW.String(),
			Stderr:   errW.String(),
			Err:      err,
			ExitCode: exitCodeFor(err),
		}
	}
	if shouldExit {
		return &CLIResult{Stdout: outW.String(), Stderr: errW.String()}
	}

	cfg.TermWidth = HarnessTermWidth

	runErr := app.NewApp(outW, errW, cfg).Run(context.Background())
	code := 0
	if runErr != nil {
		code = exitCodeFor(runErr)
	}

	return &CLIResult{
		Stdout:   outW.String(),
		Stderr:   errW.String(),
		Err:      runErr,
		ExitCode: code,
	}
}

// exitCodeFor mirrors the mapping in cmd/cli: an ExitError carries its own
// code, anything else is a plain failure.
func exitCodeFor(err error) int {
	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return 1
}
