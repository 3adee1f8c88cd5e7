package npm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/creack/pty"
)

// Runner launches assembled commands as external processes. The TUI and the
// CLI verbs share one implementation; tests substitute their own.
type Runner interface {
	Start(ctx context.Context, cmd Command) (*Handle, error)
}

// Handle tracks a launched process. Output carries combined stdout/stderr.
// Wait must not be called until Output has been drained to EOF; the launch
// is otherwise fire-and-forget from the caller's perspective.
type Handle struct {
	// Output is the combined stdout/stderr stream of the process.
	Output io.Reader

	cmd    *exec.Cmd
	closer io.Closer
	isPTY  bool
}

// Wait blocks until the process exits and returns its exit code. A non-zero
// exit is not an error here: the subprocess's own output is its reporting
// channel, and this tool never translates or retries it.
func (h *Handle) Wait() (int, error) {
	err := h.cmd.Wait()
	if h.closer != nil {
		_ = h.closer.Close()
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return -1, fmt.Errorf("failed waiting for %s: %w", h.cmd.Path, err)
	}
	return 0, nil
}

// ExecRunner runs commands with os/exec, optionally on a pseudo-terminal so
// npm keeps its colorized, interactive output.
type ExecRunner struct {
	Dir string // working directory, normally the project root
	PTY bool   // allocate a PTY; falls back to plain pipes on failure
	Env []string
}

func (r *ExecRunner) Start(ctx context.Context, cmd Command) (*Handle, error) {
	if r.PTY {
		c := r.newCmd(ctx, cmd)
		f, err := pty.Start(c)
		if err == nil {
			return &Handle{Output: ptyReader{f}, cmd: c, closer: f, isPTY: true}, nil
		}
		// pty.Start wires the Cmd's stdio before launching, so a failed Cmd
		// cannot be reused. Retry on plain pipes with a fresh one: a PTY
		// allocation failure then succeeds on pipes, while a launch failure
		// (missing binary) fails again with the real lookup error.
	}

	c := r.newCmd(ctx, cmd)
	stdout, err := c.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to open stdout pipe: %w", err)
	}
	c.Stderr = c.Stdout

	if err := c.Start(); err != nil {
		return nil, fmt.Errorf("failed to start %s: %w", cmd.String(), err)
	}
	return &Handle{Output: stdout, cmd: c}, nil
}

func (r *ExecRunner) newCmd(ctx context.Context, cmd Command) *exec.Cmd {
	c := exec.CommandContext(ctx, cmd.Bin, cmd.Args...)
	c.Dir = r.Dir
	c.Env = r.Env
	if c.Env == nil {
		c.Env = os.Environ()
	}
	return c
}

// ptyReader translates the EIO a Linux PTY master returns after the child
// exits into a clean EOF.
type ptyReader struct {
	f *os.File
}

func (p ptyReader) Read(b []byte) (int, error) {
	n, err := p.f.Read(b)
	if err != nil && n == 0 {
		return 0, io.EOF
	}
	return n, err
}

// Capture runs cmd synchronously and returns its full combined output and
// exit code. This is the blocking path used by dependency listing; the
// side-effecting verbs stay detached.
func Capture(ctx context.Context, r Runner, cmd Command) (string, int, error) {
	h, err := r.Start(ctx, cmd)
	if err != nil {
		return "", -1, err
	}

	var sb strings.Builder
	_, copyErr := io.Copy(&sb, h.Output)

	code, waitErr := h.Wait()
	if waitErr != nil {
		return sb.String(), code, waitErr
	}
	if copyErr != nil && !errors.Is(copyErr, io.EOF) {
		return sb.String(), code, fmt.Errorf("failed reading command output: %w", copyErr)
	}
	return sb.String(), code, nil
}
