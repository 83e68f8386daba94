package ffmpeg

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
)

// ExecResult holds the outcome of a single ffmpeg invocation.
type ExecResult struct {
	Stderr string
	Err    error
}

// ExecFunc runs a fully built argv. The pipeline takes one so tests can
// substitute a fake encoder.
type ExecFunc func(ctx context.Context, args []string) ExecResult

// Execute runs args (args[0] is the binary). When tee is set, stderr is
// copied to os.Stderr in real time; it is always captured for
// classification. No timeout is applied; only ctx cancellation stops it.
func Execute(ctx context.Context, args []string, tee bool) ExecResult {
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)

	var stderrBuf bytes.Buffer
	if tee {
		cmd.Stderr = io.MultiWriter(&stderrBuf, os.Stderr)
	} else {
		cmd.Stderr = &stderrBuf
	}

	err := cmd.Run()
	return ExecResult{
		Stderr: stderrBuf.String(),
		Err:    err,
	}
}

// Executor returns an ExecFunc bound to Execute with the given tee setting.
func Executor(tee bool) ExecFunc {
	return func(ctx context.Context, args []string) ExecResult {
		return Execute(ctx, args, tee)
	}
}
