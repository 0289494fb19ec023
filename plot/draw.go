package plot

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/rodrigo-brito/ninjaplot/tools/log"
)

const defaultCommand = "gnuplot"

// renderer 外部 gnuplot 进程的调用参数
type renderer struct {
	command string
	stdout  io.Writer
	stderr  io.Writer
}

// DrawOption configures how a figure is handed to the renderer
type DrawOption func(*renderer)

// WithCommand sets the renderer command line, e.g. "gnuplot -persist".
// By default the GNUPLOT environment variable is used, falling back to gnuplot.
func WithCommand(command string) DrawOption {
	return func(r *renderer) {
		r.command = command
	}
}

// WithStdout captures what the renderer writes to stdout, os.Stdout by default.
// Terminals like dumb, or a figure without Output, print there.
func WithStdout(w io.Writer) DrawOption {
	return func(r *renderer) {
		r.stdout = w
	}
}

// WithStderr captures renderer diagnostics, os.Stderr by default.
func WithStderr(w io.Writer) DrawOption {
	return func(r *renderer) {
		r.stderr = w
	}
}

func newRenderer(options []DrawOption) *renderer {
	r := &renderer{
		command: defaultCommand,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
	}
	if command := os.Getenv("GNUPLOT"); command != "" {
		r.command = command
	}
	for _, option := range options {
		option(r)
	}
	return r
}

// Draw 将脚本作为一个整体写入 gnuplot 进程的标准输入并等待其结束
// Draw hands the script to the renderer process on stdin, as one unit, and
// waits for it to exit
func (f *Figure) Draw(ctx context.Context, options ...DrawOption) error {
	r := newRenderer(options)

	args, err := shellquote.Split(r.command)
	if err != nil {
		return fmt.Errorf("parse renderer command: %w", err)
	}
	if len(args) == 0 {
		return ErrRendererNotFound
	}

	path, err := exec.LookPath(args[0])
	if err != nil {
		return fmt.Errorf("%w: %s", ErrRendererNotFound, args[0])
	}

	cmd := exec.CommandContext(ctx, path, args[1:]...)
	cmd.Stdin = strings.NewReader(f.Script())
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr

	log.Debugf("rendering %d plots with %s", len(f.plots), r.command)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("render figure: %w", err)
	}

	if f.output != nil {
		log.Infof("figure saved to %s", *f.output)
	}
	return nil
}
