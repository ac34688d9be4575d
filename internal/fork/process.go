package fork

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// BackgroundProcess runs a command and captures its output.
type BackgroundProcess struct {
	cmd    *exec.Cmd
	stdout *buffer
	stderr *buffer
}

// NewBackgroundProcess returns new unstarted background process instance.
func NewBackgroundProcess(ctx context.Context, command string, opts ...ProcessOpt) *BackgroundProcess {
	p := &BackgroundProcess{
		cmd:    exec.CommandContext(ctx, command),
		stdout: new(buffer),
		stderr: new(buffer),
	}

	for _, opt := range opts {
		opt(p)
	}

	p.cmd.Stdout = p.stdout
	p.cmd.Stderr = p.stderr

	return p
}

// Start attempts to create OS process and start command execution.
func (p *BackgroundProcess) Start(ctx context.Context) error {
	startChan := make(chan error, 1)
	go func() {
		startChan <- p.cmd.Start()
	}()

	select {
	case err := <-startChan:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Wait blocks until the process exits and returns its exit code.
// A non-zero exit code is not an error.
func (p *BackgroundProcess) Wait(ctx context.Context) (exitCode int, err error) {
	done := make(chan error, 1)
	go func() {
		done <- p.cmd.Wait()
	}()

	select {
	case err = <-done:
	case <-ctx.Done():
		return -1, ctx.Err()
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	if err != nil {
		return -1, fmt.Errorf("error waiting for process: %w", err)
	}
	return p.cmd.ProcessState.ExitCode(), nil
}

// Stdout returns everything the process has written to stdout so far.
func (p *BackgroundProcess) Stdout() []byte {
	return p.stdout.Bytes()
}

// Stderr returns everything the process has written to stderr so far.
func (p *BackgroundProcess) Stderr() []byte {
	return p.stderr.Bytes()
}

// Stop attempts to send given signals to process one by one.
// After first successful signal attempt exit code of process will be returned
func (p *BackgroundProcess) Stop(signals ...os.Signal) (exitCode int, err error) {
	for _, sig := range signals {
		err = p.cmd.Process.Signal(sig)
		if err == nil {
			break
		}
	}

	if err != nil {
		return -1, fmt.Errorf("error sending signal to process: %w", err)
	}

	state, err := p.cmd.Process.Wait()
	if state == nil {
		return -1, err
	}
	return state.ExitCode(), err
}

// String returns a human-readable representation of process command.
func (p *BackgroundProcess) String() string {
	return p.cmd.String()
}
