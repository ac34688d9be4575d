package main

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/rekby/fixenv"
	"github.com/stretchr/testify/assert"
	"golang.org/x/net/context"

	"github.com/Yandex-Practicum/go-ftracker/internal/fork"
)

const runProcessTimeout = 10 * time.Second

// trackerEnv is added to the environment of every ftracker process
var trackerEnv = []string{"GOTRACEBACK=all"}

type Env struct {
	fixenv.EnvT
	assert.Assertions
	Ctx context.Context

	t testing.TB
}

func New(t testing.TB) *Env {
	ctx, ctxCancel := context.WithCancel(context.Background())
	t.Cleanup(ctxCancel)

	res := Env{
		EnvT:       *fixenv.NewEnv(t),
		Assertions: *assert.New(t),
		t:          t,
		Ctx:        ctx,
	}
	return &res
}

func (e *Env) Fatalf(format string, args ...any) {
	e.T().Fatalf(format, args...)
}

func (e *Env) Logf(format string, args ...any) {
	e.t.Logf(format, args...)
}

func ExistPath(e *Env, filePath string) string {
	return fixenv.Cache(&e.EnvT, filePath, nil, func() (string, error) {
		e.Logf("Checking that file exists: %q", filePath)
		_, err := os.Stat(filePath)
		if err != nil {
			return "", err
		}
		return filePath, nil
	})
}

func TrackerPath(e *Env) string {
	return ExistPath(e, flagTargetBinaryPath)
}

// TrackerRun is the outcome of a single ftracker invocation
type TrackerRun struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// RunTracker starts ftracker with given args and waits for it to exit
func RunTracker(e *Env, args ...string) TrackerRun {
	cacheKey := append([]string{"run"}, args...)
	return fixenv.CacheWithCleanup(e, cacheKey, nil, func() (TrackerRun, fixenv.FixtureCleanupFunc, error) {
		command := TrackerPath(e)
		process := trackerProcess(e.Ctx, command, args...)

		e.Logf("Starting %q %#v", command, args)
		res, err := runProcess(e.Ctx, process)
		if err != nil {
			return TrackerRun{}, nil, err
		}

		cleanup := func() {
			if res.Stderr != "" {
				e.Logf("Process STDERR log:\n\n%s", res.Stderr)
			}
		}
		return res, cleanup, nil
	})
}

// trackerProcess prepares an ftracker run with a fixed environment
func trackerProcess(ctx context.Context, command string, args ...string) *fork.BackgroundProcess {
	return fork.NewBackgroundProcess(ctx, command,
		fork.WithArgs(args...),
		fork.WithEnv(trackerEnv...),
	)
}

// runProcess starts the process and waits for its exit within runProcessTimeout
func runProcess(ctx context.Context, process *fork.BackgroundProcess) (TrackerRun, error) {
	ctx, cancel := context.WithTimeout(ctx, runProcessTimeout)
	defer cancel()

	if err := process.Start(ctx); err != nil {
		return TrackerRun{}, err
	}

	exitCode, err := process.Wait(ctx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			_, _ = process.Stop(os.Kill)
		}
		return TrackerRun{}, err
	}

	return TrackerRun{
		ExitCode: exitCode,
		Stdout:   string(process.Stdout()),
		Stderr:   string(process.Stderr()),
	}, nil
}
