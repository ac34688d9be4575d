package main

//go:generate go build -o=../../bin/ftracker

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/Yandex-Practicum/go-ftracker/internal/ftracker"
)

// Exit codes
const (
	exitOK       = 0
	exitFailed   = 1 // at least one package failed
	exitBadUsage = 2 // malformed command line
)

func main() {
	os.Exit(runMain(os.Args[1:], os.Stdout, os.Stderr))
}

// runMain parses args, processes the packages and returns the exit code.
func runMain(args []string, stdout, stderr io.Writer) int {
	var packages packagesFlag
	if err := newFlagSet(stderr, &packages).Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitBadUsage
	}

	batch := []workoutPackage(packages)
	if len(batch) == 0 {
		batch = samplePackages
	}

	logger := log.New(stderr, "ftracker: ", 0)
	if failed := run(stdout, logger, batch); failed > 0 {
		return exitFailed
	}
	return exitOK
}

// run prints a summary line per package and returns how many packages failed.
// A failed package is logged and does not stop the rest of the batch.
func run(w io.Writer, logger *log.Logger, packages []workoutPackage) (failed int) {
	for _, p := range packages {
		if err := show(w, p); err != nil {
			logger.Print(err)
			failed++
		}
	}
	return failed
}

func show(w io.Writer, p workoutPackage) error {
	training, err := ftracker.ReadPackage(p.kind, p.data)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, training.TrainingInfo().Message())
	return err
}
