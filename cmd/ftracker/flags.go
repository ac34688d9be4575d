package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// workoutPackage is a raw sensor package: a workout code and its readings
type workoutPackage struct {
	kind string
	data []float64
}

// samplePackages are processed when no -package flag is given
var samplePackages = []workoutPackage{
	{kind: "SWM", data: []float64{720, 1, 80, 25, 40}},
	{kind: "RUN", data: []float64{15000, 1, 75}},
	{kind: "WLK", data: []float64{9000, 1, 75, 180}},
}

// packagesFlag collects repeated -package KIND:v1,v2,... values
type packagesFlag []workoutPackage

// newFlagSet returns the command line flags of ftracker. Parsed packages
// are collected into packages.
func newFlagSet(output io.Writer, packages *packagesFlag) *flag.FlagSet {
	fs := flag.NewFlagSet("ftracker", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Var(packages, "package", "workout package as KIND:v1,v2,...; may be repeated, replaces the sample batch")
	return fs
}

func (f *packagesFlag) String() string {
	if f == nil {
		return ""
	}
	parts := make([]string, 0, len(*f))
	for _, p := range *f {
		values := make([]string, 0, len(p.data))
		for _, v := range p.data {
			values = append(values, strconv.FormatFloat(v, 'f', -1, 64))
		}
		parts = append(parts, p.kind+":"+strings.Join(values, ","))
	}
	return strings.Join(parts, " ")
}

func (f *packagesFlag) Set(value string) error {
	p, err := parsePackage(value)
	if err != nil {
		return err
	}
	*f = append(*f, p)
	return nil
}

func parsePackage(value string) (workoutPackage, error) {
	kind, rawData, ok := strings.Cut(value, ":")
	if !ok {
		return workoutPackage{}, errors.New("expected KIND:v1,v2,...")
	}

	p := workoutPackage{kind: strings.TrimSpace(kind)}
	if strings.TrimSpace(rawData) == "" {
		return p, nil
	}

	for _, raw := range strings.Split(rawData, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return workoutPackage{}, fmt.Errorf("bad value %q: %w", raw, err)
		}
		p.data = append(p.data, v)
	}
	return p, nil
}
