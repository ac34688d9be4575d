package main

import (
	"flag"
	"fmt"

	"github.com/Yandex-Practicum/go-ftracker/internal/ftracker"
	"github.com/Yandex-Practicum/go-ftracker/internal/random"
)

var packageFlags = flag.NewFlagSet("package", flag.ExitOnError)

var (
	flagPackageKind = packageFlags.String("kind", "", "workout kind to generate package for (SWM, RUN, WLK), random if empty")
)

var packageCmd = cmd{
	name:      "package",
	shortHelp: "generates random valid workout package in KIND:v1,v2,... form",
	do:        generatePackage,
	flags:     packageFlags,
}

func generatePackage() {
	kind := random.Kind()
	if *flagPackageKind != "" {
		kind = ftracker.Kind(*flagPackageKind)
		if !kind.Valid() {
			fatalf("unknown workout kind %q, expected one of %v", *flagPackageKind, ftracker.Kinds())
		}
	}

	fmt.Print(random.FormatPackage(string(kind), random.Package(kind)))
}
