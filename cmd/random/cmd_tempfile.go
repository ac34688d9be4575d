package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Yandex-Practicum/go-ftracker/internal/random"
)

var tempfileCmd = cmd{
	name:      "tempfile",
	shortHelp: "generates path to random temporary file for ftracker output",
	do:        generateTempfile,
}

func generateTempfile() {
	filename := "ftracker-" + random.ASCIIString(5, 8) + ".out"
	fmt.Print(filepath.Join(os.TempDir(), filename))
}
