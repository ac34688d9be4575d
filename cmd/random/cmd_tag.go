package main

import (
	"fmt"

	"github.com/Yandex-Practicum/go-ftracker/internal/random"
)

var tagCmd = cmd{
	name:      "tag",
	shortHelp: "generates random unknown workout kind tag",
	do:        generateTag,
}

func generateTag() {
	fmt.Print(random.UnknownKind())
}
