package random

import (
	"math"
	"strconv"
	"strings"

	"github.com/Yandex-Practicum/go-ftracker/internal/ftracker"
)

// Ranges of generated sensor readings
const (
	minActions, maxActions       = 1000, 10000
	minWeight, maxWeight         = 80, 140
	minHeight, maxHeight         = 150, 220
	minLengthPool, maxLengthPool = 10, 50
	minCountPool, maxCountPool   = 1, 10

	maxWholeHours     = 3
	durationPrecision = 1000.0
)

// Kind returns random known workout kind
func Kind() ftracker.Kind {
	kinds := ftracker.Kinds()
	return kinds[rnd.Intn(len(kinds))]
}

// UnknownKind returns random string which is not a known workout kind
func UnknownKind() string {
	for {
		tag := ASCIIString(3, 15)
		if !ftracker.Kind(tag).Valid() {
			return tag
		}
	}
}

// Duration returns random positive workout duration in hours rounded to 3 decimals
func Duration() float64 {
	d := float64(rnd.Intn(maxWholeHours)) + rnd.Float64()
	d = math.Round(d*durationPrecision) / durationPrecision
	if d <= 0 {
		return 1 / durationPrecision
	}
	return d
}

// Package returns random valid sensor readings for given workout kind
func Package(kind ftracker.Kind) []float64 {
	data := []float64{
		float64(between(minActions, maxActions)),
		Duration(),
		float64(between(minWeight, maxWeight)),
	}

	switch kind {
	case ftracker.KindRunning:
	case ftracker.KindSportsWalking:
		data = append(data, float64(between(minHeight, maxHeight)))
	case ftracker.KindSwimming:
		data = append(data,
			float64(between(minLengthPool, maxLengthPool)),
			float64(between(minCountPool, maxCountPool)),
		)
	}
	return data
}

// FormatPackage renders workout package in KIND:v1,v2,... form accepted by ftracker -package flag
func FormatPackage(kind string, data []float64) string {
	values := make([]string, 0, len(data))
	for _, v := range data {
		values = append(values, strconv.FormatFloat(v, 'f', -1, 64))
	}
	return kind + ":" + strings.Join(values, ",")
}
