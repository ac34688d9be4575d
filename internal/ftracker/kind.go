package ftracker

// Kind is the workout code a sensor package is tagged with.
type Kind string

const (
	KindSwimming      Kind = "SWM"
	KindRunning       Kind = "RUN"
	KindSportsWalking Kind = "WLK"
)

var kinds = []Kind{KindSwimming, KindRunning, KindSportsWalking}

// Kinds returns every known workout code in a stable order.
func Kinds() []Kind {
	out := make([]Kind, len(kinds))
	copy(out, kinds)
	return out
}

// Valid reports whether k is one of the known workout codes.
func (k Kind) Valid() bool {
	switch k {
	case KindSwimming, KindRunning, KindSportsWalking:
		return true
	}
	return false
}

// arity returns how many positional values a package of kind k carries.
func (k Kind) arity() int {
	switch k {
	case KindRunning:
		return 3
	case KindSportsWalking:
		return 4
	case KindSwimming:
		return 5
	}
	return 0
}
