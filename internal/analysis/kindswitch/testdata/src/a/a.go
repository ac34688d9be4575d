package a

type Kind string

const (
	KindSwimming      Kind = "SWM"
	KindRunning       Kind = "RUN"
	KindSportsWalking Kind = "WLK"
)

type Other string

const OtherValue Other = "other"

func complete(k Kind) int {
	switch k {
	case KindSwimming:
		return 1
	case KindRunning, KindSportsWalking:
		return 2
	}
	return 0
}

func missing(k Kind) int {
	switch k { // want "switch on Kind misses KindSportsWalking"
	case KindSwimming:
		return 1
	case KindRunning:
		return 2
	}
	return 0
}

func defaultIsNotEnough(k Kind) int {
	switch k { // want "switch on Kind misses KindRunning, KindSportsWalking"
	case KindSwimming:
		return 1
	default:
		return 0
	}
}

func literals(k Kind) bool {
	switch k {
	case "SWM", "RUN", "WLK":
		return true
	}
	return false
}

func dynamic(k, other Kind) bool {
	switch k {
	case other:
		return true
	}
	return false
}

func untracked(o Other) bool {
	switch o {
	case OtherValue:
		return true
	}
	return false
}

func untrackedIncomplete(s string) bool {
	switch s {
	case "x":
		return true
	}
	return false
}

func tagless(k Kind) bool {
	switch {
	case k == KindRunning:
		return true
	}
	return false
}
