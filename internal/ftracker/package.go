package ftracker

import "fmt"

// ReadPackage builds the workout for a sensor package. Values are mapped
// by position:
//
//	RUN: action, duration, weight
//	WLK: action, duration, weight, height
//	SWM: action, duration, weight, pool length, pool count
//
// An unknown kind yields an *UnknownKindError and a wrong value count an
// *ArityError; no Training is returned with an error.
func ReadPackage(kind string, data []float64) (Training, error) {
	k := Kind(kind)
	if !k.Valid() {
		return nil, &UnknownKindError{Kind: kind, Valid: Kinds()}
	}
	if want := k.arity(); len(data) != want {
		return nil, &ArityError{Kind: k, Want: want, Got: len(data)}
	}

	action, err := toCount("action", data[0])
	if err != nil {
		return nil, fmt.Errorf("read %s package: %w", k, err)
	}
	duration, weight := data[1], data[2]

	var t Training
	switch k {
	case KindRunning:
		t, err = NewRunning(action, duration, weight)
	case KindSportsWalking:
		t, err = NewSportsWalking(action, duration, weight, data[3])
	case KindSwimming:
		var count int
		count, err = toCount("pool count", data[4])
		if err == nil {
			t, err = NewSwimming(action, duration, weight, data[3], count)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("read %s package: %w", k, err)
	}
	return t, nil
}
