package ftracker

import "math"

const (
	walkingCaloriesWeightMultiplier = 0.035
	walkingSpeedHeightMultiplier    = 0.029

	KmhInMsec = 0.278 // km/h to m/s
	CmInM     = 100   // centimeters in a meter
)

// SportsWalking is a sports walking workout.
type SportsWalking struct {
	training
	height float64 // cm
}

var _ Training = SportsWalking{}

// NewSportsWalking validates the readings and returns a walking workout.
// Height is in centimeters.
func NewSportsWalking(action int, duration, weight, height float64) (SportsWalking, error) {
	t, err := newTraining(action, duration, weight)
	if err != nil {
		return SportsWalking{}, err
	}
	if err := checkPositive("height", height); err != nil {
		return SportsWalking{}, err
	}
	return SportsWalking{training: t, height: height}, nil
}

// Height returns the athlete's height in centimeters.
func (w SportsWalking) Height() float64 { return w.height }

// Distance returns the steps converted to km.
func (w SportsWalking) Distance() float64 {
	return w.distance(LenStep)
}

// MeanSpeed returns the distance divided by the duration, in km/h.
func (w SportsWalking) MeanSpeed() float64 {
	return w.speed(w.Distance())
}

// SpentCalories returns calories burned while walking.
func (w SportsWalking) SpentCalories() float64 {
	if w.empty() {
		return 0
	}
	speed := w.MeanSpeed() * KmhInMsec
	return (walkingCaloriesWeightMultiplier*w.weight +
		(math.Pow(speed, 2)/(w.height/CmInM))*walkingSpeedHeightMultiplier*w.weight) *
		(w.duration * MinInH)
}

// TrainingInfo returns the summary of the walk.
func (w SportsWalking) TrainingInfo() InfoMessage {
	return w.info("SportsWalking", w.Distance(), w.MeanSpeed(), w.SpentCalories())
}
