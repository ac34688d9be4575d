package ftracker

const (
	SwimmingLenStep = 1.38 // stroke length in meters

	swimmingCaloriesMeanSpeedShift   = 1.1
	swimmingCaloriesWeightMultiplier = 2
)

// Swimming is a pool swimming workout.
//
// Distance keeps the stroke based formula; only the mean speed is derived
// from the pool.
type Swimming struct {
	training
	lengthPool float64 // m
	countPool  int
}

var _ Training = Swimming{}

// NewSwimming validates the readings and returns a swimming workout.
// lengthPool is in meters, countPool is the number of swum pool lengths.
func NewSwimming(action int, duration, weight, lengthPool float64, countPool int) (Swimming, error) {
	t, err := newTraining(action, duration, weight)
	if err != nil {
		return Swimming{}, err
	}
	if err := checkPositive("pool length", lengthPool); err != nil {
		return Swimming{}, err
	}
	if err := checkCount("pool count", countPool); err != nil {
		return Swimming{}, err
	}
	return Swimming{training: t, lengthPool: lengthPool, countPool: countPool}, nil
}

// LengthPool returns the pool length in meters.
func (s Swimming) LengthPool() float64 { return s.lengthPool }

// CountPool returns how many pool lengths were swum.
func (s Swimming) CountPool() int { return s.countPool }

// Distance returns the strokes converted to km.
func (s Swimming) Distance() float64 {
	return s.distance(SwimmingLenStep)
}

// MeanSpeed returns the pool distance divided by the duration, in km/h.
func (s Swimming) MeanSpeed() float64 {
	return s.speed(s.lengthPool * float64(s.countPool) / MInKm)
}

// SpentCalories returns calories burned while swimming.
func (s Swimming) SpentCalories() float64 {
	return (s.MeanSpeed() + swimmingCaloriesMeanSpeedShift) *
		swimmingCaloriesWeightMultiplier * s.weight * s.duration
}

// TrainingInfo returns the summary of the swim.
func (s Swimming) TrainingInfo() InfoMessage {
	return s.info("Swimming", s.Distance(), s.MeanSpeed(), s.SpentCalories())
}
