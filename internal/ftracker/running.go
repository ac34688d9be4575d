package ftracker

const (
	runningCaloriesMeanSpeedMultiplier = 18
	runningCaloriesMeanSpeedShift      = 1.79
)

// Running is a running workout.
type Running struct {
	training
}

var _ Training = Running{}

// NewRunning validates the readings and returns a running workout.
func NewRunning(action int, duration, weight float64) (Running, error) {
	t, err := newTraining(action, duration, weight)
	if err != nil {
		return Running{}, err
	}
	return Running{training: t}, nil
}

// Distance returns the strides converted to km.
func (r Running) Distance() float64 {
	return r.distance(LenStep)
}

// MeanSpeed returns the distance divided by the duration, in km/h.
func (r Running) MeanSpeed() float64 {
	return r.speed(r.Distance())
}

// SpentCalories returns calories burned while running.
func (r Running) SpentCalories() float64 {
	return (runningCaloriesMeanSpeedMultiplier*r.MeanSpeed() + runningCaloriesMeanSpeedShift) *
		r.weight / MInKm * (r.duration * MinInH)
}

// TrainingInfo returns the summary of the run.
func (r Running) TrainingInfo() InfoMessage {
	return r.info("Running", r.Distance(), r.MeanSpeed(), r.SpentCalories())
}
