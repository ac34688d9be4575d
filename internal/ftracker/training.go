// Package ftracker computes distance, mean speed and spent calories for
// running, sports walking and swimming workouts and renders a summary line.
//
// Workouts are built by ReadPackage or the New* constructors, which validate
// the readings. Readings are read-only once a workout is built. The zero
// value of a workout is an empty workout whose metrics are all zero.
package ftracker

// Common conversion constants.
const (
	LenStep = 0.65 // stride length in meters
	MInKm   = 1000 // meters in a kilometer
	MinInH  = 60   // minutes in an hour
)

// Training is a workout whose metrics can be calculated.
// All methods are pure: repeated calls return identical results.
type Training interface {
	// Distance returns the covered distance in km.
	Distance() float64
	// MeanSpeed returns the average speed over the whole workout in km/h.
	MeanSpeed() float64
	// SpentCalories returns the estimated energy expenditure in kcal.
	SpentCalories() float64
	// TrainingInfo collects all metrics into an InfoMessage.
	TrainingInfo() InfoMessage
}

// training holds the readings shared by every workout kind.
type training struct {
	action   int     // strides or strokes
	duration float64 // hours
	weight   float64 // kg
}

func newTraining(action int, duration, weight float64) (training, error) {
	if err := checkCount("action", action); err != nil {
		return training{}, err
	}
	if err := checkDuration(duration); err != nil {
		return training{}, err
	}
	if err := checkPositive("weight", weight); err != nil {
		return training{}, err
	}
	return training{
		action:   action,
		duration: duration,
		weight:   weight,
	}, nil
}

// Action returns the number of strides or strokes.
func (t training) Action() int { return t.action }

// Duration returns the workout duration in hours.
func (t training) Duration() float64 { return t.duration }

// Weight returns the athlete's weight in kg.
func (t training) Weight() float64 { return t.weight }

// empty reports whether t is the zero value. Constructors never return one
// since they require a positive duration.
func (t training) empty() bool {
	return t.duration == 0
}

// distance converts the action count to km using the given step length in meters.
func (t training) distance(step float64) float64 {
	return float64(t.action) * step / MInKm
}

// speed divides a distance in km by the duration.
func (t training) speed(distance float64) float64 {
	if t.empty() {
		return 0
	}
	return distance / t.duration
}

func (t training) info(name string, distance, speed, calories float64) InfoMessage {
	return InfoMessage{
		TrainingType: name,
		Duration:     t.duration,
		Distance:     distance,
		Speed:        speed,
		Calories:     calories,
	}
}
