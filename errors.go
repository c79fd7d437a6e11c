package kepler

import "fmt"

// UnknownBodyError is returned when a body name is not in the supported table.
type UnknownBodyError struct {
	Name string
}

func (e *UnknownBodyError) Error() string {
	return fmt.Sprintf("unknown body '%s'", e.Name)
}

// InvalidElementsError is returned for non-physical or degenerate inputs: negative
// eccentricity, a semi-major axis whose sign does not match the conic, a non-positive
// semi-latus rectum, or a zero position or angular momentum.
type InvalidElementsError struct {
	Reason string
}

func (e *InvalidElementsError) Error() string {
	return "invalid orbital elements: " + e.Reason
}

func invalidf(format string, args ...interface{}) error {
	return &InvalidElementsError{Reason: fmt.Sprintf(format, args...)}
}

// ParabolicOrbitWarning is returned alongside complete elements when the state sits on
// the parabolic energy boundary. The semi-major axis is then undefined (NaN) and the
// size of the orbit is carried by the semi-latus rectum P.
type ParabolicOrbitWarning struct {
	P float64 // semi-latus rectum in meters
}

func (w *ParabolicOrbitWarning) Error() string {
	return fmt.Sprintf("parabolic orbit: semi-major axis undefined, semi-latus rectum p=%.3f m", w.P)
}
