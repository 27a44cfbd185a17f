package countup

import "time"

// Clock supplies the start time of a sweep. Tests inject a fake to control
// timing deterministically.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// SystemClock reads wall-clock time.
var SystemClock Clock = realClock{}
