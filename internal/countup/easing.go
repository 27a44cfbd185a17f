package countup

import (
	"fmt"
	"math"
)

// Easing names one of the fixed easing curves applied to sweep progress.
type Easing uint8

const (
	Linear Easing = iota
	EaseIn
	EaseOut
	EaseInOut
	EaseOutCubic
	EaseOutQuart
	EaseOutQuint
	EaseOutExpo
	EaseOutBack
	EaseOutSlow
	EaseOutVerySlow
)

const (
	// DefaultEasing is used when a config does not choose a curve.
	DefaultEasing = EaseOut
	// FallbackEasing silently replaces unknown easing kinds.
	FallbackEasing = EaseOutSlow
)

var easingNames = [...]string{
	Linear:          "linear",
	EaseIn:          "easeIn",
	EaseOut:         "easeOut",
	EaseInOut:       "easeInOut",
	EaseOutCubic:    "easeOutCubic",
	EaseOutQuart:    "easeOutQuart",
	EaseOutQuint:    "easeOutQuint",
	EaseOutExpo:     "easeOutExpo",
	EaseOutBack:     "easeOutBack",
	EaseOutSlow:     "easeOutSlow",
	EaseOutVerySlow: "easeOutVerySlow",
}

var _ fmt.Stringer = Easing(0)

func (e Easing) String() string {
	if e.Valid() {
		return easingNames[e]
	}
	return fmt.Sprintf("Easing(%d)", uint8(e))
}

// Valid reports whether e is one of the declared easing kinds.
func (e Easing) Valid() bool {
	return int(e) < len(easingNames)
}

// ParseEasing returns the easing kind with the given name.
// Unknown names resolve to FallbackEasing.
func ParseEasing(name string) Easing {
	for i, n := range easingNames {
		if n == name {
			return Easing(i)
		}
	}
	return FallbackEasing
}

// Func returns the curve for e. Kinds outside the table get the
// FallbackEasing curve.
func (e Easing) Func() func(float64) float64 {
	switch e {
	case Linear:
		return linear
	case EaseIn:
		return easeIn
	case EaseOut:
		return easeOut
	case EaseInOut:
		return easeInOut
	case EaseOutCubic:
		return easeOutCubic
	case EaseOutQuart:
		return easeOutQuart
	case EaseOutQuint:
		return easeOutQuint
	case EaseOutExpo:
		return easeOutExpo
	case EaseOutBack:
		return easeOutBack
	case EaseOutSlow:
		return easeOutSlow
	case EaseOutVerySlow:
		return easeOutVerySlow
	default:
		return easeOutSlow
	}
}

func linear(t float64) float64 {
	return t
}

func easeIn(t float64) float64 {
	return t * t
}

func easeOut(t float64) float64 {
	return 1 - math.Pow(1-t, 2)
}

func easeInOut(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - math.Pow(-2*t+2, 2)/2
}

func easeOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

func easeOutQuart(t float64) float64 {
	return 1 - math.Pow(1-t, 4)
}

func easeOutQuint(t float64) float64 {
	return 1 - math.Pow(1-t, 5)
}

func easeOutExpo(t float64) float64 {
	if t == 1 {
		return 1
	}
	return 1 - math.Pow(2, -10*t)
}

// easeOutBack overshoots past 1 before settling.
func easeOutBack(t float64) float64 {
	const (
		c1 = 1.70158
		c3 = c1 + 1
	)
	return 1 + c3*math.Pow(t-1, 3) + c1*math.Pow(t-1, 2)
}

// easeOutSlow crawls through the last stretch of the sweep.
func easeOutSlow(t float64) float64 {
	return 1 - math.Pow(1-t, 12)*(1-t*0.8)
}

// easeOutVerySlow covers 80% of the distance in the first 80% of the time
// and eases the remaining 20% in very slowly.
func easeOutVerySlow(t float64) float64 {
	if t < 0.8 {
		return 1 - math.Pow(1-t/0.8, 3)
	}
	remaining := (t - 0.8) / 0.2
	return 0.8 + 0.2*(1-math.Pow(1-remaining, 8))
}
