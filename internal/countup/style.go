package countup

import (
	"fmt"
	"math"

	"github.com/charmbracelet/harmonica"
)

// AnimationStyle selects how progress is shaped: a tween through the
// configured Easing, or a spring response.
type AnimationStyle uint8

const (
	StyleDefault AnimationStyle = iota
	StyleBounce
	StyleSpring
	StyleGentle
	StyleEnergetic
)

var styleNames = [...]string{
	StyleDefault:   "default",
	StyleBounce:    "bounce",
	StyleSpring:    "spring",
	StyleGentle:    "gentle",
	StyleEnergetic: "energetic",
}

func (s AnimationStyle) String() string {
	if s.Valid() {
		return styleNames[s]
	}
	return fmt.Sprintf("AnimationStyle(%d)", uint8(s))
}

func (s AnimationStyle) Valid() bool {
	return int(s) < len(styleNames)
}

// ParseAnimationStyle returns the style with the given name, or StyleDefault.
func ParseAnimationStyle(name string) AnimationStyle {
	for i, n := range styleNames {
		if n == name {
			return AnimationStyle(i)
		}
	}
	return StyleDefault
}

type MotionKind uint8

const (
	MotionTween MotionKind = iota
	MotionSpring
)

// Motion describes the physics behind a style. Spring parameters assume unit
// mass; Bounce is used instead of Stiffness/Damping when non-zero.
type Motion struct {
	Kind      MotionKind
	Bounce    float64
	Stiffness float64
	Damping   float64
}

func (s AnimationStyle) Motion() Motion {
	switch s {
	case StyleBounce:
		return Motion{Kind: MotionSpring, Bounce: 0.25}
	case StyleSpring:
		return Motion{Kind: MotionSpring, Stiffness: 100, Damping: 10}
	case StyleGentle:
		return Motion{Kind: MotionSpring, Stiffness: 60, Damping: 15}
	case StyleEnergetic:
		return Motion{Kind: MotionSpring, Stiffness: 300, Damping: 20}
	default:
		return Motion{Kind: MotionTween}
	}
}

const (
	// bounce-only springs use this stiffness (angular frequency 10 rad/s).
	bounceStiffness = 100

	springSamples = 240
)

// spring returns the angular frequency and damping ratio for m.
func (m Motion) spring() (float64, float64) {
	if m.Bounce > 0 {
		return math.Sqrt(bounceStiffness), 1 - m.Bounce
	}
	omega := math.Sqrt(m.Stiffness)
	return omega, m.Damping / (2 * omega)
}

// settleTime is the spring time after which the response stays close to
// rest: four time constants of the decay envelope.
func (m Motion) settleTime() float64 {
	omega, zeta := m.spring()
	if zeta >= 1 {
		return 6 / omega
	}
	return 4 / (zeta * omega)
}

var springCurves = func() map[AnimationStyle]func(float64) float64 {
	curves := make(map[AnimationStyle]func(float64) float64, len(styleNames))
	for i := range styleNames {
		style := AnimationStyle(i)
		if m := style.Motion(); m.Kind == MotionSpring {
			curves[style] = sampleSpring(m)
		}
	}
	return curves
}()

// sampleSpring records the unit step response of m over its settle time and
// returns it as a curve on [0,1]. The residual distance left at the end of the
// window is spread linearly over the sweep so that f(0)=0 and f(1)=1.
func sampleSpring(m Motion) func(float64) float64 {
	omega, zeta := m.spring()
	dt := m.settleTime() / springSamples
	spring := harmonica.NewSpring(dt, omega, zeta)

	samples := make([]float64, springSamples+1)
	var pos, vel float64
	for i := 1; i <= springSamples; i++ {
		pos, vel = spring.Update(pos, vel, 1)
		samples[i] = pos
	}
	residual := 1 - samples[springSamples]
	for i := range samples {
		samples[i] += residual * float64(i) / springSamples
	}

	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		x := t * springSamples
		i := int(x)
		frac := x - float64(i)
		return samples[i] + (samples[i+1]-samples[i])*frac
	}
}

// Curve returns the progress curve for s. Tween styles return easing.Func().
func (s AnimationStyle) Curve(easing Easing) func(float64) float64 {
	if curve, ok := springCurves[s]; ok {
		return curve
	}
	return easing.Func()
}
