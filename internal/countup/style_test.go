package countup

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var springStyles = []AnimationStyle{StyleBounce, StyleSpring, StyleGentle, StyleEnergetic}

func TestSpringCurveEndpoints(t *testing.T) {
	t.Parallel()

	const eps = 1e-9

	for _, s := range springStyles {
		t.Run(s.String(), func(t *testing.T) {
			t.Parallel()

			f := s.Curve(Linear)
			if got := f(0); math.Abs(got) > eps {
				t.Errorf("f(0) = %v, want 0", got)
			}
			if got := f(1); math.Abs(got-1) > eps {
				t.Errorf("f(1) = %v, want 1", got)
			}
			for i := 0; i <= 500; i++ {
				x := float64(i) / 500
				if y := f(x); math.IsNaN(y) || math.IsInf(y, 0) {
					t.Fatalf("f(%v) = %v, want finite", x, y)
				}
			}
		})
	}
}

func TestUnderdampedSpringOvershoots(t *testing.T) {
	t.Parallel()

	for _, s := range []AnimationStyle{StyleSpring, StyleEnergetic} {
		t.Run(s.String(), func(t *testing.T) {
			t.Parallel()

			f := s.Curve(Linear)
			peak := 0.0
			for i := 0; i <= 1000; i++ {
				peak = max(peak, f(float64(i)/1000))
			}
			if peak <= 1 {
				t.Errorf("peak = %v, want > 1", peak)
			}
		})
	}
}

func TestDefaultStyleUsesEasing(t *testing.T) {
	t.Parallel()

	f := StyleDefault.Curve(EaseOutCubic)
	g := EaseOutCubic.Func()
	for _, x := range []float64{0, 0.1, 0.5, 0.9, 1} {
		if f(x) != g(x) {
			t.Errorf("Curve(%v) = %v, want %v", x, f(x), g(x))
		}
	}
}

func TestStyleMotion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		style AnimationStyle
		want  Motion
	}{
		{StyleDefault, Motion{Kind: MotionTween}},
		{StyleBounce, Motion{Kind: MotionSpring, Bounce: 0.25}},
		{StyleSpring, Motion{Kind: MotionSpring, Stiffness: 100, Damping: 10}},
		{StyleGentle, Motion{Kind: MotionSpring, Stiffness: 60, Damping: 15}},
		{StyleEnergetic, Motion{Kind: MotionSpring, Stiffness: 300, Damping: 20}},
		{AnimationStyle(42), Motion{Kind: MotionTween}},
	}

	for _, tt := range tests {
		t.Run(tt.style.String(), func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(tt.want, tt.style.Motion()); diff != "" {
				t.Errorf("Motion() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseStyleAndScheme(t *testing.T) {
	t.Parallel()

	if got := ParseAnimationStyle("energetic"); got != StyleEnergetic {
		t.Errorf("ParseAnimationStyle(energetic) = %v", got)
	}
	if got := ParseAnimationStyle("wobbly"); got != StyleDefault {
		t.Errorf("ParseAnimationStyle(wobbly) = %v, want default", got)
	}
	if got := ParseColorScheme("gradient"); got != SchemeGradient {
		t.Errorf("ParseColorScheme(gradient) = %v", got)
	}
	if got := ParseColorScheme("neon"); got != SchemeDefault {
		t.Errorf("ParseColorScheme(neon) = %v, want default", got)
	}
	if got := ColorScheme(9).String(); got != "ColorScheme(9)" {
		t.Errorf("String() = %q", got)
	}
}
