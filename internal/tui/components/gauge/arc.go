package gauge

import (
	"math"

	drawille "github.com/exrook/drawille-go"
)

// screen coords: 0°=right, 90°=down, 180°=left, 270°=up.
// rings start at 12 o'clock and fill clockwise.
const (
	arcStartAngle = 270.0
	arcSweep      = 360.0
)

// drawArc draws a ring of the given thickness, sweeping clockwise from startAngle.
// see: https://en.wikipedia.org/wiki/Midpoint_circle_algorithm
func drawArc(canvas *drawille.Canvas, cx, cy, radius, thickness int, startAngle, sweepAngle float64) {
	endAngle := startAngle + sweepAngle
	for t := range thickness {
		if r := radius - t; r > 0 {
			midpointCircleArc(canvas, cx, cy, r, startAngle, endAngle)
		}
	}
}

func midpointCircleArc(canvas *drawille.Canvas, cx, cy, radius int, startAngle, endAngle float64) {
	x, y := radius, 0
	d := 1 - radius

	for x >= y {
		for _, p := range [...][2]int{
			{cx + x, cy - y}, {cx + y, cy - x},
			{cx - y, cy - x}, {cx - x, cy - y},
			{cx - x, cy + y}, {cx - y, cy + x},
			{cx + y, cy + x}, {cx + x, cy + y},
		} {
			if inArc(cx, cy, p[0], p[1], startAngle, endAngle) {
				canvas.Set(p[0], p[1])
			}
		}

		y++
		if d < 0 {
			d += 2*y + 1
		} else {
			x--
			d += 2*(y-x) + 1
		}
	}
}

// inArc reports whether the point's angle around the center lies in
// [startAngle, endAngle]. endAngle may exceed 360 when the arc wraps.
func inArc(cx, cy, px, py int, startAngle, endAngle float64) bool {
	angle := math.Atan2(float64(py-cy), float64(px-cx)) * 180 / math.Pi
	if angle < 0 {
		angle += 360
	}
	if endAngle > 360 {
		return angle >= startAngle || angle <= endAngle-360
	}
	return angle >= startAngle && angle <= endAngle
}
