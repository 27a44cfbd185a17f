package countup

import (
	"math"
	"strconv"
	"strings"
)

const groupSize = 3

// FormatNumber renders v in fixed-point notation with exactly decimals
// fractional digits and sep between every three digits of the integer part.
// Negative values keep a leading minus sign in front of the grouped digits.
// Ties round away from zero, so 2.5 renders as "3".
func FormatNumber(v float64, decimals int, sep string) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	if decimals < 0 {
		decimals = 0
	}

	s := strconv.FormatFloat(roundHalfAway(v, decimals), 'f', decimals, 64)
	sign := ""
	if rest, ok := strings.CutPrefix(s, "-"); ok {
		sign, s = "-", rest
	}

	intPart, fracPart, hasFrac := strings.Cut(s, ".")

	var b strings.Builder
	b.Grow(len(s) + len(sep)*(len(intPart)/groupSize) + 1)
	b.WriteString(sign)
	b.WriteString(groupDigits(intPart, sep))
	if hasFrac {
		b.WriteByte('.')
		b.WriteString(fracPart)
	}
	return b.String()
}

// roundHalfAway rounds v to decimals fractional digits with ties away from
// zero. Magnitudes past 2^53 after scaling have no fractional part left and
// are returned as is.
func roundHalfAway(v float64, decimals int) float64 {
	scaled := math.Abs(v) * math.Pow10(decimals)
	if math.IsInf(scaled, 0) || scaled >= 1<<53 {
		return v
	}
	return math.Copysign(math.Round(scaled)/math.Pow10(decimals), v)
}

func groupDigits(digits, sep string) string {
	if len(digits) <= groupSize || sep == "" {
		return digits
	}

	var b strings.Builder
	lead := len(digits) % groupSize
	if lead == 0 {
		lead = groupSize
	}
	b.WriteString(digits[:lead])
	for i := lead; i < len(digits); i += groupSize {
		b.WriteString(sep)
		b.WriteString(digits[i : i+groupSize])
	}
	return b.String()
}
