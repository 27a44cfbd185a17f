package countup

import "fmt"

// ColorScheme is a rendering hint for hosts; the counter itself never uses it.
type ColorScheme uint8

const (
	SchemeDefault ColorScheme = iota
	SchemeGradient
	SchemePrimary
	SchemeSecondary
	SchemeCustom
)

var schemeNames = [...]string{
	SchemeDefault:   "default",
	SchemeGradient:  "gradient",
	SchemePrimary:   "primary",
	SchemeSecondary: "secondary",
	SchemeCustom:    "custom",
}

func (s ColorScheme) String() string {
	if s.Valid() {
		return schemeNames[s]
	}
	return fmt.Sprintf("ColorScheme(%d)", uint8(s))
}

func (s ColorScheme) Valid() bool {
	return int(s) < len(schemeNames)
}

// ParseColorScheme returns the scheme with the given name, or SchemeDefault.
func ParseColorScheme(name string) ColorScheme {
	for i, n := range schemeNames {
		if n == name {
			return ColorScheme(i)
		}
	}
	return SchemeDefault
}
