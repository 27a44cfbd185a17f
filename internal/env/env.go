package env

import "slices"

type Environment string

const (
	Development Environment = "development"
	Production  Environment = "production"
)

var environments = []Environment{Development, Production}

func (e Environment) IsDevelopment() bool { return e == Development }
func (e Environment) IsProduction() bool  { return e == Production }

// Valid reports whether e is a known deployment environment.
func (e Environment) Valid() bool { return slices.Contains(environments, e) }
