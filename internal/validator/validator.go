package validator

import "github.com/garrettladley/landing/internal/xerrors"

// Validator reports the problems with a decoded request body, keyed by the
// JSON field name. An empty result means the value is valid.
type Validator interface {
	Validate() map[string]string
}

// Validate returns a 400 carrying v's field messages, or nil when there are
// none. opts override the default message.
func Validate(v Validator, opts ...xerrors.Option) *xerrors.Error {
	fields := v.Validate()
	if len(fields) == 0 {
		return nil
	}
	return xerrors.Validation(fields, opts...)
}
