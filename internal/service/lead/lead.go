package lead

import (
	"context"
	"regexp"
	"slices"
)

// Kind is the list a lead subscribes to.
type Kind string

const (
	KindDownload Kind = "DOWNLOAD"
	KindHelper   Kind = "HELPER"
)

var Kinds = []Kind{KindDownload, KindHelper}

func (k Kind) Valid() bool { return slices.Contains(Kinds, k) }

func (k Kind) String() string { return string(k) }

// Next cycles through Kinds.
func (k Kind) Next() Kind {
	i := slices.Index(Kinds, k)
	return Kinds[(i+1)%len(Kinds)]
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const (
	fieldEmail = "email"
	fieldKind  = "kind"

	msgInvalidEmail = "email address is not valid"
	msgInvalidKind  = "kind must be DOWNLOAD or HELPER"
)

// ValidEmail reports whether s looks like an address: one @, a dot in the
// domain, no whitespace.
func ValidEmail(s string) bool { return emailPattern.MatchString(s) }

type SubscribeRequest struct {
	Email string `json:"email"`
	Kind  Kind   `json:"kind"`
	// Website is a honeypot field that humans never fill in.
	Website string `json:"website,omitempty"`
}

func (r SubscribeRequest) Validate() map[string]string {
	errs := make(map[string]string)
	if !ValidEmail(r.Email) {
		errs[fieldEmail] = msgInvalidEmail
	}
	if !r.Kind.Valid() {
		errs[fieldKind] = msgInvalidKind
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func (r SubscribeRequest) IsBot() bool { return r.Website != "" }

type SubscribeResult struct {
	// Created is false for a duplicate (email, kind) pair or a honeypot hit.
	Created bool
	Ignored bool
}

type Service interface {
	// Subscribe validates req and stores it. Honeypot submissions succeed
	// without storing anything. Returns a *xerrors.Error with field messages
	// when req is invalid.
	Subscribe(ctx context.Context, req SubscribeRequest) (*SubscribeResult, error)
}
