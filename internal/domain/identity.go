// Package domain contains entity types without logic, just meta-data.
package domain

import (
	"errors"
	"strings"
)

const MaxIdentityLen = 64

var (
	ErrIdentityEmpty   = errors.New("identity empty")
	ErrIdentityTooLong = errors.New("identity too long")
)

// Identity is a self-asserted string a client registers to be reachable by.
// Not authenticated; uniqueness is enforced operationally by the registry.
type Identity string

// ParseIdentity avoids ad-hoc casts in adapters and keeps validation in one place.
func ParseIdentity(raw string) (Identity, error) {
	raw = strings.TrimSpace(raw)
	if len(raw) == 0 {
		return "", ErrIdentityEmpty
	}
	if len(raw) > MaxIdentityLen {
		return "", ErrIdentityTooLong
	}
	return Identity(raw), nil
}
