// Package profile holds the single-user onboarding profile.
package profile

import (
	"errors"
	"fmt"
	"strings"
)

type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
	Other  Gender = "other"
)

// Profile is captured once during onboarding and only ever replaced whole.
type Profile struct {
	Name   string `json:"name"`
	Gender Gender `json:"gender"`
}

var ErrNoName = errors.New("profile: name must not be empty")

// ParseGender normalizes a gender string to one of the known values.
func ParseGender(v string) (Gender, error) {
	switch Gender(strings.ToLower(strings.TrimSpace(v))) {
	case Male:
		return Male, nil
	case Female:
		return Female, nil
	case Other:
		return Other, nil
	}
	return "", fmt.Errorf("profile: unknown gender %q", v)
}

// Validate checks that the profile can be persisted.
func (p *Profile) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrNoName
	}
	if _, err := ParseGender(string(p.Gender)); err != nil {
		return err
	}
	return nil
}
