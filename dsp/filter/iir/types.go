package iir

import (
	"fmt"
	"strings"
)

// Type identifies a filter family.
type Type int

const (
	Butterworth Type = iota
	LinkwitzRiley
	Bessel
	ChebyshevTypeI
	ChebyshevTypeII
	VariableQ
	AllPass
	Equalization
	Notch
	Shelf
)

var typeNames = [...]string{
	Butterworth:     "Butterworth",
	LinkwitzRiley:   "LinkwitzRiley",
	Bessel:          "Bessel",
	ChebyshevTypeI:  "ChebyshevTypeI",
	ChebyshevTypeII: "ChebyshevTypeII",
	VariableQ:       "VariableQ",
	AllPass:         "AllPass",
	Equalization:    "Equalization",
	Notch:           "Notch",
	Shelf:           "Shelf",
}

// Types returns every filter family in declaration order.
func Types() []Type {
	out := make([]Type, len(typeNames))
	for i := range typeNames {
		out[i] = Type(i)
	}
	return out
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return typeNames[t]
}

// ParseType resolves a family name case-insensitively. Hyphens, underscores
// and spaces are ignored, so "linkwitz-riley" matches LinkwitzRiley.
func ParseType(s string) (Type, error) {
	key := normalizeName(s)
	for i, name := range typeNames {
		if strings.EqualFold(name, key) {
			return Type(i), nil
		}
	}
	return 0, fmt.Errorf("iir: unknown filter type %q", s)
}

// PassType identifies the pass band shape of a filter.
type PassType int

const (
	None PassType = iota
	LowPass
	HighPass
	BandPass
	BandStop
)

var passTypeNames = [...]string{
	None:     "None",
	LowPass:  "LowPass",
	HighPass: "HighPass",
	BandPass: "BandPass",
	BandStop: "BandStop",
}

func (p PassType) String() string {
	if p < 0 || int(p) >= len(passTypeNames) {
		return fmt.Sprintf("PassType(%d)", int(p))
	}
	return passTypeNames[p]
}

// ParsePassType resolves a pass type name case-insensitively, ignoring
// hyphens, underscores and spaces. The short forms lp, hp, bp and bs are
// accepted as well.
func ParsePassType(s string) (PassType, error) {
	key := normalizeName(s)
	switch strings.ToLower(key) {
	case "lp":
		return LowPass, nil
	case "hp":
		return HighPass, nil
	case "bp":
		return BandPass, nil
	case "bs":
		return BandStop, nil
	}
	for i, name := range passTypeNames {
		if strings.EqualFold(name, key) {
			return PassType(i), nil
		}
	}
	return 0, fmt.Errorf("iir: unknown pass type %q", s)
}

func normalizeName(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '-', '_', ' ':
			return -1
		}
		return r
	}, strings.TrimSpace(s))
}
