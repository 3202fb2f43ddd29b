package bnd

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/philipparndt/gosensors/pkg/errkind"
)

// Unit is the length unit coordinates are declared in. The zero value is
// Meter, which is also the fallback for unrecognized units.
type Unit int

const (
	Meter Unit = iota
	Millimeter
	Centimeter
	Decimeter
)

// Factor returns the multiplier converting a coordinate in u to meters
func (u Unit) Factor() float64 {
	switch u {
	case Millimeter:
		return 0.001
	case Centimeter:
		return 0.01
	case Decimeter:
		return 0.1
	default:
		return 1.0
	}
}

func (u Unit) String() string {
	switch u {
	case Meter:
		return "m"
	case Millimeter:
		return "mm"
	case Centimeter:
		return "cm"
	case Decimeter:
		return "dm"
	}
	return fmt.Sprintf("unit(%d)", int(u))
}

var unitWords = map[string]Unit{
	"mm":          Millimeter,
	"millimeter":  Millimeter,
	"millimeters": Millimeter,
	"millimetre":  Millimeter,
	"millimetres": Millimeter,
	"cm":          Centimeter,
	"centimeter":  Centimeter,
	"centimeters": Centimeter,
	"centimetre":  Centimeter,
	"centimetres": Centimeter,
	"dm":          Decimeter,
	"decimeter":   Decimeter,
	"decimeters":  Decimeter,
	"decimetre":   Decimeter,
	"decimetres":  Decimeter,
	"m":           Meter,
	"meter":       Meter,
	"meters":      Meter,
	"metre":       Meter,
	"metres":      Meter,
}

// ResolveUnit finds the unit named in the remainder of a UnitPosition line.
// The remainder is split into alphabetic words and the first word that is a
// unit name wins, so "UnitPosition\tcm" resolves to Centimeter and a line
// naming no unit fails with an errkind.UnknownUnit error and Meter.
func ResolveUnit(rest string) (Unit, error) {
	words := strings.FieldsFunc(rest, func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	for _, word := range words {
		if unit, ok := unitWords[strings.ToLower(word)]; ok {
			return unit, nil
		}
	}
	return Meter, errkind.New(errkind.UnknownUnit, "no known unit in %q, assuming meters", strings.TrimSpace(rest))
}
