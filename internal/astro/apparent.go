package astro

import (
	"time"

	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/sidereal"
	"github.com/soniakeys/meeus/v3/solar"
)

// SunDirection returns a unit vector from the planet center toward the sun
// in the earth-fixed frame: x through the prime meridian on the equator,
// z through the north pole. Used by the precise-sun mode in place of the
// fast declination approximation.
func SunDirection(t time.Time) (x, y, z float64) {
	jd := julian.TimeToJD(t.UTC())

	// Apparent RA/Dec of the sun, as an inertial unit vector.
	ra, dec := solar.ApparentEquatorial(jd)
	xi := dec.Cos() * ra.Cos()
	yi := dec.Cos() * ra.Sin()
	zi := dec.Sin()

	// Rotate inertial to earth-fixed using apparent sidereal time.
	gmst := sidereal.Apparent0UT(jd)
	c := gmst.Angle().Cos()
	s := gmst.Angle().Sin()

	return xi*c + yi*s, -xi*s + yi*c, zi
}

// ApparentDeclination returns the apparent solar declination for t from the
// full Meeus solar theory.
func ApparentDeclination(t time.Time) float64 {
	_, dec := solar.ApparentEquatorial(julian.TimeToJD(t.UTC()))
	return dec.Rad()
}
