// Package astro derives planet orientation and sun geometry from wall-clock time.
// All functions are pure and total: any timestamp yields a value, nothing errors.
package astro

import (
	"math"
	"time"
)

const (
	// RadPerMinute converts one minute of UTC time to the fraction of a
	// full rotation (1440 minutes per day).
	RadPerMinute = 2 * math.Pi / 1440

	// primeMeridianOffset aligns the day texture's prime-meridian pixel
	// column with true longitude 0. Calibrated for the bundled texture.
	primeMeridianOffset = -math.Pi

	// forwardAxisOffset aligns the model's local forward axis with the
	// renderer's coordinate convention.
	forwardAxisOffset = -math.Pi / 2

	// maxSinDeclination is sin(23.44 deg), the planet's axial tilt.
	maxSinDeclination = 0.398

	// solsticeDay is the approximate zero-based day-of-year of the June
	// solstice, where declination peaks.
	solsticeDay = 173

	// tropicalYearDays is the length of the tropical year.
	tropicalYearDays = 365.242
)

// PlanetRotation returns the planet's spin angle about its polar axis for t,
// normalized to (-pi, pi]. The angle depends only on the UTC time of day.
func PlanetRotation(t time.Time) float64 {
	utc := t.UTC()
	minutes := float64(utc.Hour()*60 + utc.Minute())
	return WrapAngle(minutes*RadPerMinute + primeMeridianOffset + forwardAxisOffset)
}

// Declination returns the solar declination in radians for a zero-based day
// of year, using a single-term cosine approximation of the annual cycle.
func Declination(dayOfYear int) float64 {
	sinDecl := maxSinDeclination * math.Cos(2*math.Pi*float64(dayOfYear-solsticeDay)/tropicalYearDays)
	return math.Asin(sinDecl)
}

// SunElevation returns the subsolar angle for t. Day-of-year boundaries
// follow t's location, so the value steps at local midnight.
func SunElevation(t time.Time) float64 {
	return Declination(t.YearDay() - 1)
}

// LightOffset returns the directional light's displacement along the polar
// axis for a light placed distance away from the planet center.
func LightOffset(distance, elevation float64) float64 {
	return distance * math.Tan(elevation)
}

// WrapAngle normalizes an angle to (-pi, pi].
func WrapAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a <= -math.Pi {
		a += 2 * math.Pi
	} else if a > math.Pi {
		a -= 2 * math.Pi
	}
	return a
}
