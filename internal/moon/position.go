package moon

import (
	"math"

	"github.com/thurmanmarka/sunglide/internal/timeutil"
)

// Equatorial holds right ascension and declination, both in degrees.
type Equatorial struct {
	RA  float64 // [0, 360)
	Dec float64
}

// arguments are the fundamental lunar arguments in degrees.
type arguments struct {
	elongation  float64 // D, Moon from Sun
	sunAnomaly  float64 // M
	moonAnomaly float64 // M'
	node        float64 // F, argument of latitude
}

// argumentsAt returns the arguments d days after J2000.0.
func argumentsAt(d float64) arguments {
	return arguments{
		elongation:  timeutil.Normalize360(297.8501921 + 12.19074912*d),
		sunAnomaly:  timeutil.Normalize360(357.5291092 + 0.98560028*d),
		moonAnomaly: timeutil.Normalize360(134.9633964 + 13.06499295*d),
		node:        timeutil.Normalize360(93.2720950 + 13.22935024*d),
	}
}

// term is one periodic term: amp times the sine (or cosine) of
// D·nD + M·nM + M'·nMm + F·nF.
type term struct {
	nD, nM, nMm, nF int
	amp             float64
}

func (a arguments) angle(t term) float64 {
	return float64(t.nD)*a.elongation +
		float64(t.nM)*a.sunAnomaly +
		float64(t.nMm)*a.moonAnomaly +
		float64(t.nF)*a.node
}

// sines sums amp·sin over terms.
func (a arguments) sines(terms []term) float64 {
	var sum float64
	for _, t := range terms {
		sum += t.amp * timeutil.SinD(a.angle(t))
	}
	return sum
}

// cosines sums amp·cos over terms.
func (a arguments) cosines(terms []term) float64 {
	var sum float64
	for _, t := range terms {
		sum += t.amp * timeutil.CosD(a.angle(t))
	}
	return sum
}

// Dominant terms of the truncated series, degrees.
var (
	longitudeTerms = []term{
		{0, 0, 1, 0, 6.289},
		{2, 0, -1, 0, 1.274},
		{2, 0, 0, 0, 0.658},
		{0, 0, 2, 0, 0.214},
		{0, 1, 0, 0, -0.186},
		{0, 0, 0, 2, -0.114},
	}
	latitudeTerms = []term{
		{0, 0, 0, 1, 5.128},
		{0, 0, 1, 1, 0.280},
		{0, 0, 1, -1, 0.277},
		{2, 0, 0, -1, 0.173},
	}
)

// Distance terms, km.
var distanceTerms = []term{
	{0, 0, 1, 0, -20905.0},
	{2, 0, -1, 0, -3699.0},
	{2, 0, 0, 0, -2956.0},
	{0, 0, 2, 0, -570.0},
	{2, 0, 1, 0, -246.0},
}

const meanDistance = 385000.56 // km

// GeocentricEquatorial returns an approximate geocentric RA/Dec for the
// Moon d days after J2000.0.
func GeocentricEquatorial(d float64) Equatorial {
	a := argumentsAt(d)
	meanLongitude := timeutil.Normalize360(218.3164477 + 13.17639648*d)

	lambda := timeutil.Deg2Rad(meanLongitude + a.sines(longitudeTerms))
	beta := timeutil.Deg2Rad(a.sines(latitudeTerms))
	obliquity := timeutil.Deg2Rad(23.439291 - 0.0000137*d)

	return toEquatorial(lambda, beta, obliquity)
}

// toEquatorial rotates ecliptic longitude and latitude (radians) by the
// obliquity into right ascension and declination.
func toEquatorial(lambda, beta, obliquity float64) Equatorial {
	sinE, cosE := math.Sincos(obliquity)

	x := math.Cos(beta) * math.Cos(lambda)
	y := math.Cos(beta)*math.Sin(lambda)*cosE - math.Sin(beta)*sinE
	z := math.Cos(beta)*math.Sin(lambda)*sinE + math.Sin(beta)*cosE

	return Equatorial{
		RA:  timeutil.Normalize360(timeutil.Rad2Deg(math.Atan2(y, x))),
		Dec: timeutil.Rad2Deg(math.Asin(z)),
	}
}

// Distance returns the approximate Earth-Moon distance in km at Julian
// century T.
func Distance(T float64) float64 {
	a := arguments{
		elongation:  timeutil.Normalize360(297.8501921 + 445267.1114034*T),
		moonAnomaly: timeutil.Normalize360(134.9633964 + 477198.8675055*T),
	}
	return meanDistance + a.cosines(distanceTerms)
}
