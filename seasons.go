package sunglide

import (
	"time"

	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/solstice"
)

// Seasons holds the equinoxes and solstices of one year. Instants are in
// dynamical time, which runs about a minute ahead of UTC in this era.
type Seasons struct {
	MarchEquinox     time.Time `json:"march_equinox" msgpack:"march_equinox"`
	JuneSolstice     time.Time `json:"june_solstice" msgpack:"june_solstice"`
	SeptemberEquinox time.Time `json:"september_equinox" msgpack:"september_equinox"`
	DecemberSolstice time.Time `json:"december_solstice" msgpack:"december_solstice"`
}

// SeasonsOf returns the equinoxes and solstices of year, in tz.
func SeasonsOf(year int, tz *time.Location) Seasons {
	at := func(jde float64) time.Time {
		return julian.JDToTime(jde).In(zone(tz)).Round(time.Second)
	}
	return Seasons{
		MarchEquinox:     at(solstice.March(year)),
		JuneSolstice:     at(solstice.June(year)),
		SeptemberEquinox: at(solstice.September(year)),
		DecemberSolstice: at(solstice.December(year)),
	}
}
