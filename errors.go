package sunglide

import (
	"errors"
	"fmt"

	"github.com/thurmanmarka/sunglide/internal/solver"
)

// MathError is returned by TimeOfTransit and TimeAtElevation when the Sun
// never reaches the requested zenith on that date at that latitude.
type MathError = solver.MathError

// ErrorKind classifies a ValueError.
type ErrorKind int

const (
	// NeverReachesDepression: the Sun never sinks Degrees below the horizon.
	NeverReachesDepression ErrorKind = iota + 1
	// NeverReachesElevation: the Sun never climbs Degrees above the horizon.
	NeverReachesElevation
	// AlwaysAbove: the Sun does not set on this day.
	AlwaysAbove
	// AlwaysBelow: the Sun does not rise on this day.
	AlwaysBelow
)

func (k ErrorKind) String() string {
	switch k {
	case NeverReachesDepression:
		return "never reaches depression"
	case NeverReachesElevation:
		return "never reaches elevation"
	case AlwaysAbove:
		return "always above horizon"
	case AlwaysBelow:
		return "always below horizon"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// ValueError reports that a requested solar event does not occur on the
// given day at the observer's location.
type ValueError struct {
	Kind    ErrorKind
	Degrees float64 // depression or elevation, for the NeverReaches kinds
}

func (e *ValueError) Error() string {
	switch e.Kind {
	case NeverReachesDepression:
		return fmt.Sprintf("sun never reaches %g degrees below the horizon, at this location", e.Degrees)
	case NeverReachesElevation:
		return fmt.Sprintf("sun never reaches %g degrees above the horizon, at this location", e.Degrees)
	case AlwaysAbove:
		return "sun is always above the horizon on this day, at this location"
	case AlwaysBelow:
		return "sun is always below the horizon on this day, at this location"
	default:
		return "sun event does not occur on this day, at this location"
	}
}

func isMathError(err error) bool {
	var me *MathError
	return errors.As(err, &me)
}

// zenithError converts a solver failure for the given zenith into a
// ValueError. Other errors are returned unchanged.
func zenithError(err error, zenith float64) error {
	if !isMathError(err) {
		return err
	}
	if zenith > 90 {
		return &ValueError{Kind: NeverReachesDepression, Degrees: zenith - 90}
	}
	return &ValueError{Kind: NeverReachesElevation, Degrees: 90 - zenith}
}
