package api

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/thurmanmarka/sunglide"
)

// badRequest marks an error caused by the request's parameters.
type badRequest struct{ err error }

func (e badRequest) Error() string { return e.err.Error() }
func (e badRequest) Unwrap() error { return e.err }

var errNoLocation = errors.New("location or lat and lon are required")

func badRequestf(format string, args ...any) error {
	return badRequest{fmt.Errorf(format, args...)}
}

// request holds the parsed common query parameters.
type request struct {
	obs  sunglide.Observer
	tz   *time.Location
	date time.Time
}

// parseRequest resolves the observer, time zone and date of r. A location
// name wins over lat/lon; tz overrides the location's own zone; a missing
// date means today in tz.
func (s *Server) parseRequest(r *http.Request) (request, error) {
	q := r.URL.Query()
	def := s.getDefaults()

	var (
		req    request
		tzName string
	)

	switch {
	case q.Get("location") != "":
		l, err := s.db.Lookup(q.Get("location"))
		if err != nil {
			return request{}, err
		}
		req.obs = l.Observer()
		tzName = l.Timezone
	case q.Get("lat") != "" || q.Get("lon") != "":
		lat, err := sunglide.ParseDMS(q.Get("lat"), 0)
		if err != nil || lat < -90 || lat > 90 {
			return request{}, badRequestf("invalid lat %q", q.Get("lat"))
		}
		lon, err := sunglide.ParseDMS(q.Get("lon"), 0)
		if err != nil || lon < -180 || lon > 180 {
			return request{}, badRequestf("invalid lon %q", q.Get("lon"))
		}
		req.obs = sunglide.NewObserver(lat, lon)
	case def.Observer != nil:
		req.obs = *def.Observer
	default:
		return request{}, badRequest{errNoLocation}
	}

	if v := q.Get("elevation"); v != "" {
		h, err := strconv.ParseFloat(v, 64)
		if err != nil || !(h >= 0) || math.IsInf(h, 0) {
			return request{}, badRequestf("invalid elevation %q", v)
		}
		req.obs.Elevation = sunglide.Height(h)
	}

	tz, date, err := s.parseWhen(q, tzName)
	if err != nil {
		return request{}, err
	}
	req.tz, req.date = tz, date
	return req, nil
}

// parseWhen resolves the time zone and date. The tz parameter overrides
// zone, which is the named location's own zone or empty.
func (s *Server) parseWhen(q url.Values, zone string) (*time.Location, time.Time, error) {
	if v := q.Get("tz"); v != "" {
		zone = v
	}

	var tz *time.Location
	switch def := s.getDefaults(); {
	case zone != "":
		l, err := time.LoadLocation(zone)
		if err != nil {
			return nil, time.Time{}, badRequestf("invalid tz %q", zone)
		}
		tz = l
	case def.Timezone != nil:
		tz = def.Timezone
	default:
		tz = time.UTC
	}

	v := q.Get("date")
	if v == "" {
		return tz, sunglide.Today(tz), nil
	}
	d, err := time.ParseInLocation(time.DateOnly, v, tz)
	if err != nil {
		return nil, time.Time{}, badRequestf("invalid date %q, want YYYY-MM-DD", v)
	}
	return tz, d, nil
}

func parseBool(r *http.Request, key string, def bool) (bool, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, badRequestf("invalid %s %q", key, v)
	}
	return b, nil
}

func parseDirection(r *http.Request) (sunglide.SunDirection, error) {
	switch v := r.URL.Query().Get("direction"); v {
	case "", "rising":
		return sunglide.Rising, nil
	case "setting":
		return sunglide.Setting, nil
	default:
		return 0, badRequestf("invalid direction %q, want rising or setting", v)
	}
}

func (s *Server) parseDepression(r *http.Request) (sunglide.Depression, error) {
	v := r.URL.Query().Get("depression")
	if v == "" {
		return s.getDefaults().Depression, nil
	}
	dep, err := sunglide.ParseDepression(v)
	if err != nil {
		return sunglide.Depression{}, badRequest{err}
	}
	return dep, nil
}

func isBadRequest(err error) bool {
	var br badRequest
	return errors.As(err, &br)
}
