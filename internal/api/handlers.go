package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/thurmanmarka/sunglide"
	"github.com/thurmanmarka/sunglide/geocoder"
	"github.com/thurmanmarka/sunglide/internal/log"
)

type sunResponse struct {
	Date       string                  `json:"date"`
	Depression string                  `json:"depression"`
	Times      sunglide.SunTimes       `json:"times"`
	Midnight   time.Time               `json:"midnight"`
	Daylight   float64                 `json:"daylight_hours"`
	Golden     sunglide.DaylightPhases `json:"golden_hour"`
	Blue       sunglide.DaylightPhases `json:"blue_hour"`
}

type positionResponse struct {
	Time       time.Time `json:"time"`
	Zenith     float64   `json:"zenith"`
	Azimuth    float64   `json:"azimuth"`
	Elevation  float64   `json:"elevation"`
	Refraction bool      `json:"refraction"`
}

type windowResponse struct {
	Kind      string          `json:"kind"`
	Direction string          `json:"direction,omitempty"`
	Window    sunglide.Window `json:"window"`
	Minutes   float64         `json:"minutes"`
}

type moonResponse struct {
	Date      string             `json:"date"`
	Phase     float64            `json:"phase"`
	PhaseName string             `json:"phase_name"`
	State     sunglide.MoonState `json:"state"`
}

func (s *Server) getSun(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRequest(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	dep, err := s.parseDepression(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	times, err := sunglide.Sun(req.obs, req.date, dep, req.tz)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	resp := sunResponse{
		Date:       req.date.Format(time.DateOnly),
		Depression: dep.String(),
		Times:      times,
		Midnight:   sunglide.Midnight(req.obs, req.date, req.tz),
	}
	resp.Daylight, _ = sunglide.DaylightHours(req.obs, req.date)
	resp.Golden, _ = sunglide.GoldenHours(req.obs, req.date, req.tz)
	resp.Blue, _ = sunglide.BlueHours(req.obs, req.date, req.tz)

	s.write(w, r, resp)
}

func (s *Server) getPosition(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRequest(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	refraction, err := parseBool(r, "refraction", true)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	t := sunglide.Now(req.tz)
	if v := r.URL.Query().Get("time"); v != "" {
		if t, err = time.Parse(time.RFC3339, v); err != nil {
			s.writeError(w, r, badRequestf("invalid time %q, want RFC 3339", v))
			return
		}
		t = t.In(req.tz)
	}

	zenith, azimuth := sunglide.ZenithAndAzimuth(req.obs, t, refraction)
	s.write(w, r, positionResponse{
		Time:       t,
		Zenith:     zenith,
		Azimuth:    azimuth,
		Elevation:  90 - zenith,
		Refraction: refraction,
	})
}

func (s *Server) getWindow(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRequest(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	dir, err := parseDirection(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	kind := mux.Vars(r)["kind"]
	resp := windowResponse{Kind: kind}

	switch kind {
	case "twilight":
		resp.Window, err = sunglide.Twilight(req.obs, req.date, dir, req.tz)
	case "golden":
		resp.Window, err = sunglide.GoldenHour(req.obs, req.date, dir, req.tz)
	case "blue":
		resp.Window, err = sunglide.BlueHour(req.obs, req.date, dir, req.tz)
	case "daylight":
		resp.Window, err = sunglide.Daylight(req.obs, req.date, req.tz)
	case "night":
		resp.Window, err = sunglide.Night(req.obs, req.date, req.tz)
	default:
		s.writeError(w, r, badRequestf("unknown window %q", kind))
		return
	}
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	switch kind {
	case "twilight", "golden", "blue":
		resp.Direction = dir.String()
	}
	resp.Minutes = resp.Window.Duration().Minutes()
	s.write(w, r, resp)
}

func (s *Server) getRahukaalam(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRequest(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	daytime, err := parseBool(r, "daytime", true)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	win, err := sunglide.Rahukaalam(req.obs, req.date, daytime, req.tz)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.write(w, r, windowResponse{Kind: "rahukaalam", Window: win, Minutes: win.Duration().Minutes()})
}

func (s *Server) getMoon(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRequest(r)
	if err != nil && !isNoLocation(err) {
		s.writeError(w, r, err)
		return
	}
	if req.tz == nil {
		if req.tz, req.date, err = s.parseWhen(r.URL.Query(), ""); err != nil {
			s.writeError(w, r, err)
			return
		}
	}

	phase := sunglide.MoonPhase(req.date)
	y, m, d := req.date.Date()
	s.write(w, r, moonResponse{
		Date:      req.date.Format(time.DateOnly),
		Phase:     phase,
		PhaseName: sunglide.MoonPhaseName(phase),
		State:     sunglide.MoonAt(time.Date(y, m, d, 12, 0, 0, 0, req.tz)),
	})
}

// isNoLocation reports whether the request simply named no place, which
// is fine for lunar queries.
func isNoLocation(err error) bool {
	return errors.Is(err, errNoLocation)
}

func (s *Server) getLocations(w http.ResponseWriter, r *http.Request) {
	group := r.URL.Query().Get("group")
	if group == "" {
		s.write(w, r, s.db.All())
		return
	}

	locs, err := s.db.Group(group)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.write(w, r, locs)
}

func (s *Server) getLocation(w http.ResponseWriter, r *http.Request) {
	l, err := s.db.Lookup(mux.Vars(r)["name"])
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.write(w, r, l)
}

func (s *Server) write(w http.ResponseWriter, r *http.Request, data any) {
	if err := s.out.write(w, r, http.StatusOK, data); err != nil {
		log.Errorw("error encoding response", "path", r.URL.Path, "error", err)
	}
}

// writeError maps err to a status code: 422 when the event does not occur,
// 404 for unknown places, 400 for bad parameters and 500 otherwise.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	resp := errorResponse{Error: err.Error(), RequestID: requestID(r)}
	status := http.StatusInternalServerError

	var (
		ve *sunglide.ValueError
		me *sunglide.MathError
	)
	switch {
	case errors.As(err, &ve):
		status = http.StatusUnprocessableEntity
		resp.Kind = ve.Kind.String()
	case errors.As(err, &me):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, geocoder.ErrNotFound):
		status = http.StatusNotFound
	case isBadRequest(err):
		status = http.StatusBadRequest
	default:
		log.Errorw("request failed", "path", r.URL.Path, "error", err, "request_id", resp.RequestID)
	}

	if werr := s.out.write(w, r, status, resp); werr != nil {
		log.Errorw("error encoding error response", "error", werr)
	}
}
