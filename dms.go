package sunglide

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var dmsPattern = regexp.MustCompile(`(?i)(?P<deg>\d{1,3})°?(?:(?P<min>\d{1,2})[′'])?(?:(?P<sec>\d{1,2})[″"])?(?P<dir>[NSEW])?`)

// ParseDMS converts a plain number or a string of the form
// degrees°minutes'seconds"[NSEW] to degrees. S and W are negative. When
// limit is positive the result is clamped to ±limit.
func ParseDMS(s string, limit float64) (float64, error) {
	s = strings.TrimSpace(s)

	res, err := strconv.ParseFloat(s, 64)
	if math.IsNaN(res) || math.IsInf(res, 0) {
		return 0, fmt.Errorf("%q is not a finite number", s)
	}
	if err != nil {
		m := dmsPattern.FindStringSubmatch(s)
		if m == nil {
			return 0, fmt.Errorf("unable to convert %q to a float", s)
		}

		field := func(name string) float64 {
			v, _ := strconv.ParseFloat(m[dmsPattern.SubexpIndex(name)], 64)
			return v
		}

		res = field("deg") + field("min")/60 + field("sec")/3600

		switch strings.ToUpper(m[dmsPattern.SubexpIndex("dir")]) {
		case "S", "W":
			res = -res
		}
	}

	if limit > 0 {
		if res > limit {
			res = limit
		} else if res < -limit {
			res = -limit
		}
	}
	return res, nil
}
