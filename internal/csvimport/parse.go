package csvimport

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	bareIntegerRe  = regexp.MustCompile(`^\d+$`)
	hoursMinutesRe = regexp.MustCompile(`^(\d+)\s*(?:h|hr|hrs|hour|hours)\s*(?:(\d+)\s*(?:m|min|mins|minute|minutes)?)?$`)
	minutesOnlyRe  = regexp.MustCompile(`^(\d+)\s*(?:m|min|mins|minute|minutes)$`)
	colonRe        = regexp.MustCompile(`^(\d+):([0-5]\d)$`)

	priceCleaner = strings.NewReplacer("£", "", "$", "", "€", "", ",", "")
)

// ParseDuration converts a duration cell to minutes. Accepted forms, in order:
// "45", "1h 30m" / "2 hours", "90m" / "90 minutes", "1:30".
// Anything else, including an empty cell, yields NaN.
func ParseDuration(raw string) float64 {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return math.NaN()
	}

	if bareIntegerRe.MatchString(s) {
		return atof(s)
	}

	if m := hoursMinutesRe.FindStringSubmatch(s); m != nil {
		minutes := atof(m[1]) * 60
		if m[2] != "" {
			minutes += atof(m[2])
		}
		return minutes
	}

	if m := minutesOnlyRe.FindStringSubmatch(s); m != nil {
		return atof(m[1])
	}

	if m := colonRe.FindStringSubmatch(s); m != nil {
		return atof(m[1])*60 + atof(m[2])
	}

	return math.NaN()
}

// ParsePrice strips currency symbols, thousands separators and whitespace and
// parses the rest as a decimal. Unparseable or empty input yields NaN.
func ParsePrice(raw string) float64 {
	s := strings.Join(strings.Fields(priceCleaner.Replace(raw)), "")
	if s == "" {
		return math.NaN()
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) {
		return math.NaN()
	}

	return v
}

func atof(digits string) float64 {
	v, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
