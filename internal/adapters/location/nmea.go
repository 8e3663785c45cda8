package location

import (
	"discgolf-session-service/internal/domain"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrNoFix is returned for well-formed sentences that carry no position.
	ErrNoFix = errors.New("nmea: no position fix")
	// ErrChecksum is returned when the trailing checksum does not match.
	ErrChecksum = errors.New("nmea: checksum mismatch")
	// ErrUnsupportedSentence is returned for sentence types other than GGA and RMC.
	ErrUnsupportedSentence = errors.New("nmea: unsupported sentence")
)

// ParseSentence extracts a position from a GGA or RMC sentence from any
// talker (GP, GN, GL, ...). The checksum is verified when present.
func ParseSentence(line string) (domain.Coordinate, error) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, "$") {
		return domain.Coordinate{}, fmt.Errorf("parse nmea %q: missing '$'", line)
	}
	body := line[1:]

	if star := strings.LastIndexByte(body, '*'); star >= 0 {
		want, err := strconv.ParseUint(body[star+1:], 16, 8)
		if err != nil {
			return domain.Coordinate{}, fmt.Errorf("parse nmea checksum: %w", ErrChecksum)
		}
		body = body[:star]
		if checksum(body) != byte(want) {
			return domain.Coordinate{}, ErrChecksum
		}
	}

	fields := strings.Split(body, ",")
	if len(fields[0]) != 5 {
		return domain.Coordinate{}, fmt.Errorf("parse nmea %q: %w", fields[0], ErrUnsupportedSentence)
	}

	switch fields[0][2:] {
	case "GGA":
		// time, lat, N/S, lon, E/W, quality, ...
		if len(fields) < 7 {
			return domain.Coordinate{}, fmt.Errorf("parse GGA: short sentence (%d fields)", len(fields))
		}
		if fields[6] == "" || fields[6] == "0" {
			return domain.Coordinate{}, ErrNoFix
		}
		return parseLatLon(fields[2], fields[3], fields[4], fields[5])

	case "RMC":
		// time, status, lat, N/S, lon, E/W, ...
		if len(fields) < 7 {
			return domain.Coordinate{}, fmt.Errorf("parse RMC: short sentence (%d fields)", len(fields))
		}
		if fields[2] != "A" {
			return domain.Coordinate{}, ErrNoFix
		}
		return parseLatLon(fields[3], fields[4], fields[5], fields[6])
	}

	return domain.Coordinate{}, fmt.Errorf("parse nmea %q: %w", fields[0], ErrUnsupportedSentence)
}

func checksum(s string) byte {
	var sum byte
	for i := 0; i < len(s); i++ {
		sum ^= s[i]
	}
	return sum
}

func parseLatLon(lat, ns, lon, ew string) (domain.Coordinate, error) {
	if lat == "" || lon == "" {
		return domain.Coordinate{}, ErrNoFix
	}

	φ, err := parseDegreesMinutes(lat, 2)
	if err != nil {
		return domain.Coordinate{}, fmt.Errorf("parse latitude: %w", err)
	}
	λ, err := parseDegreesMinutes(lon, 3)
	if err != nil {
		return domain.Coordinate{}, fmt.Errorf("parse longitude: %w", err)
	}

	switch ns {
	case "N":
	case "S":
		φ = -φ
	default:
		return domain.Coordinate{}, fmt.Errorf("parse latitude hemisphere %q", ns)
	}
	switch ew {
	case "E":
	case "W":
		λ = -λ
	default:
		return domain.Coordinate{}, fmt.Errorf("parse longitude hemisphere %q", ew)
	}

	return domain.Coordinate{Latitude: φ, Longitude: λ}, nil
}

// parseDegreesMinutes reads NMEA "dddmm.mmmm" with degWidth degree digits.
func parseDegreesMinutes(v string, degWidth int) (float64, error) {
	if len(v) < degWidth+2 {
		return 0, fmt.Errorf("value %q too short", v)
	}
	deg, err := strconv.Atoi(v[:degWidth])
	if err != nil {
		return 0, err
	}
	mins, err := strconv.ParseFloat(v[degWidth:], 64)
	if err != nil {
		return 0, err
	}
	if mins >= 60 {
		return 0, fmt.Errorf("minutes %v out of range", mins)
	}
	return float64(deg) + mins/60, nil
}
