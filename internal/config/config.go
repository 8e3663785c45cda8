// Package config loads service settings from a .env file, environment
// variables and command-line flags, in increasing order of precedence.
package config

import (
	"discgolf-session-service/internal/domain"
	"discgolf-session-service/internal/session"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/peterbourgon/ff"
)

type Config struct {
	Port string
	Unit domain.Unit

	WrapAngles                bool
	LocationMinInterval       time.Duration
	LocationMinMovementMeters float64
	FeedbackDisplay           time.Duration

	// GPS is disabled when GPSSerialPort is empty.
	GPSSerialPort string
	GPSBaudRate   int
	GPSCoalesce   time.Duration
}

// Load reads .env (if present) into the environment, then parses args with
// every flag also settable as an upper-snake-case environment variable
// (location-min-interval becomes LOCATION_MIN_INTERVAL).
func Load(name string, args []string) (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	def := session.DefaultConfig()

	var (
		cfg  Config
		unit string
	)
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&cfg.Port, "port", "8080", "HTTP listen port")
	fs.StringVar(&unit, "unit", def.Unit.String(), "initial display unit (imperial or metric)")
	fs.BoolVar(&cfg.WrapAngles, "wrap-angles", false, "measure bearing deviation the short way around the circle")
	fs.DurationVar(&cfg.LocationMinInterval, "location-min-interval", def.LocationMinInterval, "minimum time between applied location fixes")
	fs.Float64Var(&cfg.LocationMinMovementMeters, "location-min-movement-meters", def.LocationMinMovementMeters, "minimum movement between applied location fixes")
	fs.DurationVar(&cfg.FeedbackDisplay, "feedback-display", def.FeedbackDisplay, "how long each feedback batch stays on display")
	fs.StringVar(&cfg.GPSSerialPort, "gps-serial-port", "", "serial port of an NMEA GPS receiver (empty disables)")
	fs.IntVar(&cfg.GPSBaudRate, "gps-baud-rate", 9600, "GPS receiver baud rate")
	fs.DurationVar(&cfg.GPSCoalesce, "gps-coalesce", 100*time.Millisecond, "window for collapsing bursts of GPS fixes (0 disables)")

	if err := ff.Parse(fs, args, ff.WithEnvVarNoPrefix()); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	u, err := domain.ParseUnit(unit)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	cfg.Unit = u

	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	return cfg, nil
}

func (c Config) validate() error {
	if c.Port == "" {
		return fmt.Errorf("port is required")
	}
	if c.LocationMinInterval <= 0 {
		return fmt.Errorf("location-min-interval must be positive, got %s", c.LocationMinInterval)
	}
	if c.LocationMinMovementMeters <= 0 {
		return fmt.Errorf("location-min-movement-meters must be positive, got %v", c.LocationMinMovementMeters)
	}
	if c.FeedbackDisplay <= 0 {
		return fmt.Errorf("feedback-display must be positive, got %s", c.FeedbackDisplay)
	}
	if c.GPSBaudRate <= 0 {
		return fmt.Errorf("gps-baud-rate must be positive, got %d", c.GPSBaudRate)
	}
	if c.GPSCoalesce < 0 {
		return fmt.Errorf("gps-coalesce must not be negative, got %s", c.GPSCoalesce)
	}
	return nil
}

// Session returns the state machine settings.
func (c Config) Session() session.Config {
	cfg := session.DefaultConfig()
	cfg.Unit = c.Unit
	cfg.WrapAngles = c.WrapAngles
	cfg.LocationMinInterval = c.LocationMinInterval
	cfg.LocationMinMovementMeters = c.LocationMinMovementMeters
	cfg.FeedbackDisplay = c.FeedbackDisplay
	return cfg
}
