package config

import (
	"discgolf-session-service/internal/domain"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("test", nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Port != "8080" || cfg.Unit != domain.Imperial {
		t.Fatalf("port = %s unit = %s", cfg.Port, cfg.Unit)
	}
	if cfg.LocationMinInterval != 500*time.Millisecond || cfg.LocationMinMovementMeters != 1 {
		t.Fatalf("location gate = %s / %v", cfg.LocationMinInterval, cfg.LocationMinMovementMeters)
	}
	if cfg.FeedbackDisplay != 2500*time.Millisecond {
		t.Fatalf("feedback display = %s", cfg.FeedbackDisplay)
	}
	if cfg.GPSSerialPort != "" || cfg.GPSBaudRate != 9600 {
		t.Fatalf("gps = %q @ %d", cfg.GPSSerialPort, cfg.GPSBaudRate)
	}
}

func TestLoadEnvAndFlags(t *testing.T) {
	t.Setenv("UNIT", "metric")
	t.Setenv("LOCATION_MIN_INTERVAL", "1s")
	t.Setenv("PORT", "9000")

	cfg, err := Load("test", []string{"-port", "9100", "-wrap-angles"})
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Port != "9100" {
		t.Fatalf("port = %s, want flag to win over env", cfg.Port)
	}
	if cfg.Unit != domain.Metric || !cfg.WrapAngles {
		t.Fatalf("unit = %s wrap = %v", cfg.Unit, cfg.WrapAngles)
	}
	if cfg.LocationMinInterval != time.Second {
		t.Fatalf("interval = %s, want 1s", cfg.LocationMinInterval)
	}

	sc := cfg.Session()
	if sc.Unit != domain.Metric || !sc.WrapAngles || sc.LocationMinInterval != time.Second {
		t.Fatalf("session config = %+v", sc)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	bad := [][]string{
		{"-unit", "furlongs"},
		{"-feedback-display", "0s"},
		{"-gps-baud-rate", "0"},
		{"-location-min-interval", "soon"},
		{"-location-min-interval", "0s"},
		{"-location-min-movement-meters", "0"},
	}
	for _, args := range bad {
		if _, err := Load("test", args); err == nil {
			t.Errorf("Load(%v) accepted", args)
		}
	}
}
