package config

import (
	"os"
	"strconv"

	"parkometer/internal/parking"
)

type Config struct {
	Port            string
	OTelServiceName string
	OTelEndpoint    string
	SlotsPerZone    int
	RateTwoWheeler  int
	RateFourWheeler int
	RateElectric    int
	RateHeavy       int
}

func Load() *Config {
	return &Config{
		Port:            envOr("APP_PORT", "8080"),
		OTelServiceName: envOr("OTEL_SERVICE_NAME", "parkometer"),
		OTelEndpoint:    envOr("OTEL_EXPORTER_OTLP_ENDPOINT", "http://localhost:4318"),
		SlotsPerZone:    envOrInt("SLOTS_PER_ZONE", 10),
		RateTwoWheeler:  envOrInt("RATE_TWO_WHEELER", 10),
		RateFourWheeler: envOrInt("RATE_FOUR_WHEELER", 20),
		RateElectric:    envOrInt("RATE_ELECTRIC", 15),
		RateHeavy:       envOrInt("RATE_HEAVY", 40),
	}
}

// Layout builds the per-zone slot counts for the lot.
func (c *Config) Layout() parking.Layout {
	return parking.Layout{
		parking.ZoneTwoWheeler:  c.SlotsPerZone,
		parking.ZoneFourWheeler: c.SlotsPerZone,
		parking.ZoneElectric:    c.SlotsPerZone,
		parking.ZoneHeavy:       c.SlotsPerZone,
	}
}

// Rates builds the per-zone hourly rate table.
func (c *Config) Rates() parking.Rates {
	return parking.Rates{
		parking.ZoneTwoWheeler:  c.RateTwoWheeler,
		parking.ZoneFourWheeler: c.RateFourWheeler,
		parking.ZoneElectric:    c.RateElectric,
		parking.ZoneHeavy:       c.RateHeavy,
	}
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func envOrInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}
