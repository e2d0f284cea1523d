package parking

import "fmt"

// Zone is the single-letter code of a vehicle-class zone.
type Zone string

const (
	ZoneTwoWheeler  Zone = "T"
	ZoneFourWheeler Zone = "F"
	ZoneElectric    Zone = "E"
	ZoneHeavy       Zone = "H"
)

// zoneOrder fixes the scan order for whole-lot operations.
var zoneOrder = []Zone{ZoneTwoWheeler, ZoneFourWheeler, ZoneElectric, ZoneHeavy}

// classZones maps operator-facing vehicle class names to zones.
var classZones = map[string]Zone{
	"2 Wheeler":     ZoneTwoWheeler,
	"4 Wheeler":     ZoneFourWheeler,
	"EV":            ZoneElectric,
	"Heavy vehicle": ZoneHeavy,
}

// VehicleClasses returns the recognized vehicle class names in zone order.
func VehicleClasses() []string {
	classes := make([]string, 0, len(classZones))
	for _, zone := range zoneOrder {
		for class, z := range classZones {
			if z == zone {
				classes = append(classes, class)
			}
		}
	}
	return classes
}

// ZoneForClass resolves a vehicle class name to its zone. An unrecognized
// class fails and never falls back to a default zone.
func ZoneForClass(class string) (Zone, error) {
	zone, ok := classZones[class]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidClass, class)
	}
	return zone, nil
}

// Rates is the charge per billed hour for each zone, in the facility's
// currency unit.
type Rates map[Zone]int

// DefaultRates returns the reference rate table.
func DefaultRates() Rates {
	return Rates{
		ZoneTwoWheeler:  10,
		ZoneFourWheeler: 20,
		ZoneElectric:    15,
		ZoneHeavy:       40,
	}
}

// Layout is the number of slots configured per zone. The slot set it
// describes is fixed for the lifetime of a lot.
type Layout map[Zone]int

// DefaultLayout returns the reference configuration of 10 slots per zone.
func DefaultLayout() Layout {
	return Layout{
		ZoneTwoWheeler:  10,
		ZoneFourWheeler: 10,
		ZoneElectric:    10,
		ZoneHeavy:       10,
	}
}

func (l Layout) validate(rates Rates) error {
	if len(l) == 0 {
		return fmt.Errorf("layout has no zones")
	}
	for zone, count := range l {
		if count <= 0 {
			return fmt.Errorf("zone %s has invalid slot count %d", zone, count)
		}
		if _, ok := rates[zone]; !ok {
			return fmt.Errorf("%w: zone %s has no configured rate", ErrUnknownRate, zone)
		}
	}
	for class, zone := range classZones {
		if _, ok := l[zone]; !ok {
			return fmt.Errorf("class %q maps to unconfigured zone %s", class, zone)
		}
	}
	return nil
}
