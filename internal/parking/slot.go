package parking

import (
	"fmt"
	"time"
)

// Occupant is the vehicle currently parked in a slot.
type Occupant struct {
	VehicleNumber string
	EntryTime     time.Time
}

// Slot is one parking space. Zone and Index never change after creation;
// Occupant is nil while the slot is free.
type Slot struct {
	ID       string
	Zone     Zone
	Index    int
	Occupant *Occupant
}

func NewSlot(zone Zone, index int) *Slot {
	return &Slot{
		ID:    fmt.Sprintf("%s%d", zone, index),
		Zone:  zone,
		Index: index,
	}
}

func (s *Slot) IsOccupied() bool {
	return s.Occupant != nil
}

func (s *Slot) Park(vehicleNumber string, entryTime time.Time) {
	s.Occupant = &Occupant{
		VehicleNumber: vehicleNumber,
		EntryTime:     entryTime,
	}
}

func (s *Slot) Leave() *Occupant {
	occupant := s.Occupant
	s.Occupant = nil
	return occupant
}
