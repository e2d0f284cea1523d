package parking

import (
	"errors"
	"testing"
	"time"
)

var testEntryTime = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

func TestRegistryFindFreeSlotOrder(t *testing.T) {
	r := NewRegistry(Layout{
		ZoneTwoWheeler:  12,
		ZoneFourWheeler: 2,
		ZoneElectric:    2,
		ZoneHeavy:       2,
	})

	// Fill T1..T9; the next free slot must be T10, sorted numerically
	// rather than lexically.
	for i := 1; i <= 9; i++ {
		slotID, err := r.FindFreeSlot(ZoneTwoWheeler)
		if err != nil {
			t.Fatalf("Unexpected error: %s", err.Error())
		}
		if err := r.Occupy(slotID, "BIKE"+string(rune('A'+i)), testEntryTime); err != nil {
			t.Fatalf("Unexpected error: %s", err.Error())
		}
	}

	slotID, err := r.FindFreeSlot(ZoneTwoWheeler)
	if err != nil {
		t.Fatalf("Unexpected error: %s", err.Error())
	}
	if slotID != "T10" {
		t.Errorf("Expected T10, got %s", slotID)
	}
}

func TestRegistryFindFreeSlotStaysInZone(t *testing.T) {
	r := NewRegistry(Layout{
		ZoneTwoWheeler:  1,
		ZoneFourWheeler: 1,
		ZoneElectric:    1,
		ZoneHeavy:       1,
	})

	if err := r.Occupy("F1", "CAR1", testEntryTime); err != nil {
		t.Fatalf("Unexpected error: %s", err.Error())
	}

	// Zone F is full; other zones being free must not produce a match.
	_, err := r.FindFreeSlot(ZoneFourWheeler)
	if !errors.Is(err, ErrSlotUnavailable) {
		t.Errorf("Expected ErrSlotUnavailable, got %v", err)
	}

	slotID, err := r.FindFreeSlot(ZoneHeavy)
	if err != nil {
		t.Fatalf("Unexpected error: %s", err.Error())
	}
	if slotID != "H1" {
		t.Errorf("Expected H1, got %s", slotID)
	}
}

func TestRegistryOccupy(t *testing.T) {
	r := NewRegistry(DefaultLayout())

	if err := r.Occupy("T1", "KA01HH1234", testEntryTime); err != nil {
		t.Fatalf("Unexpected error: %s", err.Error())
	}

	slotID, err := r.FindByVehicle("KA01HH1234")
	if err != nil {
		t.Fatalf("Unexpected error: %s", err.Error())
	}
	if slotID != "T1" {
		t.Errorf("Expected T1, got %s", slotID)
	}
}

func TestRegistryOccupyOccupiedSlot(t *testing.T) {
	r := NewRegistry(DefaultLayout())

	if err := r.Occupy("T1", "KA01HH1234", testEntryTime); err != nil {
		t.Fatalf("Unexpected error: %s", err.Error())
	}

	err := r.Occupy("T1", "KA01HH9999", testEntryTime)
	if !errors.Is(err, ErrInvalidState) {
		t.Errorf("Expected ErrInvalidState, got %v", err)
	}

	// State is unchanged: the original occupant remains.
	slot, _ := r.Slot("T1")
	if slot.Occupant.VehicleNumber != "KA01HH1234" {
		t.Errorf("Expected original occupant, got %s", slot.Occupant.VehicleNumber)
	}
}

func TestRegistryOccupyUnknownSlot(t *testing.T) {
	r := NewRegistry(DefaultLayout())

	err := r.Occupy("X1", "KA01HH1234", testEntryTime)
	if !errors.Is(err, ErrInvalidState) {
		t.Errorf("Expected ErrInvalidState, got %v", err)
	}
}

func TestRegistryOccupyDuplicateVehicle(t *testing.T) {
	r := NewRegistry(DefaultLayout())

	if err := r.Occupy("T1", "KA01HH1234", testEntryTime); err != nil {
		t.Fatalf("Unexpected error: %s", err.Error())
	}

	err := r.Occupy("T2", "KA01HH1234", testEntryTime)
	if !errors.Is(err, ErrInvalidState) {
		t.Errorf("Expected ErrInvalidState for duplicate vehicle, got %v", err)
	}
}

func TestRegistryFindByVehicleExactMatch(t *testing.T) {
	r := NewRegistry(DefaultLayout())

	if err := r.Occupy("E1", "ev123", testEntryTime); err != nil {
		t.Fatalf("Unexpected error: %s", err.Error())
	}

	_, err := r.FindByVehicle("EV123")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound for case mismatch, got %v", err)
	}

	_, err = r.FindByVehicle("NOTPARKED")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestRegistryVacate(t *testing.T) {
	r := NewRegistry(DefaultLayout())

	if err := r.Occupy("H1", "TRUCK1", testEntryTime); err != nil {
		t.Fatalf("Unexpected error: %s", err.Error())
	}

	if err := r.Vacate("H1"); err != nil {
		t.Fatalf("Unexpected error: %s", err.Error())
	}

	// The vacated slot is eligible again for its zone.
	slotID, err := r.FindFreeSlot(ZoneHeavy)
	if err != nil {
		t.Fatalf("Unexpected error: %s", err.Error())
	}
	if slotID != "H1" {
		t.Errorf("Expected H1 to be reusable, got %s", slotID)
	}
}

func TestRegistryVacateFreeSlot(t *testing.T) {
	r := NewRegistry(DefaultLayout())

	err := r.Vacate("H1")
	if !errors.Is(err, ErrInvalidState) {
		t.Errorf("Expected ErrInvalidState, got %v", err)
	}

	err = r.Vacate("X1")
	if !errors.Is(err, ErrInvalidState) {
		t.Errorf("Expected ErrInvalidState for unknown slot, got %v", err)
	}
}

func TestRegistryCapacity(t *testing.T) {
	r := NewRegistry(DefaultLayout())
	if r.Capacity() != 40 {
		t.Errorf("Expected capacity 40, got %d", r.Capacity())
	}
	if len(r.Slots()) != 40 {
		t.Errorf("Expected 40 slots, got %d", len(r.Slots()))
	}
}
