package parking

import (
	"fmt"
	"time"
)

// Registry owns the fixed slot set and its occupancy state. It performs no
// locking itself; the owning Lot serializes access.
type Registry struct {
	zones map[Zone][]*Slot
	byID  map[string]*Slot
	order []Zone
}

// NewRegistry builds the slot set from the layout. Slots within a zone are
// held in ascending index order, so T10 comes after T9 rather than between
// T1 and T2.
func NewRegistry(layout Layout) *Registry {
	r := &Registry{
		zones: make(map[Zone][]*Slot, len(layout)),
		byID:  make(map[string]*Slot),
	}
	for _, zone := range zoneOrder {
		count, ok := layout[zone]
		if !ok {
			continue
		}
		slots := make([]*Slot, 0, count)
		for i := 1; i <= count; i++ {
			slot := NewSlot(zone, i)
			slots = append(slots, slot)
			r.byID[slot.ID] = slot
		}
		r.zones[zone] = slots
		r.order = append(r.order, zone)
	}
	return r
}

// FindFreeSlot returns the lowest-index free slot in the zone. It is a pure
// lookup; reservation happens through Occupy so the caller can first
// collect the vehicle number.
func (r *Registry) FindFreeSlot(zone Zone) (string, error) {
	for _, slot := range r.zones[zone] {
		if !slot.IsOccupied() {
			return slot.ID, nil
		}
	}
	return "", fmt.Errorf("%w: no free slot in zone %s", ErrSlotUnavailable, zone)
}

// Occupy attaches an occupant to a free slot. Occupying an unknown or
// already-occupied slot fails, as does a vehicle number that is already
// parked elsewhere.
func (r *Registry) Occupy(slotID, vehicleNumber string, entryTime time.Time) error {
	slot, ok := r.byID[slotID]
	if !ok {
		return fmt.Errorf("%w: unknown slot %s", ErrInvalidState, slotID)
	}
	if slot.IsOccupied() {
		return fmt.Errorf("%w: slot %s is already occupied", ErrInvalidState, slotID)
	}
	if existing, err := r.FindByVehicle(vehicleNumber); err == nil {
		return fmt.Errorf("%w: vehicle %s is already parked in slot %s", ErrInvalidState, vehicleNumber, existing)
	}
	slot.Park(vehicleNumber, entryTime)
	return nil
}

// FindByVehicle returns the slot occupied by the vehicle number, matched
// exactly and case-sensitively.
func (r *Registry) FindByVehicle(vehicleNumber string) (string, error) {
	for _, zone := range r.order {
		for _, slot := range r.zones[zone] {
			if slot.IsOccupied() && slot.Occupant.VehicleNumber == vehicleNumber {
				return slot.ID, nil
			}
		}
	}
	return "", fmt.Errorf("%w: %s", ErrNotFound, vehicleNumber)
}

// Vacate detaches the occupant from an occupied slot.
func (r *Registry) Vacate(slotID string) error {
	slot, ok := r.byID[slotID]
	if !ok {
		return fmt.Errorf("%w: unknown slot %s", ErrInvalidState, slotID)
	}
	if !slot.IsOccupied() {
		return fmt.Errorf("%w: slot %s is already free", ErrInvalidState, slotID)
	}
	slot.Leave()
	return nil
}

// Slot returns the slot with the given ID.
func (r *Registry) Slot(slotID string) (*Slot, bool) {
	slot, ok := r.byID[slotID]
	return slot, ok
}

// Slots returns every slot in zone order, ascending index within a zone.
func (r *Registry) Slots() []*Slot {
	slots := make([]*Slot, 0, len(r.byID))
	for _, zone := range r.order {
		slots = append(slots, r.zones[zone]...)
	}
	return slots
}

// Capacity returns the total number of configured slots.
func (r *Registry) Capacity() int {
	return len(r.byID)
}
