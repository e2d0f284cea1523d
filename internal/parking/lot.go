package parking

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// Lot is the owned aggregate of slot registry and transaction ledger. Every
// check-then-act pair (find-then-occupy, find-then-exit) runs inside one
// critical section so concurrent callers cannot double-book a slot or
// double-bill a vehicle.
type Lot struct {
	mu           sync.RWMutex
	registry     *Registry
	rates        Rates
	transactions []Transaction
	now          func() time.Time
}

// NewLot validates the layout against the rate table and class mapping at
// startup and builds the fixed slot set.
func NewLot(layout Layout, rates Rates) (*Lot, error) {
	if err := layout.validate(rates); err != nil {
		return nil, err
	}
	return &Lot{
		registry: NewRegistry(layout),
		rates:    rates,
		now:      time.Now,
	}, nil
}

// CheckSlot returns the free slot that would be assigned for the vehicle
// class, without reserving it.
func (l *Lot) CheckSlot(class string) (string, error) {
	zone, err := ZoneForClass(class)
	if err != nil {
		return "", err
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.registry.FindFreeSlot(zone)
}

// Park assigns the lowest free slot in the class's zone to the vehicle and
// records its entry time. Find and occupy happen under one lock.
func (l *Lot) Park(class, vehicleNumber string) (string, error) {
	vehicleNumber, err := cleanVehicleNumber(vehicleNumber)
	if err != nil {
		return "", err
	}
	zone, err := ZoneForClass(class)
	if err != nil {
		return "", err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	slotID, err := l.registry.FindFreeSlot(zone)
	if err != nil {
		return "", err
	}
	if err := l.registry.Occupy(slotID, vehicleNumber, l.now()); err != nil {
		return "", err
	}
	return slotID, nil
}

// Occupy reserves a specific slot for a vehicle, for callers that looked up
// the slot first via CheckSlot.
func (l *Lot) Occupy(slotID, vehicleNumber string) error {
	vehicleNumber, err := cleanVehicleNumber(vehicleNumber)
	if err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.registry.Occupy(slotID, vehicleNumber, l.now())
}

// Exit bills the vehicle's session, appends the finalized transaction and
// frees the slot.
func (l *Lot) Exit(vehicleNumber string) (Transaction, error) {
	vehicleNumber, err := cleanVehicleNumber(vehicleNumber)
	if err != nil {
		return Transaction{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	slotID, err := l.registry.FindByVehicle(vehicleNumber)
	if err != nil {
		return Transaction{}, err
	}
	slot, _ := l.registry.Slot(slotID)

	rate, ok := l.rates[slot.Zone]
	if !ok {
		return Transaction{}, fmt.Errorf("%w: zone %s", ErrUnknownRate, slot.Zone)
	}

	txn := newTransaction(slot, rate, l.now())
	if err := l.registry.Vacate(slotID); err != nil {
		return Transaction{}, err
	}
	l.transactions = append(l.transactions, txn)
	return txn, nil
}

// SlotInfo is a read-only occupancy snapshot of one slot.
type SlotInfo struct {
	ID            string
	Zone          Zone
	Occupied      bool
	VehicleNumber string
	EntryTime     time.Time
}

// Status returns the occupancy of every slot in zone order.
func (l *Lot) Status() []SlotInfo {
	l.mu.RLock()
	defer l.mu.RUnlock()

	slots := l.registry.Slots()
	infos := make([]SlotInfo, 0, len(slots))
	for _, slot := range slots {
		info := SlotInfo{ID: slot.ID, Zone: slot.Zone}
		if slot.IsOccupied() {
			info.Occupied = true
			info.VehicleNumber = slot.Occupant.VehicleNumber
			info.EntryTime = slot.Occupant.EntryTime
		}
		infos = append(infos, info)
	}
	return infos
}

// Capacity returns the total number of configured slots.
func (l *Lot) Capacity() int {
	return l.registry.Capacity()
}

// Transactions returns the ledger in exit order.
func (l *Lot) Transactions() []Transaction {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]Transaction, len(l.transactions))
	copy(out, l.transactions)
	return out
}

// TotalRevenue is derived from the ledger on every call so it cannot drift.
func (l *Lot) TotalRevenue() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	total := 0
	for _, t := range l.transactions {
		total += t.Charge
	}
	return total
}

// VehicleCount returns the number of completed sessions.
func (l *Lot) VehicleCount() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.transactions)
}

// Report renders the plaintext revenue report of the current ledger.
func (l *Lot) Report() string {
	return RenderReport(l.Transactions())
}

func cleanVehicleNumber(vehicleNumber string) (string, error) {
	vehicleNumber = strings.TrimSpace(vehicleNumber)
	if vehicleNumber == "" {
		return "", fmt.Errorf("%w: vehicle number is required", ErrInvalidInput)
	}
	return vehicleNumber, nil
}
