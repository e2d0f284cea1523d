package parking

import (
	"errors"
	"testing"
	"time"
)

// testLot builds a lot with a controllable clock.
func testLot(t *testing.T) (*Lot, *time.Time) {
	t.Helper()
	lot, err := NewLot(DefaultLayout(), DefaultRates())
	if err != nil {
		t.Fatalf("Unexpected error: %s", err.Error())
	}
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	lot.now = func() time.Time { return now }
	return lot, &now
}

func TestLotParkAndExit(t *testing.T) {
	lot, now := testLot(t)

	slotID, err := lot.Park("2 Wheeler", "KA01HH1234")
	if err != nil {
		t.Fatalf("Unexpected error: %s", err.Error())
	}
	if slotID != "T1" {
		t.Errorf("Expected T1, got %s", slotID)
	}

	*now = now.Add(time.Second)

	txn, err := lot.Exit("KA01HH1234")
	if err != nil {
		t.Fatalf("Unexpected error: %s", err.Error())
	}
	if txn.BilledHours != 1 {
		t.Errorf("Expected 1 billed hour, got %d", txn.BilledHours)
	}
	if txn.Charge != 10 {
		t.Errorf("Expected charge 10, got %d", txn.Charge)
	}
	if txn.DurationDisplay() != "0 hr 0 min" {
		t.Errorf("Expected display \"0 hr 0 min\", got %q", txn.DurationDisplay())
	}

	// The slot is free again for its zone.
	slotID, err = lot.CheckSlot("2 Wheeler")
	if err != nil {
		t.Fatalf("Unexpected error: %s", err.Error())
	}
	if slotID != "T1" {
		t.Errorf("Expected T1 to be reusable, got %s", slotID)
	}
}

func TestLotFourWheelerScenario(t *testing.T) {
	lot, now := testLot(t)
	*now = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	if _, err := lot.Park("4 Wheeler", "KA01AB5678"); err != nil {
		t.Fatalf("Unexpected error: %s", err.Error())
	}

	*now = time.Date(2024, 3, 1, 11, 30, 0, 0, time.UTC)

	txn, err := lot.Exit("KA01AB5678")
	if err != nil {
		t.Fatalf("Unexpected error: %s", err.Error())
	}
	if txn.BilledHours != 3 {
		t.Errorf("Expected 3 billed hours, got %d", txn.BilledHours)
	}
	if txn.Charge != 60 {
		t.Errorf("Expected charge 60, got %d", txn.Charge)
	}
	if txn.DurationDisplay() != "2 hr 30 min" {
		t.Errorf("Expected display \"2 hr 30 min\", got %q", txn.DurationDisplay())
	}
}

func TestLotCheckSlotDoesNotReserve(t *testing.T) {
	lot, _ := testLot(t)

	first, err := lot.CheckSlot("EV")
	if err != nil {
		t.Fatalf("Unexpected error: %s", err.Error())
	}

	second, err := lot.CheckSlot("EV")
	if err != nil {
		t.Fatalf("Unexpected error: %s", err.Error())
	}

	if first != second {
		t.Errorf("Expected repeated check to return the same slot, got %s then %s", first, second)
	}
}

func TestLotInvalidClass(t *testing.T) {
	lot, _ := testLot(t)

	_, err := lot.Park("Bicycle", "B1")
	if !errors.Is(err, ErrInvalidClass) {
		t.Errorf("Expected ErrInvalidClass, got %v", err)
	}

	// No slot was reserved by the failed request.
	for _, info := range lot.Status() {
		if info.Occupied {
			t.Errorf("Expected no occupied slots, found %s", info.ID)
		}
	}
}

func TestLotInvalidVehicleNumber(t *testing.T) {
	lot, _ := testLot(t)

	_, err := lot.Park("EV", "   ")
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput, got %v", err)
	}

	_, err = lot.Exit("")
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput, got %v", err)
	}
}

func TestLotTrimsVehicleNumber(t *testing.T) {
	lot, _ := testLot(t)

	if _, err := lot.Park("EV", "  EV42  "); err != nil {
		t.Fatalf("Unexpected error: %s", err.Error())
	}

	txn, err := lot.Exit(" EV42 ")
	if err != nil {
		t.Fatalf("Unexpected error: %s", err.Error())
	}
	if txn.VehicleNumber != "EV42" {
		t.Errorf("Expected trimmed vehicle number, got %q", txn.VehicleNumber)
	}
}

func TestLotExitUnknownVehicle(t *testing.T) {
	lot, _ := testLot(t)

	_, err := lot.Exit("NEVERPARKED")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestLotZoneExhaustion(t *testing.T) {
	lot, err := NewLot(Layout{
		ZoneTwoWheeler:  1,
		ZoneFourWheeler: 1,
		ZoneElectric:    1,
		ZoneHeavy:       1,
	}, DefaultRates())
	if err != nil {
		t.Fatalf("Unexpected error: %s", err.Error())
	}

	if _, err := lot.Park("Heavy vehicle", "TRUCK1"); err != nil {
		t.Fatalf("Unexpected error: %s", err.Error())
	}

	_, err = lot.Park("Heavy vehicle", "TRUCK2")
	if !errors.Is(err, ErrSlotUnavailable) {
		t.Errorf("Expected ErrSlotUnavailable, got %v", err)
	}
}

func TestLotOccupyAfterCheck(t *testing.T) {
	lot, _ := testLot(t)

	slotID, err := lot.CheckSlot("Heavy vehicle")
	if err != nil {
		t.Fatalf("Unexpected error: %s", err.Error())
	}

	if err := lot.Occupy(slotID, "TRUCK1"); err != nil {
		t.Fatalf("Unexpected error: %s", err.Error())
	}

	err = lot.Occupy(slotID, "TRUCK2")
	if !errors.Is(err, ErrInvalidState) {
		t.Errorf("Expected ErrInvalidState, got %v", err)
	}
}

func TestLotLedger(t *testing.T) {
	lot, now := testLot(t)

	vehicles := map[string]string{
		"2 Wheeler":     "BIKE1",
		"4 Wheeler":     "CAR1",
		"EV":            "EV1",
		"Heavy vehicle": "TRUCK1",
	}

	for class, number := range vehicles {
		if _, err := lot.Park(class, number); err != nil {
			t.Fatalf("Unexpected error: %s", err.Error())
		}
	}

	*now = now.Add(90 * time.Minute)

	for _, number := range vehicles {
		if _, err := lot.Exit(number); err != nil {
			t.Fatalf("Unexpected error: %s", err.Error())
		}
	}

	txns := lot.Transactions()
	if len(txns) != 4 {
		t.Fatalf("Expected 4 transactions, got %d", len(txns))
	}

	// 2 billed hours each at rates 10+20+15+40.
	sum := 0
	for _, txn := range txns {
		if txn.BilledHours != 2 {
			t.Errorf("Expected 2 billed hours for %s, got %d", txn.VehicleNumber, txn.BilledHours)
		}
		sum += txn.Charge
	}

	if sum != 170 {
		t.Errorf("Expected summed charges 170, got %d", sum)
	}
	if lot.TotalRevenue() != sum {
		t.Errorf("Expected TotalRevenue %d, got %d", sum, lot.TotalRevenue())
	}
	if lot.VehicleCount() != 4 {
		t.Errorf("Expected vehicle count 4, got %d", lot.VehicleCount())
	}
}

func TestLotStatus(t *testing.T) {
	lot, _ := testLot(t)

	if _, err := lot.Park("4 Wheeler", "CAR1"); err != nil {
		t.Fatalf("Unexpected error: %s", err.Error())
	}

	infos := lot.Status()
	if len(infos) != lot.Capacity() {
		t.Errorf("Expected %d slot entries, got %d", lot.Capacity(), len(infos))
	}

	occupied := 0
	for _, info := range infos {
		if info.Occupied {
			occupied++
			if info.ID != "F1" || info.VehicleNumber != "CAR1" {
				t.Errorf("Unexpected occupied slot %s (%s)", info.ID, info.VehicleNumber)
			}
		}
	}
	if occupied != 1 {
		t.Errorf("Expected 1 occupied slot, got %d", occupied)
	}
}

func TestLotTransactionsCopy(t *testing.T) {
	lot, _ := testLot(t)

	if _, err := lot.Park("EV", "EV1"); err != nil {
		t.Fatalf("Unexpected error: %s", err.Error())
	}
	if _, err := lot.Exit("EV1"); err != nil {
		t.Fatalf("Unexpected error: %s", err.Error())
	}

	txns := lot.Transactions()
	txns[0].Charge = 9999

	if lot.TotalRevenue() == 9999 {
		t.Error("Expected ledger to be unaffected by mutation of the returned slice")
	}
}
