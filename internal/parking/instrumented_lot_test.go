package parking

import (
	"context"
	"testing"
)

func TestInstrumentedLotIntegration(t *testing.T) {
	telemetry, err := NewTelemetryProvider("parkometer-test", "http://localhost:4318")
	if err != nil {
		t.Fatalf("Failed to initialize telemetry: %v", err)
	}
	defer func() {
		if err := telemetry.Shutdown(context.Background()); err != nil {
			t.Errorf("Failed to shutdown telemetry: %v", err)
		}
	}()

	lot, err := NewLot(DefaultLayout(), DefaultRates())
	if err != nil {
		t.Fatalf("Failed to create lot: %v", err)
	}

	il, err := NewInstrumentedLot(lot, telemetry)
	if err != nil {
		t.Fatalf("Failed to create instrumented lot: %v", err)
	}

	ctx := context.Background()

	slotID, err := il.CheckSlot(ctx, "2 Wheeler")
	if err != nil {
		t.Errorf("Unexpected error: %s", err.Error())
	}
	if slotID != "T1" {
		t.Errorf("Expected T1, got %s", slotID)
	}

	slotID, err = il.Park(ctx, "2 Wheeler", "KA01HH1234")
	if err != nil {
		t.Errorf("Unexpected error: %s", err.Error())
	}
	if slotID != "T1" {
		t.Errorf("Expected T1, got %s", slotID)
	}

	infos := il.Status(ctx)
	occupied := 0
	for _, info := range infos {
		if info.Occupied {
			occupied++
		}
	}
	if occupied != 1 {
		t.Errorf("Expected 1 occupied slot, got %d", occupied)
	}

	txn, err := il.Exit(ctx, "KA01HH1234")
	if err != nil {
		t.Errorf("Unexpected error: %s", err.Error())
	}
	if txn.Charge != 10 {
		t.Errorf("Expected charge 10, got %d", txn.Charge)
	}

	if il.VehicleCount() != 1 {
		t.Errorf("Expected vehicle count 1, got %d", il.VehicleCount())
	}
	if il.TotalRevenue() != 10 {
		t.Errorf("Expected total revenue 10, got %d", il.TotalRevenue())
	}
}
