package parking

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// InstrumentedLot decorates a Lot with traces and metrics.
type InstrumentedLot struct {
	*Lot
	telemetry *TelemetryProvider

	entryOperations   metric.Int64Counter
	exitOperations    metric.Int64Counter
	occupancyGauge    metric.Int64UpDownCounter
	revenueCounter    metric.Int64Counter
	operationDuration metric.Float64Histogram
	totalSlotsGauge   metric.Int64UpDownCounter
}

func NewInstrumentedLot(lot *Lot, telemetry *TelemetryProvider) (*InstrumentedLot, error) {
	meter := telemetry.Meter()

	entryOperations, err := meter.Int64Counter("parking_entry_operations_total",
		metric.WithDescription("Total number of vehicle entry operations"),
		metric.WithUnit("1"))
	if err != nil {
		return nil, err
	}

	exitOperations, err := meter.Int64Counter("parking_exit_operations_total",
		metric.WithDescription("Total number of vehicle exit operations"),
		metric.WithUnit("1"))
	if err != nil {
		return nil, err
	}

	occupancyGauge, err := meter.Int64UpDownCounter("parking_lot_occupancy",
		metric.WithDescription("Current number of occupied parking slots"),
		metric.WithUnit("1"))
	if err != nil {
		return nil, err
	}

	revenueCounter, err := meter.Int64Counter("parking_revenue_total",
		metric.WithDescription("Cumulative billed revenue in currency units"),
		metric.WithUnit("1"))
	if err != nil {
		return nil, err
	}

	operationDuration, err := meter.Float64Histogram("operation_duration_seconds",
		metric.WithDescription("Duration of parking lot operations"),
		metric.WithUnit("s"))
	if err != nil {
		return nil, err
	}

	totalSlotsGauge, err := meter.Int64UpDownCounter("parking_lot_total_slots",
		metric.WithDescription("Total number of parking slots"),
		metric.WithUnit("1"))
	if err != nil {
		return nil, err
	}

	il := &InstrumentedLot{
		Lot:               lot,
		telemetry:         telemetry,
		entryOperations:   entryOperations,
		exitOperations:    exitOperations,
		occupancyGauge:    occupancyGauge,
		revenueCounter:    revenueCounter,
		operationDuration: operationDuration,
		totalSlotsGauge:   totalSlotsGauge,
	}

	totalSlotsGauge.Add(context.Background(), int64(lot.Capacity()))

	return il, nil
}

func (il *InstrumentedLot) CheckSlot(ctx context.Context, class string) (string, error) {
	tracer := il.telemetry.Tracer()
	ctx, span := tracer.Start(ctx, "parking_lot.check_slot",
		trace.WithAttributes(attribute.String("vehicle.class", class)))
	defer span.End()

	start := time.Now()

	slotID, err := il.Lot.CheckSlot(class)

	labels := []attribute.KeyValue{
		attribute.String("operation", "check_slot"),
		attribute.String("vehicle_class", class),
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		labels = append(labels, attribute.String("status", "failed"))
	} else {
		span.SetAttributes(attribute.String("slot_id", slotID))
		labels = append(labels, attribute.String("status", "success"))
	}

	il.operationDuration.Record(ctx, time.Since(start).Seconds(), metric.WithAttributes(labels...))

	return slotID, err
}

func (il *InstrumentedLot) Park(ctx context.Context, class, vehicleNumber string) (string, error) {
	tracer := il.telemetry.Tracer()
	ctx, span := tracer.Start(ctx, "parking_lot.park",
		trace.WithAttributes(
			attribute.String("vehicle.class", class),
			attribute.String("vehicle.number", vehicleNumber),
		))
	defer span.End()

	start := time.Now()

	span.AddEvent("finding_available_slot")

	slotID, err := il.Lot.Park(class, vehicleNumber)

	labels := []attribute.KeyValue{
		attribute.String("operation", "park"),
		attribute.String("vehicle_class", class),
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		labels = append(labels, attribute.String("status", "failed"))
	} else {
		labels = append(labels,
			attribute.String("status", "success"),
			attribute.String("allocated_slot", slotID),
		)
		span.SetAttributes(attribute.String("allocated_slot_id", slotID))
		span.AddEvent("slot_allocated", trace.WithAttributes(
			attribute.String("slot_id", slotID),
		))
		il.occupancyGauge.Add(ctx, 1)
	}

	il.entryOperations.Add(ctx, 1, metric.WithAttributes(labels...))
	il.operationDuration.Record(ctx, time.Since(start).Seconds(), metric.WithAttributes(labels...))

	return slotID, err
}

func (il *InstrumentedLot) Exit(ctx context.Context, vehicleNumber string) (Transaction, error) {
	tracer := il.telemetry.Tracer()
	ctx, span := tracer.Start(ctx, "parking_lot.exit",
		trace.WithAttributes(attribute.String("vehicle.number", vehicleNumber)))
	defer span.End()

	start := time.Now()

	span.AddEvent("computing_charge")

	txn, err := il.Lot.Exit(vehicleNumber)

	labels := []attribute.KeyValue{
		attribute.String("operation", "exit"),
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		labels = append(labels, attribute.String("status", "failed"))
	} else {
		labels = append(labels,
			attribute.String("status", "success"),
			attribute.String("slot_id", txn.SlotID),
		)
		span.SetAttributes(
			attribute.String("slot_id", txn.SlotID),
			attribute.Int("billed_hours", txn.BilledHours),
			attribute.Int("charge", txn.Charge),
		)
		span.AddEvent("slot_released", trace.WithAttributes(
			attribute.String("slot_id", txn.SlotID),
		))
		il.occupancyGauge.Add(ctx, -1)
		il.revenueCounter.Add(ctx, int64(txn.Charge), metric.WithAttributes(
			attribute.String("zone", string(txn.SlotID[0])),
		))
	}

	il.exitOperations.Add(ctx, 1, metric.WithAttributes(labels...))
	il.operationDuration.Record(ctx, time.Since(start).Seconds(), metric.WithAttributes(labels...))

	return txn, err
}

func (il *InstrumentedLot) Status(ctx context.Context) []SlotInfo {
	tracer := il.telemetry.Tracer()
	ctx, span := tracer.Start(ctx, "parking_lot.status")
	defer span.End()

	start := time.Now()

	infos := il.Lot.Status()

	occupied := 0
	for _, info := range infos {
		if info.Occupied {
			occupied++
		}
	}
	span.SetAttributes(
		attribute.Int("occupied_slots_count", occupied),
		attribute.Int("total_capacity", il.Lot.Capacity()),
	)

	labels := []attribute.KeyValue{
		attribute.String("operation", "status"),
		attribute.String("status", "success"),
	}
	il.operationDuration.Record(ctx, time.Since(start).Seconds(), metric.WithAttributes(labels...))

	return infos
}
