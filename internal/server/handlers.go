package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"

	"parkometer/internal/parking"
)

func getServiceName() string {
	if name := os.Getenv("OTEL_SERVICE_NAME"); name != "" {
		return name
	}
	return "parkometer"
}

type Handler struct {
	lot *parking.InstrumentedLot
}

func NewHandler(lot *parking.InstrumentedLot) *Handler {
	return &Handler{lot: lot}
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]any{
		"status":  "healthy",
		"service": getServiceName(),
		"meta":    extractMeta(r.Context()),
	})
}

func (h *Handler) CheckSlot(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req CheckSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(ctx, w, http.StatusBadRequest, "Invalid request body")
		return
	}

	slotID, err := h.lot.CheckSlot(ctx, req.VehicleClass)
	if err != nil {
		writeDomainError(ctx, w, err)
		return
	}

	WriteSuccess(ctx, w, "Slot available", map[string]any{
		"slot_id":       slotID,
		"vehicle_class": req.VehicleClass,
	})
}

func (h *Handler) ParkVehicle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req ParkVehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(ctx, w, http.StatusBadRequest, "Invalid request body")
		return
	}

	slotID, err := h.lot.Park(ctx, req.VehicleClass, req.VehicleNumber)
	if err != nil {
		writeDomainError(ctx, w, err)
		return
	}

	WriteSuccess(ctx, w, "Vehicle parked successfully", map[string]any{
		"slot_id":        slotID,
		"vehicle_class":  req.VehicleClass,
		"vehicle_number": req.VehicleNumber,
	})
}

func (h *Handler) ExitVehicle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req ExitVehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(ctx, w, http.StatusBadRequest, "Invalid request body")
		return
	}

	txn, err := h.lot.Exit(ctx, req.VehicleNumber)
	if err != nil {
		writeDomainError(ctx, w, err)
		return
	}

	WriteSuccess(ctx, w, "Vehicle exited successfully", toTransactionResponse(txn))
}

func (h *Handler) GetStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	infos := h.lot.Status(ctx)

	occupied := 0
	byZone := make(map[string]int)
	slots := make([]SlotStatus, 0, len(infos))
	for _, info := range infos {
		slot := SlotStatus{
			SlotID:   info.ID,
			Zone:     string(info.Zone),
			Occupied: info.Occupied,
		}
		if info.Occupied {
			occupied++
			slot.VehicleNumber = info.VehicleNumber
			slot.EntryTime = info.EntryTime.Format("03:04 PM")
		} else {
			byZone[string(info.Zone)]++
		}
		slots = append(slots, slot)
	}

	response := StatusResponse{
		Capacity:  len(infos),
		Occupied:  occupied,
		Available: len(infos) - occupied,
		ByZone:    byZone,
		Slots:     slots,
	}

	WriteSuccess(ctx, w, "Status retrieved successfully", response)
}

func (h *Handler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	txns := h.lot.Transactions()
	out := make([]TransactionResponse, 0, len(txns))
	for _, txn := range txns {
		out = append(out, toTransactionResponse(txn))
	}

	response := TransactionsResponse{
		Transactions: out,
		VehicleCount: h.lot.VehicleCount(),
		TotalRevenue: h.lot.TotalRevenue(),
	}

	WriteSuccess(ctx, w, "Transactions retrieved successfully", response)
}

func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(h.lot.Report()))
}

func toTransactionResponse(txn parking.Transaction) TransactionResponse {
	return TransactionResponse{
		SlotID:        txn.SlotID,
		VehicleNumber: txn.VehicleNumber,
		EntryTime:     txn.EntryClock(),
		ExitTime:      txn.ExitClock(),
		Duration:      txn.DurationDisplay(),
		BilledHours:   txn.BilledHours,
		Charge:        txn.Charge,
	}
}

// writeDomainError maps the core error taxonomy onto HTTP status codes.
func writeDomainError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, parking.ErrInvalidClass), errors.Is(err, parking.ErrInvalidInput):
		WriteError(ctx, w, http.StatusBadRequest, err.Error())
	case errors.Is(err, parking.ErrNotFound):
		WriteError(ctx, w, http.StatusNotFound, err.Error())
	case errors.Is(err, parking.ErrSlotUnavailable), errors.Is(err, parking.ErrInvalidState):
		WriteError(ctx, w, http.StatusConflict, err.Error())
	default:
		WriteError(ctx, w, http.StatusInternalServerError, err.Error())
	}
}
