package server

import (
	"context"
	"encoding/json"
	"net/http"

	"go.opentelemetry.io/otel/trace"
)

type Meta struct {
	TraceID   string `json:"trace_id,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Meta    *Meta  `json:"meta,omitempty"`
}

type CheckSlotRequest struct {
	VehicleClass string `json:"vehicle_class"`
}

type ParkVehicleRequest struct {
	VehicleClass  string `json:"vehicle_class"`
	VehicleNumber string `json:"vehicle_number"`
}

type ExitVehicleRequest struct {
	VehicleNumber string `json:"vehicle_number"`
}

type TransactionResponse struct {
	SlotID        string `json:"slot_id"`
	VehicleNumber string `json:"vehicle_number"`
	EntryTime     string `json:"entry_time"`
	ExitTime      string `json:"exit_time"`
	Duration      string `json:"duration"`
	BilledHours   int    `json:"billed_hours"`
	Charge        int    `json:"charge"`
}

type TransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	VehicleCount int                   `json:"vehicle_count"`
	TotalRevenue int                   `json:"total_revenue"`
}

type SlotStatus struct {
	SlotID        string `json:"slot_id"`
	Zone          string `json:"zone"`
	Occupied      bool   `json:"occupied"`
	VehicleNumber string `json:"vehicle_number,omitempty"`
	EntryTime     string `json:"entry_time,omitempty"`
}

type StatusResponse struct {
	Capacity  int            `json:"capacity"`
	Occupied  int            `json:"occupied"`
	Available int            `json:"available"`
	ByZone    map[string]int `json:"available_by_zone"`
	Slots     []SlotStatus   `json:"slots"`
}

func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func extractMeta(ctx context.Context) *Meta {
	meta := &Meta{}

	span := trace.SpanFromContext(ctx)
	if span.SpanContext().HasTraceID() {
		meta.TraceID = span.SpanContext().TraceID().String()
	}

	if reqID, ok := ctx.Value(RequestIDKey).(string); ok {
		meta.RequestID = reqID
	}

	return meta
}

func WriteSuccess(ctx context.Context, w http.ResponseWriter, message string, data any) {
	WriteJSON(w, http.StatusOK, Response{
		Success: true,
		Message: message,
		Data:    data,
		Meta:    extractMeta(ctx),
	})
}

func WriteError(ctx context.Context, w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, Response{
		Success: false,
		Error:   message,
		Meta:    extractMeta(ctx),
	})
}
