package parking

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Shell is the operator console over a single lot.
type Shell struct {
	lot       *InstrumentedLot
	scanner   *bufio.Scanner
	telemetry *TelemetryProvider
}

func NewShell(lot *InstrumentedLot, telemetry *TelemetryProvider) *Shell {
	return &Shell{
		lot:       lot,
		scanner:   bufio.NewScanner(os.Stdin),
		telemetry: telemetry,
	}
}

func (s *Shell) Run(ctx context.Context) {
	tracer := s.telemetry.Tracer()
	ctx, span := tracer.Start(ctx, "shell.run")
	defer span.End()

	span.AddEvent("shell_started")

	for {
		if !s.scanner.Scan() {
			break
		}

		input := strings.TrimSpace(s.scanner.Text())
		if input == "" {
			continue
		}

		cmdCtx, cmdSpan := tracer.Start(ctx, "shell.process_command",
			trace.WithAttributes(attribute.String("command.input", input)))

		s.processCommand(cmdCtx, input)
		cmdSpan.End()
	}

	span.AddEvent("shell_ended")
}

func (s *Shell) processCommand(ctx context.Context, input string) {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return
	}

	command := parts[0]

	switch command {
	case "check_slot":
		s.handleCheckSlot(ctx, parts)
	case "park":
		s.handlePark(ctx, parts)
	case "exit":
		s.handleExit(ctx, parts)
	case "status":
		s.handleStatus(ctx)
	case "transactions":
		s.handleTransactions()
	case "revenue":
		s.handleRevenue()
	default:
		fmt.Printf("Unknown command: %s\n", command)
	}
}

func (s *Shell) handleCheckSlot(ctx context.Context, parts []string) {
	if len(parts) < 2 {
		fmt.Println("Usage: check_slot <vehicle_class>")
		fmt.Printf("Classes: %s\n", strings.Join(VehicleClasses(), ", "))
		return
	}

	// Class names may contain spaces, e.g. "2 Wheeler".
	class := strings.Join(parts[1:], " ")

	slotID, err := s.lot.CheckSlot(ctx, class)
	if err != nil {
		fmt.Printf("Error: %s\n", err.Error())
		return
	}

	fmt.Printf("Slot Number: %s\n", slotID)
}

func (s *Shell) handlePark(ctx context.Context, parts []string) {
	if len(parts) < 3 {
		fmt.Println("Usage: park <vehicle_class> <vehicle_number>")
		fmt.Printf("Classes: %s\n", strings.Join(VehicleClasses(), ", "))
		return
	}

	class := strings.Join(parts[1:len(parts)-1], " ")
	vehicleNumber := parts[len(parts)-1]

	slotID, err := s.lot.Park(ctx, class, vehicleNumber)
	if err != nil {
		fmt.Printf("Error: %s\n", err.Error())
		return
	}

	fmt.Printf("Allocated slot number: %s\n", slotID)
}

func (s *Shell) handleExit(ctx context.Context, parts []string) {
	if len(parts) != 2 {
		fmt.Println("Usage: exit <vehicle_number>")
		return
	}

	txn, err := s.lot.Exit(ctx, parts[1])
	if err != nil {
		fmt.Printf("Error: %s\n", err.Error())
		return
	}

	fmt.Printf("Slot %s is free\n", txn.SlotID)
	fmt.Printf("Entry Time : %s\n", txn.EntryClock())
	fmt.Printf("Exit Time  : %s\n", txn.ExitClock())
	fmt.Printf("Duration   : %s\n", txn.DurationDisplay())
	fmt.Printf("Charge     : %d\n", txn.Charge)
}

func (s *Shell) handleStatus(ctx context.Context) {
	infos := s.lot.Status(ctx)

	occupied := 0
	fmt.Println("Slot\tVehicle No\tEntry Time")
	for _, info := range infos {
		if !info.Occupied {
			continue
		}
		occupied++
		fmt.Printf("%s\t%s\t%s\n", info.ID, info.VehicleNumber, info.EntryTime.Format(clockLayout))
	}
	if occupied == 0 {
		fmt.Println("Parking lot is empty")
	}
}

func (s *Shell) handleTransactions() {
	fmt.Print(s.lot.Report())
}

func (s *Shell) handleRevenue() {
	fmt.Printf("TOTAL VEHICLES : %d\n", s.lot.VehicleCount())
	fmt.Printf("TOTAL REVENUE  : %d\n", s.lot.TotalRevenue())
}
