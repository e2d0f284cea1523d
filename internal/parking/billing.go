package parking

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// clockLayout is the 12-hour display format for entry/exit times.
const clockLayout = "03:04 PM"

// Transaction is the immutable record of a completed parking session.
// It is a snapshot and keeps no reference to the slot it came from.
type Transaction struct {
	SlotID        string
	VehicleNumber string
	EntryTime     time.Time
	ExitTime      time.Time
	BilledHours   int
	Charge        int
}

func (t Transaction) EntryClock() string {
	return t.EntryTime.Format(clockLayout)
}

func (t Transaction) ExitClock() string {
	return t.ExitTime.Format(clockLayout)
}

// DurationDisplay renders the unrounded elapsed time as "H hr M min".
// This is display-only and deliberately distinct from BilledHours, which
// is always rounded up.
func (t Transaction) DurationDisplay() string {
	elapsed := t.ExitTime.Sub(t.EntryTime)
	hours := int(elapsed.Hours())
	minutes := int(elapsed.Minutes()) - hours*60
	return fmt.Sprintf("%d hr %d min", hours, minutes)
}

// billedHours rounds elapsed time up to whole hours, with a minimum of one
// billed hour for any session.
func billedHours(elapsed time.Duration) int {
	hours := int(math.Ceil(elapsed.Seconds() / 3600))
	if hours < 1 {
		hours = 1
	}
	return hours
}

func newTransaction(slot *Slot, rate int, exitTime time.Time) Transaction {
	occupant := slot.Occupant
	hours := billedHours(exitTime.Sub(occupant.EntryTime))
	return Transaction{
		SlotID:        slot.ID,
		VehicleNumber: occupant.VehicleNumber,
		EntryTime:     occupant.EntryTime,
		ExitTime:      exitTime,
		BilledHours:   hours,
		Charge:        hours * rate,
	}
}

// RenderReport writes the completed-transactions table with totals, the
// shape consumed by the printable export.
func RenderReport(transactions []Transaction) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-6s%-15s%-18s%-18s%-8s%-8s\n",
		"Slot", "Vehicle No", "Entry Time", "Exit Time", "Hours", "Charge")
	b.WriteString(strings.Repeat("-", 75) + "\n")

	totalRevenue := 0
	for _, t := range transactions {
		fmt.Fprintf(&b, "%-6s%-15s%-18s%-18s%-8s%-8d\n",
			t.SlotID, t.VehicleNumber, t.EntryClock(), t.ExitClock(),
			fmt.Sprintf("%dhr", t.BilledHours), t.Charge)
		totalRevenue += t.Charge
	}

	b.WriteString(strings.Repeat("-", 75) + "\n")
	fmt.Fprintf(&b, "TOTAL VEHICLES : %d\n", len(transactions))
	fmt.Fprintf(&b, "TOTAL REVENUE  : %d\n", totalRevenue)
	return b.String()
}
