package notification

import (
	"fmt"
)

// LiveCounts holds raw snapshot sizes for the categories that have no
// concept of "read": their badge is simply the live document count.
type LiveCounts struct {
	// WalkInAttention is the number of walk-in appointments with status
	// pending or confirmed (filtered server-side).
	WalkInAttention int
	// OnlineAttention is the same for the online booking request channel.
	OnlineAttention int
	// Unpaid is the number of payments whose status is not "paid".
	Unpaid int
}

// Counts are the per-category badge values. Derived, never stored:
// recomputed whenever a snapshot or the read set changes.
type Counts struct {
	// Appointments sums both intake channels. Read state plays no part.
	Appointments int `json:"appointments"`
	// Billing counts unpaid payments. Read state plays no part.
	Billing int `json:"billing"`
	// Notifications counts unread entries of the merged stream.
	Notifications int `json:"notifications"`
}

// ComputeCounts derives the badge values from the live counts, the merged
// list and the read set. Two counting policies coexist here and must not be
// confused: appointments/billing are raw live counts, notifications is
// unread = |merged| - |merged ∩ read|. The unread count is gated to 0 until
// the read set has been reconciled once, so a slow read-marker load never
// flashes "everything unread".
func ComputeCounts(live LiveCounts, merged []Notification, markers *ReadMarkers) Counts {
	counts := Counts{
		Appointments: live.WalkInAttention + live.OnlineAttention,
		Billing:      live.Unpaid,
	}

	if !markers.Reconciled() {
		return counts
	}

	for _, n := range merged {
		if !markers.Has(n.ID) {
			counts.Notifications++
		}
	}

	return counts
}

// DisplayCeiling is the largest badge value shown as-is; anything above is
// rendered "99+".
const DisplayCeiling = 99

// FormatBadge caps a badge for display ("9+", "99+") without altering the
// underlying integer used anywhere in logic.
func FormatBadge(n, ceiling int) string {
	if n > ceiling {
		return fmt.Sprintf("%d+", ceiling)
	}
	return fmt.Sprintf("%d", n)
}
