package notification

import (
	"fmt"
	"time"
)

// Kind is the closed set of notification kinds shown in the portals.
type Kind string

const (
	KindAppointmentPending   Kind = "appointment_pending"
	KindAppointmentConfirmed Kind = "appointment_confirmed"
	KindAppointmentCancelled Kind = "appointment_cancelled"
	KindPaymentReceived      Kind = "payment_received"
	KindReminder             Kind = "reminder"
)

// Source names double as id namespaces. A document id is only unique within
// its own collection, so every merged entry carries a "<source>_" prefix to
// stay globally unique.
const (
	SourceAppointments   = "apt"
	SourceOnlineRequests = "req"
	SourcePayments       = "pay"
	SourceGeneric        = "ntf"
)

// NamespacedID builds the globally-unique id of a merged entry.
func NamespacedID(source, docID string) string {
	return fmt.Sprintf("%s_%s", source, docID)
}

// Detail carries the fields specific to one notification kind.
type Detail interface {
	isDetail()
}

type AppointmentDetail struct {
	UserName  string `json:"user_name"`
	Treatment string `json:"treatment"`
	Date      string `json:"date"`
	Time      string `json:"time"`
}

type PaymentDetail struct {
	CustomerName string `json:"customer_name"`
	Amount       int64  `json:"amount"`
}

type ReminderDetail struct {
	ReferenceID string `json:"reference_id,omitempty"`
}

func (AppointmentDetail) isDetail() {}
func (PaymentDetail) isDetail()     {}
func (ReminderDetail) isDetail()    {}

// Notification is the normalized view over heterogeneous source documents.
// Values are immutable snapshots: a later source snapshot for the same
// SourceID produces a new value that replaces the old one in the merged
// list, it never mutates it.
type Notification struct {
	ID        string    `json:"id"`
	SourceID  string    `json:"source_id"`
	Source    string    `json:"source"`
	Kind      Kind      `json:"kind"`
	Timestamp time.Time `json:"timestamp"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Detail    Detail    `json:"detail,omitempty"`
}
