package notification

import (
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/dustin/go-humanize"
	"github.com/katatrina/dentcare-BE/internal/firedb"
	"github.com/katatrina/dentcare-BE/internal/util"
	"github.com/rs/zerolog/log"
)

// attentionStatuses are the appointment/request statuses that need staff
// attention; both intake channels are filtered server-side to these.
var attentionStatuses = []string{
	firedb.AppointmentStatusPending,
	firedb.AppointmentStatusConfirmed,
}

func appointmentsQuery(client *firestore.Client) firestore.Query {
	return client.Collection("appointments").
		Where("status", "in", attentionStatuses)
}

func onlineRequestsQuery(client *firestore.Client) firestore.Query {
	return client.Collection("onlineRequests").
		Where("status", "in", attentionStatuses)
}

func unpaidPaymentsQuery(client *firestore.Client) firestore.Query {
	return client.Collection("payments").
		Where("status", "!=", firedb.PaymentStatusPaid)
}

func recentPaymentsQuery(client *firestore.Client, pageSize int) firestore.Query {
	return client.Collection("payments").
		OrderBy("createdAt", firestore.Desc).
		Limit(pageSize)
}

func genericQuery(client *firestore.Client, pageSize int) firestore.Query {
	return client.Collection("notifications").
		OrderBy("createdAt", firestore.Desc).
		Limit(pageSize)
}

func appointmentKind(status string) Kind {
	switch status {
	case firedb.AppointmentStatusConfirmed:
		return KindAppointmentConfirmed
	case firedb.AppointmentStatusCancelled:
		return KindAppointmentCancelled
	default:
		return KindAppointmentPending
	}
}

func appointmentTitle(kind Kind) string {
	switch kind {
	case KindAppointmentConfirmed:
		return "Appointment confirmed"
	case KindAppointmentCancelled:
		return "Appointment cancelled"
	default:
		return "New appointment"
	}
}

// appointmentsFromDocs converts a full appointments snapshot into merged
// entries, namespaced under the given source.
func appointmentsFromDocs(source string, docs []*firestore.DocumentSnapshot) []Notification {
	items := make([]Notification, 0, len(docs))
	for _, doc := range docs {
		var appointment firedb.Appointment
		if err := doc.DataTo(&appointment); err != nil {
			log.Warn().Err(err).Str("doc", doc.Ref.ID).Msg("skipping malformed appointment document")
			continue
		}

		kind := appointmentKind(appointment.Status)
		items = append(items, Notification{
			ID:        NamespacedID(source, doc.Ref.ID),
			SourceID:  doc.Ref.ID,
			Source:    source,
			Kind:      kind,
			Timestamp: appointment.CreatedAt,
			Title:     appointmentTitle(kind),
			Message: fmt.Sprintf("%s booked %s on %s",
				appointment.UserName,
				appointment.Treatment,
				util.FormatAppointmentSlot(appointment.Date, appointment.Time)),
			Detail: AppointmentDetail{
				UserName:  appointment.UserName,
				Treatment: appointment.Treatment,
				Date:      appointment.Date,
				Time:      appointment.Time,
			},
		})
	}

	return items
}

// onlineRequestsFromDocs converts an online request snapshot. The request
// document uses treatmentOption where appointments use treatment; the
// normalized view hides the difference.
func onlineRequestsFromDocs(docs []*firestore.DocumentSnapshot) []Notification {
	items := make([]Notification, 0, len(docs))
	for _, doc := range docs {
		var request firedb.OnlineRequest
		if err := doc.DataTo(&request); err != nil {
			log.Warn().Err(err).Str("doc", doc.Ref.ID).Msg("skipping malformed online request document")
			continue
		}

		items = append(items, Notification{
			ID:        NamespacedID(SourceOnlineRequests, doc.Ref.ID),
			SourceID:  doc.Ref.ID,
			Source:    SourceOnlineRequests,
			Kind:      KindAppointmentPending,
			Timestamp: request.CreatedAt,
			Title:     "New online booking request",
			Message: fmt.Sprintf("%s requested %s on %s",
				request.UserName,
				request.TreatmentOption,
				util.FormatAppointmentSlot(request.Date, request.Time)),
			Detail: AppointmentDetail{
				UserName:  request.UserName,
				Treatment: request.TreatmentOption,
				Date:      request.Date,
				Time:      request.Time,
			},
		})
	}

	return items
}

// paymentsFromDocs converts a recent-payments snapshot. Only settled
// payments become "payment received" entries; unpaid ones are the billing
// badge's business, not the notification stream's.
func paymentsFromDocs(docs []*firestore.DocumentSnapshot) []Notification {
	items := make([]Notification, 0, len(docs))
	for _, doc := range docs {
		var payment firedb.Payment
		if err := doc.DataTo(&payment); err != nil {
			log.Warn().Err(err).Str("doc", doc.Ref.ID).Msg("skipping malformed payment document")
			continue
		}
		if payment.Status != firedb.PaymentStatusPaid {
			continue
		}

		timestamp := payment.CreatedAt
		if payment.PaidAt != nil {
			timestamp = *payment.PaidAt
		}

		items = append(items, Notification{
			ID:        NamespacedID(SourcePayments, doc.Ref.ID),
			SourceID:  doc.Ref.ID,
			Source:    SourcePayments,
			Kind:      KindPaymentReceived,
			Timestamp: timestamp,
			Title:     "Payment received",
			Message: fmt.Sprintf("%s paid %s %s",
				payment.CustomerName,
				util.FormatVND(payment.Amount),
				humanize.Time(timestamp)),
			Detail: PaymentDetail{
				CustomerName: payment.CustomerName,
				Amount:       payment.Amount,
			},
		})
	}

	return items
}

// genericFromDocs converts the generic notifications snapshot. The document
// type maps back onto the closed kind set; unknown types degrade to
// reminders rather than being dropped.
func genericFromDocs(docs []*firestore.DocumentSnapshot) []Notification {
	items := make([]Notification, 0, len(docs))
	for _, doc := range docs {
		var n firedb.NotificationDoc
		if err := doc.DataTo(&n); err != nil {
			log.Warn().Err(err).Str("doc", doc.Ref.ID).Msg("skipping malformed notification document")
			continue
		}

		kind := Kind(n.Type)
		switch kind {
		case KindAppointmentPending, KindAppointmentConfirmed, KindAppointmentCancelled,
			KindPaymentReceived, KindReminder:
		default:
			kind = KindReminder
		}

		items = append(items, Notification{
			ID:        NamespacedID(SourceGeneric, doc.Ref.ID),
			SourceID:  doc.Ref.ID,
			Source:    SourceGeneric,
			Kind:      kind,
			Timestamp: n.CreatedAt,
			Title:     n.Title,
			Message:   util.TruncateContent(n.Message, 160),
			Detail:    ReminderDetail{ReferenceID: n.ReferenceID},
		})
	}

	return items
}
