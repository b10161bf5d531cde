package firedb

import (
	"time"
)

// Appointment statuses. Walk-in appointments and approved online requests
// both end up in the appointments collection.
const (
	AppointmentStatusPending   = "pending"
	AppointmentStatusConfirmed = "confirmed"
	AppointmentStatusCancelled = "cancelled"
	AppointmentStatusCompleted = "completed"
)

// Online request statuses.
const (
	RequestStatusPending   = "pending"
	RequestStatusConfirmed = "confirmed"
	RequestStatusRejected  = "rejected"
)

// Payment statuses.
const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusVoid    = "void"
)

// User roles for the portals.
const (
	RoleAdmin   = "admin"
	RoleStaff   = "staff"
	RoleDentist = "dentist"
)

type Appointment struct {
	ID           string    `firestore:"-" json:"id"`
	Code         string    `firestore:"code" json:"code"`
	UserName     string    `firestore:"userName" json:"user_name"`
	Phone        string    `firestore:"phone" json:"phone"`
	Email        string    `firestore:"email,omitempty" json:"email,omitempty"`
	Treatment    string    `firestore:"treatment" json:"treatment"`
	DentistID    string    `firestore:"dentistID,omitempty" json:"dentist_id,omitempty"`
	Date         string    `firestore:"date" json:"date"`
	Time         string    `firestore:"time" json:"time"`
	StartsAt     time.Time `firestore:"startsAt" json:"starts_at"`
	Status       string    `firestore:"status" json:"status"`
	Note         string    `firestore:"note,omitempty" json:"note,omitempty"`
	ReminderSent bool      `firestore:"reminderSent" json:"reminder_sent"`
	CreatedAt    time.Time `firestore:"createdAt" json:"created_at"`
}

type OnlineRequest struct {
	ID              string    `firestore:"-" json:"id"`
	UserName        string    `firestore:"userName" json:"user_name"`
	Phone           string    `firestore:"phone" json:"phone"`
	Email           string    `firestore:"email,omitempty" json:"email,omitempty"`
	TreatmentOption string    `firestore:"treatmentOption" json:"treatment_option"`
	Date            string    `firestore:"date" json:"date"`
	Time            string    `firestore:"time" json:"time"`
	Status          string    `firestore:"status" json:"status"`
	Message         string    `firestore:"message,omitempty" json:"message,omitempty"`
	CreatedAt       time.Time `firestore:"createdAt" json:"created_at"`
}

type PaymentItem struct {
	Description string `firestore:"description" json:"description"`
	Quantity    int64  `firestore:"quantity" json:"quantity"`
	UnitPrice   int64  `firestore:"unitPrice" json:"unit_price"`
	Total       int64  `firestore:"total" json:"total"`
}

type Payment struct {
	ID           string        `firestore:"-" json:"id"`
	CustomerName string        `firestore:"customerName" json:"customer_name"`
	PatientID    string        `firestore:"patientID,omitempty" json:"patient_id,omitempty"`
	Amount       int64         `firestore:"amount" json:"amount"`
	Status       string        `firestore:"status" json:"status"`
	Items        []PaymentItem `firestore:"items" json:"items"`
	CreatedAt    time.Time     `firestore:"createdAt" json:"created_at"`
	PaidAt       *time.Time    `firestore:"paidAt,omitempty" json:"paid_at,omitempty"`
}

type PatientAttachment struct {
	URL        string    `firestore:"url" json:"url"`
	Label      string    `firestore:"label" json:"label"`
	UploadedAt time.Time `firestore:"uploadedAt" json:"uploaded_at"`
}

type TreatmentEntry struct {
	Date        string    `firestore:"date" json:"date"`
	Treatment   string    `firestore:"treatment" json:"treatment"`
	DentistID   string    `firestore:"dentistID,omitempty" json:"dentist_id,omitempty"`
	DentistName string    `firestore:"dentistName,omitempty" json:"dentist_name,omitempty"`
	Note        string    `firestore:"note,omitempty" json:"note,omitempty"`
	CreatedAt   time.Time `firestore:"createdAt" json:"created_at"`
}

type Patient struct {
	ID          string              `firestore:"-" json:"id"`
	FullName    string              `firestore:"fullName" json:"full_name"`
	Phone       string              `firestore:"phone" json:"phone"`
	Email       string              `firestore:"email,omitempty" json:"email,omitempty"`
	DateOfBirth string              `firestore:"dateOfBirth,omitempty" json:"date_of_birth,omitempty"`
	Address     string              `firestore:"address,omitempty" json:"address,omitempty"`
	Allergies   string              `firestore:"allergies,omitempty" json:"allergies,omitempty"`
	Note        string              `firestore:"note,omitempty" json:"note,omitempty"`
	Attachments []PatientAttachment `firestore:"attachments,omitempty" json:"attachments,omitempty"`
	History     []TreatmentEntry    `firestore:"history,omitempty" json:"history,omitempty"`
	CreatedAt   time.Time           `firestore:"createdAt" json:"created_at"`
	UpdatedAt   time.Time           `firestore:"updatedAt" json:"updated_at"`
}

type Service struct {
	ID              string    `firestore:"-" json:"id"`
	Name            string    `firestore:"name" json:"name"`
	Slug            string    `firestore:"slug" json:"slug"`
	Description     string    `firestore:"description,omitempty" json:"description,omitempty"`
	Price           int64     `firestore:"price" json:"price"`
	DurationMinutes int64     `firestore:"durationMinutes" json:"duration_minutes"`
	Active          bool      `firestore:"active" json:"active"`
	CreatedAt       time.Time `firestore:"createdAt" json:"created_at"`
}

type User struct {
	ID        string    `firestore:"-" json:"id"`
	FullName  string    `firestore:"fullName" json:"full_name"`
	Email     string    `firestore:"email" json:"email"`
	Phone     string    `firestore:"phone,omitempty" json:"phone,omitempty"`
	Role      string    `firestore:"role" json:"role"`
	AvatarURL string    `firestore:"avatarURL,omitempty" json:"avatar_url,omitempty"`
	CreatedAt time.Time `firestore:"createdAt" json:"created_at"`
}

// NotificationDoc is a document in the generic notifications collection.
// Read state is not stored here; it lives in the per-user read-marker
// document so that each portal user tracks their own unread set.
type NotificationDoc struct {
	ID            string    `firestore:"-" json:"id"`
	Title         string    `firestore:"title" json:"title"`
	Message       string    `firestore:"message" json:"message"`
	Type          string    `firestore:"type" json:"type"`
	ReferenceID   string    `firestore:"referenceID,omitempty" json:"reference_id,omitempty"`
	RecipientRole string    `firestore:"recipientRole,omitempty" json:"recipient_role,omitempty"`
	CreatedAt     time.Time `firestore:"createdAt" json:"created_at"`
}
