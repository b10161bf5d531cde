package firedb

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/katatrina/dentcare-BE/internal/util"
)

const appointmentsCollection = "appointments"

type CreateAppointmentParams struct {
	UserName  string
	Phone     string
	Email     string
	Treatment string
	DentistID string
	Date      string
	Time      string
	StartsAt  time.Time
	Note      string
	Status    string
}

func (s *Store) CreateAppointment(ctx context.Context, arg CreateAppointmentParams) (Appointment, error) {
	appointment := Appointment{
		Code:      util.GenerateAppointmentCode(),
		UserName:  arg.UserName,
		Phone:     arg.Phone,
		Email:     arg.Email,
		Treatment: arg.Treatment,
		DentistID: arg.DentistID,
		Date:      arg.Date,
		Time:      arg.Time,
		StartsAt:  arg.StartsAt,
		Status:    arg.Status,
		Note:      arg.Note,
		CreatedAt: time.Now(),
	}

	ref := s.client.Collection(appointmentsCollection).NewDoc()
	if _, err := ref.Set(ctx, appointment); err != nil {
		return Appointment{}, fmt.Errorf("failed to create appointment: %w", err)
	}

	appointment.ID = ref.ID
	return appointment, nil
}

func (s *Store) GetAppointment(ctx context.Context, id string) (Appointment, error) {
	doc, err := s.client.Collection(appointmentsCollection).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return Appointment{}, ErrDocumentNotFound
		}
		return Appointment{}, err
	}

	var appointment Appointment
	if err = doc.DataTo(&appointment); err != nil {
		return Appointment{}, fmt.Errorf("failed to decode appointment %s: %w", doc.Ref.ID, err)
	}

	appointment.ID = doc.Ref.ID
	return appointment, nil
}

type ListAppointmentsParams struct {
	Status string
	Date   string
	Limit  int
	Offset int
}

func (s *Store) ListAppointments(ctx context.Context, arg ListAppointmentsParams) ([]Appointment, error) {
	query := s.client.Collection(appointmentsCollection).Query
	if arg.Status != "" {
		query = query.Where("status", "==", arg.Status)
	}
	if arg.Date != "" {
		query = query.Where("date", "==", arg.Date)
	}

	query = query.OrderBy("createdAt", firestore.Desc)
	if arg.Offset > 0 {
		query = query.Offset(arg.Offset)
	}
	if arg.Limit > 0 {
		query = query.Limit(arg.Limit)
	}

	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}

	appointments := make([]Appointment, 0, len(docs))
	for _, doc := range docs {
		var appointment Appointment
		if err = doc.DataTo(&appointment); err != nil {
			return nil, fmt.Errorf("failed to decode appointment %s: %w", doc.Ref.ID, err)
		}
		appointment.ID = doc.Ref.ID
		appointments = append(appointments, appointment)
	}

	return appointments, nil
}

func (s *Store) UpdateAppointmentStatus(ctx context.Context, id string, status string) error {
	_, err := s.client.Collection(appointmentsCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: status},
	})
	if err != nil {
		if isNotFound(err) {
			return ErrDocumentNotFound
		}
		return fmt.Errorf("failed to update appointment status: %w", err)
	}

	return nil
}

// ListAppointmentsNeedingReminder returns confirmed appointments starting in
// [from, to) whose reminder has not been sent yet.
func (s *Store) ListAppointmentsNeedingReminder(ctx context.Context, from, to time.Time) ([]Appointment, error) {
	docs, err := s.client.Collection(appointmentsCollection).
		Where("status", "==", AppointmentStatusConfirmed).
		Where("reminderSent", "==", false).
		Where("startsAt", ">=", from).
		Where("startsAt", "<", to).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments needing reminder: %w", err)
	}

	appointments := make([]Appointment, 0, len(docs))
	for _, doc := range docs {
		var appointment Appointment
		if err = doc.DataTo(&appointment); err != nil {
			return nil, fmt.Errorf("failed to decode appointment %s: %w", doc.Ref.ID, err)
		}
		appointment.ID = doc.Ref.ID
		appointments = append(appointments, appointment)
	}

	return appointments, nil
}

func (s *Store) MarkAppointmentReminderSent(ctx context.Context, id string) error {
	_, err := s.client.Collection(appointmentsCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "reminderSent", Value: true},
	})
	if err != nil {
		return fmt.Errorf("failed to mark reminder sent: %w", err)
	}

	return nil
}
