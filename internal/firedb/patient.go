package firedb

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
)

const patientsCollection = "patients"

type CreatePatientParams struct {
	FullName    string
	Phone       string
	Email       string
	DateOfBirth string
	Address     string
	Allergies   string
	Note        string
}

func (s *Store) CreatePatient(ctx context.Context, arg CreatePatientParams) (Patient, error) {
	now := time.Now()
	patient := Patient{
		FullName:    arg.FullName,
		Phone:       arg.Phone,
		Email:       arg.Email,
		DateOfBirth: arg.DateOfBirth,
		Address:     arg.Address,
		Allergies:   arg.Allergies,
		Note:        arg.Note,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	ref := s.client.Collection(patientsCollection).NewDoc()
	if _, err := ref.Set(ctx, patient); err != nil {
		return Patient{}, fmt.Errorf("failed to create patient: %w", err)
	}

	patient.ID = ref.ID
	return patient, nil
}

func (s *Store) GetPatient(ctx context.Context, id string) (Patient, error) {
	doc, err := s.client.Collection(patientsCollection).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return Patient{}, ErrDocumentNotFound
		}
		return Patient{}, err
	}

	var patient Patient
	if err = doc.DataTo(&patient); err != nil {
		return Patient{}, fmt.Errorf("failed to decode patient %s: %w", doc.Ref.ID, err)
	}

	patient.ID = doc.Ref.ID
	return patient, nil
}

type UpdatePatientParams struct {
	FullName    *string
	Phone       *string
	Email       *string
	DateOfBirth *string
	Address     *string
	Allergies   *string
	Note        *string
}

func (s *Store) UpdatePatient(ctx context.Context, id string, arg UpdatePatientParams) (Patient, error) {
	updates := []firestore.Update{
		{Path: "updatedAt", Value: time.Now()},
	}
	if arg.FullName != nil {
		updates = append(updates, firestore.Update{Path: "fullName", Value: *arg.FullName})
	}
	if arg.Phone != nil {
		updates = append(updates, firestore.Update{Path: "phone", Value: *arg.Phone})
	}
	if arg.Email != nil {
		updates = append(updates, firestore.Update{Path: "email", Value: *arg.Email})
	}
	if arg.DateOfBirth != nil {
		updates = append(updates, firestore.Update{Path: "dateOfBirth", Value: *arg.DateOfBirth})
	}
	if arg.Address != nil {
		updates = append(updates, firestore.Update{Path: "address", Value: *arg.Address})
	}
	if arg.Allergies != nil {
		updates = append(updates, firestore.Update{Path: "allergies", Value: *arg.Allergies})
	}
	if arg.Note != nil {
		updates = append(updates, firestore.Update{Path: "note", Value: *arg.Note})
	}

	ref := s.client.Collection(patientsCollection).Doc(id)
	if _, err := ref.Update(ctx, updates); err != nil {
		if isNotFound(err) {
			return Patient{}, ErrDocumentNotFound
		}
		return Patient{}, fmt.Errorf("failed to update patient: %w", err)
	}

	return s.GetPatient(ctx, id)
}

type ListPatientsParams struct {
	Phone  string
	Limit  int
	Offset int
}

func (s *Store) ListPatients(ctx context.Context, arg ListPatientsParams) ([]Patient, error) {
	query := s.client.Collection(patientsCollection).Query
	if arg.Phone != "" {
		query = query.Where("phone", "==", arg.Phone)
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
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}

	patients := make([]Patient, 0, len(docs))
	for _, doc := range docs {
		var patient Patient
		if err = doc.DataTo(&patient); err != nil {
			return nil, fmt.Errorf("failed to decode patient %s: %w", doc.Ref.ID, err)
		}
		patient.ID = doc.Ref.ID
		patients = append(patients, patient)
	}

	return patients, nil
}

func (s *Store) AddPatientAttachment(ctx context.Context, id string, attachment PatientAttachment) error {
	_, err := s.client.Collection(patientsCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "attachments", Value: firestore.ArrayUnion(attachment)},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		if isNotFound(err) {
			return ErrDocumentNotFound
		}
		return fmt.Errorf("failed to add patient attachment: %w", err)
	}

	return nil
}

func (s *Store) AddTreatmentEntry(ctx context.Context, id string, entry TreatmentEntry) error {
	_, err := s.client.Collection(patientsCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "history", Value: firestore.ArrayUnion(entry)},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		if isNotFound(err) {
			return ErrDocumentNotFound
		}
		return fmt.Errorf("failed to add treatment entry: %w", err)
	}

	return nil
}
