package firedb

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/katatrina/dentcare-BE/internal/util"
)

const paymentsCollection = "payments"

type CreatePaymentParams struct {
	CustomerName string
	PatientID    string
	Items        []PaymentItem
}

func (s *Store) CreatePayment(ctx context.Context, arg CreatePaymentParams) (Payment, error) {
	var amount int64
	for i := range arg.Items {
		arg.Items[i].Total = arg.Items[i].Quantity * arg.Items[i].UnitPrice
		amount += arg.Items[i].Total
	}

	payment := Payment{
		CustomerName: arg.CustomerName,
		PatientID:    arg.PatientID,
		Amount:       amount,
		Status:       PaymentStatusPending,
		Items:        arg.Items,
		CreatedAt:    time.Now(),
	}

	ref := s.client.Collection(paymentsCollection).NewDoc()
	if _, err := ref.Set(ctx, payment); err != nil {
		return Payment{}, fmt.Errorf("failed to create payment: %w", err)
	}

	payment.ID = ref.ID
	return payment, nil
}

// GetPayment returns a payment with its billing line items. This is the
// line-item lookup used by the billing screen.
func (s *Store) GetPayment(ctx context.Context, id string) (Payment, error) {
	doc, err := s.client.Collection(paymentsCollection).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return Payment{}, ErrDocumentNotFound
		}
		return Payment{}, err
	}

	var payment Payment
	if err = doc.DataTo(&payment); err != nil {
		return Payment{}, fmt.Errorf("failed to decode payment %s: %w", doc.Ref.ID, err)
	}

	payment.ID = doc.Ref.ID
	return payment, nil
}

type ListPaymentsParams struct {
	Status string
	Limit  int
	Offset int
}

func (s *Store) ListPayments(ctx context.Context, arg ListPaymentsParams) ([]Payment, error) {
	query := s.client.Collection(paymentsCollection).Query
	if arg.Status != "" {
		query = query.Where("status", "==", arg.Status)
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
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}

	payments := make([]Payment, 0, len(docs))
	for _, doc := range docs {
		var payment Payment
		if err = doc.DataTo(&payment); err != nil {
			return nil, fmt.Errorf("failed to decode payment %s: %w", doc.Ref.ID, err)
		}
		payment.ID = doc.Ref.ID
		payments = append(payments, payment)
	}

	return payments, nil
}

func (s *Store) MarkPaymentPaid(ctx context.Context, id string) (Payment, error) {
	ref := s.client.Collection(paymentsCollection).Doc(id)
	_, err := ref.Update(ctx, []firestore.Update{
		{Path: "status", Value: PaymentStatusPaid},
		{Path: "paidAt", Value: util.TimePointer(time.Now())},
	})
	if err != nil {
		if isNotFound(err) {
			return Payment{}, ErrDocumentNotFound
		}
		return Payment{}, fmt.Errorf("failed to mark payment paid: %w", err)
	}

	return s.GetPayment(ctx, id)
}
