package firedb

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
)

const onlineRequestsCollection = "onlineRequests"

type CreateOnlineRequestParams struct {
	UserName        string
	Phone           string
	Email           string
	TreatmentOption string
	Date            string
	Time            string
	Message         string
}

func (s *Store) CreateOnlineRequest(ctx context.Context, arg CreateOnlineRequestParams) (OnlineRequest, error) {
	request := OnlineRequest{
		UserName:        arg.UserName,
		Phone:           arg.Phone,
		Email:           arg.Email,
		TreatmentOption: arg.TreatmentOption,
		Date:            arg.Date,
		Time:            arg.Time,
		Status:          RequestStatusPending,
		Message:         arg.Message,
		CreatedAt:       time.Now(),
	}

	ref := s.client.Collection(onlineRequestsCollection).NewDoc()
	if _, err := ref.Set(ctx, request); err != nil {
		return OnlineRequest{}, fmt.Errorf("failed to create online request: %w", err)
	}

	request.ID = ref.ID
	return request, nil
}

func (s *Store) GetOnlineRequest(ctx context.Context, id string) (OnlineRequest, error) {
	doc, err := s.client.Collection(onlineRequestsCollection).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return OnlineRequest{}, ErrDocumentNotFound
		}
		return OnlineRequest{}, err
	}

	var request OnlineRequest
	if err = doc.DataTo(&request); err != nil {
		return OnlineRequest{}, fmt.Errorf("failed to decode online request %s: %w", doc.Ref.ID, err)
	}

	request.ID = doc.Ref.ID
	return request, nil
}

type ListOnlineRequestsParams struct {
	Status string
	Limit  int
	Offset int
}

func (s *Store) ListOnlineRequests(ctx context.Context, arg ListOnlineRequestsParams) ([]OnlineRequest, error) {
	query := s.client.Collection(onlineRequestsCollection).Query
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
		return nil, fmt.Errorf("failed to list online requests: %w", err)
	}

	requests := make([]OnlineRequest, 0, len(docs))
	for _, doc := range docs {
		var request OnlineRequest
		if err = doc.DataTo(&request); err != nil {
			return nil, fmt.Errorf("failed to decode online request %s: %w", doc.Ref.ID, err)
		}
		request.ID = doc.Ref.ID
		requests = append(requests, request)
	}

	return requests, nil
}

func (s *Store) UpdateOnlineRequestStatus(ctx context.Context, id string, status string) error {
	_, err := s.client.Collection(onlineRequestsCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: status},
	})
	if err != nil {
		if isNotFound(err) {
			return ErrDocumentNotFound
		}
		return fmt.Errorf("failed to update online request status: %w", err)
	}

	return nil
}
