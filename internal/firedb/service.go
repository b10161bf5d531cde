package firedb

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/katatrina/dentcare-BE/internal/util"
)

const servicesCollection = "services"

type CreateServiceParams struct {
	Name            string
	Description     string
	Price           int64
	DurationMinutes int64
}

func (s *Store) CreateService(ctx context.Context, arg CreateServiceParams) (Service, error) {
	service := Service{
		Name:            arg.Name,
		Slug:            util.GenerateServiceSlug(arg.Name),
		Description:     arg.Description,
		Price:           arg.Price,
		DurationMinutes: arg.DurationMinutes,
		Active:          true,
		CreatedAt:       time.Now(),
	}

	ref := s.client.Collection(servicesCollection).NewDoc()
	if _, err := ref.Set(ctx, service); err != nil {
		return Service{}, fmt.Errorf("failed to create service: %w", err)
	}

	service.ID = ref.ID
	return service, nil
}

func (s *Store) ListServices(ctx context.Context, activeOnly bool) ([]Service, error) {
	query := s.client.Collection(servicesCollection).Query
	if activeOnly {
		query = query.Where("active", "==", true)
	}
	query = query.OrderBy("name", firestore.Asc)

	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}

	services := make([]Service, 0, len(docs))
	for _, doc := range docs {
		var service Service
		if err = doc.DataTo(&service); err != nil {
			return nil, fmt.Errorf("failed to decode service %s: %w", doc.Ref.ID, err)
		}
		service.ID = doc.Ref.ID
		services = append(services, service)
	}

	return services, nil
}

func (s *Store) GetServiceBySlug(ctx context.Context, serviceSlug string) (Service, error) {
	docs, err := s.client.Collection(servicesCollection).
		Where("slug", "==", serviceSlug).
		Limit(1).
		Documents(ctx).GetAll()
	if err != nil {
		return Service{}, fmt.Errorf("failed to get service by slug: %w", err)
	}
	if len(docs) == 0 {
		return Service{}, ErrDocumentNotFound
	}

	var service Service
	if err = docs[0].DataTo(&service); err != nil {
		return Service{}, fmt.Errorf("failed to decode service %s: %w", docs[0].Ref.ID, err)
	}

	service.ID = docs[0].Ref.ID
	return service, nil
}

type UpdateServiceParams struct {
	Description *string
	Price       *int64
	Active      *bool
}

func (s *Store) UpdateService(ctx context.Context, id string, arg UpdateServiceParams) error {
	var updates []firestore.Update
	if arg.Description != nil {
		updates = append(updates, firestore.Update{Path: "description", Value: *arg.Description})
	}
	if arg.Price != nil {
		updates = append(updates, firestore.Update{Path: "price", Value: *arg.Price})
	}
	if arg.Active != nil {
		updates = append(updates, firestore.Update{Path: "active", Value: *arg.Active})
	}
	if len(updates) == 0 {
		return nil
	}

	_, err := s.client.Collection(servicesCollection).Doc(id).Update(ctx, updates)
	if err != nil {
		if isNotFound(err) {
			return ErrDocumentNotFound
		}
		return fmt.Errorf("failed to update service: %w", err)
	}

	return nil
}
