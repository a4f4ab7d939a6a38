package db

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"careconnect-backend-go/internal/models"
)

const servicesCollection = "services"

type firestoreServiceRepository struct {
	client *firestore.Client
}

// NewFirestoreServiceRepository creates a Firestore-backed ServiceRepository.
func NewFirestoreServiceRepository(client *firestore.Client) ServiceRepository {
	return &firestoreServiceRepository{client: client}
}

func (r *firestoreServiceRepository) GetByID(ctx context.Context, serviceID string) (*models.Service, error) {
	if serviceID == "" {
		return nil, errors.New("serviceID cannot be empty")
	}
	snap, err := r.client.Collection(servicesCollection).Doc(serviceID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("service %q: %w", serviceID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get service %q: %w", serviceID, err)
	}

	var svc models.Service
	if err := snap.DataTo(&svc); err != nil {
		return nil, fmt.Errorf("failed to decode service %q: %w", serviceID, err)
	}
	svc.ID = snap.Ref.ID
	return &svc, nil
}

func (r *firestoreServiceRepository) Create(ctx context.Context, svc *models.Service) (string, error) {
	ref := r.client.Collection(servicesCollection).NewDoc()
	svc.ID = ref.ID
	if _, err := ref.Create(ctx, svc); err != nil {
		return "", fmt.Errorf("failed to create service: %w", err)
	}
	return ref.ID, nil
}

func (r *firestoreServiceRepository) Update(ctx context.Context, svc *models.Service) error {
	if svc.ID == "" {
		return errors.New("service ID cannot be empty")
	}
	_, err := r.client.Collection(servicesCollection).Doc(svc.ID).Set(ctx, svc, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to update service %q: %w", svc.ID, err)
	}
	return nil
}

func (r *firestoreServiceRepository) Delete(ctx context.Context, serviceID string) error {
	if serviceID == "" {
		return errors.New("serviceID cannot be empty")
	}
	_, err := r.client.Collection(servicesCollection).Doc(serviceID).Delete(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete service %q: %w", serviceID, err)
	}
	return nil
}

func (r *firestoreServiceRepository) List(ctx context.Context) ([]*models.Service, error) {
	return r.collect(r.client.Collection(servicesCollection).Documents(ctx))
}

func (r *firestoreServiceRepository) ListActive(ctx context.Context) ([]*models.Service, error) {
	query := r.client.Collection(servicesCollection).Where("isActive", "==", true)
	return r.collect(query.Documents(ctx))
}

func (r *firestoreServiceRepository) collect(iter *firestore.DocumentIterator) ([]*models.Service, error) {
	defer iter.Stop()

	var services []*models.Service
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate services: %w", err)
		}
		var svc models.Service
		if err := doc.DataTo(&svc); err != nil {
			return nil, fmt.Errorf("failed to decode service %q: %w", doc.Ref.ID, err)
		}
		svc.ID = doc.Ref.ID
		services = append(services, &svc)
	}
	return services, nil
}
