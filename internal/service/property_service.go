package service

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/Ares-Judda/Wang-Api/internal/model"
	"github.com/Ares-Judda/Wang-Api/pkg/apierror"
)

type propertyStore interface {
	ListActive(ctx context.Context) ([]model.Property, error)
	Create(ctx context.Context, p model.Property, images []model.PropertyImage) error
	FindIDByTitle(ctx context.Context, title string) (string, error)
	Update(ctx context.Context, propertyID string, title *string, price *float64, description *string) error
	AddImages(ctx context.Context, images []model.PropertyImage) error
	Details(ctx context.Context, title string) (model.PropertyDetails, error)
}

type PropertyService struct {
	store propertyStore
}

func NewPropertyService(store propertyStore) *PropertyService {
	return &PropertyService{store: store}
}

func (s *PropertyService) List(ctx context.Context) ([]model.Property, error) {
	properties, err := s.store.ListActive(ctx)
	if err != nil {
		return nil, internalError("list properties", err)
	}
	return properties, nil
}

// Create validates the listing, then inserts the property and its image
// rows in one transaction. Returns the generated property id.
func (s *PropertyService) Create(ctx context.Context, req model.CreatePropertyRequest) (string, error) {
	if strings.TrimSpace(req.Title) == "" || req.CategoryID == 0 ||
		strings.TrimSpace(req.Address) == "" || req.Latitude == 0 || req.Longitude == 0 ||
		req.Price == 0 || strings.TrimSpace(req.Description) == "" ||
		strings.TrimSpace(req.OwnerID) == "" {
		return "", apierror.New("MISSING_FIELDS", "missing required fields", "", http.StatusBadRequest)
	}

	propertyID := uuid.NewString()
	property := model.Property{
		PropertyID:  propertyID,
		OwnerID:     req.OwnerID,
		CategoryID:  req.CategoryID,
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Address:     req.Address,
		Price:       req.Price,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	}

	images := make([]model.PropertyImage, 0, len(req.ImageURLs))
	for _, url := range req.ImageURLs {
		images = append(images, model.PropertyImage{
			ImageID:    uuid.NewString(),
			PropertyID: propertyID,
			ImageURL:   url,
		})
	}

	if err := s.store.Create(ctx, property, images); err != nil {
		return "", internalError("create property", err)
	}

	return propertyID, nil
}

// Update applies a partial update addressed by the property's current
// title. At least one change (field or image) must be present.
func (s *PropertyService) Update(ctx context.Context, req model.UpdatePropertyRequest) (string, error) {
	if strings.TrimSpace(req.CurrentTitle) == "" ||
		(req.Title == nil && req.Price == nil && req.Description == nil && len(req.ImageURLs) == 0) {
		return "", apierror.New("MISSING_FIELDS", "current title and at least one field to update are required", "", http.StatusBadRequest)
	}

	propertyID, err := s.store.FindIDByTitle(ctx, req.CurrentTitle)
	if err != nil {
		if errors.Is(err, model.ErrPropertyNotFound) {
			return "", apierror.New("NOT_FOUND", "property not found or inactive", "", http.StatusNotFound)
		}
		return "", internalError("update property: lookup", err)
	}

	if req.Title != nil || req.Price != nil || req.Description != nil {
		if err := s.store.Update(ctx, propertyID, req.Title, req.Price, req.Description); err != nil {
			return "", internalError("update property", err)
		}
	}

	if len(req.ImageURLs) > 0 {
		images := make([]model.PropertyImage, 0, len(req.ImageURLs))
		for _, url := range req.ImageURLs {
			images = append(images, model.PropertyImage{
				ImageID:    uuid.NewString(),
				PropertyID: propertyID,
				ImageURL:   url,
			})
		}
		if err := s.store.AddImages(ctx, images); err != nil {
			return "", internalError("update property: images", err)
		}
	}

	return propertyID, nil
}

func (s *PropertyService) Details(ctx context.Context, title string) (model.PropertyDetails, error) {
	if strings.TrimSpace(title) == "" {
		return model.PropertyDetails{}, apierror.New("MISSING_FIELDS", "title is required", "", http.StatusBadRequest)
	}

	details, err := s.store.Details(ctx, title)
	if err != nil {
		if errors.Is(err, model.ErrPropertyNotFound) {
			return model.PropertyDetails{}, apierror.New("NOT_FOUND", "property not found or inactive", "", http.StatusNotFound)
		}
		return model.PropertyDetails{}, internalError("property details", err)
	}
	return details, nil
}
