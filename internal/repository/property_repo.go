package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Ares-Judda/Wang-Api/internal/model"
)

type PropertyRepository struct {
	pool *pgxpool.Pool
}

func NewPropertyRepository(pool *pgxpool.Pool) *PropertyRepository {
	return &PropertyRepository{pool: pool}
}

func (r *PropertyRepository) ListActive(ctx context.Context) ([]model.Property, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT property_id, owner_id, category_id, title, description, address,
		        price, latitude, longitude, current_status, publish_date, is_active
		 FROM properties WHERE is_active = TRUE
		 ORDER BY publish_date DESC`)
	if err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}
	defer rows.Close()

	properties := make([]model.Property, 0)
	for rows.Next() {
		var p model.Property
		if err := rows.Scan(&p.PropertyID, &p.OwnerID, &p.CategoryID, &p.Title,
			&p.Description, &p.Address, &p.Price, &p.Latitude, &p.Longitude,
			&p.CurrentStatus, &p.PublishDate, &p.IsActive); err != nil {
			return nil, fmt.Errorf("scan property: %w", err)
		}
		properties = append(properties, p)
	}
	return properties, rows.Err()
}

// Create inserts the property and its image rows inside one transaction.
func (r *PropertyRepository) Create(ctx context.Context, p model.Property, images []model.PropertyImage) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin property tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx,
		`INSERT INTO properties (property_id, owner_id, category_id, title, description,
		        address, price, latitude, longitude, current_status, publish_date, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, 'Available', now(), TRUE)`,
		p.PropertyID, p.OwnerID, p.CategoryID, p.Title, p.Description,
		p.Address, p.Price, p.Latitude, p.Longitude)
	if err != nil {
		return fmt.Errorf("create property: %w", err)
	}

	for _, img := range images {
		_, err = tx.Exec(ctx,
			`INSERT INTO property_images (image_id, property_id, image_url)
			 VALUES ($1, $2, $3)`,
			img.ImageID, img.PropertyID, img.ImageURL)
		if err != nil {
			return fmt.Errorf("create property image: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit property tx: %w", err)
	}
	return nil
}

// FindIDByTitle resolves an active property id by its exact title.
func (r *PropertyRepository) FindIDByTitle(ctx context.Context, title string) (string, error) {
	var id string
	err := r.pool.QueryRow(ctx,
		`SELECT property_id FROM properties WHERE title = $1 AND is_active = TRUE`,
		strings.TrimSpace(title)).Scan(&id)

	if errors.Is(err, pgx.ErrNoRows) {
		return "", model.ErrPropertyNotFound
	}
	if err != nil {
		return "", fmt.Errorf("find property by title: %w", err)
	}
	return id, nil
}

// Update applies the non-nil fields to the property addressed by propertyID
// and refreshes its publish date.
func (r *PropertyRepository) Update(ctx context.Context, propertyID string, title *string, price *float64, description *string) error {
	assignments := make([]string, 0, 3)
	args := []any{propertyID}

	if title != nil {
		args = append(args, *title)
		assignments = append(assignments, fmt.Sprintf("title = $%d", len(args)))
	}
	if price != nil {
		args = append(args, *price)
		assignments = append(assignments, fmt.Sprintf("price = $%d", len(args)))
	}
	if description != nil {
		args = append(args, *description)
		assignments = append(assignments, fmt.Sprintf("description = $%d", len(args)))
	}

	if len(assignments) == 0 {
		return nil
	}

	query := fmt.Sprintf(
		`UPDATE properties SET %s, publish_date = now() WHERE property_id = $1`,
		strings.Join(assignments, ", "))

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update property: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrPropertyNotFound
	}
	return nil
}

func (r *PropertyRepository) AddImages(ctx context.Context, images []model.PropertyImage) error {
	for _, img := range images {
		_, err := r.pool.Exec(ctx,
			`INSERT INTO property_images (image_id, property_id, image_url)
			 VALUES ($1, $2, $3)`,
			img.ImageID, img.PropertyID, img.ImageURL)
		if err != nil {
			return fmt.Errorf("add property image: %w", err)
		}
	}
	return nil
}

// Details returns one active property by title with its owner name, image
// URLs and reviews. The LEFT JOINs fan out into one row per image/review
// combination; rows are grouped back in Go.
func (r *PropertyRepository) Details(ctx context.Context, title string) (model.PropertyDetails, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT p.property_id, p.title, p.price, p.description, p.publish_date,
		        COALESCE(u.full_name, ''), pi.image_url, rv.rating, rv.comment, rv.review_date
		 FROM properties p
		 LEFT JOIN users u ON p.owner_id = u.user_id
		 LEFT JOIN property_images pi ON p.property_id = pi.property_id
		 LEFT JOIN reviews rv ON p.property_id = rv.property_id
		 WHERE p.title = $1 AND p.is_active = TRUE`,
		strings.TrimSpace(title))
	if err != nil {
		return model.PropertyDetails{}, fmt.Errorf("property details: %w", err)
	}
	defer rows.Close()

	var details model.PropertyDetails
	found := false
	seenImages := map[string]struct{}{}
	seenReviews := map[string]struct{}{}

	for rows.Next() {
		var imageURL, comment *string
		var rating *int
		var reviewDate *time.Time

		if err := rows.Scan(&details.PropertyID, &details.Title, &details.Price,
			&details.Description, &details.PublishDate, &details.OwnerName,
			&imageURL, &rating, &comment, &reviewDate); err != nil {
			return model.PropertyDetails{}, fmt.Errorf("scan property details: %w", err)
		}
		found = true

		if imageURL != nil {
			if _, dup := seenImages[*imageURL]; !dup {
				seenImages[*imageURL] = struct{}{}
				details.Images = append(details.Images, *imageURL)
			}
		}

		if rating != nil || comment != nil || reviewDate != nil {
			review := model.Review{Rating: derefInt(rating), Comment: deref(comment)}
			if reviewDate != nil {
				review.ReviewDate = *reviewDate
			}
			key := fmt.Sprintf("%d|%s|%s", review.Rating, review.Comment, review.ReviewDate)
			if _, dup := seenReviews[key]; !dup {
				seenReviews[key] = struct{}{}
				details.Reviews = append(details.Reviews, review)
			}
		}
	}
	if err := rows.Err(); err != nil {
		return model.PropertyDetails{}, fmt.Errorf("property details rows: %w", err)
	}

	if !found {
		return model.PropertyDetails{}, model.ErrPropertyNotFound
	}

	if details.Images == nil {
		details.Images = []string{}
	}
	if details.Reviews == nil {
		details.Reviews = []model.Review{}
	}
	return details, nil
}

func derefInt(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
