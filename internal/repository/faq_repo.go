package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Ares-Judda/Wang-Api/internal/model"
)

type FAQRepository struct {
	pool *pgxpool.Pool
}

func NewFAQRepository(pool *pgxpool.Pool) *FAQRepository {
	return &FAQRepository{pool: pool}
}

func (r *FAQRepository) Create(ctx context.Context, faq model.FAQ) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO faqs (faq_id, tenant_id, property_id, question, date_asked)
		 VALUES ($1, $2, $3, $4, now())`,
		faq.FAQID, faq.TenantID, faq.PropertyID, faq.Question)
	if err != nil {
		return fmt.Errorf("create faq: %w", err)
	}
	return nil
}

func (r *FAQRepository) Exists(ctx context.Context, faqID string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM faqs WHERE faq_id = $1)`, faqID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check faq exists: %w", err)
	}
	return exists, nil
}

func (r *FAQRepository) SetAnswer(ctx context.Context, faqID string, answer string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE faqs SET answer = $2 WHERE faq_id = $1`, faqID, answer)
	if err != nil {
		return fmt.Errorf("answer faq: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrFAQNotFound
	}
	return nil
}
