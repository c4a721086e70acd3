package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Ares-Judda/Wang-Api/internal/model"
)

type PaymentRepository struct {
	pool *pgxpool.Pool
}

func NewPaymentRepository(pool *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{pool: pool}
}

func (r *PaymentRepository) Create(ctx context.Context, p model.Payment) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO payments (payment_id, contract_id, payment_method, amount, payment_date)
		 VALUES ($1, $2, $3, $4, now())`,
		p.PaymentID, p.ContractID, p.PaymentMethod, p.Amount)
	if err != nil {
		return fmt.Errorf("create payment: %w", err)
	}
	return nil
}
