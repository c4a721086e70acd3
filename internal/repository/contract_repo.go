package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Ares-Judda/Wang-Api/internal/model"
)

type ContractRepository struct {
	pool *pgxpool.Pool
}

func NewContractRepository(pool *pgxpool.Pool) *ContractRepository {
	return &ContractRepository{pool: pool}
}

// ListActive returns contracts joined with the property they were signed
// for, restricted to active properties.
func (r *ContractRepository) ListActive(ctx context.Context) ([]model.Contract, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT c.contract_file, c.start_date, c.end_date, p.title
		 FROM contracts c
		 JOIN appointments a ON c.appointment_id = a.appointment_id
		 JOIN properties p ON a.property_id = p.property_id
		 WHERE p.is_active = TRUE`)
	if err != nil {
		return nil, fmt.Errorf("list contracts: %w", err)
	}
	defer rows.Close()

	contracts := make([]model.Contract, 0)
	for rows.Next() {
		var c model.Contract
		if err := rows.Scan(&c.ContractFile, &c.StartDate, &c.EndDate, &c.Title); err != nil {
			return nil, fmt.Errorf("scan contract: %w", err)
		}
		contracts = append(contracts, c)
	}
	return contracts, rows.Err()
}

func (r *ContractRepository) Exists(ctx context.Context, contractID string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM contracts WHERE contract_id = $1)`, contractID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check contract exists: %w", err)
	}
	return exists, nil
}
