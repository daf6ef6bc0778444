package repositories

import (
	"context"
	"errors"

	"referral-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CooperationRepository struct {
	DB *pgxpool.Pool
}

func NewCooperationRepository(db *pgxpool.Pool) *CooperationRepository {
	return &CooperationRepository{DB: db}
}

// List returns all cooperation edges
func (r *CooperationRepository) List(ctx context.Context) ([]*models.Cooperation, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, company_id, property_manager_id FROM cooperations ORDER BY id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var coops []*models.Cooperation
	for rows.Next() {
		c := &models.Cooperation{}
		if err := rows.Scan(&c.ID, &c.CompanyID, &c.PropertyManagerID); err != nil {
			return nil, err
		}
		coops = append(coops, c)
	}

	return coops, rows.Err()
}

// Toggle flips the presence of the (company, property manager) edge:
// delete if present, insert if absent. The unique pair constraint plus
// ON CONFLICT makes concurrent toggles serialize instead of duplicating
// the edge.
func (r *CooperationRepository) Toggle(ctx context.Context, companyID, propertyManagerID int) error {
	var deleted int
	err := r.DB.QueryRow(ctx,
		`DELETE FROM cooperations
		 WHERE company_id = $1 AND property_manager_id = $2
		 RETURNING id`,
		companyID, propertyManagerID,
	).Scan(&deleted)

	if err == nil {
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}

	_, err = r.DB.Exec(ctx,
		`INSERT INTO cooperations(company_id, property_manager_id)
		 VALUES($1, $2)
		 ON CONFLICT (company_id, property_manager_id) DO NOTHING`,
		companyID, propertyManagerID,
	)
	return err
}
