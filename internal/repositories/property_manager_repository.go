package repositories

import (
	"context"

	"referral-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PropertyManagerRepository struct {
	DB *pgxpool.Pool
}

func NewPropertyManagerRepository(db *pgxpool.Pool) *PropertyManagerRepository {
	return &PropertyManagerRepository{DB: db}
}

// List returns all property managers, newest first
func (r *PropertyManagerRepository) List(ctx context.Context) ([]*models.PropertyManager, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, name, address, phone, email, notes, created_at
		 FROM property_managers ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var managers []*models.PropertyManager
	for rows.Next() {
		pm := &models.PropertyManager{}
		err := rows.Scan(&pm.ID, &pm.Name, &pm.Address, &pm.Phone, &pm.Email, &pm.Notes, &pm.CreatedAt)
		if err != nil {
			return nil, err
		}
		managers = append(managers, pm)
	}

	return managers, rows.Err()
}

// Get retrieves a property manager by ID
func (r *PropertyManagerRepository) Get(ctx context.Context, id int) (*models.PropertyManager, error) {
	pm := &models.PropertyManager{}
	err := r.DB.QueryRow(ctx,
		`SELECT id, name, address, phone, email, notes, created_at
		 FROM property_managers WHERE id = $1`, id,
	).Scan(&pm.ID, &pm.Name, &pm.Address, &pm.Phone, &pm.Email, &pm.Notes, &pm.CreatedAt)
	if err != nil {
		return nil, err
	}

	return pm, nil
}

// Create inserts a new property manager
func (r *PropertyManagerRepository) Create(ctx context.Context, req *models.CreatePropertyManagerRequest) (*models.PropertyManager, error) {
	pm := &models.PropertyManager{}
	err := r.DB.QueryRow(ctx,
		`INSERT INTO property_managers(name, address, phone, email, notes)
		 VALUES($1, $2, $3, $4, $5)
		 RETURNING id, name, address, phone, email, notes, created_at`,
		req.Name, req.Address, req.Phone, req.Email, req.Notes,
	).Scan(&pm.ID, &pm.Name, &pm.Address, &pm.Phone, &pm.Email, &pm.Notes, &pm.CreatedAt)
	if err != nil {
		return nil, err
	}

	return pm, nil
}

// Update patches a property manager; nil fields keep their current value
func (r *PropertyManagerRepository) Update(ctx context.Context, id int, req *models.UpdatePropertyManagerRequest) (*models.PropertyManager, error) {
	pm := &models.PropertyManager{}
	err := r.DB.QueryRow(ctx,
		`UPDATE property_managers SET
			name    = COALESCE($1, name),
			address = COALESCE($2, address),
			phone   = COALESCE($3, phone),
			email   = COALESCE($4, email),
			notes   = COALESCE($5, notes)
		 WHERE id = $6
		 RETURNING id, name, address, phone, email, notes, created_at`,
		req.Name, req.Address, req.Phone, req.Email, req.Notes, id,
	).Scan(&pm.ID, &pm.Name, &pm.Address, &pm.Phone, &pm.Email, &pm.Notes, &pm.CreatedAt)
	if err != nil {
		return nil, err
	}

	return pm, nil
}

// Delete removes a property manager
func (r *PropertyManagerRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM property_managers WHERE id = $1`, id)
	return err
}
