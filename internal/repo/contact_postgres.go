package repo

import (
	"context"
	"database/sql"
	"time"

	"github.com/rogerio-castellano/product-catalog/internal/models"
)

type PostgresContactRepository struct {
	db *sql.DB
}

func NewPostgresContactRepository(db *sql.DB) *PostgresContactRepository {
	return &PostgresContactRepository{db: db}
}

func (r *PostgresContactRepository) CreateContactItem(ctx context.Context, item models.ContactItem) (models.ContactItem, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	query := `INSERT INTO contact_items (name, company, email, phone, comments, date)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	err := r.db.QueryRowContext(ctx, query,
		item.Name, item.Company, item.Email, item.Phone, item.Comments, item.Date).Scan(&item.ID)
	if err != nil {
		return models.ContactItem{}, err
	}
	return item, nil
}

func (r *PostgresContactRepository) GetAllContactItems(ctx context.Context) ([]models.ContactItem, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	query := `SELECT id, name, company, email, phone, comments, date FROM contact_items ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.ContactItem
	for rows.Next() {
		var item models.ContactItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Company, &item.Email,
			&item.Phone, &item.Comments, &item.Date); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
