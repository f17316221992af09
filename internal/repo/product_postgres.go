package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rogerio-castellano/product-catalog/internal/models"
)

type PostgresProductRepository struct {
	db *sql.DB
}

func NewPostgresProductRepository(db *sql.DB) *PostgresProductRepository {
	return &PostgresProductRepository{db: db}
}

const productColumns = `id, gtin, name, description, category, type, packaging_type,
	temp_units, min_temp, max_temp, storage_instructions, height, width, depth, weight,
	image, coalesce(array_to_json(subscribers)::text, '[]'), date_added, date_modified,
	date_published, date_inactive, owner_id`

func (r *PostgresProductRepository) CreateWithOwner(ctx context.Context, p models.Product) (models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Product{}, err
	}
	defer tx.Rollback()

	query := `INSERT INTO products (gtin, name, description, category, type, packaging_type,
		temp_units, min_temp, max_temp, storage_instructions, height, width, depth, weight,
		image, subscribers, date_added, date_modified, date_published, date_inactive, owner_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16::int[], $17, $18, $19, $20, $21)
		RETURNING id`
	err = tx.QueryRowContext(ctx, query,
		p.GTIN, p.Name, p.Description, p.Category, p.Type, p.PackagingType,
		p.TempUnits, p.MinTemp, p.MaxTemp, p.StorageInstructions, p.Height, p.Width, p.Depth, p.Weight,
		p.Image, intArrayLiteral(p.Subscribers), p.DateAdded, p.DateModified, p.DatePublished, p.DateInactive, p.OwnerID,
	).Scan(&p.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return models.Product{}, ErrDuplicatedValueUnique
		}
		return models.Product{}, err
	}

	res, err := tx.ExecContext(ctx,
		`UPDATE users SET products = array_append(products, $1) WHERE id = $2`, p.ID, p.OwnerID)
	if err != nil {
		return models.Product{}, err
	}
	if rowsAffected, _ := res.RowsAffected(); rowsAffected == 0 {
		return models.Product{}, ErrUserNotFound
	}

	if err := tx.Commit(); err != nil {
		return models.Product{}, err
	}
	return p, nil
}

func (r *PostgresProductRepository) GetByGTIN(ctx context.Context, gtin string) (models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	query := fmt.Sprintf(`SELECT %s FROM products WHERE gtin = $1`, productColumns)
	p, err := scanProduct(r.db.QueryRowContext(ctx, query, gtin))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	return p, err
}

func (r *PostgresProductRepository) GetByOwner(ctx context.Context, ownerID int) ([]models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	query := fmt.Sprintf(`SELECT %s FROM products WHERE owner_id = $1 ORDER BY id`, productColumns)
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *PostgresProductRepository) ExistsByGTIN(ctx context.Context, gtin string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM products WHERE gtin = $1)`, gtin).Scan(&exists)
	return exists, err
}

func (r *PostgresProductRepository) Update(ctx context.Context, p models.Product) (models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	query := `UPDATE products SET name = $1, description = $2, category = $3, type = $4,
		packaging_type = $5, temp_units = $6, min_temp = $7, max_temp = $8,
		storage_instructions = $9, height = $10, width = $11, depth = $12, weight = $13,
		image = $14, subscribers = $15::int[], date_modified = $16, date_published = $17,
		date_inactive = $18 WHERE id = $19`
	res, err := r.db.ExecContext(ctx, query,
		p.Name, p.Description, p.Category, p.Type,
		p.PackagingType, p.TempUnits, p.MinTemp, p.MaxTemp,
		p.StorageInstructions, p.Height, p.Width, p.Depth, p.Weight,
		p.Image, intArrayLiteral(p.Subscribers), p.DateModified, p.DatePublished,
		p.DateInactive, p.ID)
	if err != nil {
		return models.Product{}, err
	}
	if rowsAffected, _ := res.RowsAffected(); rowsAffected == 0 {
		return models.Product{}, ErrProductNotFound
	}
	return p, nil
}

func (r *PostgresProductRepository) DeleteWithOwner(ctx context.Context, id, ownerID int) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if rowsAffected, _ := res.RowsAffected(); rowsAffected == 0 {
		return ErrProductNotFound
	}

	// Remove by value so concurrent deletes on the same user cannot clobber
	// unrelated index entries.
	_, err = tx.ExecContext(ctx,
		`UPDATE users SET products = array_remove(products, $1) WHERE id = $2`, id, ownerID)
	if err != nil {
		return err
	}

	return tx.Commit()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (models.Product, error) {
	var p models.Product
	var subscribers string
	err := row.Scan(&p.ID, &p.GTIN, &p.Name, &p.Description, &p.Category, &p.Type, &p.PackagingType,
		&p.TempUnits, &p.MinTemp, &p.MaxTemp, &p.StorageInstructions, &p.Height, &p.Width, &p.Depth, &p.Weight,
		&p.Image, &subscribers, &p.DateAdded, &p.DateModified, &p.DatePublished, &p.DateInactive, &p.OwnerID)
	if err != nil {
		return models.Product{}, err
	}
	if err := json.Unmarshal([]byte(subscribers), &p.Subscribers); err != nil {
		return models.Product{}, fmt.Errorf("failed to decode subscribers: %w", err)
	}
	return p, nil
}

// intArrayLiteral renders ids as a Postgres array literal, e.g. {1,2,3}.
func intArrayLiteral(ids []int) string {
	if len(ids) == 0 {
		return "{}"
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return "{" + strings.Join(parts, ",") + "}"
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
