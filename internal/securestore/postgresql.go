package securestore

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/credstore/internal/database"
	apperrors "github.com/allisson/credstore/internal/errors"
)

// PostgreSQLStore implements Store on top of a PostgreSQL database.
// Each live item occupies one row; a unique constraint on
// (class, key_type, tag) enforces the one-live-item-per-key invariant.
type PostgreSQLStore struct {
	db *sql.DB
}

// NewPostgreSQLStore creates a new PostgreSQL-backed secure store.
func NewPostgreSQLStore(db *sql.DB) *PostgreSQLStore {
	return &PostgreSQLStore{db: db}
}

// Insert adds a new item row. A unique-constraint violation or any other
// database refusal surfaces as ErrStoreRejected.
func (p *PostgreSQLStore) Insert(ctx context.Context, item Item) error {
	if err := validateAttributes(item.Attributes); err != nil {
		return err
	}

	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO secure_items (id, class, key_type, tag, data, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`

	now := time.Now().UTC()
	_, err := querier.ExecContext(
		ctx,
		query,
		uuid.Must(uuid.NewV7()),
		string(item.Attributes.Class),
		string(item.Attributes.KeyType),
		item.Attributes.Tag,
		item.Data,
		now,
		now,
	)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrStoreRejected, err.Error())
	}
	return nil
}

// Query returns the item stored under attrs, or ErrNotFound.
func (p *PostgreSQLStore) Query(ctx context.Context, attrs Attributes) (*Item, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT data FROM secure_items
			  WHERE class = $1 AND key_type = $2 AND tag = $3`

	var data []byte
	err := querier.QueryRowContext(
		ctx,
		query,
		string(attrs.Class),
		string(attrs.KeyType),
		attrs.Tag,
	).Scan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrStoreRejected, err.Error())
	}

	return &Item{Attributes: attrs, Data: data}, nil
}

// Update replaces the data of an existing row; zero affected rows means the
// item is absent and the update fails closed with ErrNotFound.
func (p *PostgreSQLStore) Update(ctx context.Context, attrs Attributes, data []byte) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE secure_items SET data = $1, updated_at = $2
			  WHERE class = $3 AND key_type = $4 AND tag = $5`

	result, err := querier.ExecContext(
		ctx,
		query,
		data,
		time.Now().UTC(),
		string(attrs.Class),
		string(attrs.KeyType),
		attrs.Tag,
	)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrStoreRejected, err.Error())
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(apperrors.ErrStoreRejected, err.Error())
	}
	if affected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// Erase removes the item row, or fails with ErrNotFound when absent.
func (p *PostgreSQLStore) Erase(ctx context.Context, attrs Attributes) error {
	querier := database.GetTx(ctx, p.db)

	query := `DELETE FROM secure_items
			  WHERE class = $1 AND key_type = $2 AND tag = $3`

	result, err := querier.ExecContext(
		ctx,
		query,
		string(attrs.Class),
		string(attrs.KeyType),
		attrs.Tag,
	)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrStoreRejected, err.Error())
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(apperrors.ErrStoreRejected, err.Error())
	}
	if affected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
