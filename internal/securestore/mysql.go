package securestore

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/credstore/internal/database"
	apperrors "github.com/allisson/credstore/internal/errors"
)

// MySQLStore implements Store on top of a MySQL database.
// Mirrors PostgreSQLStore with MySQL placeholder syntax.
type MySQLStore struct {
	db *sql.DB
}

// NewMySQLStore creates a new MySQL-backed secure store.
func NewMySQLStore(db *sql.DB) *MySQLStore {
	return &MySQLStore{db: db}
}

// Insert adds a new item row, surfacing database refusals as ErrStoreRejected.
func (m *MySQLStore) Insert(ctx context.Context, item Item) error {
	if err := validateAttributes(item.Attributes); err != nil {
		return err
	}

	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO secure_items (id, class, key_type, tag, data, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?)`

	now := time.Now().UTC()
	_, err := querier.ExecContext(
		ctx,
		query,
		uuid.Must(uuid.NewV7()).String(),
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
func (m *MySQLStore) Query(ctx context.Context, attrs Attributes) (*Item, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT data FROM secure_items
			  WHERE class = ? AND key_type = ? AND tag = ?`

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

// Update replaces the data of an existing row, failing closed with
// ErrNotFound when the item is absent.
func (m *MySQLStore) Update(ctx context.Context, attrs Attributes, data []byte) error {
	querier := database.GetTx(ctx, m.db)

	query := `UPDATE secure_items SET data = ?, updated_at = ?
			  WHERE class = ? AND key_type = ? AND tag = ?`

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
func (m *MySQLStore) Erase(ctx context.Context, attrs Attributes) error {
	querier := database.GetTx(ctx, m.db)

	query := `DELETE FROM secure_items
			  WHERE class = ? AND key_type = ? AND tag = ?`

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
