package securestore

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/credstore/internal/errors"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func TestPostgreSQLStore_Insert(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewPostgreSQLStore(db)
	ctx := context.Background()

	attrs := Attributes{Class: ClassKey, KeyType: KeyTypeSymmetric, Tag: "app-key"}

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO secure_items`)).
		WithArgs(
			sqlmock.AnyArg(),
			string(ClassKey),
			string(KeyTypeSymmetric),
			"app-key",
			[]byte("material"),
			sqlmock.AnyArg(),
			sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := store.Insert(ctx, Item{Attributes: attrs, Data: []byte("material")})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLStore_InsertRejected(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewPostgreSQLStore(db)
	ctx := context.Background()

	attrs := Attributes{Class: ClassKey, KeyType: KeyTypeSymmetric, Tag: "app-key"}

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO secure_items`)).
		WillReturnError(assert.AnError)

	err := store.Insert(ctx, Item{Attributes: attrs, Data: []byte("material")})
	assert.ErrorIs(t, err, apperrors.ErrStoreRejected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLStore_InsertInvalidAttributes(t *testing.T) {
	db, _ := newMockDB(t)
	store := NewPostgreSQLStore(db)

	err := store.Insert(context.Background(), Item{
		Attributes: Attributes{Class: ClassGenericSecret, KeyType: KeyTypePublic, Tag: "t"},
	})
	assert.ErrorIs(t, err, apperrors.ErrStoreRejected)
}

func TestPostgreSQLStore_Query(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewPostgreSQLStore(db)
	ctx := context.Background()

	attrs := Attributes{Class: ClassGenericSecret, Tag: "credential"}

	rows := sqlmock.NewRows([]string{"data"}).AddRow([]byte("blob"))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT data FROM secure_items`)).
		WithArgs(string(ClassGenericSecret), "", "credential").
		WillReturnRows(rows)

	item, err := store.Query(ctx, attrs)
	require.NoError(t, err)
	assert.Equal(t, []byte("blob"), item.Data)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLStore_QueryAbsent(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewPostgreSQLStore(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT data FROM secure_items`)).
		WillReturnError(sql.ErrNoRows)

	_, err := store.Query(context.Background(), Attributes{Class: ClassGenericSecret, Tag: "missing"})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLStore_Update(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewPostgreSQLStore(db)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE secure_items`)).
		WithArgs(
			[]byte("v2"),
			sqlmock.AnyArg(),
			string(ClassKey),
			string(KeyTypeSymmetric),
			"app-key",
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := store.Update(
		context.Background(),
		Attributes{Class: ClassKey, KeyType: KeyTypeSymmetric, Tag: "app-key"},
		[]byte("v2"),
	)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLStore_UpdateAbsent(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewPostgreSQLStore(db)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE secure_items`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := store.Update(
		context.Background(),
		Attributes{Class: ClassKey, KeyType: KeyTypeSymmetric, Tag: "missing"},
		[]byte("v2"),
	)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLStore_Erase(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewPostgreSQLStore(db)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM secure_items`)).
		WithArgs(string(ClassKey), string(KeyTypePrivate), "app-key").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := store.Erase(
		context.Background(),
		Attributes{Class: ClassKey, KeyType: KeyTypePrivate, Tag: "app-key"},
	)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLStore_EraseAbsent(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewPostgreSQLStore(db)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM secure_items`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := store.Erase(
		context.Background(),
		Attributes{Class: ClassKey, KeyType: KeyTypePrivate, Tag: "missing"},
	)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
