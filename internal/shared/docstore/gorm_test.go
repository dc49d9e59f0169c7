package docstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uiseong-market/form-server/internal/model"
	"github.com/uiseong-market/form-server/internal/shared/docstore"
	"github.com/uiseong-market/form-server/internal/shared/testutil"
)

func newStore(t *testing.T) *docstore.GormStore {
	t.Helper()
	return docstore.NewGormStore(testutil.SetupTestDB(t), 5*time.Second)
}

func TestAddAndQuery(t *testing.T) {
	// Given
	store := newStore(t)
	ctx := context.Background()

	id, err := store.Add(ctx, "stores", docstore.Document{"name": "참기름집", "product": "참기름"})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	_, err = store.Add(ctx, "stores", docstore.Document{"name": "사과농장", "product": "사과"})
	require.NoError(t, err)

	// When
	docs, err := store.Query(ctx, "stores", "product", "참기름")

	// Then
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, docstore.Document{"name": "참기름집", "product": "참기름"}, docs[0])
}

func TestQuery_IsScopedToCollection(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	_, err := store.Add(ctx, "users", docstore.Document{"name": "민수"})
	require.NoError(t, err)

	docs, err := store.Query(ctx, "stores", "name", "민수")

	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestExistsWithField(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	_, err := store.Add(ctx, "users", docstore.Document{"nickname": "민수", "id": "minsu"})
	require.NoError(t, err)

	testCases := []struct {
		collection string
		field      string
		value      string
		want       bool
	}{
		{collection: "users", field: "nickname", value: "민수", want: true},
		{collection: "users", field: "id", value: "minsu", want: true},
		{collection: "users", field: "nickname", value: "minsu", want: false},
		{collection: "stores", field: "nickname", value: "민수", want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.collection+"."+tc.field+"="+tc.value, func(t *testing.T) {
			exists, err := store.ExistsWithField(ctx, tc.collection, tc.field, tc.value)

			require.NoError(t, err)
			assert.Equal(t, tc.want, exists)
		})
	}
}

func TestAdd_UniqueFieldCollision(t *testing.T) {
	// Given: an existing user
	store := newStore(t)
	ctx := context.Background()

	_, err := store.Add(ctx, "users",
		docstore.Document{"nickname": "민수", "id": "minsu"},
		docstore.WithUnique("nickname", "id"),
	)
	require.NoError(t, err)

	testCases := []struct {
		name      string
		doc       docstore.Document
		wantField string
	}{
		{name: "same nickname", doc: docstore.Document{"nickname": "민수", "id": "other"}, wantField: "nickname"},
		{name: "same id", doc: docstore.Document{"nickname": "영희", "id": "minsu"}, wantField: "id"},
		{name: "both taken reports nickname first", doc: docstore.Document{"nickname": "민수", "id": "minsu"}, wantField: "nickname"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// When
			_, err := store.Add(ctx, "users", tc.doc, docstore.WithUnique("nickname", "id"))

			// Then
			require.ErrorIs(t, err, docstore.ErrDuplicate)
			var dupErr *docstore.DuplicateError
			require.True(t, errors.As(err, &dupErr))
			assert.Equal(t, "users", dupErr.Collection)
			assert.Equal(t, tc.wantField, dupErr.Field)
		})
	}

	// Then: the rejected writes left nothing behind
	docs, err := store.Query(ctx, "users", "id", "other")
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestAdd_UniqueIsPerCollectionAndOptIn(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	_, err := store.Add(ctx, "users", docstore.Document{"nickname": "민수"}, docstore.WithUnique("nickname"))
	require.NoError(t, err)

	// other collection with the same unique value
	_, err = store.Add(ctx, "admins", docstore.Document{"nickname": "민수"}, docstore.WithUnique("nickname"))
	assert.NoError(t, err)

	// same collection without declaring the field unique
	_, err = store.Add(ctx, "users", docstore.Document{"nickname": "민수"})
	assert.NoError(t, err)
}

func TestAdd_WritesOneFieldRowPerField(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := docstore.NewGormStore(db, 0)

	id, err := store.Add(context.Background(), "stores", docstore.Document{"name": "a", "location": "b", "product": "c"})
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&model.DocumentField{}).Where("document_id = ?", id).Count(&count).Error)
	assert.Equal(t, int64(3), count)
}

func TestExistsWithField_ReadFailure(t *testing.T) {
	// Given: a store whose database is already closed
	db := testutil.SetupTestDB(t)
	store := docstore.NewGormStore(db, time.Second)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	// When
	exists, err := store.ExistsWithField(context.Background(), "users", "nickname", "민수")

	// Then: the failure is reported, not turned into "not found"
	assert.Error(t, err)
	assert.False(t, exists)
}
