package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"grandhotel/infras/otel/mocks"
	"grandhotel/infras/sqlite"

	"github.com/stretchr/testify/assert"
)

type entry struct {
	ID    string `json:"id"`
	Price int    `json:"price"`
}

func TestMirror_StoreLoadRemove(t *testing.T) {
	mirror, err := sqlite.Open("", mocks.NewOtel())
	assert.NoError(t, err)

	defer mirror.Close()

	ctx := context.Background()

	var got []entry

	found, err := mirror.Load(ctx, sqlite.CollectionBookings, &got)
	assert.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, got)

	assert.NoError(t, mirror.Store(ctx, sqlite.CollectionBookings, []entry{{ID: "a", Price: 5625}}))
	assert.NoError(t, mirror.Store(ctx, sqlite.CollectionBookings, []entry{{ID: "b", Price: 1625}, {ID: "a", Price: 5625}}))

	found, err = mirror.Load(ctx, sqlite.CollectionBookings, &got)
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []entry{{ID: "b", Price: 1625}, {ID: "a", Price: 5625}}, got)

	assert.NoError(t, mirror.Remove(ctx, sqlite.CollectionBookings))

	found, err = mirror.Load(ctx, sqlite.CollectionBookings, &got)
	assert.NoError(t, err)
	assert.False(t, found)
}

func TestMirror_PersistsAcrossOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mirror.db")
	ctx := context.Background()

	first, err := sqlite.Open(path, mocks.NewOtel())
	assert.NoError(t, err)
	assert.NoError(t, first.Store(ctx, sqlite.CollectionRegisteredUser, entry{ID: "u-1"}))
	assert.NoError(t, first.Close())

	second, err := sqlite.Open(path, mocks.NewOtel())
	assert.NoError(t, err)

	defer second.Close()

	var got entry

	found, err := second.Load(ctx, sqlite.CollectionRegisteredUser, &got)
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "u-1", got.ID)
}
