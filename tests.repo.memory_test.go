package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newTestInventory returns an empty memory inventory with a fixed
// clock and a real uuid generator.
func newTestInventory() *memoryInventory {
	return NewMemoryInventory(zap.NewNop(), NewMockClocker(), NewIDsHandler())
}

// TestMemoryInventory_AddAuthor ensures ids and timestamps are
// assigned at insertion and that both timestamps start equal.
func TestMemoryInventory_AddAuthor(t *testing.T) {
	authors := newTestInventory().Authors()

	created, err := authors.Add(context.TODO(), Author{Name: "Machado de Assis", Nationality: "Brazilian"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.True(t, NewIDsHandler().IsValid(created.ID, AuthorIDPrefix))
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)
	assert.Equal(t, NewMockClocker().Now(), created.CreatedAt)

	found, err := authors.GetOne(context.TODO(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, found)
}

// TestMemoryInventory_GetOneAuthor_Missing ensures the sentinel is returned.
func TestMemoryInventory_GetOneAuthor_Missing(t *testing.T) {
	authors := newTestInventory().Authors()
	_, err := authors.GetOne(context.TODO(), "a:does-not-exist")
	assert.ErrorIs(t, err, ErrAuthorNotFound)
}

// TestMemoryInventory_UpdateAuthor ensures the merge keeps the record
// identity and creation time while refreshing the update time.
func TestMemoryInventory_UpdateAuthor(t *testing.T) {
	inventory := newTestInventory()
	authors := inventory.Authors()

	created, err := authors.Add(context.TODO(), Author{Name: "Clarice"})
	require.NoError(t, err)

	updated, err := authors.Update(context.TODO(), created.ID, Author{
		ID:   "a:attempt-to-overwrite",
		Name: "Clarice Lispector",
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, "Clarice Lispector", updated.Name)

	_, err = authors.Update(context.TODO(), "a:does-not-exist", Author{Name: "Nobody"})
	assert.ErrorIs(t, err, ErrAuthorNotFound)
}

// TestMemoryInventory_DeleteAuthor ensures removal and the not found case.
func TestMemoryInventory_DeleteAuthor(t *testing.T) {
	authors := newTestInventory().Authors()

	created, err := authors.Add(context.TODO(), Author{Name: "Paulo Coelho"})
	require.NoError(t, err)

	require.NoError(t, authors.Delete(context.TODO(), created.ID))
	_, err = authors.GetOne(context.TODO(), created.ID)
	assert.ErrorIs(t, err, ErrAuthorNotFound)
	assert.ErrorIs(t, authors.Delete(context.TODO(), created.ID), ErrAuthorNotFound)
}

// TestMemoryInventory_GetAllAuthors ensures insertion order and that
// the returned sequence is a snapshot, not a live view.
func TestMemoryInventory_GetAllAuthors(t *testing.T) {
	authors := newTestInventory().Authors()

	first, err := authors.Add(context.TODO(), Author{Name: "First"})
	require.NoError(t, err)
	second, err := authors.Add(context.TODO(), Author{Name: "Second"})
	require.NoError(t, err)

	all, err := authors.GetAll(context.TODO())
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, first.ID, all[0].ID)
	assert.Equal(t, second.ID, all[1].ID)

	// Mutating the snapshot must not touch the stored records.
	all[0].Name = "Mutated"
	again, err := authors.GetAll(context.TODO())
	require.NoError(t, err)
	assert.Equal(t, "First", again[0].Name)
}

// TestMemoryInventory_Books covers the book records view basics.
func TestMemoryInventory_Books(t *testing.T) {
	books := newTestInventory().Books()

	created, err := books.Add(context.TODO(), Book{Title: "Dom Casmurro", Summary: "A novel.", AuthorID: "a:x"})
	require.NoError(t, err)
	assert.True(t, NewIDsHandler().IsValid(created.ID, BookIDPrefix))
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	found, err := books.GetOne(context.TODO(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, found)

	updated, err := books.Update(context.TODO(), created.ID, Book{Title: "Dom Casmurro", Summary: "Updated.", AuthorID: "a:x"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, "Updated.", updated.Summary)

	require.NoError(t, books.Delete(context.TODO(), created.ID))
	_, err = books.GetOne(context.TODO(), created.ID)
	assert.ErrorIs(t, err, ErrBookNotFound)
	assert.ErrorIs(t, books.Delete(context.TODO(), created.ID), ErrBookNotFound)
}

// TestMemoryInventory_GetByAuthor ensures only the books referencing
// the given author come back, in insertion order.
func TestMemoryInventory_GetByAuthor(t *testing.T) {
	books := newTestInventory().Books()

	one, err := books.Add(context.TODO(), Book{Title: "One", Summary: "s", AuthorID: "a:1"})
	require.NoError(t, err)
	_, err = books.Add(context.TODO(), Book{Title: "Two", Summary: "s", AuthorID: "a:2"})
	require.NoError(t, err)
	three, err := books.Add(context.TODO(), Book{Title: "Three", Summary: "s", AuthorID: "a:1"})
	require.NoError(t, err)

	results, err := books.GetByAuthor(context.TODO(), "a:1")
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, one.ID, results[0].ID)
	assert.Equal(t, three.ID, results[1].ID)

	none, err := books.GetByAuthor(context.TODO(), "a:unknown")
	require.NoError(t, err)
	assert.Empty(t, none)
}
