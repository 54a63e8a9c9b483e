package main

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// TestSeeder_Seed ensures the sample data passes the same validation
// and referential checks as any client submitted data.
func TestSeeder_Seed(t *testing.T) {
	service := newTestService()
	seeder := NewSeeder(zap.NewNop(), service)

	require.NoError(t, seeder.Seed(context.TODO()))

	authors, err := service.GetAllAuthors(context.TODO())
	require.NoError(t, err)
	assert.Len(t, authors, 3)

	books, err := service.GetAllBooks(context.TODO())
	require.NoError(t, err)
	require.Len(t, books, 3)
	for _, book := range books {
		require.NotNil(t, book.Author)
	}
	assert.Equal(t, "Machado de Assis", books[0].Author.Name)
	assert.Equal(t, "Dom Casmurro", books[0].Title)
}

// TestSeeder_Seed_Failure ensures the seeder stops and reports the
// first creation failure.
func TestSeeder_Seed_Failure(t *testing.T) {
	boom := errors.New("boom")
	mockInventory := &MockInventory{
		CreateAuthorFunc: func(ctx context.Context, author Author) (Author, error) {
			return Author{}, boom
		},
	}
	seeder := NewSeeder(zap.NewNop(), mockInventory)

	err := seeder.Seed(context.TODO())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}
