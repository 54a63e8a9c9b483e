package main

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Ensure both storage views satisfy their contracts.
var (
	_ AuthorStorage = (*memoryAuthorStorage)(nil)
	_ BookStorage   = (*memoryBookStorage)(nil)
)

// memoryInventory is a process-local storage holding authors and books
// in insertion order. Both collections live behind one lock so readers
// and writers spanning the two entities always observe a consistent
// view. Record ids and timestamps are assigned here at insertion time.
type memoryInventory struct {
	logger  *zap.Logger
	clock   Clocker
	ids     UIDHandler
	mu      sync.RWMutex
	authors []Author
	books   []Book
}

// NewMemoryInventory provides an empty ready to use in-memory storage.
func NewMemoryInventory(logger *zap.Logger, clock Clocker, ids UIDHandler) *memoryInventory {
	return &memoryInventory{
		logger:  logger,
		clock:   clock,
		ids:     ids,
		authors: []Author{},
		books:   []Book{},
	}
}

// Authors exposes the author records view of the inventory.
func (mi *memoryInventory) Authors() AuthorStorage {
	return &memoryAuthorStorage{inventory: mi}
}

// Books exposes the book records view of the inventory.
func (mi *memoryInventory) Books() BookStorage {
	return &memoryBookStorage{inventory: mi}
}

// memoryAuthorStorage implements AuthorStorage on top of the shared inventory.
type memoryAuthorStorage struct {
	inventory *memoryInventory
}

// Add inserts a new author record. The id and both timestamps are set
// here, from a single clock read so createdAt and updatedAt are equal.
func (mas *memoryAuthorStorage) Add(_ context.Context, author Author) (Author, error) {
	mi := mas.inventory
	mi.mu.Lock()
	defer mi.mu.Unlock()
	now := mi.clock.Now()
	author.ID = mi.ids.Generate(AuthorIDPrefix)
	author.CreatedAt = now
	author.UpdatedAt = now
	mi.authors = append(mi.authors, author)
	return author, nil
}

// GetOne retrieves an author record based on its id.
func (mas *memoryAuthorStorage) GetOne(_ context.Context, id string) (Author, error) {
	mi := mas.inventory
	mi.mu.RLock()
	defer mi.mu.RUnlock()
	for _, author := range mi.authors {
		if author.ID == id {
			return author, nil
		}
	}
	return Author{}, ErrAuthorNotFound
}

// Update replaces the stored author fields with the submitted ones.
// The record id and creation timestamp are never overwritten.
func (mas *memoryAuthorStorage) Update(_ context.Context, id string, author Author) (Author, error) {
	mi := mas.inventory
	mi.mu.Lock()
	defer mi.mu.Unlock()
	for i := range mi.authors {
		if mi.authors[i].ID != id {
			continue
		}
		author.ID = mi.authors[i].ID
		author.CreatedAt = mi.authors[i].CreatedAt
		author.UpdatedAt = mi.clock.Now()
		mi.authors[i] = author
		return author, nil
	}
	return Author{}, ErrAuthorNotFound
}

// Delete removes an author record based on its id.
func (mas *memoryAuthorStorage) Delete(_ context.Context, id string) error {
	mi := mas.inventory
	mi.mu.Lock()
	defer mi.mu.Unlock()
	for i := range mi.authors {
		if mi.authors[i].ID == id {
			mi.authors = append(mi.authors[:i], mi.authors[i+1:]...)
			return nil
		}
	}
	return ErrAuthorNotFound
}

// GetAll retrieves a snapshot of all author records in insertion order.
func (mas *memoryAuthorStorage) GetAll(_ context.Context) ([]Author, error) {
	mi := mas.inventory
	mi.mu.RLock()
	defer mi.mu.RUnlock()
	authors := make([]Author, len(mi.authors))
	copy(authors, mi.authors)
	return authors, nil
}

// memoryBookStorage implements BookStorage on top of the shared inventory.
type memoryBookStorage struct {
	inventory *memoryInventory
}

// Add inserts a new book record. The id and both timestamps are set
// here, from a single clock read so createdAt and updatedAt are equal.
func (mbs *memoryBookStorage) Add(_ context.Context, book Book) (Book, error) {
	mi := mbs.inventory
	mi.mu.Lock()
	defer mi.mu.Unlock()
	now := mi.clock.Now()
	book.ID = mi.ids.Generate(BookIDPrefix)
	book.CreatedAt = now
	book.UpdatedAt = now
	mi.books = append(mi.books, book)
	return book, nil
}

// GetOne retrieves a book record based on its id.
func (mbs *memoryBookStorage) GetOne(_ context.Context, id string) (Book, error) {
	mi := mbs.inventory
	mi.mu.RLock()
	defer mi.mu.RUnlock()
	for _, book := range mi.books {
		if book.ID == id {
			return book, nil
		}
	}
	return Book{}, ErrBookNotFound
}

// Update replaces the stored book fields with the submitted ones.
// The record id and creation timestamp are never overwritten.
func (mbs *memoryBookStorage) Update(_ context.Context, id string, book Book) (Book, error) {
	mi := mbs.inventory
	mi.mu.Lock()
	defer mi.mu.Unlock()
	for i := range mi.books {
		if mi.books[i].ID != id {
			continue
		}
		book.ID = mi.books[i].ID
		book.CreatedAt = mi.books[i].CreatedAt
		book.UpdatedAt = mi.clock.Now()
		mi.books[i] = book
		return book, nil
	}
	return Book{}, ErrBookNotFound
}

// Delete removes a book record based on its id.
func (mbs *memoryBookStorage) Delete(_ context.Context, id string) error {
	mi := mbs.inventory
	mi.mu.Lock()
	defer mi.mu.Unlock()
	for i := range mi.books {
		if mi.books[i].ID == id {
			mi.books = append(mi.books[:i], mi.books[i+1:]...)
			return nil
		}
	}
	return ErrBookNotFound
}

// GetAll retrieves a snapshot of all book records in insertion order.
func (mbs *memoryBookStorage) GetAll(_ context.Context) ([]Book, error) {
	mi := mbs.inventory
	mi.mu.RLock()
	defer mi.mu.RUnlock()
	books := make([]Book, len(mi.books))
	copy(books, mi.books)
	return books, nil
}

// GetByAuthor retrieves all book records referencing the given author id.
func (mbs *memoryBookStorage) GetByAuthor(_ context.Context, authorID string) ([]Book, error) {
	mi := mbs.inventory
	mi.mu.RLock()
	defer mi.mu.RUnlock()
	books := []Book{}
	for _, book := range mi.books {
		if book.AuthorID == authorID {
			books = append(books, book)
		}
	}
	return books, nil
}
