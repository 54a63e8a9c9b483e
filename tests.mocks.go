package main

import (
	"context"
	"time"
)

// This file contains mocks definitions needed to perform unit tests.

type MockAuthorStorage struct {
	AddFunc    func(ctx context.Context, author Author) (Author, error)
	GetOneFunc func(ctx context.Context, id string) (Author, error)
	UpdateFunc func(ctx context.Context, id string, author Author) (Author, error)
	DeleteFunc func(ctx context.Context, id string) error
	GetAllFunc func(ctx context.Context) ([]Author, error)
}

// Add mocks the behavior of author creation by the repository.
func (m *MockAuthorStorage) Add(ctx context.Context, author Author) (Author, error) {
	return m.AddFunc(ctx, author)
}

// GetOne mocks the behavior of retrieving an author by the repository.
func (m *MockAuthorStorage) GetOne(ctx context.Context, id string) (Author, error) {
	return m.GetOneFunc(ctx, id)
}

// Update mocks the behavior of updating an author by the repository.
func (m *MockAuthorStorage) Update(ctx context.Context, id string, author Author) (Author, error) {
	return m.UpdateFunc(ctx, id, author)
}

// Delete mocks the behavior of deleting an author by the repository.
func (m *MockAuthorStorage) Delete(ctx context.Context, id string) error {
	return m.DeleteFunc(ctx, id)
}

// GetAll mocks the behavior of retrieving all authors by the repository.
func (m *MockAuthorStorage) GetAll(ctx context.Context) ([]Author, error) {
	return m.GetAllFunc(ctx)
}

type MockBookStorage struct {
	AddFunc         func(ctx context.Context, book Book) (Book, error)
	GetOneFunc      func(ctx context.Context, id string) (Book, error)
	UpdateFunc      func(ctx context.Context, id string, book Book) (Book, error)
	DeleteFunc      func(ctx context.Context, id string) error
	GetAllFunc      func(ctx context.Context) ([]Book, error)
	GetByAuthorFunc func(ctx context.Context, authorID string) ([]Book, error)
}

// Add mocks the behavior of book creation by the repository.
func (m *MockBookStorage) Add(ctx context.Context, book Book) (Book, error) {
	return m.AddFunc(ctx, book)
}

// GetOne mocks the behavior of retrieving a book by the repository.
func (m *MockBookStorage) GetOne(ctx context.Context, id string) (Book, error) {
	return m.GetOneFunc(ctx, id)
}

// Update mocks the behavior of updating a book by the repository.
func (m *MockBookStorage) Update(ctx context.Context, id string, book Book) (Book, error) {
	return m.UpdateFunc(ctx, id, book)
}

// Delete mocks the behavior of deleting a book by the repository.
func (m *MockBookStorage) Delete(ctx context.Context, id string) error {
	return m.DeleteFunc(ctx, id)
}

// GetAll mocks the behavior of retrieving all books by the repository.
func (m *MockBookStorage) GetAll(ctx context.Context) ([]Book, error) {
	return m.GetAllFunc(ctx)
}

// GetByAuthor mocks the behavior of retrieving the books of one author.
func (m *MockBookStorage) GetByAuthor(ctx context.Context, authorID string) ([]Book, error) {
	return m.GetByAuthorFunc(ctx, authorID)
}

// MockClocker implements a fake Clocker.
type MockClocker struct {
	MockNow time.Time
}

// NewMockClocker returns a mocked instance with fixed time.
func NewMockClocker() *MockClocker {
	return &MockClocker{time.Date(2023, 0o7, 0o2, 0o0, 0o0, 0o0, 0o00000000, time.UTC)}
}

// Now returns an already defined time to be used as mock. This
// equals to `Sun, 02 Jul 2023 00:00:00 UTC` in time.RFC1123 format.
func (mck *MockClocker) Now() time.Time {
	return mck.MockNow
}

// MockUIDHandler implements a fake UIDHandler.
type MockUIDHandler struct {
	MockedUID string
	Valid     bool
}

// NewMockUIDHandler returns a mocked instance with predictable id.
func NewMockUIDHandler(id string, valid bool) *MockUIDHandler {
	return &MockUIDHandler{MockedUID: id, Valid: valid}
}

// Generate constructs a predictable id to be used as mock.
func (muid *MockUIDHandler) Generate(prefix string) string {
	return prefix + ":" + muid.MockedUID
}

// IsValid mocks IsValid behavior by providing configured status.
func (muid *MockUIDHandler) IsValid(_, _ string) bool {
	return muid.Valid
}

// MockInventory implements a fake InventoryProvider for handler tests.
type MockInventory struct {
	CreateAuthorFunc  func(ctx context.Context, author Author) (Author, error)
	GetOneAuthorFunc  func(ctx context.Context, id string) (Author, error)
	UpdateAuthorFunc  func(ctx context.Context, id string, author Author) (Author, error)
	DeleteAuthorFunc  func(ctx context.Context, id string) error
	GetAllAuthorsFunc func(ctx context.Context) ([]Author, error)
	CreateBookFunc    func(ctx context.Context, book Book) (BookWithAuthor, error)
	GetOneBookFunc    func(ctx context.Context, id string) (BookWithAuthor, error)
	UpdateBookFunc    func(ctx context.Context, id string, book Book) (BookWithAuthor, error)
	DeleteBookFunc    func(ctx context.Context, id string) error
	GetAllBooksFunc   func(ctx context.Context) ([]BookWithAuthor, error)
}

func (m *MockInventory) CreateAuthor(ctx context.Context, author Author) (Author, error) {
	return m.CreateAuthorFunc(ctx, author)
}

func (m *MockInventory) GetOneAuthor(ctx context.Context, id string) (Author, error) {
	return m.GetOneAuthorFunc(ctx, id)
}

func (m *MockInventory) UpdateAuthor(ctx context.Context, id string, author Author) (Author, error) {
	return m.UpdateAuthorFunc(ctx, id, author)
}

func (m *MockInventory) DeleteAuthor(ctx context.Context, id string) error {
	return m.DeleteAuthorFunc(ctx, id)
}

func (m *MockInventory) GetAllAuthors(ctx context.Context) ([]Author, error) {
	return m.GetAllAuthorsFunc(ctx)
}

func (m *MockInventory) CreateBook(ctx context.Context, book Book) (BookWithAuthor, error) {
	return m.CreateBookFunc(ctx, book)
}

func (m *MockInventory) GetOneBook(ctx context.Context, id string) (BookWithAuthor, error) {
	return m.GetOneBookFunc(ctx, id)
}

func (m *MockInventory) UpdateBook(ctx context.Context, id string, book Book) (BookWithAuthor, error) {
	return m.UpdateBookFunc(ctx, id, book)
}

func (m *MockInventory) DeleteBook(ctx context.Context, id string) error {
	return m.DeleteBookFunc(ctx, id)
}

func (m *MockInventory) GetAllBooks(ctx context.Context) ([]BookWithAuthor, error) {
	return m.GetAllBooksFunc(ctx)
}
