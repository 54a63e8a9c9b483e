package main

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

var _ InventoryProvider = (*InventoryService)(nil) // ensure InventoryService implements InventoryProvider.

// InventoryProvider exposes the operations the request handling layer
// calls into. It composes the two stores, the validation rules and the
// author to book referential integrity checks.
type InventoryProvider interface {
	CreateAuthor(ctx context.Context, author Author) (Author, error)
	GetOneAuthor(ctx context.Context, id string) (Author, error)
	UpdateAuthor(ctx context.Context, id string, author Author) (Author, error)
	DeleteAuthor(ctx context.Context, id string) error
	GetAllAuthors(ctx context.Context) ([]Author, error)
	CreateBook(ctx context.Context, book Book) (BookWithAuthor, error)
	GetOneBook(ctx context.Context, id string) (BookWithAuthor, error)
	UpdateBook(ctx context.Context, id string, book Book) (BookWithAuthor, error)
	DeleteBook(ctx context.Context, id string) error
	GetAllBooks(ctx context.Context) ([]BookWithAuthor, error)
}

// InventoryService implements the InventoryProvider interface on top
// of the author and book storages.
type InventoryService struct {
	logger  *zap.Logger
	config  *Config
	clock   Clocker
	authors AuthorStorage
	books   BookStorage
	// mu serializes the sequences which check one store before writing
	// the other one, so an author deletion cannot interleave with a
	// book creation and leave a dangling author reference.
	mu sync.Mutex
}

// NewInventoryService provides a ready to use inventory service.
func NewInventoryService(logger *zap.Logger, config *Config, clock Clocker, authors AuthorStorage, books BookStorage) *InventoryService {
	return &InventoryService{
		logger:  logger,
		config:  config,
		clock:   clock,
		authors: authors,
		books:   books,
	}
}

// CreateAuthor validates the submitted fields then stores a new author.
func (is *InventoryService) CreateAuthor(ctx context.Context, author Author) (Author, error) {
	if errs := ValidateAuthor(author, is.clock.Now()); len(errs) > 0 {
		return Author{}, NewValidationError(errs)
	}
	return is.authors.Add(ctx, author)
}

// GetOneAuthor retrieves a single author by its id.
func (is *InventoryService) GetOneAuthor(ctx context.Context, id string) (Author, error) {
	return is.authors.GetOne(ctx, id)
}

// UpdateAuthor validates the submitted fields then replaces the stored
// author record. The record must already exist.
func (is *InventoryService) UpdateAuthor(ctx context.Context, id string, author Author) (Author, error) {
	if _, err := is.authors.GetOne(ctx, id); err != nil {
		return Author{}, err
	}
	if errs := ValidateAuthor(author, is.clock.Now()); len(errs) > 0 {
		return Author{}, NewValidationError(errs)
	}
	return is.authors.Update(ctx, id, author)
}

// DeleteAuthor removes an author which has no registered book. The
// dependents check and the removal run under the service lock so no
// book referencing this author can appear in between.
func (is *InventoryService) DeleteAuthor(ctx context.Context, id string) error {
	is.mu.Lock()
	defer is.mu.Unlock()

	if _, err := is.authors.GetOne(ctx, id); err != nil {
		return err
	}
	dependents, err := is.books.GetByAuthor(ctx, id)
	if err != nil {
		return err
	}
	if len(dependents) > 0 {
		return &DependentBooksError{AuthorID: id, Count: len(dependents)}
	}
	return is.authors.Delete(ctx, id)
}

// GetAllAuthors retrieves all stored authors in insertion order.
func (is *InventoryService) GetAllAuthors(ctx context.Context) ([]Author, error) {
	return is.authors.GetAll(ctx)
}

// CreateBook validates the submitted fields, resolves the referenced
// author then stores a new book. The author resolution and the write
// run under the service lock so the reference cannot dangle at birth.
func (is *InventoryService) CreateBook(ctx context.Context, book Book) (BookWithAuthor, error) {
	if errs := ValidateBook(book, is.clock.Now()); len(errs) > 0 {
		return BookWithAuthor{}, NewValidationError(errs)
	}

	is.mu.Lock()
	defer is.mu.Unlock()

	author, err := is.authors.GetOne(ctx, book.AuthorID)
	if err == ErrAuthorNotFound {
		return BookWithAuthor{}, &UnknownAuthorError{AuthorID: book.AuthorID}
	}
	if err != nil {
		return BookWithAuthor{}, err
	}

	created, err := is.books.Add(ctx, book)
	if err != nil {
		return BookWithAuthor{}, err
	}
	return BookWithAuthor{Book: created, Author: &author}, nil
}

// GetOneBook retrieves a single book by its id with its author
// attached. A book whose author vanished keeps a null author rather
// than failing the read.
func (is *InventoryService) GetOneBook(ctx context.Context, id string) (BookWithAuthor, error) {
	book, err := is.books.GetOne(ctx, id)
	if err != nil {
		return BookWithAuthor{}, err
	}
	return is.resolveAuthor(ctx, book), nil
}

// UpdateBook validates the submitted fields, resolves the referenced
// author then replaces the stored book record. The record must already
// exist. Resolution and write run under the service lock.
func (is *InventoryService) UpdateBook(ctx context.Context, id string, book Book) (BookWithAuthor, error) {
	if _, err := is.books.GetOne(ctx, id); err != nil {
		return BookWithAuthor{}, err
	}
	if errs := ValidateBook(book, is.clock.Now()); len(errs) > 0 {
		return BookWithAuthor{}, NewValidationError(errs)
	}

	is.mu.Lock()
	defer is.mu.Unlock()

	author, err := is.authors.GetOne(ctx, book.AuthorID)
	if err == ErrAuthorNotFound {
		return BookWithAuthor{}, &UnknownAuthorError{AuthorID: book.AuthorID}
	}
	if err != nil {
		return BookWithAuthor{}, err
	}

	updated, err := is.books.Update(ctx, id, book)
	if err != nil {
		return BookWithAuthor{}, err
	}
	return BookWithAuthor{Book: updated, Author: &author}, nil
}

// DeleteBook removes a book by its id. Nothing depends on books so
// the removal is unconditional once the record exists.
func (is *InventoryService) DeleteBook(ctx context.Context, id string) error {
	return is.books.Delete(ctx, id)
}

// GetAllBooks retrieves all stored books in insertion order, each with
// its author attached or null when the reference does not resolve.
func (is *InventoryService) GetAllBooks(ctx context.Context) ([]BookWithAuthor, error) {
	books, err := is.books.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	results := make([]BookWithAuthor, 0, len(books))
	for _, book := range books {
		results = append(results, is.resolveAuthor(ctx, book))
	}
	return results, nil
}

// resolveAuthor attaches the referenced author to a book read model.
// An unresolved reference yields a null author on purpose, reads stay
// tolerant while writes stay strict.
func (is *InventoryService) resolveAuthor(ctx context.Context, book Book) BookWithAuthor {
	author, err := is.authors.GetOne(ctx, book.AuthorID)
	if err != nil {
		if err != ErrAuthorNotFound {
			is.logger.Error("service: failed to resolve book author",
				zap.String("book.id", book.ID),
				zap.String("author.id", book.AuthorID),
				zap.Error(err),
			)
		}
		return BookWithAuthor{Book: book, Author: nil}
	}
	return BookWithAuthor{Book: book, Author: &author}
}
