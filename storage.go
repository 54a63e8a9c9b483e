package main

import "context"

// AuthorStorage defines possible operations on author records.
type AuthorStorage interface {
	Add(ctx context.Context, author Author) (Author, error)
	GetOne(ctx context.Context, id string) (Author, error)
	Update(ctx context.Context, id string, author Author) (Author, error)
	Delete(ctx context.Context, id string) error
	GetAll(ctx context.Context) ([]Author, error)
}

// BookStorage defines possible operations on book records.
type BookStorage interface {
	Add(ctx context.Context, book Book) (Book, error)
	GetOne(ctx context.Context, id string) (Book, error)
	Update(ctx context.Context, id string, book Book) (Book, error)
	Delete(ctx context.Context, id string) error
	GetAll(ctx context.Context) ([]Book, error)
	GetByAuthor(ctx context.Context, authorID string) ([]Book, error)
}
