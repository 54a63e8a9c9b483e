package main

import "time"

// Book represents a book entity as stored in the inventory. A book
// always belongs to exactly one author through AuthorID. Year-like
// and numeric-ish fields stay as submitted text and are parsed during
// validation only.
type Book struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Summary       string    `json:"summary"`
	AuthorID      string    `json:"authorId"`
	PublishedYear string    `json:"publishedYear,omitempty"`
	Genre         string    `json:"genre,omitempty"`
	Quality       string    `json:"quality,omitempty"`
	Pages         string    `json:"pages,omitempty"`
	ISBN          string    `json:"isbn,omitempty"`
	Language      string    `json:"language,omitempty"`
	Publisher     string    `json:"publisher,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// BookWithAuthor is the read model served to clients. The author the
// book references is resolved and attached, or explicitly null when
// it cannot be resolved anymore.
type BookWithAuthor struct {
	Book
	Author *Author `json:"author"`
}
