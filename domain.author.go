package main

import "time"

// Author represents an author entity as stored in the inventory.
// Id and timestamps are assigned by the storage layer at creation,
// never by the caller. BirthYear is kept as submitted text and only
// parsed during validation.
type Author struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Biography   string    `json:"biography,omitempty"`
	BirthYear   string    `json:"birthYear,omitempty"`
	Nationality string    `json:"nationality,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
