package main

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// Machine-readable rule codes carried by field errors so the boundary
// layer never has to match on message text.
const (
	RuleRequired      = "required"
	RuleTooLong       = "too_long"
	RuleInvalidYear   = "invalid_year"
	RuleOutOfRange    = "out_of_range"
	RuleNotPositive   = "not_positive"
	RuleInvalidFormat = "invalid_format"
)

// minYear is the lowest year accepted for birth and publication years.
const minYear = 1000

var isbnPattern = regexp.MustCompile(`^[\d-]{10,17}$`)

// FieldError describes one violated rule on one submitted field.
type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationError carries the full ordered list of rule violations
// found on a submitted entity payload.
type ValidationError struct {
	Fields []FieldError
}

// Error joins all violation messages into a single readable string.
func (ve *ValidationError) Error() string {
	messages := make([]string, 0, len(ve.Fields))
	for _, fe := range ve.Fields {
		messages = append(messages, fe.Message)
	}
	return "invalid data: " + strings.Join(messages, ", ")
}

// ValidateAuthor checks every author rule and accumulates all
// violations rather than stopping at the first one.
func ValidateAuthor(author Author, now time.Time) []FieldError {
	var errs []FieldError

	if strings.TrimSpace(author.Name) == "" {
		errs = append(errs, FieldError{"name", RuleRequired, "name is required"})
	} else if utf8.RuneCountInString(author.Name) > 100 {
		errs = append(errs, FieldError{"name", RuleTooLong, "name must have at most 100 characters"})
	}

	if author.Biography != "" && utf8.RuneCountInString(author.Biography) > 1000 {
		errs = append(errs, FieldError{"biography", RuleTooLong, "biography must have at most 1000 characters"})
	}

	if author.BirthYear != "" && !isValidYear(author.BirthYear, now) {
		errs = append(errs, FieldError{"birthYear", RuleInvalidYear, "birth year must be a valid year"})
	}

	if author.Nationality != "" && utf8.RuneCountInString(author.Nationality) > 50 {
		errs = append(errs, FieldError{"nationality", RuleTooLong, "nationality must have at most 50 characters"})
	}

	return errs
}

// ValidateBook checks every book rule and accumulates all violations
// rather than stopping at the first one. The referenced author
// existence is not checked here, that belongs to the inventory service.
func ValidateBook(book Book, now time.Time) []FieldError {
	var errs []FieldError

	if strings.TrimSpace(book.Title) == "" {
		errs = append(errs, FieldError{"title", RuleRequired, "title is required"})
	} else if utf8.RuneCountInString(book.Title) > 200 {
		errs = append(errs, FieldError{"title", RuleTooLong, "title must have at most 200 characters"})
	}

	if strings.TrimSpace(book.Summary) == "" {
		errs = append(errs, FieldError{"summary", RuleRequired, "summary is required"})
	} else if utf8.RuneCountInString(book.Summary) > 1000 {
		errs = append(errs, FieldError{"summary", RuleTooLong, "summary must have at most 1000 characters"})
	}

	if strings.TrimSpace(book.AuthorID) == "" {
		errs = append(errs, FieldError{"authorId", RuleRequired, "author is required"})
	}

	if book.PublishedYear != "" && !isValidYear(book.PublishedYear, now) {
		errs = append(errs, FieldError{"publishedYear", RuleInvalidYear, "published year must be a valid year"})
	}

	if book.Genre != "" && utf8.RuneCountInString(book.Genre) > 50 {
		errs = append(errs, FieldError{"genre", RuleTooLong, "genre must have at most 50 characters"})
	}

	// Quality accepts free text. The 1 to 5 range only applies when the
	// submitted value parses as a number.
	if book.Quality != "" {
		if q, err := strconv.ParseFloat(book.Quality, 64); err == nil && (q < 1 || q > 5) {
			errs = append(errs, FieldError{"quality", RuleOutOfRange, "quality must be between 1 and 5"})
		}
	}

	if book.Pages != "" {
		if pages, err := strconv.Atoi(book.Pages); err != nil || pages <= 0 {
			errs = append(errs, FieldError{"pages", RuleNotPositive, "pages must be a positive number"})
		}
	}

	if book.ISBN != "" && !isbnPattern.MatchString(stripWhitespace(book.ISBN)) {
		errs = append(errs, FieldError{"isbn", RuleInvalidFormat, "isbn must have a valid format"})
	}

	return errs
}

// isValidYear reports whether the submitted text parses as a year
// between minYear and the current year.
func isValidYear(value string, now time.Time) bool {
	year, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return false
	}
	return year >= minYear && year <= now.Year()
}

// stripWhitespace removes every whitespace rune from the given string.
func stripWhitespace(s string) string {
	return strings.Join(strings.Fields(s), "")
}

// NewValidationError wraps the accumulated field errors.
func NewValidationError(fields []FieldError) *ValidationError {
	return &ValidationError{Fields: fields}
}

// UnknownAuthorError reports a submitted authorId which does not
// resolve to a stored author. It is a validation-class failure about
// the submitted relationship, not a missing addressed resource.
type UnknownAuthorError struct {
	AuthorID string
}

func (e *UnknownAuthorError) Error() string {
	return fmt.Sprintf("author %s does not exist", e.AuthorID)
}

// DependentBooksError reports an author deletion refused because
// books still reference the author. Count carries the exact number
// of dependents.
type DependentBooksError struct {
	AuthorID string
	Count    int
}

func (e *DependentBooksError) Error() string {
	return fmt.Sprintf("author %s still has %d book(s) registered", e.AuthorID, e.Count)
}
