// Package data provides the book data model and the in-memory record store
// for the bookstore API.
package data

import (
	"strings"

	"github.com/aoideee/bookstore-api/internal/validator"
	"golang.org/x/text/unicode/norm"
)

// Field bounds enforced on every title and author accepted by the API.
const (
	MaxTitleLength  = 200
	MaxAuthorLength = 100
)

// Book represents a single book record held by the store.
type Book struct {
	ID        int64   `json:"id"`        // Assigned by the store, never reused
	Title     string  `json:"title"`     // Title of the book
	Author    string  `json:"author"`    // Author name
	Price     float64 `json:"price"`     // Price, always greater than zero
	Available bool    `json:"available"` // Whether the book can be bought
}

// BookInput holds the fields a client must supply when creating a new book.
// It has no ID field: the store is the only source of ids, and a body
// carrying "id" fails to decode as an unknown key.
type BookInput struct {
	Title     string  `json:"title"`
	Author    string  `json:"author"`
	Price     float64 `json:"price"`
	Available *bool   `json:"available"` // nil means "not sent", defaults to true
}

// BookPatch holds the fields a client may supply when updating a book.
// Each field is an Optional so an omitted key leaves the stored value alone
// while an explicit zero value ("", 0, false) replaces it.
type BookPatch struct {
	Title     Optional[string]  `json:"title"`
	Author    Optional[string]  `json:"author"`
	Price     Optional[float64] `json:"price"`
	Available Optional[bool]    `json:"available"`
}

// normalizeText puts s into Unicode NFC form and trims surrounding
// whitespace, so lengths are counted on a canonical representation.
func normalizeText(s string) string {
	return strings.TrimSpace(norm.NFC.String(s))
}

// Normalize canonicalises the text fields of the input in place.
func (in *BookInput) Normalize() {
	in.Title = normalizeText(in.Title)
	in.Author = normalizeText(in.Author)
}

// Normalize canonicalises the text fields that were sent in the patch.
func (p *BookPatch) Normalize() {
	if p.Title.Present() {
		p.Title.Value = normalizeText(p.Title.Value)
	}
	if p.Author.Present() {
		p.Author.Value = normalizeText(p.Author.Value)
	}
}

// apply returns b with every field present in the patch replaced.
// b is a value, so the caller's copy is never touched.
func (p BookPatch) apply(b Book) Book {
	if p.Title.Present() {
		b.Title = p.Title.Value
	}
	if p.Author.Present() {
		b.Author = p.Author.Value
	}
	if p.Price.Present() {
		b.Price = p.Price.Value
	}
	if p.Available.Present() {
		b.Available = p.Available.Value
	}
	return b
}

func validateTitle(v *validator.Validator, title string) {
	v.Check(title != "", "title", "must be provided")
	v.Check(validator.MaxChars(title, MaxTitleLength), "title", "must not be more than 200 characters long")
}

func validateAuthor(v *validator.Validator, author string) {
	v.Check(author != "", "author", "must be provided")
	v.Check(validator.MaxChars(author, MaxAuthorLength), "author", "must not be more than 100 characters long")
}

func validatePrice(v *validator.Validator, price float64) {
	v.Check(price > 0, "price", "must be greater than zero")
}

// ValidateBookInput records every constraint violation of a create payload.
func ValidateBookInput(v *validator.Validator, in BookInput) {
	validateTitle(v, in.Title)
	validateAuthor(v, in.Author)
	validatePrice(v, in.Price)
}

// ValidateBookPatch checks only the fields that were sent. A field sent as
// null is rejected: no book field has a meaningful "cleared" state.
func ValidateBookPatch(v *validator.Validator, p BookPatch) {
	v.Check(!p.Title.Null, "title", "must not be null")
	v.Check(!p.Author.Null, "author", "must not be null")
	v.Check(!p.Price.Null, "price", "must not be null")
	v.Check(!p.Available.Null, "available", "must not be null")

	if p.Title.Present() {
		validateTitle(v, p.Title.Value)
	}
	if p.Author.Present() {
		validateAuthor(v, p.Author.Value)
	}
	if p.Price.Present() {
		validatePrice(v, p.Price.Value)
	}
}
