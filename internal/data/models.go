// internal/data/models.go
package data

import (
	"cmp"
	"slices"
	"sync"
)

// Models is a top-level container that groups all record stores together.
// It is passed around the application via applicationDependencies so every
// handler reaches the same store instances without any package-level state.
type Models struct {
	Books *BookStore // Handles all operations on book records
}

// NewModels constructs a Models value backed by fresh, empty stores.
// Call this once during application startup (or once per test).
func NewModels() Models {
	return Models{
		Books: NewBookStore(),
	}
}

// BookStore is the in-memory collection of book records keyed by id.
//
// Reads take the shared lock and mutations take the exclusive lock, so every
// method is atomic on its own and no reader ever sees a half-applied update.
// Records are stored and returned by value; callers only ever hold copies.
type BookStore struct {
	mu     sync.RWMutex
	books  map[int64]Book
	nextID int64 // Next id to hand out; only ever increases
}

// NewBookStore returns an empty store whose first record will get id 1.
func NewBookStore() *BookStore {
	return &BookStore{
		books:  make(map[int64]Book),
		nextID: 1,
	}
}

// Create assigns the next id to a record built from input, stores it and
// returns the stored copy. Input is expected to be validated already.
func (s *BookStore) Create(input BookInput) Book {
	available := true
	if input.Available != nil {
		available = *input.Available
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	book := Book{
		ID:        s.nextID,
		Title:     input.Title,
		Author:    input.Author,
		Price:     input.Price,
		Available: available,
	}
	s.nextID++
	s.books[book.ID] = book

	return book
}

// GetAll returns every record in insertion order. Ids are handed out in
// increasing order, so sorting by id reproduces insertion order. The result
// is never nil.
func (s *BookStore) GetAll() []Book {
	s.mu.RLock()
	books := make([]Book, 0, len(s.books))
	for _, b := range s.books {
		books = append(books, b)
	}
	s.mu.RUnlock()

	slices.SortFunc(books, func(a, b Book) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return books
}

// Get returns the record with the given id and true, or a zero Book and
// false when no such record exists.
func (s *BookStore) Get(id int64) (Book, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	book, ok := s.books[id]
	return book, ok
}

// Update merges patch onto the record with the given id and returns the new
// stored value. It returns false, and creates nothing, when the id is unknown.
func (s *BookStore) Update(id int64, patch BookPatch) (Book, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.books[id]
	if !ok {
		return Book{}, false
	}

	updated := patch.apply(current)
	updated.ID = current.ID
	s.books[id] = updated

	return updated, true
}

// Delete removes the record with the given id and reports whether anything
// was removed. The id is never handed out again.
func (s *BookStore) Delete(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.books[id]; !ok {
		return false
	}
	delete(s.books, id)
	return true
}

// Exists reports whether a record with the given id is currently stored.
func (s *BookStore) Exists(id int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.books[id]
	return ok
}

// Count returns the number of records currently stored.
func (s *BookStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.books)
}
