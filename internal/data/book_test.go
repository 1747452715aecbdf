package data

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/aoideee/bookstore-api/internal/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalUnmarshal(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantSet     bool
		wantNull    bool
		wantPresent bool
		wantValue   bool
	}{
		{"absent", `{}`, false, false, false, false},
		{"null", `{"available": null}`, true, true, false, false},
		{"false", `{"available": false}`, true, false, true, false},
		{"true", `{"available": true}`, true, false, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var patch BookPatch
			require.NoError(t, json.Unmarshal([]byte(tt.body), &patch))

			assert.Equal(t, tt.wantSet, patch.Available.Set)
			assert.Equal(t, tt.wantNull, patch.Available.Null)
			assert.Equal(t, tt.wantPresent, patch.Available.Present())
			assert.Equal(t, tt.wantValue, patch.Available.Value)
		})
	}
}

func TestOptionalUnmarshalTypeMismatch(t *testing.T) {
	var patch BookPatch
	err := json.Unmarshal([]byte(`{"price": "cheap"}`), &patch)
	assert.Error(t, err)
}

func TestBookPatchApply(t *testing.T) {
	original := Book{ID: 1, Title: "Clean Code", Author: "Robert C. Martin", Price: 29.99, Available: true}

	t.Run("empty patch changes nothing", func(t *testing.T) {
		assert.Equal(t, original, BookPatch{}.apply(original))
	})

	t.Run("only sent fields are replaced", func(t *testing.T) {
		got := BookPatch{Price: Some(19.99)}.apply(original)

		want := original
		want.Price = 19.99
		assert.Equal(t, want, got)
	})

	t.Run("explicit zero value replaces", func(t *testing.T) {
		got := BookPatch{Available: Some(false)}.apply(original)
		assert.False(t, got.Available)
		assert.Equal(t, original.Title, got.Title)
	})

	t.Run("null fields are ignored", func(t *testing.T) {
		got := BookPatch{Title: Optional[string]{Set: true, Null: true}}.apply(original)
		assert.Equal(t, original, got)
	})
}

func TestNormalize(t *testing.T) {
	// "e" followed by a combining acute accent composes to a single rune.
	in := BookInput{Title: "  Les Mise\u0301rables ", Author: "\tVictor Hugo\n"}
	in.Normalize()

	assert.Equal(t, "Les Mis\u00e9rables", in.Title)
	assert.Equal(t, "Victor Hugo", in.Author)

	patch := BookPatch{Title: Some(" Dune "), Author: Optional[string]{Set: true, Null: true}}
	patch.Normalize()

	assert.Equal(t, "Dune", patch.Title.Value)
	assert.True(t, patch.Author.Null)
}

func TestValidateBookInput(t *testing.T) {
	tests := []struct {
		name       string
		input      BookInput
		wantErrors map[string]string
	}{
		{
			name:  "valid",
			input: BookInput{Title: "Dune", Author: "Frank Herbert", Price: 15.0},
		},
		{
			name:  "everything missing",
			input: BookInput{},
			wantErrors: map[string]string{
				"title":  "must be provided",
				"author": "must be provided",
				"price":  "must be greater than zero",
			},
		},
		{
			name:       "negative price",
			input:      BookInput{Title: "Dune", Author: "Frank Herbert", Price: -1},
			wantErrors: map[string]string{"price": "must be greater than zero"},
		},
		{
			name:       "title too long",
			input:      BookInput{Title: strings.Repeat("a", MaxTitleLength+1), Author: "Frank Herbert", Price: 1},
			wantErrors: map[string]string{"title": "must not be more than 200 characters long"},
		},
		{
			name:       "author too long",
			input:      BookInput{Title: "Dune", Author: strings.Repeat("a", MaxAuthorLength+1), Price: 1},
			wantErrors: map[string]string{"author": "must not be more than 100 characters long"},
		},
		{
			name:  "bounds are inclusive",
			input: BookInput{Title: strings.Repeat("a", MaxTitleLength), Author: strings.Repeat("b", MaxAuthorLength), Price: 0.01},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := validator.New()
			ValidateBookInput(v, tt.input)

			if tt.wantErrors == nil {
				assert.True(t, v.Valid(), "unexpected errors: %v", v.Errors)
				return
			}
			assert.Equal(t, tt.wantErrors, v.Errors)
		})
	}
}

func TestValidateBookPatch(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantErrors map[string]string
	}{
		{name: "empty patch", body: `{}`},
		{name: "single field", body: `{"price": 19.99}`},
		{name: "available false", body: `{"available": false}`},
		{
			name:       "empty title",
			body:       `{"title": ""}`,
			wantErrors: map[string]string{"title": "must be provided"},
		},
		{
			name:       "zero price",
			body:       `{"price": 0}`,
			wantErrors: map[string]string{"price": "must be greater than zero"},
		},
		{
			name: "nulls",
			body: `{"title": null, "author": null, "price": null, "available": null}`,
			wantErrors: map[string]string{
				"title":     "must not be null",
				"author":    "must not be null",
				"price":     "must not be null",
				"available": "must not be null",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var patch BookPatch
			require.NoError(t, json.Unmarshal([]byte(tt.body), &patch))
			patch.Normalize()

			v := validator.New()
			ValidateBookPatch(v, patch)

			if tt.wantErrors == nil {
				assert.True(t, v.Valid(), "unexpected errors: %v", v.Errors)
				return
			}
			assert.Equal(t, tt.wantErrors, v.Errors)
		})
	}
}
