package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidator(t *testing.T) {
	t.Run("new validator is valid", func(t *testing.T) {
		v := New()
		assert.True(t, v.Valid())
		assert.Empty(t, v.Errors)
	})

	t.Run("check records failures only", func(t *testing.T) {
		v := New()
		v.Check(true, "title", "must be provided")
		v.Check(false, "price", "must be greater than zero")

		assert.False(t, v.Valid())
		assert.Equal(t, map[string]string{"price": "must be greater than zero"}, v.Errors)
	})

	t.Run("first error for a key wins", func(t *testing.T) {
		v := New()
		v.AddError("title", "must be provided")
		v.AddError("title", "must not be more than 200 characters long")

		assert.Equal(t, "must be provided", v.Errors["title"])
	})
}

func TestIn(t *testing.T) {
	assert.True(t, In("staging", "development", "staging", "production"))
	assert.False(t, In("qa", "development", "staging", "production"))
	assert.False(t, In("anything"))
}

func TestMaxChars(t *testing.T) {
	tests := []struct {
		name  string
		value string
		n     int
		want  bool
	}{
		{"empty", "", 0, true},
		{"exact", "Dune", 4, true},
		{"too long", "Dune", 3, false},
		{"multibyte counted as one", "Öko", 3, true},
		{"cjk", strings.Repeat("本", 100), 100, true},
		{"cjk over", strings.Repeat("本", 101), 100, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MaxChars(tt.value, tt.n))
		})
	}
}
