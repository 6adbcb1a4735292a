package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserOrderClause(t *testing.T) {
	tests := []struct {
		name     string
		sortBy   string
		sortType string
		expected string
	}{
		{"sortable column ascending", "email", "asc", "email asc"},
		{"sortable column descending", "created_at", "desc", "created_at desc"},
		{"unknown sort type falls back to descending", "name", "sideways", "name desc"},
		{"empty sort is ignored", "", "asc", ""},
		{"unknown column is ignored", "password_hash", "asc", ""},
		{"subquery is ignored", "(SELECT password_hash FROM users LIMIT 1)", "asc", ""},
		{"stacked expression is ignored", "id; DROP TABLE users", "asc", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, userOrderClause(tt.sortBy, tt.sortType))
		})
	}
}
