package database_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"gooficina/internal/pkg/database"
)

func TestIsUniqueViolation(t *testing.T) {
	unique := &pq.Error{Code: "23505", Constraint: "cars_licence_plate_key"}

	assert.True(t, database.IsUniqueViolation(unique))
	assert.True(t, database.IsUniqueViolation(fmt.Errorf("insert car: %w", unique)))
	assert.False(t, database.IsUniqueViolation(&pq.Error{Code: "23503"}))
	assert.False(t, database.IsUniqueViolation(errors.New("connection refused")))
	assert.False(t, database.IsUniqueViolation(nil))
}

func TestIsForeignKeyViolation(t *testing.T) {
	fk := &pq.Error{Code: "23503", Constraint: "cars_client_id_fkey"}

	assert.True(t, database.IsForeignKeyViolation(fk))
	assert.True(t, database.IsForeignKeyViolation(fmt.Errorf("insert vehicle: %w", fk)))
	assert.False(t, database.IsForeignKeyViolation(&pq.Error{Code: "23505"}))
	assert.False(t, database.IsForeignKeyViolation(errors.New("connection refused")))
	assert.False(t, database.IsForeignKeyViolation(nil))
}
