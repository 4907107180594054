package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

// TestIsUniqueViolation solo el código 23505 de Postgres cuenta como duplicado,
// incluso cuando el error viene envuelto.
func TestIsUniqueViolation(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505", ConstraintName: "brands_key_normalized_active_idx"}
	assert.True(t, isUniqueViolation(unique))
	assert.True(t, isUniqueViolation(fmt.Errorf("insertando marca: %w", unique)), "debe atravesar el wrapping")

	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}), "una violación de fk no es un duplicado")
	assert.False(t, isUniqueViolation(errors.New("duplicate key value violates unique constraint (23505)")), "el texto del error no alcanza")
	assert.False(t, isUniqueViolation(nil))
}
