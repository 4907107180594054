package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barrapos/backoffice-api/internal/application/dto"
	"github.com/barrapos/backoffice-api/internal/application/usecase"
	"github.com/barrapos/backoffice-api/internal/domain"
	"github.com/barrapos/backoffice-api/internal/infrastructure/memory"
)

// TestBarTableNumeroUnico la unicidad de mesas compara el número, no el
// string del formulario.
func TestBarTableNumeroUnico(t *testing.T) {
	uc := usecase.NewBarTableUseCase(memory.NewBarTableStore(), nil)
	ctx := context.Background()

	mesa, err := uc.Create(ctx, dto.CreateBarTableRequest{Number: 3, Seats: 4})
	require.NoError(t, err)

	_, err = uc.Create(ctx, dto.CreateBarTableRequest{Number: 3, Seats: 2})
	var conflict *domain.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "BAR_TABLE_EXISTS_ACTIVE", conflict.Code())
	assert.Equal(t, mesa.ID, conflict.ExistingID)
}

// TestBarTableNumeroInvalido los números no positivos se rechazan en el
// caso de uso, antes de llegar al motor.
func TestBarTableNumeroInvalido(t *testing.T) {
	uc := usecase.NewBarTableUseCase(memory.NewBarTableStore(), nil)

	_, err := uc.Create(context.Background(), dto.CreateBarTableRequest{Number: 0, Seats: 4})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(context.Background(), dto.CreateBarTableRequest{Number: -3, Seats: 4})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// TestBarTableReactivateSwap la mesa 3 vieja vuelve desplazando a la nueva.
func TestBarTableReactivateSwap(t *testing.T) {
	uc := usecase.NewBarTableUseCase(memory.NewBarTableStore(), nil)
	ctx := context.Background()

	vieja, err := uc.Create(ctx, dto.CreateBarTableRequest{Number: 3, Seats: 4})
	require.NoError(t, err)
	_, err = uc.Deactivate(ctx, vieja.ID, nil)
	require.NoError(t, err)
	nueva, err := uc.Create(ctx, dto.CreateBarTableRequest{Number: 3, Seats: 6})
	require.NoError(t, err)

	got, err := uc.ReactivateSwap(ctx, vieja.ID, nueva.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, vieja.ID, got.ID)
	assert.True(t, got.Active)

	desplazada, err := uc.GetByID(ctx, nueva.ID)
	require.NoError(t, err)
	assert.False(t, desplazada.Active)
}
