// Package cache define el cache de lectura de productos. La implementación
// Redis es opcional: sin REDIS_ADDR se usa el noop y todo lee directo de la
// base. Solo se cachean lecturas por id; cualquier escritura invalida.
package cache

import (
	"context"

	"github.com/barrapos/backoffice-api/internal/domain/entity"
)

// ProductCache cache de lecturas de productos por id.
type ProductCache interface {
	Get(ctx context.Context, id int64) (*entity.Product, bool)
	Set(ctx context.Context, p *entity.Product)
	Invalidate(ctx context.Context, id int64)
}

// Noop implementación nula: nunca acierta, nunca guarda.
type Noop struct{}

func (Noop) Get(ctx context.Context, id int64) (*entity.Product, bool) { return nil, false }
func (Noop) Set(ctx context.Context, p *entity.Product)                {}
func (Noop) Invalidate(ctx context.Context, id int64)                  {}
