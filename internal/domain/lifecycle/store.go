package lifecycle

import "context"

// Entity contrato mínimo que toda entidad con ciclo de vida implementa
// (receivers de puntero: el motor se instancia con *entity.Brand, etc.).
type Entity interface {
	EntityID() int64
	SetEntityID(id int64)
	IsActive() bool
	SetActive(active bool)
	// NaturalKey clave natural cruda (nombre, número de mesa, código...).
	NaturalKey() string
	// KeyNormalized / SetKeyNormalized clave derivada, recalculada en cada
	// escritura de la clave natural; nunca se muta directamente.
	KeyNormalized() string
	SetKeyNormalized(key string)
}

// Store puerto de persistencia por tipo de entidad. El adaptador debe
// garantizar: (1) índice único parcial sobre (normalized_key) WHERE active,
// de modo que el perdedor de una carrera falle en commit con ErrDuplicate;
// (2) InTx ejecuta fn atómicamente, sin efecto parcial observable.
type Store[E Entity] interface {
	// FindByID busca por id sin importar el estado activo.
	FindByID(ctx context.Context, id int64) (E, bool, error)
	// FindByKey busca cualquier registro (activo o no) con la clave
	// normalizada dada, excluyendo excludeID si es > 0. Si varios inactivos
	// comparten la clave, un activo tiene prioridad; si no hay activo,
	// devuelve el inactivo más reciente.
	FindByKey(ctx context.Context, key string, excludeID int64) (E, bool, error)
	// Insert persiste una fila nueva y asigna el id.
	Insert(ctx context.Context, e E) (E, error)
	// Save escribe todos los campos mutables de una fila existente.
	Save(ctx context.Context, e E) error
	// SetActive cambia solo el flag activo.
	SetActive(ctx context.Context, id int64, active bool) error

	// CountActiveDependents cuenta filas activas del tipo dependiente cuya fk apunta a id.
	CountActiveDependents(ctx context.Context, dep DependentSpec, id int64) (int, error)
	// DeactivateDependents desactiva todas las filas activas del dependiente que apuntan a id.
	DeactivateDependents(ctx context.Context, dep DependentSpec, id int64) error
	// ClearDependentLinks anula la fk en las filas activas del dependiente que apuntan a id.
	ClearDependentLinks(ctx context.Context, dep DependentSpec, id int64) error

	// InTx ejecuta fn contra un Store ligado a una transacción; commit si fn
	// devuelve nil, rollback en caso contrario.
	InTx(ctx context.Context, fn func(tx Store[E]) error) error
}
