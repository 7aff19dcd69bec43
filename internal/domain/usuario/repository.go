package usuario

import "context"

// Repository defines the interface for user data access
type Repository interface {
	// Create inserts u and fills its ID and timestamps
	Create(ctx context.Context, u *Usuario) error

	// GetByID retrieves a visible user by ID
	GetByID(ctx context.Context, id int64) (*Usuario, error)

	// List retrieves visible users matching the filter
	List(ctx context.Context, filter Filter) ([]*Usuario, error)

	// Update persists u and stamps its modification time
	Update(ctx context.Context, u *Usuario) error

	// CountByEstado counts rows per state, ELIMINADO included
	CountByEstado(ctx context.Context) (map[Estado]int64, error)
}

// Store hands out repositories bound to the pool or to a transaction.
type Store interface {
	// Usuarios returns a repository that runs on the connection pool
	Usuarios() Repository

	// WithinTx runs fn inside a transaction. The transaction is committed
	// when fn returns nil and rolled back otherwise.
	WithinTx(ctx context.Context, fn func(repo Repository) error) error
}
