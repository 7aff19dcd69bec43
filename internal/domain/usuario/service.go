package usuario

import "context"

// Service defines the interface for user operations
type Service interface {
	// CreateUser creates a new user, ACTIVO unless params say otherwise
	CreateUser(ctx context.Context, params CreateParams) (*Usuario, error)

	// GetAllUsers returns every user that is not ELIMINADO
	GetAllUsers(ctx context.Context) ([]*Usuario, error)

	// GetUserByID returns a visible user or a not found error
	GetUserByID(ctx context.Context, id int64) (*Usuario, error)

	// UpdateUserStatus sets the user's state
	UpdateUserStatus(ctx context.Context, id int64, estado Estado) (*Usuario, error)

	// UpgradeToPremium marks the user as premium
	UpgradeToPremium(ctx context.Context, id int64) (*Usuario, error)

	// GetActiveUsers returns ACTIVO users
	GetActiveUsers(ctx context.Context) ([]*Usuario, error)

	// GetPremiumActiveUsers returns users that are premium and ACTIVO
	GetPremiumActiveUsers(ctx context.Context) ([]*Usuario, error)

	// DeleteUser soft-deletes a user by moving it to ELIMINADO
	DeleteUser(ctx context.Context, id int64) error

	// CountByEstado returns how many rows exist in each state
	CountByEstado(ctx context.Context) (map[Estado]int64, error)
}
