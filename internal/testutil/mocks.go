package testutil

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/pratik-mahalle/usuarios-api/internal/domain/usuario"
	"github.com/pratik-mahalle/usuarios-api/internal/pkg/errors"
)

// MockStore is an in-memory usuario.Store. Transactions work on a copy of
// the data that replaces the original only when fn succeeds.
type MockStore struct {
	mu   sync.Mutex
	repo *MockUsuarioRepository

	// TxError, when set, is returned by WithinTx before fn runs.
	TxError error
	// Commits and Rollbacks count finished transactions.
	Commits   int
	Rollbacks int
}

func NewMockStore() *MockStore {
	return &MockStore{repo: NewMockUsuarioRepository()}
}

func (s *MockStore) Usuarios() usuario.Repository {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo
}

func (s *MockStore) WithinTx(ctx context.Context, fn func(repo usuario.Repository) error) error {
	if s.TxError != nil {
		return s.TxError
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx := s.repo.clone()
	if err := fn(tx); err != nil {
		s.Rollbacks++
		return err
	}
	s.repo = tx
	s.Commits++
	return nil
}

// Repo returns the committed repository, for seeding and assertions.
func (s *MockStore) Repo() *MockUsuarioRepository {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo
}

// MockUsuarioRepository is a mock implementation of usuario.Repository
type MockUsuarioRepository struct {
	Users       map[int64]*usuario.Usuario
	NextID      int64
	CreateError error
	GetError    error
	ListError   error
	UpdateError error
}

func NewMockUsuarioRepository() *MockUsuarioRepository {
	return &MockUsuarioRepository{
		Users:  make(map[int64]*usuario.Usuario),
		NextID: 1,
	}
}

func (m *MockUsuarioRepository) clone() *MockUsuarioRepository {
	c := *m
	c.Users = make(map[int64]*usuario.Usuario, len(m.Users))
	for id, u := range m.Users {
		cp := *u
		c.Users[id] = &cp
	}
	return &c
}

func (m *MockUsuarioRepository) Create(ctx context.Context, u *usuario.Usuario) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	for _, existing := range m.Users {
		if existing.Email == u.Email {
			return errors.Constraint("Failed to create user", errors.BadRequest("UNIQUE constraint failed: usuarios.email"))
		}
	}
	if u.Estado == "" {
		u.Estado = usuario.EstadoActivo
	}
	now := time.Now().UTC().Truncate(time.Millisecond)
	u.ID = m.NextID
	u.FechaCreacion = now
	u.FechaModificacion = now
	m.NextID++

	cp := *u
	m.Users[u.ID] = &cp
	return nil
}

func (m *MockUsuarioRepository) GetByID(ctx context.Context, id int64) (*usuario.Usuario, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	u, ok := m.Users[id]
	if !ok || !u.Visible() {
		return nil, errors.NotFound("Usuario")
	}
	cp := *u
	return &cp, nil
}

func (m *MockUsuarioRepository) List(ctx context.Context, filter usuario.Filter) ([]*usuario.Usuario, error) {
	if m.ListError != nil {
		return nil, m.ListError
	}
	result := make([]*usuario.Usuario, 0, len(m.Users))
	for _, u := range m.Users {
		if filter.Matches(u) {
			cp := *u
			result = append(result, &cp)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *MockUsuarioRepository) Update(ctx context.Context, u *usuario.Usuario) error {
	if m.UpdateError != nil {
		return m.UpdateError
	}
	existing, ok := m.Users[u.ID]
	if !ok || !existing.Visible() {
		return errors.NotFound("Usuario")
	}
	u.FechaModificacion = time.Now().UTC().Truncate(time.Millisecond)
	cp := *u
	m.Users[u.ID] = &cp
	return nil
}

func (m *MockUsuarioRepository) CountByEstado(ctx context.Context) (map[usuario.Estado]int64, error) {
	counts := make(map[usuario.Estado]int64, len(usuario.Estados))
	for _, e := range usuario.Estados {
		counts[e] = 0
	}
	for _, u := range m.Users {
		counts[u.Estado]++
	}
	return counts, nil
}
