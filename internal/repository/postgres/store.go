package postgres

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"

	"go.uber.org/multierr"

	"github.com/pratik-mahalle/usuarios-api/internal/domain/usuario"
	"github.com/pratik-mahalle/usuarios-api/internal/pkg/errors"
)

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Store implements usuario.Store on top of a connection pool
type Store struct {
	db      *sql.DB
	dialect Dialect
}

// NewStore creates a new store
func NewStore(db *sql.DB, dialect Dialect) *Store {
	return &Store{db: db, dialect: dialect}
}

// Usuarios returns a repository bound to the pool
func (s *Store) Usuarios() usuario.Repository {
	return &UsuarioRepository{q: s.db, dialect: s.dialect}
}

// WithinTx runs fn with a repository bound to a new transaction. The
// transaction is committed when fn succeeds and rolled back on error or
// panic; its connection goes back to the pool in every case.
func (s *Store) WithinTx(ctx context.Context, fn func(repo usuario.Repository) error) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.DatabaseError("Failed to begin transaction", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			if rbErr := ignoreTxDone(tx.Rollback()); rbErr != nil {
				err = multierr.Append(err, fmt.Errorf("rollback: %w", rbErr))
			}
		}
	}()

	if err = fn(&UsuarioRepository{q: tx, dialect: s.dialect}); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return errors.DatabaseError("Failed to commit transaction", err)
	}
	return nil
}

// Ping checks that the database is reachable
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func ignoreTxDone(err error) error {
	if stderrors.Is(err, sql.ErrTxDone) {
		return nil
	}
	return err
}
