package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/jomatheusdev/bd-poo-biblioteca/internal/errs"
	"github.com/jomatheusdev/bd-poo-biblioteca/internal/model"
)

// ocupadoDriver hands out connections that never execute anything; tests
// use it to occupy the pool.
type ocupadoDriver struct{}

func (ocupadoDriver) Open(string) (driver.Conn, error) { return &ocupadoConn{}, nil }

type ocupadoConn struct{}

func (*ocupadoConn) Prepare(string) (driver.Stmt, error) { return nil, errors.New("sem execução") }
func (*ocupadoConn) Close() error                        { return nil }
func (*ocupadoConn) Begin() (driver.Tx, error)           { return nil, errors.New("sem transação") }

func init() {
	sql.Register("ocupado", ocupadoDriver{})
}

// newPoolEsgotado returns a single-connection pool whose only connection is
// already taken, so every query waits on acquisition.
func newPoolEsgotado(t *testing.T) *sqlx.DB {
	t.Helper()

	sqldb, err := sql.Open("ocupado", "")
	require.NoError(t, err)
	sqldb.SetMaxOpenConns(1)

	conn, err := sqldb.Conn(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = conn.Close()
		_ = sqldb.Close()
	})

	return sqlx.NewDb(sqldb, "pgx")
}

func TestUsuarioRepository_PoolEsgotadoFalhaRapido(t *testing.T) {
	db := newPoolEsgotado(t)
	repo, err := NewUsuarioRepository(db, 50*time.Millisecond, zap.NewNop())
	require.NoError(t, err)

	inicio := time.Now()
	_, err = repo.Exists(context.Background(), 1)
	require.ErrorIs(t, err, errs.ErrConexao)
	require.Less(t, time.Since(inicio), 2*time.Second)
}

func TestEmprestimoRepository_PoolEsgotadoFalhaRapido(t *testing.T) {
	db := newPoolEsgotado(t)
	repo, err := NewEmprestimoRepository(db, 50*time.Millisecond, zap.NewNop())
	require.NoError(t, err)

	_, err = repo.CalcularMulta(context.Background(), 1)
	require.ErrorIs(t, err, errs.ErrConexao)
}

func TestUsuarioRepository_CreateNaoLogaDados(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	db := newPoolEsgotado(t)
	repo, err := NewUsuarioRepository(db, 50*time.Millisecond, zap.New(core))
	require.NoError(t, err)

	_, err = repo.Create(context.Background(), model.CreateUsuarioRequest{
		Nome:  "Ana",
		Email: "ana@x.com",
		CPF:   "111",
		Tipo:  "aluno",
	})
	require.Error(t, err)

	require.Empty(t, logs.FilterLevelExact(zap.ErrorLevel).All())
	for _, entry := range logs.All() {
		for _, field := range entry.Context {
			require.NotEqual(t, "args", field.Key)
			require.NotContains(t, field.String, "ana@x.com")
		}
	}
}
