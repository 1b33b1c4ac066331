package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/jomatheusdev/bd-poo-biblioteca/internal/model"
)

// defaultQueryTimeout bounds pool acquisition and execution when the
// caller passes no bound of its own.
const defaultQueryTimeout = 2 * time.Second

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go -package=mocks

type UsuarioRepository interface {
	List(ctx context.Context) ([]model.Usuario, error)
	Get(ctx context.Context, id int) (model.Usuario, error)
	Create(ctx context.Context, req model.CreateUsuarioRequest) (model.Usuario, error)
	Update(ctx context.Context, id int, req model.UpdateUsuarioRequest) (model.Usuario, error)
	Delete(ctx context.Context, id int) (model.Usuario, error)
	Exists(ctx context.Context, id int) (bool, error)
	TotalMultasAbertas(ctx context.Context, id int) (float64, error)
}

type EmprestimoRepository interface {
	List(ctx context.Context) ([]model.EmprestimoResumo, error)
	Get(ctx context.Context, id int) (model.EmprestimoDetalhe, error)
	Create(ctx context.Context, novo model.NovoEmprestimo) (model.Emprestimo, error)
	SetDataDevolucao(ctx context.Context, id int, dataDevolucao string) (model.Emprestimo, error)
	Delete(ctx context.Context, id int) (model.Emprestimo, error)
	Exists(ctx context.Context, id int) (bool, error)
	CalcularMulta(ctx context.Context, id int) (float64, error)
	RegistrarDevolucao(ctx context.Context, id int, responsavel string) error
	UltimaMulta(ctx context.Context, emprestimoID int) (*model.Multa, error)
	ListAuditoria(ctx context.Context) ([]model.Auditoria, error)
}

const (
	usuarioTableName    = `usuario`
	emprestimoTableName = `emprestimo`
	exemplarTableName   = `exemplar`
	livroTableName      = `livro`
	multaTableName      = `multa`
	auditoriaTableName  = `auditoria_emprestimo`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
