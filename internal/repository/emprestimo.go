package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/jomatheusdev/bd-poo-biblioteca/internal/errs"
	"github.com/jomatheusdev/bd-poo-biblioteca/internal/model"
)

type emprestimoRepository struct {
	db      *sqlx.DB
	timeout time.Duration
	log     *zap.Logger
}

func NewEmprestimoRepository(db *sqlx.DB, queryTimeout time.Duration, log *zap.Logger) (*emprestimoRepository, error) {
	if queryTimeout <= 0 {
		queryTimeout = defaultQueryTimeout
	}
	return &emprestimoRepository{
		db:      db,
		timeout: queryTimeout,
		log:     log.Named("emprestimo-repo"),
	}, nil
}

func (r *emprestimoRepository) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func (r *emprestimoRepository) List(ctx context.Context) ([]model.EmprestimoResumo, error) {
	query, args, err := qb.Select(
		"e.emprestimo_id", "e.usuario_id", "e.exemplar_id",
		"e.data_emprestimo", "e.data_prevista_devolucao", "e.data_devolucao",
		"u.nome AS usuario_nome", "ex.codigo_exemplar", "l.titulo AS livro_titulo").
		From(emprestimoTableName + " e").
		Join(fmt.Sprintf("%s u ON e.usuario_id = u.usuario_id", usuarioTableName)).
		Join(fmt.Sprintf("%s ex ON e.exemplar_id = ex.exemplar_id", exemplarTableName)).
		Join(fmt.Sprintf("%s l ON ex.livro_id = l.livro_id", livroTableName)).
		OrderBy("e.emprestimo_id DESC").
		ToSql()
	if err != nil {
		return nil, err
	}

	ctx, cancel := r.bound(ctx)
	defer cancel()

	emprestimos := make([]model.EmprestimoResumo, 0)
	if err := r.db.SelectContext(ctx, &emprestimos, query, args...); err != nil {
		return nil, errs.Classify(err)
	}
	return emprestimos, nil
}

func (r *emprestimoRepository) Get(ctx context.Context, id int) (model.EmprestimoDetalhe, error) {
	query, args, err := qb.Select(
		"e.emprestimo_id", "e.usuario_id", "e.exemplar_id",
		"e.data_emprestimo", "e.data_prevista_devolucao", "e.data_devolucao",
		"u.nome AS usuario_nome", "u.email AS usuario_email",
		"ex.codigo_exemplar", "ex.estado AS exemplar_estado",
		"l.titulo AS livro_titulo", "l.isbn AS livro_isbn").
		From(emprestimoTableName + " e").
		Join(fmt.Sprintf("%s u ON e.usuario_id = u.usuario_id", usuarioTableName)).
		Join(fmt.Sprintf("%s ex ON e.exemplar_id = ex.exemplar_id", exemplarTableName)).
		Join(fmt.Sprintf("%s l ON ex.livro_id = l.livro_id", livroTableName)).
		Where(sq.Eq{"e.emprestimo_id": id}).
		ToSql()
	if err != nil {
		return model.EmprestimoDetalhe{}, err
	}

	ctx, cancel := r.bound(ctx)
	defer cancel()

	var e model.EmprestimoDetalhe
	if err := r.db.GetContext(ctx, &e, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.EmprestimoDetalhe{}, errs.ErrNotFound
		}
		return model.EmprestimoDetalhe{}, errs.Classify(err)
	}
	return e, nil
}

// Create delegates acceptance to trg_emprestimo_validacao: user activity,
// copy availability and open fines are checked by the trigger, not here.
func (r *emprestimoRepository) Create(ctx context.Context, novo model.NovoEmprestimo) (model.Emprestimo, error) {
	query, args, err := qb.Insert(emprestimoTableName).
		Columns("usuario_id", "exemplar_id", "data_prevista_devolucao").
		Values(novo.UsuarioID, novo.ExemplarID, novo.DataPrevistaDevolucao.Format(time.DateOnly)).
		Suffix("RETURNING emprestimo_id, usuario_id, exemplar_id, data_emprestimo, data_prevista_devolucao, data_devolucao").
		ToSql()
	if err != nil {
		return model.Emprestimo{}, err
	}

	ctx, cancel := r.bound(ctx)
	defer cancel()

	var e model.Emprestimo
	if err := r.db.GetContext(ctx, &e, query, args...); err != nil {
		r.log.Debug("Create", zap.String("q", query), zap.Error(err))
		return model.Emprestimo{}, errs.Classify(err)
	}
	return e, nil
}

func (r *emprestimoRepository) SetDataDevolucao(ctx context.Context, id int, dataDevolucao string) (model.Emprestimo, error) {
	// The value goes to the database as-is; format validation is its job.
	q := `
UPDATE emprestimo
   SET data_devolucao = $1
 WHERE emprestimo_id = $2
RETURNING emprestimo_id, usuario_id, exemplar_id, data_emprestimo, data_prevista_devolucao, data_devolucao`

	ctx, cancel := r.bound(ctx)
	defer cancel()

	var e model.Emprestimo
	if err := r.db.GetContext(ctx, &e, q, dataDevolucao, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Emprestimo{}, errs.ErrNotFound
		}
		return model.Emprestimo{}, errs.Classify(err)
	}
	return e, nil
}

func (r *emprestimoRepository) Delete(ctx context.Context, id int) (model.Emprestimo, error) {
	query, args, err := qb.Delete(emprestimoTableName).
		Where(sq.Eq{"emprestimo_id": id}).
		Suffix("RETURNING emprestimo_id, usuario_id, exemplar_id, data_emprestimo, data_prevista_devolucao, data_devolucao").
		ToSql()
	if err != nil {
		return model.Emprestimo{}, err
	}

	ctx, cancel := r.bound(ctx)
	defer cancel()

	var e model.Emprestimo
	if err := r.db.GetContext(ctx, &e, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Emprestimo{}, errs.ErrNotFound
		}
		return model.Emprestimo{}, errs.Classify(err)
	}
	return e, nil
}

func (r *emprestimoRepository) Exists(ctx context.Context, id int) (bool, error) {
	q := `SELECT EXISTS (SELECT 1 FROM emprestimo WHERE emprestimo_id = $1)`

	ctx, cancel := r.bound(ctx)
	defer cancel()

	var exists bool
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&exists); err != nil {
		return false, errs.Classify(err)
	}
	return exists, nil
}

func (r *emprestimoRepository) CalcularMulta(ctx context.Context, id int) (float64, error) {
	q := `SELECT fn_calcular_multa_atraso($1)`

	ctx, cancel := r.bound(ctx)
	defer cancel()

	var valor float64
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&valor); err != nil {
		return 0, errs.Classify(err)
	}
	return valor, nil
}

func (r *emprestimoRepository) RegistrarDevolucao(ctx context.Context, id int, responsavel string) error {
	q := `CALL prc_registrar_devolucao($1, $2)`

	ctx, cancel := r.bound(ctx)
	defer cancel()

	if _, err := r.db.ExecContext(ctx, q, id, responsavel); err != nil {
		return errs.Classify(err)
	}
	return nil
}

func (r *emprestimoRepository) UltimaMulta(ctx context.Context, emprestimoID int) (*model.Multa, error) {
	query, args, err := qb.Select("multa_id", "emprestimo_id", "valor", "status", "data_geracao").
		From(multaTableName).
		Where(sq.Eq{"emprestimo_id": emprestimoID}).
		OrderBy("multa_id DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, err
	}

	ctx, cancel := r.bound(ctx)
	defer cancel()

	var m model.Multa
	if err := r.db.GetContext(ctx, &m, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errs.Classify(err)
	}
	return &m, nil
}

func (r *emprestimoRepository) ListAuditoria(ctx context.Context) ([]model.Auditoria, error) {
	query, args, err := qb.Select("auditoria_id", "emprestimo_id", "operacao", "usuario_banco", "quando", "dados_anteriores", "dados_novos").
		From(auditoriaTableName).
		OrderBy("quando DESC").
		Limit(50).
		ToSql()
	if err != nil {
		return nil, err
	}

	ctx, cancel := r.bound(ctx)
	defer cancel()

	logs := make([]model.Auditoria, 0)
	if err := r.db.SelectContext(ctx, &logs, query, args...); err != nil {
		return nil, errs.Classify(err)
	}
	return logs, nil
}
