package repository

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/jomatheusdev/bd-poo-biblioteca/internal/errs"
	"github.com/jomatheusdev/bd-poo-biblioteca/internal/model"
)

type usuarioRepository struct {
	db      *sqlx.DB
	timeout time.Duration
	log     *zap.Logger
}

func NewUsuarioRepository(db *sqlx.DB, queryTimeout time.Duration, log *zap.Logger) (*usuarioRepository, error) {
	if queryTimeout <= 0 {
		queryTimeout = defaultQueryTimeout
	}
	return &usuarioRepository{
		db:      db,
		timeout: queryTimeout,
		log:     log.Named("usuario-repo"),
	}, nil
}

// bound caps pool acquisition and execution so an exhausted pool fails
// fast instead of queueing.
func (r *usuarioRepository) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func (r *usuarioRepository) List(ctx context.Context) ([]model.Usuario, error) {
	query, args, err := qb.Select("usuario_id", "nome", "email", "cpf", "tipo", "ativo", "data_cadastro").
		From(usuarioTableName).
		OrderBy("usuario_id").
		ToSql()
	if err != nil {
		return nil, err
	}

	ctx, cancel := r.bound(ctx)
	defer cancel()

	usuarios := make([]model.Usuario, 0)
	if err := r.db.SelectContext(ctx, &usuarios, query, args...); err != nil {
		return nil, errs.Classify(err)
	}
	return usuarios, nil
}

func (r *usuarioRepository) Get(ctx context.Context, id int) (model.Usuario, error) {
	query, args, err := qb.Select("usuario_id", "nome", "email", "cpf", "tipo", "ativo", "data_cadastro").
		From(usuarioTableName).
		Where(sq.Eq{"usuario_id": id}).
		ToSql()
	if err != nil {
		return model.Usuario{}, err
	}

	ctx, cancel := r.bound(ctx)
	defer cancel()

	var u model.Usuario
	if err := r.db.GetContext(ctx, &u, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Usuario{}, errs.ErrNotFound
		}
		return model.Usuario{}, errs.Classify(err)
	}
	return u, nil
}

func (r *usuarioRepository) Create(ctx context.Context, req model.CreateUsuarioRequest) (model.Usuario, error) {
	query, args, err := qb.Insert(usuarioTableName).
		Columns("nome", "email", "cpf", "tipo").
		Values(req.Nome, req.Email, req.CPF, req.Tipo).
		Suffix("RETURNING usuario_id, nome, email, cpf, tipo, ativo, data_cadastro").
		ToSql()
	if err != nil {
		return model.Usuario{}, err
	}

	ctx, cancel := r.bound(ctx)
	defer cancel()

	var u model.Usuario
	if err := r.db.GetContext(ctx, &u, query, args...); err != nil {
		r.log.Debug("Create", zap.String("q", query), zap.Error(err))
		return model.Usuario{}, errs.Classify(err)
	}
	return u, nil
}

func (r *usuarioRepository) Update(ctx context.Context, id int, req model.UpdateUsuarioRequest) (model.Usuario, error) {
	// Partial update: unset fields keep the stored value.
	q := `
UPDATE usuario
   SET nome  = COALESCE($1, nome),
       email = COALESCE($2, email),
       cpf   = COALESCE($3, cpf),
       tipo  = COALESCE($4, tipo),
       ativo = COALESCE($5, ativo)
 WHERE usuario_id = $6
RETURNING usuario_id, nome, email, cpf, tipo, ativo, data_cadastro`

	ctx, cancel := r.bound(ctx)
	defer cancel()

	var u model.Usuario
	if err := r.db.GetContext(ctx, &u, q, req.Nome, req.Email, req.CPF, req.Tipo, req.Ativo, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Usuario{}, errs.ErrNotFound
		}
		return model.Usuario{}, errs.Classify(err)
	}
	return u, nil
}

func (r *usuarioRepository) Delete(ctx context.Context, id int) (model.Usuario, error) {
	query, args, err := qb.Delete(usuarioTableName).
		Where(sq.Eq{"usuario_id": id}).
		Suffix("RETURNING usuario_id, nome, email, cpf, tipo, ativo, data_cadastro").
		ToSql()
	if err != nil {
		return model.Usuario{}, err
	}

	ctx, cancel := r.bound(ctx)
	defer cancel()

	var u model.Usuario
	if err := r.db.GetContext(ctx, &u, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Usuario{}, errs.ErrNotFound
		}
		return model.Usuario{}, errs.Classify(err)
	}
	return u, nil
}

func (r *usuarioRepository) Exists(ctx context.Context, id int) (bool, error) {
	q := `SELECT EXISTS (SELECT 1 FROM usuario WHERE usuario_id = $1)`

	ctx, cancel := r.bound(ctx)
	defer cancel()

	var exists bool
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&exists); err != nil {
		return false, errs.Classify(err)
	}
	return exists, nil
}

func (r *usuarioRepository) TotalMultasAbertas(ctx context.Context, id int) (float64, error) {
	q := `SELECT fn_total_multas_abertas_usuario($1)`

	ctx, cancel := r.bound(ctx)
	defer cancel()

	var total float64
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&total); err != nil {
		return 0, errs.Classify(err)
	}
	return total, nil
}
