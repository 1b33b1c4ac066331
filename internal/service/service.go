package service

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jomatheusdev/bd-poo-biblioteca/internal/errs"
	"github.com/jomatheusdev/bd-poo-biblioteca/internal/model"
	"github.com/jomatheusdev/bd-poo-biblioteca/internal/repository"
)

// ResponsavelPadrao identifies the API itself in audit entries when the
// caller does not name a responsible party.
const ResponsavelPadrao = "api_backend"

type Service struct {
	log         *zap.Logger
	usuarios    repository.UsuarioRepository
	emprestimos repository.EmprestimoRepository
	diasPadrao  int
}

func NewService(usuarios repository.UsuarioRepository, emprestimos repository.EmprestimoRepository, diasPadrao int, log *zap.Logger) *Service {
	return &Service{
		log:         log,
		usuarios:    usuarios,
		emprestimos: emprestimos,
		diasPadrao:  diasPadrao,
	}
}

func (s *Service) ListUsuarios(ctx context.Context) ([]model.Usuario, error) {
	return s.usuarios.List(ctx)
}

func (s *Service) GetUsuario(ctx context.Context, id int) (model.Usuario, error) {
	return s.usuarios.Get(ctx, id)
}

func (s *Service) CreateUsuario(ctx context.Context, req model.CreateUsuarioRequest) (model.Usuario, error) {
	return s.usuarios.Create(ctx, req)
}

func (s *Service) UpdateUsuario(ctx context.Context, id int, req model.UpdateUsuarioRequest) (model.Usuario, error) {
	return s.usuarios.Update(ctx, id, req)
}

func (s *Service) DeleteUsuario(ctx context.Context, id int) (model.Usuario, error) {
	return s.usuarios.Delete(ctx, id)
}

// TotalMultasAbertas checks existence before invoking the database function,
// so a missing user yields ErrNotFound instead of a zero total.
func (s *Service) TotalMultasAbertas(ctx context.Context, id int) (float64, error) {
	exists, err := s.usuarios.Exists(ctx, id)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, errs.ErrNotFound
	}
	return s.usuarios.TotalMultasAbertas(ctx, id)
}

func (s *Service) ListEmprestimos(ctx context.Context) ([]model.EmprestimoResumo, error) {
	return s.emprestimos.List(ctx)
}

func (s *Service) GetEmprestimo(ctx context.Context, id int) (model.EmprestimoDetalhe, error) {
	return s.emprestimos.Get(ctx, id)
}

// CreateEmprestimo computes the due date and inserts; acceptance or
// rejection is entirely the validation trigger's decision.
func (s *Service) CreateEmprestimo(ctx context.Context, req model.CreateEmprestimoRequest) (model.Emprestimo, error) {
	dias := req.DiasEmprestimo
	if dias <= 0 {
		dias = s.diasPadrao
	}
	novo := model.NovoEmprestimo{
		UsuarioID:             req.UsuarioID,
		ExemplarID:            req.ExemplarID,
		DataPrevistaDevolucao: time.Now().AddDate(0, 0, dias),
	}
	return s.emprestimos.Create(ctx, novo)
}

func (s *Service) UpdateEmprestimo(ctx context.Context, id int, dataDevolucao string) (model.Emprestimo, error) {
	return s.emprestimos.SetDataDevolucao(ctx, id, dataDevolucao)
}

func (s *Service) DeleteEmprestimo(ctx context.Context, id int) (model.Emprestimo, error) {
	return s.emprestimos.Delete(ctx, id)
}

func (s *Service) CalcularMulta(ctx context.Context, id int) (float64, error) {
	exists, err := s.emprestimos.Exists(ctx, id)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, errs.ErrNotFound
	}
	return s.emprestimos.CalcularMulta(ctx, id)
}

// RegistrarDevolucao calls prc_registrar_devolucao and then re-reads the
// loan and the newest fine. The read-back runs outside the procedure's
// transaction: a concurrent mutation in between can show a stale view.
func (s *Service) RegistrarDevolucao(ctx context.Context, id int, responsavel string) (model.Devolucao, error) {
	if responsavel == "" {
		responsavel = ResponsavelPadrao
	}
	if err := s.emprestimos.RegistrarDevolucao(ctx, id, responsavel); err != nil {
		return model.Devolucao{}, err
	}

	var dev model.Devolucao
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		e, err := s.emprestimos.Get(gctx, id)
		if err != nil {
			return err
		}
		dev.Emprestimo = e
		return nil
	})
	g.Go(func() error {
		m, err := s.emprestimos.UltimaMulta(gctx, id)
		if err != nil {
			return err
		}
		dev.MultaGerada = m
		return nil
	})
	if err := g.Wait(); err != nil {
		return model.Devolucao{}, err
	}
	return dev, nil
}

func (s *Service) ListAuditoria(ctx context.Context) ([]model.Auditoria, error) {
	return s.emprestimos.ListAuditoria(ctx)
}
