package handler

import (
	"context"

	"github.com/jomatheusdev/bd-poo-biblioteca/internal/model"
	"github.com/jomatheusdev/bd-poo-biblioteca/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go -package=mocks

type UsuarioService interface {
	ListUsuarios(ctx context.Context) ([]model.Usuario, error)
	GetUsuario(ctx context.Context, id int) (model.Usuario, error)
	CreateUsuario(ctx context.Context, req model.CreateUsuarioRequest) (model.Usuario, error)
	UpdateUsuario(ctx context.Context, id int, req model.UpdateUsuarioRequest) (model.Usuario, error)
	DeleteUsuario(ctx context.Context, id int) (model.Usuario, error)
	TotalMultasAbertas(ctx context.Context, id int) (float64, error)
}

type EmprestimoService interface {
	ListEmprestimos(ctx context.Context) ([]model.EmprestimoResumo, error)
	GetEmprestimo(ctx context.Context, id int) (model.EmprestimoDetalhe, error)
	CreateEmprestimo(ctx context.Context, req model.CreateEmprestimoRequest) (model.Emprestimo, error)
	UpdateEmprestimo(ctx context.Context, id int, dataDevolucao string) (model.Emprestimo, error)
	DeleteEmprestimo(ctx context.Context, id int) (model.Emprestimo, error)
	CalcularMulta(ctx context.Context, id int) (float64, error)
	RegistrarDevolucao(ctx context.Context, id int, responsavel string) (model.Devolucao, error)
	ListAuditoria(ctx context.Context) ([]model.Auditoria, error)
}

var (
	_ UsuarioService    = (*service.Service)(nil)
	_ EmprestimoService = (*service.Service)(nil)
)
