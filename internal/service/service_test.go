package service_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jomatheusdev/bd-poo-biblioteca/internal/errs"
	"github.com/jomatheusdev/bd-poo-biblioteca/internal/model"
	"github.com/jomatheusdev/bd-poo-biblioteca/internal/service"

	repo_mocks "github.com/jomatheusdev/bd-poo-biblioteca/internal/repository/mocks"
)

// novoEmprestimoComPrazo matches a NovoEmprestimo whose due date lands the
// given number of days from today.
type novoEmprestimoComPrazo struct {
	usuarioID, exemplarID, dias int
}

func (m novoEmprestimoComPrazo) Matches(x interface{}) bool {
	novo, ok := x.(model.NovoEmprestimo)
	if !ok {
		return false
	}
	want := time.Now().AddDate(0, 0, m.dias).Format(time.DateOnly)
	return novo.UsuarioID == m.usuarioID &&
		novo.ExemplarID == m.exemplarID &&
		novo.DataPrevistaDevolucao.Format(time.DateOnly) == want
}

func (m novoEmprestimoComPrazo) String() string {
	return fmt.Sprintf("NovoEmprestimo{usuario %d, exemplar %d, prazo %d dias}", m.usuarioID, m.exemplarID, m.dias)
}

func newService(t *testing.T) (*service.Service, *repo_mocks.MockUsuarioRepository, *repo_mocks.MockEmprestimoRepository) {
	t.Helper()
	c := gomock.NewController(t)
	t.Cleanup(c.Finish)
	usuarios := repo_mocks.NewMockUsuarioRepository(c)
	emprestimos := repo_mocks.NewMockEmprestimoRepository(c)
	svc := service.NewService(usuarios, emprestimos, 14, zap.NewExample().Named("test"))
	return svc, usuarios, emprestimos
}

func TestService_CreateEmprestimo(t *testing.T) {
	t.Parallel()

	t.Run("prazo padrão de 14 dias", func(t *testing.T) {
		t.Parallel()
		svc, _, emprestimos := newService(t)

		emprestimos.EXPECT().
			Create(gomock.Any(), novoEmprestimoComPrazo{usuarioID: 1, exemplarID: 5, dias: 14}).
			Return(model.Emprestimo{EmprestimoID: 7, UsuarioID: 1, ExemplarID: 5}, nil)

		e, err := svc.CreateEmprestimo(context.Background(), model.CreateEmprestimoRequest{
			UsuarioID:  1,
			ExemplarID: 5,
		})
		require.NoError(t, err)
		require.Equal(t, 7, e.EmprestimoID)
	})

	t.Run("prazo informado no pedido", func(t *testing.T) {
		t.Parallel()
		svc, _, emprestimos := newService(t)

		emprestimos.EXPECT().
			Create(gomock.Any(), novoEmprestimoComPrazo{usuarioID: 2, exemplarID: 3, dias: 7}).
			Return(model.Emprestimo{EmprestimoID: 8}, nil)

		_, err := svc.CreateEmprestimo(context.Background(), model.CreateEmprestimoRequest{
			UsuarioID:      2,
			ExemplarID:     3,
			DiasEmprestimo: 7,
		})
		require.NoError(t, err)
	})
}

func TestService_TotalMultasAbertas(t *testing.T) {
	t.Parallel()

	t.Run("usuário inexistente não chama a função do banco", func(t *testing.T) {
		t.Parallel()
		svc, usuarios, _ := newService(t)

		usuarios.EXPECT().Exists(gomock.Any(), 99).Return(false, nil)

		_, err := svc.TotalMultasAbertas(context.Background(), 99)
		require.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("usuário existente", func(t *testing.T) {
		t.Parallel()
		svc, usuarios, _ := newService(t)

		usuarios.EXPECT().Exists(gomock.Any(), 1).Return(true, nil)
		usuarios.EXPECT().TotalMultasAbertas(gomock.Any(), 1).Return(12.5, nil)

		total, err := svc.TotalMultasAbertas(context.Background(), 1)
		require.NoError(t, err)
		require.Equal(t, 12.5, total)
	})
}

func TestService_CalcularMulta(t *testing.T) {
	t.Parallel()

	t.Run("empréstimo inexistente", func(t *testing.T) {
		t.Parallel()
		svc, _, emprestimos := newService(t)

		emprestimos.EXPECT().Exists(gomock.Any(), 42).Return(false, nil)

		_, err := svc.CalcularMulta(context.Background(), 42)
		require.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("multa por atraso", func(t *testing.T) {
		t.Parallel()
		svc, _, emprestimos := newService(t)

		emprestimos.EXPECT().Exists(gomock.Any(), 7).Return(true, nil)
		emprestimos.EXPECT().CalcularMulta(gomock.Any(), 7).Return(15.0, nil)

		valor, err := svc.CalcularMulta(context.Background(), 7)
		require.NoError(t, err)
		require.Equal(t, 15.0, valor)
	})
}

func TestService_RegistrarDevolucao(t *testing.T) {
	t.Parallel()

	detalhe := model.EmprestimoDetalhe{
		EmprestimoResumo: model.EmprestimoResumo{
			Emprestimo: model.Emprestimo{EmprestimoID: 7, UsuarioID: 1, ExemplarID: 5},
		},
	}

	t.Run("responsável padrão e multa gerada", func(t *testing.T) {
		t.Parallel()
		svc, _, emprestimos := newService(t)

		multa := &model.Multa{MultaID: 3, EmprestimoID: 7, Valor: 15, Status: "aberta"}
		emprestimos.EXPECT().RegistrarDevolucao(gomock.Any(), 7, service.ResponsavelPadrao).Return(nil)
		emprestimos.EXPECT().Get(gomock.Any(), 7).Return(detalhe, nil)
		emprestimos.EXPECT().UltimaMulta(gomock.Any(), 7).Return(multa, nil)

		dev, err := svc.RegistrarDevolucao(context.Background(), 7, "")
		require.NoError(t, err)
		require.Equal(t, detalhe, dev.Emprestimo)
		require.Equal(t, multa, dev.MultaGerada)
	})

	t.Run("devolução em dia sem multa", func(t *testing.T) {
		t.Parallel()
		svc, _, emprestimos := newService(t)

		emprestimos.EXPECT().RegistrarDevolucao(gomock.Any(), 7, "bibliotecaria").Return(nil)
		emprestimos.EXPECT().Get(gomock.Any(), 7).Return(detalhe, nil)
		emprestimos.EXPECT().UltimaMulta(gomock.Any(), 7).Return(nil, nil)

		dev, err := svc.RegistrarDevolucao(context.Background(), 7, "bibliotecaria")
		require.NoError(t, err)
		require.Nil(t, dev.MultaGerada)
	})

	t.Run("falha da procedure interrompe a releitura", func(t *testing.T) {
		t.Parallel()
		svc, _, emprestimos := newService(t)

		emprestimos.EXPECT().
			RegistrarDevolucao(gomock.Any(), 7, service.ResponsavelPadrao).
			Return(errors.New("db internal"))

		_, err := svc.RegistrarDevolucao(context.Background(), 7, "")
		require.Error(t, err)
	})
}
