package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/jomatheusdev/bd-poo-biblioteca/internal/errs"
	"github.com/jomatheusdev/bd-poo-biblioteca/internal/model"
)

func (h *Handler) ListarEmprestimos(c echo.Context) error {
	emprestimos, err := h.emprestimoSvc.ListEmprestimos(c.Request().Context())
	if err != nil {
		return failErr(c, "Erro ao listar empréstimos", err)
	}
	return lista(c, "", len(emprestimos), emprestimos)
}

func (h *Handler) BuscarEmprestimo(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "ID inválido")
	}
	emprestimo, err := h.emprestimoSvc.GetEmprestimo(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return fail(c, http.StatusNotFound, "Empréstimo não encontrado")
		}
		return failErr(c, "Erro ao buscar empréstimo", err)
	}
	return dados(c, http.StatusOK, "", emprestimo)
}

func (h *Handler) CriarEmprestimo(c echo.Context) error {
	var req model.CreateEmprestimoRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "JSON inválido")
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Campos obrigatórios: usuario_id, exemplar_id")
	}

	emprestimo, err := h.emprestimoSvc.CreateEmprestimo(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, errs.ErrUsuarioInativo) || errors.Is(err, errs.ErrEmprestimoNegado) {
			return fail(c, http.StatusBadRequest, "Empréstimo negado: "+err.Error())
		}
		return failErr(c, "Erro ao criar empréstimo", err)
	}
	return dados(c, http.StatusCreated, "Empréstimo criado com sucesso. Trigger de validação foi executada.", emprestimo)
}

func (h *Handler) AtualizarEmprestimo(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "ID inválido")
	}
	var req model.UpdateEmprestimoRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "JSON inválido")
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Campo obrigatório: data_devolucao")
	}

	emprestimo, err := h.emprestimoSvc.UpdateEmprestimo(c.Request().Context(), id, req.DataDevolucao)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return fail(c, http.StatusNotFound, "Empréstimo não encontrado")
		}
		return failErr(c, "Erro ao atualizar empréstimo", err)
	}
	return dados(c, http.StatusOK, "Empréstimo atualizado. Trigger de auditoria registrou a operação.", emprestimo)
}

func (h *Handler) DeletarEmprestimo(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "ID inválido")
	}
	emprestimo, err := h.emprestimoSvc.DeleteEmprestimo(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return fail(c, http.StatusNotFound, "Empréstimo não encontrado")
		}
		return failErr(c, "Erro ao deletar empréstimo", err)
	}
	return dados(c, http.StatusOK, "Empréstimo deletado com sucesso", emprestimo)
}

func (h *Handler) CalcularMulta(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "ID inválido")
	}
	valor, err := h.emprestimoSvc.CalcularMulta(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return fail(c, http.StatusNotFound, "Empréstimo não encontrado")
		}
		return failErr(c, "Erro ao calcular multa", err)
	}

	type multaResponse struct {
		Sucesso      bool    `json:"sucesso"`
		EmprestimoID int     `json:"emprestimo_id"`
		ValorMulta   float64 `json:"valor_multa"`
		Mensagem     string  `json:"mensagem"`
	}
	return c.JSON(http.StatusOK, multaResponse{
		Sucesso:      true,
		EmprestimoID: id,
		ValorMulta:   valor,
		Mensagem:     "Multa calculada pela função do banco (R$ 2,50/dia)",
	})
}

func (h *Handler) RegistrarDevolucao(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "ID inválido")
	}
	var req model.DevolucaoRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "JSON inválido")
	}

	devolucao, err := h.emprestimoSvc.RegistrarDevolucao(c.Request().Context(), id, req.UsuarioResponsavel)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return fail(c, http.StatusNotFound, "Empréstimo não encontrado")
		}
		return failErr(c, "Erro ao registrar devolução", err)
	}

	type devolucaoResponse struct {
		Sucesso     bool                    `json:"sucesso"`
		Mensagem    string                  `json:"mensagem"`
		Emprestimo  model.EmprestimoDetalhe `json:"emprestimo"`
		MultaGerada *model.Multa            `json:"multa_gerada"`
	}
	return c.JSON(http.StatusOK, devolucaoResponse{
		Sucesso:     true,
		Mensagem:    "Devolução registrada com sucesso pela procedure do banco",
		Emprestimo:  devolucao.Emprestimo,
		MultaGerada: devolucao.MultaGerada,
	})
}

func (h *Handler) ListarAuditoria(c echo.Context) error {
	logs, err := h.emprestimoSvc.ListAuditoria(c.Request().Context())
	if err != nil {
		return failErr(c, "Erro ao listar auditoria", err)
	}
	return lista(c, "Logs gerados automaticamente pela trigger de auditoria", len(logs), logs)
}
