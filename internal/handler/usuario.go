package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/jomatheusdev/bd-poo-biblioteca/internal/errs"
	"github.com/jomatheusdev/bd-poo-biblioteca/internal/model"
)

func paramID(c echo.Context) (int, error) {
	return strconv.Atoi(c.Param("id"))
}

func (h *Handler) ListarUsuarios(c echo.Context) error {
	usuarios, err := h.usuarioSvc.ListUsuarios(c.Request().Context())
	if err != nil {
		return failErr(c, "Erro ao listar usuários", err)
	}
	return lista(c, "", len(usuarios), usuarios)
}

func (h *Handler) BuscarUsuario(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "ID inválido")
	}
	usuario, err := h.usuarioSvc.GetUsuario(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return fail(c, http.StatusNotFound, "Usuário não encontrado")
		}
		return failErr(c, "Erro ao buscar usuário", err)
	}
	return dados(c, http.StatusOK, "", usuario)
}

func (h *Handler) CriarUsuario(c echo.Context) error {
	var req model.CreateUsuarioRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "JSON inválido")
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Campos obrigatórios: nome, email, cpf, tipo")
	}

	usuario, err := h.usuarioSvc.CreateUsuario(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, errs.ErrDuplicado) {
			return fail(c, http.StatusBadRequest, "Email ou CPF já cadastrado")
		}
		return failErr(c, "Erro ao criar usuário", err)
	}
	return dados(c, http.StatusCreated, "Usuário criado com sucesso", usuario)
}

func (h *Handler) AtualizarUsuario(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "ID inválido")
	}
	var req model.UpdateUsuarioRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "JSON inválido")
	}

	usuario, err := h.usuarioSvc.UpdateUsuario(c.Request().Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrNotFound):
			return fail(c, http.StatusNotFound, "Usuário não encontrado")
		case errors.Is(err, errs.ErrDuplicado):
			return fail(c, http.StatusBadRequest, "Email ou CPF já cadastrado")
		}
		return failErr(c, "Erro ao atualizar usuário", err)
	}
	return dados(c, http.StatusOK, "Usuário atualizado com sucesso", usuario)
}

func (h *Handler) DeletarUsuario(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "ID inválido")
	}
	usuario, err := h.usuarioSvc.DeleteUsuario(c.Request().Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrNotFound):
			return fail(c, http.StatusNotFound, "Usuário não encontrado")
		case errors.Is(err, errs.ErrVinculo):
			return fail(c, http.StatusBadRequest, "Não é possível deletar usuário com empréstimos ou multas vinculadas")
		}
		return failErr(c, "Erro ao deletar usuário", err)
	}
	return dados(c, http.StatusOK, "Usuário deletado com sucesso", usuario)
}

func (h *Handler) TotalMultasAbertas(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "ID inválido")
	}
	total, err := h.usuarioSvc.TotalMultasAbertas(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return fail(c, http.StatusNotFound, "Usuário não encontrado")
		}
		return failErr(c, "Erro ao obter total de multas abertas", err)
	}

	type totalResponse struct {
		Sucesso            bool    `json:"sucesso"`
		UsuarioID          int     `json:"usuario_id"`
		TotalMultasAbertas float64 `json:"total_multas_abertas"`
		Mensagem           string  `json:"mensagem"`
	}
	return c.JSON(http.StatusOK, totalResponse{
		Sucesso:            true,
		UsuarioID:          id,
		TotalMultasAbertas: total,
		Mensagem:           "Total de multas abertas calculado pela função do banco",
	})
}
