package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// response is the API envelope: {sucesso, total?, mensagem?, dados?} on
// success, {sucesso:false, mensagem, erro?} on failure.
type response struct {
	Sucesso  bool        `json:"sucesso"`
	Total    *int        `json:"total,omitempty"`
	Mensagem string      `json:"mensagem,omitempty"`
	Dados    interface{} `json:"dados,omitempty"`
	Erro     string      `json:"erro,omitempty"`
	Rota     string      `json:"rota,omitempty"`
}

func dados(c echo.Context, status int, mensagem string, v interface{}) error {
	return c.JSON(status, response{Sucesso: true, Mensagem: mensagem, Dados: v})
}

func lista(c echo.Context, mensagem string, total int, v interface{}) error {
	return c.JSON(http.StatusOK, response{Sucesso: true, Total: &total, Mensagem: mensagem, Dados: v})
}

func fail(c echo.Context, status int, mensagem string) error {
	return c.JSON(status, response{Sucesso: false, Mensagem: mensagem})
}

func failErr(c echo.Context, mensagem string, err error) error {
	return c.JSON(http.StatusInternalServerError, response{Sucesso: false, Mensagem: mensagem, Erro: err.Error()})
}
