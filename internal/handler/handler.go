package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	md "github.com/jomatheusdev/bd-poo-biblioteca/pkg/middleware"
	"github.com/jomatheusdev/bd-poo-biblioteca/pkg/validate"
)

const Versao = "2.0.0"

type Handler struct {
	usuarioSvc    UsuarioService
	emprestimoSvc EmprestimoService
	log           *zap.Logger
}

func New(usuarioSvc UsuarioService, emprestimoSvc EmprestimoService, log *zap.Logger) *Handler {
	return &Handler{
		usuarioSvc:    usuarioSvc,
		emprestimoSvc: emprestimoSvc,
		log:           log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))
	e.HTTPErrorHandler = h.errorHandler
	e.Validator = validate.NewCustomValidator()

	e.GET("/", h.Index)

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)

	api := e.Group("/api",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig()),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)

	api.GET("/usuarios", h.ListarUsuarios)
	api.GET("/usuarios/:id", h.BuscarUsuario)
	api.POST("/usuarios", h.CriarUsuario)
	api.PUT("/usuarios/:id", h.AtualizarUsuario)
	api.DELETE("/usuarios/:id", h.DeletarUsuario)
	api.GET("/usuarios/:id/multas/total", h.TotalMultasAbertas)

	api.GET("/emprestimos", h.ListarEmprestimos)
	api.GET("/emprestimos/:id", h.BuscarEmprestimo)
	api.POST("/emprestimos", h.CriarEmprestimo)
	api.PUT("/emprestimos/:id", h.AtualizarEmprestimo)
	api.DELETE("/emprestimos/:id", h.DeletarEmprestimo)
	api.GET("/emprestimos/:id/multa", h.CalcularMulta)
	api.POST("/emprestimos/:id/devolucao", h.RegistrarDevolucao)
	api.GET("/emprestimos/auditoria/logs", h.ListarAuditoria)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) Index(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"mensagem": "API Sistema de Biblioteca Universitária - Fase 2",
		"versao":   Versao,
		"documentacao": map[string]interface{}{
			"usuarios":    "/api/usuarios",
			"emprestimos": "/api/emprestimos",
			"funcoes": []string{
				"GET /api/usuarios/:id/multas/total - Chama fn_total_multas_abertas_usuario()",
				"GET /api/emprestimos/:id/multa - Chama fn_calcular_multa_atraso()",
			},
			"procedures": []string{
				"POST /api/emprestimos/:id/devolucao - Chama prc_registrar_devolucao()",
			},
			"triggers": []string{
				"POST /api/emprestimos - Dispara trg_emprestimo_validacao (validação)",
				"POST/PUT /api/emprestimos - Dispara trg_emprestimo_auditoria (auditoria)",
			},
			"auditoria": "GET /api/emprestimos/auditoria/logs",
		},
	})
}

// errorHandler keeps every failure inside the API envelope: unmatched routes
// become the "Rota não encontrada" body, anything uncaught becomes a 500
// with the raw error text.
func (h *Handler) errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		switch he.Code {
		case http.StatusNotFound, http.StatusMethodNotAllowed:
			_ = c.JSON(http.StatusNotFound, response{
				Sucesso:  false,
				Mensagem: "Rota não encontrada",
				Rota:     c.Request().URL.Path,
			})
		default:
			_ = c.JSON(he.Code, response{Sucesso: false, Mensagem: fmt.Sprint(he.Message)})
		}
		return
	}

	h.log.Error("erro não tratado", zap.Error(err))
	_ = c.JSON(http.StatusInternalServerError, response{
		Sucesso:  false,
		Mensagem: "Erro interno do servidor",
		Erro:     err.Error(),
	})
}
