package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/jomatheusdev/bd-poo-biblioteca/internal/errs"
	"github.com/jomatheusdev/bd-poo-biblioteca/internal/model"

	service_mocks "github.com/jomatheusdev/bd-poo-biblioteca/internal/handler/mocks"
)

var (
	dataEmprestimo = time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	dataPrevista   = time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	dataDevolucao  = time.Date(2026, 8, 21, 0, 0, 0, 0, time.UTC)
)

const emprestimoJSON = `{"emprestimo_id":7,"usuario_id":1,"exemplar_id":5,"data_emprestimo":"2026-08-01T00:00:00Z","data_prevista_devolucao":"2026-08-15T00:00:00Z","data_devolucao":null}`

func novoEmprestimo() model.Emprestimo {
	return model.Emprestimo{
		EmprestimoID:          7,
		UsuarioID:             1,
		ExemplarID:            5,
		DataEmprestimo:        dataEmprestimo,
		DataPrevistaDevolucao: dataPrevista,
	}
}

func TestHandler_CriarEmprestimo(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockEmprestimoService)

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			body: `{"usuario_id":1,"exemplar_id":5}`,
			mockBehavior: func(r *service_mocks.MockEmprestimoService) {
				r.EXPECT().
					CreateEmprestimo(gomock.Any(), model.CreateEmprestimoRequest{UsuarioID: 1, ExemplarID: 5}).
					Return(novoEmprestimo(), nil)
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"sucesso":true,"mensagem":"Empréstimo criado com sucesso. Trigger de validação foi executada.","dados":` + emprestimoJSON + `}`,
			},
		},
		{
			name:         "err. campos obrigatórios",
			body:         `{"usuario_id":1}`,
			mockBehavior: func(r *service_mocks.MockEmprestimoService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"sucesso":false,"mensagem":"Campos obrigatórios: usuario_id, exemplar_id"}`,
			},
		},
		{
			name: "err. usuário inativo",
			body: `{"usuario_id":1,"exemplar_id":5}`,
			mockBehavior: func(r *service_mocks.MockEmprestimoService) {
				r.EXPECT().
					CreateEmprestimo(gomock.Any(), gomock.Any()).
					Return(model.Emprestimo{}, errs.Classify(&pgconn.PgError{
						Code:    "P0001",
						Message: "Usuário 1 está inativo",
					}))
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"sucesso":false,"mensagem":"Empréstimo negado: Usuário 1 está inativo"}`,
			},
		},
		{
			name: "err. exemplar indisponível",
			body: `{"usuario_id":1,"exemplar_id":5}`,
			mockBehavior: func(r *service_mocks.MockEmprestimoService) {
				r.EXPECT().
					CreateEmprestimo(gomock.Any(), gomock.Any()).
					Return(model.Emprestimo{}, errs.Classify(&pgconn.PgError{
						Code:    "P0001",
						Message: "Exemplar 5 não está disponível",
					}))
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"sucesso":false,"mensagem":"Empréstimo negado: Exemplar 5 não está disponível"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, _, emprestimoSvc := newRouter(t)
			tt.mockBehavior(emprestimoSvc)

			r := httptest.NewRequest(http.MethodPost, "/api/emprestimos", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.JSONEq(t, tt.response.expectedBody, w.Body.String())
		})
	}
}

func TestHandler_ListarEmprestimos(t *testing.T) {
	t.Parallel()
	e, _, emprestimoSvc := newRouter(t)

	resumo := model.EmprestimoResumo{
		Emprestimo:     novoEmprestimo(),
		UsuarioNome:    "Ana",
		CodigoExemplar: "EX-0001",
		LivroTitulo:    "Sistemas de Banco de Dados",
	}
	emprestimoSvc.EXPECT().ListEmprestimos(gomock.Any()).Return([]model.EmprestimoResumo{resumo}, nil)

	w := httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/emprestimos", http.NoBody))

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t,
		`{"sucesso":true,"total":1,"dados":[{"emprestimo_id":7,"usuario_id":1,"exemplar_id":5,"data_emprestimo":"2026-08-01T00:00:00Z","data_prevista_devolucao":"2026-08-15T00:00:00Z","data_devolucao":null,"usuario_nome":"Ana","codigo_exemplar":"EX-0001","livro_titulo":"Sistemas de Banco de Dados"}]}`,
		w.Body.String())
}

func TestHandler_CalcularMulta(t *testing.T) {
	t.Parallel()

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		e, _, emprestimoSvc := newRouter(t)
		emprestimoSvc.EXPECT().CalcularMulta(gomock.Any(), 7).Return(15.0, nil)

		w := httptest.NewRecorder()
		e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/emprestimos/7/multa", http.NoBody))

		require.Equal(t, http.StatusOK, w.Code)
		require.JSONEq(t,
			`{"sucesso":true,"emprestimo_id":7,"valor_multa":15,"mensagem":"Multa calculada pela função do banco (R$ 2,50/dia)"}`,
			w.Body.String())
	})

	t.Run("empréstimo inexistente", func(t *testing.T) {
		t.Parallel()
		e, _, emprestimoSvc := newRouter(t)
		emprestimoSvc.EXPECT().CalcularMulta(gomock.Any(), 99).Return(0.0, errs.ErrNotFound)

		w := httptest.NewRecorder()
		e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/emprestimos/99/multa", http.NoBody))

		require.Equal(t, http.StatusNotFound, w.Code)
		require.JSONEq(t, `{"sucesso":false,"mensagem":"Empréstimo não encontrado"}`, w.Body.String())
	})
}

func TestHandler_RegistrarDevolucao(t *testing.T) {
	t.Parallel()

	detalhe := model.EmprestimoDetalhe{
		EmprestimoResumo: model.EmprestimoResumo{
			Emprestimo: model.Emprestimo{
				EmprestimoID:          7,
				UsuarioID:             1,
				ExemplarID:            5,
				DataEmprestimo:        dataEmprestimo,
				DataPrevistaDevolucao: dataPrevista,
				DataDevolucao:         &dataDevolucao,
			},
			UsuarioNome:    "Ana",
			CodigoExemplar: "EX-0001",
			LivroTitulo:    "Sistemas de Banco de Dados",
		},
		UsuarioEmail:   "a@x.com",
		ExemplarEstado: "bom",
		LivroISBN:      "978-85-430-2539-5",
	}
	const detalheJSON = `{"emprestimo_id":7,"usuario_id":1,"exemplar_id":5,"data_emprestimo":"2026-08-01T00:00:00Z","data_prevista_devolucao":"2026-08-15T00:00:00Z","data_devolucao":"2026-08-21T00:00:00Z","usuario_nome":"Ana","codigo_exemplar":"EX-0001","livro_titulo":"Sistemas de Banco de Dados","usuario_email":"a@x.com","exemplar_estado":"bom","livro_isbn":"978-85-430-2539-5"}`

	t.Run("com multa gerada", func(t *testing.T) {
		t.Parallel()
		e, _, emprestimoSvc := newRouter(t)

		multa := &model.Multa{
			MultaID:      3,
			EmprestimoID: 7,
			Valor:        15,
			Status:       "aberta",
			DataGeracao:  time.Date(2026, 8, 21, 10, 0, 0, 0, time.UTC),
		}
		emprestimoSvc.EXPECT().
			RegistrarDevolucao(gomock.Any(), 7, "").
			Return(model.Devolucao{Emprestimo: detalhe, MultaGerada: multa}, nil)

		w := httptest.NewRecorder()
		e.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/emprestimos/7/devolucao", nil))

		require.Equal(t, http.StatusOK, w.Code)
		require.JSONEq(t,
			`{"sucesso":true,"mensagem":"Devolução registrada com sucesso pela procedure do banco","emprestimo":`+detalheJSON+`,"multa_gerada":{"multa_id":3,"emprestimo_id":7,"valor":15,"status":"aberta","data_geracao":"2026-08-21T10:00:00Z"}}`,
			w.Body.String())
	})

	t.Run("sem multa, responsável informado", func(t *testing.T) {
		t.Parallel()
		e, _, emprestimoSvc := newRouter(t)

		emprestimoSvc.EXPECT().
			RegistrarDevolucao(gomock.Any(), 7, "bibliotecaria").
			Return(model.Devolucao{Emprestimo: detalhe}, nil)

		r := httptest.NewRequest(http.MethodPost, "/api/emprestimos/7/devolucao",
			strings.NewReader(`{"usuario_responsavel":"bibliotecaria"}`))
		r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Sucesso     bool         `json:"sucesso"`
			MultaGerada *model.Multa `json:"multa_gerada"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.True(t, resp.Sucesso)
		require.Nil(t, resp.MultaGerada)
	})
}

func TestHandler_ListarAuditoria(t *testing.T) {
	t.Parallel()
	e, _, emprestimoSvc := newRouter(t)

	logs := []model.Auditoria{
		{
			AuditoriaID:     10,
			EmprestimoID:    7,
			Operacao:        "UPDATE",
			UsuarioBanco:    "api_backend",
			Quando:          time.Date(2026, 8, 21, 10, 0, 0, 0, time.UTC),
			DadosAnteriores: json.RawMessage(`{"data_devolucao":null}`),
			DadosNovos:      json.RawMessage(`{"data_devolucao":"2026-08-21"}`),
		},
	}
	emprestimoSvc.EXPECT().ListAuditoria(gomock.Any()).Return(logs, nil)

	w := httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/emprestimos/auditoria/logs", http.NoBody))

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t,
		`{"sucesso":true,"total":1,"mensagem":"Logs gerados automaticamente pela trigger de auditoria","dados":[{"auditoria_id":10,"emprestimo_id":7,"operacao":"UPDATE","usuario_banco":"api_backend","quando":"2026-08-21T10:00:00Z","dados_anteriores":{"data_devolucao":null},"dados_novos":{"data_devolucao":"2026-08-21"}}]}`,
		w.Body.String())
}

func TestHandler_AtualizarEmprestimo(t *testing.T) {
	t.Parallel()

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		e, _, emprestimoSvc := newRouter(t)

		devolvido := novoEmprestimo()
		devolvido.DataDevolucao = &dataDevolucao
		emprestimoSvc.EXPECT().
			UpdateEmprestimo(gomock.Any(), 7, "2026-08-21").
			Return(devolvido, nil)

		r := httptest.NewRequest(http.MethodPut, "/api/emprestimos/7",
			strings.NewReader(`{"data_devolucao":"2026-08-21"}`))
		r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		require.JSONEq(t,
			`{"sucesso":true,"mensagem":"Empréstimo atualizado. Trigger de auditoria registrou a operação.","dados":{"emprestimo_id":7,"usuario_id":1,"exemplar_id":5,"data_emprestimo":"2026-08-01T00:00:00Z","data_prevista_devolucao":"2026-08-15T00:00:00Z","data_devolucao":"2026-08-21T00:00:00Z"}}`,
			w.Body.String())
	})

	t.Run("campo obrigatório ausente", func(t *testing.T) {
		t.Parallel()
		e, _, _ := newRouter(t)

		r := httptest.NewRequest(http.MethodPut, "/api/emprestimos/7", strings.NewReader(`{}`))
		r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusBadRequest, w.Code)
		require.JSONEq(t, `{"sucesso":false,"mensagem":"Campo obrigatório: data_devolucao"}`, w.Body.String())
	})
}
