package model

import (
	"encoding/json"
	"time"
)

type Usuario struct {
	UsuarioID    int       `json:"usuario_id" db:"usuario_id"`
	Nome         string    `json:"nome" db:"nome"`
	Email        string    `json:"email" db:"email"`
	CPF          string    `json:"cpf" db:"cpf"`
	Tipo         string    `json:"tipo" db:"tipo"`
	Ativo        bool      `json:"ativo" db:"ativo"`
	DataCadastro time.Time `json:"data_cadastro" db:"data_cadastro"`
}

type CreateUsuarioRequest struct {
	Nome  string `json:"nome" validate:"required"`
	Email string `json:"email" validate:"required"`
	CPF   string `json:"cpf" validate:"required"`
	Tipo  string `json:"tipo" validate:"required"`
}

// UpdateUsuarioRequest is a partial update: nil fields keep their value.
type UpdateUsuarioRequest struct {
	Nome  *string `json:"nome"`
	Email *string `json:"email"`
	CPF   *string `json:"cpf"`
	Tipo  *string `json:"tipo"`
	Ativo *bool   `json:"ativo"`
}

type Emprestimo struct {
	EmprestimoID          int        `json:"emprestimo_id" db:"emprestimo_id"`
	UsuarioID             int        `json:"usuario_id" db:"usuario_id"`
	ExemplarID            int        `json:"exemplar_id" db:"exemplar_id"`
	DataEmprestimo        time.Time  `json:"data_emprestimo" db:"data_emprestimo"`
	DataPrevistaDevolucao time.Time  `json:"data_prevista_devolucao" db:"data_prevista_devolucao"`
	DataDevolucao         *time.Time `json:"data_devolucao" db:"data_devolucao"`
}

// EmprestimoResumo is the listing view, joined with display fields.
type EmprestimoResumo struct {
	Emprestimo
	UsuarioNome    string `json:"usuario_nome" db:"usuario_nome"`
	CodigoExemplar string `json:"codigo_exemplar" db:"codigo_exemplar"`
	LivroTitulo    string `json:"livro_titulo" db:"livro_titulo"`
}

type EmprestimoDetalhe struct {
	EmprestimoResumo
	UsuarioEmail   string `json:"usuario_email" db:"usuario_email"`
	ExemplarEstado string `json:"exemplar_estado" db:"exemplar_estado"`
	LivroISBN      string `json:"livro_isbn" db:"livro_isbn"`
}

type CreateEmprestimoRequest struct {
	UsuarioID      int `json:"usuario_id" validate:"required"`
	ExemplarID     int `json:"exemplar_id" validate:"required"`
	DiasEmprestimo int `json:"dias_emprestimo"`
}

// NovoEmprestimo carries the insert parameters after the service computed
// the due date.
type NovoEmprestimo struct {
	UsuarioID             int
	ExemplarID            int
	DataPrevistaDevolucao time.Time
}

type UpdateEmprestimoRequest struct {
	DataDevolucao string `json:"data_devolucao" validate:"required"`
}

type DevolucaoRequest struct {
	UsuarioResponsavel string `json:"usuario_responsavel"`
}

type Multa struct {
	MultaID      int       `json:"multa_id" db:"multa_id"`
	EmprestimoID int       `json:"emprestimo_id" db:"emprestimo_id"`
	Valor        float64   `json:"valor" db:"valor"`
	Status       string    `json:"status" db:"status"`
	DataGeracao  time.Time `json:"data_geracao" db:"data_geracao"`
}

// Devolucao is the read-back after prc_registrar_devolucao: MultaGerada is
// nil when the loan came back on time.
type Devolucao struct {
	Emprestimo  EmprestimoDetalhe `json:"emprestimo"`
	MultaGerada *Multa            `json:"multa_gerada"`
}

type Auditoria struct {
	AuditoriaID     int             `json:"auditoria_id" db:"auditoria_id"`
	EmprestimoID    int             `json:"emprestimo_id" db:"emprestimo_id"`
	Operacao        string          `json:"operacao" db:"operacao"`
	UsuarioBanco    string          `json:"usuario_banco" db:"usuario_banco"`
	Quando          time.Time       `json:"quando" db:"quando"`
	DadosAnteriores json.RawMessage `json:"dados_anteriores" db:"dados_anteriores"`
	DadosNovos      json.RawMessage `json:"dados_novos" db:"dados_novos"`
}
