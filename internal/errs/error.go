// Package errs classifies database failures into domain errors. It is the
// single place that knows about SQLSTATEs and trigger message wording.
package errs

import (
	"context"
	"errors"
	"net"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNotFound         = errors.New("não encontrado")
	ErrDuplicado        = errors.New("violação de unicidade")
	ErrVinculo          = errors.New("violação de integridade referencial")
	ErrUsuarioInativo   = errors.New("usuário inativo")
	ErrEmprestimoNegado = errors.New("empréstimo negado")
	ErrConexao          = errors.New("falha de conexão com o banco")
)

// dbError keeps the database-provided text while unwrapping to the sentinel,
// so handlers can branch with errors.Is and still show the trigger message.
type dbError struct {
	kind error
	msg  string
}

func (e *dbError) Error() string {
	if e.msg != "" {
		return e.msg
	}
	return e.kind.Error()
}

func (e *dbError) Unwrap() error { return e.kind }

func wrap(kind error, msg string) error {
	return &dbError{kind: kind, msg: msg}
}

// Classify maps a raw database error to one of the sentinels above.
// Unclassified errors pass through unchanged and end up as a 500.
//
// Trigger-raised exceptions arrive as SQLSTATE P0001 with free text; the
// substring matching on that text is a known fragility inherited from the
// database contract: the wording is owned by the triggers, not by this code.
func Classify(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == pgerrcode.UniqueViolation:
			return wrap(ErrDuplicado, pgErr.Message)
		case pgErr.Code == pgerrcode.ForeignKeyViolation:
			return wrap(ErrVinculo, pgErr.Message)
		case pgerrcode.IsConnectionException(pgErr.Code):
			return wrap(ErrConexao, pgErr.Message)
		case pgErr.Code == pgerrcode.RaiseException:
			return classifyTriggerMessage(pgErr.Message, err)
		}
		return err
	}

	if errors.Is(err, context.DeadlineExceeded) || pgconn.Timeout(err) {
		return wrap(ErrConexao, err.Error())
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return wrap(ErrConexao, err.Error())
	}

	return err
}

func classifyTriggerMessage(msg string, orig error) error {
	lower := strings.ToLower(msg)
	switch {
	case strings.Contains(lower, "inativo"):
		return wrap(ErrUsuarioInativo, msg)
	case strings.Contains(lower, "disponível"), strings.Contains(lower, "disponivel"),
		strings.Contains(lower, "multas"):
		return wrap(ErrEmprestimoNegado, msg)
	}
	return orig
}
