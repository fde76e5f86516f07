package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/planner/internal/auth/service"
	"github.com/aussiebroadwan/planner/pkg/plannersdk"
	"github.com/aussiebroadwan/planner/pkg/slogx"
)

// User-facing messages. The planner UI is in Portuguese.
const (
	MsgRegisterFieldsRequired = "Todos os campos são obrigatórios"
	MsgCredentialsRequired    = "Email e senha são obrigatórios"
	MsgEmailRequired          = "Email é obrigatório"
	MsgResetFieldsRequired    = "Token e nova senha são obrigatórios"
	MsgPasswordMismatch       = "As senhas não coincidem"
	MsgPasswordTooShort       = "A senha deve ter pelo menos 6 caracteres"
	MsgPasswordTooLong        = "A senha deve ter no máximo 72 caracteres"
	MsgInvalidEmail           = "Email inválido"
	MsgEmailTaken             = "Este email já está cadastrado"
	MsgInvalidCredentials     = "Credenciais inválidas"
	MsgUnauthorized           = "Não autorizado"
	MsgUserNotFound           = "Usuário não encontrado"
	MsgInvalidToken           = "Token inválido ou expirado"
	MsgInternal               = "Erro interno do servidor"

	MsgRegistered     = "Conta criada com sucesso!"
	MsgResetRequested = "Se o email existir, você receberá um link de redefinição de senha."
	MsgPasswordReset  = "Senha redefinida com sucesso!"
	MsgLoggedOut      = "Sessão encerrada"
	MsgDatabaseDown   = "Database connection failed"
)

// errorTable is checked in order, so specific errors come before the kind
// they wrap.
var errorTable = []struct {
	err     error
	status  int
	message string
}{
	{service.ErrRegisterFieldsRequired, http.StatusBadRequest, MsgRegisterFieldsRequired},
	{service.ErrCredentialsRequired, http.StatusBadRequest, MsgCredentialsRequired},
	{service.ErrEmailRequired, http.StatusBadRequest, MsgEmailRequired},
	{service.ErrResetFieldsRequired, http.StatusBadRequest, MsgResetFieldsRequired},
	{service.ErrPasswordMismatch, http.StatusBadRequest, MsgPasswordMismatch},
	{service.ErrPasswordTooShort, http.StatusBadRequest, MsgPasswordTooShort},
	{service.ErrPasswordTooLong, http.StatusBadRequest, MsgPasswordTooLong},
	{service.ErrInvalidEmail, http.StatusBadRequest, MsgInvalidEmail},
	{service.ErrEmailTaken, http.StatusConflict, MsgEmailTaken},
	{service.ErrInvalidCredentials, http.StatusUnauthorized, MsgInvalidCredentials},
	{service.ErrInvalidSession, http.StatusUnauthorized, MsgUnauthorized},
	{service.ErrUserNotFound, http.StatusNotFound, MsgUserNotFound},
	{service.ErrInvalidToken, http.StatusBadRequest, MsgInvalidToken},
}

// writeError maps a service error to its status and message. Anything not in
// the table is logged and reported as a generic 500.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	for _, e := range errorTable {
		if errors.Is(err, e.err) {
			plannersdk.NewAPIError(e.status, e.message).WriteError(w)
			return
		}
	}

	slogx.FromContext(r.Context()).Error("request failed", slog.Any("error", err))
	plannersdk.NewAPIError(http.StatusInternalServerError, MsgInternal).WriteError(w)
}
