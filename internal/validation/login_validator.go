package validation

import (
	"strings"

	"github.com/EduardoMSouza/consultorio-api/internal/delivery/dto"
)

const (
	MsgLoginObrigatorio = "Login é obrigatório"
	MsgSenhaObrigatoria = "Senha é obrigatória"
	MsgSenhaMinima      = "Senha deve ter no mínimo 4 caracteres"

	senhaTamanhoMinimo = 4
)

// ValidateLogin requires a non-blank login and a password of at least four
// characters. This mirrors the check the front end runs before calling the
// authentication endpoint; the real password policy lives in the user admin
// flow. Returns nil when valid.
func ValidateLogin(req *dto.LoginRequest) FieldErrors {
	errs := FieldErrors{}

	if strings.TrimSpace(req.Login) == "" {
		errs.Add("login", MsgLoginObrigatorio)
	}

	senha := req.Password
	if strings.TrimSpace(senha) == "" {
		errs.Add("password", MsgSenhaObrigatoria)
	} else if len(senha) < senhaTamanhoMinimo {
		errs.Add("password", MsgSenhaMinima)
	}

	return errs.OrNil()
}
