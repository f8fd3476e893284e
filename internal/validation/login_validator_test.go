package validation

import (
	"testing"

	"github.com/EduardoMSouza/consultorio-api/internal/delivery/dto"

	"github.com/stretchr/testify/assert"
)

func TestValidateLogin(t *testing.T) {
	tests := []struct {
		name     string
		login    string
		password string
		want     FieldErrors
	}{
		{
			name:     "valido",
			login:    "admin",
			password: "1234",
			want:     nil,
		},
		{
			name:     "senha longa",
			login:    "recepcao",
			password: "senha-segura",
			want:     nil,
		},
		{
			name:     "login em branco",
			login:    "   ",
			password: "1234",
			want:     FieldErrors{"login": {MsgLoginObrigatorio}},
		},
		{
			name:     "senha vazia",
			login:    "admin",
			password: "",
			want:     FieldErrors{"password": {MsgSenhaObrigatoria}},
		},
		{
			name:     "senha curta",
			login:    "admin",
			password: "123",
			want:     FieldErrors{"password": {MsgSenhaMinima}},
		},
		{
			name:     "ambos invalidos",
			login:    "",
			password: "",
			want: FieldErrors{
				"login":    {MsgLoginObrigatorio},
				"password": {MsgSenhaObrigatoria},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateLogin(&dto.LoginRequest{Login: tt.login, Password: tt.password})
			assert.Equal(t, tt.want, errs)
		})
	}
}

func TestFieldErrorsImplementsError(t *testing.T) {
	errs := FieldErrors{}
	errs.Add("login", MsgLoginObrigatorio)

	var err error = errs
	assert.Contains(t, err.Error(), "login")
	assert.Contains(t, err.Error(), MsgLoginObrigatorio)
}

func TestFieldErrorsOrNil(t *testing.T) {
	assert.Nil(t, FieldErrors{}.OrNil())

	errs := FieldErrors{}
	errs.Add("campo", "mensagem")
	assert.NotNil(t, errs.OrNil())
}
