package usecase

import (
	"context"
	"testing"

	"github.com/EduardoMSouza/consultorio-api/internal/delivery/dto"
	"github.com/EduardoMSouza/consultorio-api/internal/validation"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func newFilaUsecaseSemDeps() FilaEsperaUsecase {
	return NewFilaEsperaUsecase(nil, logrus.New(), nil, nil, nil, nil, nil)
}

func TestFilaCreateValidacaoAntesDoRepositorio(t *testing.T) {
	u := newFilaUsecaseSemDeps()

	resp, err := u.Create(context.Background(), &dto.FilaEsperaRequest{PacienteID: 0}, "recepcao")

	assert.Nil(t, resp)
	var fieldErrors validation.FieldErrors
	assert.ErrorAs(t, err, &fieldErrors)
	assert.Equal(t, []string{validation.MsgPacienteObrigatorio}, fieldErrors["pacienteId"])
}

func TestFilaCreatePrioridadeForaDoIntervalo(t *testing.T) {
	u := newFilaUsecaseSemDeps()

	for _, prioridade := range []int{-1, 11, 100} {
		p := prioridade
		resp, err := u.Create(context.Background(), &dto.FilaEsperaRequest{PacienteID: 1, Prioridade: &p}, "recepcao")

		assert.Nil(t, resp)
		var fieldErrors validation.FieldErrors
		assert.ErrorAs(t, err, &fieldErrors)
		assert.Equal(t, []string{validation.MsgPrioridadeIntervalo}, fieldErrors["prioridade"])
	}
}

func TestFilaExpirarDataLimite(t *testing.T) {
	u := newFilaUsecaseSemDeps()

	resp, err := u.Expirar(context.Background(), "", "admin")
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrDataLimiteVazia)

	resp, err = u.Expirar(context.Background(), "15/09/2026", "admin")
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrDataInvalida)
}
