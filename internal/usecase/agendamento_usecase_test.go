package usecase

import (
	"context"
	"testing"

	"github.com/EduardoMSouza/consultorio-api/internal/delivery/dto"
	"github.com/EduardoMSouza/consultorio-api/internal/validation"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

// The fail-fast contract: invalid input is rejected before any repository
// or database access. These tests build the usecase with nil dependencies,
// so any accidental repository call panics.
func newAgendamentoUsecaseSemDeps() AgendamentoUsecase {
	return NewAgendamentoUsecase(nil, logrus.New(), nil, nil, nil, nil)
}

func TestAgendamentoCreateValidacaoAntesDoRepositorio(t *testing.T) {
	u := newAgendamentoUsecaseSemDeps()

	resp, err := u.Create(context.Background(), &dto.AgendamentoRequest{}, "recepcao")

	assert.Nil(t, resp)
	var fieldErrors validation.FieldErrors
	assert.ErrorAs(t, err, &fieldErrors)
	assert.Contains(t, fieldErrors, "dentistaId")
	assert.Contains(t, fieldErrors, "pacienteId")
}

func TestAgendamentoCreateHoraFimAnterior(t *testing.T) {
	u := newAgendamentoUsecaseSemDeps()

	req := &dto.AgendamentoRequest{
		DentistaID:   1,
		PacienteID:   2,
		DataConsulta: "2026-09-15",
		HoraInicio:   "10:00",
		HoraFim:      "09:00",
	}

	resp, err := u.Create(context.Background(), req, "recepcao")

	assert.Nil(t, resp)
	var fieldErrors validation.FieldErrors
	assert.ErrorAs(t, err, &fieldErrors)
	assert.Equal(t, []string{validation.MsgHoraFimPosterior}, fieldErrors["horaFim"])
}

func TestAgendamentoCancelarMotivoObrigatorio(t *testing.T) {
	u := newAgendamentoUsecaseSemDeps()

	for _, motivo := range []string{"", "   ", "\t"} {
		resp, err := u.Cancelar(context.Background(), 1, motivo, "recepcao")
		assert.Nil(t, resp)
		assert.ErrorIs(t, err, ErrMotivoObrigatorio)
	}
}

func TestAgendamentoUpdateValidacaoAntesDoRepositorio(t *testing.T) {
	u := newAgendamentoUsecaseSemDeps()

	resp, err := u.Update(context.Background(), 1, &dto.AgendamentoRequest{}, "recepcao")

	assert.Nil(t, resp)
	var fieldErrors validation.FieldErrors
	assert.ErrorAs(t, err, &fieldErrors)
}
