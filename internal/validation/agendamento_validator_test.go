package validation

import (
	"testing"

	"github.com/EduardoMSouza/consultorio-api/internal/delivery/dto"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func validAgendamentoRequest() *dto.AgendamentoRequest {
	return &dto.AgendamentoRequest{
		DentistaID:       1,
		PacienteID:       2,
		DataConsulta:     "2026-09-15",
		HoraInicio:       "09:00",
		HoraFim:          "09:30",
		TipoProcedimento: "CONSULTA",
	}
}

func TestValidateAgendamentoValid(t *testing.T) {
	assert.Nil(t, ValidateAgendamento(validAgendamentoRequest()))
}

func TestValidateAgendamentoRequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*dto.AgendamentoRequest)
		field   string
		message string
	}{
		{
			name:    "dentista ausente",
			mutate:  func(r *dto.AgendamentoRequest) { r.DentistaID = 0 },
			field:   "dentistaId",
			message: MsgDentistaObrigatorio,
		},
		{
			name:    "dentista negativo",
			mutate:  func(r *dto.AgendamentoRequest) { r.DentistaID = -3 },
			field:   "dentistaId",
			message: MsgDentistaObrigatorio,
		},
		{
			name:    "paciente ausente",
			mutate:  func(r *dto.AgendamentoRequest) { r.PacienteID = 0 },
			field:   "pacienteId",
			message: MsgPacienteObrigatorio,
		},
		{
			name:    "data ausente",
			mutate:  func(r *dto.AgendamentoRequest) { r.DataConsulta = "" },
			field:   "dataConsulta",
			message: MsgDataObrigatoria,
		},
		{
			name:    "data em branco",
			mutate:  func(r *dto.AgendamentoRequest) { r.DataConsulta = "   " },
			field:   "dataConsulta",
			message: MsgDataObrigatoria,
		},
		{
			name:    "hora inicio ausente",
			mutate:  func(r *dto.AgendamentoRequest) { r.HoraInicio = "" },
			field:   "horaInicio",
			message: MsgHoraInicioObrigatoria,
		},
		{
			name:    "hora fim ausente",
			mutate:  func(r *dto.AgendamentoRequest) { r.HoraFim = "" },
			field:   "horaFim",
			message: MsgHoraFimObrigatoria,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validAgendamentoRequest()
			tt.mutate(req)

			errs := ValidateAgendamento(req)
			assert.NotNil(t, errs)
			assert.Contains(t, errs[tt.field], tt.message)
		})
	}
}

func TestValidateAgendamentoHoraFimPosterior(t *testing.T) {
	tests := []struct {
		name       string
		horaInicio string
		horaFim    string
		wantErr    bool
	}{
		{"fim depois do inicio", "09:00", "09:30", false},
		{"fim igual ao inicio", "09:00", "09:00", true},
		{"fim antes do inicio", "10:00", "09:30", true},
		{"virada de hora", "09:59", "10:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validAgendamentoRequest()
			req.HoraInicio = tt.horaInicio
			req.HoraFim = tt.horaFim

			errs := ValidateAgendamento(req)
			if tt.wantErr {
				assert.Equal(t, FieldErrors{"horaFim": {MsgHoraFimPosterior}}, errs)
			} else {
				assert.Nil(t, errs)
			}
		})
	}
}

func TestValidateAgendamentoHoraOrderingSkippedWhenMissing(t *testing.T) {
	// The ordering check only runs when both times are present
	req := validAgendamentoRequest()
	req.HoraInicio = ""
	req.HoraFim = "09:00"

	errs := ValidateAgendamento(req)
	assert.Equal(t, []string{MsgHoraInicioObrigatoria}, errs["horaInicio"])
	assert.NotContains(t, errs["horaFim"], MsgHoraFimPosterior)
}

func TestValidateAgendamentoValorConsulta(t *testing.T) {
	req := validAgendamentoRequest()
	negativo := decimal.NewFromInt(-50)
	req.ValorConsulta = &negativo

	errs := ValidateAgendamento(req)
	assert.Contains(t, errs["valorConsulta"], MsgValorNegativo)

	zero := decimal.Zero
	req.ValorConsulta = &zero
	assert.Nil(t, ValidateAgendamento(req))
}

func TestValidateAgendamentoAccumulatesErrors(t *testing.T) {
	errs := ValidateAgendamento(&dto.AgendamentoRequest{})

	assert.Len(t, errs, 5)
	assert.Contains(t, errs, "dentistaId")
	assert.Contains(t, errs, "pacienteId")
	assert.Contains(t, errs, "dataConsulta")
	assert.Contains(t, errs, "horaInicio")
	assert.Contains(t, errs, "horaFim")
}
