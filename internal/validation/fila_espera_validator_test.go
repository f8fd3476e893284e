package validation

import (
	"testing"

	"github.com/EduardoMSouza/consultorio-api/internal/delivery/dto"

	"github.com/stretchr/testify/assert"
)

func TestValidateFilaEsperaValid(t *testing.T) {
	assert.Nil(t, ValidateFilaEspera(&dto.FilaEsperaRequest{PacienteID: 1}))
}

func TestValidateFilaEsperaPacienteObrigatorio(t *testing.T) {
	errs := ValidateFilaEspera(&dto.FilaEsperaRequest{PacienteID: 0})
	assert.Equal(t, FieldErrors{"pacienteId": {MsgPacienteObrigatorio}}, errs)
}

func TestValidateFilaEsperaPrioridade(t *testing.T) {
	tests := []struct {
		name       string
		prioridade int
		wantErr    bool
	}{
		{"limite inferior", 0, false},
		{"limite superior", 10, false},
		{"intermediaria", 5, false},
		{"abaixo do minimo", -1, true},
		{"acima do maximo", 11, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &dto.FilaEsperaRequest{PacienteID: 1, Prioridade: &tt.prioridade}

			errs := ValidateFilaEspera(req)
			if tt.wantErr {
				assert.Equal(t, FieldErrors{"prioridade": {MsgPrioridadeIntervalo}}, errs)
			} else {
				assert.Nil(t, errs)
			}
		})
	}
}

func TestValidateFilaEsperaPrioridadeAusente(t *testing.T) {
	// Absent priority defaults server-side, no error
	assert.Nil(t, ValidateFilaEspera(&dto.FilaEsperaRequest{PacienteID: 1, Prioridade: nil}))
}

func TestValidateFilaEsperaPeriodoPreferencial(t *testing.T) {
	for _, periodo := range []string{"MANHA", "TARDE", "NOITE", "QUALQUER", ""} {
		req := &dto.FilaEsperaRequest{PacienteID: 1, PeriodoPreferencial: periodo}
		assert.Nil(t, ValidateFilaEspera(req), "periodo %q", periodo)
	}

	errs := ValidateFilaEspera(&dto.FilaEsperaRequest{PacienteID: 1, PeriodoPreferencial: "MADRUGADA"})
	assert.Equal(t, FieldErrors{"periodoPreferencial": {MsgPeriodoInvalido}}, errs)
}
