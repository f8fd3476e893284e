package validation

import (
	"github.com/EduardoMSouza/consultorio-api/internal/delivery/dto"
	"github.com/EduardoMSouza/consultorio-api/internal/domain/entity"
)

const (
	MsgPrioridadeIntervalo = "Prioridade deve estar entre 0 e 10"
	MsgPeriodoInvalido     = "Período preferencial inválido"
)

// ValidateFilaEspera checks the waiting-list request: pacienteId required
// and positive; prioridade, when present, within [0, 10]; the preferred
// period must be one of the known values. Returns nil when valid.
func ValidateFilaEspera(req *dto.FilaEsperaRequest) FieldErrors {
	errs := FieldErrors{}

	if req.PacienteID <= 0 {
		errs.Add("pacienteId", MsgPacienteObrigatorio)
	}

	if req.Prioridade != nil {
		if *req.Prioridade < entity.PrioridadeMinima || *req.Prioridade > entity.PrioridadeMaxima {
			errs.Add("prioridade", MsgPrioridadeIntervalo)
		}
	}

	if req.PeriodoPreferencial != "" {
		switch entity.PeriodoPreferencial(req.PeriodoPreferencial) {
		case entity.PeriodoManha, entity.PeriodoTarde, entity.PeriodoNoite, entity.PeriodoQualquer:
		default:
			errs.Add("periodoPreferencial", MsgPeriodoInvalido)
		}
	}

	return errs.OrNil()
}
