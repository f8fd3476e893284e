package validation

import (
	"strings"

	"github.com/EduardoMSouza/consultorio-api/internal/delivery/dto"
)

// Messages returned by ValidateAgendamento. The front end matches on these
// strings, so they are part of the wire contract.
const (
	MsgDentistaObrigatorio   = "Dentista é obrigatório"
	MsgPacienteObrigatorio   = "Paciente é obrigatório"
	MsgDataObrigatoria       = "Data da consulta é obrigatória"
	MsgHoraInicioObrigatoria = "Hora início é obrigatória"
	MsgHoraFimObrigatoria    = "Hora fim é obrigatória"
	MsgHoraFimPosterior      = "Hora fim deve ser posterior à hora início"
	MsgValorNegativo         = "Valor da consulta não pode ser negativo"
)

// ValidateAgendamento checks the appointment request:
//   - dentistaId and pacienteId required, positive
//   - dataConsulta, horaInicio, horaFim required
//   - horaInicio must sort before horaFim; HH:MM 24-hour strings are
//     fixed-width, so a lexicographic compare is correct
//   - valorConsulta, when present, must not be negative
//
// Returns nil when the request is valid.
func ValidateAgendamento(req *dto.AgendamentoRequest) FieldErrors {
	errs := FieldErrors{}

	if req.DentistaID <= 0 {
		errs.Add("dentistaId", MsgDentistaObrigatorio)
	}
	if req.PacienteID <= 0 {
		errs.Add("pacienteId", MsgPacienteObrigatorio)
	}
	if strings.TrimSpace(req.DataConsulta) == "" {
		errs.Add("dataConsulta", MsgDataObrigatoria)
	}

	inicio := strings.TrimSpace(req.HoraInicio)
	fim := strings.TrimSpace(req.HoraFim)
	if inicio == "" {
		errs.Add("horaInicio", MsgHoraInicioObrigatoria)
	}
	if fim == "" {
		errs.Add("horaFim", MsgHoraFimObrigatoria)
	}
	if inicio != "" && fim != "" && inicio >= fim {
		errs.Add("horaFim", MsgHoraFimPosterior)
	}

	if req.ValorConsulta != nil && req.ValorConsulta.IsNegative() {
		errs.Add("valorConsulta", MsgValorNegativo)
	}

	return errs.OrNil()
}
