package converter

import (
	"github.com/EduardoMSouza/consultorio-api/internal/delivery/dto"
	"github.com/EduardoMSouza/consultorio-api/internal/domain/entity"
)

const dateLayout = "2006-01-02"

// AgendamentoToResponse converts an Agendamento entity to its response DTO
func AgendamentoToResponse(agendamento *entity.Agendamento) *dto.AgendamentoResponse {
	if agendamento == nil {
		return nil
	}

	response := &dto.AgendamentoResponse{
		ID:                 agendamento.ID,
		DentistaID:         agendamento.DentistaID,
		PacienteID:         agendamento.PacienteID,
		DataConsulta:       agendamento.DataConsulta.Format(dateLayout),
		HoraInicio:         agendamento.HoraInicio,
		HoraFim:            agendamento.HoraFim,
		TipoProcedimento:   agendamento.TipoProcedimento,
		ValorConsulta:      agendamento.ValorConsulta,
		Observacoes:        agendamento.Observacoes,
		Status:             string(agendamento.Status),
		CriadoEm:           agendamento.CriadoEm,
		CriadoPor:          agendamento.CriadoPor,
		AtualizadoEm:       agendamento.AtualizadoEm,
		AtualizadoPor:      agendamento.AtualizadoPor,
		ConfirmadoEm:       agendamento.ConfirmadoEm,
		CanceladoEm:        agendamento.CanceladoEm,
		CanceladoPor:       agendamento.CanceladoPor,
		MotivoCancelamento: agendamento.MotivoCancelamento,
		LembreteEnviado:    agendamento.LembreteEnviado,
		LembreteEnviadoEm:  agendamento.LembreteEnviadoEm,
	}

	if agendamento.Dentista.ID != 0 {
		response.Dentista = DentistaToResponse(&agendamento.Dentista)
	}
	if agendamento.Paciente.ID != 0 {
		response.Paciente = PacienteToResponse(&agendamento.Paciente)
	}

	return response
}

// AgendamentosToResponses converts a slice of entities to response DTOs
func AgendamentosToResponses(agendamentos []entity.Agendamento) []dto.AgendamentoResponse {
	responses := make([]dto.AgendamentoResponse, len(agendamentos))
	for i := range agendamentos {
		responses[i] = *AgendamentoToResponse(&agendamentos[i])
	}
	return responses
}
