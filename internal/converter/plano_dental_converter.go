package converter

import (
	"github.com/EduardoMSouza/consultorio-api/internal/delivery/dto"
	"github.com/EduardoMSouza/consultorio-api/internal/domain/entity"
)

func PlanoDentalToResponse(plano *entity.PlanoDental) *dto.PlanoDentalResponse {
	if plano == nil {
		return nil
	}

	response := &dto.PlanoDentalResponse{
		ID:           plano.ID,
		PacienteID:   plano.PacienteID,
		DentistaID:   plano.DentistaID,
		Dente:        plano.Dente,
		Procedimento: plano.Procedimento,
		Valor:        plano.Valor,
		Observacoes:  plano.Observacoes,
		Status:       string(plano.Status),
		CriadoEm:     plano.CriadoEm,
		AtualizadoEm: plano.AtualizadoEm,
	}

	if plano.Paciente.ID != 0 {
		response.Paciente = PacienteToResponse(&plano.Paciente)
	}
	if plano.Dentista.ID != 0 {
		response.Dentista = DentistaToResponse(&plano.Dentista)
	}

	return response
}

func PlanosDentaisToResponses(planos []entity.PlanoDental) []dto.PlanoDentalResponse {
	responses := make([]dto.PlanoDentalResponse, len(planos))
	for i := range planos {
		responses[i] = *PlanoDentalToResponse(&planos[i])
	}
	return responses
}
