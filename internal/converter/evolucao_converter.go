package converter

import (
	"github.com/EduardoMSouza/consultorio-api/internal/delivery/dto"
	"github.com/EduardoMSouza/consultorio-api/internal/domain/entity"
)

func EvolucaoToResponse(evolucao *entity.EvolucaoTratamento) *dto.EvolucaoResponse {
	if evolucao == nil {
		return nil
	}

	response := &dto.EvolucaoResponse{
		ID:            evolucao.ID,
		PacienteID:    evolucao.PacienteID,
		DentistaID:    evolucao.DentistaID,
		PlanoDentalID: evolucao.PlanoDentalID,
		Data:          evolucao.Data.Format(dateLayout),
		Descricao:     evolucao.Descricao,
		CriadoPor:     evolucao.CriadoPor,
		CriadoEm:      evolucao.CriadoEm,
	}

	if evolucao.Dentista.ID != 0 {
		response.Dentista = DentistaToResponse(&evolucao.Dentista)
	}

	return response
}

func EvolucoesToResponses(evolucoes []entity.EvolucaoTratamento) []dto.EvolucaoResponse {
	responses := make([]dto.EvolucaoResponse, len(evolucoes))
	for i := range evolucoes {
		responses[i] = *EvolucaoToResponse(&evolucoes[i])
	}
	return responses
}
