package converter

import (
	"github.com/EduardoMSouza/consultorio-api/internal/delivery/dto"
	"github.com/EduardoMSouza/consultorio-api/internal/domain/entity"
)

func DentistaToResponse(dentista *entity.Dentista) *dto.DentistaResponse {
	if dentista == nil {
		return nil
	}

	return &dto.DentistaResponse{
		ID:            dentista.ID,
		Nome:          dentista.Nome,
		CRO:           dentista.CRO,
		Especialidade: dentista.Especialidade,
		Telefone:      dentista.Telefone,
		Email:         dentista.Email,
		Ativo:         dentista.Ativo,
		CriadoEm:      dentista.CriadoEm,
		AtualizadoEm:  dentista.AtualizadoEm,
	}
}

func DentistasToResponses(dentistas []entity.Dentista) []dto.DentistaResponse {
	responses := make([]dto.DentistaResponse, len(dentistas))
	for i := range dentistas {
		responses[i] = *DentistaToResponse(&dentistas[i])
	}
	return responses
}
