package converter

import (
	"github.com/EduardoMSouza/consultorio-api/internal/delivery/dto"
	"github.com/EduardoMSouza/consultorio-api/internal/domain/entity"
)

func PacienteToResponse(paciente *entity.Paciente) *dto.PacienteResponse {
	if paciente == nil {
		return nil
	}

	response := &dto.PacienteResponse{
		ID:           paciente.ID,
		Nome:         paciente.Nome,
		CPF:          paciente.CPF,
		Telefone:     paciente.Telefone,
		Email:        paciente.Email,
		Endereco:     paciente.Endereco,
		Convenio:     paciente.Convenio,
		Observacoes:  paciente.Observacoes,
		Ativo:        paciente.Ativo,
		CriadoEm:     paciente.CriadoEm,
		AtualizadoEm: paciente.AtualizadoEm,
	}

	if paciente.DataNascimento != nil {
		formatted := paciente.DataNascimento.Format(dateLayout)
		response.DataNascimento = &formatted
	}

	return response
}

func PacientesToResponses(pacientes []entity.Paciente) []dto.PacienteResponse {
	responses := make([]dto.PacienteResponse, len(pacientes))
	for i := range pacientes {
		responses[i] = *PacienteToResponse(&pacientes[i])
	}
	return responses
}
