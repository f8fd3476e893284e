package converter

import (
	"time"

	"github.com/EduardoMSouza/consultorio-api/internal/delivery/dto"
	"github.com/EduardoMSouza/consultorio-api/internal/domain/entity"
)

// FilaEsperaToResponse converts a FilaEspera entity to its response DTO.
// posicaoFila must be computed by the caller (repository query) for active
// entries; zero means not ranked.
func FilaEsperaToResponse(entrada *entity.FilaEspera, agora time.Time) *dto.FilaEsperaResponse {
	if entrada == nil {
		return nil
	}

	response := &dto.FilaEsperaResponse{
		ID:                     entrada.ID,
		PacienteID:             entrada.PacienteID,
		DentistaID:             entrada.DentistaID,
		TipoProcedimento:       entrada.TipoProcedimento,
		PeriodoPreferencial:    string(entrada.PeriodoPreferencial),
		Prioridade:             entrada.Prioridade,
		AceitaQualquerHorario:  entrada.AceitaQualquerHorario,
		AceitaQualquerDentista: entrada.AceitaQualquerDentista,
		Observacoes:            entrada.Observacoes,
		Status:                 string(entrada.Status),
		AgendamentoID:          entrada.AgendamentoID,
		PosicaoFila:            entrada.PosicaoFila,
		TentativasContato:      entrada.TentativasContato,
		DiasNaFila:             entrada.DiasNaFila(agora),
		UltimoContatoEm:        entrada.UltimoContatoEm,
		CriadoEm:               entrada.CriadoEm,
		AtualizadoEm:           entrada.AtualizadoEm,
	}

	if entrada.DataPreferencial != nil {
		formatted := entrada.DataPreferencial.Format(dateLayout)
		response.DataPreferencial = &formatted
	}
	if entrada.Paciente.ID != 0 {
		response.Paciente = PacienteToResponse(&entrada.Paciente)
	}
	if entrada.Dentista != nil && entrada.Dentista.ID != 0 {
		response.Dentista = DentistaToResponse(entrada.Dentista)
	}

	return response
}

// FilaEsperaToResponses converts a slice of entities to response DTOs
func FilaEsperaToResponses(entradas []entity.FilaEspera, agora time.Time) []dto.FilaEsperaResponse {
	responses := make([]dto.FilaEsperaResponse, len(entradas))
	for i := range entradas {
		responses[i] = *FilaEsperaToResponse(&entradas[i], agora)
	}
	return responses
}
