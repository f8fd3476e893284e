package dto

import "time"

// Request DTOs

// FilaEsperaRequest carries the waiting-list payload for create and update.
// Validated by validation.FilaEsperaValidator; posicaoFila, tentativasContato
// and diasNaFila are server-computed and never accepted from the client.
type FilaEsperaRequest struct {
	PacienteID             int64  `json:"pacienteId"`
	DentistaID             *int64 `json:"dentistaId,omitempty"`
	TipoProcedimento       string `json:"tipoProcedimento,omitempty"`
	PeriodoPreferencial    string `json:"periodoPreferencial,omitempty"`
	DataPreferencial       string `json:"dataPreferencial,omitempty"` // YYYY-MM-DD
	Prioridade             *int   `json:"prioridade,omitempty"`
	AceitaQualquerHorario  bool   `json:"aceitaQualquerHorario"`
	AceitaQualquerDentista bool   `json:"aceitaQualquerDentista"`
	Observacoes            string `json:"observacoes,omitempty"`
}

// Response DTOs

type FilaEsperaResponse struct {
	ID                     uint       `json:"id"`
	PacienteID             uint       `json:"pacienteId"`
	DentistaID             *uint      `json:"dentistaId,omitempty"`
	TipoProcedimento       string     `json:"tipoProcedimento,omitempty"`
	PeriodoPreferencial    string     `json:"periodoPreferencial"`
	DataPreferencial       *string    `json:"dataPreferencial,omitempty"`
	Prioridade             int        `json:"prioridade"`
	AceitaQualquerHorario  bool       `json:"aceitaQualquerHorario"`
	AceitaQualquerDentista bool       `json:"aceitaQualquerDentista"`
	Observacoes            string     `json:"observacoes,omitempty"`
	Status                 string     `json:"status"`
	AgendamentoID          *uint      `json:"agendamentoId,omitempty"`
	PosicaoFila            int        `json:"posicaoFila,omitempty"`
	TentativasContato      int        `json:"tentativasContato"`
	DiasNaFila             int        `json:"diasNaFila"`
	UltimoContatoEm        *time.Time `json:"ultimoContatoEm,omitempty"`
	CriadoEm               time.Time  `json:"criadoEm"`
	AtualizadoEm           time.Time  `json:"atualizadoEm"`

	Paciente *PacienteResponse `json:"paciente,omitempty"`
	Dentista *DentistaResponse `json:"dentista,omitempty"`
}

// ExpirarResponse reports how many entries the bulk sweep expired
type ExpirarResponse struct {
	Expirados int64 `json:"expirados"`
}
