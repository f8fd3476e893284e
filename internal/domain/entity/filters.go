package entity

// Domain-level list filters used by the repository layer to avoid coupling
// with delivery DTOs. Page is zero-based, matching the client's page query
// parameter.

type AgendamentoFilter struct {
	DentistaID uint
	PacienteID uint
	Data       string // YYYY-MM-DD
	Status     string
	Page       int
	Size       int
}

type FilaEsperaFilter struct {
	PacienteID uint
	DentistaID uint
	Status     string
	Page       int
	Size       int
}

type PlanoDentalFilter struct {
	PacienteID uint
	DentistaID uint
	Status     string
	Page       int
	Size       int
}

type RegistroFilter struct {
	Nome  string // ILIKE match
	Ativo *bool
	Page  int
	Size  int
}

type PageFilter struct {
	Page int
	Size int
}
