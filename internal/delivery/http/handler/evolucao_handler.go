package handler

import (
	"encoding/json"
	"net/http"

	"github.com/EduardoMSouza/consultorio-api/internal/delivery/dto"
	"github.com/EduardoMSouza/consultorio-api/internal/usecase"
	"github.com/EduardoMSouza/consultorio-api/pkg/response"
	"github.com/EduardoMSouza/consultorio-api/pkg/validator"
)

type EvolucaoHandler struct {
	evolucaoUsecase usecase.EvolucaoUsecase
	validator       *validator.CustomValidator
}

func NewEvolucaoHandler(evolucaoUsecase usecase.EvolucaoUsecase, validator *validator.CustomValidator) *EvolucaoHandler {
	return &EvolucaoHandler{
		evolucaoUsecase: evolucaoUsecase,
		validator:       validator,
	}
}

func (h *EvolucaoHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.EvolucaoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Corpo da requisição inválido", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	evolucao, err := h.evolucaoUsecase.Create(r.Context(), &req, requestUsuario(r))
	if err != nil {
		h.writeError(w, err, "Falha ao registrar evolução")
		return
	}

	response.Success(w, http.StatusCreated, "Evolução registrada com sucesso", evolucao)
}

func (h *EvolucaoHandler) ListByPaciente(w http.ResponseWriter, r *http.Request) {
	pacienteID := parseUintQuery(r, "pacienteId")
	if pacienteID == 0 {
		response.Error(w, http.StatusBadRequest, "pacienteId é obrigatório", nil)
		return
	}

	evolucoes, err := h.evolucaoUsecase.ListByPaciente(r.Context(), pacienteID)
	if err != nil {
		h.writeError(w, err, "Falha ao listar evoluções")
		return
	}

	response.Success(w, http.StatusOK, "Evoluções do paciente", evolucoes)
}

func (h *EvolucaoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "ID inválido", nil)
		return
	}

	if err := h.evolucaoUsecase.Delete(r.Context(), id); err != nil {
		h.writeError(w, err, "Falha ao excluir evolução")
		return
	}

	response.Success(w, http.StatusOK, "Evolução excluída com sucesso", nil)
}

func (h *EvolucaoHandler) writeError(w http.ResponseWriter, err error, fallback string) {
	switch err {
	case usecase.ErrEvolucaoNotFound:
		response.NotFound(w, err.Error())
	case usecase.ErrPacienteNotFound, usecase.ErrDentistaNotFound, usecase.ErrDataInvalida:
		response.Error(w, http.StatusBadRequest, err.Error(), nil)
	default:
		response.InternalServerError(w, fallback)
	}
}
