package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/EduardoMSouza/consultorio-api/internal/delivery/dto"
	"github.com/EduardoMSouza/consultorio-api/internal/domain/entity"
	"github.com/EduardoMSouza/consultorio-api/internal/usecase"
	"github.com/EduardoMSouza/consultorio-api/pkg/response"
	"github.com/EduardoMSouza/consultorio-api/pkg/validator"
)

type PlanoDentalHandler struct {
	planoUsecase usecase.PlanoDentalUsecase
	validator    *validator.CustomValidator
}

func NewPlanoDentalHandler(planoUsecase usecase.PlanoDentalUsecase, validator *validator.CustomValidator) *PlanoDentalHandler {
	return &PlanoDentalHandler{
		planoUsecase: planoUsecase,
		validator:    validator,
	}
}

func (h *PlanoDentalHandler) List(w http.ResponseWriter, r *http.Request) {
	page, size := parsePagination(r)
	filter := &entity.PlanoDentalFilter{
		PacienteID: parseUintQuery(r, "pacienteId"),
		DentistaID: parseUintQuery(r, "dentistaId"),
		Status:     r.URL.Query().Get("status"),
		Page:       page,
		Size:       size,
	}

	planos, total, err := h.planoUsecase.List(r.Context(), filter)
	if err != nil {
		response.InternalServerError(w, "Falha ao listar planos dentais")
		return
	}

	response.JSON(w, http.StatusOK, response.NewPage(planos, total, page, size))
}

func (h *PlanoDentalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.PlanoDentalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Corpo da requisição inválido", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	plano, err := h.planoUsecase.Create(r.Context(), &req)
	if err != nil {
		h.writeError(w, err, "Falha ao criar plano dental")
		return
	}

	response.Success(w, http.StatusCreated, "Plano dental criado com sucesso", plano)
}

func (h *PlanoDentalHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "ID inválido", nil)
		return
	}

	plano, err := h.planoUsecase.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, err, "Falha ao buscar plano dental")
		return
	}

	response.Success(w, http.StatusOK, "Plano dental encontrado", plano)
}

func (h *PlanoDentalHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "ID inválido", nil)
		return
	}

	var req dto.PlanoDentalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Corpo da requisição inválido", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	plano, err := h.planoUsecase.Update(r.Context(), id, &req)
	if err != nil {
		h.writeError(w, err, "Falha ao atualizar plano dental")
		return
	}

	response.Success(w, http.StatusOK, "Plano dental atualizado com sucesso", plano)
}

func (h *PlanoDentalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "ID inválido", nil)
		return
	}

	if err := h.planoUsecase.Delete(r.Context(), id); err != nil {
		h.writeError(w, err, "Falha ao excluir plano dental")
		return
	}

	response.Success(w, http.StatusOK, "Plano dental excluído com sucesso", nil)
}

func (h *PlanoDentalHandler) Iniciar(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.planoUsecase.Iniciar, "Plano dental iniciado")
}

func (h *PlanoDentalHandler) Concluir(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.planoUsecase.Concluir, "Plano dental concluído")
}

func (h *PlanoDentalHandler) Cancelar(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.planoUsecase.Cancelar, "Plano dental cancelado")
}

func (h *PlanoDentalHandler) transition(
	w http.ResponseWriter,
	r *http.Request,
	apply func(ctx context.Context, id uint) (*dto.PlanoDentalResponse, error),
	message string,
) {
	id, err := parseIDParam(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "ID inválido", nil)
		return
	}

	plano, err := apply(r.Context(), id)
	if err != nil {
		h.writeError(w, err, "Falha ao atualizar status do plano")
		return
	}

	response.Success(w, http.StatusOK, message, plano)
}

func (h *PlanoDentalHandler) writeError(w http.ResponseWriter, err error, fallback string) {
	switch err {
	case usecase.ErrPlanoNotFound:
		response.NotFound(w, err.Error())
	case usecase.ErrPacienteNotFound, usecase.ErrDentistaNotFound, usecase.ErrValorNegativo:
		response.Error(w, http.StatusBadRequest, err.Error(), nil)
	case usecase.ErrPlanoTerminal, usecase.ErrPlanoTransicao:
		response.Error(w, http.StatusConflict, err.Error(), nil)
	default:
		response.InternalServerError(w, fallback)
	}
}
