package handler

import (
	"encoding/json"
	"net/http"

	"github.com/EduardoMSouza/consultorio-api/internal/delivery/dto"
	"github.com/EduardoMSouza/consultorio-api/internal/domain/entity"
	"github.com/EduardoMSouza/consultorio-api/internal/usecase"
	"github.com/EduardoMSouza/consultorio-api/pkg/response"
	"github.com/EduardoMSouza/consultorio-api/pkg/validator"
)

type DentistaHandler struct {
	dentistaUsecase usecase.DentistaUsecase
	validator       *validator.CustomValidator
}

func NewDentistaHandler(dentistaUsecase usecase.DentistaUsecase, validator *validator.CustomValidator) *DentistaHandler {
	return &DentistaHandler{
		dentistaUsecase: dentistaUsecase,
		validator:       validator,
	}
}

func (h *DentistaHandler) List(w http.ResponseWriter, r *http.Request) {
	page, size := parsePagination(r)
	filter := &entity.RegistroFilter{
		Nome: r.URL.Query().Get("nome"),
		Page: page,
		Size: size,
	}
	if ativo := r.URL.Query().Get("ativo"); ativo != "" {
		value := ativo == "true"
		filter.Ativo = &value
	}

	dentistas, total, err := h.dentistaUsecase.List(r.Context(), filter)
	if err != nil {
		response.InternalServerError(w, "Falha ao listar dentistas")
		return
	}

	response.JSON(w, http.StatusOK, response.NewPage(dentistas, total, page, size))
}

func (h *DentistaHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.DentistaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Corpo da requisição inválido", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	dentista, err := h.dentistaUsecase.Create(r.Context(), &req)
	if err != nil {
		h.writeError(w, err, "Falha ao criar dentista")
		return
	}

	response.Success(w, http.StatusCreated, "Dentista criado com sucesso", dentista)
}

func (h *DentistaHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "ID inválido", nil)
		return
	}

	dentista, err := h.dentistaUsecase.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, err, "Falha ao buscar dentista")
		return
	}

	response.Success(w, http.StatusOK, "Dentista encontrado", dentista)
}

func (h *DentistaHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "ID inválido", nil)
		return
	}

	var req dto.UpdateDentistaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Corpo da requisição inválido", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	dentista, err := h.dentistaUsecase.Update(r.Context(), id, &req)
	if err != nil {
		h.writeError(w, err, "Falha ao atualizar dentista")
		return
	}

	response.Success(w, http.StatusOK, "Dentista atualizado com sucesso", dentista)
}

func (h *DentistaHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "ID inválido", nil)
		return
	}

	if err := h.dentistaUsecase.Delete(r.Context(), id); err != nil {
		h.writeError(w, err, "Falha ao excluir dentista")
		return
	}

	response.Success(w, http.StatusOK, "Dentista excluído com sucesso", nil)
}

func (h *DentistaHandler) writeError(w http.ResponseWriter, err error, fallback string) {
	switch err {
	case usecase.ErrDentistaNotFound:
		response.NotFound(w, err.Error())
	case usecase.ErrCROAlreadyExists, usecase.ErrEmailAlreadyExists:
		response.Error(w, http.StatusConflict, err.Error(), nil)
	default:
		response.InternalServerError(w, fallback)
	}
}
