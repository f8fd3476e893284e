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

type PacienteHandler struct {
	pacienteUsecase usecase.PacienteUsecase
	validator       *validator.CustomValidator
}

func NewPacienteHandler(pacienteUsecase usecase.PacienteUsecase, validator *validator.CustomValidator) *PacienteHandler {
	return &PacienteHandler{
		pacienteUsecase: pacienteUsecase,
		validator:       validator,
	}
}

func (h *PacienteHandler) List(w http.ResponseWriter, r *http.Request) {
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

	pacientes, total, err := h.pacienteUsecase.List(r.Context(), filter)
	if err != nil {
		response.InternalServerError(w, "Falha ao listar pacientes")
		return
	}

	response.JSON(w, http.StatusOK, response.NewPage(pacientes, total, page, size))
}

func (h *PacienteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.PacienteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Corpo da requisição inválido", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	paciente, err := h.pacienteUsecase.Create(r.Context(), &req)
	if err != nil {
		h.writeError(w, err, "Falha ao criar paciente")
		return
	}

	response.Success(w, http.StatusCreated, "Paciente criado com sucesso", paciente)
}

func (h *PacienteHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "ID inválido", nil)
		return
	}

	paciente, err := h.pacienteUsecase.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, err, "Falha ao buscar paciente")
		return
	}

	response.Success(w, http.StatusOK, "Paciente encontrado", paciente)
}

func (h *PacienteHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "ID inválido", nil)
		return
	}

	var req dto.UpdatePacienteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Corpo da requisição inválido", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	paciente, err := h.pacienteUsecase.Update(r.Context(), id, &req)
	if err != nil {
		h.writeError(w, err, "Falha ao atualizar paciente")
		return
	}

	response.Success(w, http.StatusOK, "Paciente atualizado com sucesso", paciente)
}

func (h *PacienteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "ID inválido", nil)
		return
	}

	if err := h.pacienteUsecase.Delete(r.Context(), id); err != nil {
		h.writeError(w, err, "Falha ao excluir paciente")
		return
	}

	response.Success(w, http.StatusOK, "Paciente excluído com sucesso", nil)
}

func (h *PacienteHandler) writeError(w http.ResponseWriter, err error, fallback string) {
	switch err {
	case usecase.ErrPacienteNotFound:
		response.NotFound(w, err.Error())
	case usecase.ErrCPFAlreadyExists:
		response.Error(w, http.StatusConflict, err.Error(), nil)
	case usecase.ErrDataInvalida:
		response.Error(w, http.StatusBadRequest, err.Error(), nil)
	default:
		response.InternalServerError(w, fallback)
	}
}
