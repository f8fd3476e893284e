package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/EduardoMSouza/consultorio-api/internal/delivery/dto"
	"github.com/EduardoMSouza/consultorio-api/internal/domain/entity"
	"github.com/EduardoMSouza/consultorio-api/internal/usecase"
	"github.com/EduardoMSouza/consultorio-api/internal/validation"
	"github.com/EduardoMSouza/consultorio-api/pkg/response"
)

type FilaEsperaHandler struct {
	filaUsecase usecase.FilaEsperaUsecase
}

func NewFilaEsperaHandler(filaUsecase usecase.FilaEsperaUsecase) *FilaEsperaHandler {
	return &FilaEsperaHandler{filaUsecase: filaUsecase}
}

func (h *FilaEsperaHandler) List(w http.ResponseWriter, r *http.Request) {
	page, size := parsePagination(r)
	filter := &entity.FilaEsperaFilter{
		PacienteID: parseUintQuery(r, "pacienteId"),
		DentistaID: parseUintQuery(r, "dentistaId"),
		Status:     r.URL.Query().Get("status"),
		Page:       page,
		Size:       size,
	}

	entradas, total, err := h.filaUsecase.List(r.Context(), filter)
	if err != nil {
		response.InternalServerError(w, "Falha ao listar fila de espera")
		return
	}

	response.JSON(w, http.StatusOK, response.NewPage(entradas, total, page, size))
}

func (h *FilaEsperaHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.FilaEsperaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Corpo da requisição inválido", nil)
		return
	}

	entrada, err := h.filaUsecase.Create(r.Context(), &req, requestUsuario(r))
	if err != nil {
		h.writeError(w, err, "Falha ao criar entrada na fila")
		return
	}

	response.Success(w, http.StatusCreated, "Entrada adicionada à fila de espera", entrada)
}

func (h *FilaEsperaHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "ID inválido", nil)
		return
	}

	entrada, err := h.filaUsecase.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, err, "Falha ao buscar entrada da fila")
		return
	}

	response.Success(w, http.StatusOK, "Entrada encontrada", entrada)
}

func (h *FilaEsperaHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "ID inválido", nil)
		return
	}

	var req dto.FilaEsperaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Corpo da requisição inválido", nil)
		return
	}

	entrada, err := h.filaUsecase.Update(r.Context(), id, &req, requestUsuario(r))
	if err != nil {
		h.writeError(w, err, "Falha ao atualizar entrada da fila")
		return
	}

	response.Success(w, http.StatusOK, "Entrada atualizada com sucesso", entrada)
}

func (h *FilaEsperaHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "ID inválido", nil)
		return
	}

	if err := h.filaUsecase.Delete(r.Context(), id); err != nil {
		h.writeError(w, err, "Falha ao excluir entrada da fila")
		return
	}

	response.Success(w, http.StatusOK, "Entrada excluída com sucesso", nil)
}

func (h *FilaEsperaHandler) Notificar(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.filaUsecase.Notificar, "Paciente notificado")
}

func (h *FilaEsperaHandler) ConfirmarInteresse(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.filaUsecase.ConfirmarInteresse, "Interesse confirmado")
}

func (h *FilaEsperaHandler) Cancelar(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.filaUsecase.Cancelar, "Entrada cancelada")
}

func (h *FilaEsperaHandler) Converter(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "ID inválido", nil)
		return
	}

	agendamentoID := parseUintQuery(r, "agendamentoId")
	if agendamentoID == 0 {
		response.Error(w, http.StatusBadRequest, "agendamentoId é obrigatório", nil)
		return
	}

	entrada, err := h.filaUsecase.Converter(r.Context(), id, agendamentoID, requestUsuario(r))
	if err != nil {
		h.writeError(w, err, "Falha ao converter entrada em agendamento")
		return
	}

	response.Success(w, http.StatusOK, "Entrada convertida em agendamento", entrada)
}

func (h *FilaEsperaHandler) Expirar(w http.ResponseWriter, r *http.Request) {
	resultado, err := h.filaUsecase.Expirar(r.Context(), r.URL.Query().Get("dataLimite"), requestUsuario(r))
	if err != nil {
		h.writeError(w, err, "Falha ao expirar entradas da fila")
		return
	}

	response.Success(w, http.StatusOK, "Entradas antigas expiradas", resultado)
}

func (h *FilaEsperaHandler) transition(
	w http.ResponseWriter,
	r *http.Request,
	apply func(ctx context.Context, id uint, usuario string) (*dto.FilaEsperaResponse, error),
	message string,
) {
	id, err := parseIDParam(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "ID inválido", nil)
		return
	}

	entrada, err := apply(r.Context(), id, requestUsuario(r))
	if err != nil {
		h.writeError(w, err, "Falha ao atualizar status da entrada")
		return
	}

	response.Success(w, http.StatusOK, message, entrada)
}

func (h *FilaEsperaHandler) writeError(w http.ResponseWriter, err error, fallback string) {
	var fieldErrors validation.FieldErrors
	if errors.As(err, &fieldErrors) {
		response.ValidationError(w, fieldErrors)
		return
	}

	switch err {
	case usecase.ErrFilaNotFound:
		response.NotFound(w, err.Error())
	case usecase.ErrAgendamentoNotFound, usecase.ErrDentistaNotFound, usecase.ErrPacienteNotFound:
		response.Error(w, http.StatusBadRequest, err.Error(), nil)
	case usecase.ErrFilaTerminal, usecase.ErrFilaTransicao:
		response.Error(w, http.StatusConflict, err.Error(), nil)
	case usecase.ErrDataLimiteVazia, usecase.ErrDataInvalida:
		response.Error(w, http.StatusBadRequest, err.Error(), nil)
	default:
		response.InternalServerError(w, fallback)
	}
}
