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

type AgendamentoHandler struct {
	agendamentoUsecase usecase.AgendamentoUsecase
}

func NewAgendamentoHandler(agendamentoUsecase usecase.AgendamentoUsecase) *AgendamentoHandler {
	return &AgendamentoHandler{agendamentoUsecase: agendamentoUsecase}
}

func (h *AgendamentoHandler) List(w http.ResponseWriter, r *http.Request) {
	page, size := parsePagination(r)
	filter := &entity.AgendamentoFilter{
		DentistaID: parseUintQuery(r, "dentistaId"),
		PacienteID: parseUintQuery(r, "pacienteId"),
		Data:       r.URL.Query().Get("data"),
		Status:     r.URL.Query().Get("status"),
		Page:       page,
		Size:       size,
	}

	agendamentos, total, err := h.agendamentoUsecase.List(r.Context(), filter)
	if err != nil {
		response.InternalServerError(w, "Falha ao listar agendamentos")
		return
	}

	response.JSON(w, http.StatusOK, response.NewPage(agendamentos, total, page, size))
}

func (h *AgendamentoHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.AgendamentoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Corpo da requisição inválido", nil)
		return
	}

	agendamento, err := h.agendamentoUsecase.Create(r.Context(), &req, requestUsuario(r))
	if err != nil {
		h.writeError(w, err, "Falha ao criar agendamento")
		return
	}

	response.Success(w, http.StatusCreated, "Agendamento criado com sucesso", agendamento)
}

func (h *AgendamentoHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "ID inválido", nil)
		return
	}

	agendamento, err := h.agendamentoUsecase.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, err, "Falha ao buscar agendamento")
		return
	}

	response.Success(w, http.StatusOK, "Agendamento encontrado", agendamento)
}

func (h *AgendamentoHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "ID inválido", nil)
		return
	}

	var req dto.AgendamentoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Corpo da requisição inválido", nil)
		return
	}

	agendamento, err := h.agendamentoUsecase.Update(r.Context(), id, &req, requestUsuario(r))
	if err != nil {
		h.writeError(w, err, "Falha ao atualizar agendamento")
		return
	}

	response.Success(w, http.StatusOK, "Agendamento atualizado com sucesso", agendamento)
}

func (h *AgendamentoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "ID inválido", nil)
		return
	}

	if err := h.agendamentoUsecase.Delete(r.Context(), id, requestUsuario(r)); err != nil {
		h.writeError(w, err, "Falha ao excluir agendamento")
		return
	}

	response.Success(w, http.StatusOK, "Agendamento excluído com sucesso", nil)
}

func (h *AgendamentoHandler) Confirmar(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.agendamentoUsecase.Confirmar, "Agendamento confirmado")
}

func (h *AgendamentoHandler) IniciarAtendimento(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.agendamentoUsecase.IniciarAtendimento, "Atendimento iniciado")
}

func (h *AgendamentoHandler) Concluir(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.agendamentoUsecase.Concluir, "Agendamento concluído")
}

func (h *AgendamentoHandler) MarcarFalta(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.agendamentoUsecase.MarcarFalta, "Falta registrada")
}

func (h *AgendamentoHandler) Cancelar(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "ID inválido", nil)
		return
	}

	motivo := r.URL.Query().Get("motivo")

	agendamento, err := h.agendamentoUsecase.Cancelar(r.Context(), id, motivo, requestUsuario(r))
	if err != nil {
		h.writeError(w, err, "Falha ao cancelar agendamento")
		return
	}

	response.Success(w, http.StatusOK, "Agendamento cancelado", agendamento)
}

func (h *AgendamentoHandler) VerificarDisponibilidade(w http.ResponseWriter, r *http.Request) {
	req := &dto.DisponibilidadeRequest{
		DentistaID:         int64(parseUintQuery(r, "dentistaId")),
		Data:               r.URL.Query().Get("data"),
		HoraInicio:         r.URL.Query().Get("horaInicio"),
		HoraFim:            r.URL.Query().Get("horaFim"),
		IgnorarAgendamento: parseUintQuery(r, "ignorarAgendamento"),
	}

	disponibilidade, err := h.agendamentoUsecase.VerificarDisponibilidade(r.Context(), req)
	if err != nil {
		h.writeError(w, err, "Falha ao verificar disponibilidade")
		return
	}

	response.JSON(w, http.StatusOK, disponibilidade)
}

func (h *AgendamentoHandler) transition(
	w http.ResponseWriter,
	r *http.Request,
	apply func(ctx context.Context, id uint, usuario string) (*dto.AgendamentoResponse, error),
	message string,
) {
	id, err := parseIDParam(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "ID inválido", nil)
		return
	}

	agendamento, err := apply(r.Context(), id, requestUsuario(r))
	if err != nil {
		h.writeError(w, err, "Falha ao atualizar status do agendamento")
		return
	}

	response.Success(w, http.StatusOK, message, agendamento)
}

func (h *AgendamentoHandler) writeError(w http.ResponseWriter, err error, fallback string) {
	var fieldErrors validation.FieldErrors
	if errors.As(err, &fieldErrors) {
		response.ValidationError(w, fieldErrors)
		return
	}

	switch err {
	case usecase.ErrAgendamentoNotFound:
		response.NotFound(w, err.Error())
	case usecase.ErrDentistaNotFound, usecase.ErrPacienteNotFound:
		response.Error(w, http.StatusBadRequest, err.Error(), nil)
	case usecase.ErrHorarioIndisponivel:
		response.Error(w, http.StatusConflict, err.Error(), nil)
	case usecase.ErrTransicaoInvalida, usecase.ErrAgendamentoTerminal:
		response.Error(w, http.StatusConflict, err.Error(), nil)
	case usecase.ErrMotivoObrigatorio, usecase.ErrDataInvalida:
		response.Error(w, http.StatusBadRequest, err.Error(), nil)
	default:
		response.InternalServerError(w, fallback)
	}
}
