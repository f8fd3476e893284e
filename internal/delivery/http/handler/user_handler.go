package handler

import (
	"encoding/json"
	"net/http"

	"github.com/EduardoMSouza/consultorio-api/internal/delivery/dto"
	"github.com/EduardoMSouza/consultorio-api/internal/domain/entity"
	"github.com/EduardoMSouza/consultorio-api/internal/usecase"
	"github.com/EduardoMSouza/consultorio-api/pkg/response"
	"github.com/EduardoMSouza/consultorio-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type UserHandler struct {
	userUsecase usecase.UserUsecase
	validator   *validator.CustomValidator
}

func NewUserHandler(userUsecase usecase.UserUsecase, validator *validator.CustomValidator) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
		validator:   validator,
	}
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	page, size := parsePagination(r)
	filter := &entity.PageFilter{Page: page, Size: size}

	users, total, err := h.userUsecase.List(r.Context(), filter)
	if err != nil {
		response.InternalServerError(w, "Falha ao listar usuários")
		return
	}

	response.JSON(w, http.StatusOK, response.NewPage(users, total, page, size))
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Corpo da requisição inválido", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	user, err := h.userUsecase.Create(r.Context(), &req)
	if err != nil {
		h.writeError(w, err, "Falha ao criar usuário")
		return
	}

	response.Success(w, http.StatusCreated, "Usuário criado com sucesso", user)
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "ID inválido", nil)
		return
	}

	user, err := h.userUsecase.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, err, "Falha ao buscar usuário")
		return
	}

	response.Success(w, http.StatusOK, "Usuário encontrado", user)
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "ID inválido", nil)
		return
	}

	var req dto.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Corpo da requisição inválido", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	user, err := h.userUsecase.Update(r.Context(), id, &req)
	if err != nil {
		h.writeError(w, err, "Falha ao atualizar usuário")
		return
	}

	response.Success(w, http.StatusOK, "Usuário atualizado com sucesso", user)
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "ID inválido", nil)
		return
	}

	if err := h.userUsecase.Delete(r.Context(), id); err != nil {
		h.writeError(w, err, "Falha ao excluir usuário")
		return
	}

	response.Success(w, http.StatusOK, "Usuário excluído com sucesso", nil)
}

func (h *UserHandler) writeError(w http.ResponseWriter, err error, fallback string) {
	switch err {
	case usecase.ErrUserNotFound:
		response.NotFound(w, err.Error())
	case usecase.ErrLoginAlreadyExists, usecase.ErrEmailAlreadyExists:
		response.Error(w, http.StatusConflict, err.Error(), nil)
	case usecase.ErrRoleNotFound:
		response.Error(w, http.StatusBadRequest, err.Error(), nil)
	default:
		response.InternalServerError(w, fallback)
	}
}
