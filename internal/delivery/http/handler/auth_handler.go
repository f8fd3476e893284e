package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/EduardoMSouza/consultorio-api/internal/delivery/dto"
	"github.com/EduardoMSouza/consultorio-api/internal/delivery/http/middleware"
	"github.com/EduardoMSouza/consultorio-api/internal/usecase"
	"github.com/EduardoMSouza/consultorio-api/internal/validation"
	"github.com/EduardoMSouza/consultorio-api/pkg/jwt"
	"github.com/EduardoMSouza/consultorio-api/pkg/response"
	"github.com/EduardoMSouza/consultorio-api/pkg/validator"
)

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	jwtService  *jwt.JWTService
	validator   *validator.CustomValidator
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, jwtService *jwt.JWTService, validator *validator.CustomValidator) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		jwtService:  jwtService,
		validator:   validator,
	}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Corpo da requisição inválido", nil)
		return
	}

	tokens, err := h.authUsecase.Login(r.Context(), &req)
	if err != nil {
		var fieldErrors validation.FieldErrors
		if errors.As(err, &fieldErrors) {
			response.ValidationError(w, fieldErrors)
			return
		}
		switch err {
		case usecase.ErrCredenciaisInvalidas:
			response.Unauthorized(w, err.Error())
		case usecase.ErrUsuarioInativo:
			response.Forbidden(w, err.Error())
		default:
			response.InternalServerError(w, "Falha ao autenticar")
		}
		return
	}

	response.Success(w, http.StatusOK, "Login realizado com sucesso", tokens)
}

// Logout revokes the current access token and, when the body carries one,
// the paired refresh token.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}
	accessTokenID, _ := middleware.GetTokenIDFromContext(r.Context())

	var refreshTokenID string
	var req dto.RefreshTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err == nil && req.RefreshToken != "" {
		if claims, err := h.jwtService.ValidateToken(req.RefreshToken); err == nil && claims.TokenType == jwt.RefreshToken {
			refreshTokenID = claims.TokenID
		}
	}

	if err := h.authUsecase.Logout(r.Context(), userID, accessTokenID, refreshTokenID); err != nil {
		response.InternalServerError(w, "Falha ao encerrar sessão")
		return
	}

	response.Success(w, http.StatusOK, "Sessão encerrada com sucesso", nil)
}

func (h *AuthHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var req dto.RefreshTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Corpo da requisição inválido", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	tokens, err := h.authUsecase.RefreshToken(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidToken, usecase.ErrTokenRevoked:
			response.Unauthorized(w, err.Error())
		case usecase.ErrUsuarioInativo:
			response.Forbidden(w, err.Error())
		case usecase.ErrUserNotFound:
			response.Unauthorized(w, usecase.ErrInvalidToken.Error())
		default:
			response.InternalServerError(w, "Falha ao renovar token")
		}
		return
	}

	response.Success(w, http.StatusOK, "Token renovado com sucesso", tokens)
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	user, err := h.authUsecase.GetCurrentUser(r.Context(), userID)
	if err != nil {
		if err == usecase.ErrUserNotFound {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalServerError(w, "Falha ao buscar usuário")
		return
	}

	response.Success(w, http.StatusOK, "Usuário autenticado", user)
}
