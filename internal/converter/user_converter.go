package converter

import (
	"github.com/EduardoMSouza/consultorio-api/internal/delivery/dto"
	"github.com/EduardoMSouza/consultorio-api/internal/domain/entity"
)

func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	return &dto.UserResponse{
		ID:           user.ID,
		Login:        user.Login,
		Email:        user.Email,
		Nome:         user.Nome,
		Role:         user.Role.RoleName,
		Ativo:        user.Ativo,
		CriadoEm:     user.CriadoEm,
		AtualizadoEm: user.AtualizadoEm,
	}
}

func UsersToResponses(users []entity.User) []dto.UserResponse {
	responses := make([]dto.UserResponse, len(users))
	for i := range users {
		responses[i] = *UserToResponse(&users[i])
	}
	return responses
}
