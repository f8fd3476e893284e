package dto

// Request DTOs

type CreateUserRequest struct {
	Login    string `json:"login" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=4"`
	Nome     string `json:"nome" validate:"required,min=2"`
	Role     string `json:"role" validate:"required,oneof=admin dentista recepcao"`
}

type UpdateUserRequest struct {
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password" validate:"omitempty,min=4"`
	Nome     string `json:"nome" validate:"omitempty,min=2"`
	Role     string `json:"role" validate:"omitempty,oneof=admin dentista recepcao"`
	Ativo    *bool  `json:"ativo" validate:"omitempty"`
}
