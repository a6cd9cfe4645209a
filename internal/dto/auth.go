package dto

type LoginRequestDTO struct {
	CPF      string `json:"cpf" example:"123.456.789-01" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginResponseDTO struct {
	Message string `json:"message"`
}

type ChangePasswordRequestDTO struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required,min=6"`
}
