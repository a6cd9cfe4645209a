package dto

import "time"

type RegisterMemberRequestDTO struct {
	CPF             string `json:"cpf" example:"123.456.789-01" validate:"required"`
	Name            string `json:"name" example:"João Silva" validate:"required,max=64"`
	Nickname        string `json:"nickname" example:"joãozinho" validate:"required,max=48"`
	Email           string `json:"email" example:"joao@example.com" validate:"required,max=255"`
	PixKey          string `json:"pix_key" example:"joao@example.com" validate:"required,max=128"`
	Phone           string `json:"phone,omitempty" example:"+5511999990000"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required,min=6"`
	IsAdmin         bool   `json:"is_admin"`
}

type UpdateMemberRequestDTO struct {
	Name     string `json:"name" validate:"required,max=64"`
	Nickname string `json:"nickname,omitempty" validate:"max=48"`
	Email    string `json:"email" validate:"required,max=255"`
	PixKey   string `json:"pix_key" validate:"required,max=128"`
	Phone    string `json:"phone,omitempty"`
}

type SetMemberEnabledRequestDTO struct {
	Enabled bool `json:"enabled"`
}

type MemberResponseDTO struct {
	ID          int       `json:"id" example:"1"`
	CPF         string    `json:"cpf" example:"12345678901"`
	Name        string    `json:"name" example:"João Silva"`
	Nickname    string    `json:"nickname" example:"joãozinho"`
	DisplayName string    `json:"display_name" example:"joãozinho"`
	Email       string    `json:"email" example:"joao@example.com"`
	PixKey      string    `json:"pix_key" example:"joao@example.com"`
	Phone       string    `json:"phone,omitempty" example:"+5511999990000"`
	IsAdmin     bool      `json:"is_admin"`
	IsEnabled   bool      `json:"is_enabled"`
	CreatedAt   time.Time `json:"created_at"`
}
