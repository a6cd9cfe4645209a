package dto

type CreateGameRequestDTO struct {
	GameDate    string `json:"game_date" example:"2025-04-24" validate:"required"`
	Description string `json:"description,omitempty" example:"Jogo de sexta-feira"`
}

type UpdateGameRequestDTO struct {
	GameDate    string `json:"game_date" example:"2025-04-24" validate:"required"`
	Description string `json:"description,omitempty"`
}

type GameResponseDTO struct {
	ID          int    `json:"id" example:"1"`
	GameDate    string `json:"game_date" example:"2025-04-24"`
	Description string `json:"description,omitempty" example:"Jogo de sexta-feira"`
}

type AddPlayerRequestDTO struct {
	MemberID int `json:"member_id" example:"3" validate:"required"`
}
