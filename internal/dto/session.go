package dto

// Monetary values cross the API boundary as decimal strings with exactly
// two fraction digits, never as floats.

type SetMonetaryFieldRequestDTO struct {
	Value string `json:"value" example:"140.00" validate:"required"`
}

type BeginInlineEditRequestDTO struct {
	Field        string `json:"field" example:"final_chips" validate:"required"`
	CurrentValue string `json:"current_value" example:"0.00"`
}

type CommitInlineEditRequestDTO struct {
	Field string `json:"field" example:"final_chips" validate:"required"`
	Value string `json:"value,omitempty" example:"55.50"`
}

type PlayerSessionResponseDTO struct {
	MemberID          int    `json:"member_id" example:"1"`
	MemberName        string `json:"member_name" example:"thats"`
	CreditBuyin       int    `json:"credit_buyin" example:"2"`
	CashBuyin         int    `json:"cash_buyin" example:"0"`
	FinalChips        string `json:"final_chips" example:"140.00"`
	Rango             string `json:"rango" example:"0.00"`
	Pingo             string `json:"pingo" example:"0.00"`
	ReceivedAmount    string `json:"received_amount" example:"0.00"`
	CalculatedBalance string `json:"calculated_balance" example:"40.00"`
	BalanceClass      string `json:"balance_class" example:"surplus"`
}

type GameTotalsResponseDTO struct {
	TotalCreditBuyins    int    `json:"total_credit_buyins" example:"14"`
	TotalCashBuyins      int    `json:"total_cash_buyins" example:"3"`
	TotalFinalChips      string `json:"total_final_chips" example:"850.00"`
	TotalRango           string `json:"total_rango" example:"0.00"`
	TotalPingo           string `json:"total_pingo" example:"0.00"`
	TotalReceived        string `json:"total_received" example:"150.00"`
	TotalBalance         string `json:"total_balance" example:"-150.00"`
	TotalBalanceClass    string `json:"total_balance_class" example:"deficit"`
	ChipDiscrepancy      string `json:"chip_discrepancy" example:"0.00"`
	ChipDiscrepancyClass string `json:"chip_discrepancy_class" example:"surplus"`
}

type GameSessionsResponseDTO struct {
	Game    GameResponseDTO            `json:"game"`
	Players []PlayerSessionResponseDTO `json:"players"`
	Totals  GameTotalsResponseDTO      `json:"totals"`
}
