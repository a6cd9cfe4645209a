package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Member struct {
	ID           int        `db:"id"`
	CPF          string     `db:"cpf"`
	Name         string     `db:"name"`
	Nickname     string     `db:"nickname"`
	Email        string     `db:"email"`
	PixKey       string     `db:"pix_key"`
	Phone        string     `db:"phone"`
	PasswordHash string     `db:"password_hash"`
	IsAdmin      bool       `db:"is_admin"`
	IsEnabled    bool       `db:"is_enabled"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    *time.Time `db:"updated_at"`
}

// DisplayName prefers the nickname over the full name.
func (m *Member) DisplayName() string {
	if m.Nickname != "" {
		return m.Nickname
	}
	return m.Name
}

type Game struct {
	ID          int       `db:"id"`
	GameDate    time.Time `db:"game_date"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
}

// PlayerSession holds one member's financial facts for one game.
// Buy-in counters are plain ints; every monetary field is an exact decimal.
type PlayerSession struct {
	GameID         int             `db:"game_id"`
	MemberID       int             `db:"member_id"`
	MemberName     string          `db:"member_name"`
	CreditBuyin    int             `db:"credit_buyin"`
	CashBuyin      int             `db:"cash_buyin"`
	FinalChips     decimal.Decimal `db:"final_chips"`
	Rango          decimal.Decimal `db:"rango"`
	Pingo          decimal.Decimal `db:"pingo"`
	ReceivedAmount decimal.Decimal `db:"received_amount"`
}
