// Package bookkeeping holds the mutable roster of player sessions for one
// game. Every mutation goes through the Aggregate, which validates it,
// applies it and synchronously recomputes the settlement totals, so read
// views are always in sync with the latest field values.
package bookkeeping

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/pokercds/pokercds/internal/domain"
	"github.com/pokercds/pokercds/internal/settlement"
	"github.com/pokercds/pokercds/pkg/money"
)

var (
	ErrMemberNotInGame = errors.New("member is not part of this game")
	ErrMemberInGame    = errors.New("member is already part of this game")
	ErrInvalidAmount   = errors.New("invalid monetary amount")
	ErrUnknownField    = errors.New("unknown monetary field")
	ErrNoActiveEdit    = errors.New("no matching inline edit in progress")
)

// MonetaryField names a player session field editable as money.
type MonetaryField string

const (
	FieldFinalChips     MonetaryField = "final_chips"
	FieldRango          MonetaryField = "rango"
	FieldPingo          MonetaryField = "pingo"
	FieldReceivedAmount MonetaryField = "received_amount"
)

func ParseMonetaryField(name string) (MonetaryField, error) {
	switch MonetaryField(name) {
	case FieldFinalChips, FieldRango, FieldPingo, FieldReceivedAmount:
		return MonetaryField(name), nil
	}
	return "", ErrUnknownField
}

// PlayerView is a player session with its computed balance attached.
type PlayerView struct {
	domain.PlayerSession
	CalculatedBalance decimal.Decimal
	BalanceClass      settlement.Class
}

// TotalsView is the game-wide totals panel.
type TotalsView struct {
	settlement.Totals
	TotalBalanceClass    settlement.Class
	ChipDiscrepancy      decimal.Decimal
	ChipDiscrepancyClass settlement.Class
}

// editCursor is the single inline-edit slot. At most one cell of the whole
// game is in edit state at a time; starting an edit elsewhere abandons any
// uncommitted stage.
type editCursor struct {
	active   bool
	memberID int
	field    MonetaryField
	value    string
}

type Aggregate struct {
	game     domain.Game
	sessions []domain.PlayerSession
	totals   settlement.Totals
	edit     editCursor
}

// NewAggregate wraps a game and its ordered sessions and computes the
// initial totals.
func NewAggregate(game domain.Game, sessions []domain.PlayerSession) *Aggregate {
	a := &Aggregate{
		game:     game,
		sessions: append([]domain.PlayerSession(nil), sessions...),
	}
	a.recompute()
	return a
}

func (a *Aggregate) recompute() {
	a.totals = settlement.ComputeTotals(a.sessions)
}

func (a *Aggregate) find(memberID int) *domain.PlayerSession {
	for i := range a.sessions {
		if a.sessions[i].MemberID == memberID {
			return &a.sessions[i]
		}
	}
	return nil
}

func (a *Aggregate) Game() domain.Game {
	return a.game
}

// Session returns a copy of the member's session for persistence.
func (a *Aggregate) Session(memberID int) (domain.PlayerSession, error) {
	s := a.find(memberID)
	if s == nil {
		return domain.PlayerSession{}, ErrMemberNotInGame
	}
	return *s, nil
}

// Players returns the per-player computed views in roster order.
func (a *Aggregate) Players() []PlayerView {
	views := make([]PlayerView, len(a.sessions))
	for i, s := range a.sessions {
		balance := settlement.PlayerBalance(s)
		views[i] = PlayerView{
			PlayerSession:     s,
			CalculatedBalance: balance,
			BalanceClass:      settlement.Classify(balance),
		}
	}
	return views
}

// Totals returns the game-wide totals panel, always derived from the
// current field values.
func (a *Aggregate) Totals() TotalsView {
	discrepancy := settlement.ChipDiscrepancy(a.totals)
	return TotalsView{
		Totals:               a.totals,
		TotalBalanceClass:    settlement.Classify(a.totals.TotalBalance),
		ChipDiscrepancy:      discrepancy,
		ChipDiscrepancyClass: settlement.Classify(discrepancy),
	}
}

// AddPlayer puts a member on the roster with a zeroed session.
func (a *Aggregate) AddPlayer(memberID int, memberName string) error {
	if a.find(memberID) != nil {
		return ErrMemberInGame
	}
	a.sessions = append(a.sessions, domain.PlayerSession{
		GameID:         a.game.ID,
		MemberID:       memberID,
		MemberName:     memberName,
		FinalChips:     decimal.Zero,
		Rango:          decimal.Zero,
		Pingo:          decimal.Zero,
		ReceivedAmount: decimal.Zero,
	})
	a.recompute()
	return nil
}

// RemovePlayer drops the member's session from the roster.
func (a *Aggregate) RemovePlayer(memberID int) error {
	for i := range a.sessions {
		if a.sessions[i].MemberID == memberID {
			a.sessions = append(a.sessions[:i], a.sessions[i+1:]...)
			a.recompute()
			return nil
		}
	}
	return ErrMemberNotInGame
}

func (a *Aggregate) IncrementCreditBuyin(memberID int) error {
	s := a.find(memberID)
	if s == nil {
		return ErrMemberNotInGame
	}
	s.CreditBuyin++
	a.recompute()
	return nil
}

// DecrementCreditBuyin floors at zero: decrementing an empty counter is a
// no-op, not an error.
func (a *Aggregate) DecrementCreditBuyin(memberID int) error {
	s := a.find(memberID)
	if s == nil {
		return ErrMemberNotInGame
	}
	if s.CreditBuyin > 0 {
		s.CreditBuyin--
	}
	a.recompute()
	return nil
}

func (a *Aggregate) IncrementCashBuyin(memberID int) error {
	s := a.find(memberID)
	if s == nil {
		return ErrMemberNotInGame
	}
	s.CashBuyin++
	a.recompute()
	return nil
}

func (a *Aggregate) DecrementCashBuyin(memberID int) error {
	s := a.find(memberID)
	if s == nil {
		return ErrMemberNotInGame
	}
	if s.CashBuyin > 0 {
		s.CashBuyin--
	}
	a.recompute()
	return nil
}

// SetMonetaryField parses raw as an exact non-negative decimal and replaces
// the named field. On a parse failure the session keeps its prior value.
func (a *Aggregate) SetMonetaryField(memberID int, field MonetaryField, raw string) error {
	s := a.find(memberID)
	if s == nil {
		return ErrMemberNotInGame
	}
	value, err := money.Parse(raw)
	if err != nil {
		return ErrInvalidAmount
	}
	switch field {
	case FieldFinalChips:
		s.FinalChips = value
	case FieldRango:
		s.Rango = value
	case FieldPingo:
		s.Pingo = value
	case FieldReceivedAmount:
		s.ReceivedAmount = value
	default:
		return ErrUnknownField
	}
	a.recompute()
	return nil
}

// BeginInlineEdit stages a cell for editing. Any previously staged cell is
// silently abandoned.
func (a *Aggregate) BeginInlineEdit(memberID int, field MonetaryField, currentValue string) error {
	if a.find(memberID) == nil {
		return ErrMemberNotInGame
	}
	a.edit = editCursor{
		active:   true,
		memberID: memberID,
		field:    field,
		value:    currentValue,
	}
	return nil
}

// SetEditingValue replaces the staged value. No-op when nothing is staged.
func (a *Aggregate) SetEditingValue(value string) {
	if a.edit.active {
		a.edit.value = value
	}
}

// CancelInlineEdit discards the stage without touching the session.
func (a *Aggregate) CancelInlineEdit() {
	a.edit = editCursor{}
}

// EditingCell reports the staged cell, if any.
func (a *Aggregate) EditingCell() (memberID int, field MonetaryField, value string, active bool) {
	return a.edit.memberID, a.edit.field, a.edit.value, a.edit.active
}

// CommitInlineEdit validates and applies the staged value. On an invalid
// amount the session is unchanged and the stage is preserved so the caller
// can retry; on success the stage is cleared.
func (a *Aggregate) CommitInlineEdit(memberID int, field MonetaryField) error {
	if !a.edit.active || a.edit.memberID != memberID || a.edit.field != field {
		return ErrNoActiveEdit
	}
	if err := a.SetMonetaryField(memberID, field, a.edit.value); err != nil {
		return err
	}
	a.edit = editCursor{}
	return nil
}
