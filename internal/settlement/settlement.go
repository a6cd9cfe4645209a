// Package settlement computes financial outcomes for a poker session:
// per-player balances, game-wide totals and the chip discrepancy integrity
// signal. All arithmetic is exact base-10 decimal; money never touches a
// binary float. The package does no I/O and keeps no state: totals are
// re-derived in full from the sessions passed in.
package settlement

import (
	"github.com/shopspring/decimal"

	"github.com/pokercds/pokercds/internal/domain"
)

// BuyinValue is the monetary value of a single buy-in chip stack. It is the
// one place this amount is defined.
var BuyinValue = decimal.RequireFromString("50.00")

// Class is the display classification of a signed amount.
type Class string

const (
	ClassSurplus Class = "surplus"
	ClassDeficit Class = "deficit"
)

// Classify maps a signed amount to its display class. Zero counts as surplus.
func Classify(d decimal.Decimal) Class {
	if d.IsNegative() {
		return ClassDeficit
	}
	return ClassSurplus
}

// Totals aggregates the financial fields of every session in a game.
type Totals struct {
	TotalCreditBuyins int
	TotalCashBuyins   int
	TotalFinalChips   decimal.Decimal
	TotalRango        decimal.Decimal
	TotalPingo        decimal.Decimal
	TotalReceived     decimal.Decimal
	TotalBalance      decimal.Decimal
}

// PlayerBalance computes the net amount owed to (positive) or by (negative)
// a player:
//
//	final_chips + rango + pingo - received_amount - (credit + cash) * BuyinValue
//
// Received money has already been paid out to the player, so it reduces what
// the pot still owes them.
func PlayerBalance(s domain.PlayerSession) decimal.Decimal {
	buyins := decimal.NewFromInt(int64(s.CreditBuyin + s.CashBuyin)).Mul(BuyinValue)
	return s.FinalChips.
		Add(s.Rango).
		Add(s.Pingo).
		Sub(s.ReceivedAmount).
		Sub(buyins)
}

// ComputeTotals sums every field across the sessions and derives the game
// balance under the same sign convention as PlayerBalance. Rango and pingo
// are kept separate from the chip total.
func ComputeTotals(sessions []domain.PlayerSession) Totals {
	t := Totals{
		TotalFinalChips: decimal.Zero,
		TotalRango:      decimal.Zero,
		TotalPingo:      decimal.Zero,
		TotalReceived:   decimal.Zero,
	}
	for _, s := range sessions {
		t.TotalCreditBuyins += s.CreditBuyin
		t.TotalCashBuyins += s.CashBuyin
		t.TotalFinalChips = t.TotalFinalChips.Add(s.FinalChips)
		t.TotalRango = t.TotalRango.Add(s.Rango)
		t.TotalPingo = t.TotalPingo.Add(s.Pingo)
		t.TotalReceived = t.TotalReceived.Add(s.ReceivedAmount)
	}

	buyins := decimal.NewFromInt(int64(t.TotalCreditBuyins + t.TotalCashBuyins)).Mul(BuyinValue)
	t.TotalBalance = t.TotalFinalChips.
		Add(t.TotalRango).
		Add(t.TotalPingo).
		Sub(t.TotalReceived).
		Sub(buyins)
	return t
}

// ChipDiscrepancy reports the difference between the money implied by the
// buy-in counters and the chips actually counted:
//
//	(total_credit + total_cash) * BuyinValue - total_final_chips
//
// It trends toward zero as data entry finishes. A nonzero value flags
// miscounted chips; it is surfaced, never rejected.
func ChipDiscrepancy(t Totals) decimal.Decimal {
	buyins := decimal.NewFromInt(int64(t.TotalCreditBuyins + t.TotalCashBuyins)).Mul(BuyinValue)
	return buyins.Sub(t.TotalFinalChips)
}
