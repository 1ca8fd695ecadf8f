// Package stockticker implements the table rules: how resolved rolls move
// prices, when stocks split or go bankrupt, how dividends pay out, and which
// trades a player may make. All functions mutate the passed-in game only
// after every check has passed, so a returned error means nothing changed.
package stockticker

import (
	"github.com/hotseatlabs/stockticker-backend/internal/dice"
	"github.com/hotseatlabs/stockticker-backend/internal/entity"
)

// ApplyOutcome applies a resolved roll to the board and returns what happened.
// Prices are clamped to the tier boundaries before the split and bankruptcy
// checks, so an overshoot (190 + 20) still splits at the reset price.
func ApplyOutcome(gameInstance *entity.Game, outcome dice.Outcome) entity.Event {
	stock := gameInstance.Market[outcome.Symbol]
	name := outcome.Symbol.DisplayName()

	switch outcome.Action {
	case entity.ActionUp:
		stock.PriceCents += outcome.AmountCents
		if stock.PriceCents >= entity.SplitPriceCents {
			stock.PriceCents = entity.SplitPriceCents
			doubleHoldings(gameInstance, outcome.Symbol)
			stock.PriceCents = entity.StartPriceCents
			gameInstance.Logf("%s split at $2.00: holders' shares doubled, price reset to $1.00", name)
			return entity.EventSplit
		}
		gameInstance.Logf("%s up %d cents to %s", name, outcome.AmountCents, stock.DisplayPrice())
		return entity.EventPriceMoved

	case entity.ActionDown:
		stock.PriceCents -= outcome.AmountCents
		if stock.PriceCents <= entity.BankruptPriceCents {
			stock.PriceCents = entity.BankruptPriceCents
			zeroHoldings(gameInstance, outcome.Symbol)
			stock.PriceCents = entity.StartPriceCents
			gameInstance.Logf("%s went bankrupt: all shares lost, price reset to $1.00", name)
			return entity.EventBankrupt
		}
		gameInstance.Logf("%s down %d cents to %s", name, outcome.AmountCents, stock.DisplayPrice())
		return entity.EventPriceMoved

	case entity.ActionDividend:
		if stock.PriceCents < entity.StartPriceCents {
			gameInstance.Logf("%s below $1.00: no dividend paid", name)
			return entity.EventDividendSkipped
		}
		total := payDividend(gameInstance, outcome.Symbol, outcome.AmountCents)
		gameInstance.Logf("%s pays a %d cent dividend per share: %d cents paid out", name, outcome.AmountCents, total)
		return entity.EventDividendPaid
	}

	return entity.EventPriceMoved
}
