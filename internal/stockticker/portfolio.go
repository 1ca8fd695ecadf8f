package stockticker

import (
	"errors"
	"fmt"

	"github.com/hotseatlabs/stockticker-backend/internal/apperror"
	"github.com/hotseatlabs/stockticker-backend/internal/entity"
)

var ErrUnknownDirection = errors.New("unknown trade direction")

// TradeDirection says whether a trade buys shares from the bank or sells
// them back.
type TradeDirection string

const (
	TradeBuy  TradeDirection = "buy"
	TradeSell TradeDirection = "sell"
)

// ExecuteTrade moves shares between the bank and a player at the current
// board price. Only valid while the trading window is open. The trade is
// atomic: cash and holdings change together or not at all.
func ExecuteTrade(gameInstance *entity.Game, playerIndex int, symbol entity.Symbol, direction TradeDirection, shares int) error {
	if gameInstance.IsAwaitingRoll() {
		return fmt.Errorf("%w: trades are only allowed while trading is open", apperror.ErrInvalidStateTransition)
	}

	if playerIndex < 0 || playerIndex >= len(gameInstance.Players) {
		return fmt.Errorf("%w: index %d", apperror.ErrUnknownPlayer, playerIndex)
	}

	if !symbol.IsValid() {
		return fmt.Errorf("%w: %q", apperror.ErrUnknownSymbol, symbol)
	}

	if !entity.IsAllowedBlock(shares) {
		return fmt.Errorf("%w: %d", apperror.ErrInvalidBlockSize, shares)
	}

	player := gameInstance.Players[playerIndex]
	stock := gameInstance.Market[symbol]

	// Shares trade at the quoted dollar price, so a 500-share block at a
	// price of 150 cents costs 750 cents.
	costCents := shares * stock.PriceCents / 100

	switch direction {
	case TradeBuy:
		if player.CashCents < costCents {
			return fmt.Errorf("%w: need %d cents, have %d", apperror.ErrInsufficientFunds, costCents, player.CashCents)
		}
		player.CashCents -= costCents
		player.Holdings[symbol] += shares
		gameInstance.Logf("%s bought %d %s at %s for %d cents", player.Name, shares, symbol.DisplayName(), stock.DisplayPrice(), costCents)

	case TradeSell:
		if player.Holdings[symbol] < shares {
			return fmt.Errorf("%w: selling %d, holding %d", apperror.ErrInsufficientShares, shares, player.Holdings[symbol])
		}
		player.Holdings[symbol] -= shares
		player.CashCents += costCents
		gameInstance.Logf("%s sold %d %s at %s for %d cents", player.Name, shares, symbol.DisplayName(), stock.DisplayPrice(), costCents)

	default:
		return fmt.Errorf("%w: %q", ErrUnknownDirection, direction)
	}

	return nil
}

func doubleHoldings(gameInstance *entity.Game, symbol entity.Symbol) {
	for _, player := range gameInstance.Players {
		if player.Holdings[symbol] > 0 {
			player.Holdings[symbol] *= 2
		}
	}
}

func zeroHoldings(gameInstance *entity.Game, symbol entity.Symbol) {
	for _, player := range gameInstance.Players {
		if player.Holdings[symbol] > 0 {
			player.Holdings[symbol] = 0
		}
	}
}

func payDividend(gameInstance *entity.Game, symbol entity.Symbol, amountCents int) int {
	var totalCents int

	for _, player := range gameInstance.Players {
		shares := player.Holdings[symbol]
		if shares <= 0 {
			continue
		}
		payout := amountCents * shares
		player.CashCents += payout
		totalCents += payout
	}

	return totalCents
}
