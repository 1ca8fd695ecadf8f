package stockticker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotseatlabs/stockticker-backend/internal/apperror"
	"github.com/hotseatlabs/stockticker-backend/internal/entity"
)

func newTradingGame(names ...string) *entity.Game {
	game := newTestGame(names...)
	game.TradingOpen = true
	return game
}

func TestExecuteTrade_Buy(t *testing.T) {
	t.Run("Buys a block at the quoted price", func(t *testing.T) {
		// Given: Gold at 150 cents and an open trading window
		game := newTradingGame("alice")
		game.Market[entity.SymbolGold].PriceCents = 150
		cashBefore := game.Players[0].CashCents

		// When: alice buys 1000 shares
		err := ExecuteTrade(game, 0, entity.SymbolGold, TradeBuy, 1000)

		// Then: 1000 x 150 / 100 = 1500 cents are deducted and shares credited
		require.NoError(t, err)
		assert.Equal(t, cashBefore-1500, game.Players[0].CashCents)
		assert.Equal(t, 1000, game.Players[0].Holdings[entity.SymbolGold])
	})

	t.Run("Fails without enough cash and leaves state untouched", func(t *testing.T) {
		// Given: alice with only 100 cents
		game := newTradingGame("alice")
		game.Players[0].CashCents = 100

		// When: alice tries to buy 5000 shares
		err := ExecuteTrade(game, 0, entity.SymbolGold, TradeBuy, 5000)

		// Then: the trade fails atomically
		require.ErrorIs(t, err, apperror.ErrInsufficientFunds)
		assert.Equal(t, 100, game.Players[0].CashCents)
		assert.Equal(t, 0, game.Players[0].Holdings[entity.SymbolGold])
	})
}

func TestExecuteTrade_Sell(t *testing.T) {
	t.Run("Selling back a bought block restores the cash", func(t *testing.T) {
		// Given: alice bought 1000 shares of Gold at 150
		game := newTradingGame("alice")
		game.Market[entity.SymbolGold].PriceCents = 150
		cashBefore := game.Players[0].CashCents
		require.NoError(t, ExecuteTrade(game, 0, entity.SymbolGold, TradeBuy, 1000))

		// When: she sells them back with no intervening price change
		err := ExecuteTrade(game, 0, entity.SymbolGold, TradeSell, 1000)

		// Then: cash and holdings are back where they started
		require.NoError(t, err)
		assert.Equal(t, cashBefore, game.Players[0].CashCents)
		assert.Equal(t, 0, game.Players[0].Holdings[entity.SymbolGold])
	})

	t.Run("Fails without enough shares and leaves state untouched", func(t *testing.T) {
		// Given: alice holds 500 shares of Oil
		game := newTradingGame("alice")
		game.Players[0].Holdings[entity.SymbolOil] = 500
		cashBefore := game.Players[0].CashCents

		// When: she tries to sell 1000
		err := ExecuteTrade(game, 0, entity.SymbolOil, TradeSell, 1000)

		// Then: the trade fails atomically
		require.ErrorIs(t, err, apperror.ErrInsufficientShares)
		assert.Equal(t, cashBefore, game.Players[0].CashCents)
		assert.Equal(t, 500, game.Players[0].Holdings[entity.SymbolOil])
	})
}

func TestExecuteTrade_Validation(t *testing.T) {
	t.Run("Rejects share counts outside the allowed blocks", func(t *testing.T) {
		game := newTradingGame("alice")

		for _, shares := range []int{0, -500, 300, 750, 1500, 10000} {
			err := ExecuteTrade(game, 0, entity.SymbolGold, TradeBuy, shares)
			assert.ErrorIs(t, err, apperror.ErrInvalidBlockSize, "shares %d", shares)
		}
	})

	t.Run("Accepts every allowed block", func(t *testing.T) {
		game := newTradingGame("alice")
		game.Players[0].CashCents = 10000000

		for _, shares := range entity.BlockSizes {
			err := ExecuteTrade(game, 0, entity.SymbolGold, TradeBuy, shares)
			assert.NoError(t, err, "shares %d", shares)
		}
	})

	t.Run("Rejects trades while awaiting a roll", func(t *testing.T) {
		// Given: the trading window is closed
		game := newTestGame("alice")

		// When: a trade is attempted
		err := ExecuteTrade(game, 0, entity.SymbolGold, TradeBuy, 500)

		// Then: it is refused as a state violation
		assert.ErrorIs(t, err, apperror.ErrInvalidStateTransition)
	})

	t.Run("Rejects unknown stock symbols", func(t *testing.T) {
		game := newTradingGame("alice")

		err := ExecuteTrade(game, 0, entity.Symbol("COPPER"), TradeBuy, 500)

		assert.ErrorIs(t, err, apperror.ErrUnknownSymbol)
	})

	t.Run("Rejects unknown player index", func(t *testing.T) {
		game := newTradingGame("alice")

		err := ExecuteTrade(game, 3, entity.SymbolGold, TradeBuy, 500)

		assert.ErrorIs(t, err, apperror.ErrUnknownPlayer)
	})

	t.Run("Rejects unknown trade direction", func(t *testing.T) {
		game := newTradingGame("alice")

		err := ExecuteTrade(game, 0, entity.SymbolGold, TradeDirection("short"), 500)

		assert.ErrorIs(t, err, ErrUnknownDirection)
	})
}
