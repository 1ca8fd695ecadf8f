package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGame(t *testing.T) {
	// Given: three player names
	game := NewGame("42", []string{"alice", "bob", "carol"}, StartingCashCents)

	// Then: every stock opens at the start price
	require.Len(t, game.Market, 6)
	for _, symbol := range AllSymbols() {
		stock, ok := game.Market[symbol]
		require.True(t, ok, "missing %s", symbol)
		assert.Equal(t, StartPriceCents, stock.PriceCents)
	}

	// And: every player starts with the same cash and no holdings
	require.Len(t, game.Players, 3)
	for _, player := range game.Players {
		assert.Equal(t, StartingCashCents, player.CashCents)
		assert.Empty(t, player.Holdings)
	}

	// And: the first player is awaiting a roll
	assert.Equal(t, 0, game.TurnIndex)
	assert.True(t, game.IsAwaitingRoll())
	assert.Equal(t, "alice", game.CurrentPlayer().Name)
}

func TestGame_AdvanceTurn(t *testing.T) {
	// Given: a two player game
	game := NewGame("42", []string{"alice", "bob"}, StartingCashCents)

	// When: the turn advances twice
	game.AdvanceTurn()
	assert.Equal(t, "bob", game.CurrentPlayer().Name)

	game.AdvanceTurn()

	// Then: play has wrapped back to the first player
	assert.Equal(t, "alice", game.CurrentPlayer().Name)
}

func TestGame_PlayerIndex(t *testing.T) {
	game := NewGame("42", []string{"alice", "bob"}, StartingCashCents)

	assert.Equal(t, 0, game.PlayerIndex("alice"))
	assert.Equal(t, 1, game.PlayerIndex("bob"))
	assert.Equal(t, -1, game.PlayerIndex("mallory"))
}

func TestPlayer_NetWorthCents(t *testing.T) {
	// Given: a market with Gold at 150 and a player holding 1000 shares
	game := NewGame("42", []string{"alice"}, StartingCashCents)
	game.Market[SymbolGold].PriceCents = 150
	player := game.Players[0]
	player.Holdings[SymbolGold] = 1000

	// Then: net worth is cash plus shares valued at the quoted price
	assert.Equal(t, StartingCashCents+1500, player.NetWorthCents(game.Market))
}

func TestSymbol(t *testing.T) {
	t.Run("All six symbols are valid", func(t *testing.T) {
		for _, symbol := range AllSymbols() {
			assert.True(t, symbol.IsValid(), "%s", symbol)
		}
	})

	t.Run("Unknown symbols are rejected", func(t *testing.T) {
		assert.False(t, Symbol("COPPER").IsValid())
		assert.False(t, Symbol("").IsValid())
	})
}

func TestStock_DisplayPrice(t *testing.T) {
	stock := &Stock{Symbol: SymbolGold, PriceCents: 105}
	assert.Equal(t, "$1.05", stock.DisplayPrice())

	stock.PriceCents = 5
	assert.Equal(t, "$0.05", stock.DisplayPrice())
}

func TestIsAllowedBlock(t *testing.T) {
	for _, shares := range BlockSizes {
		assert.True(t, IsAllowedBlock(shares), "shares %d", shares)
	}

	assert.False(t, IsAllowedBlock(0))
	assert.False(t, IsAllowedBlock(501))
	assert.False(t, IsAllowedBlock(-500))
}
