package entity

import "fmt"

// DieAction is the movement face of the action die.
type DieAction string

const (
	ActionUp       DieAction = "up"
	ActionDown     DieAction = "down"
	ActionDividend DieAction = "dividend"
)

// Event describes what a resolved roll did to the board.
type Event string

const (
	EventPriceMoved      Event = "price_moved"
	EventSplit           Event = "split"
	EventBankrupt        Event = "bankrupt"
	EventDividendPaid    Event = "dividend_paid"
	EventDividendSkipped Event = "dividend_skipped"
)

// RollRecord keeps the most recent roll and its resolution for display
// and replay.
type RollRecord struct {
	Faces       [3]int    `json:"faces"`
	Symbol      Symbol    `json:"symbol"`
	Action      DieAction `json:"action"`
	AmountCents int       `json:"amount_cents"`
	Event       Event     `json:"event"`
}

// Game is the aggregate root for one table: players in turn order, the six
// stock prices, whose turn it is and whether the trading window is open.
type Game struct {
	ID          string            `json:"id"`
	Players     []*Player         `json:"players"`
	Market      map[Symbol]*Stock `json:"market"`
	TurnIndex   int               `json:"turn_index"`
	TradingOpen bool              `json:"trading_open"`
	RollCount   int               `json:"roll_count"`
	LastRoll    *RollRecord       `json:"last_roll,omitempty"`
	Log         []string          `json:"log,omitempty"`
}

// NewGame sets up a fresh table: every stock at the start price, every
// player with the given cash and no holdings, first player awaiting a roll.
func NewGame(id string, playerNames []string, startingCashCents int) *Game {
	players := make([]*Player, 0, len(playerNames))
	for _, name := range playerNames {
		players = append(players, NewPlayer(name, startingCashCents))
	}

	market := make(map[Symbol]*Stock, len(AllSymbols()))
	for _, symbol := range AllSymbols() {
		market[symbol] = &Stock{Symbol: symbol, PriceCents: StartPriceCents}
	}

	return &Game{
		ID:      id,
		Players: players,
		Market:  market,
	}
}

func (that *Game) IsTradingOpen() bool {
	return that.TradingOpen
}

func (that *Game) IsAwaitingRoll() bool {
	return !that.TradingOpen
}

// CurrentPlayer returns the player whose turn it is.
func (that *Game) CurrentPlayer() *Player {
	return that.Players[that.TurnIndex]
}

// PlayerIndex finds a player's turn position by name, or -1.
func (that *Game) PlayerIndex(name string) int {
	for i, player := range that.Players {
		if player.Name == name {
			return i
		}
	}
	return -1
}

// AdvanceTurn passes play to the next player cyclically.
func (that *Game) AdvanceTurn() {
	that.TurnIndex = (that.TurnIndex + 1) % len(that.Players)
}

// Logf appends a formatted line to the game's event log.
func (that *Game) Logf(format string, args ...any) {
	that.Log = append(that.Log, fmt.Sprintf(format, args...))
}
