package stockticker

import (
	"fmt"
	"sort"

	"github.com/hotseatlabs/stockticker-backend/internal/apperror"
	"github.com/hotseatlabs/stockticker-backend/internal/dice"
	"github.com/hotseatlabs/stockticker-backend/internal/entity"
)

// RollDice throws the three dice for the current player, applies the outcome
// to the board and opens the trading window. Only valid while awaiting a roll.
func RollDice(gameInstance *entity.Game, roller dice.Roller) (*entity.RollRecord, error) {
	if gameInstance.IsTradingOpen() {
		return nil, fmt.Errorf("%w: dice cannot be rolled while trading is open", apperror.ErrInvalidStateTransition)
	}

	roll := dice.Throw(roller)

	outcome, err := dice.Resolve(roll)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve roll: %w", err)
	}

	event := ApplyOutcome(gameInstance, outcome)

	record := &entity.RollRecord{
		Faces:       [3]int{roll.Stock, roll.Action, roll.Amount},
		Symbol:      outcome.Symbol,
		Action:      outcome.Action,
		AmountCents: outcome.AmountCents,
		Event:       event,
	}

	gameInstance.LastRoll = record
	gameInstance.RollCount++
	gameInstance.TradingOpen = true

	return record, nil
}

// EndTrading closes the trading window and passes play to the next player.
// Only valid while trading is open.
func EndTrading(gameInstance *entity.Game) error {
	if gameInstance.IsAwaitingRoll() {
		return fmt.Errorf("%w: trading is not open", apperror.ErrInvalidStateTransition)
	}

	gameInstance.TradingOpen = false
	gameInstance.AdvanceTurn()
	gameInstance.Logf("trading closed, %s to roll", gameInstance.CurrentPlayer().Name)

	return nil
}

// Standing is one player's rank by net worth.
type Standing struct {
	Name          string `json:"name"`
	NetWorthCents int    `json:"net_worth_cents"`
}

// Standings lists players richest first, valuing holdings at current prices.
func Standings(gameInstance *entity.Game) []Standing {
	standings := make([]Standing, 0, len(gameInstance.Players))
	for _, player := range gameInstance.Players {
		standings = append(standings, Standing{
			Name:          player.Name,
			NetWorthCents: player.NetWorthCents(gameInstance.Market),
		})
	}

	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].NetWorthCents > standings[j].NetWorthCents
	})

	return standings
}
