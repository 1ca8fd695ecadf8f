// Package snapshot converts a game to and from its stable text form. The
// encoding is indented JSON so saved games stay human-diffable; Decode
// validates every domain invariant before handing the state back, so a
// snapshot that decodes is always a playable game.
package snapshot

import (
	"encoding/json"
	"fmt"

	"github.com/hotseatlabs/stockticker-backend/internal/apperror"
	"github.com/hotseatlabs/stockticker-backend/internal/entity"
)

// Encode renders the full game state as snapshot text. Round trip with
// Decode is lossless.
func Encode(gameInstance *entity.Game) (string, error) {
	text, err := json.MarshalIndent(gameInstance, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode snapshot: %w", err)
	}

	return string(text), nil
}

// Decode parses snapshot text back into a game, rejecting anything that
// breaks the game's invariants with ErrMalformedSnapshot.
func Decode(text string) (*entity.Game, error) {
	var gameInstance entity.Game
	if err := json.Unmarshal([]byte(text), &gameInstance); err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrMalformedSnapshot, err)
	}

	if err := validate(&gameInstance); err != nil {
		return nil, err
	}

	return &gameInstance, nil
}

func validate(gameInstance *entity.Game) error {
	if len(gameInstance.Players) == 0 {
		return fmt.Errorf("%w: no players", apperror.ErrMalformedSnapshot)
	}

	if gameInstance.TurnIndex < 0 || gameInstance.TurnIndex >= len(gameInstance.Players) {
		return fmt.Errorf("%w: turn index %d out of range", apperror.ErrMalformedSnapshot, gameInstance.TurnIndex)
	}

	if len(gameInstance.Market) != len(entity.AllSymbols()) {
		return fmt.Errorf("%w: market has %d stocks, want %d", apperror.ErrMalformedSnapshot, len(gameInstance.Market), len(entity.AllSymbols()))
	}

	for symbol, stock := range gameInstance.Market {
		if !symbol.IsValid() {
			return fmt.Errorf("%w: unknown stock %q", apperror.ErrMalformedSnapshot, symbol)
		}
		if stock == nil {
			return fmt.Errorf("%w: stock %q has no record", apperror.ErrMalformedSnapshot, symbol)
		}
		if stock.Symbol == "" {
			stock.Symbol = symbol
		}
		if stock.PriceCents < entity.BankruptPriceCents || stock.PriceCents > entity.SplitPriceCents {
			return fmt.Errorf("%w: stock %q price %d out of range", apperror.ErrMalformedSnapshot, symbol, stock.PriceCents)
		}
	}

	for _, player := range gameInstance.Players {
		if player == nil || player.Name == "" {
			return fmt.Errorf("%w: player without a name", apperror.ErrMalformedSnapshot)
		}
		if player.CashCents < 0 {
			return fmt.Errorf("%w: player %q has negative cash", apperror.ErrMalformedSnapshot, player.Name)
		}
		if player.Holdings == nil {
			player.Holdings = make(map[entity.Symbol]int)
		}
		for symbol, shares := range player.Holdings {
			if !symbol.IsValid() {
				return fmt.Errorf("%w: player %q holds unknown stock %q", apperror.ErrMalformedSnapshot, player.Name, symbol)
			}
			if shares < 0 {
				return fmt.Errorf("%w: player %q has negative holding of %q", apperror.ErrMalformedSnapshot, player.Name, symbol)
			}
		}
	}

	return nil
}
