package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/hotseatlabs/stockticker-backend/internal/apperror"
	"github.com/hotseatlabs/stockticker-backend/internal/dice"
	"github.com/hotseatlabs/stockticker-backend/internal/entity"
	"github.com/hotseatlabs/stockticker-backend/internal/snapshot"
	"github.com/hotseatlabs/stockticker-backend/internal/stockticker"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type saveRepo interface {
	Put(ctx context.Context, name, snapshotText string) error
	Get(ctx context.Context, name string) (string, error)
	List(ctx context.Context) ([]string, error)
}

// GameManager drives game sessions on behalf of the UI: it loads the table,
// runs one engine operation and stores the table back. All rules live in
// the stockticker package.
type GameManager struct {
	logger *slog.Logger
	roller dice.Roller

	gameRepo gameRepo
	saveRepo saveRepo

	startingCashCents int
}

func NewGameManager(logger *slog.Logger, roller dice.Roller, gameRepo gameRepo, saveRepo saveRepo, startingCashCents int) *GameManager {
	if startingCashCents <= 0 {
		startingCashCents = entity.StartingCashCents
	}

	return &GameManager{
		logger: logger,
		roller: roller,

		gameRepo: gameRepo,
		saveRepo: saveRepo,

		startingCashCents: startingCashCents,
	}
}

// NewGame creates a fresh table for the given players.
func (that *GameManager) NewGame(ctx context.Context, playerNames []string) (*entity.Game, error) {
	log := that.logger.With("method", "NewGame")

	names := make([]string, 0, len(playerNames))
	for _, name := range playerNames {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			names = append(names, trimmed)
		}
	}

	if len(names) == 0 {
		return nil, apperror.ErrNoPlayers
	}

	gameInstance := entity.NewGame(uuid.NewString(), names, that.startingCashCents)
	gameInstance.Logf("new game: %s", strings.Join(names, ", "))

	if err := that.gameRepo.CreateOrUpdate(ctx, gameInstance); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	log.Info("game created", "gameID", gameInstance.ID, "players", len(names))

	return gameInstance, nil
}

// GetGame loads a table by ID.
func (that *GameManager) GetGame(ctx context.Context, gameID string) (*entity.Game, error) {
	gameInstance, err := that.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return gameInstance, nil
}

// RollDice rolls for the current player and opens trading.
func (that *GameManager) RollDice(ctx context.Context, gameID string) (*entity.Game, error) {
	log := that.logger.With("method", "RollDice", "gameID", gameID)

	gameInstance, err := that.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	record, err := stockticker.RollDice(gameInstance, that.roller)
	if err != nil {
		return nil, fmt.Errorf("failed to roll dice: %w", err)
	}

	if err = that.updateGame(ctx, gameInstance); err != nil {
		return nil, err
	}

	log.Info("dice rolled",
		"player", gameInstance.CurrentPlayer().Name,
		"stock", record.Symbol,
		"action", record.Action,
		"amount", record.AmountCents,
		"event", record.Event,
	)

	return gameInstance, nil
}

// ExecuteTrade buys or sells a block of shares for a named player while
// trading is open.
func (that *GameManager) ExecuteTrade(ctx context.Context, gameID, playerName string, symbol entity.Symbol, direction stockticker.TradeDirection, shares int) (*entity.Game, error) {
	log := that.logger.With("method", "ExecuteTrade", "gameID", gameID)

	gameInstance, err := that.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	playerIndex := gameInstance.PlayerIndex(playerName)
	if playerIndex < 0 {
		return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownPlayer, playerName)
	}

	if err = stockticker.ExecuteTrade(gameInstance, playerIndex, symbol, direction, shares); err != nil {
		return nil, fmt.Errorf("failed to execute trade: %w", err)
	}

	if err = that.updateGame(ctx, gameInstance); err != nil {
		return nil, err
	}

	log.Info("trade executed", "player", playerName, "stock", symbol, "direction", direction, "shares", shares)

	return gameInstance, nil
}

// EndTrading closes the trading window and passes the turn.
func (that *GameManager) EndTrading(ctx context.Context, gameID string) (*entity.Game, error) {
	log := that.logger.With("method", "EndTrading", "gameID", gameID)

	gameInstance, err := that.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if err = stockticker.EndTrading(gameInstance); err != nil {
		return nil, fmt.Errorf("failed to end trading: %w", err)
	}

	if err = that.updateGame(ctx, gameInstance); err != nil {
		return nil, err
	}

	log.Info("trading ended", "nextPlayer", gameInstance.CurrentPlayer().Name)

	return gameInstance, nil
}

// Standings returns players ranked by net worth.
func (that *GameManager) Standings(ctx context.Context, gameID string) ([]stockticker.Standing, error) {
	gameInstance, err := that.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	return stockticker.Standings(gameInstance), nil
}

// SaveGame writes the table's snapshot into a named save slot.
func (that *GameManager) SaveGame(ctx context.Context, gameID, slot string) error {
	log := that.logger.With("method", "SaveGame", "gameID", gameID)

	gameInstance, err := that.GetGame(ctx, gameID)
	if err != nil {
		return err
	}

	text, err := snapshot.Encode(gameInstance)
	if err != nil {
		return fmt.Errorf("failed to encode game: %w", err)
	}

	if err = that.saveRepo.Put(ctx, slot, text); err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}

	log.Info("game saved", "slot", slot)

	return nil
}

// LoadGame restores a table from a named save slot and makes it the active
// game under its original ID.
func (that *GameManager) LoadGame(ctx context.Context, slot string) (*entity.Game, error) {
	log := that.logger.With("method", "LoadGame", "slot", slot)

	text, err := that.saveRepo.Get(ctx, slot)
	if err != nil {
		return nil, fmt.Errorf("failed to load save slot: %w", err)
	}

	gameInstance, err := snapshot.Decode(text)
	if err != nil {
		return nil, fmt.Errorf("failed to decode save slot: %w", err)
	}

	if err = that.updateGame(ctx, gameInstance); err != nil {
		return nil, err
	}

	log.Info("game loaded", "gameID", gameInstance.ID)

	return gameInstance, nil
}

// ListSaves names the stored save slots, newest first.
func (that *GameManager) ListSaves(ctx context.Context) ([]string, error) {
	names, err := that.saveRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list save slots: %w", err)
	}

	return names, nil
}

func (that *GameManager) updateGame(ctx context.Context, gameInstance *entity.Game) error {
	if err := that.gameRepo.CreateOrUpdate(ctx, gameInstance); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	return nil
}
