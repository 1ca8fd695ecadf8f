package websocket

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hotseatlabs/stockticker-backend/internal/apperror"
	"github.com/hotseatlabs/stockticker-backend/internal/stockticker"
)

func (that *Server) handleNewGame(ctx context.Context, msg *Message, bufrw *bufio.ReadWriter) error {
	log := that.logger.With("method", "handleNewGame")

	payloadReq, err := decodePayload(msg)
	if err != nil {
		return err
	}

	if len(payloadReq.Players) == 0 {
		log.Error("Players are missing in payload")
		return that.sendErrorResponse(bufrw, msg.Action, "player names are required")
	}

	game, err := that.gameManager.NewGame(ctx, payloadReq.Players)
	if err != nil {
		log.Error("failed to create game", "error", err)
		return that.sendErrorResponse(bufrw, msg.Action, "failed to create a new game")
	}

	log.Info("game created", "gameID", game.ID)

	return that.sendMessage(bufrw, msg.Action, Payload{Game: game})
}

func (that *Server) handleGameState(ctx context.Context, msg *Message, bufrw *bufio.ReadWriter) error {
	log := that.logger.With("method", "handleGameState")

	payloadReq, err := decodePayload(msg)
	if err != nil {
		return err
	}

	game, err := that.gameManager.GetGame(ctx, payloadReq.GameID)
	if err != nil {
		log.Error("failed to get game", "gameID", payloadReq.GameID, "error", err)
		return that.sendErrorResponse(bufrw, msg.Action, "failed to get the game")
	}

	return that.sendMessage(bufrw, msg.Action, Payload{Game: game})
}

func (that *Server) handleRoll(ctx context.Context, msg *Message, bufrw *bufio.ReadWriter) error {
	log := that.logger.With("method", "handleRoll")

	payloadReq, err := decodePayload(msg)
	if err != nil {
		return err
	}

	game, err := that.gameManager.RollDice(ctx, payloadReq.GameID)
	if errors.Is(err, apperror.ErrInvalidStateTransition) {
		return that.sendErrorResponse(bufrw, msg.Action, err.Error())
	}

	if err != nil {
		log.Error("failed to roll dice", "gameID", payloadReq.GameID, "error", err)
		return that.sendErrorResponse(bufrw, msg.Action, "failed to roll the dice")
	}

	return that.sendMessage(bufrw, msg.Action, Payload{Game: game})
}

func (that *Server) handleTrade(ctx context.Context, msg *Message, bufrw *bufio.ReadWriter) error {
	log := that.logger.With("method", "handleTrade")

	payloadReq, err := decodePayload(msg)
	if err != nil {
		return err
	}

	if payloadReq.Player == "" {
		log.Error("Player is missing in payload")
		return that.sendErrorResponse(bufrw, msg.Action, "player is required")
	}

	game, err := that.gameManager.ExecuteTrade(
		ctx,
		payloadReq.GameID,
		payloadReq.Player,
		payloadReq.Stock,
		stockticker.TradeDirection(payloadReq.Direction),
		payloadReq.Shares,
	)

	switch {
	case errors.Is(err, apperror.ErrInvalidStateTransition),
		errors.Is(err, apperror.ErrInvalidBlockSize),
		errors.Is(err, apperror.ErrInsufficientFunds),
		errors.Is(err, apperror.ErrInsufficientShares),
		errors.Is(err, apperror.ErrUnknownSymbol),
		errors.Is(err, apperror.ErrUnknownPlayer),
		errors.Is(err, stockticker.ErrUnknownDirection):
		return that.sendErrorResponse(bufrw, msg.Action, err.Error())
	case err != nil:
		log.Error("failed to execute trade", "gameID", payloadReq.GameID, "error", err)
		return that.sendErrorResponse(bufrw, msg.Action, "failed to execute the trade")
	}

	return that.sendMessage(bufrw, msg.Action, Payload{Game: game})
}

func (that *Server) handleEndTurn(ctx context.Context, msg *Message, bufrw *bufio.ReadWriter) error {
	log := that.logger.With("method", "handleEndTurn")

	payloadReq, err := decodePayload(msg)
	if err != nil {
		return err
	}

	game, err := that.gameManager.EndTrading(ctx, payloadReq.GameID)
	if errors.Is(err, apperror.ErrInvalidStateTransition) {
		return that.sendErrorResponse(bufrw, msg.Action, err.Error())
	}

	if err != nil {
		log.Error("failed to end trading", "gameID", payloadReq.GameID, "error", err)
		return that.sendErrorResponse(bufrw, msg.Action, "failed to end the trading window")
	}

	return that.sendMessage(bufrw, msg.Action, Payload{Game: game})
}

func (that *Server) handleStandings(ctx context.Context, msg *Message, bufrw *bufio.ReadWriter) error {
	log := that.logger.With("method", "handleStandings")

	payloadReq, err := decodePayload(msg)
	if err != nil {
		return err
	}

	standings, err := that.gameManager.Standings(ctx, payloadReq.GameID)
	if err != nil {
		log.Error("failed to get standings", "gameID", payloadReq.GameID, "error", err)
		return that.sendErrorResponse(bufrw, msg.Action, "failed to get standings")
	}

	return that.sendMessage(bufrw, msg.Action, Payload{Standings: standings})
}

func (that *Server) handleSave(ctx context.Context, msg *Message, bufrw *bufio.ReadWriter) error {
	log := that.logger.With("method", "handleSave")

	payloadReq, err := decodePayload(msg)
	if err != nil {
		return err
	}

	if payloadReq.Slot == "" {
		log.Error("Slot is missing in payload")
		return that.sendErrorResponse(bufrw, msg.Action, "save slot name is required")
	}

	if err = that.gameManager.SaveGame(ctx, payloadReq.GameID, payloadReq.Slot); err != nil {
		log.Error("failed to save game", "gameID", payloadReq.GameID, "error", err)
		return that.sendErrorResponse(bufrw, msg.Action, "failed to save the game")
	}

	log.Info("game saved", "slot", payloadReq.Slot)

	return that.sendMessage(bufrw, msg.Action, Payload{Slot: payloadReq.Slot})
}

func (that *Server) handleLoad(ctx context.Context, msg *Message, bufrw *bufio.ReadWriter) error {
	log := that.logger.With("method", "handleLoad")

	payloadReq, err := decodePayload(msg)
	if err != nil {
		return err
	}

	if payloadReq.Slot == "" {
		log.Error("Slot is missing in payload")
		return that.sendErrorResponse(bufrw, msg.Action, "save slot name is required")
	}

	game, err := that.gameManager.LoadGame(ctx, payloadReq.Slot)
	if errors.Is(err, apperror.ErrMalformedSnapshot) {
		return that.sendErrorResponse(bufrw, msg.Action, err.Error())
	}

	if err != nil {
		log.Error("failed to load game", "slot", payloadReq.Slot, "error", err)
		return that.sendErrorResponse(bufrw, msg.Action, "failed to load the game")
	}

	return that.sendMessage(bufrw, msg.Action, Payload{Game: game})
}

func (that *Server) handleListSaves(ctx context.Context, msg *Message, bufrw *bufio.ReadWriter) error {
	log := that.logger.With("method", "handleListSaves")

	slots, err := that.gameManager.ListSaves(ctx)
	if err != nil {
		log.Error("failed to list save slots", "error", err)
		return that.sendErrorResponse(bufrw, msg.Action, "failed to list save slots")
	}

	return that.sendMessage(bufrw, msg.Action, Payload{Slots: slots})
}

func decodePayload(msg *Message) (*Payload, error) {
	var payload Payload

	if len(msg.Payload) == 0 {
		return &payload, nil
	}

	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return nil, fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	return &payload, nil
}
