package apperror

import "errors"

var (
	ErrInvalidDieFace         = errors.New("die face must be between 1 and 6")
	ErrInvalidBlockSize       = errors.New("shares must be one of the allowed trading blocks")
	ErrInsufficientFunds      = errors.New("not enough cash for this purchase")
	ErrInsufficientShares     = errors.New("not enough shares for this sale")
	ErrInvalidStateTransition = errors.New("action is not allowed in the current game phase")
	ErrMalformedSnapshot      = errors.New("malformed game snapshot")
	ErrNoPlayers              = errors.New("game needs at least one player")
	ErrUnknownSymbol          = errors.New("unknown stock symbol")
	ErrUnknownPlayer          = errors.New("player is not part of this game")
)
