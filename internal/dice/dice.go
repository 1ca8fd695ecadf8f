// Package dice maps the three physical dice of the game onto stock symbols,
// price actions and movement amounts.
package dice

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/hotseatlabs/stockticker-backend/internal/apperror"
	"github.com/hotseatlabs/stockticker-backend/internal/entity"
)

// Roll is one throw of the three dice, each face in 1..6.
type Roll struct {
	Stock  int
	Action int
	Amount int
}

// Outcome is a resolved roll: which stock moves, how, and by how much.
type Outcome struct {
	Symbol      entity.Symbol
	Action      entity.DieAction
	AmountCents int
}

// The physical dice repeat each action and amount on two faces.
var (
	actionFaces = [6]entity.DieAction{
		entity.ActionUp, entity.ActionUp,
		entity.ActionDown, entity.ActionDown,
		entity.ActionDividend, entity.ActionDividend,
	}
	amountFaces = [6]int{5, 5, 10, 10, 20, 20}
)

// Resolve maps a raw roll to its outcome. It is pure: the same roll always
// resolves the same way.
func Resolve(roll Roll) (Outcome, error) {
	if err := validateFace("stock", roll.Stock); err != nil {
		return Outcome{}, err
	}
	if err := validateFace("action", roll.Action); err != nil {
		return Outcome{}, err
	}
	if err := validateFace("amount", roll.Amount); err != nil {
		return Outcome{}, err
	}

	return Outcome{
		Symbol:      entity.AllSymbols()[roll.Stock-1],
		Action:      actionFaces[roll.Action-1],
		AmountCents: amountFaces[roll.Amount-1],
	}, nil
}

func validateFace(die string, face int) error {
	if face < 1 || face > 6 {
		return fmt.Errorf("%w: %s die rolled %d", apperror.ErrInvalidDieFace, die, face)
	}
	return nil
}

// Roller produces die faces. Injected into the game loop so tests can replay
// fixed sequences.
type Roller interface {
	Face() int
}

type randRoller struct {
	rng *rand.Rand
}

// NewRoller returns a uniform six-sided roller. A zero seed draws one from
// the clock.
func NewRoller(seed int64) Roller {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &randRoller{rng: rand.New(rand.NewSource(seed))}
}

func (that *randRoller) Face() int {
	return that.rng.Intn(6) + 1
}

// Throw rolls all three dice from the given roller.
func Throw(roller Roller) Roll {
	return Roll{
		Stock:  roller.Face(),
		Action: roller.Face(),
		Amount: roller.Face(),
	}
}
