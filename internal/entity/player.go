package entity

// Player holds one participant's cash and share holdings. Turn order is the
// player's position in the game's Players slice.
type Player struct {
	Name      string         `json:"name"`
	CashCents int            `json:"cash_cents"`
	Holdings  map[Symbol]int `json:"holdings"`
}

func NewPlayer(name string, cashCents int) *Player {
	return &Player{
		Name:      name,
		CashCents: cashCents,
		Holdings:  make(map[Symbol]int),
	}
}

// NetWorthCents values the player's portfolio at current market prices
// and adds cash on hand.
func (that *Player) NetWorthCents(market map[Symbol]*Stock) int {
	total := that.CashCents

	for symbol, shares := range that.Holdings {
		stock, ok := market[symbol]
		if !ok {
			continue
		}
		total += shares * stock.PriceCents / 100
	}

	return total
}
