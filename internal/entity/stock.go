package entity

import "fmt"

// Symbol identifies one of the six tradable stocks.
type Symbol string

const (
	SymbolGold        Symbol = "GOLD"
	SymbolSilver      Symbol = "SILVER"
	SymbolBonds       Symbol = "BONDS"
	SymbolOil         Symbol = "OIL"
	SymbolIndustrials Symbol = "INDUSTRIALS"
	SymbolGrain       Symbol = "GRAIN"
)

const (
	StartPriceCents    = 100
	SplitPriceCents    = 200
	BankruptPriceCents = 0

	StartingCashCents = 500000

	MinTradingBlock = 500
)

// BlockSizes are the only share counts a single trade may move.
var BlockSizes = []int{500, 1000, 2000, 5000}

// AllSymbols returns the six symbols in their fixed board order,
// which is also the die-face order.
func AllSymbols() []Symbol {
	return []Symbol{
		SymbolGold,
		SymbolSilver,
		SymbolBonds,
		SymbolOil,
		SymbolIndustrials,
		SymbolGrain,
	}
}

func (that Symbol) IsValid() bool {
	switch that {
	case SymbolGold, SymbolSilver, SymbolBonds, SymbolOil, SymbolIndustrials, SymbolGrain:
		return true
	}
	return false
}

func (that Symbol) DisplayName() string {
	switch that {
	case SymbolGold:
		return "Gold"
	case SymbolSilver:
		return "Silver"
	case SymbolBonds:
		return "Bonds"
	case SymbolOil:
		return "Oil"
	case SymbolIndustrials:
		return "Industrials"
	case SymbolGrain:
		return "Grain"
	}
	return string(that)
}

// Stock holds the board price for a single symbol, in integer cents.
type Stock struct {
	Symbol     Symbol `json:"symbol"`
	PriceCents int    `json:"price_cents"`
}

// DisplayPrice renders the price as dollars, e.g. "$1.05".
func (that *Stock) DisplayPrice() string {
	return fmt.Sprintf("$%d.%02d", that.PriceCents/100, that.PriceCents%100)
}

func IsAllowedBlock(shares int) bool {
	for _, block := range BlockSizes {
		if shares == block {
			return true
		}
	}
	return false
}
