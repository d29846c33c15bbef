package reel

import (
	"math/rand"

	"slot_backend/internal/config"
	"slot_backend/internal/payout"
)

// Draw генерирует комбинацию из трех символов по весам пресета.
// Окна барабанов независимы
func (s *serv) Draw(preset config.ReelConfig) payout.Combination {
	weights := preset.SymbolWeights()

	var combo payout.Combination
	for i := range combo {
		combo[i] = drawSymbol(weights)
	}
	return combo
}

// Выбор символа на основе весов (веса в процентах)
func drawSymbol(weights map[payout.Symbol]int) payout.Symbol {
	num := rand.Intn(100) + 1
	cumulative := 0

	// Обходим алфавит в фиксированном порядке
	for _, sym := range payout.Symbols {
		cumulative += weights[sym]
		if num <= cumulative {
			return sym
		}
	}

	// Веса не добили до 100 - возвращаем самый тяжелый символ
	maxWeight := 0
	maxSym := payout.Blank
	for sym, w := range weights {
		if w > maxWeight {
			maxWeight = w
			maxSym = sym
		}
	}
	return maxSym
}
