package payout

// Symbol - идентификатор символа на барабане
type Symbol string

// Алфавит символов (7 штук)
const (
	Wild      Symbol = "DD" // Дикий символ (double diamond), удваивает приз
	Seven     Symbol = "7"
	TripleBar Symbol = "BBB"
	DoubleBar Symbol = "BB"
	SingleBar Symbol = "B"
	Cherry    Symbol = "C"
	Blank     Symbol = "0" // Пустая позиция
)

// Combination - упорядоченная тройка символов (три окна барабанов)
type Combination [3]Symbol

// Symbols - полный алфавит в порядке убывания ценности
var Symbols = []Symbol{Wild, Seven, TripleBar, DoubleBar, SingleBar, Cherry, Blank}

// IsBar - является ли символ одним из баров (B, BB, BBB)
func (s Symbol) IsBar() bool {
	return s == SingleBar || s == DoubleBar || s == TripleBar
}

// Valid - входит ли символ в алфавит
func (s Symbol) Valid() bool {
	_, ok := Table[s]
	return ok
}
