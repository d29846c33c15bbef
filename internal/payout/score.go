package payout

import (
	"errors"
	"fmt"
)

// ErrInvalidSymbol - символ вне алфавита. Не считаем такую комбинацию нулевой,
// а сразу возвращаем ошибку вызывающему
var ErrInvalidSymbol = errors.New("invalid symbol")

// Table - таблица выплат за три одинаковых символа.
// Константа на все время жизни процесса, не мутируется
var Table = map[Symbol]int{
	Wild:      100,
	Seven:     80,
	TripleBar: 40,
	DoubleBar: 25,
	SingleBar: 10,
	Cherry:    10,
	Blank:     0,
}

// Базовый приз за вишни: индекс - количество вишен с учетом диких символов
var cherryPrize = [3]int{0, 2, 5}

// Score - подсчет приза за одну комбинацию.
// Чистая функция: результат зависит только от трех символов и таблицы выплат.
// Порядок правил (позднее правило перекрывает ранние):
// вишневая база -> три одинаковых -> все бары -> два диких -> один дикий -> удвоение за дикие
func Score(c Combination) (int, error) {
	// Валидация символов
	for _, s := range c {
		if !s.Valid() {
			return 0, fmt.Errorf("%w: %q", ErrInvalidSymbol, string(s))
		}
	}

	// Считаем дикие символы и вишни
	wilds, cherries := 0, 0
	for _, s := range c {
		switch s {
		case Wild:
			wilds++
		case Cherry:
			cherries++
		}
	}

	// Вишневая база. Дикие символы считаются как вишни,
	// но только если есть хотя бы одна настоящая вишня
	prize := 0
	if cherries > 0 && cherries+wilds < len(cherryPrize) {
		prize = cherryPrize[cherries+wilds]
	}

	switch {
	// Три одинаковых символа (включая тройку диких) - по таблице выплат
	case c[0] == c[1] && c[1] == c[2]:
		prize = Table[c[0]]

	// Все три символа - бары (не одинаковые)
	case c[0].IsBar() && c[1].IsBar() && c[2].IsBar():
		prize = 5

	// Два диких: считаем как тройку единственного не-дикого символа
	case wilds == 2:
		for _, s := range c {
			if s != Wild {
				prize = Table[s]
				break
			}
		}

	// Один дикий: пара одинаковых достраивается до тройки,
	// иначе пара баров достраивается до "все бары"
	case wilds == 1:
		var rest []Symbol
		for _, s := range c {
			if s != Wild {
				rest = append(rest, s)
			}
		}
		if rest[0] == rest[1] {
			prize = Table[rest[0]]
		} else if rest[0].IsBar() && rest[1].IsBar() {
			prize = 5
		}
	}

	// Каждый дикий символ удваивает итоговый приз
	return prize << wilds, nil
}

// ScoreMany - пакетный подсчет призов.
// Результат идентичен независимому применению Score к каждой строке,
// порядок сохраняется. Первая невалидная комбинация прерывает весь пакет
func ScoreMany(combos []Combination) ([]int, error) {
	prizes := make([]int, len(combos))
	for i, c := range combos {
		p, err := Score(c)
		if err != nil {
			return nil, fmt.Errorf("combination %d: %w", i, err)
		}
		prizes[i] = p
	}
	return prizes, nil
}
