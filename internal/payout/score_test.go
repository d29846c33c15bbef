package payout

import (
	"errors"
	"math/rand"
	"testing"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name  string
		combo Combination
		want  int
	}{
		// Тройки по таблице выплат
		{"тройка диких", Combination{Wild, Wild, Wild}, 800}, // 100 * 2^3
		{"тройка семерок", Combination{Seven, Seven, Seven}, 80},
		{"тройка тройных баров", Combination{TripleBar, TripleBar, TripleBar}, 40},
		{"тройка двойных баров", Combination{DoubleBar, DoubleBar, DoubleBar}, 25},
		{"тройка одинарных баров", Combination{SingleBar, SingleBar, SingleBar}, 10},
		{"тройка вишен", Combination{Cherry, Cherry, Cherry}, 10},
		{"тройка пустых", Combination{Blank, Blank, Blank}, 0},

		// Все бары (разные) - фиксированные 5
		{"смешанные бары", Combination{SingleBar, DoubleBar, TripleBar}, 5},
		{"смешанные бары другой порядок", Combination{TripleBar, SingleBar, DoubleBar}, 5},
		{"два одинаковых бара и один другой", Combination{SingleBar, SingleBar, DoubleBar}, 5},

		// Вишневая база
		{"одна вишня", Combination{Cherry, Blank, Blank}, 2},
		{"одна вишня в конце", Combination{Blank, Blank, Cherry}, 2},
		{"две вишни", Combination{Cherry, Cherry, Blank}, 5},
		{"вишня и бар", Combination{Cherry, SingleBar, Blank}, 2},

		// Без вишен, баров и диких - ноль
		{"пусто и семерки", Combination{Seven, Blank, Seven}, 0},
		{"разные без комбинации", Combination{Seven, DoubleBar, Blank}, 0},

		// Два диких: тройка не-дикого символа, удвоение x4
		{"два диких и семерка", Combination{Seven, Wild, Wild}, 320}, // 80 * 2^2
		{"два диких вокруг бара", Combination{Wild, SingleBar, Wild}, 40},
		{"два диких и вишня", Combination{Cherry, Wild, Wild}, 40},
		{"два диких и пустая", Combination{Wild, Wild, Blank}, 0},

		// Один дикий: пара достраивается до тройки, удвоение x2
		{"дикий и пара семерок", Combination{Wild, Seven, Seven}, 160},
		{"пара семерок вокруг дикого", Combination{Seven, Wild, Seven}, 160},
		{"дикий и пара баров", Combination{Wild, SingleBar, SingleBar}, 20},
		{"дикий и пара вишен", Combination{Wild, Cherry, Cherry}, 20},
		{"дикий и пара пустых", Combination{Wild, Blank, Blank}, 0},

		// Один дикий и два разных бара - достраивается до "все бары"
		{"дикий и разные бары", Combination{Wild, SingleBar, TripleBar}, 10}, // 5 * 2
		{"дикий между барами", Combination{DoubleBar, Wild, TripleBar}, 10},

		// Дикий считается вишней при наличии настоящей вишни
		{"вишня дикий пустая", Combination{Cherry, Wild, Blank}, 10}, // база 5, x2
		{"вишня дикий бар", Combination{Cherry, Wild, SingleBar}, 10},
		// Дикие без настоящей вишни вишневую базу не дают
		{"дикий пустая семерка", Combination{Wild, Blank, Seven}, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Score(tc.combo)
			if err != nil {
				t.Fatalf("Score(%v): unexpected error: %v", tc.combo, err)
			}
			if got != tc.want {
				t.Errorf("Score(%v) = %d, want %d", tc.combo, got, tc.want)
			}
		})
	}
}

// Позиция дикого символа не влияет на приз
func TestScoreWildPositionInvariance(t *testing.T) {
	combos := []Combination{
		{Wild, Seven, Seven},
		{Seven, Wild, Seven},
		{Seven, Seven, Wild},
	}
	for _, c := range combos {
		got, err := Score(c)
		if err != nil {
			t.Fatal(err)
		}
		if got != 160 {
			t.Errorf("Score(%v) = %d, want 160", c, got)
		}
	}
}

// Одинаковая пара при одном диком приоритетнее правила "все бары":
// для любого не-дикого X приз за {W, X, X} равен Table[X] * 2
func TestScoreWildPairOverBars(t *testing.T) {
	for _, s := range Symbols {
		if s == Wild {
			continue
		}
		got, err := Score(Combination{Wild, s, s})
		if err != nil {
			t.Fatal(err)
		}
		if want := Table[s] * 2; got != want {
			t.Errorf("Score({DD, %s, %s}) = %d, want %d", s, s, got, want)
		}
	}
}

func TestScoreInvalidSymbol(t *testing.T) {
	_, err := Score(Combination{Seven, "X", Blank})
	if !errors.Is(err, ErrInvalidSymbol) {
		t.Fatalf("want ErrInvalidSymbol, got %v", err)
	}
}

func TestScoreMany(t *testing.T) {
	combos := []Combination{
		{Wild, Wild, Wild},
		{Cherry, Cherry, Blank},
		{SingleBar, DoubleBar, TripleBar},
		{Blank, Blank, Blank},
	}
	prizes, err := ScoreMany(combos)
	if err != nil {
		t.Fatal(err)
	}
	want := []int{800, 5, 5, 0}
	if len(prizes) != len(want) {
		t.Fatalf("got %d prizes, want %d", len(prizes), len(want))
	}
	for i := range want {
		if prizes[i] != want[i] {
			t.Errorf("prizes[%d] = %d, want %d", i, prizes[i], want[i])
		}
	}
}

func TestScoreManyEmpty(t *testing.T) {
	prizes, err := ScoreMany(nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(prizes) != 0 {
		t.Fatalf("want empty result, got %v", prizes)
	}
}

func TestScoreManyInvalidSymbol(t *testing.T) {
	_, err := ScoreMany([]Combination{
		{Seven, Seven, Seven},
		{Seven, "??", Seven},
	})
	if !errors.Is(err, ErrInvalidSymbol) {
		t.Fatalf("want ErrInvalidSymbol, got %v", err)
	}
}

// Пакетный подсчет эквивалентен построчному на случайных комбинациях
func TestScoreManyMatchesScore(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	combos := make([]Combination, 10000)
	for i := range combos {
		for j := 0; j < 3; j++ {
			combos[i][j] = Symbols[rng.Intn(len(Symbols))]
		}
	}

	prizes, err := ScoreMany(combos)
	if err != nil {
		t.Fatal(err)
	}
	for i, c := range combos {
		single, err := Score(c)
		if err != nil {
			t.Fatal(err)
		}
		if prizes[i] != single {
			t.Errorf("row %d (%v): batch %d != scalar %d", i, c, prizes[i], single)
		}
	}
}
