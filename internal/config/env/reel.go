package env

import (
	"fmt"
	"os"

	"slot_backend/internal/config"
	"slot_backend/internal/payout"

	"gopkg.in/yaml.v3"
)

// Сумма весов в каждом пресете - проценты
const weightsTotal = 100

type reelYAML struct {
	Reel struct {
		Presets []struct {
			Name    string         `yaml:"name"`
			Weights map[string]int `yaml:"weights"`
		} `yaml:"presets"`
	} `yaml:"reel"`
}

type reelConfig struct {
	name    string
	weights map[payout.Symbol]int
}

// NewReelConfigFromYAML - загрузка пресетов весов символов из yaml файла.
// Пресеты идут в порядке возрастания отдачи (RTP): первый самый жадный
func NewReelConfigFromYAML(path string) ([]config.ReelConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read reel config: %w", err)
	}

	var raw reelYAML
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse reel config: %w", err)
	}

	if len(raw.Reel.Presets) == 0 {
		return nil, fmt.Errorf("reel config: no presets")
	}

	cfgs := make([]config.ReelConfig, 0, len(raw.Reel.Presets))
	for _, p := range raw.Reel.Presets {
		weights := make(map[payout.Symbol]int, len(p.Weights))
		sum := 0
		for sym, w := range p.Weights {
			s := payout.Symbol(sym)
			// Вес только для символов из алфавита
			if !s.Valid() {
				return nil, fmt.Errorf("reel config: preset %q: unknown symbol %q", p.Name, sym)
			}
			if w < 0 {
				return nil, fmt.Errorf("reel config: preset %q: negative weight for %q", p.Name, sym)
			}
			weights[s] = w
			sum += w
		}
		if sum != weightsTotal {
			return nil, fmt.Errorf("reel config: preset %q: weights sum %d, want %d", p.Name, sum, weightsTotal)
		}
		cfgs = append(cfgs, &reelConfig{
			name:    p.Name,
			weights: weights,
		})
	}

	return cfgs, nil
}

func (c *reelConfig) Name() string {
	return c.name
}

func (c *reelConfig) SymbolWeights() map[payout.Symbol]int {
	return c.weights
}
