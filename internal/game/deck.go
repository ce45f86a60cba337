package game

import (
	"fmt"
	"math/rand/v2"

	"github.com/memorymatch/tui-go/internal/model"
)

// DefaultSymbols is the reference eight-symbol alphabet
var DefaultSymbols = []string{"A", "B", "C", "D", "E", "F", "G", "H"}

// Deal shuffles the alphabet, takes the first deckSize/2 symbols, doubles
// them and shuffles the result. Every card starts face down.
// The alphabet slice is not modified.
func Deal(deckSize int, alphabet []string, rng *rand.Rand) ([]model.Card, error) {
	if err := validateDeck(deckSize, alphabet); err != nil {
		return nil, err
	}

	symbols := make([]string, len(alphabet))
	copy(symbols, alphabet)
	rng.Shuffle(len(symbols), func(i, j int) {
		symbols[i], symbols[j] = symbols[j], symbols[i]
	})

	pairs := deckSize / 2
	values := make([]string, 0, deckSize)
	values = append(values, symbols[:pairs]...)
	values = append(values, symbols[:pairs]...)
	rng.Shuffle(len(values), func(i, j int) {
		values[i], values[j] = values[j], values[i]
	})

	cards := make([]model.Card, deckSize)
	for i, v := range values {
		cards[i] = model.Card{Value: v}
	}
	return cards, nil
}

// validateDeck checks that deckSize is even and positive and that the
// alphabet holds at least deckSize/2 distinct, non-empty symbols.
func validateDeck(deckSize int, alphabet []string) error {
	if deckSize <= 0 {
		return fmt.Errorf("deck size %d must be positive: %w", deckSize, ErrInvalidConfiguration)
	}
	if deckSize%2 != 0 {
		return fmt.Errorf("deck size %d must be even: %w", deckSize, ErrInvalidConfiguration)
	}

	seen := make(map[string]struct{}, len(alphabet))
	for _, s := range alphabet {
		if s == "" {
			return fmt.Errorf("alphabet contains an empty symbol: %w", ErrInvalidConfiguration)
		}
		if _, dup := seen[s]; dup {
			return fmt.Errorf("alphabet symbol %q repeated: %w", s, ErrInvalidConfiguration)
		}
		seen[s] = struct{}{}
	}

	if deckSize/2 > len(alphabet) {
		return fmt.Errorf("deck size %d needs %d symbols, alphabet has %d: %w",
			deckSize, deckSize/2, len(alphabet), ErrInvalidConfiguration)
	}
	return nil
}

// NewRand returns a PCG-backed source. A zero seed draws a random one.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
