package services

import (
	"fmt"
	"math/rand/v2"

	"secretsanta/internal/models"

	"github.com/google/logger"
)

// DefaultMaxAttempts is the retry budget used when none is configured.
const DefaultMaxAttempts = 1000

// Rand is the source of randomness used by the engine and the code allocator.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	Shuffle(n int, swap func(i, j int))
	IntN(n int) int
}

// NewRand returns a randomly seeded generator.
func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// Engine builds secret santa assignments that respect the forbidden rules.
type Engine struct {
	rng         Rand
	rules       models.ForbiddenRules
	maxAttempts int
}

// NewEngine creates an Engine. A maxAttempts of zero or less uses DefaultMaxAttempts.
func NewEngine(rng Rand, rules models.ForbiddenRules, maxAttempts int) *Engine {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Engine{rng: rng, rules: rules, maxAttempts: maxAttempts}
}

// Generate shuffles a copy of participants and pairs each one with the next,
// wrapping around at the end. The result is a single cycle, so nobody draws
// themselves when there are at least two participants. Group rules are not
// checked here.
func (e *Engine) Generate(participants []models.Participant) []models.Pair {
	n := len(participants)
	if n < 2 {
		return []models.Pair{}
	}

	order := make([]models.Participant, n)
	copy(order, participants)
	e.rng.Shuffle(n, func(i, j int) { order[i], order[j] = order[j], order[i] })

	pairs := make([]models.Pair, n)
	for i := range order {
		pairs[i] = models.Pair{Giver: order[i], Receiver: order[(i+1)%n]}
	}
	return pairs
}

// ValidateNoSelfGift reports whether no pair has the same giver and receiver.
func ValidateNoSelfGift(pairs []models.Pair) bool {
	for _, p := range pairs {
		if p.Giver.Name == p.Receiver.Name {
			return false
		}
	}
	return true
}

// ValidateGroupRules reports whether no pair gifts into a forbidden group.
// Pairs where either side has no group are accepted.
func ValidateGroupRules(pairs []models.Pair, rules models.ForbiddenRules) bool {
	for _, p := range pairs {
		if p.Giver.Group == "" || p.Receiver.Group == "" {
			continue
		}
		if rules.Forbids(p.Giver.Group, p.Receiver.Group) {
			return false
		}
	}
	return true
}

// Assign reshuffles until a candidate passes both validations and returns it
// together with the number of attempts used. It fails with
// ErrInfeasibleConstraints once the attempt budget is spent.
func (e *Engine) Assign(participants []models.Participant) ([]models.Pair, int, error) {
	if len(participants) < 2 {
		return []models.Pair{}, 0, nil
	}

	for _, p := range participants {
		if p.Group == "" {
			logger.Warningf("Participant %q has no group; group rules will not apply to them", p.Name)
		}
	}

	for attempt := 1; attempt <= e.maxAttempts; attempt++ {
		pairs := e.Generate(participants)
		if !ValidateNoSelfGift(pairs) {
			continue
		}
		if !ValidateGroupRules(pairs, e.rules) {
			continue
		}
		return pairs, attempt, nil
	}

	return nil, e.maxAttempts, fmt.Errorf("%w: no valid assignment after %d attempts", ErrInfeasibleConstraints, e.maxAttempts)
}

// ValidateRoster checks that every participant has a non-empty, unique name.
func ValidateRoster(participants []models.Participant) error {
	seen := make(map[string]bool, len(participants))
	for i, p := range participants {
		if p.Name == "" {
			return fmt.Errorf("%w (entry %d)", ErrEmptyParticipantName, i)
		}
		if seen[p.Name] {
			return fmt.Errorf("%w: %q", ErrDuplicateParticipant, p.Name)
		}
		seen[p.Name] = true
	}
	return nil
}
