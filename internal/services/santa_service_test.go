package services

import (
	"math/rand/v2"
	"testing"

	"secretsanta/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSantaService_Run(t *testing.T) {
	rules := models.ForbiddenRules{"C": {"E"}}

	t.Run("one record per participant", func(t *testing.T) {
		service := NewSantaService(rand.New(rand.NewPCG(21, 22)), rules, 0, 0)
		people := officeRoster()

		result, err := service.Run(people)
		require.NoError(t, err)
		require.Len(t, result.Access, len(people))
		require.Len(t, result.Public, len(people))
		assert.GreaterOrEqual(t, result.Attempts, 1)

		groups := make(map[string]string, len(people))
		for _, p := range people {
			groups[p.Name] = p.Group
		}

		codes := make(map[string]bool)
		givers := make(map[string]bool)
		receivers := make(map[string]bool)
		for i, rec := range result.Access {
			assert.Regexp(t, codePattern, rec.AccessCode)
			assert.False(t, codes[rec.AccessCode], "duplicate code %s", rec.AccessCode)
			codes[rec.AccessCode] = true
			givers[rec.ParticipantName] = true
			receivers[rec.SecretFriendName] = true

			assert.NotEqual(t, rec.ParticipantName, rec.SecretFriendName)
			assert.False(t, groups[rec.ParticipantName] == "C" && groups[rec.SecretFriendName] == "E")

			assert.Equal(t, models.PublicRecord{
				ParticipantName: rec.ParticipantName,
				AccessCode:      rec.AccessCode,
			}, result.Public[i])
		}
		assert.Len(t, givers, len(people))
		assert.Len(t, receivers, len(people))
	})

	t.Run("two people in one group", func(t *testing.T) {
		service := NewSantaService(rand.New(rand.NewPCG(1, 1)), nil, 0, 0)
		result, err := service.Run(participants("Alice", "A", "Bob", "A"))
		require.NoError(t, err)
		require.Len(t, result.Access, 2)

		friends := map[string]string{}
		for _, rec := range result.Access {
			friends[rec.ParticipantName] = rec.SecretFriendName
		}
		assert.Equal(t, map[string]string{"Alice": "Bob", "Bob": "Alice"}, friends)
	})

	t.Run("infeasible rules abort the run", func(t *testing.T) {
		service := NewSantaService(rand.New(rand.NewPCG(1, 1)), models.ForbiddenRules{"A": {"B"}}, 10, 0)
		result, err := service.Run(participants("Alice", "A", "Bob", "B"))
		assert.ErrorIs(t, err, ErrInfeasibleConstraints)
		assert.Nil(t, result)
	})

	t.Run("code space too small", func(t *testing.T) {
		// One-symbol codes only cover 36 givers.
		people := make([]models.Participant, 0, 37)
		for i := 0; i < 37; i++ {
			people = append(people, models.Participant{Name: string(rune('a'+i%26)) + string(rune('0'+i/26)), Group: "A"})
		}
		service := NewSantaService(rand.New(rand.NewPCG(2, 3)), nil, 0, 1)
		result, err := service.Run(people)
		assert.ErrorIs(t, err, ErrCodeSpaceExhausted)
		assert.Nil(t, result)
	})

	t.Run("invalid roster", func(t *testing.T) {
		service := NewSantaService(&scriptedRand{}, nil, 0, 0)
		_, err := service.Run(participants("Alice", "A", "Alice", "A"))
		assert.ErrorIs(t, err, ErrDuplicateParticipant)
	})

	t.Run("invalid code length", func(t *testing.T) {
		service := NewSantaService(&scriptedRand{}, nil, 0, -1)
		_, err := service.Run(participants("Alice", "A", "Bob", "A"))
		assert.ErrorIs(t, err, ErrInvalidCodeLength)
	})
}
