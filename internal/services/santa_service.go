package services

import (
	"secretsanta/internal/models"

	"github.com/google/logger"
)

// RunResult holds the records produced by one successful run.
type RunResult struct {
	Access   []models.AccessRecord
	Public   []models.PublicRecord
	Attempts int
}

// SantaService runs the whole draw: assignments first, then one access code
// per giver.
type SantaService struct {
	rng        Rand
	engine     *Engine
	codeLength int
}

// NewSantaService creates a SantaService. Zero values for maxAttempts and
// codeLength select the defaults.
func NewSantaService(rng Rand, rules models.ForbiddenRules, maxAttempts, codeLength int) *SantaService {
	if codeLength == 0 {
		codeLength = DefaultCodeLength
	}
	return &SantaService{
		rng:        rng,
		engine:     NewEngine(rng, rules, maxAttempts),
		codeLength: codeLength,
	}
}

// Run performs one draw. Nothing is returned on error, so callers never
// persist a partial result.
func (s *SantaService) Run(participants []models.Participant) (*RunResult, error) {
	if err := ValidateRoster(participants); err != nil {
		return nil, err
	}

	// A fresh allocator per run keeps codes from leaking between runs.
	codes, err := NewCodeAllocator(s.rng, s.codeLength)
	if err != nil {
		return nil, err
	}

	pairs, attempts, err := s.engine.Assign(participants)
	if err != nil {
		logger.Errorf("Assignment failed: %v", err)
		return nil, err
	}
	logger.Infof("Valid assignment found after %d attempt(s)", attempts)

	result := &RunResult{
		Access:   make([]models.AccessRecord, 0, len(pairs)),
		Public:   make([]models.PublicRecord, 0, len(pairs)),
		Attempts: attempts,
	}
	for _, p := range pairs {
		code, err := codes.Allocate()
		if err != nil {
			logger.Errorf("Code allocation failed: %v", err)
			return nil, err
		}
		rec := models.AccessRecord{
			ParticipantName:  p.Giver.Name,
			AccessCode:       code,
			SecretFriendName: p.Receiver.Name,
		}
		result.Access = append(result.Access, rec)
		result.Public = append(result.Public, rec.Public())
	}
	return result, nil
}
