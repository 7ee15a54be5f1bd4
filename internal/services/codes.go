package services

import (
	"fmt"
	"strings"
)

// DefaultCodeLength is the number of symbols in an access code.
const DefaultCodeLength = 4

const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// CodeAllocator hands out access codes that are unique within its used set.
// It is not safe for concurrent use; create one per run.
type CodeAllocator struct {
	rng    Rand
	length int
	used   map[string]struct{}
}

// NewCodeAllocator creates an allocator with an empty used set.
func NewCodeAllocator(rng Rand, length int) (*CodeAllocator, error) {
	if length < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCodeLength, length)
	}
	return &CodeAllocator{
		rng:    rng,
		length: length,
		used:   make(map[string]struct{}),
	}, nil
}

// Capacity returns the number of distinct codes of the allocator's length.
// The value saturates instead of overflowing for long codes.
func (a *CodeAllocator) Capacity() int {
	const maxInt = int(^uint(0) >> 1)
	total := 1
	for i := 0; i < a.length; i++ {
		if total > maxInt/len(codeAlphabet) {
			return maxInt
		}
		total *= len(codeAlphabet)
	}
	return total
}

// Len returns how many codes are in use.
func (a *CodeAllocator) Len() int {
	return len(a.used)
}

// Reserve marks code as used so Allocate never returns it.
func (a *CodeAllocator) Reserve(code string) {
	a.used[strings.ToUpper(code)] = struct{}{}
}

// Allocate draws random codes until it finds one not in use, records it and
// returns it. The capacity check happens before sampling so a full set fails
// immediately.
func (a *CodeAllocator) Allocate() (string, error) {
	if len(a.used) >= a.Capacity() {
		return "", fmt.Errorf("%w: all %d codes of length %d are taken", ErrCodeSpaceExhausted, a.Capacity(), a.length)
	}

	buf := make([]byte, a.length)
	for {
		for i := range buf {
			buf[i] = codeAlphabet[a.rng.IntN(len(codeAlphabet))]
		}
		code := string(buf)
		if _, taken := a.used[code]; taken {
			continue
		}
		a.used[code] = struct{}{}
		return code, nil
	}
}
