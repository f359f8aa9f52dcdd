package state

import (
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
)

// Brackets are the legal values the initial tax rate is drawn from.
var Brackets = [...]float64{10, 12, 22, 24, 32, 35, 37}

type Picker interface {
	IntN(n int) int
}

// Session is the mutable state of a single shell run.
type Session struct {
	ID      string
	taxRate float64
}

// NewSession starts a session with a tax rate picked uniformly from Brackets.
func NewSession(p Picker) *Session {
	return &Session{
		ID:      uuid.NewString(),
		taxRate: Brackets[p.IntN(len(Brackets))],
	}
}

// NewRandomSession seeds a PCG source with seed, or with the clock when seed is 0.
func NewRandomSession(seed uint64) *Session {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return NewSession(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

func (s *Session) TaxRate() float64 {
	return s.taxRate
}

// SetTaxRate accepts any value, including ones outside Brackets.
func (s *Session) SetTaxRate(rate float64) {
	s.taxRate = rate
}
