package generate

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxRandomDigits bounds the digit count chosen by NumberBuilder.Random.
// Larger decimal strings overflow float64.
const MaxRandomDigits = 308

// Pair holds a digit string and its parsed value.
type Pair struct {
	Text  string
	Value float64
}

// NumberBuilder produces random decimal digit strings.
type NumberBuilder struct {
	g *Generator
}

// Digits returns a NumberBuilder backed by g.
func (g *Generator) Digits() NumberBuilder {
	return NumberBuilder{g: g}
}

// Positive returns amount digits with a non-zero leading digit.
// An amount of 0 returns "".
func (b NumberBuilder) Positive(amount int) (string, error) {
	return b.build(amount, false)
}

// Negative is Positive with a leading '-'.
func (b NumberBuilder) Negative(amount int) (string, error) {
	return b.build(amount, true)
}

// Signed picks the sign with a coin flip.
func (b NumberBuilder) Signed(amount int) (string, error) {
	return b.build(amount, b.g.Flip())
}

// Random picks both the digit count, in [1, MaxRandomDigits], and the sign.
func (b NumberBuilder) Random() string {
	amount, _ := b.g.IntRange(1, MaxRandomDigits+1)
	s, _ := b.build(amount, b.g.Flip())
	return s
}

// PositiveFloat parses the result of Positive.
func (b NumberBuilder) PositiveFloat(amount int) (float64, error) {
	return parse(b.Positive(amount))
}

// NegativeFloat parses the result of Negative.
func (b NumberBuilder) NegativeFloat(amount int) (float64, error) {
	return parse(b.Negative(amount))
}

// SignedFloat parses the result of Signed.
func (b NumberBuilder) SignedFloat(amount int) (float64, error) {
	return parse(b.Signed(amount))
}

// RandomFloat parses the result of Random.
func (b NumberBuilder) RandomFloat() (float64, error) {
	return parse(b.Random(), nil)
}

// PositivePair returns the result of Positive along with its value.
func (b NumberBuilder) PositivePair(amount int) (Pair, error) {
	return pair(b.Positive(amount))
}

// NegativePair returns the result of Negative along with its value.
func (b NumberBuilder) NegativePair(amount int) (Pair, error) {
	return pair(b.Negative(amount))
}

// SignedPair returns the result of Signed along with its value.
func (b NumberBuilder) SignedPair(amount int) (Pair, error) {
	return pair(b.Signed(amount))
}

// RandomPair returns the result of Random along with its value.
func (b NumberBuilder) RandomPair() (Pair, error) {
	return pair(b.Random(), nil)
}

func (b NumberBuilder) build(amount int, negative bool) (string, error) {
	if amount < 0 {
		return "", paramErr("amount", ErrNegativeSize)
	}
	if amount == 0 {
		return "", nil
	}

	var sb strings.Builder
	sb.Grow(amount + 1)
	if negative {
		sb.WriteByte('-')
	}

	g := b.g
	g.mu.Lock()
	defer g.mu.Unlock()

	sb.WriteByte(byte('1' + g.r.IntN(9)))
	for i := 1; i < amount; i++ {
		sb.WriteByte(byte('0' + g.r.IntN(10)))
	}
	return sb.String(), nil
}

func parse(s string, err error) (float64, error) {
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse digits: %w", err)
	}
	return v, nil
}

func pair(s string, err error) (Pair, error) {
	v, err := parse(s, err)
	if err != nil {
		return Pair{}, err
	}
	return Pair{Text: s, Value: v}, nil
}
