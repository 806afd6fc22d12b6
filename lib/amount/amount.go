// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package amount converts decimal token quantities into integer base units.
package amount

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

var (
	// ErrInvalidAmount is returned when a token amount cannot be scaled.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrAmountOverflow is returned when a scaled amount does not fit in 128 bits.
	ErrAmountOverflow = errors.New("amount overflows u128")
)

// CreditsPerToken is the number of base units in one token.
var CreditsPerToken = new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)

var maxUint128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))

// ScaledAmount is a quantity of indivisible base units, in the u128 range.
type ScaledAmount struct {
	value *big.Int
}

// NewScaledAmount returns a scaled amount for the value given, which must
// be in the u128 range.
func NewScaledAmount(value *big.Int) (ScaledAmount, error) {
	if value.Sign() < 0 || value.Cmp(maxUint128) > 0 {
		return ScaledAmount{}, fmt.Errorf("%w: %s", ErrAmountOverflow, value)
	}
	return ScaledAmount{value: new(big.Int).Set(value)}, nil
}

// BigInt returns a copy of the amount as a big integer.
func (s ScaledAmount) BigInt() *big.Int {
	if s.value == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(s.value)
}

func (s ScaledAmount) String() string {
	return s.BigInt().String()
}

// Scale multiplies baseUnit by a non negative factor, keeping the integer
// part of the factor exact. The fractional part below one is rounded to the
// nearest reciprocal of an integer: 0.5 scales to baseUnit/2 exactly but 0.3
// scales to baseUnit/3.
// It panics if factor is negative, infinite or not a number.
func Scale(baseUnit *big.Int, factor float64) *big.Int {
	if !(factor >= 0) { // also catches NaN
		panic(fmt.Sprintf("scale factor must not be negative: %v", factor))
	}
	if math.IsInf(factor, 1) {
		panic("scale factor must be finite")
	}

	if factor < 1 {
		reciprocal := math.Round(1 / factor)
		if math.IsInf(reciprocal, 1) {
			// the divisor saturates, leaving nothing of the base unit.
			return new(big.Int)
		}
		divisor, _ := new(big.Float).SetFloat64(reciprocal).Int(nil)
		return new(big.Int).Quo(baseUnit, divisor)
	}

	integer, fraction := math.Modf(factor)
	integerPart, _ := new(big.Float).SetFloat64(integer).Int(nil)

	scaled := new(big.Int).Mul(baseUnit, integerPart)
	return scaled.Add(scaled, Scale(baseUnit, fraction))
}

// CtcFrac scales a token amount into base units.
func CtcFrac(tokens float64) (ScaledAmount, error) {
	if math.IsInf(tokens, 0) {
		return ScaledAmount{}, fmt.Errorf("%w: %v", ErrInvalidAmount, tokens)
	}
	return NewScaledAmount(Scale(CreditsPerToken, tokens))
}

// ParseTokens parses a decimal token amount given by an operator.
func ParseTokens(s string) (tokens float64, err error) {
	tokens, err = strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrInvalidAmount, s)
	}

	if math.IsNaN(tokens) || math.IsInf(tokens, 0) || tokens < 0 {
		return 0, fmt.Errorf("%w: %s must be a finite positive number", ErrInvalidAmount, s)
	}

	return tokens, nil
}

// MisroundsFraction returns true if the scaled value of the amount given
// differs from its exact decimal value in base units.
func MisroundsFraction(s string, scaled ScaledAmount) bool {
	exact, ok := new(big.Rat).SetString(strings.TrimSpace(s))
	if !ok {
		return false
	}
	exact.Mul(exact, new(big.Rat).SetInt(CreditsPerToken))
	return exact.Cmp(new(big.Rat).SetInt(scaled.BigInt())) != 0
}
