// Package units converts between human scale amounts and the fixed point
// integers contracts work with, and composes oracle prices.
package units

import (
	"math/big"
	"strconv"
)

type AmountKind uint8

const (
	KindInvalid AmountKind = iota
	// KindDecimalString is a human scale number such as "1.5".
	KindDecimalString
	// KindInteger is a human scale whole number.
	KindInteger
	// KindScaledInteger is already a mantissa and is never rescaled.
	KindScaledInteger
)

func (k AmountKind) String() string {
	switch k {
	case KindDecimalString:
		return "decimal string"
	case KindInteger:
		return "integer"
	case KindScaledInteger:
		return "scaled integer"
	default:
		return "invalid"
	}
}

// Amount is what callers pass to the value moving operations. The zero
// value is invalid.
type Amount struct {
	kind  AmountKind
	text  string
	value *big.Int
}

func DecimalString(s string) Amount {
	return Amount{kind: KindDecimalString, text: s}
}

// Float builds a decimal string amount out of f using the shortest
// representation that round trips, so 0.1 stays 0.1.
func Float(f float64) Amount {
	return DecimalString(strconv.FormatFloat(f, 'f', -1, 64))
}

func Integer(i *big.Int) Amount {
	if i == nil {
		return Amount{}
	}
	return Amount{kind: KindInteger, value: new(big.Int).Set(i)}
}

func Int(i int64) Amount {
	return Integer(big.NewInt(i))
}

func ScaledInteger(i *big.Int) Amount {
	if i == nil {
		return Amount{}
	}
	return Amount{kind: KindScaledInteger, value: new(big.Int).Set(i)}
}

func (a Amount) Kind() AmountKind {
	return a.kind
}

func (a Amount) IsValid() bool {
	return a.kind != KindInvalid
}

func (a Amount) String() string {
	switch a.kind {
	case KindDecimalString:
		return a.text
	case KindInteger, KindScaledInteger:
		return a.value.String()
	default:
		return "<invalid amount>"
	}
}
