package txkit

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/iov-one/txkit/errors"
	"github.com/shopspring/decimal"
)

// DefaultGasPrice is used when a fee is declared without a gas price.
const DefaultGasPrice uint64 = 1

// Fee is the resource limit a transaction is allowed to consume and the
// price paid per unit.
type Fee struct {
	GasLimit uint64
	GasPrice uint64
}

// FeeOptions is the structured form a fee can be declared with. Values are
// decimal strings so that they can be passed through from user input without
// conversion.
type FeeOptions struct {
	GasLimit string
	GasPrice string
}

// Validate returns ErrInvalidFee unless both gas limit and gas price are
// greater than zero.
func (f Fee) Validate() error {
	if f.GasLimit == 0 {
		return errors.Field("GasLimit", errors.ErrInvalidFee, "must be greater than zero")
	}
	if f.GasPrice == 0 {
		return errors.Field("GasPrice", errors.ErrInvalidFee, "must be greater than zero")
	}
	return nil
}

// ValidateFee returns ErrInvalidFee if given value cannot be used as a fee.
// See ParseFee for the accepted forms.
func ValidateFee(value interface{}) error {
	_, err := ParseFee(value)
	return err
}

// ParseFee returns the fee declared by given value. A fee can be declared as
// a scalar gas limit (any integer or float type, a decimal string or a
// decimal.Decimal) or in its structured form (Fee or FeeOptions). Missing,
// negative, zero and non integral values are rejected with ErrInvalidFee.
func ParseFee(value interface{}) (Fee, error) {
	switch v := value.(type) {
	case nil:
		return Fee{}, errors.Wrap(errors.ErrInvalidFee, "missing")
	case Fee:
		if v.GasPrice == 0 {
			v.GasPrice = DefaultGasPrice
		}
		return v, v.Validate()
	case *Fee:
		if v == nil {
			return Fee{}, errors.Wrap(errors.ErrInvalidFee, "missing")
		}
		return ParseFee(*v)
	case FeeOptions:
		return parseFeeOptions(v)
	case *FeeOptions:
		if v == nil {
			return Fee{}, errors.Wrap(errors.ErrInvalidFee, "missing")
		}
		return parseFeeOptions(*v)
	}

	limit, err := parseGas(value)
	if err != nil {
		return Fee{}, errors.Field("GasLimit", err, "")
	}
	return Fee{GasLimit: limit, GasPrice: DefaultGasPrice}, nil
}

func parseFeeOptions(o FeeOptions) (Fee, error) {
	if strings.TrimSpace(o.GasLimit) == "" {
		return Fee{}, errors.Field("GasLimit", errors.ErrInvalidFee, "missing")
	}
	limit, err := parseGas(o.GasLimit)
	if err != nil {
		return Fee{}, errors.Field("GasLimit", err, "")
	}
	price := DefaultGasPrice
	if strings.TrimSpace(o.GasPrice) != "" {
		if price, err = parseGas(o.GasPrice); err != nil {
			return Fee{}, errors.Field("GasPrice", err, "")
		}
	}
	return Fee{GasLimit: limit, GasPrice: price}, nil
}

var maxGas = decimal.NewFromBigInt(new(big.Int).SetUint64(math.MaxUint64), 0)

// parseGas converts a scalar into a positive integral amount of gas.
func parseGas(value interface{}) (uint64, error) {
	var d decimal.Decimal
	switch v := value.(type) {
	case string:
		parsed, err := decimal.NewFromString(strings.TrimSpace(v))
		if err != nil {
			return 0, errors.Wrapf(errors.ErrInvalidFee, "malformed value %q", v)
		}
		d = parsed
	case decimal.Decimal:
		d = v
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, errors.Wrapf(errors.ErrInvalidFee, "%v is not a number", v)
		}
		d = decimal.NewFromFloat(v)
	case float32:
		return parseGas(float64(v))
	case int:
		d = decimal.NewFromInt(int64(v))
	case int8:
		d = decimal.NewFromInt(int64(v))
	case int16:
		d = decimal.NewFromInt(int64(v))
	case int32:
		d = decimal.NewFromInt(int64(v))
	case int64:
		d = decimal.NewFromInt(v)
	case uint:
		return positive(uint64(v))
	case uint8:
		return positive(uint64(v))
	case uint16:
		return positive(uint64(v))
	case uint32:
		return positive(uint64(v))
	case uint64:
		return positive(v)
	default:
		return 0, errors.Wrapf(errors.ErrInvalidFee, "unsupported type %T", value)
	}

	if !d.IsPositive() {
		return 0, errors.Wrapf(errors.ErrInvalidFee, "%s is not greater than zero", d)
	}
	if !d.IsInteger() {
		return 0, errors.Wrapf(errors.ErrInvalidFee, "%s is not an integer", d)
	}
	if d.GreaterThan(maxGas) {
		return 0, errors.Wrapf(errors.ErrInvalidFee, "%s overflows", d)
	}
	return d.BigInt().Uint64(), nil
}

func positive(v uint64) (uint64, error) {
	if v == 0 {
		return 0, errors.Wrap(errors.ErrInvalidFee, "0 is not greater than zero")
	}
	return v, nil
}

// Options returns the structured, decimal string form of the fee.
func (f Fee) Options() FeeOptions {
	return FeeOptions{
		GasLimit: strconv.FormatUint(f.GasLimit, 10),
		GasPrice: strconv.FormatUint(f.GasPrice, 10),
	}
}
