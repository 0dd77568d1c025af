package gobloom

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// ErrInvalidArgument is the only error kind gobloom produces. It is
// returned when a filter receives an element that is neither a number
// nor a string, or a constructor receives a byte/word sequence that
// cannot form a whole number of 32-bit words. Check with errors.Is.
var ErrInvalidArgument = errors.New("gobloom: invalid argument")

// CanonicalString converts an element to the decimal string form that
// gets hashed, so Insert(10) and Insert("10") hit the same bits.
func CanonicalString(element any) (string, error) {
	switch v := element.(type) {
	case string:
		return v, nil
	case int:
		return strconv.Itoa(v), nil
	case int8:
		return strconv.FormatInt(int64(v), 10), nil
	case int16:
		return strconv.FormatInt(int64(v), 10), nil
	case int32:
		return strconv.FormatInt(int64(v), 10), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case uint:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint8:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint16:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32), nil
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	default:
		return "", fmt.Errorf("gobloom: element must be a number or a string, got %T: %w", element, ErrInvalidArgument)
	}
}

func CalculateFilterSize(length uint, errorRate float64) uint {
	return uint(math.Ceil(-((float64(length) * math.Log(errorRate)) / math.Pow(math.Log(2), 2))))
}

func CalculateNumHashes(size, length uint) uint {
	return uint(math.Ceil(float64((size / length)) * math.Log(2)))
}

func Max(a, b uint) uint {
	if a > b {
		return a
	}
	return b
}
