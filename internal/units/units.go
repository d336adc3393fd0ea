package units

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Binary size multipliers.
const (
	KiB int64 = 1 << 10
	MiB int64 = 1 << 20
	GiB int64 = 1 << 30
	TiB int64 = 1 << 40
)

// ErrInvalidSize is returned when a size string has a non-numeric prefix.
var ErrInvalidSize = errors.New("invalid size")

var suffixes = []struct {
	suffix     string
	multiplier int64
}{
	{"T", TiB},
	{"G", GiB},
	{"M", MiB},
	{"K", KiB},
}

// ParseSize converts text such as "10G", "1.5m" or "512" to a byte count.
//
// A trailing T/G/M/K multiplies the floating-point prefix by the matching
// power of 1024 and truncates. Without a suffix the text must be a plain
// integer. Negative sizes and sizes that do not fit in an int64 are invalid.
func ParseSize(text string) (int64, error) {
	if text == "" {
		return 0, fmt.Errorf("%w: empty value", ErrInvalidSize)
	}

	last := strings.ToUpper(text[len(text)-1:])
	for _, s := range suffixes {
		if last != s.suffix {
			continue
		}
		value, err := strconv.ParseFloat(text[:len(text)-1], 64)
		if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
			return 0, fmt.Errorf("%w: %q", ErrInvalidSize, text)
		}
		bytes := value * float64(s.multiplier)
		if bytes < 0 || bytes >= math.MaxInt64 {
			return 0, fmt.Errorf("%w: %q out of range", ErrInvalidSize, text)
		}
		return int64(bytes), nil
	}

	value, err := strconv.ParseInt(text, 10, 64)
	if err != nil || value < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSize, text)
	}
	return value, nil
}

// FormatSize renders a byte count using the largest fitting binary unit,
// e.g. 1073741824 -> "1G", 1572864 -> "1.5M", 1023 -> "1023".
func FormatSize(bytes int64) string {
	value := float64(bytes)
	suffix := ""
	for _, s := range suffixes {
		if value >= float64(s.multiplier) {
			value /= float64(s.multiplier)
			suffix = s.suffix
			break
		}
	}

	number := strconv.FormatFloat(value, 'f', 1, 64)
	number = strings.TrimSuffix(number, ".0")
	return number + suffix
}
