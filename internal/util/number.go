package util

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	reNonNumeric   = regexp.MustCompile(`[^0-9.,\-]`)
	reDotThousands = regexp.MustCompile(`\.(\d{3})(?:([.,])|$)`)
	reDotGroups    = regexp.MustCompile(`^-?\d{1,3}(?:\.\d{3})+$`)
)

// ParsePrice parses a catalog price written with either `.` or `,` as the
// decimal separator. When both appear the rightmost one is the decimal
// point ("1.234,56" and "1,234.56" are both 1234.56); a lone comma is the
// decimal point ("2,90" is 2.90); a lone dot is the decimal point unless
// the value is a pure thousands grouping ("1.234" is 1234).
// Returns nil when no number can be read.
func ParsePrice(input string) *float64 {
	compact := reNonNumeric.ReplaceAllString(strings.ReplaceAll(input, " ", " "), "")
	if compact == "" || compact == "-" {
		return nil
	}

	dot := strings.LastIndex(compact, ".")
	comma := strings.LastIndex(compact, ",")
	switch {
	case dot >= 0 && comma >= 0:
		if comma > dot {
			compact = strings.ReplaceAll(compact, ".", "")
			compact = strings.Replace(compact, ",", ".", 1)
		} else {
			compact = strings.ReplaceAll(compact, ",", "")
		}
	case comma >= 0:
		if strings.Count(compact, ",") > 1 {
			return nil
		}
		compact = strings.Replace(compact, ",", ".", 1)
	case dot >= 0:
		if reDotGroups.MatchString(compact) {
			compact = strings.ReplaceAll(compact, ".", "")
		} else if strings.Count(compact, ".") > 1 {
			return nil
		}
	}

	d, err := decimal.NewFromString(compact)
	if err != nil {
		return nil
	}
	f, _ := d.Float64()
	return &f
}

// CoerceInt reads a quantity-like value, tolerating thousands grouping and
// a decimal tail ("1.000" is 1000, "2,5" rounds to 3). A dot counts as a
// thousands separator only when followed by exactly three digits and a
// further separator or the end of the value. Returns nil when nothing
// numeric remains.
func CoerceInt(input string) *int {
	compact := reNonNumeric.ReplaceAllString(input, "")
	compact = strings.TrimSpace(compact)
	if compact == "" || compact == "-" || compact == "." || compact == "," {
		return nil
	}

	for reDotThousands.MatchString(compact) {
		compact = reDotThousands.ReplaceAllString(compact, "$1$2")
	}
	if i := strings.Index(compact, ","); i >= 0 {
		head := compact[:i]
		tail := strings.ReplaceAll(compact[i+1:], ",", "")
		compact = head + "." + tail
	}

	f, err := strconv.ParseFloat(compact, 64)
	if err != nil {
		return nil
	}
	n := int(math.Round(f))
	return &n
}

// Round2 rounds a price for the output boundary; intermediate math keeps
// full precision.
func Round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}
