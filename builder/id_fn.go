package builder

import (
	"fmt"
	"strconv"
	"strings"
)

// IDFn maps a zero-based index to a vertex ID. It must be pure.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal string of idx: 0→"0", 42→"42".
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// ExcelColumnIDFn returns the spreadsheet column name for idx: 0→"A", 25→"Z", 26→"AA".
// Panics if idx < 0.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var buf []byte
	for i := idx; i >= 0; i = i/26 - 1 {
		buf = append(buf, byte('A'+i%26))
	}
	for l, r := 0, len(buf)-1; l < r; l, r = l+1, r-1 {
		buf[l], buf[r] = buf[r], buf[l]
	}

	return string(buf)
}

// SymbolNumberIDFn returns prefix + decimal index: "v0", "v1", ...
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string {
		return prefix + strconv.Itoa(idx)
	}
}

// BinaryIDFn returns idx as a bit string of exactly width characters, most
// significant bit first: BinaryIDFn(3)(6) → "110".
// Panics if idx does not fit in width bits.
func BinaryIDFn(width int) IDFn {
	return func(idx int) string {
		if idx < 0 || (width < 63 && idx >= 1<<width) {
			panic(fmt.Sprintf("BinaryIDFn: idx %d does not fit in %d bits", idx, width))
		}
		s := strconv.FormatInt(int64(idx), 2)

		return strings.Repeat("0", width-len(s)) + s
	}
}
