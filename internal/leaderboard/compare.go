package leaderboard

import (
	"cmp"
	"math"
	"slices"
	"strings"
)

// Row maps a CSV header name to the raw cell text.
type Row map[string]string

// Get returns the cell for key, or "" when the row has no such column.
func (r Row) Get(key string) string {
	return r[key]
}

// Compare orders two raw cells according to the column kind.
//
// Text compares case-insensitively, falling back to byte order so distinct
// values never tie. Numeric kinds compare by value; cells that do not parse
// as numbers are greater than every number, and equal to each other.
func (c Column) Compare(a, b string) int {
	switch c.Kind {
	case KindInteger:
		x, xok := ParseInt(a)
		y, yok := ParseInt(b)
		if r, done := compareMissing(xok, yok); done {
			return r
		}
		return cmp.Compare(x, y)
	case KindFloat:
		x, xok := ParseFloat(a)
		y, yok := ParseFloat(b)
		if r, done := compareMissing(xok && !math.IsNaN(x), yok && !math.IsNaN(y)); done {
			return r
		}
		return cmp.Compare(x, y)
	default:
		if r := strings.Compare(strings.ToLower(a), strings.ToLower(b)); r != 0 {
			return r
		}
		return strings.Compare(a, b)
	}
}

// Missing reports whether a cell sorts into the trailing not-a-number group.
func (c Column) Missing(v string) bool {
	switch c.Kind {
	case KindInteger:
		_, ok := ParseInt(v)
		return !ok
	case KindFloat:
		f, ok := ParseFloat(v)
		return !ok || math.IsNaN(f)
	default:
		return false
	}
}

func compareMissing(xok, yok bool) (int, bool) {
	switch {
	case xok && yok:
		return 0, false
	case !xok && !yok:
		return 0, true
	case !xok:
		return 1, true
	default:
		return -1, true
	}
}

// SortRows returns a sorted copy of rows ordered by col. The sort is stable,
// so rows that compare equal keep their CSV order. Descending order reverses
// the numeric/text order but still keeps non-numeric cells last.
func SortRows(rows []Row, col Column, desc bool) []Row {
	out := slices.Clone(rows)
	slices.SortStableFunc(out, func(a, b Row) int {
		av, bv := a.Get(col.Key), b.Get(col.Key)
		am, bm := col.Missing(av), col.Missing(bv)
		if am || bm {
			r, _ := compareMissing(!am, !bm)
			return r
		}
		r := col.Compare(av, bv)
		if desc {
			return -r
		}
		return r
	})
	return out
}

// FilterByPrefix keeps the rows whose key cell starts with prefix. The match
// is case-sensitive. An empty prefix keeps every row.
func FilterByPrefix(rows []Row, key, prefix string) []Row {
	if prefix == "" {
		return rows
	}
	out := make([]Row, 0, len(rows))
	for _, r := range rows {
		if strings.HasPrefix(r.Get(key), prefix) {
			out = append(out, r)
		}
	}
	return out
}
