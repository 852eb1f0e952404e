package directory

import (
	"slices"

	"git.home.luguber.info/inful/phonedir/internal/nanp"
)

// Entry pairs a name with its validated number.
type Entry struct {
	Name   string
	Number nanp.Number
	// Line is the 1-based input line the entry came from, 0 when built from pairs without position.
	Line int
}

// Directory is a list of entries. Builder output is sorted ascending by number.
type Directory []Entry

// Sort orders the entries by numeric value of their number. Entries with the
// same number keep their relative order.
func (d Directory) Sort() {
	slices.SortStableFunc(d, func(a, b Entry) int {
		return a.Number.Compare(b.Number)
	})
}

// IsSorted reports whether d is in ascending number order.
func (d Directory) IsSorted() bool {
	return slices.IsSortedFunc(d, func(a, b Entry) int {
		return a.Number.Compare(b.Number)
	})
}
