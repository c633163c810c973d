package domain

import "slices"

// Matches reports whether r passes both filter axes of sel.
func Matches(r Record, sel Selection) bool {
	if sel.Category != AllValue && string(r.Category) != sel.Category {
		return false
	}
	if sel.Tag != AllValue && !r.HasTag(sel.Tag) {
		return false
	}
	return true
}

// Filter keeps the records matching sel in their original relative order.
// The result is never nil.
func Filter(records []Record, sel Selection) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if Matches(r, sel) {
			out = append(out, r)
		}
	}
	return out
}

// Sort returns a date-ordered copy of records. Equal dates keep their input
// order.
func Sort(records []Record, order SortOrder) []Record {
	out := slices.Clone(records)
	if out == nil {
		out = []Record{}
	}
	slices.SortStableFunc(out, func(a, b Record) int {
		if order == SortOldest {
			return a.Date.Compare(b.Date)
		}
		return b.Date.Compare(a.Date)
	})
	return out
}

// Featured returns the flagged records in load order, ignoring any selection.
func Featured(records []Record) []Record {
	out := make([]Record, 0)
	for _, r := range records {
		if r.Featured {
			out = append(out, r)
		}
	}
	return out
}

// Apply runs Filter then Sort.
func Apply(records []Record, sel Selection) []Record {
	return Sort(Filter(records, sel), sel.Sort)
}
