package sortable

import "facette.io/natsort"

// String orders strings lexicographically, byte by byte.
type String string

var _ Sortable[String] = (*String)(nil)

func (s String) Equals(other String) bool {
	return string(s) == string(other)
}

func (s String) LessThan(other String) bool {
	return string(s) < string(other)
}

// Natural orders strings the way a human would read them: runs of digits are
// compared by numeric value, so "file2" sorts before "file10".
//
// Example:
//
//	files := []sortable.Natural{"file10", "file2", "file1"}
//	binsort.SortSortable(files)
//	// files is now: file1, file2, file10
type Natural string

var _ Sortable[Natural] = (*Natural)(nil)

func (n Natural) Equals(other Natural) bool {
	return string(n) == string(other)
}

func (n Natural) LessThan(other Natural) bool {
	return natsort.Compare(string(n), string(other))
}
