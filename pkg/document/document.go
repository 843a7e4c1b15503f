package document

import "fmt"

// Document is an immutable tree of operations representing generated text.
// Once built it is safe to share across goroutines; the only permitted
// mutation is whole-sequence concatenation via Append.
type Document struct {
	ops []Operation
}

// Empty returns a Document with no operations.
func Empty() Document {
	return Document{}
}

// Operations exposes the operation sequence to renderers. Callers must treat
// the returned slice as read-only.
func (d Document) Operations() []Operation {
	return d.ops
}

// Len reports the number of operations at the top level of the Document.
func (d Document) Len() int {
	return len(d.ops)
}

// Append concatenates another Document's operations onto this one. It is a
// structural move: no rendering happens and nothing is re-validated.
func (d *Document) Append(other Document) {
	d.ops = append(d.ops, other.ops...)
}

// Concat folds a sequence of convertible values into one Document, in order.
// The inputs are left untouched; an empty input yields Empty. This is the
// composition rule generators rely on to turn one Document per item into one
// Document per file.
func Concat(items ...any) (Document, error) {
	var base Document
	for i, item := range items {
		next, err := From(item)
		if err != nil {
			return Document{}, fmt.Errorf("document: concat item %d: %w", i, err)
		}
		base.Append(next)
	}
	return base, nil
}

// MustConcat panics when Concat fails. Useful in generator wiring where all
// inputs are known types.
func MustConcat(items ...any) Document {
	doc, err := Concat(items...)
	if err != nil {
		panic(err)
	}
	return doc
}
