package document

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Documenter is the capability external types provide to act as template
// arguments.
type Documenter interface {
	AsDocument() Document
}

// From converts a native Go value into a Document. Supported inputs are
// Documents themselves, Documenter implementations, booleans, the integer and
// float types, and strings. Strings are dedented and line-split exactly like
// a template literal, but without substitution scanning.
func From(v any) (Document, error) {
	switch v := v.(type) {
	case Document:
		return v, nil
	case Documenter:
		return v.AsDocument(), nil
	case bool:
		if v {
			return Document{ops: []Operation{Literal{Text: "true"}}}, nil
		}
		return Document{ops: []Operation{Literal{Text: "false"}}}, nil
	case string:
		return fromString(v), nil
	case int:
		return fromInt(int64(v)), nil
	case int8:
		return fromInt(int64(v)), nil
	case int16:
		return fromInt(int64(v)), nil
	case int32:
		return fromInt(int64(v)), nil
	case int64:
		return fromInt(v), nil
	case uint:
		return fromUint(uint64(v)), nil
	case uint8:
		return fromUint(uint64(v)), nil
	case uint16:
		return fromUint(uint64(v)), nil
	case uint32:
		return fromUint(uint64(v)), nil
	case uint64:
		return fromUint(v), nil
	case float32:
		return dynamic(strconv.FormatFloat(float64(v), 'g', -1, 32)), nil
	case float64:
		return dynamic(strconv.FormatFloat(v, 'g', -1, 64)), nil
	default:
		return Document{}, fmt.Errorf("document: cannot convert %T into a Document", v)
	}
}

func fromInt(v int64) Document {
	return dynamic(strconv.FormatInt(v, 10))
}

func fromUint(v uint64) Document {
	return dynamic(strconv.FormatUint(v, 10))
}

func dynamic(text string) Document {
	return Document{ops: []Operation{Dynamic{Text: text}}}
}

// fromString dedents and line-splits arbitrary runtime text. Single-line
// strings with no surrounding whitespace skip the compile pass entirely; the
// pass would leave them untouched.
func fromString(s string) Document {
	if !strings.ContainsAny(s, "\n") && strings.TrimFunc(s, unicode.IsSpace) == s {
		if s == "" {
			return Empty()
		}
		return dynamic(s)
	}

	doc, err := compile(s, nil, nil, func(seg string) Operation {
		return Dynamic{Text: seg}
	})
	if err != nil {
		// compile only fails on unresolved placeholders, and plain strings
		// are never scanned for placeholders.
		panic(err)
	}
	return doc
}
