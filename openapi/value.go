package openapi

import (
	"bytes"
	"encoding/json"
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Kind discriminates the variants of a document tree node.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Value is one node of a parsed document tree. Object fields preserve the
// order they appear in the source text, and numbers keep their source form
// (json.Number), so a document survives extraction without reformatting.
type Value struct {
	kind Kind
	b    bool
	num  json.Number
	str  string
	arr  []*Value
	obj  *orderedmap.OrderedMap[string, *Value]
}

// Constructors.

func Null() *Value          { return &Value{kind: KindNull} }
func Bool(b bool) *Value    { return &Value{kind: KindBool, b: b} }
func String(s string) *Value { return &Value{kind: KindString, str: s} }

func Number(n json.Number) *Value { return &Value{kind: KindNumber, num: n} }

func Array(items ...*Value) *Value {
	return &Value{kind: KindArray, arr: items}
}

// Object returns an empty object node; populate it with Set.
func Object() *Value {
	return &Value{kind: KindObject, obj: orderedmap.New[string, *Value]()}
}

// Kind reports the variant of this node.
func (v *Value) Kind() Kind {
	if v == nil {
		return KindNull
	}
	return v.kind
}

// IsObject reports whether this node is a keyed structure.
func (v *Value) IsObject() bool { return v != nil && v.kind == KindObject }

// Bool returns the boolean payload (false for non-bool nodes).
func (v *Value) Bool() bool {
	if v == nil || v.kind != KindBool {
		return false
	}
	return v.b
}

// Str returns the string payload ("" for non-string nodes).
func (v *Value) Str() string {
	if v == nil || v.kind != KindString {
		return ""
	}
	return v.str
}

// Number returns the numeric payload in its source text form.
func (v *Value) Number() json.Number {
	if v == nil || v.kind != KindNumber {
		return ""
	}
	return v.num
}

// Text returns the scalar's text form: strings verbatim, numbers as their
// source literal, bools as "true"/"false". Non-scalars yield "".
func (v *Value) Text() string {
	if v == nil {
		return ""
	}
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return v.num.String()
	case KindBool:
		if v.b {
			return "true"
		}
		return "false"
	}
	return ""
}

// Items returns the elements of an array node (nil otherwise).
func (v *Value) Items() []*Value {
	if v == nil || v.kind != KindArray {
		return nil
	}
	return v.arr
}

// Field looks up an object field by name.
func (v *Value) Field(name string) (*Value, bool) {
	if v == nil || v.kind != KindObject {
		return nil, false
	}
	return v.obj.Get(name)
}

// Keys returns the object's field names in source order (nil otherwise).
func (v *Value) Keys() []string {
	if v == nil || v.kind != KindObject {
		return nil
	}
	keys := make([]string, 0, v.obj.Len())
	for pair := v.obj.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Set adds or replaces an object field, keeping first-insertion order.
func (v *Value) Set(name string, val *Value) {
	if v == nil || v.kind != KindObject {
		return
	}
	v.obj.Set(name, val)
}

// Len returns the number of elements (array) or fields (object).
func (v *Value) Len() int {
	if v == nil {
		return 0
	}
	switch v.kind {
	case KindArray:
		return len(v.arr)
	case KindObject:
		return v.obj.Len()
	}
	return 0
}

// MarshalJSON serializes the tree back to JSON, preserving object field
// order and number literals.
func (v *Value) MarshalJSON() ([]byte, error) {
	if v == nil {
		return []byte("null"), nil
	}
	switch v.kind {
	case KindNull:
		return []byte("null"), nil
	case KindBool:
		return json.Marshal(v.b)
	case KindNumber:
		if v.num == "" {
			return []byte("0"), nil
		}
		return []byte(v.num), nil
	case KindString:
		return json.Marshal(v.str)
	case KindArray:
		var buf bytes.Buffer
		buf.WriteByte('[')
		for i, item := range v.arr {
			if i > 0 {
				buf.WriteByte(',')
			}
			b, err := item.MarshalJSON()
			if err != nil {
				return nil, err
			}
			buf.Write(b)
		}
		buf.WriteByte(']')
		return buf.Bytes(), nil
	case KindObject:
		var buf bytes.Buffer
		buf.WriteByte('{')
		first := true
		for pair := v.obj.Oldest(); pair != nil; pair = pair.Next() {
			if !first {
				buf.WriteByte(',')
			}
			first = false
			k, err := json.Marshal(pair.Key)
			if err != nil {
				return nil, err
			}
			buf.Write(k)
			buf.WriteByte(':')
			b, err := pair.Value.MarshalJSON()
			if err != nil {
				return nil, err
			}
			buf.Write(b)
		}
		buf.WriteByte('}')
		return buf.Bytes(), nil
	}
	return nil, fmt.Errorf("unknown value kind %v", v.kind)
}

// Equal reports structural equality of two trees, including object field order.
func (v *Value) Equal(other *Value) bool {
	if v == nil || other == nil {
		return v.Kind() == other.Kind()
	}
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == other.b
	case KindNumber:
		return v.num == other.num
	case KindString:
		return v.str == other.str
	case KindArray:
		if len(v.arr) != len(other.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(other.arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if v.obj.Len() != other.obj.Len() {
			return false
		}
		p, q := v.obj.Oldest(), other.obj.Oldest()
		for p != nil && q != nil {
			if p.Key != q.Key || !p.Value.Equal(q.Value) {
				return false
			}
			p, q = p.Next(), q.Next()
		}
		return p == nil && q == nil
	}
	return false
}
