package internetobject

import (
	"math/big"
	"regexp"
	"strings"
	"sync"
)

// MemberDef is the declarative option bag for one schema member,
// per spec.md §3.
type MemberDef struct {
	Type       string
	Path       string
	Optional   bool
	Null       bool
	Default    any
	Choices    []any
	Min        *float64
	Max        *float64
	MinLength  *int
	MaxLength  *int
	Pattern    string
	Of         *MemberDef  // element def, arrays only
	ObjSchema  *Schema     // nested member schema, object type only

	once     sync.Once
	compiled *regexp.Regexp
	compErr  error
}

// compiledPattern lazily compiles and caches Pattern, anchoring it with
// ^…$ if the author didn't, per spec.md §4.4.2.
func (d *MemberDef) compiledPattern() (*regexp.Regexp, error) {
	d.once.Do(func() {
		p := d.Pattern
		if !strings.HasPrefix(p, "^") {
			p = "^" + p
		}
		if !strings.HasSuffix(p, "$") {
			p = p + "$"
		}
		d.compiled, d.compErr = regexp.Compile(p)
	})
	return d.compiled, d.compErr
}

// Schema is an ordered sequence of named members.
type Schema struct {
	Members []SchemaMember
}

// SchemaMember pairs a declared name with its MemberDef.
type SchemaMember struct {
	Name string
	Def  *MemberDef
}

// ByName returns the member declared under name, if any.
func (s *Schema) ByName(name string) (*MemberDef, bool) {
	if s == nil {
		return nil, false
	}
	for _, m := range s.Members {
		if m.Name == name {
			return m.Def, true
		}
	}
	return nil, false
}

// --- common pipeline (C5) -------------------------------------------------

// substitute implements spec.md §4.4.1 step 1: if defs is provided and
// the node's source text names a definition, the defined node replaces
// it before validation.
func substitute(node any, defs Definitions) any {
	if defs == nil || node == nil {
		return node
	}
	tok, ok := node.(*Token)
	if !ok {
		return node
	}
	if defined, ok := defs.GetV(tok.Text); ok {
		return defined
	}
	return node
}

// doCommonTypeCheck implements spec.md §4.4.1 step 2. When done is
// false, value is the (possibly substituted) node and the caller must
// continue with type-specific validation; when done is true, value/err
// is the final result.
func doCommonTypeCheck(def *MemberDef, node any, defs Definitions, path string) (value any, done bool, err error) {
	node = substitute(node, defs)

	if node == nil {
		if def.Optional {
			return def.Default, true, nil
		}
		return nil, true, newSchemaError(ErrValueRequired, path, "value is required")
	}

	if tok, ok := node.(*Token); ok && tok.Type == Null {
		if def.Null {
			return nil, true, nil
		}
		return nil, true, newSchemaError(ErrNullNotAllowed, path, "null is not allowed")
	}

	if len(def.Choices) > 0 {
		if tok, ok := node.(*Token); ok {
			if !valueInChoices(tok.Value, def.Choices) {
				return nil, true, newSchemaError(ErrValueNotInChoice, path, "value %v is not one of the allowed choices", tok.Value)
			}
		}
	}

	return node, false, nil
}

func checkLength(def *MemberDef, length int, path string) error {
	if def.MaxLength != nil && length > *def.MaxLength {
		return newSchemaError(ErrInvalidMaxLength, path, "length %d exceeds maxLength %d", length, *def.MaxLength)
	}
	// spec.md §4.4.2/§9: minLength compares with '<', not '>' (the
	// original source's bug is not carried forward).
	if def.MinLength != nil && length < *def.MinLength {
		return newSchemaError(ErrInvalidMinLength, path, "length %d is shorter than minLength %d", length, *def.MinLength)
	}
	return nil
}

func checkRange(def *MemberDef, v float64, path string) error {
	if def.Min != nil && v < *def.Min {
		return newSchemaError(ErrInvalidMinValue, path, "value %v is less than min %v", v, *def.Min)
	}
	if def.Max != nil && v > *def.Max {
		return newSchemaError(ErrInvalidMaxValue, path, "value %v is greater than max %v", v, *def.Max)
	}
	return nil
}

// --- value comparison helpers ---------------------------------------------

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case *big.Int:
		f := new(big.Float).SetInt(n)
		out, _ := f.Float64()
		return out, true
	case int:
		return float64(n), true
	}
	return 0, false
}

func valueInChoices(v any, choices []any) bool {
	for _, c := range choices {
		if valuesEqual(v, c) {
			return true
		}
	}
	return false
}

func valuesEqual(a, b any) bool {
	if as, ok := a.(string); ok {
		bs, ok := b.(string)
		return ok && as == bs
	}
	if ab, ok := a.(bool); ok {
		bb, ok := b.(bool)
		return ok && ab == bb
	}
	af, aok := asFloat(a)
	bf, bok := asFloat(b)
	if aok && bok {
		return af == bf
	}
	return false
}
