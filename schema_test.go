package internetobject

import (
	"testing"
)

func strTok(s string) *Token {
	return &Token{Text: s, Value: s, Type: String, SubType: OpenString}
}

func TestDoCommonTypeCheckAbsent(t *testing.T) {
	t.Parallel()

	t.Run("OptionalWithDefault", func(t *testing.T) {
		t.Parallel()
		def := &MemberDef{Optional: true, Default: "fallback"}
		v, done, err := doCommonTypeCheck(def, nil, nil, "x")
		if !done || err != nil {
			t.Fatalf("got done=%v err=%v, want done=true err=nil", done, err)
		}
		if v != "fallback" {
			t.Errorf("got %v, want %q", v, "fallback")
		}
	})

	t.Run("RequiredMissing", func(t *testing.T) {
		t.Parallel()
		def := &MemberDef{}
		_, done, err := doCommonTypeCheck(def, nil, nil, "x")
		if !done || err == nil {
			t.Fatalf("got done=%v err=%v, want done=true err!=nil", done, err)
		}
		se := err.(*SyntaxError)
		if se.Code != ErrValueRequired {
			t.Errorf("code = %s, want %s", se.Code, ErrValueRequired)
		}
	})
}

func TestDoCommonTypeCheckNull(t *testing.T) {
	t.Parallel()
	nullTok := &Token{Type: Null}

	t.Run("Allowed", func(t *testing.T) {
		t.Parallel()
		def := &MemberDef{Null: true}
		v, done, err := doCommonTypeCheck(def, nullTok, nil, "x")
		if !done || err != nil || v != nil {
			t.Fatalf("got v=%v done=%v err=%v, want nil true nil", v, done, err)
		}
	})

	t.Run("Disallowed", func(t *testing.T) {
		t.Parallel()
		def := &MemberDef{}
		_, done, err := doCommonTypeCheck(def, nullTok, nil, "x")
		if !done || err == nil {
			t.Fatalf("got done=%v err=%v, want done=true err!=nil", done, err)
		}
		if err.(*SyntaxError).Code != ErrNullNotAllowed {
			t.Errorf("code = %s, want %s", err.(*SyntaxError).Code, ErrNullNotAllowed)
		}
	})
}

func TestDoCommonTypeCheckChoices(t *testing.T) {
	t.Parallel()
	def := &MemberDef{Choices: []any{"red", "green", "blue"}}

	t.Run("Match", func(t *testing.T) {
		t.Parallel()
		_, done, err := doCommonTypeCheck(def, strTok("green"), nil, "x")
		if done || err != nil {
			t.Fatalf("got done=%v err=%v, want done=false err=nil (continue to type check)", done, err)
		}
	})

	t.Run("NoMatch", func(t *testing.T) {
		t.Parallel()
		_, done, err := doCommonTypeCheck(def, strTok("purple"), nil, "x")
		if !done || err == nil {
			t.Fatalf("got done=%v err=%v, want done=true err!=nil", done, err)
		}
		if err.(*SyntaxError).Code != ErrValueNotInChoice {
			t.Errorf("code = %s, want %s", err.(*SyntaxError).Code, ErrValueNotInChoice)
		}
	})
}

func TestSubstituteDefinitions(t *testing.T) {
	t.Parallel()
	defs := MapDefinitions{"$color": "teal"}
	node := &Token{Text: "$color", Value: "$color", Type: String, SubType: OpenString}
	got := substitute(node, defs)
	if got != "teal" {
		t.Errorf("substitute = %v, want %q", got, "teal")
	}
	if got := substitute(node, nil); got != node {
		t.Errorf("substitute with nil defs should return node unchanged, got %v", got)
	}
}

func TestCheckLength(t *testing.T) {
	t.Parallel()
	min, max := 2, 4

	for _, tc := range []struct {
		desc    string
		def     *MemberDef
		length  int
		wantErr ErrorCode
	}{
		{desc: "WithinBounds", def: &MemberDef{MinLength: &min, MaxLength: &max}, length: 3},
		{desc: "AtMin", def: &MemberDef{MinLength: &min}, length: 2},
		{desc: "BelowMin", def: &MemberDef{MinLength: &min}, length: 1, wantErr: ErrInvalidMinLength},
		{desc: "AtMax", def: &MemberDef{MaxLength: &max}, length: 4},
		{desc: "AboveMax", def: &MemberDef{MaxLength: &max}, length: 5, wantErr: ErrInvalidMaxLength},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()
			err := checkLength(tc.def, tc.length, "x")
			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("checkLength = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("checkLength = nil, want error %s", tc.wantErr)
			}
			if err.(*SyntaxError).Code != tc.wantErr {
				t.Errorf("code = %s, want %s", err.(*SyntaxError).Code, tc.wantErr)
			}
		})
	}
}

func TestCheckRange(t *testing.T) {
	t.Parallel()
	min, max := 0.0, 100.0
	def := &MemberDef{Min: &min, Max: &max}

	if err := checkRange(def, 50, "x"); err != nil {
		t.Errorf("checkRange(50) = %v, want nil", err)
	}
	if err := checkRange(def, -1, "x"); err == nil || err.(*SyntaxError).Code != ErrInvalidMinValue {
		t.Errorf("checkRange(-1) = %v, want %s", err, ErrInvalidMinValue)
	}
	if err := checkRange(def, 101, "x"); err == nil || err.(*SyntaxError).Code != ErrInvalidMaxValue {
		t.Errorf("checkRange(101) = %v, want %s", err, ErrInvalidMaxValue)
	}
}

func TestCompiledPatternAnchoring(t *testing.T) {
	t.Parallel()
	def := &MemberDef{Pattern: `[a-z]+`}
	re, err := def.compiledPattern()
	if err != nil {
		t.Fatalf("compiledPattern() failed: %v", err)
	}
	if re.MatchString("abc123") {
		t.Errorf("pattern %q should be anchored and reject %q", def.Pattern, "abc123")
	}
	if !re.MatchString("abc") {
		t.Errorf("pattern %q should match %q", def.Pattern, "abc")
	}
	// Caching: a second call must return the identical compiled regexp.
	re2, _ := def.compiledPattern()
	if re != re2 {
		t.Errorf("compiledPattern() recompiled instead of returning the cached value")
	}
}

func TestSchemaByName(t *testing.T) {
	t.Parallel()
	s := &Schema{Members: []SchemaMember{{Name: "a", Def: &MemberDef{Type: "string"}}}}
	if _, ok := s.ByName("a"); !ok {
		t.Errorf("ByName(%q) not found", "a")
	}
	if _, ok := s.ByName("missing"); ok {
		t.Errorf("ByName(%q) found, want not found", "missing")
	}
	var nilSchema *Schema
	if _, ok := nilSchema.ByName("a"); ok {
		t.Errorf("nil Schema.ByName found, want not found")
	}
}
