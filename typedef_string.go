package internetobject

import "regexp"

// emailRE approximates RFC 5322's addr-spec grammar closely enough for
// validation purposes (spec.md §4.4.2); it is not a full grammar parser.
var emailRE = regexp.MustCompile(`^[a-zA-Z0-9.!#$%&'*+/=?^_` + "`" + `{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)+$`)

// urlRE accepts an absolute URL: scheme://authority/path?query#fragment.
var urlRE = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*://[^\s]+$`)

// stringTypeDef implements the "string", "email", and "url" registered
// types. email/url layer a built-in regex on top of the same decode and
// length-check pipeline "string" uses (spec.md §4.4.2).
type stringTypeDef struct {
	name           string
	builtinPattern *regexp.Regexp
}

func (d *stringTypeDef) GetType() string { return d.name }

func (d *stringTypeDef) Parse(node any, def *MemberDef, defs Definitions) (any, error) {
	path := def.Path
	value, done, err := doCommonTypeCheck(def, node, defs, path)
	if done {
		return value, err
	}

	tok, ok := value.(*Token)
	if !ok || tok.Type != String {
		return nil, newSchemaError(ErrNotAString, path, "value is not a string")
	}
	s, _ := tok.Value.(string)

	switch {
	case d.builtinPattern != nil:
		if !d.builtinPattern.MatchString(s) {
			return nil, newSchemaError(ErrInvalidValue, path, "value does not match %s format", d.name)
		}
	case def.Pattern != "":
		re, err := def.compiledPattern()
		if err != nil {
			return nil, newSchemaError(ErrInvalidSchema, path, "invalid pattern %q: %s", def.Pattern, err)
		}
		if !re.MatchString(s) {
			return nil, newSchemaError(ErrInvalidValue, path, "value does not match pattern %q", def.Pattern)
		}
	}

	if err := checkLength(def, len(s), path); err != nil {
		return nil, err
	}
	return s, nil
}
