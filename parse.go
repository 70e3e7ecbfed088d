package internetobject

// Parse tokenizes and parses a single-section IO document, returning its
// tree value per spec.md §4.3.3. If the source contains a SECTION_SEP,
// use ParseSections instead.
func Parse(text string) (any, error) {
	sections, err := ParseSections(text)
	if err != nil {
		return nil, err
	}
	if len(sections) == 0 {
		return nil, nil
	}
	if len(sections) > 1 {
		return nil, newError(Position{}, ErrMultipleHeaders, "expected a single section, found %d", len(sections))
	}
	return sections[0], nil
}

// ParseSections tokenizes text and splits it on SECTION_SEP tokens
// (spec.md §4.2.2 item 7, §8 scenario 6), building and finalizing an
// independent AstParser for each section.
func ParseSections(text string) ([]any, error) {
	tokens, err := NewTokenizer(text).Tokenize()
	if err != nil {
		return nil, err
	}

	var sections []any
	parser := NewAstParser()
	flush := func() error {
		obj, err := parser.ToObject()
		if err != nil {
			return err
		}
		sections = append(sections, obj)
		parser = NewAstParser()
		return nil
	}

	for _, tok := range tokens {
		if tok.Type == SectionSep {
			if err := flush(); err != nil {
				return nil, err
			}
			continue
		}
		if err := parser.Process(tok); err != nil {
			return nil, err
		}
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return sections, nil
}

// ParseWithSchema tokenizes and parses a single-section document and
// validates/coerces it against schema in one pass (spec.md §4.4.4),
// keeping per-node source positions available to validators all the way
// through — unlike Parse, which materializes a generic, position-free
// tree via AstParser.ToObject.
func ParseWithSchema(text string, schema *Schema, defs Definitions) (*Mapping, error) {
	tokens, err := NewTokenizer(text).Tokenize()
	if err != nil {
		return nil, err
	}

	parser := NewAstParser()
	for _, tok := range tokens {
		if tok.Type == SectionSep {
			return nil, newError(tok.Pos, ErrMultipleHeaders, "schema-validated parse does not support multiple sections")
		}
		if err := parser.Process(tok); err != nil {
			return nil, err
		}
	}
	if len(parser.stack) != 0 {
		top := parser.stack[len(parser.stack)-1]
		return nil, newError(Position{}, ErrOpenBracket, "unclosed %s at end of input", top.Kind)
	}

	root := parser.root
	if root == nil {
		root = &Container{Kind: ObjectContainer}
	}
	def := &MemberDef{Type: "object", ObjSchema: schema, Path: "$"}
	value, err := (&objectTypeDef{}).Parse(root, def, defs)
	if err != nil {
		return nil, err
	}
	m, _ := value.(*Mapping)
	return m, nil
}
