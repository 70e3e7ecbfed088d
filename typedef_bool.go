package internetobject

// boolTypeDef implements the registered "bool" type. The tokenizer
// already decodes T/true/F/false into a BOOLEAN token (spec.md §4.2.5);
// validation here only confirms the token's kind.
type boolTypeDef struct{}

func (d *boolTypeDef) GetType() string { return "bool" }

func (d *boolTypeDef) Parse(node any, def *MemberDef, defs Definitions) (any, error) {
	path := def.Path
	value, done, err := doCommonTypeCheck(def, node, defs, path)
	if done {
		return value, err
	}
	tok, ok := value.(*Token)
	if !ok || tok.Type != Boolean {
		return nil, newSchemaError(ErrInvalidType, path, "value is not a bool")
	}
	b, _ := tok.Value.(bool)
	return b, nil
}
