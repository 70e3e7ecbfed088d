package internetobject

// arrayTypeDef implements the registered "array" type (spec.md §4.4.4):
// requires a sequence-kind container, applies minLength/maxLength to
// its element count, and recursively parses each element with the
// nested Of MemberDef.
type arrayTypeDef struct{}

func (d *arrayTypeDef) GetType() string { return "array" }

func (d *arrayTypeDef) Parse(node any, def *MemberDef, defs Definitions) (any, error) {
	path := def.Path
	value, done, err := doCommonTypeCheck(def, node, defs, path)
	if done {
		return value, err
	}

	cont, ok := value.(*Container)
	if !ok || cont.Kind != ArrayContainer {
		return nil, newSchemaError(ErrInvalidArray, path, "value is not an array")
	}
	if err := checkLength(def, len(cont.Children), path); err != nil {
		return nil, err
	}
	if def.Of == nil {
		return nil, newSchemaError(ErrInvalidSchema, path, "array member is missing an 'of' element definition")
	}
	elemDef := def.Of
	elemTypeDef, ok := LookupTypeDef(elemDef.Type)
	if !ok {
		return nil, newSchemaError(ErrInvalidSchema, elemDef.Path, "unknown type %q", elemDef.Type)
	}

	result := make([]any, 0, len(cont.Children))
	for _, child := range cont.Children {
		v, err := elemTypeDef.Parse(child, elemDef, defs)
		if err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	return result, nil
}
