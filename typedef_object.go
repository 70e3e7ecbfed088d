package internetobject

// objectTypeDef implements the registered "object" type (spec.md
// §4.4.4): the document's schema names members in order, each looked up
// by key when the container is mapping-shaped or positionally when it
// is sequence-shaped, with unknown extra members rejected and absent
// optional members defaulted.
type objectTypeDef struct{}

func (d *objectTypeDef) GetType() string { return "object" }

func (d *objectTypeDef) Parse(node any, def *MemberDef, defs Definitions) (any, error) {
	path := def.Path
	value, done, err := doCommonTypeCheck(def, node, defs, path)
	if done {
		return value, err
	}

	cont, ok := value.(*Container)
	if !ok {
		return nil, newSchemaError(ErrInvalidObject, path, "value is not an object")
	}
	schema := def.ObjSchema
	if schema == nil {
		return nil, newSchemaError(ErrInvalidSchema, path, "object member is missing a schema")
	}

	if cont.Kind == ArrayContainer {
		return d.parsePositional(cont, schema, defs)
	}
	return d.parseKeyed(cont, def, schema, defs)
}

func (d *objectTypeDef) parsePositional(cont *Container, schema *Schema, defs Definitions) (any, error) {
	if len(cont.Children) > len(schema.Members) {
		return nil, newSchemaError(ErrInvalidObject, "", "too many positional members: got %d, schema declares %d", len(cont.Children), len(schema.Members))
	}
	result := &Mapping{}
	for i, m := range schema.Members {
		var childNode any
		if i < len(cont.Children) {
			childNode = cont.Children[i]
		}
		v, err := parseMember(m, childNode, defs)
		if err != nil {
			return nil, err
		}
		result.Entries = append(result.Entries, MapEntry{Key: m.Name, Value: v})
	}
	return result, nil
}

// parseKeyed handles an ObjectContainer-kind node whose children may be
// KeyValue pairs, bare values, or both: bare values fill, in document
// order, whichever schema members a key didn't already claim (spec.md
// §4.3.3's same mixed-shape rule the generic materializer applies).
func (d *objectTypeDef) parseKeyed(cont *Container, def *MemberDef, schema *Schema, defs Definitions) (any, error) {
	keyed := map[string]any{}
	var bare []any
	for _, child := range cont.Children {
		if kv, ok := child.(*KeyValue); ok {
			keyed[kv.Key] = kv.Value
			continue
		}
		bare = append(bare, child)
	}
	for k := range keyed {
		if _, ok := schema.ByName(k); !ok {
			return nil, newSchemaError(ErrInvalidObject, def.Path, "unknown member %q", k)
		}
	}

	result := &Mapping{}
	bareIdx := 0
	for _, m := range schema.Members {
		var childNode any
		if v, ok := keyed[m.Name]; ok {
			childNode = v
		} else if bareIdx < len(bare) {
			childNode = bare[bareIdx]
			bareIdx++
		}
		v, err := parseMember(m, childNode, defs)
		if err != nil {
			return nil, err
		}
		result.Entries = append(result.Entries, MapEntry{Key: m.Name, Value: v})
	}
	if bareIdx < len(bare) {
		return nil, newSchemaError(ErrInvalidObject, def.Path, "too many positional members: %d unmatched", len(bare)-bareIdx)
	}
	return result, nil
}

func parseMember(m SchemaMember, node any, defs Definitions) (any, error) {
	td, ok := LookupTypeDef(m.Def.Type)
	if !ok {
		return nil, newSchemaError(ErrInvalidSchema, m.Def.Path, "unknown type %q", m.Def.Type)
	}
	return td.Parse(node, m.Def, defs)
}
