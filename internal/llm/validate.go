package llm

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// compiledSchemas caches compilation per Schema instance. Keying on the
// pointer rather than the name means two schemas that happen to share a
// name can never poison each other's cache entry.
var compiledSchemas sync.Map // map[*Schema]*jsonschema.Schema

// checkOutput validates model output against the request's schema and
// reports failures as bad-output errors.
func checkOutput(schema *Schema, raw json.RawMessage) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return badOutputErr(raw, fmt.Errorf("output is not JSON: %w", err))
	}

	compiled, err := compileSchema(schema)
	if err != nil {
		return badOutputErr(raw, err)
	}

	if err := compiled.Validate(parsed); err != nil {
		return badOutputErr(raw, fmt.Errorf("output violates schema %q: %w", schema.Name, err))
	}
	return nil
}

func compileSchema(schema *Schema) (*jsonschema.Schema, error) {
	if cached, ok := compiledSchemas.Load(schema); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The compiler wants a parsed JSON document, so the definition map is
	// round-tripped through encoding/json to normalize Go types.
	defBytes, err := json.Marshal(schema.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema %q: %w", schema.Name, err)
	}
	var doc any
	if err := json.Unmarshal(defBytes, &doc); err != nil {
		return nil, fmt.Errorf("normalize schema %q: %w", schema.Name, err)
	}

	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("courseforge://schema/%s.json", schema.Name)
	if err := c.AddResource(url, doc); err != nil {
		return nil, fmt.Errorf("register schema %q: %w", schema.Name, err)
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile schema %q: %w", schema.Name, err)
	}

	compiledSchemas.Store(schema, compiled)
	return compiled, nil
}
