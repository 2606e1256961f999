package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/urmzd/smartapp/pkg/device"
)

// Validator checks action parameters against JSON Schema documents.
// Compiled schemas are cached by their raw bytes.
type Validator struct {
	mu    sync.RWMutex
	cache map[string]*jsonschema.Schema
}

// NewValidator creates a new Validator with an empty cache.
func NewValidator() *Validator {
	return &Validator{
		cache: make(map[string]*jsonschema.Schema),
	}
}

// Validate checks params against schemaDoc. An empty schema accepts
// anything. Failures wrap device.ErrValidation.
func (v *Validator) Validate(schemaDoc json.RawMessage, params device.Params) error {
	if len(schemaDoc) == 0 || string(schemaDoc) == "{}" || string(schemaDoc) == "null" {
		return nil
	}

	compiled, err := v.compile(schemaDoc)
	if err != nil {
		return fmt.Errorf("failed to compile schema: %w", err)
	}

	doc, err := normalize(params)
	if err != nil {
		return fmt.Errorf("%w: %w", device.ErrValidation, err)
	}

	if err := compiled.Validate(doc); err != nil {
		return fmt.Errorf("%w: %w", device.ErrValidation, err)
	}
	return nil
}

// normalize turns params into the generic JSON shape the validator
// expects. Numbers come back as json.Number.
func normalize(params device.Params) (any, error) {
	if params == nil {
		return map[string]any{}, nil
	}
	raw, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("encoding params: %w", err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decoding params: %w", err)
	}
	return doc, nil
}

func (v *Validator) compile(schemaDoc json.RawMessage) (*jsonschema.Schema, error) {
	key := string(schemaDoc)

	v.mu.RLock()
	if s, ok := v.cache[key]; ok {
		v.mu.RUnlock()
		return s, nil
	}
	v.mu.RUnlock()

	v.mu.Lock()
	defer v.mu.Unlock()

	if s, ok := v.cache[key]; ok {
		return s, nil
	}

	var schemaMap any
	if err := json.Unmarshal(schemaDoc, &schemaMap); err != nil {
		return nil, fmt.Errorf("failed to unmarshal schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource("params.json", schemaMap); err != nil {
		return nil, fmt.Errorf("failed to add resource: %w", err)
	}
	compiled, err := c.Compile("params.json")
	if err != nil {
		return nil, fmt.Errorf("failed to compile: %w", err)
	}

	v.cache[key] = compiled
	return compiled, nil
}
