package store

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// requirementSchemaJSON constrains the seed requirement documents.
// Kind stays an open string so definitions can ship ahead of their
// evaluator; the evaluator skips kinds it does not know.
const requirementSchemaJSON = `{
	"type": "object",
	"properties": {
		"kind": {"type": "string", "minLength": 1},
		"threshold": {"type": "integer", "minimum": 1}
	},
	"required": ["kind", "threshold"],
	"additionalProperties": false
}`

var (
	requirementSchemaOnce sync.Once
	requirementSchema     *jsonschema.Schema
	requirementSchemaErr  error
)

func compiledRequirementSchema() (*jsonschema.Schema, error) {
	requirementSchemaOnce.Do(func() {
		var def any
		if err := json.Unmarshal([]byte(requirementSchemaJSON), &def); err != nil {
			requirementSchemaErr = fmt.Errorf("parse requirement schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		const url = "schema://requirement.json"
		if err := c.AddResource(url, def); err != nil {
			requirementSchemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		requirementSchema, requirementSchemaErr = c.Compile(url)
	})
	return requirementSchema, requirementSchemaErr
}

// ParseRequirement validates and decodes a raw requirement document.
func ParseRequirement(raw string) (Requirement, error) {
	var parsed any
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return Requirement{}, fmt.Errorf("invalid requirement JSON: %w", err)
	}

	compiled, err := compiledRequirementSchema()
	if err != nil {
		return Requirement{}, fmt.Errorf("compile requirement schema: %w", err)
	}
	if err := compiled.Validate(parsed); err != nil {
		return Requirement{}, fmt.Errorf("requirement validation failed: %w", err)
	}

	var req Requirement
	if err := json.Unmarshal([]byte(raw), &req); err != nil {
		return Requirement{}, fmt.Errorf("decode requirement: %w", err)
	}
	return req, nil
}
