package schema

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const baseURL = "https://hos-recap-service/schema/"

//go:embed *.schema.json
var files embed.FS

type Schemas struct {
	Trip   *jsonschema.Schema
	Sheets *jsonschema.Schema
}

// Load compiles the embedded schemas once.
var Load = sync.OnceValues(compile)

func compile() (*Schemas, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020

	for _, name := range []string{"dailylog.schema.json", "trip.schema.json", "sheets.schema.json"} {
		b, err := files.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("load schema %s: %w", name, err)
		}
		if err := compiler.AddResource(baseURL+name, bytes.NewReader(b)); err != nil {
			return nil, fmt.Errorf("add schema resource %s: %w", name, err)
		}
	}

	trip, err := compiler.Compile(baseURL + "trip.schema.json")
	if err != nil {
		return nil, fmt.Errorf("compile trip schema: %w", err)
	}
	sheets, err := compiler.Compile(baseURL + "sheets.schema.json")
	if err != nil {
		return nil, fmt.Errorf("compile sheets schema: %w", err)
	}

	return &Schemas{Trip: trip, Sheets: sheets}, nil
}

// Validate checks a raw JSON document against s.
func Validate(s *jsonschema.Schema, raw []byte) error {
	var payload any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return err
	}
	return s.Validate(payload)
}
