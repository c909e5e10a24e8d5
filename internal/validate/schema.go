// Package validate checks request payloads structurally against
// declarative entity schemas: field name to kind, required flag and
// numeric bounds. A payload matches a schema when every required field
// is present, every present field is declared, kinds line up with the
// decoded JSON value and bounded numbers stay in range.
package validate

import (
	"fmt"
)

type Kind int

const (
	String Kind = iota
	Number
	Bool
)

func (k Kind) String() string {
	switch k {
	case String:
		return "string"
	case Number:
		return "number"
	case Bool:
		return "bool"
	}
	return "unknown"
}

type Field struct {
	Kind     Kind
	Required bool

	// Min/Max bound Number fields inclusively when Bounded is set.
	Bounded  bool
	Min, Max float64
}

type Schema struct {
	Entity string
	Fields map[string]Field
}

// Check validates a decoded JSON object against the schema. The error,
// when non-nil, names the first offending field.
func (s Schema) Check(payload map[string]any) error {
	for name, field := range s.Fields {
		if !field.Required {
			continue
		}
		if _, ok := payload[name]; !ok {
			return fmt.Errorf("%s: missing required field %q", s.Entity, name)
		}
	}

	for name, value := range payload {
		field, ok := s.Fields[name]
		if !ok {
			return fmt.Errorf("%s: unknown field %q", s.Entity, name)
		}
		if value == nil {
			if field.Required {
				return fmt.Errorf("%s: field %q must not be null", s.Entity, name)
			}
			continue
		}
		switch field.Kind {
		case String:
			if _, ok := value.(string); !ok {
				return fmt.Errorf("%s: field %q must be a %s", s.Entity, name, field.Kind)
			}
		case Bool:
			if _, ok := value.(bool); !ok {
				return fmt.Errorf("%s: field %q must be a %s", s.Entity, name, field.Kind)
			}
		case Number:
			n, ok := value.(float64)
			if !ok {
				return fmt.Errorf("%s: field %q must be a %s", s.Entity, name, field.Kind)
			}
			if field.Bounded && (n < field.Min || n > field.Max) {
				return fmt.Errorf("%s: field %q out of range [%v, %v]", s.Entity, name, field.Min, field.Max)
			}
		}
	}

	return nil
}

func score() Field {
	return Field{Kind: Number, Required: true, Bounded: true, Min: 1, Max: 5}
}

// Rating covers the four scored dimensions, each a bounded 1..5 value.
var Rating = Schema{
	Entity: "rating",
	Fields: map[string]Field{
		"culture":    score(),
		"mentorship": score(),
		"impact":     score(),
		"interview":  score(),
	},
}

// ReviewUpdate admits only the mutable review fields.
var ReviewUpdate = Schema{
	Entity: "review",
	Fields: map[string]Field{
		"salary":   {Kind: Number, Required: true},
		"content":  {Kind: String, Required: true},
		"position": {Kind: String, Required: true},
	},
}

var CompanyUpdate = Schema{
	Entity: "company",
	Fields: map[string]Field{
		"name":     {Kind: String, Required: true},
		"logo":     {Kind: String},
		"location": {Kind: String},
	},
}

var CommentUpdate = Schema{
	Entity: "comment",
	Fields: map[string]Field{
		"content": {Kind: String, Required: true},
	},
}
