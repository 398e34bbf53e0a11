package resources

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// ContentError reports a content pack that could not be read or failed
// validation.
type ContentError struct {
	Path string
	Err  error
}

func (e *ContentError) Error() string {
	return fmt.Sprintf("content pack %s: %v", e.Path, e.Err)
}

func (e *ContentError) Unwrap() error { return e.Err }

// ErrNoQuestions is returned for packs whose quiz is empty.
var ErrNoQuestions = errors.New("content pack has no questions")

const packSchemaURL = "schema://edusense/content-pack.json"

const packSchema = `{
  "type": "object",
  "required": ["topic", "explanation", "questions", "resources"],
  "properties": {
    "topic": {"type": "string", "minLength": 1},
    "explanation": {"type": "string", "minLength": 1},
    "codeExample": {"type": "string"},
    "codeOutput": {"type": "string"},
    "questions": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "type", "question", "correctAnswer"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "type": {"enum": ["mcq", "short"]},
          "question": {"type": "string", "minLength": 1},
          "options": {"type": "array", "items": {"type": "string"}},
          "correctAnswer": {"type": "string"},
          "keywords": {"type": "array", "items": {"type": "string"}}
        },
        "if": {"properties": {"type": {"const": "mcq"}}},
        "then": {"required": ["options"], "properties": {"options": {"minItems": 2}}}
      }
    },
    "resources": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "title", "type", "relevance", "source"],
        "properties": {
          "id": {"type": "string"},
          "title": {"type": "string", "minLength": 1},
          "type": {"type": "string"},
          "relevance": {"type": "integer", "minimum": 0, "maximum": 100},
          "source": {"type": "string"}
        }
      }
    }
  }
}`

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

func packValidator() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		var def any
		if err := json.Unmarshal([]byte(packSchema), &def); err != nil {
			compileErr = fmt.Errorf("parse schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(packSchemaURL, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(packSchemaURL)
	})
	return compiled, compileErr
}

// ParsePack validates raw JSON against the content pack schema and decodes
// it. MCQ answers must be one of the listed options.
func ParsePack(raw []byte) (*Content, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := packValidator()
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	var c Content
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if len(c.Questions) == 0 {
		return nil, ErrNoQuestions
	}
	for _, q := range c.Questions {
		if q.Kind == KindMCQ && !contains(q.Options, q.CorrectAnswer) {
			return nil, fmt.Errorf("question %s: correct answer is not an option", q.ID)
		}
	}
	return &c, nil
}

// LoadPack reads a content pack from disk. Any failure is returned as a
// *ContentError.
func LoadPack(path string) (*Content, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &ContentError{Path: path, Err: err}
	}
	c, err := ParsePack(raw)
	if err != nil {
		return nil, &ContentError{Path: path, Err: err}
	}
	return c, nil
}

// Load returns the pack at path, or the builtin content when path is empty.
func Load(path string) (*Content, error) {
	if path == "" {
		return Builtin(), nil
	}
	return LoadPack(path)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
