// Package output renders a dialog outcome as JSON for dlgctl, optionally
// reduced by a jq expression.
package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/itchyny/gojq"
)

// Outcome is one finished dialog.
type Outcome struct {
	Backend   string      `json:"backend"`
	Kind      string      `json:"kind"`
	Topic     string      `json:"topic"`
	Answer    string      `json:"answer"`
	Value     interface{} `json:"value"` // bool, choice index, or null for absent
	Choice    string      `json:"choice,omitempty"`
	ElapsedMs int64       `json:"elapsed_ms"`
	Error     string      `json:"error,omitempty"`
}

// Filter compiles a jq expression once for repeated use.
type Filter struct {
	src  string
	code *gojq.Code
}

// NewFilter parses and compiles expr. An empty expr is the identity.
func NewFilter(expr string) (*Filter, error) {
	if expr == "" {
		expr = "."
	}
	q, err := gojq.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid query %q: %w", expr, err)
	}
	code, err := gojq.Compile(q)
	if err != nil {
		return nil, fmt.Errorf("invalid query %q: %w", expr, err)
	}
	return &Filter{src: expr, code: code}, nil
}

// Apply runs the filter over v, which is first normalised to plain JSON
// values, and collects every result.
func (f *Filter) Apply(v interface{}) ([]interface{}, error) {
	input, err := normalise(v)
	if err != nil {
		return nil, err
	}
	var out []interface{}
	iter := f.code.Run(input)
	for {
		r, ok := iter.Next()
		if !ok {
			break
		}
		if err, isErr := r.(error); isErr {
			var halt *gojq.HaltError
			if errors.As(err, &halt) && halt.Value() == nil {
				break
			}
			return out, fmt.Errorf("query %q: %w", f.src, err)
		}
		out = append(out, r)
	}
	return out, nil
}

// normalise round-trips v through encoding/json so gojq sees only maps,
// slices, strings, float64s, bools and nil.
func normalise(v interface{}) (interface{}, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out interface{}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Write prints each filter result on its own line. With raw set, string
// results are printed without quotes, as jq -r does.
func Write(w io.Writer, o Outcome, f *Filter, raw bool) error {
	if f == nil {
		var err error
		if f, err = NewFilter(""); err != nil {
			return err
		}
	}
	results, err := f.Apply(o)
	if err != nil {
		return err
	}
	for _, r := range results {
		if s, ok := r.(string); ok && raw {
			if _, err := fmt.Fprintln(w, s); err != nil {
				return err
			}
			continue
		}
		data, err := gojq.Marshal(r)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s\n", data); err != nil {
			return err
		}
	}
	return nil
}
