// Package batch runs greeting and arithmetic calls described in YAML or JSON documents.
//
// A document lists calls under a top-level "calls" key:
//
//	calls:
//	  - op: say_hello
//	    name: Gabriel
//	  - op: greeting_with_time
//	    name: Alice
//	    time: MORNING
//	  - op: add
//	    a: 5
//	    b: 3
//
// Arguments are decoded untyped, so absent or non-string names surface as
// core.ErrInvalidName rather than as decode failures.
package batch

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Op names a component operation.
type Op string

const (
	OpSayHello         Op = "say_hello"
	OpSayGoodbye       Op = "say_goodbye"
	OpGreetingWithTime Op = "greeting_with_time"
	OpAdd              Op = "add"
)

// Call is a single operation invocation.
type Call struct {
	Op   Op  `yaml:"op" json:"op"`
	Name any `yaml:"name,omitempty" json:"name,omitempty"`
	Time any `yaml:"time,omitempty" json:"time,omitempty"`
	A    any `yaml:"a,omitempty" json:"a,omitempty"`
	B    any `yaml:"b,omitempty" json:"b,omitempty"`
}

// Result is the outcome of one executed call.
type Result struct {
	Index  int
	Op     Op
	Output string
	Err    error
}

// OK reports whether the call succeeded.
func (r Result) OK() bool {
	return r.Err == nil
}

// MarshalJSON renders the error as its message.
func (r Result) MarshalJSON() ([]byte, error) {
	out := struct {
		Index  int    `json:"index"`
		Op     Op     `json:"op"`
		Output string `json:"output,omitempty"`
		Error  string `json:"error,omitempty"`
	}{
		Index:  r.Index,
		Op:     r.Op,
		Output: r.Output,
	}
	if r.Err != nil {
		out.Error = r.Err.Error()
	}
	return json.Marshal(out)
}

// Errors.
var (
	ErrUnknownOperation = errors.New("unknown operation")
	ErrNoMatches        = errors.New("pattern matched no files")
)

// CallError reports the call that stopped a fail-fast run.
type CallError struct {
	Index int
	Op    Op
	Err   error
}

func (e *CallError) Error() string {
	return fmt.Sprintf("call %d (%s): %v", e.Index, e.Op, e.Err)
}

func (e *CallError) Unwrap() error {
	return e.Err
}

type document struct {
	Calls []Call `yaml:"calls" json:"calls"`
}

// Decode reads a YAML stream of calls. Flow-style JSON is valid YAML and
// decodes too. Calls from every "---" separated document are concatenated in
// order; an empty stream yields no calls.
func Decode(r io.Reader) ([]Call, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var calls []Call
	for n := 0; ; n++ {
		var doc document
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				return calls, nil
			}
			return nil, fmt.Errorf("failed to decode calls (document %d): %w", n, err)
		}
		calls = append(calls, doc.Calls...)
	}
}

// DecodeJSON reads a stream of JSON documents of calls.
// Numbers are kept as json.Number so large integers keep their precision.
// Trailing content that is not another document is an error.
func DecodeJSON(r io.Reader) ([]Call, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	dec.DisallowUnknownFields()

	var calls []Call
	for n := 0; ; n++ {
		var doc document
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				return calls, nil
			}
			return nil, fmt.Errorf("failed to decode calls (document %d): %w", n, err)
		}
		calls = append(calls, doc.Calls...)
	}
}

// DecoderFor picks the decoder for a file by its extension.
func DecoderFor(path string) func(io.Reader) ([]Call, error) {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return DecodeJSON
	}
	return Decode
}
