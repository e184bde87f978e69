package batch_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/publishlib/pkg/batch"
)

func TestDecode_YAML(t *testing.T) {
	input := `
calls:
  - op: say_hello
    name: Gabriel
  - op: greeting_with_time
    name: Alice
    time: MORNING
  - op: add
    a: 999999999
    b: 1
  - op: say_goodbye
    name: 123
`
	calls, err := batch.Decode(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, calls, 4)

	assert.Equal(t, batch.OpSayHello, calls[0].Op)
	assert.Equal(t, "Gabriel", calls[0].Name)
	assert.Equal(t, "MORNING", calls[1].Time)
	assert.Equal(t, 999999999, calls[2].A)
	assert.Equal(t, 123, calls[3].Name)
}

func TestDecode_FlowJSON(t *testing.T) {
	calls, err := batch.Decode(strings.NewReader(`{"calls": [{"op": "add", "a": 5, "b": 3}]}`))
	require.NoError(t, err)
	require.Len(t, calls, 1)
	assert.Equal(t, batch.OpAdd, calls[0].Op)
}

func TestDecode_Empty(t *testing.T) {
	calls, err := batch.Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, calls)
}

func TestDecode_MultiDocument(t *testing.T) {
	input := `calls:
  - op: say_hello
    name: Gabriel
---
calls:
  - op: add
    a: 5
    b: 3
  - op: say_goodbye
    name: World
`
	calls, err := batch.Decode(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, calls, 3)
	assert.Equal(t, batch.OpSayHello, calls[0].Op)
	assert.Equal(t, batch.OpAdd, calls[1].Op)
	assert.Equal(t, batch.OpSayGoodbye, calls[2].Op)
}

func TestDecode_LaterDocumentInvalid(t *testing.T) {
	input := "calls:\n  - op: add\n    a: 1\n    b: 2\n---\ncalls: [\n"
	calls, err := batch.Decode(strings.NewReader(input))
	assert.Error(t, err)
	assert.Nil(t, calls)
}

func TestDecode_UnknownField(t *testing.T) {
	_, err := batch.Decode(strings.NewReader("calls:\n  - op: add\n    c: 1\n"))
	assert.Error(t, err)
}

func TestDecodeJSON(t *testing.T) {
	input := "{\n\t\"calls\": [\n\t\t{\"op\": \"add\", \"a\": 9007199254740993, \"b\": 0}\n\t]\n}"
	calls, err := batch.DecodeJSON(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, calls, 1)
	assert.Equal(t, json.Number("9007199254740993"), calls[0].A)

	_, err = batch.DecodeJSON(strings.NewReader(`{"calls": [{"op": "add", "extra": true}]}`))
	assert.Error(t, err)
}

func TestDecodeJSON_Concatenated(t *testing.T) {
	input := `{"calls": [{"op": "add", "a": 1, "b": 2}]}
{"calls": [{"op": "say_hello", "name": "Gabriel"}]}
`
	calls, err := batch.DecodeJSON(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, calls, 2)
	assert.Equal(t, batch.OpAdd, calls[0].Op)
	assert.Equal(t, batch.OpSayHello, calls[1].Op)
}

func TestDecodeJSON_TrailingGarbage(t *testing.T) {
	_, err := batch.DecodeJSON(strings.NewReader(`{"calls": [{"op": "add", "a": 1, "b": 2}]} garbage`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "document 1")
}

func TestDecodeJSON_Empty(t *testing.T) {
	calls, err := batch.DecodeJSON(strings.NewReader("  \n"))
	require.NoError(t, err)
	assert.Empty(t, calls)
}

func TestDecoderFor(t *testing.T) {
	calls, err := batch.DecoderFor("calls.JSON")(strings.NewReader(`{"calls": [{"op": "add", "a": 1, "b": 2}]}`))
	require.NoError(t, err)
	require.Len(t, calls, 1)
	assert.IsType(t, json.Number(""), calls[0].A)

	calls, err = batch.DecoderFor("calls.yaml")(strings.NewReader("calls:\n  - op: add\n    a: 1\n    b: 2\n"))
	require.NoError(t, err)
	require.Len(t, calls, 1)
	assert.Equal(t, 1, calls[0].A)
}

func TestResult_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(batch.Result{Index: 2, Op: batch.OpAdd, Output: "8"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"index": 2, "op": "add", "output": "8"}`, string(data))
}
