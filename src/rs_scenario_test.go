package reedsolomon

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenarioFile(t *testing.T, contents string) string {
	t.Helper()

	var path = filepath.Join(t.TempDir(), "scenarios.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func Test_LoadScenarios(t *testing.T) {
	var rs, err = New(4, 3)
	require.NoError(t, err)

	var path = writeScenarioFile(t, `
scenarios:
  - name: repairable
    message: [6, 15, 8, 9, 8, 3, 0, 0, 5]
    faults:
      - {pos: 2, value: 0}
    expect: ok
  - name: hopeless
    message: [1, 2, 3, 4, 5, 6, 7, 8, 9]
    faults:
      - {pos: 0, value: 0}
      - {pos: 1, value: 0}
      - {pos: 2, value: 0}
      - {pos: 3, value: 0}
    expect: fail
`)

	var scenarios, loadErr = LoadScenarios(path, rs)

	require.NoError(t, loadErr)
	require.Len(t, scenarios, 2)
	assert.Equal(t, "repairable", scenarios[0].Name)
	assert.Equal(t, []SymbolFault{{Pos: 2, Value: 0}}, scenarios[0].Faults)
	assert.Equal(t, "fail", scenarios[1].Expect)
}

func Test_LoadScenarios_rejectsBadInput(t *testing.T) {
	var rs, err = New(4, 3)
	require.NoError(t, err)

	var testData = []struct {
		name     string
		contents string
	}{
		{"missing file is an error", ""},
		{"empty scenario list", "scenarios: []\n"},
		{"wrong message length", `
scenarios:
  - name: short
    message: [1, 2, 3]
    expect: ok
`},
		{"symbol out of range", `
scenarios:
  - name: wide
    message: [16, 0, 0, 0, 0, 0, 0, 0, 0]
    expect: ok
`},
		{"fault position out of range", `
scenarios:
  - name: outside
    message: [1, 2, 3, 4, 5, 6, 7, 8, 9]
    faults:
      - {pos: 15, value: 0}
    expect: ok
`},
		{"unknown expectation", `
scenarios:
  - name: shrug
    message: [1, 2, 3, 4, 5, 6, 7, 8, 9]
    expect: maybe
`},
	}

	for _, testDatum := range testData {
		t.Run(testDatum.name, func(t *testing.T) {
			var path string
			if testDatum.contents == "" {
				path = filepath.Join(t.TempDir(), "does-not-exist.yaml")
			} else {
				path = writeScenarioFile(t, testDatum.contents)
			}

			var scenarios, loadErr = LoadScenarios(path, rs)

			assert.Error(t, loadErr)
			assert.Nil(t, scenarios)
		})
	}
}

func Test_LoadScenarios_shippedFile(t *testing.T) {
	var rs, err = New(4, 3)
	require.NoError(t, err)

	var scenarios, loadErr = LoadScenarios("../data/scenarios.yaml", rs)

	require.NoError(t, loadErr)
	require.Len(t, scenarios, 5)

	// The shipped file must actually behave as advertised.
	for _, sc := range scenarios {
		var msg = make([]byte, len(sc.Message))
		for i, sym := range sc.Message {
			msg[i] = byte(sym)
		}

		var block = rs.Encode(msg)
		for _, f := range sc.Faults {
			block[f.Pos] = byte(f.Value)
		}

		var decoded, ok = rs.Decode(block)
		if sc.Expect == "ok" {
			require.True(t, ok, sc.Name)
			assert.Equal(t, msg, decoded, sc.Name)
		} else {
			assert.False(t, ok, sc.Name)
		}
	}
}
