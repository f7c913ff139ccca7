package reedsolomon

/*------------------------------------------------------------------
 *
 * Purpose:	Scripted fault scenarios for the demonstration driver.
 *
 * Description:	Rather than compiling test patterns in, the driver can
 *		replay scenarios from a YAML file: each one names a
 *		message, a set of symbol corruptions to apply to the
 *		encoded block, and whether decoding is expected to
 *		succeed or fail.
 *
 *------------------------------------------------------------------*/

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SymbolFault overwrites one codeword position with a fixed value.
type SymbolFault struct {
	Pos   int `yaml:"pos"`
	Value int `yaml:"value"`
}

// Scenario is one scripted encode / corrupt / decode round.
// Expect is "ok" when the decoder should recover the message and
// "fail" when the corruption should exceed its capacity.
type Scenario struct {
	Name    string        `yaml:"name"`
	Message []int         `yaml:"message"`
	Faults  []SymbolFault `yaml:"faults"`
	Expect  string        `yaml:"expect"`
}

type scenarioFile struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

/*------------------------------------------------------------------
 *
 * Name:	LoadScenarios
 *
 * Purpose:	Read and validate a scenario file against a codec.
 *
 * Inputs:	path	- YAML file as described above.
 *		rs	- Codec the scenarios will be run against.
 *
 * Returns:	Scenarios in file order, or an error describing the
 *		first problem found.
 *
 *------------------------------------------------------------------*/

func LoadScenarios(path string, rs *RS) ([]Scenario, error) {
	var data, readErr = os.ReadFile(path)
	if readErr != nil {
		return nil, fmt.Errorf("could not read scenario file: %w", readErr)
	}

	var sf scenarioFile
	var unmarshalErr = yaml.Unmarshal(data, &sf)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("could not parse scenario file %s: %w", path, unmarshalErr)
	}

	if len(sf.Scenarios) == 0 {
		return nil, fmt.Errorf("no scenarios in %s", path)
	}

	for i, sc := range sf.Scenarios {
		if len(sc.Message) != rs.DataSize() {
			return nil, fmt.Errorf("scenario %d (%s): message has %d symbols, codec wants %d",
				i, sc.Name, len(sc.Message), rs.DataSize())
		}
		for _, sym := range sc.Message {
			if sym < 0 || sym > rs.BlockSize() {
				return nil, fmt.Errorf("scenario %d (%s): symbol %d out of range", i, sc.Name, sym)
			}
		}
		for _, f := range sc.Faults {
			if f.Pos < 0 || f.Pos >= rs.BlockSize() {
				return nil, fmt.Errorf("scenario %d (%s): fault position %d out of range", i, sc.Name, f.Pos)
			}
			if f.Value < 0 || f.Value > rs.BlockSize() {
				return nil, fmt.Errorf("scenario %d (%s): fault value %d out of range", i, sc.Name, f.Value)
			}
		}
		switch sc.Expect {
		case "ok", "fail":
		default:
			return nil, fmt.Errorf("scenario %d (%s): expect must be \"ok\" or \"fail\", not %q", i, sc.Name, sc.Expect)
		}
	}

	return sf.Scenarios, nil
}
