package reedsolomon

/*------------------------------------------------------------------
 *
 * Purpose:	Demonstration and self-test driver behind cmd/rsdemo.
 *
 * Description:	Exercises the codec from the outside: encode a message,
 *		knock some symbols over, run the decoder, and compare.
 *		Two modes:
 *
 *		  - Random mode (default): random messages with a chosen
 *		    number of injected symbol errors per block.
 *
 *		  - Scenario mode (-f): replay scripted faults from a
 *		    YAML file, each with an expected outcome.
 *
 *------------------------------------------------------------------*/

import (
	"bytes"
	"fmt"
	"math/rand"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
)

func DemoMain() {
	var symbolSize = pflag.IntP("symbol-size", "m", 4, "Symbol width in bits, 2 thru 8.")
	var capacity = pflag.IntP("capacity", "t", 3, "Correctable symbol errors per block.")
	var blockCount = pflag.IntP("block-count", "n", 10, "Number of random blocks to run.")
	var errorCount = pflag.IntP("errors", "e", -1, "Symbol errors injected into each random block.  Default is the full capacity.")
	var seed = pflag.Int64P("seed", "s", 42, "Seed for the random message and fault generator.")
	var scenarioPath = pflag.StringP("scenario", "f", "", "Replay scenarios from this YAML file instead of random blocks.")
	var verbose = pflag.BoolP("verbose", "v", false, "Dump each block before and after corruption (scenario mode: after only).")
	var showVersion = pflag.Bool("version", false, "Print version and exit.")

	pflag.Parse()

	if *showVersion {
		printVersion()
		return
	}

	var logger = log.New(os.Stderr)
	if *verbose {
		logger.SetLevel(log.DebugLevel)
	}

	var rs, newErr = New(*symbolSize, *capacity)
	if newErr != nil {
		logger.Fatal("Bad codec parameters.", "err", newErr)
	}

	logger.Info("Codec ready.",
		"n", rs.BlockSize(), "k", rs.DataSize(), "parity", rs.ParitySize(), "bits", rs.SymbolSize())

	var failures int
	if *scenarioPath != "" {
		failures = runScenarios(logger, rs, *scenarioPath, *verbose)
	} else {
		failures = runRandomBlocks(logger, rs, *blockCount, *errorCount, *seed, *verbose)
	}

	if failures > 0 {
		logger.Error("Some blocks did not behave as expected.", "failures", failures)
		os.Exit(1)
	}
	logger.Info("All blocks behaved as expected.")
}

func runRandomBlocks(logger *log.Logger, rs *RS, count int, nerrors int, seed int64, verbose bool) int {
	if nerrors < 0 {
		nerrors = rs.ParitySize() / 2
	}

	var rng = rand.New(rand.NewSource(seed))
	var failures = 0

	for b := 0; b < count; b++ {
		var msg = make([]byte, rs.DataSize())
		for i := range msg {
			msg[i] = byte(rng.Intn(rs.BlockSize() + 1))
		}

		var block = rs.Encode(msg)
		if verbose {
			fmt.Printf("Block %d as sent:\n%s", b, hex_dump(block))
		}

		// Corrupt nerrors distinct positions, each with a nonzero
		// symbol flip.

		var hit = make(map[int]bool)
		for len(hit) < nerrors && len(hit) < rs.BlockSize() {
			var pos = rng.Intn(rs.BlockSize())
			if hit[pos] {
				continue
			}
			hit[pos] = true
			block[pos] ^= byte(1 + rng.Intn(rs.BlockSize()))
		}
		if verbose {
			fmt.Printf("Block %d as received:\n%s", b, hex_dump(block))
		}

		var fixed, ok = rs.Correct(block)

		var within = nerrors <= rs.ParitySize()/2
		switch {
		case !ok && within:
			logger.Error("Correctable block reported as uncorrectable.", "block", b, "errors", nerrors)
			failures++
		case ok && within && !bytes.Equal(block[:rs.DataSize()], msg):
			logger.Error("Decoder returned the wrong message.", "block", b)
			failures++
		case ok:
			logger.Debug("Block repaired.", "block", b, "fixed", fixed)
		default:
			// Beyond capacity; failure is the honest answer.
			logger.Debug("Block rejected.", "block", b, "errors", nerrors)
		}
	}

	return failures
}

func runScenarios(logger *log.Logger, rs *RS, path string, verbose bool) int {
	var scenarios, loadErr = LoadScenarios(path, rs)
	if loadErr != nil {
		logger.Fatal("Could not load scenarios.", "err", loadErr)
	}

	var failures = 0

	for _, sc := range scenarios {
		var msg = make([]byte, len(sc.Message))
		for i, sym := range sc.Message {
			msg[i] = byte(sym)
		}

		var block = rs.Encode(msg)
		for _, f := range sc.Faults {
			block[f.Pos] = byte(f.Value)
		}
		if verbose {
			fmt.Printf("Scenario %q as received:\n%s", sc.Name, hex_dump(block))
		}

		var decoded, ok = rs.Decode(block)

		switch {
		case sc.Expect == "ok" && !ok:
			logger.Error("Expected recovery but decoding failed.", "scenario", sc.Name)
			failures++
		case sc.Expect == "ok" && !bytes.Equal(decoded, msg):
			logger.Error("Recovered message differs from the original.", "scenario", sc.Name)
			failures++
		case sc.Expect == "fail" && ok:
			logger.Error("Expected failure but decoding succeeded.", "scenario", sc.Name)
			failures++
		default:
			logger.Info("Scenario behaved as expected.", "scenario", sc.Name, "expect", sc.Expect)
		}
	}

	return failures
}
