package reedsolomon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_New_accessors(t *testing.T) {
	var testData = []struct {
		symsize int
		t       int
		n       int
		k       int
		parity  int
	}{
		{4, 3, 15, 9, 6},     // The canonical RS(15,9).
		{8, 8, 255, 239, 16}, // FX.25's RS(255,239).
		{8, 16, 255, 223, 32},
		{2, 1, 3, 1, 2},
	}

	for _, testDatum := range testData {
		var rs, err = New(testDatum.symsize, testDatum.t)
		require.NoError(t, err)

		assert.Equal(t, testDatum.symsize, rs.SymbolSize())
		assert.Equal(t, testDatum.n, rs.BlockSize())
		assert.Equal(t, testDatum.k, rs.DataSize())
		assert.Equal(t, testDatum.parity, rs.ParitySize())
	}
}

func Test_New_badParameters(t *testing.T) {
	var testData = []struct {
		symsize int
		t       int
	}{
		{1, 1},  // Symbol too narrow.
		{9, 1},  // Symbol too wide for byte storage.
		{4, 0},  // Must correct at least one error.
		{4, -1},
		{4, 8},  // 2t = 16 > n = 15, no room for data.
		{8, 40}, // 2t = 80 over the parity limit.
	}

	for _, testDatum := range testData {
		var rs, err = New(testDatum.symsize, testDatum.t)
		assert.Error(t, err, "New(%d, %d) should be rejected", testDatum.symsize, testDatum.t)
		assert.Nil(t, rs)
	}
}

func Test_fieldTables(t *testing.T) {
	for symsize := 2; symsize <= 8; symsize++ {
		var rs, err = New(symsize, 1)
		require.NoError(t, err)

		var nn = rs.BlockSize()

		// Every nonzero element round-trips through the tables.
		for x := 1; x <= nn; x++ {
			assert.EqualValues(t, x, rs.alpha_to[rs.index_of[x]])
		}

		// alpha**0 = 1 and the antilog table is cyclic with period n.
		assert.EqualValues(t, 1, rs.alpha_to[0])
		assert.EqualValues(t, 1, rs.pow(2, nn))
	}
}

func Test_generatorPolynomial(t *testing.T) {
	var rs, err = New(4, 3)
	require.NoError(t, err)

	// Worked out by hand for GF(16) with p(x) = x^4 + x + 1.
	assert.Equal(t, []byte{12, 10, 12, 3, 9, 7, 1}, rs.genpoly)

	// g(alpha**i) = 0 for every root i = 1 thru 2t, for all configurations.
	for symsize := 2; symsize <= 8; symsize++ {
		var maxT = min(((1<<symsize)-2)/2, MAX_PARITY/2)
		for tcap := 1; tcap <= maxT; tcap++ {
			var rs2, err2 = New(symsize, tcap)
			require.NoError(t, err2)

			assert.EqualValues(t, 1, rs2.genpoly[rs2.ParitySize()], "generator must be monic")

			for i := 1; i <= rs2.ParitySize(); i++ {
				var root = rs2.alpha_to[i]
				var acc byte
				for j := rs2.ParitySize(); j >= 0; j-- {
					acc = rs2.mul(acc, root) ^ rs2.genpoly[j]
				}
				assert.EqualValues(t, 0, acc, "g(alpha**%d) != 0 for symsize %d t %d", i, symsize, tcap)
			}
		}
	}
}
