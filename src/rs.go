// Package reedsolomon implements a Reed-Solomon block codec over GF(2^m)
// for short block codes, e.g. RS(15,9) over GF(2^4) or RS(255,239) over
// GF(2^8).  The encoder appends parity symbols so that a received block
// corrupted by a bounded number of symbol errors can be corrected back to
// the original message.
//
// Symbols are stored one per byte, array index equal to polynomial degree.
// The message occupies positions [0,k) and parity positions [k,n).
package reedsolomon

import "fmt"

// Largest number of parity symbols any codec configuration may use.
// Decoder scratch buffers are sized from this so no allocation is
// needed per call.

const MAX_PARITY = 64

// Fixed primitive polynomial for each symbol width.  Indexed by number
// of bits per symbol.  These are the conventional choices; the one for
// 8 bit symbols (0x11d) is the same as FX.25 and IL2P use.

var field_poly = [9]uint{
	0, 0,
	0x07,  // 2 bits: x^2 + x + 1
	0x0b,  // 3 bits: x^3 + x + 1
	0x13,  // 4 bits: x^4 + x + 1
	0x25,  // 5 bits: x^5 + x^2 + 1
	0x43,  // 6 bits: x^6 + x + 1
	0x89,  // 7 bits: x^7 + x^3 + 1
	0x11d, // 8 bits: x^8 + x^4 + x^3 + x^2 + 1
}

// RS is a codec control block.  The lookup tables and the generator
// polynomial are filled in by New and never change afterwards, so any
// number of goroutines may encode and decode through the same RS as
// long as each supplies its own buffers.
type RS struct {
	symsize  int    // Symbol size, bits (2-8).
	nn       int    // Block length, 2^symsize - 1.
	nroots   int    // Generator polynomial degree (number of parity symbols).
	alpha_to []byte // alpha_to[i] = alpha**i.
	index_of []byte // index_of[alpha**i] = i.  index_of[0] is never read.
	genpoly  []byte // Generator polynomial, genpoly[j] is the x^j coefficient.
}

/*-------------------------------------------------------------
 *
 * Name:	New
 *
 * Purpose:	Initialize a Reed-Solomon codec.
 *
 * Inputs:	symsize	- Symbol size in bits, 2 thru 8.
 *		t	- Number of correctable symbol errors per block.
 *			  2t parity symbols are appended to each message.
 *
 * Returns:	Codec control block, or an error for an unusable
 *		parameter combination.
 *
 *--------------------------------------------------------------*/

func New(symsize int, t int) (*RS, error) {
	if symsize < 2 || symsize > 8 {
		return nil, fmt.Errorf("reedsolomon: symbol size %d not in range 2-8", symsize)
	}

	var nn = (1 << symsize) - 1
	var nroots = 2 * t

	if t < 1 {
		return nil, fmt.Errorf("reedsolomon: t = %d, must correct at least one error", t)
	}
	if nroots >= nn {
		return nil, fmt.Errorf("reedsolomon: 2t = %d leaves no room for data in a %d symbol block", nroots, nn)
	}
	if nroots > MAX_PARITY {
		return nil, fmt.Errorf("reedsolomon: 2t = %d exceeds the %d parity symbol limit", nroots, MAX_PARITY)
	}

	var rs = &RS{
		symsize:  symsize,
		nn:       nn,
		nroots:   nroots,
		alpha_to: make([]byte, nn),
		index_of: make([]byte, nn+1),
	}

	// Generate Galois field lookup tables.

	var sr = 1
	for i := 0; i < nn; i++ {
		rs.alpha_to[i] = byte(sr)
		rs.index_of[sr] = byte(i)
		sr <<= 1
		if sr&(1<<symsize) != 0 {
			sr ^= int(field_poly[symsize])
		}
		sr &= nn
	}
	if sr != 1 {
		// Would mean the polynomial in field_poly is not primitive.
		return nil, fmt.Errorf("reedsolomon: field table construction failed for symbol size %d", symsize)
	}

	// Form the code generator polynomial from its roots
	// alpha**1 thru alpha**2t.

	rs.genpoly = make([]byte, nroots+1)
	rs.genpoly[0] = 1
	for i := 1; i <= nroots; i++ {
		var root = rs.alpha_to[i]

		// Multiply genpoly by (x - alpha**i).
		rs.genpoly[i] = 1
		for j := i - 1; j > 0; j-- {
			rs.genpoly[j] = rs.genpoly[j-1] ^ rs.mul(rs.genpoly[j], root)
		}
		rs.genpoly[0] = rs.mul(rs.genpoly[0], root)
	}

	return rs, nil
}

// SymbolSize returns the symbol width in bits.
func (rs *RS) SymbolSize() int {
	return rs.symsize
}

// BlockSize returns the codeword length n in symbols.
func (rs *RS) BlockSize() int {
	return rs.nn
}

// DataSize returns the message length k in symbols.
func (rs *RS) DataSize() int {
	return rs.nn - rs.nroots
}

// ParitySize returns the number of parity symbols 2t.
func (rs *RS) ParitySize() int {
	return rs.nroots
}
