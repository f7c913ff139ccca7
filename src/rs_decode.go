package reedsolomon

/*-------------------------------------------------------------
 *
 * Name:	Correct
 *
 * Purpose:	Check a received block and attempt to repair symbol errors
 *		in place.
 *
 * Inputs:	block	- BlockSize() symbols, message followed by parity,
 *			  possibly corrupted.
 *
 * Outputs:	block	- With up to t symbol errors repaired.
 *
 * Returns:	Number of symbols corrected and true, or 0 and false when
 *		the block is uncorrectable (more than t errors, or an
 *		error pattern with no consistent explanation).  On failure
 *		the block is left exactly as it came in.
 *
 * Description:	The usual pipeline: syndromes, Berlekamp-Massey for the
 *		error locator polynomial, Chien search for the error
 *		positions, Forney for the error magnitudes.
 *
 *--------------------------------------------------------------*/

func (rs *RS) Correct(block []byte) (int, bool) {
	Assert(len(block) == rs.nn)

	var t = rs.nroots / 2

	// Syndromes s[i-1] = block(alpha**i) for i = 1 thru 2t,
	// by Horner evaluation from the top coefficient down.

	var s [MAX_PARITY]byte
	var syn_error byte

	for i := 0; i < rs.nroots; i++ {
		var a = rs.alpha_to[i+1]
		var acc byte
		for j := rs.nn - 1; j >= 0; j-- {
			acc = rs.mul(acc, a) ^ block[j]
		}
		s[i] = acc
		syn_error |= acc
	}

	if syn_error == 0 {
		// Already a codeword.  Nothing to repair.
		return 0, true
	}

	// Berlekamp-Massey.  lambda is the error locator polynomial of
	// minimal degree consistent with the syndromes, b the previous
	// candidate kept around for the update step.

	var lambda [MAX_PARITY + 1]byte
	var b [MAX_PARITY + 1]byte
	var tpoly [MAX_PARITY + 1]byte

	lambda[0] = 1
	b[0] = 1
	var el = 0 // Current recurrence length L.

	for step := 1; step <= rs.nroots; step++ {
		// Discrepancy for this step.
		var discr byte
		for i := 0; i < step; i++ {
			discr ^= rs.mul(lambda[i], s[step-1-i])
		}

		if discr == 0 {
			// b(x) <- x*b(x)
			copy(b[1:rs.nroots+1], b[:rs.nroots])
			b[0] = 0
		} else {
			// tpoly(x) <- lambda(x) - discr*x*b(x)
			tpoly[0] = lambda[0]
			for i := 0; i < rs.nroots; i++ {
				tpoly[i+1] = lambda[i+1] ^ rs.mul(discr, b[i])
			}
			if 2*el <= step-1 {
				el = step - el
				// b(x) <- lambda(x) / discr
				var dinv = rs.inv(discr)
				for i := 0; i <= rs.nroots; i++ {
					b[i] = rs.mul(dinv, lambda[i])
				}
			} else {
				// b(x) <- x*b(x)
				copy(b[1:rs.nroots+1], b[:rs.nroots])
				b[0] = 0
			}
			lambda = tpoly
		}
	}

	var deg_lambda = 0
	for i := 0; i <= rs.nroots; i++ {
		if lambda[i] != 0 {
			deg_lambda = i
		}
	}

	if deg_lambda > t {
		// More errors than the code can locate.
		return 0, false
	}

	// Chien search.  Position e is in error iff lambda(alpha**-e) = 0.

	var loc [MAX_PARITY]int
	var count = 0

	for e := 0; e < rs.nn && count < deg_lambda; e++ {
		var x = rs.alpha_to[rs.modnn(rs.nn-e)]
		var q byte
		for j := deg_lambda; j >= 0; j-- {
			q = rs.mul(q, x) ^ lambda[j]
		}
		if q == 0 {
			loc[count] = e
			count++
		}
	}

	if count != deg_lambda {
		// deg(lambda) unequal to number of roots means an
		// uncorrectable error was detected.
		return 0, false
	}

	// Error evaluator omega(x) = s(x)*lambda(x) mod x^2t.

	var omega [MAX_PARITY]byte
	for i := 0; i < rs.nroots; i++ {
		var acc byte
		for j := 0; j <= i && j <= deg_lambda; j++ {
			acc ^= rs.mul(lambda[j], s[i-j])
		}
		omega[i] = acc
	}

	// Forney: magnitude at position e is omega(X^-1) / lambda'(X^-1)
	// with X = alpha**e.  The formal derivative keeps only the odd
	// degree terms of lambda.

	var val [MAX_PARITY]byte

	for i := 0; i < count; i++ {
		var xinv = rs.alpha_to[rs.modnn(rs.nn-loc[i])]

		var num byte
		for j := rs.nroots - 1; j >= 0; j-- {
			num = rs.mul(num, xinv) ^ omega[j]
		}

		var den byte
		for j := 1; j <= deg_lambda; j += 2 {
			den ^= rs.mul(lambda[j], rs.pow(xinv, j-1))
		}

		if den == 0 {
			return 0, false
		}

		var y = rs.mul(num, rs.inv(den))
		if y == 0 {
			return 0, false
		}
		val[i] = y
	}

	// All magnitudes check out; only now touch the caller's block.

	for i := 0; i < count; i++ {
		block[loc[i]] ^= val[i]
	}

	// A pattern of more than t errors can still produce a locator of
	// plausible degree whose "corrections" do not land on a codeword.
	// Recompute the syndromes so such a block is reported as
	// uncorrectable instead of silently returned as junk.

	for i := 0; i < rs.nroots; i++ {
		var a = rs.alpha_to[i+1]
		var acc byte
		for j := rs.nn - 1; j >= 0; j-- {
			acc = rs.mul(acc, a) ^ block[j]
		}
		if acc != 0 {
			for u := 0; u < count; u++ {
				block[loc[u]] ^= val[u]
			}
			return 0, false
		}
	}

	return count, true
}

/*-------------------------------------------------------------
 *
 * Name:	Decode
 *
 * Purpose:	Value form of Correct.  Extract the message from a
 *		received block without modifying it.
 *
 * Inputs:	received - BlockSize() symbols, possibly corrupted.
 *
 * Returns:	The DataSize() message symbols and true, or nil and
 *		false when the block is uncorrectable.
 *
 *--------------------------------------------------------------*/

func (rs *RS) Decode(received []byte) ([]byte, bool) {
	Assert(len(received) == rs.nn)

	var scratch = make([]byte, rs.nn)
	copy(scratch, received)

	var _, ok = rs.Correct(scratch)
	if !ok {
		return nil, false
	}

	return scratch[:rs.DataSize()], true
}
