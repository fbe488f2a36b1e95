package crc32fold

import "github.com/speedcrc/crc32fold/internal/crctables"

// gf2Matrix is a 32x32 matrix over GF(2), represented as 32 columns; column
// n is the image of basis vector e_n under the matrix's linear map.
type gf2Matrix [32]uint32

// gf2MatrixTimes applies m to vec: the image of vec under the linear map m
// represents, expressed as the XOR of the columns selected by vec's set
// bits.
func gf2MatrixTimes(m *gf2Matrix, vec uint32) uint32 {
	var sum uint32
	for n := 0; vec != 0; n++ {
		if vec&1 != 0 {
			sum ^= m[n]
		}
		vec >>= 1
	}
	return sum
}

// gf2MatrixSquare computes dst = m*m (composing the linear map with
// itself), i.e. the operator for twice as many zero-bits of shift.
func gf2MatrixSquare(dst, m *gf2Matrix) {
	for n := range dst {
		dst[n] = gf2MatrixTimes(m, m[n])
	}
}

// Combine returns the CRC of the concatenation A‖B given crc1 = CRC(A),
// crc2 = CRC(B) (both computed the normal way, with the standard pre/post
// conditioning), and len2 = len(B) in bytes. This is the classic zlib
// crc32_combine algebra: build the linear operator for "shift the register
// forward by one zero bit" (whose matrix form is exactly advanceOneZeroBit,
// see TestCombineOddMatrixIsAdvanceOneZeroBit), repeatedly square it to get
// operators for larger power-of-two bit counts, and apply the ones selected
// by the binary expansion of 8*len2.
func Combine(crc1, crc2 uint32, len2 int64) uint32 {
	if len2 <= 0 {
		return crc1
	}

	var odd, even gf2Matrix
	odd[0] = crctables.Polynomial
	row := uint32(1)
	for n := 1; n < 32; n++ {
		odd[n] = row
		row <<= 1
	}
	gf2MatrixSquare(&even, &odd) // operator for 2 zero bits
	gf2MatrixSquare(&odd, &even) // operator for 4 zero bits

	// The first operator applied below is for 8 zero bits, so bit k of len2
	// selects the operator for bit k+3 of 8*len2.
	n := uint64(len2)
	for {
		gf2MatrixSquare(&even, &odd)
		if n&1 != 0 {
			crc1 = gf2MatrixTimes(&even, crc1)
		}
		n >>= 1
		if n == 0 {
			break
		}

		gf2MatrixSquare(&odd, &even)
		if n&1 != 0 {
			crc1 = gf2MatrixTimes(&odd, crc1)
		}
		n >>= 1
		if n == 0 {
			break
		}
	}

	return crc1 ^ crc2
}
