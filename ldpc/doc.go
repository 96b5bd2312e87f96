// Package ldpc is the public façade over binary LDPC error correction
// with rate adaption: sparse mother matrix (matrix package), rate
// adaption (rateadapt package), GF(2) encoding, and a sum-product
// belief-propagation decoder, combined into one Code type acting as the
// rate controller.
//
// Bit containers are plain []byte with each entry 0 or 1: a narrow
// to-bool/from-bool capability pair rather than a generic bit type — a
// single concrete instantiation is all QKD reconciliation matrices need
// in practice. See bits.go for the two conversion helpers.
package ldpc
