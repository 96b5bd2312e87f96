// Package channel provides a binary-symmetric-channel bit-flip
// generator and a matching log-likelihood-ratio helper, used only by
// simulation and benchmark harnesses: the core decoder consumes LLRs
// but never constructs them. Kept separate so the core stays agnostic
// to any particular channel model.
package channel
