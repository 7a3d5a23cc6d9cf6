// Package crypto exposes the commitment primitives used by the fair
// number protocol.
//
// One keyed-hash construction is fixed for the whole protocol:
// HMAC-SHA3-256 over the decimal text of the committed value, with a
// fresh 256-bit key per invocation. Digests and keys travel as lowercase
// hex. Commit and Verify share the same construction so a counterpart can
// recompute the published digest from the revealed key and value.
package crypto
