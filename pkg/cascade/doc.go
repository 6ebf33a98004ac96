// Package cascade chains three rotors into a stepping substitution machine.
//
// Every byte of a message passes through rotor 1, 2 and 3 in that order.
// After each byte rotor 1 steps; rotor 2 steps when rotor 1 wraps to zero and
// rotor 3 steps when both wrap together, like the digits of an odometer. All
// rotors are reset once the message is done, so a Machine gives the same
// output for the same input every time.
//
// Stepping happens for every byte, letters or not. Because the shifts are
// additive, applying Process twice does not recover the plaintext; use
// Decrypt for that.
//
// A Machine is not safe for concurrent use.
package cascade
