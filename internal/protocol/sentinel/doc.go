// Package sentinel owns the text wire contract spoken to the shell session.
//
// Ownership boundary:
// - attempt framing on the write side
// - output/status scanning on the read side
//
// The format brackets the exit status of each attempt between two copies of a
// fixed sentinel line, so the reader can split arbitrary command output from
// status metadata without length prefixes. The sentinel is used unescaped:
// command output that happens to contain the literal token corrupts framing.
// That hazard is a frozen property of the wire format, which existing shell
// sessions already speak; changing it breaks compatibility.
package sentinel
