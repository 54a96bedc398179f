// Package resolve turns a marker set into a platform.Record.
//
// Four independent resolvers each own a disjoint slice of the record:
//
//   - Standard computes the language-standard year and enforces a minimum.
//   - Compiler picks the primary compiler family by precedence, then sets the
//     mimic flags of every other vendor whose symbol is also present.
//   - Architecture picks the CPU family, which fixes bit width and byte order.
//   - OS picks the OS family and unions the capability classes.
//
// Precedence is data, not control flow: each resolver walks an ordered rule
// table top-down and the first matching rule wins. Several vendors define each
// other's symbols, so reordering a table changes results.
//
// Nothing here ever guesses. An environment that matches no rule is reported
// as an *UnsupportedError and no record is produced.
package resolve
