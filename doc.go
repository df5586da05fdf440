// Package termctl switches a terminal between the main and alternate
// screen buffers, with paired raw-mode control and guaranteed restoration.
//
// Features:
//   - Alternate screen enter/leave with exact-inverse teardown
//   - Raw mode (per-key, unbuffered input) composed with buffer switching
//   - Escape-sequence backend for VT-capable terminals, native console
//     backend for legacy Windows hosts
//   - Guard and WithAlternate helpers that restore the terminal on every
//     exit path, panics included
//
// The library writes directly to the supplied output stream; it never
// opens or closes that stream and runs no background goroutines. Mode
// changes on a single terminal must be serialized by the caller.
package termctl
