// Package resp implements the subset of the RESP wire protocol spoken by
// rodent-server and rodent-cli.
//
// The reader is deliberately lenient:
//
//   - Integer frames that fail to parse decode as 0
//   - Bulk length headers are advisory; the payload is the next line
//   - Arrays hold bulk elements only (no nesting)
//   - Unknown leading bytes decode as Null
//
// Malformed input never produces a parse error. The only errors returned by
// Reader.Parse come from the underlying reader (io.EOF when the peer closes)
// or from the optional line length guard.
package resp
