// Package memory is the client for the shared remote key-value memory store.
//
// The store is a single HTTP endpoint:
//   - GET  <endpoint> returns a JSON object mapping keys to values
//   - POST <endpoint> with {"key": "value"} stores one key, 200 means success
//
// Nothing is cached: every Fetch is a network round trip, and no timeout is
// added beyond what the supplied *http.Client carries.
package memory
