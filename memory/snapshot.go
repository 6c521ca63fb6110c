package memory

import (
	"bytes"
	"encoding/json"
	"sort"
)

// Snapshot is one fetched copy of the shared memory. It is owned by the
// caller that fetched it and never refreshed in place.
type Snapshot map[string]string

// Get returns the value for key and whether it is present.
func (s Snapshot) Get(key string) (string, bool) {
	v, ok := s[key]
	return v, ok
}

// Keys returns the keys in sorted order.
func (s Snapshot) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// JSON renders the snapshot as a JSON object with sorted keys.
// A nil snapshot renders as {}.
func (s Snapshot) JSON() string {
	if s == nil {
		return "{}"
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(map[string]string(s)); err != nil {
		// map[string]string always encodes
		return "{}"
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n"))
}

// String implements fmt.Stringer with the JSON form.
func (s Snapshot) String() string {
	return s.JSON()
}

// decodeSnapshot accepts a JSON object. String values are kept as-is; any
// other value (number, bool, nested object) keeps its JSON text.
func decodeSnapshot(body []byte) (Snapshot, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, err
	}
	if raw == nil {
		// literal null
		return nil, errNotObject
	}

	snap := make(Snapshot, len(raw))
	for k, v := range raw {
		if bytes.Equal(v, []byte("null")) {
			snap[k] = "null"
			continue
		}
		var s string
		if err := json.Unmarshal(v, &s); err == nil {
			snap[k] = s
			continue
		}
		snap[k] = string(v)
	}
	return snap, nil
}
