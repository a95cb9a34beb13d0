package audit

import "time"

// Entry is a single audit record: one interpreted console line.
type Entry struct {
	Seq      uint64    `json:"seq"`
	Time     time.Time `json:"ts"`
	PrevHash string    `json:"prev_hash"`
	Session  string    `json:"session"`            // console session ID
	Line     string    `json:"line"`               // raw line as typed
	Commands []string  `json:"commands,omitempty"` // atomic commands invoked
	Filters  []string  `json:"filters,omitempty"`  // filter invocations applied
	Success  bool      `json:"success"`
	Error    string    `json:"error,omitempty"`
	Duration float64   `json:"duration_ms"`
	Hash     string    `json:"hash"` // SHA-256 of this entry (with hash field empty)
}
