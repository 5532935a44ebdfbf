package domain

import "encoding/json"

// Job is one job-application record. Clients control the shape entirely; the
// service only interprets the numeric "id" key. JSON decoding produces
// float64 for numbers, so ID coerces the common numeric representations.
type Job map[string]any

// IDKey is the reserved key holding a record's numeric identifier.
const IDKey = "id"

// ID extracts the numeric identifier from the record. The second return value
// is false when the key is absent or not a usable whole number.
func (j Job) ID() (int, bool) {
	v, ok := j[IDKey]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n != float64(int(n)) {
			return 0, false
		}
		return int(n), true
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return int(i), true
	default:
		return 0, false
	}
}

// HasID reports whether the record matches the given identifier.
func (j Job) HasID(id int) bool {
	got, ok := j.ID()
	return ok && got == id
}

// Merge returns a shallow-merged copy of the record with patch's keys written
// over the receiver's. Patch keys win on collision. Neither input is mutated.
func (j Job) Merge(patch Job) Job {
	merged := make(Job, len(j)+len(patch))
	for k, v := range j {
		merged[k] = v
	}
	for k, v := range patch {
		merged[k] = v
	}
	return merged
}

// Clone returns a shallow copy of the record.
func (j Job) Clone() Job {
	c := make(Job, len(j))
	for k, v := range j {
		c[k] = v
	}
	return c
}
