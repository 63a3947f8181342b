package response

import (
	"encoding/json"
	"time"
)

// Resp is the standard JSON response body for error and system endpoints.
// Fixture payloads (item arrays and objects) are sent bare, without it.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

// Date is a date-only value that marshals as DateFormat.
// Marshaling normalizes to UTC so the output is byte-stable regardless of the
// host timezone; schema-driven consumers compare it verbatim.
type Date time.Time

// MarshalJSON implements json.Marshaler for Date.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).UTC().Format(DateFormat))
}

// DateTime is a timestamp that marshals as DateTimeFormat.
type DateTime time.Time

// MarshalJSON implements json.Marshaler for DateTime.
func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).UTC().Format(DateTimeFormat))
}
