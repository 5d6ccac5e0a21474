package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ID is a catalog identifier. Fixtures and clients send it either as a JSON
// string or as a JSON number; both decode to the same textual value so that
// 7 and "7" compare equal. It is always encoded back as a string.
type ID string

// String returns the textual form of the identifier.
func (id ID) String() string { return string(id) }

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a string or a number: %w", err)
	}
	*id = ID(n.String())
	return nil
}
