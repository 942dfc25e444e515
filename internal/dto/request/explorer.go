package request

import (
	"bytes"
	"encoding/json"
)

// ExploreRequest selects tables to browse. Limit is raw user input and is
// parsed leniently.
type ExploreRequest struct {
	Tables []string `json:"tables" form:"tables"`
	Limit  RowLimit `json:"limit" form:"limit"`
}

// RowLimit holds the limit as typed by the user. JSON clients may send it
// as a string or as a number.
type RowLimit string

func (l *RowLimit) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*l = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*l = RowLimit(s)
		return nil
	}
	// numbers, booleans and the like are kept verbatim and parsed later
	*l = RowLimit(data)
	return nil
}
