package render

import "encoding/json"

// Selection is the result an interactive rendering collaborator hands back
// after user interaction: the identifiers of the chosen master rows and of
// the chosen detail rows. The caller surfaces it as-is.
type Selection struct {
	// Rows holds the names of the selected master records.
	Rows []string `json:"rows"`

	// Calls holds the callIds of the selected detail records.
	Calls []string `json:"calls"`
}

// Empty reports whether nothing was selected.
func (s Selection) Empty() bool {
	return len(s.Rows) == 0 && len(s.Calls) == 0
}

// Encode serializes the selection as JSON; interactive renderers use this as
// their output payload.
func (s Selection) Encode() ([]byte, error) {
	return json.Marshal(s)
}

// DecodeSelection parses a serialized selection payload.
func DecodeSelection(data []byte) (Selection, error) {
	var s Selection
	if err := json.Unmarshal(data, &s); err != nil {
		return Selection{}, err
	}
	return s, nil
}
