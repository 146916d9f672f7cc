package confluence

import (
	"bytes"
	"encoding/json"
)

// Space is a Confluence space as returned by the space listing endpoint.
// Only the fields the server reads are typed; everything else stays in the
// raw payload.
type Space struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description struct {
		Plain struct {
			Value string `json:"value"`
		} `json:"plain"`
	} `json:"description"`
}

// spacesResponse is the envelope of GET /wiki/rest/api/space
type spacesResponse struct {
	Results []Space `json:"results"`
}

// searchResponse is the envelope of GET /wiki/rest/api/search
type searchResponse struct {
	Results json.RawMessage `json:"results"`
}

// Pretty renders raw JSON with 2-space indentation. Payloads are passed
// through untouched otherwise, so upstream fields survive verbatim.
func Pretty(raw []byte) (string, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return "", err
	}
	return buf.String(), nil
}
