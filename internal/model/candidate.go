package model

// Candidate is a provisional field value produced by one extraction
// strategy. Candidates live only for the duration of a single extraction
// call; selection and validation decide which one, if any, reaches the
// record.
type Candidate struct {
	Field string `json:"field"`          // field the candidate belongs to
	Value string `json:"value"`          // matched text, possibly still raw
	Rank  int    `json:"rank"`           // strategy position, lower tried first
	Line  int    `json:"line,omitempty"` // source line index, -1 when unknown
}
