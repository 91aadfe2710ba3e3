package safe

import (
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
)

type resultJSON struct {
	Ok        bool      `json:"ok"`
	Value     any       `json:"value,omitempty"`
	Error     string    `json:"error,omitempty"`
	Trace     Trace     `json:"trace,omitempty"`
	Id        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

// MarshalJSON renders the Result as a structured document: the payload for
// Ok, the fault message and trace for a failure. Results do not unmarshal;
// a failure only ever comes from a real capture, never from decoded data.
func (r Result[T]) MarshalJSON() ([]byte, error) {
	doc := resultJSON{
		Ok:        r.fault == nil,
		Id:        r.id,
		CreatedAt: r.createdAt,
	}
	if r.fault != nil {
		doc.Error = r.fault.Error()
		doc.Trace = r.trace
	} else {
		doc.Value = r.value
	}
	return json.Marshal(doc)
}
