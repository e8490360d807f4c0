package domain

import (
	"fmt"
	"net/http"
)

// TriggerResponse is the captured result of a status-source lookup. It is
// immutable once captured and is used for diagnostic summaries only.
type TriggerResponse struct {
	StatusCode int
	Body       []byte
}

// OK reports whether the lookup returned a 2xx status.
func (r *TriggerResponse) OK() bool {
	return r.StatusCode >= http.StatusOK && r.StatusCode < http.StatusMultipleChoices
}

// String renders a short summary suitable for logs.
func (r *TriggerResponse) String() string {
	return fmt.Sprintf("status=%d body=%d bytes", r.StatusCode, len(r.Body))
}
