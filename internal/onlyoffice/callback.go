package onlyoffice

// Callback status codes sent by the editor server. The integer values are
// dictated by its protocol and must not change.
const (
	StatusEditing        = 1
	StatusReadyForSaving = 2
	StatusSaving         = 3
	StatusClosedNoSave   = 4
)

// CallbackRequest is the body the editor server POSTs when reporting a save
// event. URL points at the edited file and is only present for statuses that
// require saving.
type CallbackRequest struct {
	Status int      `json:"status"`
	URL    string   `json:"url,omitempty"`
	Key    string   `json:"key,omitempty"`
	Users  []string `json:"users,omitempty"`
}

// NeedsSave reports whether this callback carries a file to persist.
func (r CallbackRequest) NeedsSave() bool {
	return r.Status == StatusReadyForSaving || r.Status == StatusSaving
}

// CallbackResponse is the wire shape the editor server expects back:
// {"error":0} acknowledges, any nonzero value reports a failure. The editor
// ignores the HTTP status of this endpoint, so the body carries the result.
type CallbackResponse struct {
	Error int `json:"error"`
}
