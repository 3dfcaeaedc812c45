package model

// ScheduleDocument is a stored study schedule. ID is the hex form of the
// identifier the document store assigned on insert. Schedule holds the
// model-generated time table plus the original planning payload under the
// keys the client expects ("time table" and "gathered_data").
type ScheduleDocument struct {
	ID       string         `json:"_id" bson:"-"`
	UserID   string         `json:"user_id" bson:"user_id"`
	Username string         `json:"username" bson:"username"`
	Schedule map[string]any `json:"schedule" bson:"schedule"`
}

// GenerateRequest carries the free-form planning parameters as a JSON
// string in Text.
type GenerateRequest struct {
	Text string `json:"text"`
}

// GenerateResponse is the envelope returned by /generate-time-table/.
type GenerateResponse struct {
	Status    int    `json:"status"`
	Message   string `json:"message"`
	MongodbID string `json:"Mongodb_id,omitempty"`
	UserID    string `json:"user_id,omitempty"`
}

// DocumentRequest carries a document identifier in Text. Used by the
// fetch and delete endpoints.
type DocumentRequest struct {
	Text string `json:"text"`
}

// FetchResponse is the envelope returned by /fetch-time-table/.
type FetchResponse struct {
	Status int               `json:"status"`
	Data   *ScheduleDocument `json:"data,omitempty"`
}

// DeleteResponse is the envelope returned by /delete-time-table/.
type DeleteResponse struct {
	Output string `json:"output"`
}

// ChatRequest is the body of /study-buddy-chatbot/. MongodbID references
// the schedule the conversation is about; the caller must own it.
type ChatRequest struct {
	Text      string `json:"text"`
	MongodbID string `json:"mongodb_id"`
}

// ScoreUpdateRequest is the body of /score-data-update/. JSONData is the
// new score-tracking payload, JSON-encoded.
type ScoreUpdateRequest struct {
	MongodbID string `json:"mongodb_id"`
	JSONData  string `json:"json_data"`
}

// StatusResponse is the generic failure envelope.
type StatusResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}
