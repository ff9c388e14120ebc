package assistant

// ProcessTextRequest is the query of GET /process/
type ProcessTextRequest struct {
	Text string `query:"text" validate:"notblank"`
}

// VoiceProcessRequest is the body of POST /voice-process/.
// A missing text field is processed as an empty transcription.
type VoiceProcessRequest struct {
	Text string `json:"text"`
}

// ListRequest represents pagination query parameters for the record lists
type ListRequest struct {
	Page     int `query:"page" validate:"min=1,max=1000000"`
	PageSize int `query:"page_size" validate:"min=1,max=100"`
}
