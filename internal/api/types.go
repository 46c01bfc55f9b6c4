package api

type startRequest struct {
	URL string `json:"url"`
}

type startResponse struct {
	TaskID string `json:"task_id"`
}

// TaskStatus mirrors the backend's task record.
type TaskStatus struct {
	Status          string  `json:"status"`
	ProcessedChunks int     `json:"processed_chunks"`
	TotalChunks     int     `json:"total_chunks"`
	VideoID         string  `json:"video_id"`
	Error           string  `json:"error"`
	CreatedAt       float64 `json:"created_at"`
}

// Sentence is one transcript unit: English source text with its Devanagari
// pronunciation and Hindi translation, tied to a playback timestamp.
type Sentence struct {
	Key                string  `json:"key"`
	StartTime          string  `json:"start_time"`
	EndTime            string  `json:"end_time"`
	StartSeconds       float64 `json:"start_time_float"`
	English            string  `json:"english"`
	PronunciationHindi string  `json:"pronunciation_hindi"`
	TranslationHindi   string  `json:"translation_hindi"`
}

// TranscriptPage is one incremental transcript fetch. LastKey is the
// pagination cursor to pass on the next request; it is empty when the
// backend had nothing newer.
type TranscriptPage struct {
	Sentences []Sentence `json:"sentences"`
	LastKey   string     `json:"last_key"`
}
