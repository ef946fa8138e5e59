package domain

// SentimentResult is a classifier's verdict for one text.
type SentimentResult struct {
	Label      string  `json:"sentiment_label"`
	Confidence float64 `json:"confidence_score"`
	ModelName  string  `json:"model_name"`
}

// EmotionResult is a classifier's finer-grained affect verdict.
type EmotionResult struct {
	Emotion    string  `json:"emotion"`
	Confidence float64 `json:"confidence_score"`
	ModelName  string  `json:"model_name"`
}

// PostMessage is the decoded queue payload. CreatedAt stays a string
// until the persistence layer normalizes it.
type PostMessage struct {
	PostID    string
	Source    string
	Content   string
	Author    string
	CreatedAt string
}
