package classifier

import "fmt"

const (
	TaskSentiment = "sentiment"
	TaskEmotion   = "emotion"
)

const systemPrompt = "You are a precise text analysis assistant. Respond with only the requested classification label in lowercase."

// BuildPrompt renders the instruction sent to the remote model for one
// task. The caller is responsible for length-capping the text.
func BuildPrompt(text, task string) (string, error) {
	switch task {
	case TaskSentiment:
		return fmt.Sprintf("Analyze the sentiment of the following text and respond with 'positive', 'negative', or 'neutral':\n\n%s", text), nil
	case TaskEmotion:
		return fmt.Sprintf("Identify the primary emotion expressed in the following text (e.g., joy, sadness, anger, fear, surprise, disgust):\n\n%s", text), nil
	default:
		return "", fmt.Errorf("%w: unknown task %q", ErrInvalidInput, task)
	}
}
