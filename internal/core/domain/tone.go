package domain

import "fmt"

// Tone selects the writing style for generated emails and cover letters.
type Tone string

const (
	ToneFormal       Tone = "formal"
	ToneCasual       Tone = "casual"
	ToneEnthusiastic Tone = "enthusiastic"
)

// ParseTone validates a tone string from the CLI or config.
// An empty string selects the formal default.
func ParseTone(s string) (Tone, error) {
	switch Tone(s) {
	case ToneFormal, ToneCasual, ToneEnthusiastic:
		return Tone(s), nil
	case "":
		return ToneFormal, nil
	default:
		return "", fmt.Errorf("%w: unknown tone %q (want formal, casual or enthusiastic)", ErrInvalidInput, s)
	}
}
