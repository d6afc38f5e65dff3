package ports

import "context"

// SpeechSynthesizer renders a script to an audio file and returns its path.
type SpeechSynthesizer interface {
	Synthesize(ctx context.Context, script string) (string, error)
}
