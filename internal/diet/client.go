package diet

import "context"

// Client abstracts the generative-text service.
type Client interface {
	// Configured reports whether the credential needed for calls is
	// present. Checked before any network attempt.
	Configured() bool

	// GenerateText sends the prompt and returns the raw textual reply.
	GenerateText(ctx context.Context, prompt string) (string, error)
}
