package interfaces

import (
	"context"

	domaintypes "quatex/internal/domain/types"
)

// Assistant answers free-text questions given the prior conversation. It
// only ever exchanges plain text with the caller.
type Assistant interface {
	Ask(ctx context.Context, history []domaintypes.Turn, utterance string) (string, error)
}
