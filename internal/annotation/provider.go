package annotation

import "context"

// Provider produces annotation results for a video.
// Implementations wrap a real video-intelligence backend or return fixtures.
type Provider interface {
	// Annotate returns the annotation results for the video at the given URI.
	Annotate(ctx context.Context, videoURI string) (*Results, error)
}
