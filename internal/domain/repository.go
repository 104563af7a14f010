package domain

import "context"

// SingletonRepository is the data-access contract for the replace-wholesale
// collections (profile, education, experience, growth mindset, experiments,
// contact section, footer). Get returns (nil, nil) when the document is
// absent; Replace upserts against an empty filter so the collection never
// holds more than one document.
type SingletonRepository[T any] interface {
	Get(ctx context.Context) (*T, error)
	Replace(ctx context.Context, doc *T) error
}
