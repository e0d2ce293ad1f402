package domain

import "context"

// FeedClient fetches the raw XML hotel feed.
type FeedClient interface {
	FetchFeed(ctx context.Context) ([]byte, error)
}

// HotelSink persists the final record list. The one real implementation
// truncate-writes a JSON file.
type HotelSink interface {
	WriteHotels(hotels []Hotel) error
}
