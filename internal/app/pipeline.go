package app

import (
	"context"

	"diamond_hotels/internal/domain"
)

// ETLService runs the whole pipeline once: fetch feed, map travelItems to
// records, write the JSON file.
type ETLService struct {
	feed domain.FeedClient
	sink domain.HotelSink
}

func NewETLService(feed domain.FeedClient, sink domain.HotelSink) *ETLService {
	return &ETLService{feed: feed, sink: sink}
}

// Run returns the number of records written.
func (s *ETLService) Run(ctx context.Context) (int, error) {
	raw, err := s.feed.FetchFeed(ctx)
	if err != nil {
		return 0, err
	}
	hotels, err := ParseHotels(raw)
	if err != nil {
		return 0, err
	}
	if err := s.sink.WriteHotels(hotels); err != nil {
		return 0, err
	}
	return len(hotels), nil
}
