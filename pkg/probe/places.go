package probe

import (
	"context"
	"net/url"

	"googlemaps.github.io/maps"

	"github.com/yaklabco/seolint/internal/logging"
)

// ListingResult reports whether the business behind the site appears to have
// a Google Places listing.
type ListingResult struct {
	Found  bool    `json:"found"`
	Name   string  `json:"name,omitempty"`
	Rating float32 `json:"rating,omitempty"`
	Query  string  `json:"query"`
}

// newMapsClient is a variable so tests can inject a stub.
var newMapsClient = func(apiKey string) (placesSearcher, error) {
	return maps.NewClient(maps.WithAPIKey(apiKey))
}

// placesSearcher is the slice of the maps client the probe needs.
type placesSearcher interface {
	TextSearch(ctx context.Context, r *maps.TextSearchRequest) (maps.PlacesSearchResponse, error)
}

// checkListing searches Places for the site's hostname and reports the best
// match. A miss is a valid result, not a failure.
func (p *Prober) checkListing(ctx context.Context, target *url.URL, apiKey string) *ListingResult {
	client, err := newMapsClient(apiKey)
	if err != nil {
		p.logger.Debug("places probe failed",
			logging.FieldProbe, "places", logging.FieldError, err)
		return nil
	}

	query := target.Hostname()
	resp, err := client.TextSearch(ctx, &maps.TextSearchRequest{Query: query})
	if err != nil {
		p.logger.Debug("places probe failed",
			logging.FieldProbe, "places", logging.FieldError, err)
		return nil
	}

	result := &ListingResult{Query: query}
	if len(resp.Results) > 0 {
		result.Found = true
		result.Name = resp.Results[0].Name
		result.Rating = resp.Results[0].Rating
	}
	return result
}
