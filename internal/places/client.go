// Package places wraps the Google Places and Directions web services used
// for restaurant search, nearby-station search, and walking-route lookups.
package places

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"ramen-review-api/internal/models"

	"github.com/rs/zerolog"
)

// ErrRateLimited signals that the downstream API rejected the request for
// quota reasons. Callers may retry after backing off.
var ErrRateLimited = errors.New("places: rate limited")

const defaultBaseURL = "https://maps.googleapis.com"

// Upstream status strings.
const (
	statusOK             = "OK"
	statusZeroResults    = "ZERO_RESULTS"
	statusOverQueryLimit = "OVER_QUERY_LIMIT"
)

// Client calls the Google Maps web services. Requests are issued in Japanese
// with the jp region bias, matching how results are shown to users.
type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	logger     zerolog.Logger
}

// NewClient creates a places client. An empty baseURL selects the production
// Google endpoint; tests point it at a local server.
func NewClient(apiKey, baseURL string, logger zerolog.Logger) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		apiKey:     apiKey,
		baseURL:    baseURL,
		logger:     logger,
	}
}

type placeResult struct {
	PlaceID          string `json:"place_id"`
	Name             string `json:"name"`
	FormattedAddress string `json:"formatted_address"`
	Vicinity         string `json:"vicinity"`
	Geometry         struct {
		Location struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"location"`
	} `json:"geometry"`
	Types                []string `json:"types"`
	Rating               float64  `json:"rating"`
	UserRatingsTotal     int      `json:"user_ratings_total"`
	FormattedPhoneNumber string   `json:"formatted_phone_number"`
	Website              string   `json:"website"`
}

type placesResponse struct {
	Results      []placeResult `json:"results"`
	Result       *placeResult  `json:"result"`
	Status       string        `json:"status"`
	ErrorMessage string        `json:"error_message"`
}

type directionsResponse struct {
	Routes []struct {
		Legs []struct {
			Distance struct {
				Value int `json:"value"`
			} `json:"distance"`
			Duration struct {
				Value int `json:"value"`
			} `json:"duration"`
		} `json:"legs"`
	} `json:"routes"`
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
}

// SearchText runs a text search for restaurants. The optional location and
// radius bias results toward an area without restricting them.
func (c *Client) SearchText(ctx context.Context, query string, location *models.LatLng, radius int) ([]models.Place, error) {
	params := url.Values{}
	params.Set("query", query)
	if location != nil {
		params.Set("location", formatLatLng(*location))
		if radius > 0 {
			params.Set("radius", strconv.Itoa(radius))
		}
	}

	var resp placesResponse
	if err := c.get(ctx, "/maps/api/place/textsearch/json", params, &resp); err != nil {
		return nil, err
	}
	if err := checkStatus(resp.Status, resp.ErrorMessage); err != nil {
		return nil, err
	}

	results := make([]models.Place, 0, len(resp.Results))
	for _, r := range resp.Results {
		results = append(results, toPlace(r))
	}
	return results, nil
}

// Details fetches the full record for a single place.
func (c *Client) Details(ctx context.Context, placeID string) (*models.Place, error) {
	params := url.Values{}
	params.Set("place_id", placeID)
	params.Set("fields", "place_id,name,formatted_address,geometry,types,rating,user_ratings_total,formatted_phone_number,website")

	var resp placesResponse
	if err := c.get(ctx, "/maps/api/place/details/json", params, &resp); err != nil {
		return nil, err
	}
	if err := checkStatus(resp.Status, resp.ErrorMessage); err != nil {
		return nil, err
	}
	if resp.Result == nil {
		return nil, nil
	}

	place := toPlace(*resp.Result)
	return &place, nil
}

// NearbyStations searches for rail and subway stations around a point.
// Bus-only stops are filtered out.
func (c *Client) NearbyStations(ctx context.Context, location models.LatLng, radius int) ([]models.StationCandidate, error) {
	params := url.Values{}
	params.Set("location", formatLatLng(location))
	params.Set("radius", strconv.Itoa(radius))
	params.Set("type", "train_station")

	var resp placesResponse
	if err := c.get(ctx, "/maps/api/place/nearbysearch/json", params, &resp); err != nil {
		return nil, err
	}
	if err := checkStatus(resp.Status, resp.ErrorMessage); err != nil {
		return nil, err
	}

	var stations []models.StationCandidate
	for _, r := range resp.Results {
		if !isRailStation(r.Types) {
			continue
		}
		address := r.FormattedAddress
		if address == "" {
			address = r.Vicinity
		}
		stations = append(stations, models.StationCandidate{
			PlaceID: r.PlaceID,
			Name:    r.Name,
			Address: address,
			Location: models.LatLng{
				Lat: r.Geometry.Location.Lat,
				Lng: r.Geometry.Location.Lng,
			},
		})
	}
	return stations, nil
}

// WalkingRoute returns the walking distance and duration between two points.
func (c *Client) WalkingRoute(ctx context.Context, origin, destination models.LatLng) (*models.WalkingRoute, error) {
	params := url.Values{}
	params.Set("origin", formatLatLng(origin))
	params.Set("destination", formatLatLng(destination))
	params.Set("mode", "walking")

	var resp directionsResponse
	if err := c.get(ctx, "/maps/api/directions/json", params, &resp); err != nil {
		return nil, err
	}
	if err := checkStatus(resp.Status, resp.ErrorMessage); err != nil {
		return nil, err
	}
	if len(resp.Routes) == 0 || len(resp.Routes[0].Legs) == 0 {
		return nil, nil
	}

	leg := resp.Routes[0].Legs[0]
	return &models.WalkingRoute{
		DistanceMeters:  leg.Distance.Value,
		DurationSeconds: leg.Duration.Value,
	}, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	params.Set("key", c.apiKey)
	params.Set("language", "ja")
	params.Set("region", "jp")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("places: failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("places: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return ErrRateLimited
	}
	if resp.StatusCode != http.StatusOK {
		c.logger.Warn().Str("path", path).Int("status", resp.StatusCode).Msg("places api returned non-200")
		return fmt.Errorf("places: unexpected status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("places: failed to decode response: %w", err)
	}
	return nil
}

func checkStatus(status, message string) error {
	switch status {
	case statusOK, statusZeroResults:
		return nil
	case statusOverQueryLimit:
		return ErrRateLimited
	default:
		return fmt.Errorf("places: api error %s: %s", status, message)
	}
}

func toPlace(r placeResult) models.Place {
	address := r.FormattedAddress
	if address == "" {
		address = r.Vicinity
	}
	return models.Place{
		PlaceID:          r.PlaceID,
		Name:             r.Name,
		FormattedAddress: address,
		Location: models.LatLng{
			Lat: r.Geometry.Location.Lat,
			Lng: r.Geometry.Location.Lng,
		},
		Types:            r.Types,
		Rating:           r.Rating,
		UserRatingsTotal: r.UserRatingsTotal,
		PhoneNumber:      r.FormattedPhoneNumber,
		Website:          r.Website,
	}
}

// isRailStation accepts train and subway stations and rejects bus-only stops.
func isRailStation(types []string) bool {
	var train, subway, bus bool
	for _, t := range types {
		switch t {
		case "train_station":
			train = true
		case "subway_station":
			subway = true
		case "bus_station":
			bus = true
		}
	}
	if bus && !train && !subway {
		return false
	}
	return train || subway
}

func formatLatLng(l models.LatLng) string {
	return strconv.FormatFloat(l.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(l.Lng, 'f', -1, 64)
}
