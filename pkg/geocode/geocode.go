package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"strays-backend/internal/utils"
)

const defaultBaseURL = "https://nominatim.openstreetmap.org"

// Fallback is the city-center coordinate substituted when an address
// cannot be resolved.
var Fallback = Coordinate{Lat: 12.9716, Lng: 77.5946}

type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Resolver turns a free-text address into a coordinate pair.
// found is false when the provider has no match for the address;
// err is non-nil only for transport or provider failures.
type Resolver interface {
	Resolve(ctx context.Context, address string) (coord Coordinate, found bool, err error)
}

type nominatimResolver struct {
	baseURL string
	client  *http.Client
}

func NewNominatimResolver() Resolver {
	baseURL := utils.GetConfig("GEOCODER_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &nominatimResolver{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type nominatimResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

func (r *nominatimResolver) Resolve(ctx context.Context, address string) (Coordinate, bool, error) {
	endpoint := fmt.Sprintf("%s/search?q=%s&format=json&limit=1", r.baseURL, url.QueryEscape(address))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Coordinate{}, false, err
	}
	// Nominatim requires an identifying User-Agent
	req.Header.Set("User-Agent", "strays-backend")

	resp, err := r.client.Do(req)
	if err != nil {
		return Coordinate{}, false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Coordinate{}, false, fmt.Errorf("geocoder returned status %d", resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return Coordinate{}, false, err
	}

	if len(results) == 0 {
		return Coordinate{}, false, nil
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return Coordinate{}, false, err
	}
	lng, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return Coordinate{}, false, err
	}

	return Coordinate{Lat: lat, Lng: lng}, true, nil
}
