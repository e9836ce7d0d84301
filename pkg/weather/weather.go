package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Lookup is the result of a city weather query: coordinates from the
// geocoder, current conditions from OpenWeatherMap, plus a maps link.
type Lookup struct {
	City        string  `json:"city"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Temperature float64 `json:"temperature_c"`
	Status      string  `json:"status"`
	MapsURL     string  `json:"maps_url"`
}

// ErrCityNotFound is returned when the geocoder has no match.
var ErrCityNotFound = errors.New("city not found")

// Client talks to Nominatim (geocoding) and OpenWeatherMap (conditions).
type Client struct {
	apiKey     string
	geocodeURL string
	weatherURL string
	httpClient *http.Client
}

// NewClient builds a client with the production endpoints.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		geocodeURL: "https://nominatim.openstreetmap.org/search",
		weatherURL: "https://api.openweathermap.org/data/2.5/weather",
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// NewClientWithEndpoints overrides the upstream URLs, used in tests.
func NewClientWithEndpoints(apiKey, geocodeURL, weatherURL string) *Client {
	c := NewClient(apiKey)
	c.geocodeURL = geocodeURL
	c.weatherURL = weatherURL
	return c
}

// LookupCity geocodes the city name and fetches its current weather.
func (c *Client) LookupCity(ctx context.Context, city string) (*Lookup, error) {
	lat, lon, err := c.geocode(ctx, city)
	if err != nil {
		return nil, err
	}

	temp, status, err := c.currentWeather(ctx, lat, lon)
	if err != nil {
		return nil, err
	}

	return &Lookup{
		City:        city,
		Latitude:    lat,
		Longitude:   lon,
		Temperature: temp,
		Status:      status,
		MapsURL:     fmt.Sprintf("https://www.google.com/maps/search/?api=1&query=%v,%v", lat, lon),
	}, nil
}

func (c *Client) geocode(ctx context.Context, city string) (lat, lon float64, err error) {
	q := url.Values{}
	q.Set("q", city)
	q.Set("format", "json")
	q.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.geocodeURL+"?"+q.Encode(), nil)
	if err != nil {
		return 0, 0, err
	}
	// Nominatim requires an identifying user agent
	req.Header.Set("User-Agent", "travelmate")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, 0, fmt.Errorf("geocode request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, 0, fmt.Errorf("geocode request failed: status %d", resp.StatusCode)
	}

	var results []struct {
		Lat string `json:"lat"`
		Lon string `json:"lon"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return 0, 0, fmt.Errorf("decode geocode response failed: %w", err)
	}
	if len(results) == 0 {
		return 0, 0, ErrCityNotFound
	}

	lat, err = strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("parse latitude failed: %w", err)
	}
	lon, err = strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("parse longitude failed: %w", err)
	}
	return lat, lon, nil
}

func (c *Client) currentWeather(ctx context.Context, lat, lon float64) (temp float64, status string, err error) {
	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	q.Set("units", "metric")
	q.Set("appid", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.weatherURL+"?"+q.Encode(), nil)
	if err != nil {
		return 0, "", err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, "", fmt.Errorf("weather request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, "", fmt.Errorf("weather request failed: status %d", resp.StatusCode)
	}

	var body struct {
		Weather []struct {
			Description string `json:"description"`
		} `json:"weather"`
		Main struct {
			Temp float64 `json:"temp"`
		} `json:"main"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, "", fmt.Errorf("decode weather response failed: %w", err)
	}

	if len(body.Weather) > 0 {
		status = body.Weather[0].Description
	}
	return body.Main.Temp, status, nil
}
