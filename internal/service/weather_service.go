package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"travelmate/pkg/apperr"
	"travelmate/pkg/redis"
	"travelmate/pkg/weather"

	"go.uber.org/zap"
)

// WeatherService answers "what is it like in <city>" for the trip planner,
// caching lookups so repeated queries for the same destination do not hit
// the external APIs.
type WeatherService struct {
	client   *weather.Client
	cacheTTL time.Duration
	log      *zap.Logger
}

func NewWeatherService(client *weather.Client, cacheTTL time.Duration) *WeatherService {
	return &WeatherService{client: client, cacheTTL: cacheTTL, log: zap.L()}
}

// Lookup geocodes the city and returns its current weather.
func (s *WeatherService) Lookup(ctx context.Context, city string) (*weather.Lookup, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, apperr.New(apperr.KindValidation, "city is required")
	}

	cacheKey := "tm:weather:" + strings.ToLower(city)
	var cached weather.Lookup
	if hit, err := redis.GetJSON(cacheKey, &cached); err == nil && hit {
		return &cached, nil
	}

	result, err := s.client.LookupCity(ctx, city)
	if err != nil {
		if errors.Is(err, weather.ErrCityNotFound) {
			return nil, apperr.New(apperr.KindNotFound, "city not found")
		}
		return nil, apperr.Wrap(err, apperr.KindInternal, "weather lookup failed")
	}

	if err := redis.CacheJSON(cacheKey, result, s.cacheTTL); err != nil {
		s.log.Warn("weather cache write failed", zap.Error(err))
	}
	return result, nil
}
