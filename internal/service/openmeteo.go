// Package service holds thin clients for the upstream APIs the tools wrap.
// Each client is stateless given its arguments, safe for concurrent use and
// relies on the shared http.Client's timeout for cancellation.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

const (
	defaultGeocodeURL  = "https://geocoding-api.open-meteo.com/v1/search"
	defaultForecastURL = "https://api.open-meteo.com/v1/forecast"

	geocodeCacheTTL     = 10 * time.Minute
	geocodeFetchTimeout = 10 * time.Second
)

// ErrLocationNotFound means the geocoder returned no match for a place name.
var ErrLocationNotFound = errors.New("location not found")

type Location struct {
	Name      string
	Latitude  float64
	Longitude float64
}

type Weather struct {
	TemperatureF float64
	Humidity     float64
}

// geocodeCache memoizes geocoder lookups. Place names repeat heavily across
// runs and the geocoder is the slower of the two Open-Meteo calls, so
// concurrent lookups for the same name share a single fetch via singleflight.
type geocodeCache struct {
	mu    sync.RWMutex
	store map[string]geocodeEntry
	sf    singleflight.Group
}

type geocodeEntry struct {
	loc       Location
	expiresAt time.Time
}

func (c *geocodeCache) get(key string) (Location, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.store[key]
	if !ok || time.Now().After(e.expiresAt) {
		return Location{}, false
	}
	return e.loc, true
}

func (c *geocodeCache) set(key string, loc Location) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store[key] = geocodeEntry{loc: loc, expiresAt: time.Now().Add(geocodeCacheTTL)}
}

// OpenMeteoService resolves place names and fetches current conditions.
type OpenMeteoService struct {
	hc          *http.Client
	geocodeURL  string
	forecastURL string
	cache       *geocodeCache
}

func NewOpenMeteoService(hc *http.Client, geocodeURL, forecastURL string) *OpenMeteoService {
	if geocodeURL == "" {
		geocodeURL = defaultGeocodeURL
	}
	if forecastURL == "" {
		forecastURL = defaultForecastURL
	}
	return &OpenMeteoService{
		hc:          hc,
		geocodeURL:  geocodeURL,
		forecastURL: forecastURL,
		cache:       &geocodeCache{store: make(map[string]geocodeEntry)},
	}
}

// Geocode resolves a place name to coordinates, serving repeats from cache.
func (s *OpenMeteoService) Geocode(ctx context.Context, name string) (Location, error) {
	if loc, ok := s.cache.get(name); ok {
		log.Debug().Str("location", name).Msg("geocode cache hit")
		return loc, nil
	}

	v, err, _ := s.cache.sf.Do(name, func() (interface{}, error) {
		if loc, ok := s.cache.get(name); ok {
			return loc, nil
		}
		// The fetch is shared by every waiter on this key, so it must not
		// die with the first caller's context. Detach it and bound it with
		// its own timeout instead.
		fctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), geocodeFetchTimeout)
		defer cancel()
		loc, err := s.geocode(fctx, name)
		if err != nil {
			return Location{}, err
		}
		s.cache.set(name, loc)
		return loc, nil
	})
	if err != nil {
		return Location{}, err
	}
	return v.(Location), nil
}

func (s *OpenMeteoService) geocode(ctx context.Context, name string) (Location, error) {
	q := url.Values{}
	q.Set("name", name)
	q.Set("count", "1")
	q.Set("language", "en")
	q.Set("format", "json")

	var out struct {
		Results []struct {
			Name      string  `json:"name"`
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
		} `json:"results"`
	}
	if err := s.getJSON(ctx, s.geocodeURL+"?"+q.Encode(), &out); err != nil {
		return Location{}, err
	}
	if len(out.Results) == 0 {
		return Location{}, fmt.Errorf("%w: %q", ErrLocationNotFound, name)
	}
	r := out.Results[0]
	return Location{Name: r.Name, Latitude: r.Latitude, Longitude: r.Longitude}, nil
}

// CurrentWeather fetches current temperature and humidity for coordinates.
func (s *OpenMeteoService) CurrentWeather(ctx context.Context, lat, lon float64) (Weather, error) {
	q := url.Values{}
	q.Set("latitude", fmt.Sprintf("%.4f", lat))
	q.Set("longitude", fmt.Sprintf("%.4f", lon))
	q.Set("current", "temperature_2m,relative_humidity_2m,weather_code")
	q.Set("temperature_unit", "fahrenheit")
	q.Set("timezone", "auto")

	var out struct {
		Current struct {
			Temperature float64 `json:"temperature_2m"`
			Humidity    float64 `json:"relative_humidity_2m"`
		} `json:"current"`
	}
	if err := s.getJSON(ctx, s.forecastURL+"?"+q.Encode(), &out); err != nil {
		return Weather{}, err
	}
	return Weather{TemperatureF: out.Current.Temperature, Humidity: out.Current.Humidity}, nil
}

func (s *OpenMeteoService) getJSON(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	resp, err := s.hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
