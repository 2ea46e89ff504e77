package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

const defaultQuakeFeedURL = "https://earthquake.usgs.gov/earthquakes/feed/v1.0/summary/all_day.geojson"

type Quake struct {
	Magnitude float64
	Place     string
	TimeMs    int64
}

// USGSService reads the last-24h earthquake summary feed.
type USGSService struct {
	hc      *http.Client
	feedURL string
}

func NewUSGSService(hc *http.Client, feedURL string) *USGSService {
	if feedURL == "" {
		feedURL = defaultQuakeFeedURL
	}
	return &USGSService{hc: hc, feedURL: feedURL}
}

// RecentQuakes returns every event in the feed; filtering and ranking belong
// to the caller.
func (s *USGSService) RecentQuakes(ctx context.Context) ([]Quake, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.feedURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var feed struct {
		Features []struct {
			Properties struct {
				Mag   *float64 `json:"mag"`
				Place string   `json:"place"`
				Time  int64    `json:"time"`
			} `json:"properties"`
		} `json:"features"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("decode feed: %w", err)
	}

	quakes := make([]Quake, 0, len(feed.Features))
	for _, f := range feed.Features {
		p := f.Properties
		mag := 0.0
		if p.Mag != nil {
			mag = *p.Mag
		}
		place := p.Place
		if place == "" {
			place = "Unknown"
		}
		quakes = append(quakes, Quake{Magnitude: mag, Place: place, TimeMs: p.Time})
	}
	return quakes, nil
}
