package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const defaultFrankfurterURL = "https://api.frankfurter.app"

// ErrRateNotFound means the rate service had no quote for the currency pair.
var ErrRateNotFound = errors.New("exchange rate not found")

// FrankfurterService quotes ECB reference rates via the Frankfurter API.
type FrankfurterService struct {
	hc      *http.Client
	baseURL string
}

func NewFrankfurterService(hc *http.Client, baseURL string) *FrankfurterService {
	if baseURL == "" {
		baseURL = defaultFrankfurterURL
	}
	return &FrankfurterService{hc: hc, baseURL: baseURL}
}

// Convert returns amount converted from one currency code to another.
// Codes are upper-cased before the request.
func (s *FrankfurterService) Convert(ctx context.Context, from, to string, amount float64) (float64, error) {
	from = strings.ToUpper(from)
	to = strings.ToUpper(to)

	q := url.Values{}
	q.Set("from", from)
	q.Set("to", to)
	q.Set("amount", strconv.FormatFloat(amount, 'f', -1, 64))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/latest?"+q.Encode(), nil)
	if err != nil {
		return 0, err
	}
	resp, err := s.hc.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var out struct {
		Rates map[string]float64 `json:"rates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return 0, fmt.Errorf("decode response: %w", err)
	}

	converted, ok := out.Rates[to]
	if !ok {
		return 0, fmt.Errorf("%w: %s to %s", ErrRateNotFound, from, to)
	}
	return converted, nil
}
