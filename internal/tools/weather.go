package tools

import (
	"context"
	"errors"
	"fmt"

	"github.com/reagent/reagent/internal/service"
)

// WeatherTool reports current conditions for a place name via Open-Meteo.
func WeatherTool(svc *service.OpenMeteoService) Tool {
	return Tool{
		Name:        "get_weather",
		Description: "Gets current weather for a location",
		Usage:       `get_weather("Boise") or get_weather("New York")`,
		Execute: func(ctx context.Context, args map[string]any) (string, error) {
			location, err := stringArg(args, "location")
			if err != nil {
				return "", err
			}

			loc, err := svc.Geocode(ctx, location)
			if errors.Is(err, service.ErrLocationNotFound) {
				return fmt.Sprintf("Weather error: Could not find location '%s'", location), nil
			}
			if err != nil {
				return fmt.Sprintf("Weather API error: %v", err), nil
			}

			w, err := svc.CurrentWeather(ctx, loc.Latitude, loc.Longitude)
			if err != nil {
				return fmt.Sprintf("Weather API error: %v", err), nil
			}

			return fmt.Sprintf("Weather in %s: Temperature: %s°F, Humidity: %s%%",
				loc.Name, formatNumber(w.TemperatureF), formatNumber(w.Humidity)), nil
		},
	}
}
