package tools

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/reagent/reagent/internal/service"
)

const maxQuakesReported = 5

// EarthquakeTool filters the USGS last-24h feed by magnitude and region and
// reports the strongest events first.
func EarthquakeTool(svc *service.USGSService) Tool {
	return Tool{
		Name:        "get_earthquake_data",
		Description: "Gets recent earthquake data from USGS",
		Usage:       `get_earthquake_data("California", 4.0)`,
		Execute: func(ctx context.Context, args map[string]any) (string, error) {
			region, err := optStringArg(args, "region", "all")
			if err != nil {
				return "", err
			}
			minMag, err := optNumberArg(args, "min_magnitude", 4.5)
			if err != nil {
				return "", err
			}

			quakes, err := svc.RecentQuakes(ctx)
			if err != nil {
				return fmt.Sprintf("Earthquake API error: %v", err), nil
			}

			regionLower := strings.ToLower(region)
			var matched []service.Quake
			for _, q := range quakes {
				if q.Magnitude < minMag {
					continue
				}
				if regionLower != "all" && !strings.Contains(strings.ToLower(q.Place), regionLower) {
					continue
				}
				matched = append(matched, q)
			}

			if len(matched) == 0 {
				return fmt.Sprintf("No earthquakes with magnitude >= %s found in the last 24 hours for region '%s'",
					formatNumber(minMag), region), nil
			}

			sort.Slice(matched, func(i, j int) bool {
				return matched[i].Magnitude > matched[j].Magnitude
			})

			lines := []string{fmt.Sprintf("Found %d earthquake(s) with magnitude >= %s in the last 24 hours:",
				len(matched), formatNumber(minMag))}
			for i, q := range matched {
				if i >= maxQuakesReported {
					break
				}
				lines = append(lines, fmt.Sprintf("  - Magnitude %s: %s", formatNumber(q.Magnitude), q.Place))
			}
			return strings.Join(lines, "\n"), nil
		},
	}
}
