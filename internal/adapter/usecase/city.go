package usecase

import (
	"context"
	"log/slog"

	"leadflow/internal/cities"
	"leadflow/internal/core/domain"
	"leadflow/internal/core/port"
)

// geoTarget is the resolved geographic targeting for one run. Cities and
// CitySize are never both set; the payload validator enforces the same
// invariant on the wire.
type geoTarget struct {
	City     string
	Cities   []string
	CitySize string
	Country  string
}

// resolveTarget decides which city or city-set to forward downstream.
// First matching rule wins:
//
//  1. Explicit city list in the request, used as-is.
//  2. Re-run with a single stored city: reused without re-drawing so a
//     campaign is never silently re-targeted.
//  3. Re-run with no single city yet: draw one at random for the effective
//     bracket and persist it so rule 2 applies next time.
//  4. New campaign with a bracket only: forward the full reference list for
//     that bracket and let the engine pick.
func (s *Service) resolveTarget(ctx context.Context, camp *domain.Campaign, rerun bool, req port.LaunchRequest) (*geoTarget, error) {
	// Rule 1.
	if len(req.Cities) > 0 {
		t := &geoTarget{Cities: req.Cities, Country: req.Country}
		if len(req.Cities) == 1 {
			t.City = req.Cities[0]
		}
		return t, nil
	}

	if rerun {
		// Rule 2.
		if len(camp.Cities) == 1 {
			city := camp.Cities[0]
			country := req.Country
			if country == "" {
				country = cities.CountryFor(city, camp.CitySize)
			}
			return &geoTarget{City: city, Country: country}, nil
		}

		// Rule 3.
		bracket := camp.CitySize
		if req.CitySize != "" {
			bracket = domain.CityBracket(req.CitySize)
		}
		drawn, err := s.cities.Random(ctx, bracket)
		if err != nil {
			return nil, err
		}
		if drawn == nil {
			s.logger.Warn("no reference cities for bracket, forwarding empty target",
				slog.String("bracket", string(bracket)),
				slog.String("campaign_id", camp.ID.String()))
			return &geoTarget{CitySize: string(bracket)}, nil
		}
		if err = s.campaigns.SetCity(ctx, camp.ID, drawn.Name); err != nil {
			return nil, err
		}
		camp.Cities = []string{drawn.Name}
		return &geoTarget{City: drawn.Name, Country: drawn.Country}, nil
	}

	// Rule 4.
	if req.CitySize != "" {
		list := cities.ForBracket(domain.CityBracket(req.CitySize))
		if len(list) == 0 {
			s.logger.Warn("no reference cities for bracket, forwarding empty target",
				slog.String("bracket", req.CitySize))
			return &geoTarget{CitySize: req.CitySize}, nil
		}
		return &geoTarget{Cities: cities.Names(list)}, nil
	}

	// No explicit target at all; the engine applies its own fallback.
	return &geoTarget{Country: req.Country}, nil
}
