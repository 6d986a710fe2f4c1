package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"leadflow/internal/core/domain"
	"leadflow/internal/core/port"
)

func TestResolveTarget_ExplicitCitiesWinOverEverything(t *testing.T) {
	svc, _ := newTestService(t)
	camp := &domain.Campaign{ID: uuid.New(), Cities: []string{"Old Town"}}

	got, err := svc.resolveTarget(context.Background(), camp, true, port.LaunchRequest{
		Cities:   []string{"Miami", "Tampa"},
		CitySize: string(domain.Bracket1MPlus),
		Country:  "United States",
	})
	require.NoError(t, err)
	require.Equal(t, []string{"Miami", "Tampa"}, got.Cities)
	require.Empty(t, got.CitySize)
	require.Empty(t, got.City)
	require.Equal(t, "United States", got.Country)
}

func TestResolveTarget_SingleExplicitCitySetsCity(t *testing.T) {
	svc, _ := newTestService(t)

	got, err := svc.resolveTarget(context.Background(), &domain.Campaign{ID: uuid.New()}, false,
		port.LaunchRequest{Cities: []string{"Boston"}})
	require.NoError(t, err)
	require.Equal(t, "Boston", got.City)
	require.Equal(t, []string{"Boston"}, got.Cities)
}

func TestResolveTarget_RerunKeepsStoredCity(t *testing.T) {
	svc, _ := newTestService(t)
	camp := &domain.Campaign{
		ID:       uuid.New(),
		Cities:   []string{"Springfield"},
		CitySize: domain.Bracket100K250K,
	}

	// No Random expectation: the stored city must never be re-drawn.
	got, err := svc.resolveTarget(context.Background(), camp, true, port.LaunchRequest{})
	require.NoError(t, err)
	require.Equal(t, "Springfield", got.City)
	require.Equal(t, "United States", got.Country)
	require.Empty(t, got.Cities)
	require.Empty(t, got.CitySize)
}

func TestResolveTarget_RerunDrawsAndPersistsCity(t *testing.T) {
	svc, m := newTestService(t)
	camp := &domain.Campaign{ID: uuid.New(), CitySize: domain.Bracket50K100K}

	m.cities.EXPECT().Random(mock.Anything, domain.Bracket50K100K).
		Return(&domain.City{Name: "Bozeman", Country: "United States", Bracket: domain.Bracket50K100K}, nil)
	m.campaigns.EXPECT().SetCity(mock.Anything, camp.ID, "Bozeman").Return(nil)

	got, err := svc.resolveTarget(context.Background(), camp, true, port.LaunchRequest{})
	require.NoError(t, err)
	require.Equal(t, "Bozeman", got.City)
	require.Equal(t, "United States", got.Country)

	// The draw sticks: the campaign now carries the city for the next run.
	require.Equal(t, []string{"Bozeman"}, camp.Cities)
}

func TestResolveTarget_RerunRequestBracketOverridesStored(t *testing.T) {
	svc, m := newTestService(t)
	camp := &domain.Campaign{ID: uuid.New(), CitySize: domain.Bracket1MPlus}

	m.cities.EXPECT().Random(mock.Anything, domain.Bracket250K500K).
		Return(&domain.City{Name: "Halifax", Country: "Canada", Bracket: domain.Bracket250K500K}, nil)
	m.campaigns.EXPECT().SetCity(mock.Anything, camp.ID, "Halifax").Return(nil)

	got, err := svc.resolveTarget(context.Background(), camp, true,
		port.LaunchRequest{CitySize: string(domain.Bracket250K500K)})
	require.NoError(t, err)
	require.Equal(t, "Halifax", got.City)
}

func TestResolveTarget_RerunEmptyBracketFallsBack(t *testing.T) {
	svc, m := newTestService(t)
	camp := &domain.Campaign{ID: uuid.New(), CitySize: domain.Bracket50K100K}

	m.cities.EXPECT().Random(mock.Anything, domain.Bracket50K100K).Return(nil, nil)

	got, err := svc.resolveTarget(context.Background(), camp, true, port.LaunchRequest{})
	require.NoError(t, err)
	require.Equal(t, string(domain.Bracket50K100K), got.CitySize)
	require.Empty(t, got.City)
	require.Empty(t, got.Cities)
}

func TestResolveTarget_NewCampaignBracketExpandsToList(t *testing.T) {
	svc, _ := newTestService(t)

	got, err := svc.resolveTarget(context.Background(), &domain.Campaign{ID: uuid.New()}, false,
		port.LaunchRequest{CitySize: string(domain.Bracket1MPlus)})
	require.NoError(t, err)
	require.Empty(t, got.CitySize)
	require.Contains(t, got.Cities, "New York")
	require.Contains(t, got.Cities, "London")
}

func TestResolveTarget_NoTargetAtAll(t *testing.T) {
	svc, _ := newTestService(t)

	got, err := svc.resolveTarget(context.Background(), &domain.Campaign{ID: uuid.New()}, false,
		port.LaunchRequest{Country: "Canada"})
	require.NoError(t, err)
	require.Empty(t, got.City)
	require.Empty(t, got.Cities)
	require.Empty(t, got.CitySize)
	require.Equal(t, "Canada", got.Country)
}
