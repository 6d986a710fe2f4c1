package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"leadflow/internal/core/domain"
)

// CityRepository serves random draws from the reference_cities table. The
// table is seeded from the embedded list in the cities package so the two
// stay in step.
type CityRepository struct {
	pool *pgxpool.Pool
}

// NewCityRepository returns a new repository instance.
func NewCityRepository(pool *pgxpool.Pool) *CityRepository {
	return &CityRepository{pool: pool}
}

// Random draws one city uniformly at random from the bracket, nil when the
// bracket has no rows.
func (r *CityRepository) Random(ctx context.Context, bracket domain.CityBracket) (*domain.City, error) {
	var c domain.City
	err := r.pool.QueryRow(ctx,
		`SELECT name, country, bracket FROM reference_cities WHERE bracket = $1 ORDER BY random() LIMIT 1`,
		bracket).Scan(&c.Name, &c.Country, &c.Bracket)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}
