package session

import (
	"errors"
	"fmt"

	"CryptoScope/internal/model"
)

// Store holds the most recently fetched PriceSeries of each asset.
// It is not safe for concurrent use.
type Store struct {
	series map[model.Asset]*model.PriceSeries
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{series: make(map[model.Asset]*model.PriceSeries)}
}

// Put replaces whatever series is held for asset.
func (s *Store) Put(asset model.Asset, series *model.PriceSeries) {
	s.series[asset] = series
}

// Get returns the series held for asset, or ErrNotFound.
func (s *Store) Get(asset model.Asset) (*model.PriceSeries, error) {
	series, ok := s.series[asset]
	if !ok {
		return nil, fmt.Errorf("%s has not been fetched: %w", asset, model.ErrNotFound)
	}
	return series, nil
}

// Require returns the series of every listed asset. When some are missing
// the error joins one ErrNotFound per missing asset.
func (s *Store) Require(assets ...model.Asset) (map[model.Asset]*model.PriceSeries, error) {
	out := make(map[model.Asset]*model.PriceSeries, len(assets))
	var errs []error
	for _, a := range assets {
		series, err := s.Get(a)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		out[a] = series
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return out, nil
}
