package receipt

import (
	"github.com/rs/zerolog"

	"github.com/noah-isme/receipts-api/internal/common"
	"github.com/noah-isme/receipts-api/internal/obs"
)

// Service orchestrates validation, scoring, and storage of receipts.
type Service struct {
	Store *Store
	Log   zerolog.Logger
}

// Process validates the submitted document, stores the resulting receipt,
// and returns its identifier together with the computed points. Nothing is
// stored when any check fails.
func (s *Service) Process(doc map[string]any) (string, int, error) {
	rec, err := Validate(doc)
	if err != nil {
		s.countProcessed("validation_error")
		return "", 0, err
	}
	if err := CheckTotal(rec); err != nil {
		s.countProcessed("total_mismatch")
		return "", 0, err
	}

	points := Calculate(rec)
	id := s.Store.Put(rec)

	s.countProcessed("accepted")
	if obs.PointsAwarded != nil {
		obs.PointsAwarded.Observe(float64(points))
	}
	s.Log.Info().
		Str("receipt_id", id).
		Str("retailer", rec.Retailer).
		Int("items", len(rec.Items)).
		Int("points", points).
		Msg("receipt accepted")
	return id, points, nil
}

// Points returns the score for a stored receipt.
func (s *Service) Points(id string) (int, error) {
	rec, ok := s.Store.Get(id)
	if !ok {
		if obs.PointsLookupsTotal != nil {
			obs.PointsLookupsTotal.WithLabelValues("not_found").Inc()
		}
		return 0, common.NewNotFoundError("Receipt not found")
	}
	if obs.PointsLookupsTotal != nil {
		obs.PointsLookupsTotal.WithLabelValues("found").Inc()
	}
	return Calculate(rec), nil
}

func (s *Service) countProcessed(result string) {
	if obs.ReceiptsProcessedTotal != nil {
		obs.ReceiptsProcessedTotal.WithLabelValues(result).Inc()
	}
}
