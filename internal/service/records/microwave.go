package records

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/mamadbah2/datalog/internal/domain/metrics"
	"github.com/mamadbah2/datalog/internal/domain/models"
	"github.com/mamadbah2/datalog/internal/repository"
)

// MicrowaveService extends the generic service with the post-production
// update, the only update operation defined for any record kind.
type MicrowaveService struct {
	*Service[models.MicrowaveLogCreate, models.MicrowaveLog]
	store repository.MicrowaveStore
}

// NewMicrowaveService wires the drying-run service.
func NewMicrowaveService(store repository.MicrowaveStore, logger *zap.Logger) *MicrowaveService {
	return &MicrowaveService{
		Service: NewService(MicrowaveKind(), store, logger),
		store:   store,
	}
}

// Update applies only the fields present in the patch (tubs_live_larvae,
// lb_dried_larvae, notes), then recomputes yield_percentage when the merged
// record satisfies the precondition: both post-production inputs present
// and tubs_live_larvae and lb_larvae_per_tub positive. Otherwise the prior
// value, possibly null, is left untouched. The run becomes FINALIZED once
// both post-production inputs are present.
func (s *MicrowaveService) Update(ctx context.Context, id string, patch *models.MicrowaveLogUpdate) (*models.MicrowaveLog, error) {
	rec, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.TubsLiveLarvae != nil {
		v := patch.TubsLiveLarvae.Int()
		rec.TubsLiveLarvae = &v
	}
	if patch.LbDriedLarvae != nil {
		v := patch.LbDriedLarvae.Float()
		rec.LbDriedLarvae = &v
	}
	if patch.Notes != nil {
		rec.Notes = patch.Notes
	}

	if rec.Finalized() {
		rec.State = models.RunStateFinalized
	}
	if yieldComputable(rec) {
		y := metrics.YieldPercentage(*rec.LbDriedLarvae, *rec.TubsLiveLarvae, *rec.LbLarvaePerTub)
		rec.YieldPercentage = &y
	}

	if err := s.store.Update(ctx, rec); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		s.logger.Error("update failed", zap.String("kind", s.kind.Name), zap.Error(err))
		return nil, &PersistenceError{Op: "update " + s.kind.Name, Err: err}
	}

	return rec, nil
}

func yieldComputable(rec *models.MicrowaveLog) bool {
	return rec.Finalized() &&
		*rec.TubsLiveLarvae > 0 &&
		rec.LbLarvaePerTub != nil && *rec.LbLarvaePerTub > 0
}
