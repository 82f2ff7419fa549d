package records

import (
	"strings"
	"time"

	"github.com/mamadbah2/datalog/internal/domain/metrics"
	"github.com/mamadbah2/datalog/internal/domain/models"
)

// LarvaeFeedingKind describes larvae feeding events. All measurement fields
// are required and range-checked; the three derived metrics are computed
// here, once, before the insert.
func LarvaeFeedingKind() Kind[models.LarvaeFeedingLogCreate, models.LarvaeFeedingLog] {
	return Kind[models.LarvaeFeedingLogCreate, models.LarvaeFeedingLog]{
		Name:     "larvae_feeding_log",
		Validate: validateLarvaeFeedingCreate,
		New:      newLarvaeFeedingLog,
	}
}

// ContainerPrepupaeKind describes prepupae container snapshots. Only the
// username is required.
func ContainerPrepupaeKind() Kind[models.ContainerLogPrepupaeCreate, models.ContainerLogPrepupae] {
	return Kind[models.ContainerLogPrepupaeCreate, models.ContainerLogPrepupae]{
		Name: "container_log_prepupae",
		Validate: func(p *models.ContainerLogPrepupaeCreate) error {
			return requireUsername(p.Username)
		},
		New: func(p *models.ContainerLogPrepupaeCreate, id string, ts time.Time) *models.ContainerLogPrepupae {
			return &models.ContainerLogPrepupae{
				ID:                id,
				Timestamp:         ts,
				Username:          p.Username,
				Temperature:       floatPtr(p.Temperature),
				Humidity:          floatPtr(p.Humidity),
				PrepupaeTubsAdded: intPtr(p.PrepupaeTubsAdded),
				EggNestsReplaced:  intPtr(p.EggNestsReplaced),
				Notes:             p.Notes,
			}
		},
	}
}

// ContainerNeonatesKind describes neonate container snapshots.
func ContainerNeonatesKind() Kind[models.ContainerLogNeonatesCreate, models.ContainerLogNeonates] {
	return Kind[models.ContainerLogNeonatesCreate, models.ContainerLogNeonates]{
		Name: "container_log_neonates",
		Validate: func(p *models.ContainerLogNeonatesCreate) error {
			return requireUsername(p.Username)
		},
		New: func(p *models.ContainerLogNeonatesCreate, id string, ts time.Time) *models.ContainerLogNeonates {
			return &models.ContainerLogNeonates{
				ID:               id,
				Timestamp:        ts,
				Username:         p.Username,
				Temperature:      floatPtr(p.Temperature),
				Humidity:         floatPtr(p.Humidity),
				BaitTubsReplaced: intPtr(p.BaitTubsReplaced),
				ShelfTubsRemoved: intPtr(p.ShelfTubsRemoved),
				EggNestsReplaced: intPtr(p.EggNestsReplaced),
				Notes:            p.Notes,
			}
		},
	}
}

// MicrowaveKind describes the creation phase of a drying run. Every run
// starts in the CREATED state; post-production fields stay null until the
// update operation supplies them.
func MicrowaveKind() Kind[models.MicrowaveLogCreate, models.MicrowaveLog] {
	return Kind[models.MicrowaveLogCreate, models.MicrowaveLog]{
		Name: "microwave_log",
		Validate: func(p *models.MicrowaveLogCreate) error {
			return requireUsername(p.Username)
		},
		New: func(p *models.MicrowaveLogCreate, id string, ts time.Time) *models.MicrowaveLog {
			return &models.MicrowaveLog{
				ID:                 id,
				Timestamp:          ts,
				Username:           p.Username,
				State:              models.RunStateCreated,
				MicrowavePowerGen1: floatPtr(p.MicrowavePowerGen1),
				MicrowavePowerGen2: floatPtr(p.MicrowavePowerGen2),
				FanSpeedCavity1:    floatPtr(p.FanSpeedCavity1),
				FanSpeedCavity2:    floatPtr(p.FanSpeedCavity2),
				BeltSpeed:          floatPtr(p.BeltSpeed),
				LbLarvaePerTub:     floatPtr(p.LbLarvaePerTub),
				NumRampUpTubs:      intPtr(p.NumRampUpTubs),
				NumRampDownTubs:    intPtr(p.NumRampDownTubs),
				Notes:              p.Notes,
			}
		},
	}
}

func validateLarvaeFeedingCreate(p *models.LarvaeFeedingLogCreate) error {
	if err := requireUsername(p.Username); err != nil {
		return err
	}

	required := []struct {
		name    string
		present bool
	}{
		{"days_of_age", p.DaysOfAge != nil},
		{"larva_weight", p.LarvaWeight != nil},
		{"larva_pct", p.LarvaPct != nil},
		{"lb_larvae", p.LbLarvae != nil},
		{"lb_feed", p.LbFeed != nil},
		{"lb_water", p.LbWater != nil},
	}
	for _, field := range required {
		if !field.present {
			return missingField(field.name)
		}
	}

	switch {
	case p.DaysOfAge.Int() < 0:
		return invalidField("days_of_age", "must be >= 0")
	case p.LarvaWeight.Int() <= 0:
		return invalidField("larva_weight", "must be > 0")
	case p.LarvaPct.Int() < 0 || p.LarvaPct.Int() > 100:
		return invalidField("larva_pct", "must be between 0 and 100")
	case p.LbLarvae.Int() < 0:
		return invalidField("lb_larvae", "must be >= 0")
	case p.LbFeed.Float() < 0:
		return invalidField("lb_feed", "must be >= 0")
	case p.LbWater.Float() < 0:
		return invalidField("lb_water", "must be >= 0")
	}

	return nil
}

func newLarvaeFeedingLog(p *models.LarvaeFeedingLogCreate, id string, ts time.Time) *models.LarvaeFeedingLog {
	larvaeCount := metrics.LarvaeCount(p.LbLarvae.Int(), p.LarvaPct.Int(), p.LarvaWeight.Int())

	return &models.LarvaeFeedingLog{
		ID:        id,
		Timestamp: ts,

		Username:    p.Username,
		DaysOfAge:   p.DaysOfAge.Int(),
		LarvaWeight: p.LarvaWeight.Int(),
		LarvaPct:    p.LarvaPct.Int(),
		LbLarvae:    p.LbLarvae.Int(),
		LbFeed:      p.LbFeed.Float(),
		LbWater:     p.LbWater.Float(),

		ScreenRefeed:      p.ScreenRefeed,
		RowNumber:         p.RowNumber,
		Notes:             p.Notes,
		PostFeedCondition: p.PostFeedCondition,

		LarvaeCount:    larvaeCount,
		FeedPerLarvae:  metrics.FeedPerLarvae(p.LbFeed.Float(), larvaeCount),
		WaterFeedRatio: metrics.WaterFeedRatio(p.LbWater.Float(), p.LbFeed.Float()),
	}
}

func requireUsername(username string) error {
	if strings.TrimSpace(username) == "" {
		return missingField("username")
	}
	return nil
}

func intPtr(v *models.FlexInt) *int {
	if v == nil {
		return nil
	}
	n := v.Int()
	return &n
}

func floatPtr(v *models.FlexFloat) *float64 {
	if v == nil {
		return nil
	}
	f := v.Float()
	return &f
}
