package sqldb

import (
	"github.com/mamadbah2/datalog/internal/domain/models"
)

// NewLarvaeFeedingLogStore builds the store for larvae feeding events.
func NewLarvaeFeedingLogStore(db *DB) *Table[models.LarvaeFeedingLog] {
	return &Table[models.LarvaeFeedingLog]{
		db:   db,
		name: "larvae_logs",
		columns: []string{
			"id", "timestamp", "username", "days_of_age", "larva_weight",
			"larva_pct", "lb_larvae", "lb_feed", "lb_water", "screen_refeed",
			"row_number", "notes", "post_feed_condition",
			"larvae_count", "feed_per_larvae", "water_feed_ratio",
		},
		values: func(r *models.LarvaeFeedingLog) []any {
			return []any{
				r.ID, r.Timestamp, r.Username, r.DaysOfAge, r.LarvaWeight,
				r.LarvaPct, r.LbLarvae, r.LbFeed, r.LbWater, r.ScreenRefeed,
				r.RowNumber, r.Notes, r.PostFeedCondition,
				r.LarvaeCount, r.FeedPerLarvae, r.WaterFeedRatio,
			}
		},
		scan: func(row rowScanner) (*models.LarvaeFeedingLog, error) {
			var r models.LarvaeFeedingLog
			err := row.Scan(
				&r.ID, &r.Timestamp, &r.Username, &r.DaysOfAge, &r.LarvaWeight,
				&r.LarvaPct, &r.LbLarvae, &r.LbFeed, &r.LbWater, &r.ScreenRefeed,
				&r.RowNumber, &r.Notes, &r.PostFeedCondition,
				&r.LarvaeCount, &r.FeedPerLarvae, &r.WaterFeedRatio,
			)
			if err != nil {
				return nil, err
			}
			return &r, nil
		},
	}
}
