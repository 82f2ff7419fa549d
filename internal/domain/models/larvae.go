package models

import "time"

// LarvaeFeedingLog captures one feeding event for a larvae batch. The
// derived fields are computed once at creation and never recomputed on
// read, so historical records keep the values active at write time.
type LarvaeFeedingLog struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`

	Username    string  `json:"username"`
	DaysOfAge   int     `json:"days_of_age"`
	LarvaWeight int     `json:"larva_weight"` // milligrams per larva
	LarvaPct    int     `json:"larva_pct"`    // percent of tub mass that is larvae
	LbLarvae    int     `json:"lb_larvae"`    // pounds of larvae in the tub
	LbFeed      float64 `json:"lb_feed"`
	LbWater     float64 `json:"lb_water"`

	ScreenRefeed      bool    `json:"screen_refeed"`
	RowNumber         *string `json:"row_number"`
	Notes             *string `json:"notes"`
	PostFeedCondition *string `json:"post_feed_condition"`

	LarvaeCount    int     `json:"larvae_count"`
	FeedPerLarvae  float64 `json:"feed_per_larvae"`
	WaterFeedRatio float64 `json:"water_feed_ratio"`
}

// LarvaeFeedingLogCreate is the inbound payload for a feeding event.
// Numeric fields are pointers so that missing and zero are distinguishable.
type LarvaeFeedingLogCreate struct {
	Username    string     `json:"username"`
	DaysOfAge   *FlexInt   `json:"days_of_age"`
	LarvaWeight *FlexInt   `json:"larva_weight"`
	LarvaPct    *FlexInt   `json:"larva_pct"`
	LbLarvae    *FlexInt   `json:"lb_larvae"`
	LbFeed      *FlexFloat `json:"lb_feed"`
	LbWater     *FlexFloat `json:"lb_water"`

	ScreenRefeed      bool    `json:"screen_refeed"`
	RowNumber         *string `json:"row_number"`
	Notes             *string `json:"notes"`
	PostFeedCondition *string `json:"post_feed_condition"`
}
