package models

import "time"

// ContainerLogPrepupae is a periodic environmental/operational snapshot for
// a prepupae rearing container. Only username is required; everything else
// is an optional reading.
type ContainerLogPrepupae struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`

	Username          string   `json:"username"`
	Temperature       *float64 `json:"temperature"`
	Humidity          *float64 `json:"humidity"`
	PrepupaeTubsAdded *int     `json:"prepupae_tubs_added"`
	EggNestsReplaced  *int     `json:"egg_nests_replaced"`
	Notes             *string  `json:"notes"`
}

// ContainerLogNeonates is the neonate-stage counterpart with its own
// operational counters.
type ContainerLogNeonates struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`

	Username         string   `json:"username"`
	Temperature      *float64 `json:"temperature"`
	Humidity         *float64 `json:"humidity"`
	BaitTubsReplaced *int     `json:"bait_tubs_replaced"`
	ShelfTubsRemoved *int     `json:"shelf_tubs_removed"`
	EggNestsReplaced *int     `json:"egg_nests_replaced"`
	Notes            *string  `json:"notes"`
}

// ContainerLogPrepupaeCreate is the inbound payload for a prepupae snapshot.
type ContainerLogPrepupaeCreate struct {
	Username          string     `json:"username"`
	Temperature       *FlexFloat `json:"temperature"`
	Humidity          *FlexFloat `json:"humidity"`
	PrepupaeTubsAdded *FlexInt   `json:"prepupae_tubs_added"`
	EggNestsReplaced  *FlexInt   `json:"egg_nests_replaced"`
	Notes             *string    `json:"notes"`
}

// ContainerLogNeonatesCreate is the inbound payload for a neonate snapshot.
type ContainerLogNeonatesCreate struct {
	Username         string     `json:"username"`
	Temperature      *FlexFloat `json:"temperature"`
	Humidity         *FlexFloat `json:"humidity"`
	BaitTubsReplaced *FlexInt   `json:"bait_tubs_replaced"`
	ShelfTubsRemoved *FlexInt   `json:"shelf_tubs_removed"`
	EggNestsReplaced *FlexInt   `json:"egg_nests_replaced"`
	Notes            *string    `json:"notes"`
}
