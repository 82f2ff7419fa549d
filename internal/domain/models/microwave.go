package models

import "time"

// RunState tags the lifecycle of a microwave drying run. A run is CREATED
// with its pre-production settings and becomes FINALIZED once both
// post-production measurements have been supplied via update.
type RunState string

const (
	RunStateCreated   RunState = "CREATED"
	RunStateFinalized RunState = "FINALIZED"
)

// MicrowaveLog is a two-phase record for a drying run. Phase-1 fields are
// set at creation; phase-2 fields (tubs_live_larvae, lb_dried_larvae) arrive
// later through a partial update, which is also the only point where
// yield_percentage may be computed.
type MicrowaveLog struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`

	Username           string   `json:"username"`
	State              RunState `json:"state"`
	MicrowavePowerGen1 *float64 `json:"microwave_power_gen1"`
	MicrowavePowerGen2 *float64 `json:"microwave_power_gen2"`
	FanSpeedCavity1    *float64 `json:"fan_speed_cavity1"`
	FanSpeedCavity2    *float64 `json:"fan_speed_cavity2"`
	BeltSpeed          *float64 `json:"belt_speed"`
	LbLarvaePerTub     *float64 `json:"lb_larvae_per_tub"`
	NumRampUpTubs      *int     `json:"num_ramp_up_tubs"`
	NumRampDownTubs    *int     `json:"num_ramp_down_tubs"`
	Notes              *string  `json:"notes"`

	TubsLiveLarvae  *int     `json:"tubs_live_larvae"`
	LbDriedLarvae   *float64 `json:"lb_dried_larvae"`
	YieldPercentage *float64 `json:"yield_percentage"`
}

// Finalized reports whether both post-production inputs are present.
func (m *MicrowaveLog) Finalized() bool {
	return m.TubsLiveLarvae != nil && m.LbDriedLarvae != nil
}

// MicrowaveLogCreate is the phase-1 payload for a drying run.
type MicrowaveLogCreate struct {
	Username           string     `json:"username"`
	MicrowavePowerGen1 *FlexFloat `json:"microwave_power_gen1"`
	MicrowavePowerGen2 *FlexFloat `json:"microwave_power_gen2"`
	FanSpeedCavity1    *FlexFloat `json:"fan_speed_cavity1"`
	FanSpeedCavity2    *FlexFloat `json:"fan_speed_cavity2"`
	BeltSpeed          *FlexFloat `json:"belt_speed"`
	LbLarvaePerTub     *FlexFloat `json:"lb_larvae_per_tub"`
	NumRampUpTubs      *FlexInt   `json:"num_ramp_up_tubs"`
	NumRampDownTubs    *FlexInt   `json:"num_ramp_down_tubs"`
	Notes              *string    `json:"notes"`
}

// MicrowaveLogUpdate is the restricted phase-2 payload. Each field is
// independently optional; absent fields leave the stored value untouched.
type MicrowaveLogUpdate struct {
	TubsLiveLarvae *FlexInt   `json:"tubs_live_larvae"`
	LbDriedLarvae  *FlexFloat `json:"lb_dried_larvae"`
	Notes          *string    `json:"notes"`
}
