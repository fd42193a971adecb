package models

import "time"

// HeaterState is the upstream telemetry's heater code. Values other than the
// three known ones are passed through untouched.
type HeaterState int

const (
	HeaterOff     HeaterState = 0
	HeaterOn      HeaterState = 1
	HeaterStandby HeaterState = 3
)

// Heating reports whether the heater intends to heat (ON or STANDBY).
func (h HeaterState) Heating() bool {
	return h == HeaterOn || h == HeaterStandby
}

// PumpState is the upstream telemetry's pump code.
type PumpState int

const (
	PumpOff PumpState = 0
	PumpOn  PumpState = 1
)

// Snapshot is one timestamped equipment reading. Temperatures are °F and nil
// when the sensor reported nothing.
type Snapshot struct {
	Timestamp    time.Time   `json:"snapshot_ts"`
	AirTemp      *float64    `json:"air_temp"`
	PoolTemp     *float64    `json:"pool_temp"`
	SpaTemp      *float64    `json:"spa_temp"`
	SetPointPool *float64    `json:"set_point_pool"`
	SetPointSpa  *float64    `json:"set_point_spa"`
	PoolHeater   HeaterState `json:"pool_heater"`
	SpaHeater    HeaterState `json:"spa_heater"`
	FilterPump   PumpState   `json:"filter_pump"`
	SpaPump      PumpState   `json:"spa_pump"`
	ServiceMode  bool        `json:"service_mode"`
}

// Float returns a pointer to v, handy for building snapshots.
func Float(v float64) *float64 { return &v }
