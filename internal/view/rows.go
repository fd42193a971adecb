package view

import (
	"time"

	"alerts_review/internal/models"
)

// Row is one rendered snapshot line. Temp, SetPoint, Heater and Pump refer
// to the case's body: pool temp, pool set point, pool heater and filter pump
// for pools; spa temp, spa set point, spa heater and spa pump for spas.
type Row struct {
	Time      string `json:"time"`
	Air       string `json:"air"`
	Temp      string `json:"temp"`
	SetPoint  string `json:"set_point"`
	Heater    string `json:"heater"`
	Pump      string `json:"pump"`
	Service   bool   `json:"service_mode"`
	Highlight bool   `json:"highlight"`
}

// Columns returns the header labels matching Row for body.
func Columns(body models.BodyType) []string {
	if body == models.BodySpa {
		return []string{"Time", "Air", "Spa Temp", "Spa Set", "Spa Heater", "Spa Pump"}
	}
	return []string{"Time", "Air", "Pool Temp", "Pool Set", "Pool Heater", "Filter Pump"}
}

// Rows renders series in its given order. A row is highlighted when the
// body's heater is ON (standby excluded) and its pump is ON.
func Rows(series []models.Snapshot, body models.BodyType, loc *time.Location) []Row {
	out := make([]Row, 0, len(series))
	for _, s := range series {
		r := Row{
			Time:    FormatLocal(s.Timestamp, loc),
			Air:     FormatTemp(s.AirTemp),
			Service: s.ServiceMode,
		}
		if body == models.BodySpa {
			r.Temp = FormatTemp(s.SpaTemp)
			r.SetPoint = FormatTemp(s.SetPointSpa)
			r.Heater = HeaterLabel(s.SpaHeater)
			r.Pump = PumpLabel(s.SpaPump)
			r.Highlight = s.SpaHeater == models.HeaterOn && s.SpaPump == models.PumpOn
		} else {
			r.Temp = FormatTemp(s.PoolTemp)
			r.SetPoint = FormatTemp(s.SetPointPool)
			r.Heater = HeaterLabel(s.PoolHeater)
			r.Pump = PumpLabel(s.FilterPump)
			r.Highlight = s.PoolHeater == models.HeaterOn && s.FilterPump == models.PumpOn
		}
		out = append(out, r)
	}
	return out
}
