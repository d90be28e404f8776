package models

// PredictionColumns is the exact column order the scoring endpoint was
// trained with. The serialized row must match it position for position.
var PredictionColumns = []string{
	"District",
	"green_rate",
	"Building_Density",
	"car_registration_count",
	"population_density",
	"avg_km_per_road_km",
	"timestamp",
	"suburban_temp_current",
}

// PredictionRequest is the inbound feature record for /predict_result.
// Fields are pointers so an omitted column is distinguishable from a
// zero value and can be rejected by name.
type PredictionRequest struct {
	District             *string  `json:"District"`
	GreenRate            *float64 `json:"green_rate"`
	BuildingDensity      *float64 `json:"Building_Density"`
	CarRegistrationCount *float64 `json:"car_registration_count"`
	PopulationDensity    *float64 `json:"population_density"`
	AvgKmPerRoadKm       *float64 `json:"avg_km_per_road_km"`
	Timestamp            *string  `json:"timestamp"`
}

// MissingColumn reports the first required column absent from the
// request, in wire order. The timestamp column is validated separately
// by the handler before this check runs.
func (r *PredictionRequest) MissingColumn() (string, bool) {
	checks := []struct {
		name string
		ok   bool
	}{
		{"District", r.District != nil},
		{"green_rate", r.GreenRate != nil},
		{"Building_Density", r.BuildingDensity != nil},
		{"car_registration_count", r.CarRegistrationCount != nil},
		{"population_density", r.PopulationDensity != nil},
		{"avg_km_per_road_km", r.AvgKmPerRoadKm != nil},
		{"timestamp", r.Timestamp != nil},
	}
	for _, c := range checks {
		if !c.ok {
			return c.name, true
		}
	}
	return "", false
}

// Row assembles the single data row for the dataframe_split payload,
// with the parsed epoch timestamp and the looked-up temperature
// substituted into their fixed positions.
func (r *PredictionRequest) Row(epochSeconds int64, temperature float64) []any {
	return []any{
		*r.District,
		*r.GreenRate,
		*r.BuildingDensity,
		*r.CarRegistrationCount,
		*r.PopulationDensity,
		*r.AvgKmPerRoadKm,
		epochSeconds,
		temperature,
	}
}
