package models

import "fmt"

// HeatRecord is one precomputed urban-heat-island index value for a
// district at a given hour. The table is written by an external
// pipeline; this service only reads it.
type HeatRecord struct {
	District string   `gorm:"column:District" json:"district"`
	Year     int      `gorm:"column:year" json:"year"`
	Month    int      `gorm:"column:month" json:"month"`
	Day      int      `gorm:"column:day" json:"day"`
	Hour     int      `gorm:"column:hour" json:"hour"`
	UHII     *float64 `gorm:"column:UHII" json:"uhii"`
}

func (HeatRecord) TableName() string { return "uhii.part" }

// HourKey identifies one observed hour in the table.
type HourKey struct {
	Year  int `gorm:"column:year" json:"year"`
	Month int `gorm:"column:month" json:"month"`
	Day   int `gorm:"column:day" json:"day"`
	Hour  int `gorm:"column:hour" json:"hour"`
}

// String renders the key in the "YYYY-MM-DD HH:00" form the front end
// consumes from /api/available_times.
func (k HourKey) String() string {
	return fmt.Sprintf("%04d-%02d-%02d %02d:00", k.Year, k.Month, k.Day, k.Hour)
}
