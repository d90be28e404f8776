package services

import "github.com/hdorii/urban-heat/models"

// MergeHeatmap annotates every boundary feature with the UHII value
// observed for its district at one hour. Features always receive both
// a "name" and a "uhii" property; uhii is null unless a row with a
// non-null index value matches the feature's local name. Rows whose
// district has no name-table entry can never match a feature and drop
// out silently.
func MergeHeatmap(doc *models.FeatureCollection, rows []models.HeatRecord) *models.FeatureCollection {
	byLocalName := make(map[string]*float64, len(rows))
	for _, row := range rows {
		local, ok := LocalDistrictName(row.District)
		if !ok {
			continue
		}
		byLocalName[local] = row.UHII
	}

	for _, f := range doc.Features {
		name := f.LocalName()
		if f.Properties == nil {
			f.Properties = make(map[string]any, 2)
		}
		if v, ok := byLocalName[name]; ok && v != nil {
			f.Properties["uhii"] = *v
		} else {
			f.Properties["uhii"] = nil
		}
		f.Properties["name"] = name
	}

	return doc
}
