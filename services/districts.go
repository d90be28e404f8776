package services

import (
	"fmt"

	"github.com/hdorii/urban-heat/models"
)

// districtNames maps the canonical transliterated district identifiers
// used in the uhii table to the local-script display names carried by
// the boundary document. The set is closed: Seoul has exactly these 25
// autonomous districts.
var districtNames = map[string]string{
	"Gangnam-gu":      "강남구",
	"Gangdong-gu":     "강동구",
	"Gangbuk-gu":      "강북구",
	"Gangseo-gu":      "강서구",
	"Gwanak-gu":       "관악구",
	"Gwangjin-gu":     "광진구",
	"Guro-gu":         "구로구",
	"Geumcheon-gu":    "금천구",
	"Nowon-gu":        "노원구",
	"Dobong-gu":       "도봉구",
	"Dongdaemun-gu":   "동대문구",
	"Dongjak-gu":      "동작구",
	"Mapo-gu":         "마포구",
	"Seodaemun-gu":    "서대문구",
	"Seocho-gu":       "서초구",
	"Seongdong-gu":    "성동구",
	"Seongbuk-gu":     "성북구",
	"Songpa-gu":       "송파구",
	"Yangcheon-gu":    "양천구",
	"Yeongdeungpo-gu": "영등포구",
	"Yongsan-gu":      "용산구",
	"Eunpyeong-gu":    "은평구",
	"Jongno-gu":       "종로구",
	"Jung-gu":         "중구",
	"Jungnang-gu":     "중랑구",
}

// LocalDistrictName translates a transliterated district identifier to
// its local-script display name. Unknown identifiers report ok=false.
func LocalDistrictName(district string) (string, bool) {
	name, ok := districtNames[district]
	return name, ok
}

// DistrictCount reports the size of the static name table.
func DistrictCount() int { return len(districtNames) }

// CheckDistrictCoverage verifies at startup that every feature in the
// boundary document resolves to an entry in the name table. A mismatch
// means rows for that district could never reach the map.
func CheckDistrictCoverage(doc *models.FeatureCollection) error {
	known := make(map[string]bool, len(districtNames))
	for _, local := range districtNames {
		known[local] = true
	}

	for _, f := range doc.Features {
		name := f.LocalName()
		if name == "" {
			return fmt.Errorf("boundary feature missing sggnm property")
		}
		if !known[name] {
			return fmt.Errorf("boundary district %q has no entry in the name table", name)
		}
	}
	return nil
}
