package domain

// FactorStatus is the verdict of a single quality factor.
type FactorStatus string

const (
	FactorPass FactorStatus = "pass"
	FactorWarn FactorStatus = "warn"
	FactorFail FactorStatus = "fail"
)

// QualityFactor is one scored aspect of a quality verification.
type QualityFactor struct {
	Name   string       `json:"name"`
	Score  float64      `json:"score"`
	Status FactorStatus `json:"status"`
}

// QualityReport is the outcome of an AI quality verification.
type QualityReport struct {
	Score          float64         `json:"score"`
	Grade          string          `json:"grade"`
	Confidence     float64         `json:"confidence"`
	Factors        []QualityFactor `json:"factors"`
	Recommendation string          `json:"recommendation"`
}

// ShelfLife is a predicted shelf life with storage advice.
type ShelfLife struct {
	Months     int    `json:"months"`
	Conditions string `json:"conditions"`
}

// Grade maps a quality score to its letter grade.
func Grade(score float64) string {
	switch {
	case score >= 95:
		return "A+"
	case score >= 90:
		return "A"
	case score >= 85:
		return "B+"
	default:
		return "B"
	}
}

// ShelfLifeMonths maps a quality score to the predicted shelf life in months.
func ShelfLifeMonths(score float64) int {
	switch {
	case score > 90:
		return 24
	case score > 85:
		return 18
	default:
		return 12
	}
}
