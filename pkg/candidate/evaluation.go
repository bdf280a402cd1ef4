package candidate

// Recommendation is the oracle's verdict band.
type Recommendation string

const (
	RecommendationStrong   Recommendation = "strong"
	RecommendationModerate Recommendation = "moderate"
	RecommendationWeak     Recommendation = "weak"
)

// Score bands: strong [75,100], moderate [50,75), weak [0,50).
const (
	StrongThreshold   = 75
	ModerateThreshold = 50
)

// RecommendationForScore returns the band a score belongs to.
func RecommendationForScore(score float64) Recommendation {
	switch {
	case score >= StrongThreshold:
		return RecommendationStrong
	case score >= ModerateThreshold:
		return RecommendationModerate
	default:
		return RecommendationWeak
	}
}

type RoleSuitability struct {
	Role      string  `json:"role" validate:"required"`
	Score     float64 `json:"score" validate:"gte=0,lte=100"`
	Reasoning string  `json:"reasoning"`
}

// Evaluation is the structured LLM verdict on a candidate.
type Evaluation struct {
	OverallScore      float64           `json:"overallScore" validate:"gte=0,lte=100"`
	RoleSuitability   []RoleSuitability `json:"roleSuitability" validate:"dive"`
	Strengths         []string          `json:"strengths"`
	Weaknesses        []string          `json:"weaknesses"`
	SkillGaps         []string          `json:"skillGaps"`
	Recommendation    Recommendation    `json:"recommendation" validate:"oneof=strong moderate weak"`
	EvaluationSummary string            `json:"evaluationSummary"`
}

// Consistent reports whether Recommendation matches the band of OverallScore.
func (e Evaluation) Consistent() bool {
	return RecommendationForScore(e.OverallScore) == e.Recommendation
}
