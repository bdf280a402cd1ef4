package evaluation

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/xeipuuv/gojsonschema"

	"github.com/artem13815/hrboard/pkg/candidate"
)

//go:embed schema.json
var schemaJSON string

var (
	schema   = mustSchema(schemaJSON)
	validate = validator.New()
	reFence  = regexp.MustCompile("(?s)^```[a-zA-Z]*\\s*(.*?)\\s*```$")
)

func mustSchema(src string) *gojsonschema.Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
	if err != nil {
		panic(fmt.Sprintf("evaluation schema: %v", err))
	}
	return s
}

// Parse validates an oracle payload and decodes it. Checks run in order:
// JSON Schema, struct tags, score banding. Nothing is coerced.
func Parse(payload string) (candidate.Evaluation, error) {
	payload = stripFence(payload)
	if payload == "" {
		return candidate.Evaluation{}, ErrOracleEmptyResponse
	}

	res, err := schema.Validate(gojsonschema.NewStringLoader(payload))
	if err != nil {
		return candidate.Evaluation{}, fmt.Errorf("%w: not json: %v", ErrOracleMalformedResponse, err)
	}
	if !res.Valid() {
		details := make([]string, 0, len(res.Errors()))
		for _, desc := range res.Errors() {
			field := desc.Field()
			if field == "" {
				field = "(root)"
			}
			details = append(details, field+": "+desc.Description())
		}
		return candidate.Evaluation{}, fmt.Errorf("%w: %s", ErrOracleMalformedResponse, strings.Join(details, "; "))
	}

	var ev candidate.Evaluation
	if err := json.Unmarshal([]byte(payload), &ev); err != nil {
		return candidate.Evaluation{}, fmt.Errorf("%w: %v", ErrOracleMalformedResponse, err)
	}
	if err := validate.Struct(ev); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			details := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				details = append(details, fmt.Sprintf("%s: failed %s", fe.Namespace(), fe.Tag()))
			}
			return candidate.Evaluation{}, fmt.Errorf("%w: %s", ErrOracleMalformedResponse, strings.Join(details, "; "))
		}
		return candidate.Evaluation{}, fmt.Errorf("%w: %v", ErrOracleMalformedResponse, err)
	}
	if !ev.Consistent() {
		return candidate.Evaluation{}, fmt.Errorf("%w: recommendation %q does not match overallScore %v (want %q)",
			ErrOracleMalformedResponse, ev.Recommendation, ev.OverallScore, candidate.RecommendationForScore(ev.OverallScore))
	}
	return ev, nil
}

func stripFence(s string) string {
	s = strings.TrimSpace(s)
	if m := reFence.FindStringSubmatch(s); m != nil {
		return strings.TrimSpace(m[1])
	}
	return s
}
