package resume

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/artem13815/hrboard/pkg/llm"
)

const defaultMaxChars = 12000

// LLMExtractor извлекает текст из файла локально и просит LLM разложить его по полям.
type LLMExtractor struct {
	llm      llm.ChatModel
	maxChars int
	log      *zap.Logger
}

var _ Extractor = (*LLMExtractor)(nil)

func NewLLMExtractor(model llm.ChatModel, log *zap.Logger) *LLMExtractor {
	if log == nil {
		log = zap.NewNop()
	}
	return &LLMExtractor{llm: model, maxChars: defaultMaxChars, log: log}
}

const extractSystemPrompt = "You are a resume parser. Return ONLY one JSON object, no markdown, no code fences, no commentary. " +
	"Use null or omit fields you cannot find. Never invent facts."

const extractUserPrompt = `Resume text between markers:
<<<
%s
>>>

Return exactly one JSON object with this structure:
{
  "candidateName": {"firstName": string, "familyName": string},
  "email": string[],
  "phoneNumber": string[],
  "summary": string,
  "totalYearsExperience": number,
  "workExperience": [{"jobTitle": string, "organization": string, "dates": {"startDate": "YYYY-MM-DD", "endDate": "YYYY-MM-DD" | null, "isCurrent": boolean}, "jobDescription": string}],
  "education": [{"accreditation": {"education": string, "educationLevel": string}}],
  "skill": [{"name": string}]
}`

func (e *LLMExtractor) Extract(ctx context.Context, filename string, data []byte) (RawFields, error) {
	text, err := ParseResumeText(filename, data)
	if err != nil {
		return RawFields{}, fmt.Errorf("%w: %w", ErrExtraction, err)
	}
	if text == "" {
		return RawFields{}, fmt.Errorf("%w: empty resume content", ErrExtraction)
	}
	if e.llm == nil {
		return RawFields{}, fmt.Errorf("%w: %v", ErrExtraction, llm.ErrNotConfigured)
	}
	if r := []rune(text); len(r) > e.maxChars {
		text = string(r[:e.maxChars])
	}

	raw, err := e.llm.AskJSON(ctx, extractSystemPrompt, fmt.Sprintf(extractUserPrompt, text))
	if err != nil {
		return RawFields{}, fmt.Errorf("%w: %v", ErrExtraction, err)
	}

	var out RawFields
	if err := json.Unmarshal([]byte(jsonObject(raw)), &out); err != nil {
		e.log.Warn("extraction reply is not json",
			zap.String("filename", filename),
			zap.String("ai_model", e.llm.Model()),
			zap.Error(err),
		)
		return RawFields{}, fmt.Errorf("%w: decode reply: %v", ErrExtraction, err)
	}
	return out, nil
}

// jsonObject cuts the outermost {...} out of a reply that may carry prose around it.
func jsonObject(raw string) string {
	raw = strings.TrimSpace(raw)
	if i := strings.Index(raw, "{"); i >= 0 {
		if j := strings.LastIndex(raw, "}"); j > i {
			return raw[i : j+1]
		}
	}
	return raw
}
