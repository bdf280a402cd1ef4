package evaluation

import (
	"encoding/json"
	"fmt"

	"github.com/artem13815/hrboard/pkg/candidate"
)

const systemPrompt = "You are an expert HR recruiter. Respond with a single JSON object only: no markdown, no code fences, no commentary."

const userPromptTemplate = `You are an expert HR recruiter with 20 years of experience. Analyze the candidate's resume and provide a comprehensive evaluation.

CANDIDATE DATA:
%s

JOB DESCRIPTION:
%s

Please evaluate the candidate specifically for this role.

EVALUATION CRITERIA:
- Skills match and relevance
- Years of experience
- Education background
- Project complexity and scope
- Career progression

RESPONSE FORMAT:
You MUST return a valid JSON object with this exact structure:
{
    "overallScore": 85,
    "roleSuitability": [
        {
            "role": "Software Engineer",
            "score": 85,
            "reasoning": "Strong programming background but limited cloud experience"
        }
    ],
    "strengths": ["JavaScript", "React", "5 years experience"],
    "weaknesses": ["No cloud experience", "Limited leadership"],
    "skillGaps": ["AWS", "Docker"],
    "recommendation": "strong",
    "evaluationSummary": "Overall strong candidate with solid technical foundation..."
}

SCORING GUIDELINES:
- Overall Score: 0-100 based on experience, skills, education, and relevance
- Recommendation: "strong" (75-100), "moderate" (50-74), "weak" (0-49)
- Be objective and fair in your assessment
`

// BuildPrompt renders the user prompt. Output depends only on its inputs.
func BuildPrompt(c candidate.Candidate, jobDescription string) (string, error) {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode candidate: %w", err)
	}
	return fmt.Sprintf(userPromptTemplate, data, jobDescription), nil
}
