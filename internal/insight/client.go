package insight

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"

	"riskwise/internal/risk"
)

// Client talks to the OpenAI chat completions API to turn an engine report
// into clinical commentary. The engine itself never calls this; narrative
// generation is a collaborator around the pure computation.
type Client struct {
	apiKey     string
	httpClient *http.Client
}

type ContentItem struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

type ChatMessage struct {
	Role    string        `json:"role"`
	Content []ContentItem `json:"content"`
}

type ChatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type ChatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

type TokenUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// ConditionInsight is the model's commentary for one scored condition.
type ConditionInsight struct {
	Condition   string `json:"condition"`
	Explanation string `json:"explanation"`
}

type riskInsightResponse struct {
	Summary    string             `json:"summary"`
	Conditions []ConditionInsight `json:"conditions"`
}

func NewClient() (*Client, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable is not set")
	}

	return &Client{
		apiKey:     apiKey,
		httpClient: &http.Client{},
	}, nil
}

func buildReportTable(report *risk.AssessmentReport) string {
	var table strings.Builder
	table.WriteString("| Condition | Risk Percentage | Key Factors |\n")
	table.WriteString("|-----|-----|-----|\n")

	for _, res := range report.Results {
		table.WriteString(fmt.Sprintf("| %s | %.1f%% | %s |\n",
			risk.DisplayName(res.Condition), res.RiskPercentage, strings.Join(res.KeyFactors, ", ")))
	}

	return table.String()
}

func buildPatientSummary(rec risk.PatientRecord) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("- Age: %d, Gender: %s, BMI: %.1f\n", rec.Age, rec.Gender, rec.BMI))
	b.WriteString(fmt.Sprintf("- Lifestyle: smoking %s, alcohol %s, exercise %s, diet %s\n",
		rec.Smoking, rec.Alcohol, rec.Exercise, rec.Diet))
	b.WriteString(fmt.Sprintf("- Vitals: BP %d/%d mmHg, heart rate %d bpm\n",
		rec.SystolicBP, rec.DiastolicBP, rec.HeartRate))
	b.WriteString(fmt.Sprintf("- Labs: fasting glucose %.0f mg/dL, HbA1c %.1f%%, cholesterol total/LDL/HDL %.0f/%.0f/%.0f mg/dL\n",
		rec.FastingGlucose, rec.HbA1c, rec.TotalCholesterol, rec.LDLCholesterol, rec.HDLCholesterol))
	return b.String()
}

// GenerateRiskInsights produces the free-text commentary for a completed
// assessment: a short summary plus one explanation per condition.
func (c *Client) GenerateRiskInsights(ctx context.Context, rec risk.PatientRecord, report *risk.AssessmentReport) (string, []ConditionInsight, TokenUsage, error) {
	systemPrompt := fmt.Sprintf(`### General Request:
Your job is to explain a patient's health risk assessment results for a wellness app.

### How to Act:
- Act as a **medical AI explainer** for preventive health screening.
- Use simple, everyday language that anyone can understand, especially non-experts.
- Avoid medical jargon; if a clinical term is needed, explain it in plain language.
- Never diagnose. The percentages are screening estimates, not diagnoses.

### Context:
- Each condition was scored by a deterministic weighted-factor model.
- "Key Factors" are the inputs that contributed the most to that condition's score, ranked by contribution.

### Condition Reference:
%s

### Output Format:
The output must be a JSON object with the following structure:
- 'summary': A 2-sentence overview of the patient's strongest risks and the most impactful changes they could make.
- 'conditions': An array with one entry per condition. Each object must include:
    - 'condition': The condition identifier exactly as given (e.g. "type_2_diabetes").
    - 'explanation': Why this patient's score came out as it did, referencing their key factors (2 sentences).
Do not enclose the JSON in markdown code. Only return the JSON object.

### IMPORTANT:
- Use the condition identifiers %s in the "condition" field, not the display names.
- Cover every condition in the report exactly once.
`, buildReportTable(report), strings.Join(risk.ConditionOrder, ", "))

	userPrompt := fmt.Sprintf(`Please explain this risk assessment.

Patient profile:
%s
Assessment results:
%s`, buildPatientSummary(rec), buildReportTable(report))

	messages := []ChatMessage{
		{
			Role: "system",
			Content: []ContentItem{
				{
					Type: "text",
					Text: systemPrompt,
				},
			},
		},
		{
			Role: "user",
			Content: []ContentItem{
				{
					Type: "text",
					Text: userPrompt,
				},
			},
		},
	}

	req := ChatCompletionRequest{
		Model:       "gpt-4o",
		Messages:    messages,
		Temperature: 0.2,
		MaxTokens:   2000,
	}

	jsonData, err := json.Marshal(req)
	if err != nil {
		return "", nil, TokenUsage{}, fmt.Errorf("failed to marshal request: %v", err)
	}

	request, err := http.NewRequestWithContext(ctx, "POST", "https://api.openai.com/v1/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", nil, TokenUsage{}, fmt.Errorf("failed to create request: %v", err)
	}

	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))

	response, err := c.httpClient.Do(request)
	if err != nil {
		return "", nil, TokenUsage{}, fmt.Errorf("failed to send request: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		var errorResponse struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		if err := json.NewDecoder(response.Body).Decode(&errorResponse); err != nil {
			return "", nil, TokenUsage{}, fmt.Errorf("OpenAI API returned non-200 status code: %d", response.StatusCode)
		}
		return "", nil, TokenUsage{}, fmt.Errorf("OpenAI API error: %s", errorResponse.Error.Message)
	}

	var result ChatCompletionResponse
	if err := json.NewDecoder(response.Body).Decode(&result); err != nil {
		return "", nil, TokenUsage{}, fmt.Errorf("failed to decode response: %v", err)
	}

	if len(result.Choices) == 0 {
		return "", nil, TokenUsage{}, fmt.Errorf("no completion choices returned")
	}

	content := result.Choices[0].Message.Content

	tokenUsage := TokenUsage{
		PromptTokens:     result.Usage.PromptTokens,
		CompletionTokens: result.Usage.CompletionTokens,
		TotalTokens:      result.Usage.TotalTokens,
	}

	var parsed riskInsightResponse
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		return "", nil, tokenUsage, fmt.Errorf("failed to parse JSON response: %v", err)
	}

	// Keep only insights for conditions the report actually contains, in
	// report order, so malformed model output cannot reorder or invent rows.
	byCondition := make(map[string]ConditionInsight, len(parsed.Conditions))
	for _, ci := range parsed.Conditions {
		byCondition[ci.Condition] = ci
	}

	insights := make([]ConditionInsight, 0, len(report.Results))
	for _, res := range report.Results {
		if ci, ok := byCondition[res.Condition]; ok {
			insights = append(insights, ci)
		}
	}

	if len(insights) == 0 {
		return "", nil, tokenUsage, fmt.Errorf("failed to parse insights from the response. Raw content: %s", content)
	}

	return parsed.Summary, insights, tokenUsage, nil
}
