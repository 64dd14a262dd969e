package gemini

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_TextReply(t *testing.T) {
	raw := []byte(`{"candidates":[{"content":{"parts":[{"text":"  Hello there!  "}]},"finishReason":"STOP"}]}`)

	out := Classify(raw)

	assert.Equal(t, TextReply, out.Kind)
	assert.Equal(t, "Hello there!", out.Text)
	assert.Equal(t, "STOP", out.FinishReason)
}

func TestClassify_TextReply_PartialWithSafetyFinish(t *testing.T) {
	raw := []byte(`{"candidates":[{"content":{"parts":[{"text":"partial answer"}]},"finishReason":"SAFETY","safetyRatings":[{"category":"HARM_CATEGORY_HARASSMENT","probability":"HIGH"}]}]}`)

	out := Classify(raw)

	// Partial text survives a safety cut-off; callers decide what to log.
	assert.Equal(t, TextReply, out.Kind)
	assert.Equal(t, "partial answer", out.Text)
	assert.Equal(t, FinishReasonSafety, out.FinishReason)
	require.Len(t, out.SafetyRatings, 1)
	assert.Equal(t, "HARM_CATEGORY_HARASSMENT", out.SafetyRatings[0].Category)
}

func TestClassify_FunctionCallReply(t *testing.T) {
	raw := []byte(`{"candidates":[{"content":{"parts":[{"functionCall":{"name":"get_weather","args":{"city":"Colombo"}}}]},"finishReason":"STOP"}]}`)

	out := Classify(raw)

	assert.Equal(t, FunctionCallReply, out.Kind)
	assert.Contains(t, string(out.FunctionCall), "get_weather")
}

func TestClassify_EmptyReply(t *testing.T) {
	raw := []byte(`{"candidates":[{"content":{"parts":[{"text":""}]},"finishReason":"STOP"}]}`)

	out := Classify(raw)

	assert.Equal(t, EmptyReply, out.Kind)
}

func TestClassify_SafetyBlockedReply(t *testing.T) {
	raw := []byte(`{"candidates":[{"content":{"parts":[{"text":""}]},"finishReason":"SAFETY","safetyRatings":[{"category":"HARM_CATEGORY_DANGEROUS_CONTENT","probability":"HIGH"}]}]}`)

	out := Classify(raw)

	assert.Equal(t, SafetyBlockedReply, out.Kind)
	require.Len(t, out.SafetyRatings, 1)
	assert.Equal(t, "HIGH", out.SafetyRatings[0].Probability)
}

func TestClassify_PromptBlocked(t *testing.T) {
	raw := []byte(`{"promptFeedback":{"blockReason":"SAFETY","safetyRatings":[{"category":"HARM_CATEGORY_HATE_SPEECH","probability":"MEDIUM"}]}}`)

	out := Classify(raw)

	assert.Equal(t, PromptBlocked, out.Kind)
	assert.Equal(t, "SAFETY", out.BlockReason)
	require.Len(t, out.SafetyRatings, 1)
}

func TestClassify_MissingContentOrParts(t *testing.T) {
	raw := []byte(`{"candidates":[{"finishReason":"STOP"}]}`)

	out := Classify(raw)

	assert.Equal(t, MalformedShape, out.Kind)
	assert.Contains(t, out.Detail, "missing content or parts")
}

func TestClassify_UnexpectedStructure(t *testing.T) {
	raw := []byte(`{"usageMetadata":{"totalTokenCount":12}}`)

	out := Classify(raw)

	assert.Equal(t, MalformedShape, out.Kind)
	assert.Contains(t, out.Detail, "unexpected response structure")
	assert.Equal(t, raw, []byte(out.Raw))
}

func TestClassify_InvalidJSON(t *testing.T) {
	raw := []byte(`not json at all`)

	out := Classify(raw)

	assert.Equal(t, MalformedShape, out.Kind)
	assert.Contains(t, out.Detail, "invalid JSON")
}

func TestClassify_CandidatesTakePrecedenceOverPromptFeedback(t *testing.T) {
	raw := []byte(`{"candidates":[{"content":{"parts":[{"text":"ok"}]},"finishReason":"STOP"}],"promptFeedback":{"blockReason":"SAFETY"}}`)

	out := Classify(raw)

	assert.Equal(t, TextReply, out.Kind)
	assert.Equal(t, "ok", out.Text)
}
