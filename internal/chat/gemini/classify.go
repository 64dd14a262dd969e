package gemini

import (
	"encoding/json"
	"strings"
)

// OutcomeKind tags the single shape a generateContent envelope reduces to.
type OutcomeKind int

const (
	TextReply OutcomeKind = iota
	FunctionCallReply
	EmptyReply
	SafetyBlockedReply
	PromptBlocked
	MalformedShape
)

// Outcome is the classified view of one envelope. Exactly one kind applies;
// the other fields are populated as relevant for that kind. Raw always holds
// the original body for diagnostics.
type Outcome struct {
	Kind          OutcomeKind
	Text          string          // TextReply, trimmed
	FunctionCall  json.RawMessage // FunctionCallReply
	FinishReason  string
	SafetyRatings []SafetyRating
	BlockReason   string // PromptBlocked
	Detail        string // MalformedShape
	Raw           json.RawMessage
}

// Classify reduces a raw 2xx envelope body to exactly one Outcome so every
// envelope shape is handled in a single place. Precedence follows the
// candidates list first, then prompt feedback, then malformed.
func Classify(raw []byte) Outcome {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return Outcome{
			Kind:   MalformedShape,
			Detail: "invalid JSON from Gemini: " + err.Error(),
			Raw:    raw,
		}
	}

	if len(env.Candidates) > 0 {
		return classifyCandidate(env.Candidates[0], raw)
	}

	if env.PromptFeedback != nil && env.PromptFeedback.BlockReason != "" {
		return Outcome{
			Kind:          PromptBlocked,
			BlockReason:   env.PromptFeedback.BlockReason,
			SafetyRatings: env.PromptFeedback.SafetyRatings,
			Raw:           raw,
		}
	}

	return Outcome{
		Kind:   MalformedShape,
		Detail: "unexpected response structure from Gemini",
		Raw:    raw,
	}
}

func classifyCandidate(cand Candidate, raw []byte) Outcome {
	if cand.Content == nil || len(cand.Content.Parts) == 0 {
		return Outcome{
			Kind:   MalformedShape,
			Detail: "invalid response structure from Gemini: missing content or parts",
			Raw:    raw,
		}
	}

	first := cand.Content.Parts[0]
	text := strings.TrimSpace(first.Text)

	switch {
	case text != "":
		// A partial answer cut off by safety filters still counts as text;
		// the caller logs the finish reason.
		return Outcome{
			Kind:          TextReply,
			Text:          text,
			FinishReason:  cand.FinishReason,
			SafetyRatings: cand.SafetyRatings,
			Raw:           raw,
		}
	case len(first.FunctionCall) > 0:
		return Outcome{
			Kind:          FunctionCallReply,
			FunctionCall:  first.FunctionCall,
			FinishReason:  cand.FinishReason,
			SafetyRatings: cand.SafetyRatings,
			Raw:           raw,
		}
	case cand.FinishReason == FinishReasonSafety:
		return Outcome{
			Kind:          SafetyBlockedReply,
			FinishReason:  cand.FinishReason,
			SafetyRatings: cand.SafetyRatings,
			Raw:           raw,
		}
	default:
		return Outcome{
			Kind:         EmptyReply,
			FinishReason: cand.FinishReason,
			Raw:          raw,
		}
	}
}
