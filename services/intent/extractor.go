package intent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"trimly/models"

	"go.uber.org/zap"
)

// Result is the extractor's outcome: exactly one of Intent, Question or
// Reply is meaningful. Intent is set when every required field was found;
// Question asks for the missing fields; Reply is a plain conversational
// answer for messages with no booking signal at all.
type Result struct {
	Intent   *models.BookingIntent
	Question string
	Reply    string
}

// Extractor turns a chat message plus its conversation history into a
// booking intent, preferring the LLM and degrading to the deterministic
// matchers when the LLM is unavailable or answers with prose.
type Extractor struct {
	LLM    LLMClient // may be nil: fallback-only mode
	Slots  SlotCatalog
	Logger *zap.Logger
	// Now is swappable for tests; defaults to time.Now.
	Now func() time.Time
}

// SlotCatalog is the read-side of the inventory the prompt embeds.
type SlotCatalog interface {
	All() map[string][]string
}

func NewExtractor(llm LLMClient, slots SlotCatalog, logger *zap.Logger) *Extractor {
	return &Extractor{LLM: llm, Slots: slots, Logger: logger, Now: time.Now}
}

const fallbackReply = "I can help you book an appointment. Tell me the service, your name, and the date and time you'd like."

// Extract produces a terminating, structurally valid result for any input:
// a complete intent, a follow-up question, or a plain reply. It never
// returns an error to the caller; LLM failures degrade transparently.
func (e *Extractor) Extract(ctx context.Context, message string, history []models.Turn) Result {
	var llmReply string
	if e.LLM != nil {
		reply, err := e.LLM.Complete(ctx, e.buildPrompt(message), history)
		if err != nil {
			e.Logger.Warn("llm call failed, using deterministic extraction", zap.Error(err))
		} else {
			llmReply = reply
			if intent, ok := parseIntentJSON(reply); ok {
				return e.validate(intent)
			}
		}
	}

	intent := fallbackExtract(message)
	if intent == (models.BookingIntent{}) {
		// No booking signal anywhere. Surface the model's own wording when
		// it answered with prose; otherwise fall back to a canned line.
		if strings.TrimSpace(llmReply) != "" {
			return Result{Reply: strings.TrimSpace(llmReply)}
		}
		return Result{Reply: fallbackReply}
	}
	return e.validate(intent)
}

func (e *Extractor) validate(intent models.BookingIntent) Result {
	if intent.Service == "" {
		intent.Service = DefaultService
	}
	if !intent.Complete() {
		missing := intent.MissingFields()
		return Result{Question: fmt.Sprintf(
			"Almost there! To book your %s I still need %s.",
			strings.ToLower(intent.Service), joinNaturally(missing),
		)}
	}
	return Result{Intent: &intent}
}

// buildPrompt embeds the current slot catalog and today's date, and pins the
// reply format to a single-line JSON object or a clarifying question.
func (e *Extractor) buildPrompt(message string) string {
	catalog, _ := json.Marshal(e.Slots.All())
	today := e.Now().Format("2006-01-02")

	var sb strings.Builder
	sb.WriteString("You are a booking assistant for a barbershop. Today is ")
	sb.WriteString(today)
	sb.WriteString(".\nAvailable slots (date -> free times): ")
	sb.Write(catalog)
	sb.WriteString("\nFrom the customer's message, extract the booking details.\n")
	sb.WriteString(`Respond with a single line of JSON with exactly these keys: {"service": ..., "customer_name": ..., "date": "YYYY-MM-DD", "time": "HH:MM"}.`)
	sb.WriteString("\nIf any detail is unknown, instead ask one short clarifying question.\n")
	sb.WriteString("Customer message: ")
	sb.WriteString(message)
	return sb.String()
}

// parseIntentJSON digs a JSON object out of the reply, tolerating prose or
// code fences around it. Returns false when no object with at least one
// expected key can be decoded.
func parseIntentJSON(reply string) (models.BookingIntent, bool) {
	start := strings.Index(reply, "{")
	end := strings.LastIndex(reply, "}")
	if start < 0 || end <= start {
		return models.BookingIntent{}, false
	}
	var intent models.BookingIntent
	if err := json.Unmarshal([]byte(reply[start:end+1]), &intent); err != nil {
		return models.BookingIntent{}, false
	}
	if intent == (models.BookingIntent{}) {
		return models.BookingIntent{}, false
	}
	return intent, true
}

func joinNaturally(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + ", and " + items[len(items)-1]
	}
}
