package intent

import (
	"context"
	"errors"
	"strings"
	"testing"

	"trimly/models"
	"trimly/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubLLM struct {
	reply string
	err   error
}

func (s *stubLLM) Complete(ctx context.Context, prompt string, history []models.Turn) (string, error) {
	return s.reply, s.err
}

func newTestExtractor(llm LLMClient) *Extractor {
	inv := store.NewInventory(store.DefaultCatalog())
	return NewExtractor(llm, inv, zap.NewNop())
}

func TestFallbackExtractsFullIntent(t *testing.T) {
	e := newTestExtractor(&stubLLM{err: errors.New("upstream down")})

	result := e.Extract(context.Background(), "book a haircut for Anna on 2025-09-13 at 11:00", nil)

	require.NotNil(t, result.Intent)
	assert.Equal(t, "Haircut", result.Intent.Service)
	assert.Equal(t, "Anna", result.Intent.CustomerName)
	assert.Equal(t, "2025-09-13", result.Intent.Date)
	assert.Equal(t, "11:00", result.Intent.Time)
}

func TestFallbackWithoutLLMClient(t *testing.T) {
	e := newTestExtractor(nil)

	result := e.Extract(context.Background(), "beard trim for Omar on 2025-09-14 at 9:30", nil)

	require.NotNil(t, result.Intent)
	assert.Equal(t, "Beard trim", result.Intent.Service)
	assert.Equal(t, "Omar", result.Intent.CustomerName)
	assert.Equal(t, "09:30", result.Intent.Time, "single-digit hours are zero-padded")
}

func TestMissingFieldsAskedInOrder(t *testing.T) {
	e := newTestExtractor(&stubLLM{err: errors.New("upstream down")})

	result := e.Extract(context.Background(), "I'd like a haircut at 11:00", nil)

	require.Nil(t, result.Intent)
	require.NotEmpty(t, result.Question)
	// Name is requested before date; the time was already given.
	nameIdx := strings.Index(result.Question, "your name")
	dateIdx := strings.Index(result.Question, "the date")
	require.GreaterOrEqual(t, nameIdx, 0)
	require.GreaterOrEqual(t, dateIdx, 0)
	assert.Less(t, nameIdx, dateIdx)
	assert.NotContains(t, result.Question, "the time")
}

func TestLLMJSONReplyWins(t *testing.T) {
	e := newTestExtractor(&stubLLM{
		reply: `Sure! {"service": "Shave", "customer_name": "Bo", "date": "2025-09-14", "time": "12:00"}`,
	})

	result := e.Extract(context.Background(), "whatever the model saw", nil)

	require.NotNil(t, result.Intent)
	assert.Equal(t, "Shave", result.Intent.Service)
	assert.Equal(t, "Bo", result.Intent.CustomerName)
}

func TestLLMPartialJSONAsksFollowUp(t *testing.T) {
	e := newTestExtractor(&stubLLM{
		reply: `{"service": "Haircut", "customer_name": "", "date": "2025-09-13", "time": ""}`,
	})

	result := e.Extract(context.Background(), "haircut on the 13th", nil)

	require.Nil(t, result.Intent)
	assert.NotEmpty(t, result.Question)
}

func TestProseReplySurfacedAsChat(t *testing.T) {
	e := newTestExtractor(&stubLLM{reply: "We're open every day from nine to five."})

	result := e.Extract(context.Background(), "what are your opening hours?", nil)

	require.Nil(t, result.Intent)
	assert.Empty(t, result.Question)
	assert.Equal(t, "We're open every day from nine to five.", result.Reply)
}

func TestNoSignalNoLLMGetsCannedReply(t *testing.T) {
	e := newTestExtractor(&stubLLM{err: errors.New("upstream down")})

	result := e.Extract(context.Background(), "tell me something", nil)

	require.Nil(t, result.Intent)
	assert.Equal(t, fallbackReply, result.Reply)
}

func TestExtractorNeverPanics(t *testing.T) {
	e := newTestExtractor(&stubLLM{reply: "{not json at all"})

	for _, msg := range []string{"", "for", "at 99:99", "2025-13-45", "{{{", "for 2025-09-13"} {
		result := e.Extract(context.Background(), msg, nil)
		assert.True(t, result.Intent != nil || result.Question != "" || result.Reply != "",
			"input %q must yield a structured result", msg)
	}
}

