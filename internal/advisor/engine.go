package advisor

import (
	"context"
	"log/slog"
	"time"

	"github.com/autovisory/autovisory/internal/chat"
	"github.com/autovisory/autovisory/internal/llm"
	"github.com/autovisory/autovisory/internal/metrics"
)

// Engine runs the full per-turn loop: append the user turn, classify,
// dispatch, append the assistant turn. The classifier and executors are
// stateless; the log is owned by exactly one session.
type Engine struct {
	classifier *Classifier
	dispatcher *Dispatcher
	stats      *metrics.Collector
	logger     *slog.Logger
}

// New wires an engine over a single generator. marketContext may be
// empty; stats may be nil.
func New(gen llm.Generator, marketContext string, stats *metrics.Collector, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		classifier: NewClassifier(gen, logger),
		dispatcher: NewDispatcher(
			NewRecommender(gen, marketContext),
			NewComparator(gen),
			NewAnalyzer(gen),
			stats,
			logger,
		),
		stats:  stats,
		logger: logger,
	}
}

// HandleTurn processes one user utterance and returns the assistant's
// reply. Exactly two turns are appended to the log: the user's and the
// assistant's. The reply is never empty.
func (e *Engine) HandleTurn(ctx context.Context, log *chat.Log, text string) string {
	log.Append(chat.Turn{Role: chat.RoleUser, Content: text})

	start := time.Now()
	cls := e.classifier.Classify(ctx, log, text)
	if e.stats != nil {
		e.stats.RecordTiming(metrics.OpClassify, time.Since(start), cls.Action == chat.ActionError)
	}

	reply := e.dispatcher.Dispatch(ctx, cls, log, text)

	log.Append(chat.Turn{Role: chat.RoleAssistant, Content: reply})

	e.logger.Info("turn handled",
		"session", log.SessionID(),
		"action", cls.Action,
		"turns", log.Len(),
	)
	return reply
}
