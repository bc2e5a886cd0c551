package advisor

import (
	"context"
	"log/slog"
	"time"

	"github.com/autovisory/autovisory/internal/chat"
	"github.com/autovisory/autovisory/internal/extract"
	"github.com/autovisory/autovisory/internal/format"
	"github.com/autovisory/autovisory/internal/metrics"
)

// Fixed user-facing fallback messages. Raw failures never reach the user.
const (
	msgRecommendEmpty  = "Sorry, I couldn't find good options with the provided details. Could you be more specific?"
	msgAnalyzeNoModel  = "I couldn't identify a specific car model to analyze. Please try again."
	msgAnalyzeFailed   = "Sorry, I couldn't analyze that model. Please be more specific."
	msgCompareFailed   = "Sorry, I couldn't generate a comparison. Please mention at least two models clearly."
	msgCannedMissing   = "I'm not sure how to respond. Please try rephrasing."
	msgUnknownFallback = "I encountered an issue. Please try again."
)

// Dispatcher routes a classified action to the matching executor and
// renders the final response text. Stateless apart from the model calls
// the executors perform; identical inputs against a deterministic model
// produce identical output.
type Dispatcher struct {
	recommender *Recommender
	comparator  *Comparator
	analyzer    *Analyzer
	stats       *metrics.Collector
	logger      *slog.Logger
}

// NewDispatcher wires the three executors. stats may be nil.
func NewDispatcher(r *Recommender, c *Comparator, a *Analyzer, stats *metrics.Collector, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{recommender: r, comparator: c, analyzer: a, stats: stats, logger: logger}
}

// Dispatch produces the assistant's reply for one classified turn. The
// result is always non-empty, human-readable text. At most one executor
// runs per call.
func (d *Dispatcher) Dispatch(ctx context.Context, cls chat.Classification, log *chat.Log, latestQuery string) string {
	switch cls.Action {
	case chat.ActionSmallTalk, chat.ActionClarify, chat.ActionAnswerGeneral, chat.ActionReject:
		if cls.Response == "" {
			return msgCannedMissing
		}
		return cls.Response

	case chat.ActionRecommend:
		return d.recommend(ctx, log)

	case chat.ActionAnalyze:
		return d.analyze(ctx, log, latestQuery)

	case chat.ActionCompare:
		return d.compare(ctx, log)

	default:
		// Covers ActionError and anything the model invented.
		if cls.Response != "" {
			return cls.Response
		}
		return msgUnknownFallback
	}
}

// recommend serializes the full log; the recommender needs the whole
// requirements conversation, not just the last message.
func (d *Dispatcher) recommend(ctx context.Context, log *chat.Log) string {
	start := time.Now()
	items, err := d.recommender.Run(ctx, log.Transcript())
	d.record(metrics.OpRecommend, start, err != nil || len(items) == 0)

	if err != nil {
		d.logger.Warn("recommendation failed", "session", log.SessionID(), "error", err)
	}
	if len(items) == 0 {
		// Empty means insufficient detail, not an error to surface.
		return msgRecommendEmpty
	}
	return format.Recommendations(items)
}

// analyze extracts the model name from the latest query only; earlier
// turns would drag in models the user has moved past.
func (d *Dispatcher) analyze(ctx context.Context, log *chat.Log, latestQuery string) string {
	candidates := extract.Models(latestQuery)
	if len(candidates) == 0 {
		return msgAnalyzeNoModel
	}

	start := time.Now()
	result, err := d.analyzer.Run(ctx, candidates[0])
	d.record(metrics.OpAnalyze, start, err != nil)

	if err != nil {
		d.logger.Warn("analysis failed",
			"session", log.SessionID(),
			"model", candidates[0],
			"error", err,
		)
		return msgAnalyzeFailed
	}
	return format.Analysis(*result)
}

func (d *Dispatcher) compare(ctx context.Context, log *chat.Log) string {
	start := time.Now()
	items, err := d.comparator.Run(ctx, log.Transcript())
	d.record(metrics.OpCompare, start, err != nil || len(items) == 0)

	if err != nil {
		d.logger.Warn("comparison failed", "session", log.SessionID(), "error", err)
	}
	if len(items) == 0 {
		return msgCompareFailed
	}
	return format.Comparison(items)
}

func (d *Dispatcher) record(op string, start time.Time, failed bool) {
	if d.stats != nil {
		d.stats.RecordTiming(op, time.Since(start), failed)
	}
}
