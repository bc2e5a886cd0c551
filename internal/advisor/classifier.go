// Package advisor implements the dialogue orchestration engine: intent
// classification, task execution and dispatch.
package advisor

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/autovisory/autovisory/internal/chat"
	"github.com/autovisory/autovisory/internal/llm"
	"github.com/autovisory/autovisory/internal/parser"
	"github.com/autovisory/autovisory/internal/prompts"
)

// classifyAttempts is the total model-invocation budget for one
// classification. Fixed by design, not configurable.
const classifyAttempts = 2

// apologyClassify is returned when both attempts failed to produce a
// parseable envelope.
const apologyClassify = "Sorry, I had trouble understanding that. Could you please rephrase?"

// Classifier maps conversation history plus the latest utterance to a
// single action. Stateless; safe to share across sessions.
type Classifier struct {
	gen    llm.Generator
	logger *slog.Logger
}

// NewClassifier creates a classifier over the given generator.
func NewClassifier(gen llm.Generator, logger *slog.Logger) *Classifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Classifier{gen: gen, logger: logger}
}

// Classify prompts the model to pick exactly one action for the latest
// query, retrying once on a malformed reply. It never mutates the log
// and never returns an error: exhaustion degrades to ActionError with a
// fixed apology.
func (c *Classifier) Classify(ctx context.Context, log *chat.Log, latestQuery string) chat.Classification {
	prompt := prompts.Classify(log.Transcript(), latestQuery)

	result, err := llm.GenerateParsed(ctx, c.gen, prompt, classifyAttempts, parseClassification)
	if err != nil {
		c.logger.Warn("classification exhausted",
			"session", log.SessionID(),
			"error", err,
		)
		return chat.Classification{Action: chat.ActionError, Response: apologyClassify}
	}

	c.logger.Debug("classified query",
		"session", log.SessionID(),
		"action", result.Action,
	)
	return result
}

func parseClassification(raw string) (chat.Classification, error) {
	var env chat.Classification
	if err := parser.Decode(raw, &env); err != nil {
		return chat.Classification{}, err
	}
	if env.Action == "" {
		return chat.Classification{}, fmt.Errorf("envelope missing action")
	}
	return env, nil
}
