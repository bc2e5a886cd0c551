package advisor

import (
	"context"

	"github.com/autovisory/autovisory/internal/chat"
	"github.com/autovisory/autovisory/internal/llm"
	"github.com/autovisory/autovisory/internal/parser"
	"github.com/autovisory/autovisory/internal/prompts"
)

// Each executor performs exactly one model call per invocation and
// converts every failure at its own boundary into an in-band value: an
// empty result plus the error for logging. Nothing propagates.

// Recommender asks the model for three vehicle picks matching the
// conversation so far.
type Recommender struct {
	gen llm.Generator
	// marketContext, when non-empty, is appended to every prompt as a
	// price sanity check from the reference listings.
	marketContext string
}

// NewRecommender creates a recommender. marketContext may be empty.
func NewRecommender(gen llm.Generator, marketContext string) *Recommender {
	return &Recommender{gen: gen, marketContext: marketContext}
}

// Run builds the recommendation prompt from the serialized transcript
// and returns the validated items. On any failure the list is empty;
// callers treat that as "insufficient detail", never as an error to
// surface directly.
func (r *Recommender) Run(ctx context.Context, transcript string) ([]chat.RecommendationItem, error) {
	prompt := prompts.Recommend(transcript, r.marketContext)

	set, err := llm.GenerateParsed(ctx, r.gen, prompt, 1, func(raw string) (chat.RecommendationSet, error) {
		var s chat.RecommendationSet
		if err := parser.Decode(raw, &s); err != nil {
			return chat.RecommendationSet{}, err
		}
		if err := s.Validate(); err != nil {
			return chat.RecommendationSet{}, err
		}
		return s, nil
	})
	if err != nil {
		return nil, err
	}
	return set.Recommendations, nil
}

// Comparator asks the model for a side-by-side comparison of the
// models implied by the conversation.
type Comparator struct {
	gen llm.Generator
}

// NewComparator creates a comparator.
func NewComparator(gen llm.Generator) *Comparator {
	return &Comparator{gen: gen}
}

// Run returns the validated comparison items, or an empty list with the
// cause when the call or parse failed.
func (c *Comparator) Run(ctx context.Context, transcript string) ([]chat.ComparisonItem, error) {
	prompt := prompts.Compare(transcript)

	set, err := llm.GenerateParsed(ctx, c.gen, prompt, 1, func(raw string) (chat.ComparisonSet, error) {
		var s chat.ComparisonSet
		if err := parser.Decode(raw, &s); err != nil {
			return chat.ComparisonSet{}, err
		}
		if err := s.Validate(); err != nil {
			return chat.ComparisonSet{}, err
		}
		return s, nil
	})
	if err != nil {
		return nil, err
	}
	return set.Comparison, nil
}

// Analyzer asks the model for an analysis of one named model. The name
// comes from the entity extractor, not from the conversation.
type Analyzer struct {
	gen llm.Generator
}

// NewAnalyzer creates an analyzer.
func NewAnalyzer(gen llm.Generator) *Analyzer {
	return &Analyzer{gen: gen}
}

// Run returns the validated analysis or nil with the cause.
func (a *Analyzer) Run(ctx context.Context, modelName string) (*chat.AnalysisResult, error) {
	prompt := prompts.Analyze(modelName)

	result, err := llm.GenerateParsed(ctx, a.gen, prompt, 1, func(raw string) (chat.AnalysisResult, error) {
		var r chat.AnalysisResult
		if err := parser.Decode(raw, &r); err != nil {
			return chat.AnalysisResult{}, err
		}
		if err := r.Validate(); err != nil {
			return chat.AnalysisResult{}, err
		}
		return r, nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
