package chat

import "fmt"

// PriceRange is an estimated price bracket for a recommendation.
// Zero bounds mean the model did not commit to a price; the formatter
// renders those as "Not available" rather than failing the result.
type PriceRange struct {
	MinPrice int    `json:"min_price"`
	MaxPrice int    `json:"max_price"`
	Type     string `json:"type"`
}

// RecommendationItem is one recommended vehicle.
type RecommendationItem struct {
	Make       string     `json:"make"`
	Model      string     `json:"model"`
	Summary    string     `json:"summary"`
	PriceRange PriceRange `json:"price_range"`
}

// RecommendationSet is the recommender's decoded reply.
type RecommendationSet struct {
	Recommendations []RecommendationItem `json:"recommendations"`
}

// Validate fails the whole result when a required field is missing.
// Price fields are deliberately exempt.
func (s RecommendationSet) Validate() error {
	for i, r := range s.Recommendations {
		if r.Make == "" || r.Model == "" || r.Summary == "" {
			return fmt.Errorf("recommendation %d: missing make, model or summary", i)
		}
	}
	return nil
}

// ComparisonItem is one side of a side-by-side comparison.
type ComparisonItem struct {
	Model      string   `json:"model"`
	Summary    string   `json:"summary"`
	Strengths  []string `json:"strengths"`
	Weaknesses []string `json:"weaknesses"`
}

// ComparisonSet is the comparator's decoded reply.
type ComparisonSet struct {
	Comparison []ComparisonItem `json:"comparison"`
}

// Validate fails the whole result when any item lacks a model name or
// summary. A partially trusted comparison is worse than none.
func (s ComparisonSet) Validate() error {
	for i, c := range s.Comparison {
		if c.Model == "" || c.Summary == "" {
			return fmt.Errorf("comparison %d: missing model or summary", i)
		}
	}
	return nil
}

// AnalysisResult is the analyzer's decoded reply for a single model.
type AnalysisResult struct {
	Model         string   `json:"model"`
	Overview      string   `json:"overview"`
	Pros          []string `json:"pros"`
	Cons          []string `json:"cons"`
	Audience      string   `json:"audience"`
	PriceEstimate string   `json:"price_estimate"`
}

// Validate requires the identifying fields; pros, cons, audience and
// price are rendered as given.
func (a AnalysisResult) Validate() error {
	if a.Model == "" {
		return fmt.Errorf("analysis: missing model")
	}
	if a.Overview == "" {
		return fmt.Errorf("analysis: missing overview")
	}
	return nil
}
