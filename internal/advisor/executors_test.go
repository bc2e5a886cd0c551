package advisor

import (
	"context"
	"errors"
	"testing"
)

func TestRecommender_Run(t *testing.T) {
	t.Run("parses items from prose-wrapped JSON", func(t *testing.T) {
		gen := &cannedModel{reply: `Sure! {"recommendations": [
			{"make": "Toyota", "model": "Camry", "summary": "Reliable.",
			 "price_range": {"min_price": 25000, "max_price": 35000, "type": "New"}}
		]}`}
		r := NewRecommender(gen, "")

		items, err := r.Run(context.Background(), "user: I need a sedan")
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}
		if len(items) != 1 || items[0].Make != "Toyota" {
			t.Errorf("items = %+v", items)
		}
		if items[0].PriceRange.MinPrice != 25000 {
			t.Errorf("MinPrice = %d, want 25000", items[0].PriceRange.MinPrice)
		}
	})

	t.Run("exactly one call, no internal retry", func(t *testing.T) {
		gen := &cannedModel{reply: "not json"}
		r := NewRecommender(gen, "")

		if _, err := r.Run(context.Background(), "ctx"); err == nil {
			t.Fatal("expected error")
		}
		if gen.calls != 1 {
			t.Errorf("calls = %d, want 1", gen.calls)
		}
	})

	t.Run("item missing required field fails whole result", func(t *testing.T) {
		gen := &cannedModel{reply: `{"recommendations": [
			{"make": "Toyota", "model": "Camry", "summary": "Reliable."},
			{"make": "Honda", "model": "Accord"}
		]}`}
		r := NewRecommender(gen, "")

		items, err := r.Run(context.Background(), "ctx")
		if err == nil {
			t.Fatal("expected validation error")
		}
		if items != nil {
			t.Errorf("items = %+v, want nil on failure", items)
		}
	})

	t.Run("network error surfaces in-band", func(t *testing.T) {
		wantErr := errors.New("dial tcp: timeout")
		gen := &cannedModel{err: wantErr}
		r := NewRecommender(gen, "")

		items, err := r.Run(context.Background(), "ctx")
		if !errors.Is(err, wantErr) {
			t.Errorf("err = %v, want wrapped %v", err, wantErr)
		}
		if len(items) != 0 {
			t.Errorf("items = %+v, want empty", items)
		}
	})
}

func TestComparator_Run(t *testing.T) {
	t.Run("two items", func(t *testing.T) {
		gen := &cannedModel{reply: `{"comparison": [
			{"model": "Honda Civic", "summary": "Sporty.", "strengths": ["a"], "weaknesses": ["b"]},
			{"model": "Toyota Corolla", "summary": "Comfy.", "strengths": ["c"], "weaknesses": ["d"]}
		]}`}
		c := NewComparator(gen)

		items, err := c.Run(context.Background(), "transcript")
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}
		if len(items) != 2 || items[1].Model != "Toyota Corolla" {
			t.Errorf("items = %+v", items)
		}
	})

	t.Run("missing summary fails whole result", func(t *testing.T) {
		gen := &cannedModel{reply: `{"comparison": [{"model": "Honda Civic"}]}`}
		c := NewComparator(gen)

		if _, err := c.Run(context.Background(), "transcript"); err == nil {
			t.Fatal("expected validation error")
		}
		if gen.calls != 1 {
			t.Errorf("calls = %d, want 1", gen.calls)
		}
	})
}

func TestAnalyzer_Run(t *testing.T) {
	t.Run("full result", func(t *testing.T) {
		gen := &cannedModel{reply: `{"model": "Tesla Model Y", "overview": "Electric SUV.",
			"pros": ["Range", "Charging", "Speed"], "cons": ["Ride", "Screen", "Fit"],
			"audience": "EV shoppers", "price_estimate": "$45,000 - $60,000"}`}
		a := NewAnalyzer(gen)

		got, err := a.Run(context.Background(), "Tesla Model Y")
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}
		if got.Model != "Tesla Model Y" || len(got.Pros) != 3 {
			t.Errorf("result = %+v", got)
		}
	})

	t.Run("missing model key fails", func(t *testing.T) {
		gen := &cannedModel{reply: `{"overview": "Electric SUV."}`}
		a := NewAnalyzer(gen)

		got, err := a.Run(context.Background(), "Tesla Model Y")
		if err == nil {
			t.Fatal("expected validation error")
		}
		if got != nil {
			t.Errorf("result = %+v, want nil", got)
		}
		if gen.calls != 1 {
			t.Errorf("calls = %d, want 1", gen.calls)
		}
	})
}
