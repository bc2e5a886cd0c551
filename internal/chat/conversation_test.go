package chat

import (
	"strings"
	"testing"
)

func TestNewLog_SeededWithGreeting(t *testing.T) {
	log := NewLog()

	if log.Len() != 1 {
		t.Fatalf("NewLog() has %d turns, want 1", log.Len())
	}

	first := log.Turns()[0]
	if first.Role != RoleAssistant {
		t.Errorf("seed turn role = %q, want %q", first.Role, RoleAssistant)
	}
	if first.Content != Greeting {
		t.Errorf("seed turn content = %q, want greeting", first.Content)
	}
}

func TestLog_AppendPreservesOrder(t *testing.T) {
	log := NewLog()
	log.Append(Turn{Role: RoleUser, Content: "first"})
	log.Append(Turn{Role: RoleAssistant, Content: "second"})
	log.Append(Turn{Role: RoleUser, Content: "third"})

	turns := log.Turns()
	want := []string{Greeting, "first", "second", "third"}
	if len(turns) != len(want) {
		t.Fatalf("got %d turns, want %d", len(turns), len(want))
	}
	for i, w := range want {
		if turns[i].Content != w {
			t.Errorf("turns[%d].Content = %q, want %q", i, turns[i].Content, w)
		}
	}
}

func TestLog_TurnsReturnsCopy(t *testing.T) {
	log := NewLog()
	log.Append(Turn{Role: RoleUser, Content: "hello"})

	turns := log.Turns()
	turns[0].Content = "mutated"

	if log.Turns()[0].Content != Greeting {
		t.Error("mutating the returned slice changed the log")
	}
}

func TestLog_Transcript(t *testing.T) {
	log := NewLog()
	log.Append(Turn{Role: RoleUser, Content: "I need a truck"})

	got := log.Transcript()
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("transcript has %d lines, want 2:\n%s", len(lines), got)
	}
	if lines[0] != "assistant: "+Greeting {
		t.Errorf("line 0 = %q", lines[0])
	}
	if lines[1] != "user: I need a truck" {
		t.Errorf("line 1 = %q", lines[1])
	}
}

func TestLog_SessionIDsDiffer(t *testing.T) {
	a, b := NewLog(), NewLog()
	if a.SessionID() == b.SessionID() {
		t.Error("two logs share a session ID")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		result  interface{ Validate() error }
		wantErr bool
	}{
		{
			name: "complete recommendation",
			result: RecommendationSet{Recommendations: []RecommendationItem{
				{Make: "Toyota", Model: "Camry", Summary: "Reliable midsize sedan."},
			}},
		},
		{
			name: "recommendation missing summary",
			result: RecommendationSet{Recommendations: []RecommendationItem{
				{Make: "Toyota", Model: "Camry"},
			}},
			wantErr: true,
		},
		{
			name:   "empty recommendation list is valid",
			result: RecommendationSet{},
		},
		{
			name: "complete comparison",
			result: ComparisonSet{Comparison: []ComparisonItem{
				{Model: "Honda Civic", Summary: "Sporty compact."},
				{Model: "Toyota Corolla", Summary: "Comfortable compact."},
			}},
		},
		{
			name: "comparison item missing model",
			result: ComparisonSet{Comparison: []ComparisonItem{
				{Summary: "Sporty compact."},
			}},
			wantErr: true,
		},
		{
			name:   "complete analysis",
			result: AnalysisResult{Model: "Tesla Model Y", Overview: "Popular electric SUV."},
		},
		{
			name:    "analysis missing overview",
			result:  AnalysisResult{Model: "Tesla Model Y"},
			wantErr: true,
		},
		{
			name:    "analysis missing model",
			result:  AnalysisResult{Overview: "Popular electric SUV."},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.result.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
