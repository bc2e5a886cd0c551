package extract

import (
	"reflect"
	"testing"
)

func TestModels(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "comparison with connectors",
			text: "Compare Honda Civic vs Toyota Corolla",
			want: []string{"Honda Civic", "Toyota Corolla"},
		},
		{
			name: "off-topic question",
			text: "What's the weather?",
			want: nil,
		},
		{
			name: "single model mid-sentence",
			text: "Tell me about the Ford F-150",
			want: []string{"Ford F-150"},
		},
		{
			name: "versus connector",
			text: "Mazda CX-5 versus Subaru Outback",
			want: []string{"Mazda CX-5", "Subaru Outback"},
		},
		{
			name: "between and connectors",
			text: "I'm torn between Hyundai Tucson and Kia EV6",
			want: []string{"Hyundai Tucson", "Kia EV6"},
		},
		{
			name: "single token model",
			text: "Is the Corolla any good?",
			want: []string{"Corolla"},
		},
		{
			name: "no capitals",
			text: "i need a cheap car for commuting",
			want: nil,
		},
		{
			name: "stop words dropped",
			text: "please just say Compare and nothing else",
			want: nil,
		},
		{
			name: "empty input",
			text: "",
			want: nil,
		},
		{
			name: "contractions filtered",
			text: "Let's talk about the Honda Accord",
			want: []string{"Honda Accord"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Models(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Models(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestModels_Deterministic(t *testing.T) {
	text := "Compare Honda Civic vs Toyota Corolla and Mazda3"
	first := Models(text)
	for i := 0; i < 10; i++ {
		if got := Models(text); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d: Models() = %v, want %v", i, got, first)
		}
	}
}
