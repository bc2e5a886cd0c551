package llm

import (
	"context"
	"errors"
	"strconv"
	"testing"
)

// scriptedGenerator replays canned replies and counts invocations.
type scriptedGenerator struct {
	replies []string
	err     error
	calls   int
}

func (s *scriptedGenerator) Generate(_ context.Context, _ string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	i := s.calls - 1
	if i >= len(s.replies) {
		i = len(s.replies) - 1
	}
	return s.replies[i], nil
}

func parseInt(raw string) (int, error) {
	return strconv.Atoi(raw)
}

func TestGenerateParsed(t *testing.T) {
	ctx := context.Background()

	t.Run("first attempt succeeds", func(t *testing.T) {
		g := &scriptedGenerator{replies: []string{"42"}}
		got, err := GenerateParsed(ctx, g, "p", 2, parseInt)
		if err != nil {
			t.Fatalf("GenerateParsed() error = %v", err)
		}
		if got != 42 {
			t.Errorf("got %d, want 42", got)
		}
		if g.calls != 1 {
			t.Errorf("calls = %d, want 1", g.calls)
		}
	})

	t.Run("retries parse failure once", func(t *testing.T) {
		g := &scriptedGenerator{replies: []string{"not a number", "7"}}
		got, err := GenerateParsed(ctx, g, "p", 2, parseInt)
		if err != nil {
			t.Fatalf("GenerateParsed() error = %v", err)
		}
		if got != 7 {
			t.Errorf("got %d, want 7", got)
		}
		if g.calls != 2 {
			t.Errorf("calls = %d, want 2", g.calls)
		}
	})

	t.Run("exhausts exactly the attempt budget", func(t *testing.T) {
		g := &scriptedGenerator{replies: []string{"never valid"}}
		if _, err := GenerateParsed(ctx, g, "p", 2, parseInt); err == nil {
			t.Fatal("expected error after exhaustion")
		}
		if g.calls != 2 {
			t.Errorf("calls = %d, want 2", g.calls)
		}
	})

	t.Run("generation errors count as attempts", func(t *testing.T) {
		wantErr := errors.New("network down")
		g := &scriptedGenerator{err: wantErr}
		_, err := GenerateParsed(ctx, g, "p", 3, parseInt)
		if !errors.Is(err, wantErr) {
			t.Fatalf("error = %v, want wrapped %v", err, wantErr)
		}
		if g.calls != 3 {
			t.Errorf("calls = %d, want 3", g.calls)
		}
	})

	t.Run("attempt floor of one", func(t *testing.T) {
		g := &scriptedGenerator{replies: []string{"5"}}
		got, err := GenerateParsed(ctx, g, "p", 0, parseInt)
		if err != nil {
			t.Fatalf("GenerateParsed() error = %v", err)
		}
		if got != 5 || g.calls != 1 {
			t.Errorf("got %d with %d calls, want 5 with 1 call", got, g.calls)
		}
	})
}
