package llm

import (
	"context"
	"fmt"
)

// GenerateParsed invokes g and runs parse over the reply, re-invoking
// the model until parse accepts or attempts are exhausted. Every call
// whose structured output must validate goes through this combinator;
// the attempt count is the caller's retry policy (the classifier uses
// two attempts, the executors one).
func GenerateParsed[T any](ctx context.Context, g Generator, prompt string, attempts int, parse func(raw string) (T, error)) (T, error) {
	var zero T
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for i := 0; i < attempts; i++ {
		raw, err := g.Generate(ctx, prompt)
		if err != nil {
			lastErr = err
			continue
		}
		v, err := parse(raw)
		if err != nil {
			lastErr = err
			continue
		}
		return v, nil
	}
	return zero, fmt.Errorf("after %d attempts: %w", attempts, lastErr)
}
