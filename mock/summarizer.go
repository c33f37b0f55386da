package mock

import (
	"context"

	"github.com/gaurav-prasanna/profilestrap/core"
)

var _ core.Summarizer = (*Summarizer)(nil)

// Summarizer is a mock implementation of core.Summarizer.
type Summarizer struct {
	SummarizeFn func(ctx context.Context, pages *core.PipelineResult) (*core.Summary, error)
	NameFn      func() string
}

func (s *Summarizer) Summarize(ctx context.Context, pages *core.PipelineResult) (*core.Summary, error) {
	return s.SummarizeFn(ctx, pages)
}

func (s *Summarizer) Name() string {
	if s.NameFn == nil {
		return "mock"
	}
	return s.NameFn()
}
