package llm

import "context"

// Generator is the text-generation capability the explanation service depends
// on. Implementations must honor ctx cancellation and deadlines.
type Generator interface {
	Generate(ctx context.Context, system string, user string, opts ...Option) (*Response, error)
}

type Usage struct {
	PromptTokens     int64
	CompletionTokens int64
	TotalTokens      int64
}

type Option func(*Options)

type Options struct {
	Model       string
	MaxTokens   int64
	Temperature float64
}

func WithModel(model string) Option {
	return func(o *Options) { o.Model = model }
}

func WithMaxTokens(n int64) Option {
	return func(o *Options) { o.MaxTokens = n }
}

func WithTemperature(t float64) Option {
	return func(o *Options) { o.Temperature = t }
}

type Response struct {
	// Content is the generated text
	Content string

	// Model is the model name the request was made with
	Model string

	Usage Usage
}
