package parser

import (
	"context"

	"smart-todo-backend/internal/model"
)

// Parse interprets raw text into a StructuredTask. The LLM path is tried
// first when configured; any remote failure (transport, malformed reply,
// schema violation) is logged and recovered by the rule-based extractor,
// so the caller always receives a usable result.
func (p *implParser) Parse(ctx context.Context, text string, tzOffsetMinutes *int) model.StructuredTask {
	p.l.Infof(ctx, "parser: parsing natural language input %q", text)

	if p.llm != nil {
		st, err := p.llm.Interpret(ctx, text, tzOffsetMinutes)
		if err == nil {
			return st
		}
		p.l.Errorf(ctx, "parser: LLM interpretation failed for input %q, falling back to rule-based extraction: %v", text, err)
	}

	return p.rules.Extract(ctx, text, tzOffsetMinutes)
}
