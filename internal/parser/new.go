package parser

import (
	"smart-todo-backend/pkg/anthropic"
	pkgLog "smart-todo-backend/pkg/log"
)

type implParser struct {
	l     pkgLog.Logger
	llm   *llmEngine // nil when no remote client is configured
	rules *ruleEngine
}

// New creates a new Parser. A nil client means no API key was configured;
// the parser then runs on the rule-based extractor alone. The decision is
// made once here, not per call.
func New(l pkgLog.Logger, client *anthropic.Client) Parser {
	p := &implParser{
		l:     l,
		rules: &ruleEngine{l: l},
	}
	if client != nil {
		p.llm = &llmEngine{l: l, client: client}
	}
	return p
}
