package parser

import (
	"github.com/OpenVicProject/ovdl-go/internal/ast"
	"github.com/OpenVicProject/ovdl-go/internal/diagnostic"
)

// triggerKeyword names left-hand identifiers that, in event/decision grammar
// modes, open a keyword-triggered sub-production instead of an ordinary
// assignment.
type triggerKeyword int

const (
	triggerNone triggerKeyword = iota
	triggerCountryEvent
	triggerProvinceEvent
	triggerPoliticalDecisions
)

func classifyTrigger(mode Mode, name string) triggerKeyword {
	switch mode {
	case ModeEvent:
		switch name {
		case "country_event":
			return triggerCountryEvent
		case "province_event":
			return triggerProvinceEvent
		}
	case ModeDecision:
		if name == "political_decisions" {
			return triggerPoliticalDecisions
		}
	}
	return triggerNone
}

// subGrammarKeyword identifies the stub condition/behavior sub-grammars
// original_source invokes from event/decision block bodies
// (AiBehaviorGrammar, TriggerGrammar, EffectGrammar). They parse no
// keyword-specific structure of their own yet, but are named distinctly so
// a later semantic layer can hook in without reshaping the surrounding
// event/decision grammar.
type subGrammarKeyword int

const (
	subGrammarNone subGrammarKeyword = iota
	subGrammarTrigger
	subGrammarEffect
	subGrammarAiWillDo
)

func classifySubGrammar(mode Mode, name string) subGrammarKeyword {
	if mode != ModeEvent && mode != ModeDecision {
		return subGrammarNone
	}
	switch name {
	case "trigger":
		return subGrammarTrigger
	case "effect":
		return subGrammarEffect
	case "ai_will_do":
		return subGrammarAiWillDo
	}
	return subGrammarNone
}

// ParseTrigger parses a trigger = { ... } block body, mirroring
// original_source's TriggerGrammar. It is a pass-through over the generic
// ListValue production today; the named entry point exists so condition
// keywords can be validated here later without changing callers.
func (p *Parser) ParseTrigger(mode Mode) (ast.NodeID, bool) {
	return p.parseListValue(mode)
}

// ParseEffect parses an effect = { ... } block body, mirroring
// original_source's EffectGrammar. See ParseTrigger.
func (p *Parser) ParseEffect(mode Mode) (ast.NodeID, bool) {
	return p.parseListValue(mode)
}

// ParseAiWillDo parses an ai_will_do = { ... } block body, mirroring
// original_source's AiBehaviorGrammar. See ParseTrigger.
func (p *Parser) ParseAiWillDo(mode Mode) (ast.NodeID, bool) {
	return p.parseListValue(mode)
}

// knownBlockKeywords are the left-hand identifiers permitted at most once
// within a single event/decision block body.
var knownBlockKeywords = map[string]bool{
	"id":                  true,
	"title":               true,
	"desc":                true,
	"picture":             true,
	"trigger":             true,
	"mean_time_to_happen": true,
	"immediate":           true,
	"option":              true,
	"potential":           true,
	"allow":               true,
	"effect":              true,
	"ai_will_do":          true,
}

// checkDuplicateKeywords scans a block body's direct AssignStatement
// children for a known keyword occurring more than once, reporting a
// recoverable "duplicate key" error per repeat occurrence. A body may
// itself hold nested event/decision entries (e.g. multiple country_event
// blocks each with their own id/trigger/option keys); only the direct
// statements of body are in scope for a single duplicate check.
func (p *Parser) checkDuplicateKeywords(body []ast.NodeID) {
	seen := make(map[string]bool, len(body))
	for _, stmt := range body {
		asg := p.tree.AssignStatement(stmt)
		if asg == nil {
			continue
		}
		fv := p.tree.FlatValue(asg.Left)
		if fv == nil || fv.Kind != ast.KindIdentifierValue {
			continue
		}
		name := p.interner.Text(fv.Text)
		if !knownBlockKeywords[name] {
			continue
		}
		if seen[name] {
			loc, _ := p.file.Location.LocationOf(stmt)
			p.diags.Report(diagnostic.KindGenericParseError, "event_block", "duplicate key: "+name, loc)
			continue
		}
		seen[name] = true
	}
}
