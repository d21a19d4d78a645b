package lint

import (
	"fmt"

	"github.com/leapstack-labs/termlint/pkg/doctree"
	"github.com/leapstack-labs/termlint/pkg/lint/dictionary"
)

// Analyzer runs registered rules against document trees.
// It holds no per-document state and is safe for concurrent use.
type Analyzer struct {
	config   *Config
	registry *Registry
	sink     Sink
}

// NewAnalyzer creates an analyzer over the global registry.
// A nil config uses NewConfig; a nil sink discards reports.
func NewAnalyzer(config *Config, sink Sink) *Analyzer {
	return NewAnalyzerWithRegistry(config, globalRegistry, sink)
}

// NewAnalyzerWithRegistry creates an analyzer over a specific registry.
func NewAnalyzerWithRegistry(config *Config, registry *Registry, sink Sink) *Analyzer {
	if config == nil {
		config = NewConfig()
	}
	if registry == nil {
		registry = globalRegistry
	}
	if sink == nil {
		sink = DiscardSink
	}
	return &Analyzer{
		config:   config,
		registry: registry,
		sink:     sink,
	}
}

// Config returns the analyzer configuration.
func (a *Analyzer) Config() *Config {
	return a.config
}

// ActiveRules returns the enabled rules in registration order.
func (a *Analyzer) ActiveRules() []RuleDef {
	var active []RuleDef
	for _, rule := range a.registry.All() {
		if a.config.IsRuleDisabled(rule) {
			continue
		}
		active = append(active, rule)
	}
	return active
}

// LoadDictionary loads a fresh copy of the configured NG word dictionary.
func (a *Analyzer) LoadDictionary() (*dictionary.Dictionary, error) {
	return dictionary.Load(a.config.DictionaryPath)
}

// AnalyzeDocument validates every candidate text node of root.
//
// The dictionary is reloaded for each call. Every diagnostic is reported to
// the sink with a location built from name. Unless annotation is suppressed,
// markers are inserted into the tree after validation finishes.
func (a *Analyzer) AnalyzeDocument(name string, root *doctree.Node) ([]Diagnostic, error) {
	if root == nil {
		return nil, nil
	}

	dict, err := a.LoadDictionary()
	if err != nil {
		return nil, fmt.Errorf("failed to load NG word dictionary for %s: %w", name, err)
	}
	env := &Env{Dictionary: dict}
	rules := a.ActiveRules()

	var diagnostics []Diagnostic
	for _, node := range root.TextNodes() {
		diagnostics = append(diagnostics, a.check(node, env, rules)...)
	}

	for _, d := range diagnostics {
		a.sink.Report(d.Severity, d.Render(), d.Location(name))
	}

	if !a.config.SuppressAnnotation {
		Annotate(diagnostics)
	}
	return diagnostics, nil
}

// Check runs the active rules against a single node.
// The node is neither filtered nor annotated and nothing is reported.
func (a *Analyzer) Check(node *doctree.Node, env *Env) []Diagnostic {
	if env == nil {
		env = &Env{}
	}
	return a.check(node, env, a.ActiveRules())
}

func (a *Analyzer) check(node *doctree.Node, env *Env, rules []RuleDef) []Diagnostic {
	text := node.Text()

	var diagnostics []Diagnostic
	for _, rule := range rules {
		diags := rule.Check(text, env, a.config.GetRuleOptions(rule.ID))

		for i := range diags {
			d := &diags[i]
			if d.RuleID == "" {
				d.RuleID = rule.ID
			}
			if d.Kind == "" {
				d.Kind = rule.Name
			}
			if d.Message == "" {
				d.Message = rule.Description
			}
			d.Severity = a.config.GetSeverity(rule.ID, a.config.LogLevel)
			d.DocumentationURL = BuildDocURL(a.config.DocsBaseURL, rule.ID)
			d.Node = node
			d.Locate()
		}
		diagnostics = append(diagnostics, diags...)
	}
	return diagnostics
}
