// Package lint runs term validation rules over document trees.
//
// # Architecture
//
//  1. Root package (pkg/lint/): rule contracts, the ordered registry, Config,
//     Diagnostic rendering and location, the Sink and the Analyzer
//  2. Rules (pkg/lint/rules/): the six built-in validators TV01..TV06
//  3. Dictionary (pkg/lint/dictionary/): the NG word dictionary loader
//
// # Rule Registration
//
// Rules register themselves from init() in a fixed order when their package
// is imported:
//
//	import _ "github.com/leapstack-labs/termlint/pkg/lint/rules"
//
// Rule checks are pure: they receive the text of one node and return
// diagnostics. The Analyzer attaches the node, severity and source position.
//
// # Running
//
//	config := lint.NewConfig().Disable("TV05").SetDictionaryPath("rule.dic")
//	analyzer := lint.NewAnalyzer(config, lint.NewSlogSink(logger))
//	diags, err := analyzer.AnalyzeDocument("index.md", doc)
//
// AnalyzeDocument reloads the dictionary for every document, reports each
// diagnostic to the sink and, unless Config.SuppressAnnotation is set,
// inserts a system_message marker after each offending node.
//
// # Creating Custom Rules
//
//	var MyRule = lint.RuleDef{
//		ID:          "MY01",
//		Name:        "my_rule",
//		Group:       "custom",
//		Description: "My custom rule description",
//		Severity:    core.SeverityWarning,
//		Check:       checkMyRule,
//	}
//
//	func init() {
//		lint.Register(MyRule)
//	}
package lint
