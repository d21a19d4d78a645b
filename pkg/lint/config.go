package lint

import "github.com/leapstack-labs/termlint/pkg/core"

// Config controls which rules are enabled and how findings are reported.
type Config struct {
	// DisabledRules contains rule IDs or names to skip
	DisabledRules map[string]bool

	// SeverityOverrides changes the reported severity of rules, keyed by ID
	SeverityOverrides map[string]core.Severity

	// RuleOptions holds rule-specific options, keyed by rule ID
	RuleOptions map[string]map[string]any

	// LogLevel is the severity reported for rules without an override
	LogLevel core.Severity

	// DictionaryPath is the NG word dictionary; empty uses the built-in one
	DictionaryPath string

	// SuppressAnnotation skips inserting marker nodes into the tree
	SuppressAnnotation bool

	// DocsBaseURL overrides DefaultDocsBaseURL in diagnostics
	DocsBaseURL string
}

// NewConfig creates a default configuration with all rules enabled.
func NewConfig() *Config {
	return &Config{
		DisabledRules:     make(map[string]bool),
		SeverityOverrides: make(map[string]core.Severity),
		RuleOptions:       make(map[string]map[string]any),
		LogLevel:          core.SeverityWarning,
	}
}

// IsDisabled returns true if the rule should be skipped.
func (c *Config) IsDisabled(ruleID string) bool {
	if c == nil {
		return false
	}
	return c.DisabledRules[ruleID]
}

// IsRuleDisabled checks a rule by both its ID and its name.
func (c *Config) IsRuleDisabled(rule RuleDef) bool {
	return c.IsDisabled(rule.ID) || c.IsDisabled(rule.Name)
}

// GetSeverity returns the severity for a rule, applying any override.
func (c *Config) GetSeverity(ruleID string, defaultSeverity core.Severity) core.Severity {
	if c != nil {
		if sev, ok := c.SeverityOverrides[ruleID]; ok {
			return sev
		}
	}
	return defaultSeverity
}

// GetRuleOptions returns the options configured for a rule, or nil.
func (c *Config) GetRuleOptions(ruleID string) map[string]any {
	if c == nil {
		return nil
	}
	return c.RuleOptions[ruleID]
}

// Disable disables a rule by ID or name.
func (c *Config) Disable(ruleID string) *Config {
	c.DisabledRules[ruleID] = true
	return c
}

// SetSeverity overrides the severity for a rule.
func (c *Config) SetSeverity(ruleID string, severity core.Severity) *Config {
	c.SeverityOverrides[ruleID] = severity
	return c
}

// SetRuleOptions sets rule-specific options.
func (c *Config) SetRuleOptions(ruleID string, opts map[string]any) *Config {
	c.RuleOptions[ruleID] = opts
	return c
}

// SetDictionaryPath sets the NG word dictionary file.
func (c *Config) SetDictionaryPath(path string) *Config {
	c.DictionaryPath = path
	return c
}
