package config

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/leapstack-labs/termlint/pkg/core"
	"github.com/leapstack-labs/termlint/pkg/lint"
)

// severityOff disables a rule when used in the severity map.
const severityOff = "off"

var validOutputs = map[string]bool{"": true, "auto": true, "text": true, "markdown": true, "json": true}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if _, ok := core.ParseSeverity(c.LogLevel); !ok {
		return fmt.Errorf("invalid log_level %q: must be error, warning, info or hint", c.LogLevel)
	}
	if !validOutputs[c.OutputFormat] {
		return fmt.Errorf("invalid output %q: must be auto, text, markdown or json", c.OutputFormat)
	}
	if c.Jobs < 0 {
		return fmt.Errorf("invalid jobs %d: must not be negative", c.Jobs)
	}
	for _, p := range append(append([]string(nil), c.Include...), c.Exclude...) {
		if !doublestar.ValidatePattern(p) {
			return fmt.Errorf("invalid glob pattern %q", p)
		}
	}
	for rule, sev := range c.Severity {
		if strings.EqualFold(sev, severityOff) {
			continue
		}
		if _, ok := core.ParseSeverity(sev); !ok {
			return fmt.Errorf("invalid severity %q for rule %s", sev, rule)
		}
	}
	return nil
}

// ToLintConfig converts the CLI configuration into an analyzer configuration.
// Rule keys in the severity and rules maps may be IDs or names; unknown keys
// are rejected so typos surface early.
func (c *Config) ToLintConfig(reg *lint.Registry) (*lint.Config, error) {
	if reg == nil {
		reg = lint.DefaultRegistry()
	}
	lc := lint.NewConfig()
	lc.LogLevel, _ = core.ParseSeverity(c.LogLevel)
	lc.SetDictionaryPath(c.NGWordDictionaryPath)
	lc.SuppressAnnotation = c.SuppressInlineAnnotation
	lc.DocsBaseURL = c.DocsBaseURL

	for name, enabled := range c.RuleSwitches() {
		if !enabled {
			lc.Disable(name)
		}
	}

	for key, sev := range c.Severity {
		rule, ok := lookupRule(reg, key)
		if !ok {
			return nil, fmt.Errorf("severity: unknown rule %q", key)
		}
		if strings.EqualFold(sev, severityOff) {
			lc.Disable(rule.ID)
			continue
		}
		level, _ := core.ParseSeverity(sev)
		lc.SetSeverity(rule.ID, level)
	}

	for key, opts := range c.Rules {
		rule, ok := lookupRule(reg, key)
		if !ok {
			return nil, fmt.Errorf("rules: unknown rule %q", key)
		}
		lc.SetRuleOptions(rule.ID, opts)
	}
	return lc, nil
}

func lookupRule(reg *lint.Registry, key string) (lint.RuleDef, bool) {
	if rule, ok := reg.Lookup(key); ok {
		return rule, true
	}
	if rule, ok := reg.Lookup(strings.ToUpper(key)); ok {
		return rule, true
	}
	return reg.Lookup(strings.ToLower(key))
}
