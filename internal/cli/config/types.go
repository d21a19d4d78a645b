// Package config provides configuration management for the termlint CLI.
//
// Values are layered with koanf: built-in defaults, then termlint.yaml, then
// TERMLINT_* environment variables, then explicitly set command-line flags.
package config

// Config holds all CLI configuration options.
type Config struct {
	// Rule switches
	EnableHalfWidthKatakana   bool   `koanf:"enable_half_width_katakana"`
	EnableParenthesis         bool   `koanf:"enable_parenthesis"`
	EnableQuestionExclamation bool   `koanf:"enable_question_exclamation"`
	EnablePunctuationMark     bool   `koanf:"enable_punctuation_mark"`
	EnableSpaceInNumberOfUnit bool   `koanf:"enable_space_in_number_of_unit"`
	EnableNGWords             bool   `koanf:"enable_ng_words"`
	NGWordDictionaryPath      string `koanf:"ng_word_dictionary_path"`
	LogLevel                  string `koanf:"log_level"`
	SuppressInlineAnnotation  bool   `koanf:"suppress_inline_annotation"`

	// File discovery
	Include []string `koanf:"include"`
	Exclude []string `koanf:"exclude"`
	Jobs    int      `koanf:"jobs"`

	Verbose      bool   `koanf:"verbose"`
	OutputFormat string `koanf:"output"`
	DocsBaseURL  string `koanf:"docs_base_url"`

	// Severity maps a rule ID or name to a severity, or "off" to disable it.
	Severity map[string]string `koanf:"severity"`

	// Rules holds rule-specific options keyed by rule ID or name.
	Rules map[string]map[string]any `koanf:"rules"`

	// ConfigFile is the file the configuration was read from, if any.
	ConfigFile string `koanf:"-"`
}

// Default configuration values.
const (
	DefaultLogLevel = "warning"
	DefaultOutput   = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	DefaultJobs     = 4
)

// ConfigFileNames are searched, in order, in each directory.
var ConfigFileNames = []string{"termlint.yaml", "termlint.yml"}

// DefaultInclude lists the globs linted when a directory is given.
var DefaultInclude = []string{"**/*.md", "**/*.markdown", "**/*.txt", "**/*.html", "**/*.htm"}

// DefaultExclude lists the globs skipped during discovery.
var DefaultExclude = []string{"**/node_modules/**", "**/.git/**"}

// RuleSwitches returns the enable_<name> switches keyed by rule name.
func (c *Config) RuleSwitches() map[string]bool {
	return map[string]bool{
		"half_width_katakana":     c.EnableHalfWidthKatakana,
		"parenthesis":             c.EnableParenthesis,
		"question_exclamation":    c.EnableQuestionExclamation,
		"punctuation_mark":        c.EnablePunctuationMark,
		"space_in_number_of_unit": c.EnableSpaceInNumberOfUnit,
		"ng_words":                c.EnableNGWords,
	}
}

// defaults returns the built-in configuration as a flat koanf map.
// Defaults returns the default value of every key loaded before the
// config file.
func Defaults() map[string]any {
	return defaults()
}

func defaults() map[string]any {
	return map[string]any{
		"enable_half_width_katakana":     true,
		"enable_parenthesis":             true,
		"enable_question_exclamation":    true,
		"enable_punctuation_mark":        true,
		"enable_space_in_number_of_unit": true,
		"enable_ng_words":                true,
		"ng_word_dictionary_path":        "",
		"log_level":                      DefaultLogLevel,
		"suppress_inline_annotation":     false,
		"include":                        DefaultInclude,
		"exclude":                        DefaultExclude,
		"jobs":                           DefaultJobs,
		"verbose":                        false,
		"output":                         DefaultOutput,
	}
}

// Default returns the configuration used when nothing else is set.
func Default() *Config {
	return &Config{
		EnableHalfWidthKatakana:   true,
		EnableParenthesis:         true,
		EnableQuestionExclamation: true,
		EnablePunctuationMark:     true,
		EnableSpaceInNumberOfUnit: true,
		EnableNGWords:             true,
		LogLevel:                  DefaultLogLevel,
		Include:                   append([]string(nil), DefaultInclude...),
		Exclude:                   append([]string(nil), DefaultExclude...),
		Jobs:                      DefaultJobs,
		OutputFormat:              DefaultOutput,
	}
}
