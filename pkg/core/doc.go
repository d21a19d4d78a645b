// Package core defines the shared language of the termlint system.
//
// This package contains:
//   - Severity levels and their parsing
//   - Rule metadata DTOs (RuleInfo)
//
// The Golden Rule: pkg/core imports ONLY stdlib.
// All other packages depend on core, not the reverse.
package core
