// File: validation.go
// Title: Configuration Validation
// Description: Validates configuration values against declarative rules:
//              presence, type, numeric bounds and allowed values.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	mdwerror "github.com/msto63/pyanalyzer/foundation/core/error"
)

// ValidationRule defines validation criteria for one key
type ValidationRule struct {
	Required bool
	Type     string // "string", "int", "bool" or "" for any
	Min      *int
	Max      *int
	OneOf    []string
}

// ValidationRules maps configuration keys to their validation rules
type ValidationRules map[string]ValidationRule

// IntBound is a helper for the Min and Max fields
func IntBound(n int) *int {
	return &n
}

// Validate checks every rule and reports all violations at once. The
// returned error has code CodeInvalidConfig and lists the violations in
// its "violations" detail.
func (c *Config) Validate(rules ValidationRules) error {
	keys := make([]string, 0, len(rules))
	for k := range rules {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var violations []string
	for _, key := range keys {
		if msg := c.validateField(key, rules[key]); msg != "" {
			violations = append(violations, msg)
		}
	}

	if len(violations) == 0 {
		return nil
	}

	return mdwerror.New("invalid configuration: "+strings.Join(violations, "; ")).
		WithCode(mdwerror.CodeInvalidConfig).
		WithOperation("config.Validate").
		WithDetail("violations", violations)
}

func (c *Config) validateField(key string, rule ValidationRule) string {
	if !c.Has(key) {
		if rule.Required {
			return fmt.Sprintf("required field '%s' is missing", key)
		}
		return ""
	}

	raw := c.GetString(key)

	switch rule.Type {
	case "int":
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Sprintf("field '%s' must be an integer, got %q", key, raw)
		}
		if rule.Min != nil && n < *rule.Min {
			return fmt.Sprintf("field '%s' must be >= %d, got %d", key, *rule.Min, n)
		}
		if rule.Max != nil && n > *rule.Max {
			return fmt.Sprintf("field '%s' must be <= %d, got %d", key, *rule.Max, n)
		}
	case "bool":
		if _, err := strconv.ParseBool(raw); err != nil {
			return fmt.Sprintf("field '%s' must be a boolean, got %q", key, raw)
		}
	}

	if len(rule.OneOf) > 0 {
		for _, allowed := range rule.OneOf {
			if strings.EqualFold(raw, allowed) {
				return ""
			}
		}
		return fmt.Sprintf("field '%s' must be one of [%s], got %q", key, strings.Join(rule.OneOf, ", "), raw)
	}

	return ""
}
