package main

import (
	"fmt"

	"github.com/gobwas/glob"
)

type GlobMatcher struct {
	globPattern glob.Glob
	inputString string
}

// CreateGlobMatchers compiles patterns with '/' as separator, so `*` stays within one
// path segment and `**` crosses segments. Patterns must be validated with validatePattern.
func CreateGlobMatchers(patterns []string) []GlobMatcher {
	globMatchers := make([]GlobMatcher, 0, len(patterns))
	for _, pattern := range patterns {
		globMatchers = append(globMatchers, GlobMatcher{
			globPattern: glob.MustCompile(NormalizeGlobPattern(pattern), '/'),
			inputString: pattern,
		})
	}
	return globMatchers
}

func MatchesAnyGlobMatcher(value string, matchers []GlobMatcher) bool {
	for _, matcher := range matchers {
		if matcher.globPattern.Match(value) {
			return true
		}
	}
	return false
}

// FilterByGlobMatchers returns values not matched by any of matchers, preserving order
func FilterByGlobMatchers(values []string, matchers []GlobMatcher) []string {
	if len(matchers) == 0 {
		return values
	}
	filtered := make([]string, 0, len(values))
	for _, value := range values {
		if !MatchesAnyGlobMatcher(value, matchers) {
			filtered = append(filtered, value)
		}
	}
	return filtered
}

// NormalizeGlobPattern normalizes pattern separators to forward slashes
func NormalizeGlobPattern(pattern string) string {
	result := make([]byte, 0, len(pattern))
	for i := 0; i < len(pattern); i++ {
		if pattern[i] == '\\' && i+1 < len(pattern) && pattern[i+1] == '\\' {
			result = append(result, '/')
			i++
			continue
		}
		result = append(result, pattern[i])
	}
	return string(result)
}

func validatePattern(pattern string) error {
	if pattern == "" {
		return fmt.Errorf("empty pattern")
	}
	if len(pattern) >= 2 && pattern[0] == '.' && (pattern[1] == '/' || pattern[1] == '\\') {
		return fmt.Errorf("pattern '%s' starts with './' or '.\\', which is not allowed. Reported paths never start with './'", pattern)
	}
	if _, err := glob.Compile(NormalizeGlobPattern(pattern), '/'); err != nil {
		return fmt.Errorf("pattern '%s' is not a valid glob: %w", pattern, err)
	}
	return nil
}

// ApplyConfigFilters drops dependencies and skipped modules ignored by config
func ApplyConfigFilters(result ListDepsResult, config ListDepsConfig) ListDepsResult {
	result.Dependencies = FilterByGlobMatchers(result.Dependencies, CreateGlobMatchers(config.IgnoreDependencies))
	result.SkippedModules = FilterByGlobMatchers(result.SkippedModules, CreateGlobMatchers(config.IgnoreSkipped))
	return result
}
