package main

import (
	"regexp"
	"strings"
)

const (
	quoteClass     = "['\"`]"
	specifierGroup = "([^'\"`\\r\\n]+)"
	// statement prefix may span lines (multi-line brace lists) but not statements
	statementPrefix = "[^'\"`;]*?"
	// re-export prefix stays on one line except inside a { ... } list
	exportPrefix = "[^'\"`;\\n{]*(?:\\{[^'\"`;}]*\\})?[^'\"`;\\n]*?"
	// JS whitespace also covers BOM and no-break space
	lineStart = `(?m)^[\s\x{FEFF}\x{A0}]*`
)

// Patterns are applied independently over the whole text, in this order.
var importPatterns = []*regexp.Regexp{
	// import x from "a"; import { x } from 'a'; import "a"
	regexp.MustCompile(lineStart + `import(?:[\s{*]` + statementPrefix + `)?` + quoteClass + specifierGroup + quoteClass),
	// export { x } from "a"; export * from "a"
	regexp.MustCompile(lineStart + `export\b` + exportPrefix + `\bfrom\s*` + quoteClass + specifierGroup + quoteClass),
	// import("a")
	regexp.MustCompile(`\bimport\(\s*` + quoteClass + specifierGroup + quoteClass + `\s*\)`),
	// require("a")
	regexp.MustCompile(`\brequire\(\s*` + quoteClass + specifierGroup + quoteClass + `\s*\)`),
}

// ExtractSpecifiers returns raw specifiers found in code. Static imports come first,
// then re-exports, dynamic imports and requires. Code is expected to be comment free.
func ExtractSpecifiers(code string) []string {
	specifiers := []string{}
	for _, pattern := range importPatterns {
		for _, match := range pattern.FindAllStringSubmatch(code, -1) {
			specifiers = append(specifiers, match[1])
		}
	}
	return specifiers
}

func IsRelativeSpecifier(specifier string) bool {
	return strings.HasPrefix(specifier, ".")
}

// GetPackageName maps a bare specifier to the name recorded as a dependency.
// "@scope/pkg/sub/path" -> "@scope/pkg", "lodash/fp" -> "lodash".
func GetPackageName(specifier string) string {
	parts := strings.Split(specifier, "/")
	if strings.HasPrefix(parts[0], "@") && len(parts) > 1 {
		return parts[0] + "/" + parts[1]
	}
	return parts[0]
}

// processImports records bare specifiers of code as dependencies and returns the
// relative ones, preserving extraction order.
func (ctx *DepsContext) processImports(code string) []string {
	relativeImports := []string{}
	for _, specifier := range ExtractSpecifiers(code) {
		if IsRelativeSpecifier(specifier) {
			relativeImports = append(relativeImports, specifier)
			continue
		}

		packageName := GetPackageName(specifier)
		if packageName == "" {
			// absolute path specifiers, e.g. "/abs/file"
			continue
		}
		ctx.dependencies.Add(packageName)
	}
	return relativeImports
}
