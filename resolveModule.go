package main

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// moduleExtension returns extension of the module path without leading dot
func moduleExtension(modulePath string) string {
	return strings.TrimPrefix(filepath.Ext(modulePath), ".")
}

func hasConfiguredExtension(modulePath string, extensions []string) bool {
	ext := moduleExtension(modulePath)
	return ext != "" && slices.Contains(extensions, ext)
}

// ModulePathVariants lists file paths to probe for a module, in priority order:
// the path itself (only when it already has a configured extension), the path with
// each extension appended, then index files inside the path treated as a directory.
func ModulePathVariants(modulePath string, extensions []string) []string {
	variants := make([]string, 0, 2*len(extensions)+1)

	if hasConfiguredExtension(modulePath, extensions) {
		variants = append(variants, modulePath)
	}

	for _, ext := range extensions {
		variants = append(variants, modulePath+"."+ext)
	}

	for _, ext := range extensions {
		variants = append(variants, filepath.Join(modulePath, "index."+ext))
	}

	return variants
}

// LoadModule reads the first readable variant of modulePath.
// Directories and missing files are not readable, so they fall through to the next variant.
func LoadModule(modulePath string, extensions []string) (string, string, bool) {
	for _, filePath := range ModulePathVariants(modulePath, extensions) {
		content, err := os.ReadFile(DenormalizePathForOS(filePath))
		if err == nil {
			return filePath, string(content), true
		}
	}
	return modulePath, "", false
}

// ShouldReportSkipped tells whether an unresolved module looks like source that was
// meant to resolve. Paths with other extensions (images, styles) are assets.
func ShouldReportSkipped(modulePath string, extensions []string) bool {
	return moduleExtension(modulePath) == "" || hasConfiguredExtension(modulePath, extensions)
}
