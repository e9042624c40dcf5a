package main

import (
	"path/filepath"
	"runtime"
	"strings"
)

// NormalizePathForInternal converts an OS path into the forward slash form used in
// reported results.
// Examples:
// - "C:\\project\\src\\file.js" -> "C:/project/src/file.js"
// - "src\\utils\\" -> "src/utils"
func NormalizePathForInternal(p string) string {
	if runtime.GOOS != "windows" {
		return p
	}
	if p == "" {
		return ""
	}
	s := filepath.ToSlash(filepath.Clean(p))
	// Trim trailing slash except when path is root like "/" or "C:/"
	if len(s) > 1 && strings.HasSuffix(s, "/") && !strings.HasSuffix(s, ":/") {
		s = strings.TrimRight(s, "/")
	}
	return s
}

// DenormalizePathForOS converts an internal forward slash path back to the
// OS-native representation for os.* calls.
func DenormalizePathForOS(internal string) string {
	if runtime.GOOS != "windows" {
		return internal
	}
	if internal == "" {
		return ""
	}
	return filepath.FromSlash(internal)
}

// RelativeToDir returns path relative to dir in internal form. Relative paths are
// resolved against the working directory first. When no relative path exists
// (different volumes) the absolute path is returned.
func RelativeToDir(dir string, path string) string {
	absPath, err := filepath.Abs(DenormalizePathForOS(path))
	if err != nil {
		return NormalizePathForInternal(path)
	}
	rel, err := filepath.Rel(dir, absPath)
	if err != nil {
		return NormalizePathForInternal(absPath)
	}
	return NormalizePathForInternal(rel)
}
