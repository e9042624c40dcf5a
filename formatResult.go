package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	skippedBanner = color.New(color.BgYellow, color.FgBlack)
	depsBanner    = color.New(color.BgGreen, color.FgBlack)
	filesBanner   = color.New(color.BgCyan, color.FgBlack)
)

// FormatResult prints skipped modules to errOut (only if there are any), then
// visited files when showFiles is set, then dependencies to out.
func FormatResult(out io.Writer, errOut io.Writer, result ListDepsResult, showFiles bool) {
	if len(result.SkippedModules) > 0 {
		skippedBanner.Fprintf(errOut, " %d Modules skipped ", len(result.SkippedModules))
		fmt.Fprintln(errOut)
		for _, modulePath := range result.SkippedModules {
			fmt.Fprintln(errOut, modulePath)
		}
	}

	if showFiles {
		filesBanner.Fprintf(out, " %d Files visited ", len(result.Files))
		fmt.Fprintln(out)
		for _, filePath := range result.Files {
			fmt.Fprintln(out, filePath)
		}
	}

	depsBanner.Fprintf(out, " %d Dependencies found ", len(result.Dependencies))
	fmt.Fprintln(out)
	for _, dependency := range result.Dependencies {
		fmt.Fprintln(out, dependency)
	}
}

type resultWithoutFiles struct {
	SkippedModules []string `json:"skippedModules"`
	Dependencies   []string `json:"dependencies"`
}

// FormatResultJSON writes result as indented JSON. Files are dropped unless showFiles is set.
func FormatResultJSON(out io.Writer, result ListDepsResult, showFiles bool) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")

	if !showFiles {
		return encoder.Encode(resultWithoutFiles{
			SkippedModules: result.SkippedModules,
			Dependencies:   result.Dependencies,
		})
	}

	if result.Files == nil {
		result.Files = []string{}
	}
	return encoder.Encode(result)
}
