package main

import (
	"path/filepath"

	"github.com/charmbracelet/log"
)

var defaultExtensions = []string{"js"}

type ListDepsOptions struct {
	// Extensions probed when resolving modules, without leading dot. Defaults to ["js"].
	Extensions []string
	// Logger receives debug traces of the traversal. Nothing is logged when nil.
	Logger *log.Logger
}

type ListDepsResult struct {
	SkippedModules []string `json:"skippedModules"`
	Dependencies   []string `json:"dependencies"`
	// Files are resolved internal modules relative to the root file directory, in visitation order
	Files []string `json:"files"`
}

// DepsContext is the state of a single ListDeps traversal
type DepsContext struct {
	extensions     []string
	rootDir        string
	visited        stringSet
	skippedModules stringSet
	dependencies   stringSet
	files          []string
	seenFiles      stringSet
	logger         *log.Logger
}

func NewDepsContext(rootFilePath string, extensions []string, logger *log.Logger) *DepsContext {
	rootDir := filepath.Dir(rootFilePath)
	if absRoot, err := filepath.Abs(rootFilePath); err == nil {
		rootDir = filepath.Dir(absRoot)
	}

	if len(extensions) == 0 {
		extensions = defaultExtensions
	}

	return &DepsContext{
		extensions:     extensions,
		rootDir:        rootDir,
		visited:        stringSet{},
		skippedModules: stringSet{},
		dependencies:   stringSet{},
		files:          []string{},
		seenFiles:      stringSet{},
		logger:         logger,
	}
}

// ListDeps lists external dependencies reachable from rootFilePath by following
// relative imports, and the relative imports that could not be resolved.
// It never fails: unreadable files only end up in SkippedModules.
func ListDeps(rootFilePath string, extensions []string) ListDepsResult {
	return ListDepsWithOptions(rootFilePath, ListDepsOptions{Extensions: extensions})
}

func ListDepsWithOptions(rootFilePath string, opts ListDepsOptions) ListDepsResult {
	ctx := NewDepsContext(rootFilePath, opts.Extensions, opts.Logger)
	ctx.followDependencies(rootFilePath)
	return ctx.Result()
}

// followDependencies walks the module graph depth first in pre-order. Children are
// pushed in reverse so they are visited in the order their specifiers were extracted.
// Module paths are visited at most once; they are compared as joined, before
// extension or index resolution.
func (ctx *DepsContext) followDependencies(rootModulePath string) {
	stack := []string{rootModulePath}

	for len(stack) > 0 {
		modulePath := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if ctx.visited.Has(modulePath) {
			continue
		}
		ctx.visited.Add(modulePath)

		filePath, code, ok := LoadModule(modulePath, ctx.extensions)
		if !ok {
			ctx.skipModule(modulePath)
			continue
		}

		ctx.addFile(filePath)
		ctx.debug("module resolved", "module", modulePath, "file", filePath)

		relativeImports := ctx.processImports(RemoveCommentsFromCode(code))
		currentFolder := filepath.Dir(filePath)

		for i := len(relativeImports) - 1; i >= 0; i-- {
			referencedModulePath := filepath.Join(currentFolder, relativeImports[i])
			if !ctx.visited.Has(referencedModulePath) {
				stack = append(stack, referencedModulePath)
			}
		}
	}
}

func (ctx *DepsContext) skipModule(modulePath string) {
	if !ShouldReportSkipped(modulePath, ctx.extensions) {
		ctx.debug("module ignored", "module", modulePath)
		return
	}

	relativePath := RelativeToDir(ctx.rootDir, modulePath)
	ctx.skippedModules.Add(relativePath)
	ctx.debug("module skipped", "module", modulePath, "relative", relativePath)
}

func (ctx *DepsContext) addFile(filePath string) {
	relativePath := RelativeToDir(ctx.rootDir, filePath)
	if ctx.seenFiles.Has(relativePath) {
		return
	}
	ctx.seenFiles.Add(relativePath)
	ctx.files = append(ctx.files, relativePath)
}

func (ctx *DepsContext) debug(msg string, keyvals ...interface{}) {
	if ctx.logger != nil {
		ctx.logger.Debug(msg, keyvals...)
	}
}

// Result returns sorted, deduplicated dependencies and skipped modules
func (ctx *DepsContext) Result() ListDepsResult {
	files := make([]string, len(ctx.files))
	copy(files, ctx.files)

	return ListDepsResult{
		SkippedModules: ctx.skippedModules.Sorted(),
		Dependencies:   ctx.dependencies.Sorted(),
		Files:          files,
	}
}
