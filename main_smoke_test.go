package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"gotest.tools/v3/assert"
	"gotest.tools/v3/golden"
)

func runForTest(t *testing.T, rootFilePath string, flags ListDepsFlags) (string, string) {
	t.Helper()
	color.NoColor = true

	var stdout, stderr bytes.Buffer
	err := RunListDeps(&stdout, &stderr, rootFilePath, flags)
	assert.NilError(t, err)

	return stdout.String(), stderr.String()
}

func TestListDepsCmdBasicProject(t *testing.T) {
	rootFilePath := filepath.Join("__fixtures__", "basicProject", "index.js")

	stdout, stderr := runForTest(t, rootFilePath, ListDepsFlags{Extensions: []string{"js"}})

	golden.Assert(t, stdout, "basic-project-stdout.golden")
	golden.Assert(t, stderr, "basic-project-stderr.golden")
}

func TestListDepsCmdJSONWithFiles(t *testing.T) {
	rootFilePath := filepath.Join("__fixtures__", "basicProject", "index.js")

	stdout, stderr := runForTest(t, rootFilePath, ListDepsFlags{
		Extensions:        []string{"ts", "js"},
		ExtensionsChanged: true,
		JSON:              true,
		ShowFiles:         true,
	})

	golden.Assert(t, stdout, "basic-project-json.golden")
	assert.Equal(t, stderr, "")
}

func TestListDepsCmdJSONWithFilesForMissingRoot(t *testing.T) {
	rootFilePath := filepath.Join(t.TempDir(), "index.js")

	stdout, _ := runForTest(t, rootFilePath, ListDepsFlags{
		Extensions: []string{"js"},
		JSON:       true,
		ShowFiles:  true,
	})

	assert.Assert(t, strings.Contains(stdout, `"files": []`))
	assert.Assert(t, strings.Contains(stdout, `"index.js"`))
}

func TestListDepsCmdUsesConfigNextToRootFile(t *testing.T) {
	rootFilePath := filepath.Join("__fixtures__", "configProject", "index.js")

	stdout, stderr := runForTest(t, rootFilePath, ListDepsFlags{Extensions: []string{"js"}})

	golden.Assert(t, stdout, "config-project-stdout.golden")
	assert.Equal(t, stderr, "")
}

func TestListDepsCmdExtensionsFlagOverridesConfig(t *testing.T) {
	rootFilePath := filepath.Join("__fixtures__", "configProject", "index.js")

	stdout, stderr := runForTest(t, rootFilePath, ListDepsFlags{
		Extensions:        []string{"js"},
		ExtensionsChanged: true,
	})

	assert.Equal(t, stdout, " 1 Dependencies found \nreact\n")
	// generated/schema is still ignored by config
	assert.Equal(t, stderr, " 1 Modules skipped \nfeature\n")
}

func TestListDepsCmdVerbose(t *testing.T) {
	rootFilePath := filepath.Join("__fixtures__", "basicProject", "index.js")

	_, stderr := runForTest(t, rootFilePath, ListDepsFlags{
		Extensions: []string{"js"},
		Verbose:    true,
	})

	assert.Assert(t, strings.Contains(stderr, "listing dependencies"))
	assert.Assert(t, strings.Contains(stderr, "module resolved"))
	assert.Assert(t, strings.Contains(stderr, "module skipped"))
	assert.Assert(t, strings.Contains(stderr, "module ignored"))
}

func TestListDepsCmdInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"index.js":         "import 'react'\n",
		".list-deps.jsonc": `{"configVersion": "2.0"}`,
	})

	var stdout, stderr bytes.Buffer
	err := RunListDeps(&stdout, &stderr, filepath.Join(dir, "index.js"), ListDepsFlags{Extensions: []string{"js"}})

	assert.ErrorContains(t, err, "unsupported configVersion")
	assert.Equal(t, stdout.String(), "")
}

func TestRootCmdFlags(t *testing.T) {
	t.Run("extensions default to js", func(t *testing.T) {
		flag := rootCmd.Flags().Lookup("extensions")
		assert.Assert(t, flag != nil)
		assert.Equal(t, flag.Shorthand, "e")
		assert.Equal(t, flag.DefValue, "[js]")
	})

	t.Run("requires exactly one root file", func(t *testing.T) {
		assert.ErrorContains(t, rootCmd.Args(rootCmd, []string{}), "accepts 1 arg(s)")
		assert.NilError(t, rootCmd.Args(rootCmd, []string{"index.js"}))
	})
}
