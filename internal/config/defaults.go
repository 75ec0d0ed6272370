// Package config provides configuration loading and defaults for ideval.
package config

// DefaultTasksDir is the default location of task templates.
const DefaultTasksDir = "tasks"

// DefaultResultsDir is the default location for provisioned task
// workspaces.
const DefaultResultsDir = "results/tasks"

// DefaultConfigDir is the default location for ideval configuration.
const DefaultConfigDir = "~/.config/ideval"

// DefaultDBName is the filename for the SQLite snapshot database.
const DefaultDBName = "ideval.db"

// DefaultIgnoreDirs is the deny-list of directory names excluded from
// scans. A deny-listed directory is pruned whole and counted once.
var DefaultIgnoreDirs = []string{
	"__pycache__",
	".venv",
	"venv",
	"node_modules",
	".git",
	".svn",
	".hg",
	".idea",
	".vscode",
	"dist",
	"build",
	"target",
	".next",
	"vendor",
	"coverage",
}

// DefaultIgnoreFiles are glob patterns for individual files excluded
// from scans, matched against the base name.
var DefaultIgnoreFiles = []string{
	"*.pyc",
	".DS_Store",
	"*.swp",
}

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{
	Color: true,
	Width: 80,
}

// DefaultIDEs maps known IDE names to their launch commands. The value
// is the executable invoked as `<cmd> <workspace-dir>`.
var DefaultIDEs = map[string]IDE{
	"cursor":   {Command: "cursor"},
	"vscode":   {Command: "code"},
	"copilot":  {Command: "code"},
	"windsurf": {Command: "windsurf"},
}
