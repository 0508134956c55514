// Package config resolves application configuration and default ignore rules.
package config

// DefaultIgnoreParts lists substrings that exclude a path when they appear
// anywhere in its string form.
var DefaultIgnoreParts = []string{
	"uv.lock",
	".idea",
	".vscode",
	".DS_Store",
	"__pycache__",
	"coverage.xml",
	".python-version",
	"node_modules",
	".git",
	".pytest_cache",
	".mypy_cache",
	".ruff_cache",
	".tox",
	".eggs",
	"dist",
	"build",
	".venv",
	"venv",
	"vendor",
}

// DefaultIgnorePatterns lists glob patterns evaluated against the full path
// and against its final segment.
var DefaultIgnorePatterns = []string{
	"*cache*",
	"*.pyc",
	"*.pyo",
	"*.pyd",
	"*.so",
	"*.dylib",
	"*.dll",
	"*.exe",
	"*.o",
	"*.a",
	"*.egg-info",
	"Thumbs.db",
	"*.swp",
	"*.swo",
	"*~",
	".*.swp",
}
