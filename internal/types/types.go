// Package types defines every cross-package data structure used by the devtul CLI.
package types

// ValidatedRoot is an absolute scan root that already passed existence checks.
type ValidatedRoot struct {
	AbsolutePath string
	IsGitRepo    bool
}

// PathSet pairs the original repository-relative paths with the paths adjusted
// for a sub-directory view. Both slices are index-aligned.
type PathSet struct {
	Original []string
	Adjusted []string
}

// SearchMatch is a single line-level hit produced by the content search.
// A match with LineNumber zero carries a read error in Error instead of content.
type SearchMatch struct {
	RelativePath string `json:"relative_path" yaml:"relative_path"`
	LineNumber   int    `json:"line_number" yaml:"line_number"`
	Content      string `json:"content" yaml:"content"`
	Error        string `json:"error,omitempty" yaml:"error,omitempty"`
}

// IsError reports whether the match records a file read failure.
func (match SearchMatch) IsError() bool {
	return match.Error != ""
}

// SearchResults aggregates all matches for one search invocation.
type SearchResults struct {
	SearchTerm   string        `json:"search_term" yaml:"search_term"`
	TotalMatches int           `json:"total_matches" yaml:"total_matches"`
	Matches      []SearchMatch `json:"matches" yaml:"matches"`
}

// GitCommit describes the repository head commit.
type GitCommit struct {
	Hash    string `json:"hash" yaml:"hash"`
	Message string `json:"message" yaml:"message"`
	Author  string `json:"author" yaml:"author"`
	Date    string `json:"date" yaml:"date"`
}

// GitMetadata describes the state of a git repository.
type GitMetadata struct {
	Remotes            map[string]string `json:"remotes" yaml:"remotes"`
	CurrentBranch      string            `json:"current_branch" yaml:"current_branch"`
	Branches           []string          `json:"branches" yaml:"branches"`
	LatestCommit       *GitCommit        `json:"latest_commit,omitempty" yaml:"latest_commit,omitempty"`
	UncommittedChanges bool              `json:"uncommitted_changes" yaml:"uncommitted_changes"`
	UntrackedFiles     int               `json:"untracked_files" yaml:"untracked_files"`
}

// DocumentHeader is the YAML frontmatter of an assembled document.
type DocumentHeader struct {
	GeneratedAt   string `yaml:"generated_at"`
	RepoPath      string `yaml:"repo_path"`
	FileCount     int    `yaml:"file_count"`
	FilesIncluded int    `yaml:"files_included"`
	TotalTokens   int    `yaml:"total_tokens,omitempty"`
	TokenModel    string `yaml:"token_model,omitempty"`
}
