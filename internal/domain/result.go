package domain

// Match is one occurrence found by running one rule against one file.
// Line and Column are 1-indexed; Text is the verbatim source spanned by
// the captured node (or regexp match). Matches are transient: the
// orchestrator folds them into Results immediately.
type Match struct {
	Line   int
	Column int
	Text   string
}

// Result is one reportable finding. Results are value objects: once
// created they are never mutated, only aggregated.
type Result struct {
	FilePath string   `json:"filePath"`
	Line     int      `json:"line"`
	Column   int      `json:"column"`
	RuleID   string   `json:"ruleId"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// Summary is the full output of linting one rule document against a file
// set. FileCount is reported even when Results is empty, so a clean scan
// of N files is distinguishable from a scan of nothing.
type Summary struct {
	Domain    string   `json:"domain"`
	FileCount int      `json:"fileCount"`
	Results   []Result `json:"results"`
}
