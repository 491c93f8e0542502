package domain

import (
	"path/filepath"
	"strings"
)

// Language identifies a supported grammar. The zero value LangNone means
// "no detected language": such files still receive plain-text rules but
// never language-specific ones.
type Language string

const (
	LangNone       Language = ""
	LangGo         Language = "go"
	LangPython     Language = "python"
	LangRust       Language = "rust"
	LangC          Language = "c"
	LangJavaScript Language = "javascript"
	LangTypeScript Language = "typescript"
	LangTSX        Language = "tsx"
	LangBash       Language = "bash"
	LangYAML       Language = "yaml"
)

// extensionLanguages maps file extensions to language identifiers.
// tsx is deliberately distinct from typescript: queries may target
// JSX-specific node types, so the two dialects keep separate grammars.
var extensionLanguages = map[string]Language{
	".go":   LangGo,
	".py":   LangPython,
	".rs":   LangRust,
	".c":    LangC,
	".h":    LangC,
	".js":   LangJavaScript,
	".mjs":  LangJavaScript,
	".cjs":  LangJavaScript,
	".jsx":  LangJavaScript,
	".ts":   LangTypeScript,
	".mts":  LangTypeScript,
	".cts":  LangTypeScript,
	".tsx":  LangTSX,
	".sh":   LangBash,
	".bash": LangBash,
	".yaml": LangYAML,
	".yml":  LangYAML,
}

// DetectLanguage maps a file path to a language identifier by extension.
// Unrecognized extensions detect as LangNone, which is not an error.
func DetectLanguage(path string) Language {
	ext := strings.ToLower(filepath.Ext(path))
	return extensionLanguages[ext]
}

// dialectSupersets enumerates the one-directional dialect compatibilities:
// a file in the superset dialect accepts rules declared for the base
// language, because the superset embeds every base construct. The reverse
// does not hold.
var dialectSupersets = map[Language]Language{
	LangTSX: LangTypeScript,
}

// Compatible reports whether a rule declared for ruleLang may run against
// a file detected as fileLang.
func Compatible(fileLang, ruleLang Language) bool {
	if ruleLang == LangNone {
		return true // plain-text rules apply everywhere
	}
	if fileLang == ruleLang {
		return true
	}
	return dialectSupersets[fileLang] == ruleLang
}
