package filtering

import "strings"

// DeniedPrefixes lists the line prefixes that are removed from fetched
// documents, matched case-insensitively at line start.
var DeniedPrefixes = []string{"http=", "https=", "socks5="}

// KnownPrefixes lists the retained node schemes broken out in reports.
var KnownPrefixes = []string{"ss://", "vmess://", "vless://", "trojan://", "ssr://"}

// OtherProtocol labels kept content lines matching none of KnownPrefixes.
const OtherProtocol = "other"

// Stats summarises one filter pass.
type Stats struct {
	Total   int
	Removed int
	Kept    int
}

// Result holds the retained ordered lines of a document plus counts.
type Result struct {
	Lines []string
	Stats Stats
}

// Text returns the kept lines joined with newlines.
func (r Result) Text() string {
	return strings.Join(r.Lines, "\n")
}

// SplitLines splits a document on newlines, treating \r\n as a single
// terminator. Blank lines are retained.
func SplitLines(content string) []string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// Truncate shortens a line for log output. The cut is rune-aligned so
// multibyte remark text stays valid UTF-8.
func Truncate(line string, max int) string {
	if max <= 0 {
		return line
	}
	runes := []rune(line)
	if len(runes) <= max {
		return line
	}
	return string(runes[:max]) + "..."
}
