// Package branchutil provides branch name sanitization for the git ref namespace.
package branchutil

import (
	"regexp"
	"strings"
)

const (
	// MaxBranchNameByteLength is the maximum length for a branch name.
	// Git refs have a max length of 256 bytes; leave headroom for refs/heads/.
	MaxBranchNameByteLength = 234
)

var (
	whitespaceRegex  = regexp.MustCompile(`\s+`)
	invalidCharRegex = regexp.MustCompile(`[^-_/.a-zA-Z0-9]+`)
	hyphenRunRegex   = regexp.MustCompile(`-+`)
	dotRunRegex      = regexp.MustCompile(`\.+`)
	slashRunRegex    = regexp.MustCompile(`/+`)
	trailingRegex    = regexp.MustCompile(`[/.]*$`)
)

// SanitizeBranchName sanitizes a branch name to meet git ref naming rules.
// Whitespace runs become a single hyphen, characters outside [-_/.a-zA-Z0-9]
// are replaced, repeated separators are collapsed, leading/trailing
// separators are trimmed, and no path component starts with a hyphen or a
// dot. The result is deterministic and idempotent; it may be empty when the
// input contains no usable characters.
func SanitizeBranchName(name string) string {
	name = whitespaceRegex.ReplaceAllString(strings.TrimSpace(name), "-")
	name = invalidCharRegex.ReplaceAllString(name, "-")
	name = hyphenRunRegex.ReplaceAllString(name, "-")
	name = dotRunRegex.ReplaceAllString(name, ".")
	name = slashRunRegex.ReplaceAllString(name, "/")
	name = trailingRegex.ReplaceAllString(name, "")
	name = strings.Trim(name, "-/")

	// Components starting with "-" or "." are refused by git-check-ref-format
	parts := strings.Split(name, "/")
	components := parts[:0]
	for _, part := range parts {
		part = strings.TrimLeft(part, "-.")
		if part != "" {
			components = append(components, part)
		}
	}
	name = strings.Join(components, "/")

	if len(name) > MaxBranchNameByteLength {
		name = name[:MaxBranchNameByteLength]
		name = strings.TrimRight(name, "-/.")
	}

	return name
}
