package utils

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	// MaxBranchNameByteLength is the maximum length for a branch name.
	// Git refs have a max length of 256 bytes; the rest is kept for
	// "refs/heads/" and the "#wip" suffix of stash branches.
	MaxBranchNameByteLength = 240
)

var (
	// BranchNameReplaceRegex matches characters that are not valid in branch names
	// Valid characters: letters, numbers, -, _, /, .
	BranchNameReplaceRegex = regexp.MustCompile(`[^-_/.a-zA-Z0-9]+`)

	// BranchNameIgnoreRegex matches trailing slashes and dots that should be removed
	BranchNameIgnoreRegex = regexp.MustCompile(`[/.]*$`)

	hyphenRegex             = regexp.MustCompile(`-+`)
	conventionalPrefixRegex = regexp.MustCompile(`^(feat|fix|chore|docs|style|refactor|perf|test|build|ci)(\([^)]*\))?:\s*`)
)

// SanitizeBranchName sanitizes a branch name by replacing invalid characters
func SanitizeBranchName(name string) string {
	// Remove trailing slashes and dots
	name = BranchNameIgnoreRegex.ReplaceAllString(name, "")

	// Replace invalid characters with hyphens
	name = BranchNameReplaceRegex.ReplaceAllString(name, "-")

	// Remove multiple consecutive hyphens
	name = hyphenRegex.ReplaceAllString(name, "-")

	// Trim leading/trailing hyphens
	name = strings.Trim(name, "-")

	// Limit length
	if len(name) > MaxBranchNameByteLength {
		name = name[:MaxBranchNameByteLength]
		// Trim trailing hyphen if we cut at a hyphen
		name = strings.TrimSuffix(name, "-")
	}

	return name
}

// GenerateBranchNameFromMessage generates a branch name from a commit message
func GenerateBranchNameFromMessage(message string) string {
	if message == "" {
		return ""
	}

	// Take first line of message (subject line)
	subject, _, _ := strings.Cut(message, "\n")
	subject = strings.TrimSpace(subject)

	// Remove conventional commit prefixes like "feat:" or "fix(parser):"
	subject = conventionalPrefixRegex.ReplaceAllString(subject, "")

	return strings.ToLower(SanitizeBranchName(subject))
}

// ValidateBranchName reports why name cannot be used as a git branch name,
// following the rules of git check-ref-format --branch.
func ValidateBranchName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("branch name is empty")
	case len(name) > MaxBranchNameByteLength:
		return fmt.Errorf("branch name is longer than %d bytes", MaxBranchNameByteLength)
	case name == "@" || name == "HEAD":
		return fmt.Errorf("%q is not a valid branch name", name)
	case strings.HasPrefix(name, "-"), strings.HasPrefix(name, "/"):
		return fmt.Errorf("branch name %q cannot start with %q", name, name[:1])
	case strings.HasSuffix(name, "/"), strings.HasSuffix(name, "."):
		return fmt.Errorf("branch name %q cannot end with %q", name, name[len(name)-1:])
	case strings.HasSuffix(name, ".lock"):
		return fmt.Errorf("branch name %q cannot end with .lock", name)
	}

	for _, bad := range []string{"..", "//", "@{", "/."} {
		if strings.Contains(name, bad) {
			return fmt.Errorf("branch name %q cannot contain %q", name, bad)
		}
	}
	for _, r := range name {
		if r < 0x20 || r == 0x7f || strings.ContainsRune(" ~^:?*[\\", r) {
			return fmt.Errorf("branch name %q contains invalid character %q", name, r)
		}
	}
	return nil
}
