package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSanitizeBranchName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "simple name passes through", input: "feature", expected: "feature"},
		{name: "spaces replaced with hyphens", input: "my feature branch", expected: "my-feature-branch"},
		{name: "special characters replaced", input: "feature!@#$%^&*()", expected: "feature"},
		{name: "wip suffix is not preserved", input: "main#wip", expected: "main-wip"},
		{name: "slashes preserved", input: "feature/my-branch", expected: "feature/my-branch"},
		{name: "dots preserved", input: "feature.v1.0", expected: "feature.v1.0"},
		{name: "trailing dots and slashes removed", input: "feature./", expected: "feature"},
		{name: "multiple consecutive hyphens collapsed", input: "my---feature", expected: "my-feature"},
		{name: "leading hyphens trimmed", input: "--feature", expected: "feature"},
		{name: "empty string returns empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, SanitizeBranchName(tt.input))
		})
	}
}

func TestSanitizeBranchName_MaxLength(t *testing.T) {
	t.Parallel()

	result := SanitizeBranchName(strings.Repeat("a", MaxBranchNameByteLength+10))
	require.Len(t, result, MaxBranchNameByteLength)

	cut := SanitizeBranchName(strings.Repeat("a", MaxBranchNameByteLength-1) + "-b")
	require.Len(t, cut, MaxBranchNameByteLength-1)
}

func TestGenerateBranchNameFromMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		message  string
		expected string
	}{
		{name: "simple message", message: "Add login page", expected: "add-login-page"},
		{name: "conventional commit prefix", message: "feat: add login page", expected: "add-login-page"},
		{name: "prefix with scope", message: "fix(parser): handle tabs", expected: "handle-tabs"},
		{name: "multiline message uses first line only", message: "Subject line\n\nBody text", expected: "subject-line"},
		{name: "absorbed merge message", message: "Absorbed feature/login", expected: "absorbed-feature/login"},
		{name: "empty message returns empty", message: "", expected: ""},
		{name: "whitespace only message", message: "   ", expected: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, GenerateBranchNameFromMessage(tt.message))
		})
	}
}

func TestValidateBranchName(t *testing.T) {
	t.Parallel()

	valid := []string{"main", "feature/login", "v1.2", "main#wip", "user@host"}
	for _, name := range valid {
		require.NoError(t, ValidateBranchName(name), name)
	}

	invalid := []string{
		"",
		"HEAD",
		"-flag",
		"/root",
		"trailing/",
		"dot.",
		"x.lock",
		"a..b",
		"a//b",
		"a@{1}",
		"a/.hidden",
		"has space",
		"tilde~1",
		"caret^",
		"colon:",
		"glob*",
		"bracket[",
		"back\\slash",
		"ctrl\x01",
		strings.Repeat("a", MaxBranchNameByteLength+1),
	}
	for _, name := range invalid {
		require.Error(t, ValidateBranchName(name), name)
	}
}
