package domain_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/speclint/speclint/internal/domain"
)

func patternByLabel(t *testing.T, label string) domain.SecretPattern {
	t.Helper()
	for _, sp := range domain.SecretPatterns {
		if sp.Label == label {
			return sp
		}
	}
	t.Fatalf("no pattern labeled %q", label)
	return domain.SecretPattern{}
}

func TestSecretPatterns_GitHubTokenShape(t *testing.T) {
	sp := patternByLabel(t, "GitHub token")

	assert.True(t, sp.Pattern.MatchString("token="+"ghp_"+strings.Repeat("Ab1", 12)))
	assert.False(t, sp.Pattern.MatchString("ghp_"+strings.Repeat("A", 35)), "35 chars is too short")
	assert.False(t, sp.Pattern.MatchString("gho_"+strings.Repeat("A", 36)), "wrong prefix")
}

func TestSecretPatterns_OpenAIKeyShape(t *testing.T) {
	sp := patternByLabel(t, "OpenAI key")

	assert.True(t, sp.Pattern.MatchString("sk-"+strings.Repeat("Zx9Q", 12)))
	assert.False(t, sp.Pattern.MatchString("sk-"+strings.Repeat("Z", 47)))
}

func TestSecretPatterns_APIKeyAssignment(t *testing.T) {
	sp := patternByLabel(t, "API key")

	assert.True(t, sp.Pattern.MatchString(`api_key = "abcdef12345"`))
	assert.True(t, sp.Pattern.MatchString(`API-KEY='abcdef12345'`), "case insensitive, hyphen variant")
	assert.False(t, sp.Pattern.MatchString(`api_key = "short"`), "value under 10 chars")
}

func TestSecretPatterns_PasswordAssignment(t *testing.T) {
	sp := patternByLabel(t, "Password")

	assert.True(t, sp.Pattern.MatchString(`password = "hunter2"`))
	assert.True(t, sp.Pattern.MatchString(`PASSWORD='x'`))
	assert.False(t, sp.Pattern.MatchString(`password = ""`), "empty value")
}

func TestSecretPatterns_TableIsComplete(t *testing.T) {
	require.Len(t, domain.SecretPatterns, 4)
	for _, sp := range domain.SecretPatterns {
		assert.NotNil(t, sp.Pattern)
		assert.NotEmpty(t, sp.Label)
	}
}
