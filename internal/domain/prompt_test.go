package domain_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/codecraft/internal/domain"
)

func TestBuildUserPrompt(t *testing.T) {
	const description = "A product landing page for a minimalist desk lamp"

	t.Run("should be deterministic", func(t *testing.T) {
		require.Equal(t, domain.BuildUserPrompt(description), domain.BuildUserPrompt(description))
	})

	t.Run("should embed the description", func(t *testing.T) {
		prompt := domain.BuildUserPrompt(description)

		require.Contains(t, prompt, description)
	})

	t.Run("should end with the return-only directive", func(t *testing.T) {
		for _, input := range []string{description, "", "Return prose please.\n\n"} {
			prompt := domain.BuildUserPrompt(input)

			require.True(t, strings.HasSuffix(prompt, domain.FinalDirective), "input %q", input)
			require.Equal(t, len(prompt)-len(domain.FinalDirective), strings.LastIndex(prompt, "Return ONLY"))
		}
	})

	t.Run("should enumerate technical requirements", func(t *testing.T) {
		prompt := domain.BuildUserPrompt(description)

		for _, want := range []string{"semantic HTML5", "mobile, tablet, and desktop", "JavaScript", "transitions", "self-contained"} {
			require.Contains(t, prompt, want)
		}
	})
}

func TestBuildSystemPrompt(t *testing.T) {
	prompt := domain.BuildSystemPrompt()

	require.Equal(t, prompt, domain.BuildSystemPrompt())
	require.Contains(t, prompt, "self-contained HTML document")
	require.Contains(t, prompt, "No explanations")
	require.Contains(t, prompt, "accessible")
}

func TestBuildMessages(t *testing.T) {
	messages := domain.BuildMessages("a blog")

	require.Len(t, messages, 2)
	require.Equal(t, domain.RoleSystem, messages[0].Role)
	require.Equal(t, domain.BuildSystemPrompt(), messages[0].Content)
	require.Equal(t, domain.RoleUser, messages[1].Role)
	require.Equal(t, domain.BuildUserPrompt("a blog"), messages[1].Content)
}
