package sanitize

import (
	"strings"
	"testing"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
)

type SanitizeSuite struct {
	suite.Suite
}

func (suite *SanitizeSuite) TestDisplayName(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Should trim surrounding whitespace",
			input:    "  Taylor  ",
			expected: "Taylor",
		},
		{
			name:     "Should escape markup characters",
			input:    `<b>Sam & "Max"</b>`,
			expected: "&lt;b&gt;Sam &amp; &#34;Max&#34;&lt;/b&gt;",
		},
		{
			name:     "Should escape single quotes",
			input:    "O'Brien",
			expected: "O&#39;Brien",
		},
		{
			name:     "Should cap plain input at the limit",
			input:    strings.Repeat("a", 80),
			expected: strings.Repeat("a", MaxLength),
		},
		{
			name:     "Should drop an escape sequence that does not fit instead of splitting it",
			input:    strings.Repeat("a", 48) + "<<<",
			expected: strings.Repeat("a", 48),
		},
		{
			name:     "Should trim whitespace exposed by truncation",
			input:    strings.Repeat("a", 49) + " b",
			expected: strings.Repeat("a", 49),
		},
		{
			name:     "Should return empty string for whitespace-only input",
			input:    "   \t  ",
			expected: "",
		},
		{
			name:     "Should keep multibyte runes intact",
			input:    "Zoë 🎬",
			expected: "Zoë 🎬",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()

			got := DisplayName(tc.input)

			assert.Equal(t, tc.expected, got)
			assert.LessOrEqual(t, len(got), MaxLength)
			assert.NotContains(t, got, "<")
			assert.NotContains(t, got, ">")
			assert.NotContains(t, got, `"`)
		})
	}
}

func TestSanitizeSuite(t *testing.T) {
	suite.RunSuite(t, new(SanitizeSuite))
}
