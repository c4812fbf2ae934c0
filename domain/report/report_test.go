package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppendAndText(t *testing.T) {
	r := &Report{Kind: KindSingle, Alpha: 0.05}
	r.Append("Statistics", "stats body")
	r.Append("Shapiro-Wilk test for normality", "norm body")

	assert.Len(t, r.Sections, 2)
	assert.Equal(t, "stats body\nnorm body", r.Text())
}

func TestMarkdownDefaultTitle(t *testing.T) {
	r := &Report{Kind: KindPair}
	r.Append("Linear Regression", "body")

	md := r.Markdown()
	assert.True(t, strings.HasPrefix(md, "# Analysis (pair)\n"))
	assert.Contains(t, md, "## Linear Regression")
	assert.Contains(t, md, "```\nbody\n```")
}

func TestMarkdownDroppedMembers(t *testing.T) {
	r := &Report{Kind: KindGroup, Title: "trial", DroppedMembers: 2}
	md := r.Markdown()
	assert.Contains(t, md, "# trial")
	assert.Contains(t, md, "2 group member(s) dropped")
}
