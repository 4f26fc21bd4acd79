package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderBannerIncludesSubtitle(t *testing.T) {
	out := RenderBanner(120)
	assert.NotContains(t, out, "\x1b]")
	assert.Contains(t, out, "Admin Console")
	assert.Contains(t, out, "─")
	assert.Contains(t, out, "██████")
}

func TestRenderBannerNarrowTerminal(t *testing.T) {
	out := RenderBanner(30)
	assert.Contains(t, out, "resale")
	assert.NotContains(t, out, "██")
}
