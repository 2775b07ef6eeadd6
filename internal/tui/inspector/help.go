package inspector

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/rs/zerolog/log"

	"github.com/colonyops/inspector/internal/core/styles"
)

// helpRenderer renders property help markdown, caching by width and source.
type helpRenderer struct {
	cache map[helpKey]string
}

type helpKey struct {
	width int
	src   string
}

func newHelpRenderer() *helpRenderer {
	return &helpRenderer{cache: make(map[helpKey]string)}
}

func (h *helpRenderer) Render(src string, width int) string {
	k := helpKey{width: width, src: src}
	if out, ok := h.cache[k]; ok {
		return out
	}

	out := h.render(src, width)
	h.cache[k] = out
	return out
}

func (h *helpRenderer) render(src string, width int) string {
	style := styles.GlamourStyle()
	noMargin := uint(0)
	style.Document.Margin = &noMargin

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStyles(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		log.Debug().Err(err).Msg("failed to create markdown renderer, showing raw help")
		return src
	}

	rendered, err := renderer.Render(src)
	if err != nil {
		log.Debug().Err(err).Msg("failed to render help markdown, showing raw help")
		return src
	}
	return strings.TrimSpace(rendered)
}
