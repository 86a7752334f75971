package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/yuin/goldmark"

	"vertical_content_generator/generator"
)

// writePreview renders one stored result as an HTML page. The result is
// laid out as markdown first so copy that contains emphasis or emoji
// shows up the way it would in a post draft.
func (s *Server) writePreview(w http.ResponseWriter, res *StoredResult) {
	md := previewMarkdown(res)

	var body strings.Builder
	if err := goldmark.Convert([]byte(md), &body); err != nil {
		s.logger.Printf("[server] preview render failed: %v", err)
		http.Error(w, "preview unavailable", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, "<!doctype html><html><head><title>Generation %s</title></head><body>%s</body></html>", res.ID, body.String())
}

func previewMarkdown(res *StoredResult) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# %s · %s\n\n", res.Industry, res.Kind))
	sb.WriteString("## Brief\n\n")
	sb.WriteString(res.Brief)
	sb.WriteString("\n")

	writeList := func(title string, items []generator.ContentItem) {
		if len(items) == 0 {
			return
		}
		sb.WriteString(fmt.Sprintf("\n## %s\n\n", title))
		for _, item := range items {
			sb.WriteString("- ")
			sb.WriteString(item.Text)
			if item.Status == generator.StatusLowRelevance {
				sb.WriteString(" *(low relevance)*")
			}
			sb.WriteString("\n")
		}
	}
	writeList("Items", res.Items)
	writeList("Captions", res.Captions)
	writeList("Content Ideas", res.Ideas)
	return sb.String()
}
