package conv

import (
	"bytes"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/inbucket/html2text"
	"github.com/microcosm-cc/bluemonday"
)

var (
	extensions = parser.CommonExtensions | parser.NoEmptyLineBeforeBlock
	htmlFlags  = html.CommonFlags | html.HrefTargetBlank
	tgPolicy   = bluemonday.NewPolicy()
)

func init() {
	// Allowed tags https://core.telegram.org/bots/api#html-style
	tgPolicy.AllowElements("b", "strong", "i", "em", "u", "ins", "s", "strike", "del", "code", "pre", "blockquote")
	tgPolicy.AllowAttrs("href").OnElements("a")
	tgPolicy.AllowAttrs("class").OnElements("code")
}

func renderHTML(md []byte) []byte {
	p := parser.NewWithExtensions(extensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: htmlFlags})
	return markdown.Render(p.Parse(md), renderer)
}

// MarkdownToTelegramHTML renders model output into the HTML subset Telegram accepts.
func MarkdownToTelegramHTML(md []byte) string {
	return string(tgPolicy.SanitizeBytes(renderHTML(md)))
}

// MarkdownToPlain renders model output for terminals that cannot show markup.
// On conversion failure the trimmed input is returned as-is.
func MarkdownToPlain(md []byte) string {
	if len(bytes.TrimSpace(md)) == 0 {
		return ""
	}

	text, err := html2text.FromReader(bytes.NewReader(renderHTML(md)), html2text.Options{
		PrettyTables: true,
		OmitLinks:    true,
	})
	if err != nil {
		return strings.TrimSpace(string(md))
	}
	return strings.TrimSpace(text)
}
