package admin

import (
	"bytes"
	"os"

	"dharmachain/models"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"
	"go.uber.org/zap"
)

// DocsFallback is shown when the documentation file cannot be read or rendered.
const DocsFallback = "Could not load README.md content."

// DocsRenderer renders the project README for the documentation screen.
// Raw HTML in the markdown is escaped.
type DocsRenderer struct {
	path     string
	md       goldmark.Markdown
	readFile func(string) ([]byte, error)
	logger   *zap.Logger
}

func NewDocsRenderer(path string, logger *zap.Logger) *DocsRenderer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DocsRenderer{
		path: path,
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(goldmarkHTML.WithHardWraps()),
		),
		readFile: os.ReadFile,
		logger:   logger,
	}
}

// Render reads the file on every call so edits show up without a restart.
func (d *DocsRenderer) Render() models.DocumentationView {
	src, err := d.readFile(d.path)
	if err != nil {
		d.logger.Warn("Failed to read documentation", zap.String("path", d.path), zap.Error(err))
		return models.DocumentationView{Markdown: DocsFallback, HTML: "<p>" + DocsFallback + "</p>"}
	}
	var buf bytes.Buffer
	if err := d.md.Convert(src, &buf); err != nil {
		d.logger.Warn("Failed to render documentation", zap.Error(err))
		return models.DocumentationView{Markdown: DocsFallback, HTML: "<p>" + DocsFallback + "</p>"}
	}
	return models.DocumentationView{Markdown: string(src), HTML: buf.String()}
}
