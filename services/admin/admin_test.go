package admin

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"dharmachain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentationRendersMarkdown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "README.md")
	require.NoError(t, os.WriteFile(path, []byte("# DharmaChain\n\nRun `make dev`.\n\n<script>alert(1)</script>\n"), 0o644))

	view := NewAdminService(NewDocsRenderer(path, nil)).Documentation(context.Background())
	assert.Contains(t, view.HTML, "<h1>DharmaChain</h1>")
	assert.Contains(t, view.HTML, "<code>make dev</code>")
	assert.NotContains(t, view.HTML, "<script>")
	assert.Contains(t, view.Markdown, "# DharmaChain")
}

func TestDocumentationFallsBackWhenUnreadable(t *testing.T) {
	view := NewDocsRenderer(filepath.Join(t.TempDir(), "missing.md"), nil).Render()
	assert.Equal(t, DocsFallback, view.Markdown)
	assert.Contains(t, view.HTML, DocsFallback)
}

func TestDashboardAndMembers(t *testing.T) {
	svc := NewAdminService(NewDocsRenderer("README.md", nil))

	dash := svc.Dashboard(&models.AdminSession{Email: "a@x.com", IsAdmin: true})
	assert.Equal(t, "a@x.com", dash.Email)
	assert.Len(t, dash.Navigation, 5)

	members := svc.Members(context.Background())
	assert.NotNil(t, members.Members)
	assert.Empty(t, members.Members)
	assert.NotEmpty(t, members.Notice)
}
