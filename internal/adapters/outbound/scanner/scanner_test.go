package scanner_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/speclint/speclint/internal/adapters/outbound/scanner"
)

func writeFile(t *testing.T, root, rel string, content []byte) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, content, 0644))
}

func TestScan_RecordsDirsAndFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "specs/001-auth/spec.md", []byte("# Spec\n"))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".github", "workflows"), 0755))

	scan, err := scanner.New().Scan(dir, nil, nil)
	require.NoError(t, err)

	assert.True(t, scan.Dirs["specs"])
	assert.True(t, scan.Dirs["specs/001-auth"])
	assert.True(t, scan.Dirs[".github/workflows"], "empty directories are recorded too")
	assert.True(t, scan.Files["specs/001-auth/spec.md"])
	assert.Equal(t, "# Spec\n", scan.Texts["specs/001-auth/spec.md"])
}

func TestScan_PrunesExcludedDirsBeforeDescent(t *testing.T) {
	dir := t.TempDir()
	token := "ghp_" + strings.Repeat("a1B2", 9)
	writeFile(t, dir, "node_modules/pkg/index.md", []byte(token+"\n"))
	writeFile(t, dir, ".git/config.txt", []byte("noise\n"))
	writeFile(t, dir, "README.md", []byte("# ok\n"))

	scan, err := scanner.New().Scan(dir, nil, nil)
	require.NoError(t, err)

	assert.False(t, scan.Dirs["node_modules"])
	assert.False(t, scan.Files["node_modules/pkg/index.md"], "pruned trees never surface")
	assert.NotContains(t, scan.Texts, "node_modules/pkg/index.md")
	assert.NotContains(t, scan.Texts, ".git/config.txt")
	assert.True(t, scan.Files["README.md"])
}

func TestScan_ExtraExcludesFromConfig(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "generated/out.md", []byte("x\n"))
	writeFile(t, dir, "fixtures.md", []byte("x\n"))

	scan, err := scanner.New().Scan(dir, []string{"generated/"}, []string{"fixtures.md"})
	require.NoError(t, err)

	assert.False(t, scan.Dirs["generated"])
	assert.True(t, scan.Files["fixtures.md"], "excluded files still exist")
	assert.NotContains(t, scan.Texts, "fixtures.md", "but are never read")
}

func TestScan_SkipsOwnPatternSources(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "internal/domain/secrets.go", []byte("package domain\n"))

	scan, err := scanner.New().Scan(dir, nil, nil)
	require.NoError(t, err)

	assert.True(t, scan.Files["internal/domain/secrets.go"])
	assert.NotContains(t, scan.Texts, "internal/domain/secrets.go")
}

func TestScan_SkipsNonTextAndBinary(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "image.png", []byte{0x89, 0x50, 0x4e, 0x47})
	writeFile(t, dir, "broken.md", []byte{0xff, 0xfe, 0x41})

	scan, err := scanner.New().Scan(dir, nil, nil)
	require.NoError(t, err)

	assert.True(t, scan.Files["image.png"])
	assert.NotContains(t, scan.Texts, "image.png", "extension not in allow-list")
	assert.NotContains(t, scan.Texts, "broken.md", "invalid UTF-8 is skipped silently")
}

func TestScan_TextOrderIsDeterministic(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.md", []byte("b\n"))
	writeFile(t, dir, "a.md", []byte("a\n"))
	writeFile(t, dir, "sub/c.md", []byte("c\n"))

	first, err := scanner.New().Scan(dir, nil, nil)
	require.NoError(t, err)
	second, err := scanner.New().Scan(dir, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"a.md", "b.md", "sub/c.md"}, first.TextOrder)
	assert.Equal(t, first.TextOrder, second.TextOrder)
}

func TestScan_MissingRootIsError(t *testing.T) {
	_, err := scanner.New().Scan(filepath.Join(t.TempDir(), "nope"), nil, nil)
	assert.Error(t, err)
}
