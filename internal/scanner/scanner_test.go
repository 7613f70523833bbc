package scanner

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uforgetmenot/fileviewer/internal/config"
	"github.com/uforgetmenot/fileviewer/internal/testutil"
)

func newDefaultScanner() *Scanner {
	return New(config.GetDefault())
}

// =============================================================================
// Collect Tests
// =============================================================================

func TestCollectScenario(t *testing.T) {
	f := testutil.NewFixture(t)
	f.CreateFiles("a.png", "sub/b.pdf", "sub/c.unknownext", "sub/deep/d.mp3")

	result, err := newDefaultScanner().Collect(f.RootDir)
	require.NoError(t, err)

	assert.Equal(t, Groups{
		".":        {Images: {"a.png"}},
		"sub":      {PDF: {"sub/b.pdf"}},
		"sub/deep": {Audio: {"sub/deep/d.mp3"}},
	}, result.Groups)

	assert.Equal(t, 1, result.Totals[Images])
	assert.Equal(t, 1, result.Totals[PDF])
	assert.Equal(t, 1, result.Totals[Audio])
	assert.Equal(t, 3, result.TotalFiles())
	assert.Equal(t, []string{".", "sub", "sub/deep"}, result.DirKeys())
}

func TestCollectTotalsZeroFilled(t *testing.T) {
	f := testutil.NewFixture(t)

	result, err := newDefaultScanner().Collect(f.RootDir)
	require.NoError(t, err)

	assert.Empty(t, result.Groups)
	assert.Len(t, result.Totals, 12)
	for _, category := range result.Order {
		count, ok := result.Totals[category]
		assert.True(t, ok, "missing total for %s", category)
		assert.Zero(t, count)
	}
	assert.Zero(t, result.TotalFiles())
}

func TestCollectSortsFileLists(t *testing.T) {
	f := testutil.NewFixture(t)
	f.CreateFiles("z.png", "B.png", "a.png", "_x.png", "10.png", "9.png")

	result, err := newDefaultScanner().Collect(f.RootDir)
	require.NoError(t, err)

	// Byte-wise ordering, not locale-aware
	assert.Equal(t, []string{"10.png", "9.png", "B.png", "_x.png", "a.png", "z.png"}, result.Groups["."][Images])
}

func TestCollectGroupsByDirectParent(t *testing.T) {
	f := testutil.NewFixture(t)
	f.CreateDir("empty")
	f.CreateFiles(
		"only-nested/inner/x.txt",
		"mixed/doc.docx",
		"mixed/notes.md",
		"mixed/map.mm.md",
		"mixed/talk.ppt.md",
		"mixed/legacy.doc",
	)

	result, err := newDefaultScanner().Collect(f.RootDir)
	require.NoError(t, err)

	assert.NotContains(t, result.Groups, ".")
	assert.NotContains(t, result.Groups, "empty")
	assert.NotContains(t, result.Groups, "only-nested")
	assert.Contains(t, result.Groups, "only-nested/inner")

	assert.Equal(t, map[Category][]string{
		Word:     {"mixed/doc.docx"},
		Markdown: {"mixed/notes.md"},
		Mindmap:  {"mixed/map.mm.md"},
		Marpit:   {"mixed/talk.ppt.md"},
	}, result.Groups["mixed"])
	assert.Equal(t, 5, result.TotalFiles())
}

func TestCollectTotalsMatchGroups(t *testing.T) {
	f := testutil.NewFixture(t)
	f.CreateFiles(
		"a.png", "b.jpg", "c.mp4",
		"x/a.png", "x/song.mp3", "x/y/z.pdf",
		"x/y/z.xlsx", "x/y/z.pptx", "w/q.drawio",
	)

	result, err := newDefaultScanner().Collect(f.RootDir)
	require.NoError(t, err)

	fromGroups := make(Totals)
	seen := make(map[string]bool)
	for _, byCategory := range result.Groups {
		for category, files := range byCategory {
			fromGroups[category] += len(files)
			for _, file := range files {
				assert.False(t, seen[file], "duplicate file %s", file)
				seen[file] = true
			}
		}
	}

	for _, category := range result.Order {
		assert.Equal(t, result.Totals[category], fromGroups[category], "totals mismatch for %s", category)
	}
	assert.Equal(t, 9, result.TotalFiles())
}

func TestCollectIgnoresPreviousIndex(t *testing.T) {
	f := testutil.NewFixture(t)
	f.CreateFiles("index.json", "a.txt")

	result, err := newDefaultScanner().Collect(f.RootDir)
	require.NoError(t, err)

	assert.Equal(t, Groups{".": {Text: {"a.txt"}}}, result.Groups)
}

func TestCollectSymlinkedFile(t *testing.T) {
	testutil.SkipOnWindows(t)

	f := testutil.NewFixture(t)
	target := f.CreateFile("docs/real.pdf", nil)
	f.CreateSymlink(target, "links/alias.pdf")
	f.CreateBrokenSymlink("links/broken.pdf")

	result, err := newDefaultScanner().Collect(f.RootDir)
	require.NoError(t, err)

	assert.Equal(t, []string{"links/alias.pdf"}, result.Groups["links"][PDF])
	assert.Equal(t, 2, result.Totals[PDF])
}

func TestCollectDoesNotFollowDirectorySymlinks(t *testing.T) {
	testutil.SkipOnWindows(t)

	f := testutil.NewFixture(t)
	f.CreateFiles("real/a.png")
	f.CreateSymlink(f.Path("real"), "alias")

	result, err := newDefaultScanner().Collect(f.RootDir)
	require.NoError(t, err)

	assert.NotContains(t, result.Groups, "alias")
	assert.Equal(t, 1, result.Totals[Images])
}

func TestCollectSymlinkedRoot(t *testing.T) {
	testutil.SkipOnWindows(t)

	f := testutil.NewFixture(t)
	f.CreateFiles("real/a.png", "real/sub/b.pdf")
	link := f.CreateSymlink(f.Path("real"), "alias")

	result, err := newDefaultScanner().Collect(link)
	require.NoError(t, err)

	assert.Equal(t, link, result.Root)
	assert.Equal(t, Groups{
		".":   {Images: {"a.png"}},
		"sub": {PDF: {"sub/b.pdf"}},
	}, result.Groups)
}

func TestCollectUnreadableDirectoryAborts(t *testing.T) {
	testutil.SkipOnWindows(t)
	testutil.SkipIfRoot(t)

	f := testutil.NewFixture(t)
	f.CreateFiles("a.png")
	f.CreateUnreadableDir("locked")

	result, err := newDefaultScanner().Collect(f.RootDir)
	require.Error(t, err)
	assert.Nil(t, result)

	var walkErr *WalkError
	require.True(t, errors.As(err, &walkErr))
	assert.Equal(t, f.Path("locked"), walkErr.Path)
	assert.True(t, errors.Is(err, os.ErrPermission))
}

func TestCollectIsDeterministic(t *testing.T) {
	f := testutil.NewFixture(t)
	f.CreateFiles("b/2.png", "a/1.png", "b/1.png", "c.md", "a/z.mm.md")

	s := newDefaultScanner()
	first, err := s.Collect(f.RootDir)
	require.NoError(t, err)
	second, err := s.Collect(f.RootDir)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
