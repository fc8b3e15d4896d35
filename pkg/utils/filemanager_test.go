package utils

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFileList(t *testing.T) {
	for n := 0; n <= 3; n++ {
		in := make([]string, n)
		for i := range in {
			in[i] = fmt.Sprintf("/data/f%d.csv", i)
		}
		assert.Equal(t, in, FormatFileList(in), "n=%d", n)
	}

	empty := FormatFileList([]string{})
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
	assert.Nil(t, FormatFileList(nil))

	for _, n := range []int{4, 5, 12} {
		in := make([]string, n)
		for i := range in {
			in[i] = fmt.Sprintf("/data/f%d.csv", i)
		}
		original := append([]string(nil), in...)

		got := FormatFileList(in)
		require.Len(t, got, 5)
		assert.Equal(t, in[:3], got[:3])
		assert.Equal(t, "...", got[3])
		assert.Equal(t, fmt.Sprintf("and %d more files.", n-3), got[4])
		assert.Equal(t, original, in, "input must not change")
		assert.Equal(t, got, FormatFileList(in))
	}
}

func TestFilterByExtension(t *testing.T) {
	paths := []string{"/a/one.csv", "/a/two.CSV", "/a/three.xlsx", "/a/four.xls", "/a/fivecsv", "/a/six.csv.bak"}

	assert.Equal(t, []string{"/a/one.csv", "/a/two.CSV"}, FilterByExtension(paths, "csv"))
	assert.Equal(t, []string{"/a/three.xlsx"}, FilterByExtension(paths, "xlsx"))
	assert.Equal(t, []string{"/a/four.xls"}, FilterByExtension(paths, "xls"))
	assert.Nil(t, FilterByExtension(paths, ""))
}

func TestOutputPath(t *testing.T) {
	assert.Equal(t, filepath.Join("/out", "report.2024.xlsx"), OutputPath("/out", "/in/report.2024.csv", "xlsx"))
	assert.Equal(t, filepath.Join("/out", "data.csv"), OutputPath("/out", "data.xlsx", "csv"))
}

func TestDiscoverFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0o755))
	for _, name := range []string{"b.csv", "a.csv", filepath.Join("sub", "c.xlsx")} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}
	single := filepath.Join(t.TempDir(), "single.csv")
	require.NoError(t, os.WriteFile(single, []byte("x"), 0o644))

	files, err := DiscoverFiles([]string{single, dir})
	require.NoError(t, err)
	assert.Equal(t, []string{
		single,
		filepath.Join(dir, "a.csv"),
		filepath.Join(dir, "b.csv"),
		filepath.Join(dir, "sub", "c.xlsx"),
	}, files)

	_, err = DiscoverFiles([]string{filepath.Join(dir, "missing")})
	assert.Error(t, err)
}

func TestDiscoverFiles_FollowsFileLinks(t *testing.T) {
	target := filepath.Join(t.TempDir(), "real.csv")
	require.NoError(t, os.WriteFile(target, []byte("x"), 0o644))

	dir := t.TempDir()
	if err := os.Symlink(target, filepath.Join(dir, "linked.csv")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}
	require.NoError(t, os.Symlink(filepath.Join(dir, "gone.csv"), filepath.Join(dir, "dangling.csv")))
	require.NoError(t, os.Symlink(t.TempDir(), filepath.Join(dir, "subdir")))

	files, err := DiscoverFiles([]string{dir})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "linked.csv")}, files)
}

func TestWriteAtomic(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "out.csv")

	require.NoError(t, WriteAtomic(target, func(w io.Writer) error {
		_, err := io.WriteString(w, "a,b\n")
		return err
	}))
	content, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "a,b\n", string(content))

	boom := errors.New("boom")
	err = WriteAtomic(target, func(w io.Writer) error {
		io.WriteString(w, "partial")
		return boom
	})
	assert.ErrorIs(t, err, boom)

	content, err = os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "a,b\n", string(content), "failed write must keep the previous file")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file must be removed")
}

func TestWriteSummaryLog(t *testing.T) {
	dir := t.TempDir()
	start := time.Date(2024, 1, 15, 14, 30, 22, 0, time.UTC)

	path, err := WriteSummaryLog(ProcessingSummary{
		RunID:           "run-1",
		Mode:            "CSV to Excel (xlsx)",
		StartTime:       start,
		EndTime:         start.Add(2 * time.Second),
		TotalFiles:      2,
		SuccessfulFiles: 1,
		FailedFiles:     1,
		ProcessedFiles:  []ProcessedFileInfo{{InputFile: "/in/a.csv", OutputFile: "/out/a.xlsx", Rows: 3, Columns: 2}},
		FailedFilesList: []FailedFileInfo{{InputFile: "/in/b.csv", ErrorMessage: "read /in/b.csv: invalid utf-8 byte sequence"}},
	}, dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "processing_summary_20240115_143022.txt"), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(content)
	assert.True(t, strings.HasPrefix(text, "CSV/Excel Converter - Processing Summary"))
	assert.Contains(t, text, "  Successful:     1\n")
	assert.Contains(t, text, "  Output:       /out/a.xlsx\n")
	assert.Contains(t, text, "  File:  /in/b.csv\n")
	assert.True(t, strings.HasSuffix(text, "End of Summary\n"))
}

func TestIsDir(t *testing.T) {
	dir := t.TempDir()
	assert.True(t, IsDir(dir))
	assert.False(t, IsDir(filepath.Join(dir, "nope")))
}
