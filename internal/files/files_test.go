package files

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
}

func TestFindSourceWorkbooks(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "horas_enero.xlsx")
	touch(t, dir, "horas_febrero.xls")
	touch(t, dir, "horas_enero_IPI.xlsx") // generated report, skipped
	touch(t, dir, "notas.txt")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.xlsx"), 0755))

	found, err := NewDiscovery(dir).FindSourceWorkbooks(".")
	require.NoError(t, err)

	names := make([]string, 0, len(found))
	for _, f := range found {
		names = append(names, f.Name)
	}
	assert.ElementsMatch(t, []string{"horas_enero.xlsx", "horas_febrero.xls"}, names)
}

func TestFindSourceWorkbooksMissingDir(t *testing.T) {
	_, err := NewDiscovery(t.TempDir()).FindSourceWorkbooks("no-such-dir")
	assert.Error(t, err)
}

func TestReportPath(t *testing.T) {
	assert.Equal(t,
		filepath.Join("data", "horas_IPI.xlsx"),
		ReportPath(filepath.Join("data", "horas.xlsx"), ""))
	assert.Equal(t,
		filepath.Join("out", "horas_IPI.xlsx"),
		ReportPath(filepath.Join("data", "horas.xls"), "out"))
}

func TestIsReportFile(t *testing.T) {
	assert.True(t, IsReportFile("horas_IPI.xlsx"))
	assert.True(t, IsReportFile("HORAS_ipi.XLSX"))
	assert.False(t, IsReportFile("horas.xlsx"))
	assert.False(t, IsReportFile("horas_IPI.xls"))
}

type fakeConverter struct {
	out string
	err error
}

func (c *fakeConverter) ConvertToXLSX(ctx context.Context, path string) (string, error) {
	return c.out, c.err
}

func TestResolveSource(t *testing.T) {
	ctx := context.Background()

	p, err := ResolveSource(ctx, "horas.xlsx", nil)
	require.NoError(t, err)
	assert.Equal(t, "horas.xlsx", p)

	_, err = ResolveSource(ctx, "horas.xls", nil)
	assert.ErrorIs(t, err, ErrLegacyFormat)

	p, err = ResolveSource(ctx, "horas.XLS", &fakeConverter{out: "horas.xlsx"})
	require.NoError(t, err)
	assert.Equal(t, "horas.xlsx", p)

	wantErr := errors.New("conversion failed")
	_, err = ResolveSource(ctx, "horas.xls", &fakeConverter{err: wantErr})
	assert.ErrorIs(t, err, wantErr)
}
