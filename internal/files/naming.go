package files

import (
	"path/filepath"
	"strings"
)

// ReportSuffix is appended to a source workbook's base name to form its
// report file name.
const ReportSuffix = "_IPI"

// ReportPath returns the output path for a source workbook's report. The
// report lands in outDir (or next to the source when outDir is empty)
// with the source's base name plus the report suffix.
func ReportPath(sourcePath, outDir string) string {
	base := filepath.Base(sourcePath)
	base = strings.TrimSuffix(base, filepath.Ext(base)) + ReportSuffix + ".xlsx"
	if outDir == "" {
		outDir = filepath.Dir(sourcePath)
	}
	return filepath.Join(outDir, base)
}

// IsReportFile reports whether a file name looks like a generated report.
func IsReportFile(name string) bool {
	lower := strings.ToLower(name)
	return strings.HasSuffix(lower, strings.ToLower(ReportSuffix)+".xlsx")
}
