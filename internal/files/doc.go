// Package files handles locating source timesheet workbooks and naming
// their generated reports, plus the boundary to the external legacy
// spreadsheet converter (.xls inputs are converted elsewhere; this
// package only recognizes them and delegates).
package files
