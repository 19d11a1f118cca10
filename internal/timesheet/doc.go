// Package timesheet extracts structured hour records from the semi-structured
// timesheet worksheets exported by the yard's planning tool.
//
// The package is organized around a small set of components that mirror the
// structure of the source sheet:
//
//  1. Grid: normalized cell access over the raw worksheet rows
//  2. Grammar: the named text patterns of the export dialect (project codes,
//     imputation tags, banners, repeated headers)
//  3. DetectDayGrid: locates the contiguous 1..N day-of-month column run
//  4. LocateSections: splits the sheet into per-resource sections at
//     "Proyectos:" markers
//  5. ParseSection: walks a section's rows and emits one HourRecord per
//     recognized data row, truncating repeated condensed-summary blocks
//
// The export tool sometimes re-emits a compressed recap of a project's rows
// using the same "N-HORA ..." tag vocabulary as the detailed rows. The only
// structural signal separating recap from detail is that the tag's leading
// index restarts instead of continuing to increase; ParseSection treats any
// non-increasing index as the end of real data for that project and drops
// the remainder, reporting the dropped row count to the caller.
//
// All heuristics are best-effort: unparseable cells read as empty or zero
// and no data row ever fails a parse. The only hard failure in this package
// is a sheet with no section markers at all.
package timesheet
