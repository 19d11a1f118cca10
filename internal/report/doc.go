// Package report renders parsed hour records into the normalized IPI
// report workbook: one data row per record with recomputed totals, fills
// driven by project classification, and aggregate total blocks by
// imputation type and by project type.
//
// All hour arithmetic is done in integer minutes; decimal hours appear
// only in rendered cells.
package report
