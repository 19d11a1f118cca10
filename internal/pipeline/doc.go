// Package pipeline orchestrates a timesheet run: day-grid detection,
// section location, per-section parsing, discovery reporting, exclusion
// filtering and report generation.
//
// Process is a pure function of (worksheet, store snapshot); all store
// mutation happens in Runner, which owns the file-level flow and reports
// discovered projects and resources back for registration.
package pipeline
