// Package store persists the operator-maintained project classification
// and exclusion state between runs, in the same JSON file layout the
// legacy desktop tool used (clasificacion_proyectos.json).
//
// The pipeline never reads the store directly: it consumes an immutable
// Snapshot taken before the run and reports newly discovered projects and
// resources back for registration. Registration records names only;
// assigning a classification stays an operator decision.
package store
