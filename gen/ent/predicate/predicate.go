// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AnalysisJob is the predicate function for analysisjob builders.
type AnalysisJob func(*sql.Selector)

// AnalysisVersion is the predicate function for analysisversion builders.
type AnalysisVersion func(*sql.Selector)

// Legislation is the predicate function for legislation builders.
type Legislation func(*sql.Selector)
