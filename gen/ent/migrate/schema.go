// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnalysisJobColumns holds the columns for the "analysis_job" table.
	AnalysisJobColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "version_id", Type: field.TypeUUID, Nullable: true},
		{Name: "status", Type: field.TypeString},
		{Name: "content_kind", Type: field.TypeString},
		{Name: "fingerprint", Type: field.TypeString, Nullable: true},
		{Name: "cache_hit", Type: field.TypeBool, Default: false},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "legislation_id", Type: field.TypeUUID},
	}
	// AnalysisJobTable holds the schema information for the "analysis_job" table.
	AnalysisJobTable = &schema.Table{
		Name:       "analysis_job",
		Columns:    AnalysisJobColumns,
		PrimaryKey: []*schema.Column{AnalysisJobColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "analysis_job_legislation_jobs",
				Columns:    []*schema.Column{AnalysisJobColumns[9]},
				RefColumns: []*schema.Column{LegislationColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "analysisjob_legislation_id_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{AnalysisJobColumns[9], AnalysisJobColumns[2], AnalysisJobColumns[7]},
			},
			{
				Name:    "analysisjob_fingerprint",
				Unique:  false,
				Columns: []*schema.Column{AnalysisJobColumns[4]},
			},
		},
	}
	// AnalysisVersionColumns holds the columns for the "analysis_version" table.
	AnalysisVersionColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "version_number", Type: field.TypeInt},
		{Name: "predecessor_id", Type: field.TypeUUID, Nullable: true},
		{Name: "fingerprint", Type: field.TypeString},
		{Name: "model_name", Type: field.TypeString},
		{Name: "schema_version", Type: field.TypeString},
		{Name: "analysis_json", Type: field.TypeJSON},
		{Name: "confidence", Type: field.TypeFloat64, Nullable: true},
		{Name: "impact_level", Type: field.TypeString, Nullable: true},
		{Name: "insufficient_text", Type: field.TypeBool, Default: false},
		{Name: "chunked", Type: field.TypeBool, Default: false},
		{Name: "chunk_count", Type: field.TypeInt, Default: 0},
		{Name: "dropped_chunks", Type: field.TypeJSON, Nullable: true},
		{Name: "processing_ms", Type: field.TypeInt64, Default: 0},
		{Name: "created_at", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "timestamptz"}},
		{Name: "legislation_id", Type: field.TypeUUID},
	}
	// AnalysisVersionTable holds the schema information for the "analysis_version" table.
	AnalysisVersionTable = &schema.Table{
		Name:       "analysis_version",
		Columns:    AnalysisVersionColumns,
		PrimaryKey: []*schema.Column{AnalysisVersionColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "analysis_version_legislation_versions",
				Columns:    []*schema.Column{AnalysisVersionColumns[15]},
				RefColumns: []*schema.Column{LegislationColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "analysisversion_legislation_id_version_number",
				Unique:  true,
				Columns: []*schema.Column{AnalysisVersionColumns[15], AnalysisVersionColumns[1]},
			},
			{
				Name:    "analysisversion_fingerprint",
				Unique:  false,
				Columns: []*schema.Column{AnalysisVersionColumns[3]},
			},
			{
				Name:    "analysisversion_legislation_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{AnalysisVersionColumns[15], AnalysisVersionColumns[14]},
			},
		},
	}
	// LegislationColumns holds the columns for the "legislation" table.
	LegislationColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "external_id", Type: field.TypeString},
		{Name: "bill_number", Type: field.TypeString},
		{Name: "title", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "description", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "govt_type", Type: field.TypeString, Nullable: true},
		{Name: "govt_source", Type: field.TypeString, Nullable: true},
		{Name: "bill_status", Type: field.TypeString, Nullable: true},
		{Name: "url", Type: field.TypeString, Nullable: true},
		{Name: "last_action_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// LegislationTable holds the schema information for the "legislation" table.
	LegislationTable = &schema.Table{
		Name:       "legislation",
		Columns:    LegislationColumns,
		PrimaryKey: []*schema.Column{LegislationColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "legislation_external_id",
				Unique:  true,
				Columns: []*schema.Column{LegislationColumns[1]},
			},
			{
				Name:    "legislation_bill_number",
				Unique:  false,
				Columns: []*schema.Column{LegislationColumns[2]},
			},
			{
				Name:    "legislation_govt_source_bill_status",
				Unique:  false,
				Columns: []*schema.Column{LegislationColumns[6], LegislationColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnalysisJobTable,
		AnalysisVersionTable,
		LegislationTable,
	}
)

func init() {
	AnalysisJobTable.ForeignKeys[0].RefTable = LegislationTable
	AnalysisJobTable.Annotation = &entsql.Annotation{
		Table: "analysis_job",
	}
	AnalysisVersionTable.ForeignKeys[0].RefTable = LegislationTable
	AnalysisVersionTable.Annotation = &entsql.Annotation{
		Table: "analysis_version",
	}
	LegislationTable.Annotation = &entsql.Annotation{
		Table: "legislation",
	}
}
