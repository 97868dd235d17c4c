package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/policypulse/policypulse/constants"
	"github.com/policypulse/policypulse/utils"
)

// AnalysisJob is the per-request audit trail: one row per analysis attempt,
// terminal status and timings included.
type AnalysisJob struct{ ent.Schema }

func (AnalysisJob) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "analysis_job"},
	}
}

func (AnalysisJob) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FKs
		field.UUID("legislation_id", uuid.UUID{}),
		field.UUID("version_id", uuid.UUID{}).Optional().Nillable(),
		field.String("status").NotEmpty().
			Validate(utils.EnumValidator(constants.JobStatuses...)),
		field.String("content_kind").NotEmpty().
			Validate(utils.EnumValidator(constants.ContentKinds...)),
		field.String("fingerprint").Optional().Nillable(),
		field.Bool("cache_hit").Default(false),
		field.String("error_message").Optional().Nillable(),
		field.Time("started_at").Default(time.Now),
		field.Time("finished_at").Optional().Nillable(),
	}
}

func (AnalysisJob) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("legislation", Legislation.Type).
			Ref("jobs").
			Field("legislation_id").
			Unique().
			Required(),
	}
}

func (AnalysisJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("legislation_id", "status", "started_at"),
		index.Fields("fingerprint"),
	}
}
