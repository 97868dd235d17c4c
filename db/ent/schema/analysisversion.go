package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// AnalysisVersion rows are append-only snapshots: written once by the
// repository, never updated. The version number increases strictly per
// legislation; the current analysis is always the highest number.
type AnalysisVersion struct{ ent.Schema }

func (AnalysisVersion) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "analysis_version"},
	}
}

func (AnalysisVersion) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK
		field.UUID("legislation_id", uuid.UUID{}),
		field.Int("version_number").Positive().Immutable(),
		field.UUID("predecessor_id", uuid.UUID{}).Optional().Nillable().Immutable(),
		field.String("fingerprint").NotEmpty().Immutable(),
		field.String("model_name").NotEmpty().Immutable(),
		field.String("schema_version").NotEmpty().Immutable(),
		field.JSON("analysis_json", json.RawMessage{}).Immutable(),
		field.Float("confidence").Optional().Nillable().Immutable(),
		field.String("impact_level").Optional().Nillable().Immutable(),
		field.Bool("insufficient_text").Default(false).Immutable(),
		field.Bool("chunked").Default(false).Immutable(),
		field.Int("chunk_count").Default(0).Immutable(),
		field.Ints("dropped_chunks").Optional(),
		field.Int64("processing_ms").Default(0).Immutable(),
		field.Time("created_at").Default(time.Now).Immutable().
			SchemaType(map[string]string{dialect.Postgres: "timestamptz"}),
	}
}

func (AnalysisVersion) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY versions -> ONE legislation (FK: analysis_version.legislation_id)
		edge.From("legislation", Legislation.Type).
			Ref("versions").
			Field("legislation_id").
			Unique().
			Required(),
	}
}

func (AnalysisVersion) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("legislation_id", "version_number").Unique(),
		index.Fields("fingerprint"),
		index.Fields("legislation_id", "created_at"),
	}
}
