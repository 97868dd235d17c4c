package schema

import (
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

type Legislation struct{ ent.Schema }

func (Legislation) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "legislation"},
	}
}

func (Legislation) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		// identifier in the upstream tracking system
		field.String("external_id").NotEmpty(),
		field.String("bill_number").NotEmpty(),
		field.String("title").NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("description").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("govt_type").Optional().Nillable(),
		field.String("govt_source").Optional().Nillable(),
		field.String("bill_status").Optional().Nillable(),
		field.String("url").Optional().Nillable(),
		field.Time("last_action_at").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Legislation) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE legislation -> MANY analysis versions
		edge.To("versions", AnalysisVersion.Type),
		// ONE legislation -> MANY jobs
		edge.To("jobs", AnalysisJob.Type),
	}
}

func (Legislation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("external_id").Unique(),
		index.Fields("bill_number"),
		index.Fields("govt_source", "bill_status"),
	}
}
