package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
)

// KVTable is the SQL table backing KVEntry.
const KVTable = "kv_entries"

// KVEntry is one persisted quiz value: the in-progress session, the last
// result, or the high score list. Values are JSON documents.
type KVEntry struct {
	ent.Schema
}

func (KVEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			Unique().
			Immutable().
			Comment("Storage key, e.g. currentQuiz"),
		field.Text("value").
			Comment("JSON-encoded value"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("UTC time of the last write"),
	}
}

func (KVEntry) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: KVTable},
	}
}
