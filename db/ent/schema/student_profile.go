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
)

type StudentProfile struct{ ent.Schema }

func (StudentProfile) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "student_profiles"},
	}
}

func (StudentProfile) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("student_name").NotEmpty(),
		field.String("email").Optional().Nillable(),
		field.String("phone_number").Optional().Nillable(),
		field.String("course_applied").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (StudentProfile) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("forms", AdmissionForm.Type),
	}
}

func (StudentProfile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_name"),
		index.Fields("email"),
	}
}
