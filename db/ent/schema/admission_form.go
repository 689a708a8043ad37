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

	"github.com/SmritaPandey/OCR-admission-forms/constants"
	"github.com/SmritaPandey/OCR-admission-forms/db/ent/schema/utils"
)

type AdmissionForm struct{ ent.Schema }

func (AdmissionForm) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "admission_forms"},
	}
}

func (AdmissionForm) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		// explicit FKs
		field.UUID("document_id", uuid.UUID{}),
		field.UUID("profile_id", uuid.UUID{}).Optional().Nillable(),
		field.String("status").
			Default(string(constants.FormStatusUploaded)).
			Validate(utils.EnumValidator(statusStrings()...)),
		// full field map as one document; hot columns mirrored below
		field.JSON("fields", map[string]string{}).
			Default(map[string]string{}),
		field.JSON("additional_info", map[string]any{}).
			Optional(),
		field.String("student_name").Optional().Default(""),
		field.String("email").Optional().Default(""),
		field.String("phone_number").Optional().Default(""),
		field.String("course_applied").Optional().Default(""),
		field.String("ocr_text").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Float32("ocr_confidence").Optional().Nillable(),
		field.Bool("needs_review").Default(false),
		field.String("error_message").Optional().Nillable(),
		field.Time("verified_at").Optional().Nillable(),
		field.String("verified_by").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (AdmissionForm) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY forms -> ONE document (re-scans of the same student stay separate)
		edge.From("document", StudentDocument.Type).
			Ref("forms").
			Field("document_id").
			Required().
			Unique(),
		// OPTIONAL: MANY forms -> ONE profile, linked at verification
		edge.From("profile", StudentProfile.Type).
			Ref("forms").
			Field("profile_id").
			Unique(),
	}
}

func (AdmissionForm) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "created_at"),
		index.Fields("student_name"),
		index.Fields("email"),
		index.Fields("phone_number"),
		index.Fields("course_applied"),
		index.Fields("document_id"),
	}
}

func statusStrings() []string {
	out := make([]string, len(constants.ValidStatuses))
	for i, s := range constants.ValidStatuses {
		out[i] = string(s)
	}
	return out
}
