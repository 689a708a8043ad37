// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AdmissionFormsColumns holds the columns for the "admission_forms" table.
	AdmissionFormsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "status", Type: field.TypeString, Default: "UPLOADED"},
		{Name: "fields", Type: field.TypeJSON},
		{Name: "additional_info", Type: field.TypeJSON, Nullable: true},
		{Name: "student_name", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "email", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "phone_number", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "course_applied", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "ocr_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "ocr_confidence", Type: field.TypeFloat32, Nullable: true},
		{Name: "needs_review", Type: field.TypeBool, Default: false},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "verified_at", Type: field.TypeTime, Nullable: true},
		{Name: "verified_by", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "document_id", Type: field.TypeUUID},
		{Name: "profile_id", Type: field.TypeUUID, Nullable: true},
	}
	// AdmissionFormsTable holds the schema information for the "admission_forms" table.
	AdmissionFormsTable = &schema.Table{
		Name:       "admission_forms",
		Columns:    AdmissionFormsColumns,
		PrimaryKey: []*schema.Column{AdmissionFormsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "admission_forms_student_documents_forms",
				Columns:    []*schema.Column{AdmissionFormsColumns[16]},
				RefColumns: []*schema.Column{StudentDocumentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "admission_forms_student_profiles_forms",
				Columns:    []*schema.Column{AdmissionFormsColumns[17]},
				RefColumns: []*schema.Column{StudentProfilesColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "admissionform_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{AdmissionFormsColumns[1], AdmissionFormsColumns[14]},
			},
			{
				Name:    "admissionform_student_name",
				Unique:  false,
				Columns: []*schema.Column{AdmissionFormsColumns[4]},
			},
			{
				Name:    "admissionform_email",
				Unique:  false,
				Columns: []*schema.Column{AdmissionFormsColumns[5]},
			},
			{
				Name:    "admissionform_phone_number",
				Unique:  false,
				Columns: []*schema.Column{AdmissionFormsColumns[6]},
			},
			{
				Name:    "admissionform_course_applied",
				Unique:  false,
				Columns: []*schema.Column{AdmissionFormsColumns[7]},
			},
			{
				Name:    "admissionform_document_id",
				Unique:  false,
				Columns: []*schema.Column{AdmissionFormsColumns[16]},
			},
		},
	}
	// StudentDocumentsColumns holds the columns for the "student_documents" table.
	StudentDocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "source_path", Type: field.TypeString},
		{Name: "content_hash", Type: field.TypeBytes, SchemaType: map[string]string{"postgres": "bytea"}},
		{Name: "filename", Type: field.TypeString},
		{Name: "file_ext", Type: field.TypeString},
		{Name: "file_size", Type: field.TypeInt},
		{Name: "uploaded_at", Type: field.TypeTime},
	}
	// StudentDocumentsTable holds the schema information for the "student_documents" table.
	StudentDocumentsTable = &schema.Table{
		Name:       "student_documents",
		Columns:    StudentDocumentsColumns,
		PrimaryKey: []*schema.Column{StudentDocumentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "studentdocument_content_hash",
				Unique:  true,
				Columns: []*schema.Column{StudentDocumentsColumns[2]},
			},
			{
				Name:    "studentdocument_uploaded_at",
				Unique:  false,
				Columns: []*schema.Column{StudentDocumentsColumns[6]},
			},
		},
	}
	// StudentProfilesColumns holds the columns for the "student_profiles" table.
	StudentProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "student_name", Type: field.TypeString},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "phone_number", Type: field.TypeString, Nullable: true},
		{Name: "course_applied", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// StudentProfilesTable holds the schema information for the "student_profiles" table.
	StudentProfilesTable = &schema.Table{
		Name:       "student_profiles",
		Columns:    StudentProfilesColumns,
		PrimaryKey: []*schema.Column{StudentProfilesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "studentprofile_student_name",
				Unique:  false,
				Columns: []*schema.Column{StudentProfilesColumns[1]},
			},
			{
				Name:    "studentprofile_email",
				Unique:  false,
				Columns: []*schema.Column{StudentProfilesColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AdmissionFormsTable,
		StudentDocumentsTable,
		StudentProfilesTable,
	}
)

func init() {
	AdmissionFormsTable.ForeignKeys[0].RefTable = StudentDocumentsTable
	AdmissionFormsTable.ForeignKeys[1].RefTable = StudentProfilesTable
	AdmissionFormsTable.Annotation = &entsql.Annotation{
		Table: "admission_forms",
	}
	StudentDocumentsTable.Annotation = &entsql.Annotation{
		Table: "student_documents",
	}
	StudentProfilesTable.Annotation = &entsql.Annotation{
		Table: "student_profiles",
	}
}
