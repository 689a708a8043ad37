// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: admissions/v1/admissions.proto

package admissionsv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type AdmissionForm struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	DocumentId    string                 `protobuf:"bytes,2,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	ProfileId     string                 `protobuf:"bytes,3,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
	Status        string                 `protobuf:"bytes,4,opt,name=status,proto3" json:"status,omitempty"`
	Fields        map[string]string      `protobuf:"bytes,5,rep,name=fields,proto3" json:"fields,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	StudentName   string                 `protobuf:"bytes,6,opt,name=student_name,json=studentName,proto3" json:"student_name,omitempty"`
	Email         string                 `protobuf:"bytes,7,opt,name=email,proto3" json:"email,omitempty"`
	PhoneNumber   string                 `protobuf:"bytes,8,opt,name=phone_number,json=phoneNumber,proto3" json:"phone_number,omitempty"`
	CourseApplied string                 `protobuf:"bytes,9,opt,name=course_applied,json=courseApplied,proto3" json:"course_applied,omitempty"`
	OcrConfidence float32                `protobuf:"fixed32,10,opt,name=ocr_confidence,json=ocrConfidence,proto3" json:"ocr_confidence,omitempty"`
	NeedsReview   bool                   `protobuf:"varint,11,opt,name=needs_review,json=needsReview,proto3" json:"needs_review,omitempty"`
	ErrorMessage  string                 `protobuf:"bytes,12,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	VerifiedAt    string                 `protobuf:"bytes,13,opt,name=verified_at,json=verifiedAt,proto3" json:"verified_at,omitempty"`
	VerifiedBy    string                 `protobuf:"bytes,14,opt,name=verified_by,json=verifiedBy,proto3" json:"verified_by,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,15,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string                 `protobuf:"bytes,16,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AdmissionForm) Reset() {
	*x = AdmissionForm{}
	mi := &file_admissions_v1_admissions_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AdmissionForm) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AdmissionForm) ProtoMessage() {}

func (x *AdmissionForm) ProtoReflect() protoreflect.Message {
	mi := &file_admissions_v1_admissions_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AdmissionForm.ProtoReflect.Descriptor instead.
func (*AdmissionForm) Descriptor() ([]byte, []int) {
	return file_admissions_v1_admissions_proto_rawDescGZIP(), []int{0}
}

func (x *AdmissionForm) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *AdmissionForm) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *AdmissionForm) GetProfileId() string {
	if x != nil {
		return x.ProfileId
	}
	return ""
}

func (x *AdmissionForm) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *AdmissionForm) GetFields() map[string]string {
	if x != nil {
		return x.Fields
	}
	return nil
}

func (x *AdmissionForm) GetStudentName() string {
	if x != nil {
		return x.StudentName
	}
	return ""
}

func (x *AdmissionForm) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *AdmissionForm) GetPhoneNumber() string {
	if x != nil {
		return x.PhoneNumber
	}
	return ""
}

func (x *AdmissionForm) GetCourseApplied() string {
	if x != nil {
		return x.CourseApplied
	}
	return ""
}

func (x *AdmissionForm) GetOcrConfidence() float32 {
	if x != nil {
		return x.OcrConfidence
	}
	return 0
}

func (x *AdmissionForm) GetNeedsReview() bool {
	if x != nil {
		return x.NeedsReview
	}
	return false
}

func (x *AdmissionForm) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *AdmissionForm) GetVerifiedAt() string {
	if x != nil {
		return x.VerifiedAt
	}
	return ""
}

func (x *AdmissionForm) GetVerifiedBy() string {
	if x != nil {
		return x.VerifiedBy
	}
	return ""
}

func (x *AdmissionForm) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *AdmissionForm) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type StudentProfile struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	StudentName   string                 `protobuf:"bytes,2,opt,name=student_name,json=studentName,proto3" json:"student_name,omitempty"`
	Email         string                 `protobuf:"bytes,3,opt,name=email,proto3" json:"email,omitempty"`
	PhoneNumber   string                 `protobuf:"bytes,4,opt,name=phone_number,json=phoneNumber,proto3" json:"phone_number,omitempty"`
	CourseApplied string                 `protobuf:"bytes,5,opt,name=course_applied,json=courseApplied,proto3" json:"course_applied,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,6,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string                 `protobuf:"bytes,7,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StudentProfile) Reset() {
	*x = StudentProfile{}
	mi := &file_admissions_v1_admissions_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StudentProfile) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StudentProfile) ProtoMessage() {}

func (x *StudentProfile) ProtoReflect() protoreflect.Message {
	mi := &file_admissions_v1_admissions_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StudentProfile.ProtoReflect.Descriptor instead.
func (*StudentProfile) Descriptor() ([]byte, []int) {
	return file_admissions_v1_admissions_proto_rawDescGZIP(), []int{1}
}

func (x *StudentProfile) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *StudentProfile) GetStudentName() string {
	if x != nil {
		return x.StudentName
	}
	return ""
}

func (x *StudentProfile) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *StudentProfile) GetPhoneNumber() string {
	if x != nil {
		return x.PhoneNumber
	}
	return ""
}

func (x *StudentProfile) GetCourseApplied() string {
	if x != nil {
		return x.CourseApplied
	}
	return ""
}

func (x *StudentProfile) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *StudentProfile) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type ListFormsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Status        string                 `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
	Limit         int32                  `protobuf:"varint,2,opt,name=limit,proto3" json:"limit,omitempty"`
	Offset        int32                  `protobuf:"varint,3,opt,name=offset,proto3" json:"offset,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListFormsRequest) Reset() {
	*x = ListFormsRequest{}
	mi := &file_admissions_v1_admissions_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListFormsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListFormsRequest) ProtoMessage() {}

func (x *ListFormsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_admissions_v1_admissions_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListFormsRequest.ProtoReflect.Descriptor instead.
func (*ListFormsRequest) Descriptor() ([]byte, []int) {
	return file_admissions_v1_admissions_proto_rawDescGZIP(), []int{2}
}

func (x *ListFormsRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ListFormsRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

func (x *ListFormsRequest) GetOffset() int32 {
	if x != nil {
		return x.Offset
	}
	return 0
}

type ListFormsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Forms         []*AdmissionForm       `protobuf:"bytes,1,rep,name=forms,proto3" json:"forms,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListFormsResponse) Reset() {
	*x = ListFormsResponse{}
	mi := &file_admissions_v1_admissions_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListFormsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListFormsResponse) ProtoMessage() {}

func (x *ListFormsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_admissions_v1_admissions_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListFormsResponse.ProtoReflect.Descriptor instead.
func (*ListFormsResponse) Descriptor() ([]byte, []int) {
	return file_admissions_v1_admissions_proto_rawDescGZIP(), []int{3}
}

func (x *ListFormsResponse) GetForms() []*AdmissionForm {
	if x != nil {
		return x.Forms
	}
	return nil
}

type GetFormRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FormId        string                 `protobuf:"bytes,1,opt,name=form_id,json=formId,proto3" json:"form_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetFormRequest) Reset() {
	*x = GetFormRequest{}
	mi := &file_admissions_v1_admissions_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetFormRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetFormRequest) ProtoMessage() {}

func (x *GetFormRequest) ProtoReflect() protoreflect.Message {
	mi := &file_admissions_v1_admissions_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetFormRequest.ProtoReflect.Descriptor instead.
func (*GetFormRequest) Descriptor() ([]byte, []int) {
	return file_admissions_v1_admissions_proto_rawDescGZIP(), []int{4}
}

func (x *GetFormRequest) GetFormId() string {
	if x != nil {
		return x.FormId
	}
	return ""
}

type GetFormResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Form          *AdmissionForm         `protobuf:"bytes,1,opt,name=form,proto3" json:"form,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetFormResponse) Reset() {
	*x = GetFormResponse{}
	mi := &file_admissions_v1_admissions_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetFormResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetFormResponse) ProtoMessage() {}

func (x *GetFormResponse) ProtoReflect() protoreflect.Message {
	mi := &file_admissions_v1_admissions_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetFormResponse.ProtoReflect.Descriptor instead.
func (*GetFormResponse) Descriptor() ([]byte, []int) {
	return file_admissions_v1_admissions_proto_rawDescGZIP(), []int{5}
}

func (x *GetFormResponse) GetForm() *AdmissionForm {
	if x != nil {
		return x.Form
	}
	return nil
}

type SearchFormsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Query         string                 `protobuf:"bytes,1,opt,name=query,proto3" json:"query,omitempty"`
	Limit         int32                  `protobuf:"varint,2,opt,name=limit,proto3" json:"limit,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SearchFormsRequest) Reset() {
	*x = SearchFormsRequest{}
	mi := &file_admissions_v1_admissions_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SearchFormsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SearchFormsRequest) ProtoMessage() {}

func (x *SearchFormsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_admissions_v1_admissions_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SearchFormsRequest.ProtoReflect.Descriptor instead.
func (*SearchFormsRequest) Descriptor() ([]byte, []int) {
	return file_admissions_v1_admissions_proto_rawDescGZIP(), []int{6}
}

func (x *SearchFormsRequest) GetQuery() string {
	if x != nil {
		return x.Query
	}
	return ""
}

func (x *SearchFormsRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

type SearchFormsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Forms         []*AdmissionForm       `protobuf:"bytes,1,rep,name=forms,proto3" json:"forms,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SearchFormsResponse) Reset() {
	*x = SearchFormsResponse{}
	mi := &file_admissions_v1_admissions_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SearchFormsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SearchFormsResponse) ProtoMessage() {}

func (x *SearchFormsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_admissions_v1_admissions_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SearchFormsResponse.ProtoReflect.Descriptor instead.
func (*SearchFormsResponse) Descriptor() ([]byte, []int) {
	return file_admissions_v1_admissions_proto_rawDescGZIP(), []int{7}
}

func (x *SearchFormsResponse) GetForms() []*AdmissionForm {
	if x != nil {
		return x.Forms
	}
	return nil
}

type ExtractFormRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Path to a scanned PDF or image on a volume the server can read.
	SourcePath string `protobuf:"bytes,1,opt,name=source_path,json=sourcePath,proto3" json:"source_path,omitempty"`
	// Re-run extraction for an already ingested form instead of a new file.
	FormId        string `protobuf:"bytes,2,opt,name=form_id,json=formId,proto3" json:"form_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractFormRequest) Reset() {
	*x = ExtractFormRequest{}
	mi := &file_admissions_v1_admissions_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractFormRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractFormRequest) ProtoMessage() {}

func (x *ExtractFormRequest) ProtoReflect() protoreflect.Message {
	mi := &file_admissions_v1_admissions_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractFormRequest.ProtoReflect.Descriptor instead.
func (*ExtractFormRequest) Descriptor() ([]byte, []int) {
	return file_admissions_v1_admissions_proto_rawDescGZIP(), []int{8}
}

func (x *ExtractFormRequest) GetSourcePath() string {
	if x != nil {
		return x.SourcePath
	}
	return ""
}

func (x *ExtractFormRequest) GetFormId() string {
	if x != nil {
		return x.FormId
	}
	return ""
}

type ExtractFormResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Form          *AdmissionForm         `protobuf:"bytes,1,opt,name=form,proto3" json:"form,omitempty"`
	Duplicate     bool                   `protobuf:"varint,2,opt,name=duplicate,proto3" json:"duplicate,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractFormResponse) Reset() {
	*x = ExtractFormResponse{}
	mi := &file_admissions_v1_admissions_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractFormResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractFormResponse) ProtoMessage() {}

func (x *ExtractFormResponse) ProtoReflect() protoreflect.Message {
	mi := &file_admissions_v1_admissions_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractFormResponse.ProtoReflect.Descriptor instead.
func (*ExtractFormResponse) Descriptor() ([]byte, []int) {
	return file_admissions_v1_admissions_proto_rawDescGZIP(), []int{9}
}

func (x *ExtractFormResponse) GetForm() *AdmissionForm {
	if x != nil {
		return x.Form
	}
	return nil
}

func (x *ExtractFormResponse) GetDuplicate() bool {
	if x != nil {
		return x.Duplicate
	}
	return false
}

type ImportFieldsRequest struct {
	state  protoimpl.MessageState `protogen:"open.v1"`
	FormId string                 `protobuf:"bytes,1,opt,name=form_id,json=formId,proto3" json:"form_id,omitempty"`
	// Structured-OCR JSON payload as returned by a vendor API.
	PayloadJson string `protobuf:"bytes,2,opt,name=payload_json,json=payloadJson,proto3" json:"payload_json,omitempty"`
	// "overwrite" or "preserve"; defaults to overwrite.
	MergePolicy string `protobuf:"bytes,3,opt,name=merge_policy,json=mergePolicy,proto3" json:"merge_policy,omitempty"`
	// Sanitize, validate and merge without persisting.
	DryRun        bool `protobuf:"varint,4,opt,name=dry_run,json=dryRun,proto3" json:"dry_run,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ImportFieldsRequest) Reset() {
	*x = ImportFieldsRequest{}
	mi := &file_admissions_v1_admissions_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ImportFieldsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ImportFieldsRequest) ProtoMessage() {}

func (x *ImportFieldsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_admissions_v1_admissions_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ImportFieldsRequest.ProtoReflect.Descriptor instead.
func (*ImportFieldsRequest) Descriptor() ([]byte, []int) {
	return file_admissions_v1_admissions_proto_rawDescGZIP(), []int{10}
}

func (x *ImportFieldsRequest) GetFormId() string {
	if x != nil {
		return x.FormId
	}
	return ""
}

func (x *ImportFieldsRequest) GetPayloadJson() string {
	if x != nil {
		return x.PayloadJson
	}
	return ""
}

func (x *ImportFieldsRequest) GetMergePolicy() string {
	if x != nil {
		return x.MergePolicy
	}
	return ""
}

func (x *ImportFieldsRequest) GetDryRun() bool {
	if x != nil {
		return x.DryRun
	}
	return false
}

type ImportFieldsResponse struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	Form  *AdmissionForm         `protobuf:"bytes,1,opt,name=form,proto3" json:"form,omitempty"`
	// Keys renamed or dropped during sanitation.
	AdjustedKeys  []string `protobuf:"bytes,2,rep,name=adjusted_keys,json=adjustedKeys,proto3" json:"adjusted_keys,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ImportFieldsResponse) Reset() {
	*x = ImportFieldsResponse{}
	mi := &file_admissions_v1_admissions_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ImportFieldsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ImportFieldsResponse) ProtoMessage() {}

func (x *ImportFieldsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_admissions_v1_admissions_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ImportFieldsResponse.ProtoReflect.Descriptor instead.
func (*ImportFieldsResponse) Descriptor() ([]byte, []int) {
	return file_admissions_v1_admissions_proto_rawDescGZIP(), []int{11}
}

func (x *ImportFieldsResponse) GetForm() *AdmissionForm {
	if x != nil {
		return x.Form
	}
	return nil
}

func (x *ImportFieldsResponse) GetAdjustedKeys() []string {
	if x != nil {
		return x.AdjustedKeys
	}
	return nil
}

type UpdateFormRequest struct {
	state  protoimpl.MessageState `protogen:"open.v1"`
	FormId string                 `protobuf:"bytes,1,opt,name=form_id,json=formId,proto3" json:"form_id,omitempty"`
	Fields map[string]string      `protobuf:"bytes,2,rep,name=fields,proto3" json:"fields,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	// "overwrite" or "preserve"; defaults to overwrite.
	MergePolicy   string `protobuf:"bytes,3,opt,name=merge_policy,json=mergePolicy,proto3" json:"merge_policy,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateFormRequest) Reset() {
	*x = UpdateFormRequest{}
	mi := &file_admissions_v1_admissions_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateFormRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateFormRequest) ProtoMessage() {}

func (x *UpdateFormRequest) ProtoReflect() protoreflect.Message {
	mi := &file_admissions_v1_admissions_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateFormRequest.ProtoReflect.Descriptor instead.
func (*UpdateFormRequest) Descriptor() ([]byte, []int) {
	return file_admissions_v1_admissions_proto_rawDescGZIP(), []int{12}
}

func (x *UpdateFormRequest) GetFormId() string {
	if x != nil {
		return x.FormId
	}
	return ""
}

func (x *UpdateFormRequest) GetFields() map[string]string {
	if x != nil {
		return x.Fields
	}
	return nil
}

func (x *UpdateFormRequest) GetMergePolicy() string {
	if x != nil {
		return x.MergePolicy
	}
	return ""
}

type UpdateFormResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Form          *AdmissionForm         `protobuf:"bytes,1,opt,name=form,proto3" json:"form,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateFormResponse) Reset() {
	*x = UpdateFormResponse{}
	mi := &file_admissions_v1_admissions_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateFormResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateFormResponse) ProtoMessage() {}

func (x *UpdateFormResponse) ProtoReflect() protoreflect.Message {
	mi := &file_admissions_v1_admissions_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateFormResponse.ProtoReflect.Descriptor instead.
func (*UpdateFormResponse) Descriptor() ([]byte, []int) {
	return file_admissions_v1_admissions_proto_rawDescGZIP(), []int{13}
}

func (x *UpdateFormResponse) GetForm() *AdmissionForm {
	if x != nil {
		return x.Form
	}
	return nil
}

type VerifyFormRequest struct {
	state      protoimpl.MessageState `protogen:"open.v1"`
	FormId     string                 `protobuf:"bytes,1,opt,name=form_id,json=formId,proto3" json:"form_id,omitempty"`
	VerifiedBy string                 `protobuf:"bytes,2,opt,name=verified_by,json=verifiedBy,proto3" json:"verified_by,omitempty"`
	// Final operator corrections applied before the form is frozen.
	Fields        map[string]string `protobuf:"bytes,3,rep,name=fields,proto3" json:"fields,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	CreateProfile bool              `protobuf:"varint,4,opt,name=create_profile,json=createProfile,proto3" json:"create_profile,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *VerifyFormRequest) Reset() {
	*x = VerifyFormRequest{}
	mi := &file_admissions_v1_admissions_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *VerifyFormRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*VerifyFormRequest) ProtoMessage() {}

func (x *VerifyFormRequest) ProtoReflect() protoreflect.Message {
	mi := &file_admissions_v1_admissions_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use VerifyFormRequest.ProtoReflect.Descriptor instead.
func (*VerifyFormRequest) Descriptor() ([]byte, []int) {
	return file_admissions_v1_admissions_proto_rawDescGZIP(), []int{14}
}

func (x *VerifyFormRequest) GetFormId() string {
	if x != nil {
		return x.FormId
	}
	return ""
}

func (x *VerifyFormRequest) GetVerifiedBy() string {
	if x != nil {
		return x.VerifiedBy
	}
	return ""
}

func (x *VerifyFormRequest) GetFields() map[string]string {
	if x != nil {
		return x.Fields
	}
	return nil
}

func (x *VerifyFormRequest) GetCreateProfile() bool {
	if x != nil {
		return x.CreateProfile
	}
	return false
}

type VerifyFormResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Form          *AdmissionForm         `protobuf:"bytes,1,opt,name=form,proto3" json:"form,omitempty"`
	Profile       *StudentProfile        `protobuf:"bytes,2,opt,name=profile,proto3" json:"profile,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *VerifyFormResponse) Reset() {
	*x = VerifyFormResponse{}
	mi := &file_admissions_v1_admissions_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *VerifyFormResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*VerifyFormResponse) ProtoMessage() {}

func (x *VerifyFormResponse) ProtoReflect() protoreflect.Message {
	mi := &file_admissions_v1_admissions_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use VerifyFormResponse.ProtoReflect.Descriptor instead.
func (*VerifyFormResponse) Descriptor() ([]byte, []int) {
	return file_admissions_v1_admissions_proto_rawDescGZIP(), []int{15}
}

func (x *VerifyFormResponse) GetForm() *AdmissionForm {
	if x != nil {
		return x.Form
	}
	return nil
}

func (x *VerifyFormResponse) GetProfile() *StudentProfile {
	if x != nil {
		return x.Profile
	}
	return nil
}

type DeleteFormRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FormId        string                 `protobuf:"bytes,1,opt,name=form_id,json=formId,proto3" json:"form_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteFormRequest) Reset() {
	*x = DeleteFormRequest{}
	mi := &file_admissions_v1_admissions_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteFormRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteFormRequest) ProtoMessage() {}

func (x *DeleteFormRequest) ProtoReflect() protoreflect.Message {
	mi := &file_admissions_v1_admissions_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteFormRequest.ProtoReflect.Descriptor instead.
func (*DeleteFormRequest) Descriptor() ([]byte, []int) {
	return file_admissions_v1_admissions_proto_rawDescGZIP(), []int{16}
}

func (x *DeleteFormRequest) GetFormId() string {
	if x != nil {
		return x.FormId
	}
	return ""
}

type DeleteFormResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Deleted       bool                   `protobuf:"varint,1,opt,name=deleted,proto3" json:"deleted,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteFormResponse) Reset() {
	*x = DeleteFormResponse{}
	mi := &file_admissions_v1_admissions_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteFormResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteFormResponse) ProtoMessage() {}

func (x *DeleteFormResponse) ProtoReflect() protoreflect.Message {
	mi := &file_admissions_v1_admissions_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteFormResponse.ProtoReflect.Descriptor instead.
func (*DeleteFormResponse) Descriptor() ([]byte, []int) {
	return file_admissions_v1_admissions_proto_rawDescGZIP(), []int{17}
}

func (x *DeleteFormResponse) GetDeleted() bool {
	if x != nil {
		return x.Deleted
	}
	return false
}

type ExportFormsRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// xlsx, csv or json
	Format        string `protobuf:"bytes,1,opt,name=format,proto3" json:"format,omitempty"`
	Status        string `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	OutputPath    string `protobuf:"bytes,3,opt,name=output_path,json=outputPath,proto3" json:"output_path,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportFormsRequest) Reset() {
	*x = ExportFormsRequest{}
	mi := &file_admissions_v1_admissions_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportFormsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportFormsRequest) ProtoMessage() {}

func (x *ExportFormsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_admissions_v1_admissions_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportFormsRequest.ProtoReflect.Descriptor instead.
func (*ExportFormsRequest) Descriptor() ([]byte, []int) {
	return file_admissions_v1_admissions_proto_rawDescGZIP(), []int{18}
}

func (x *ExportFormsRequest) GetFormat() string {
	if x != nil {
		return x.Format
	}
	return ""
}

func (x *ExportFormsRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ExportFormsRequest) GetOutputPath() string {
	if x != nil {
		return x.OutputPath
	}
	return ""
}

type ExportFormsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OutputPath    string                 `protobuf:"bytes,1,opt,name=output_path,json=outputPath,proto3" json:"output_path,omitempty"`
	Count         int32                  `protobuf:"varint,2,opt,name=count,proto3" json:"count,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportFormsResponse) Reset() {
	*x = ExportFormsResponse{}
	mi := &file_admissions_v1_admissions_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportFormsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportFormsResponse) ProtoMessage() {}

func (x *ExportFormsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_admissions_v1_admissions_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportFormsResponse.ProtoReflect.Descriptor instead.
func (*ExportFormsResponse) Descriptor() ([]byte, []int) {
	return file_admissions_v1_admissions_proto_rawDescGZIP(), []int{19}
}

func (x *ExportFormsResponse) GetOutputPath() string {
	if x != nil {
		return x.OutputPath
	}
	return ""
}

func (x *ExportFormsResponse) GetCount() int32 {
	if x != nil {
		return x.Count
	}
	return 0
}

type CreateProfileRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	StudentName   string                 `protobuf:"bytes,1,opt,name=student_name,json=studentName,proto3" json:"student_name,omitempty"`
	Email         string                 `protobuf:"bytes,2,opt,name=email,proto3" json:"email,omitempty"`
	PhoneNumber   string                 `protobuf:"bytes,3,opt,name=phone_number,json=phoneNumber,proto3" json:"phone_number,omitempty"`
	CourseApplied string                 `protobuf:"bytes,4,opt,name=course_applied,json=courseApplied,proto3" json:"course_applied,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateProfileRequest) Reset() {
	*x = CreateProfileRequest{}
	mi := &file_admissions_v1_admissions_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateProfileRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateProfileRequest) ProtoMessage() {}

func (x *CreateProfileRequest) ProtoReflect() protoreflect.Message {
	mi := &file_admissions_v1_admissions_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateProfileRequest.ProtoReflect.Descriptor instead.
func (*CreateProfileRequest) Descriptor() ([]byte, []int) {
	return file_admissions_v1_admissions_proto_rawDescGZIP(), []int{20}
}

func (x *CreateProfileRequest) GetStudentName() string {
	if x != nil {
		return x.StudentName
	}
	return ""
}

func (x *CreateProfileRequest) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *CreateProfileRequest) GetPhoneNumber() string {
	if x != nil {
		return x.PhoneNumber
	}
	return ""
}

func (x *CreateProfileRequest) GetCourseApplied() string {
	if x != nil {
		return x.CourseApplied
	}
	return ""
}

type CreateProfileResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Profile       *StudentProfile        `protobuf:"bytes,1,opt,name=profile,proto3" json:"profile,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateProfileResponse) Reset() {
	*x = CreateProfileResponse{}
	mi := &file_admissions_v1_admissions_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateProfileResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateProfileResponse) ProtoMessage() {}

func (x *CreateProfileResponse) ProtoReflect() protoreflect.Message {
	mi := &file_admissions_v1_admissions_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateProfileResponse.ProtoReflect.Descriptor instead.
func (*CreateProfileResponse) Descriptor() ([]byte, []int) {
	return file_admissions_v1_admissions_proto_rawDescGZIP(), []int{21}
}

func (x *CreateProfileResponse) GetProfile() *StudentProfile {
	if x != nil {
		return x.Profile
	}
	return nil
}

type ListProfilesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListProfilesRequest) Reset() {
	*x = ListProfilesRequest{}
	mi := &file_admissions_v1_admissions_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListProfilesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListProfilesRequest) ProtoMessage() {}

func (x *ListProfilesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_admissions_v1_admissions_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListProfilesRequest.ProtoReflect.Descriptor instead.
func (*ListProfilesRequest) Descriptor() ([]byte, []int) {
	return file_admissions_v1_admissions_proto_rawDescGZIP(), []int{22}
}

type ListProfilesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Profiles      []*StudentProfile      `protobuf:"bytes,1,rep,name=profiles,proto3" json:"profiles,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListProfilesResponse) Reset() {
	*x = ListProfilesResponse{}
	mi := &file_admissions_v1_admissions_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListProfilesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListProfilesResponse) ProtoMessage() {}

func (x *ListProfilesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_admissions_v1_admissions_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListProfilesResponse.ProtoReflect.Descriptor instead.
func (*ListProfilesResponse) Descriptor() ([]byte, []int) {
	return file_admissions_v1_admissions_proto_rawDescGZIP(), []int{23}
}

func (x *ListProfilesResponse) GetProfiles() []*StudentProfile {
	if x != nil {
		return x.Profiles
	}
	return nil
}

var File_admissions_v1_admissions_proto protoreflect.FileDescriptor

const file_admissions_v1_admissions_proto_rawDesc = "" +
	"\n" +
	"\x1eadmissions/v1/admissions.proto\x12\radmissions.v1\"\xe6\x04\n" +
	"\rAdmissionForm\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1f\n" +
	"\vdocument_id\x18\x02 \x01(\tR\n" +
	"documentId\x12\x1d\n" +
	"\n" +
	"profile_id\x18\x03 \x01(\tR\tprofileId\x12\x16\n" +
	"\x06status\x18\x04 \x01(\tR\x06status\x12@\n" +
	"\x06fields\x18\x05 \x03(\v2(.admissions.v1.AdmissionForm.FieldsEntryR\x06fields\x12!\n" +
	"\fstudent_name\x18\x06 \x01(\tR\vstudentName\x12\x14\n" +
	"\x05email\x18\a \x01(\tR\x05email\x12!\n" +
	"\fphone_number\x18\b \x01(\tR\vphoneNumber\x12%\n" +
	"\x0ecourse_applied\x18\t \x01(\tR\rcourseApplied\x12%\n" +
	"\x0eocr_confidence\x18\n" +
	" \x01(\x02R\rocrConfidence\x12!\n" +
	"\fneeds_review\x18\v \x01(\bR\vneedsReview\x12#\n" +
	"\rerror_message\x18\f \x01(\tR\ferrorMessage\x12\x1f\n" +
	"\vverified_at\x18\r \x01(\tR\n" +
	"verifiedAt\x12\x1f\n" +
	"\vverified_by\x18\x0e \x01(\tR\n" +
	"verifiedBy\x12\x1d\n" +
	"\n" +
	"created_at\x18\x0f \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x10 \x01(\tR\tupdatedAt\x1a9\n" +
	"\vFieldsEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01\"\xe1\x01\n" +
	"\x0eStudentProfile\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12!\n" +
	"\fstudent_name\x18\x02 \x01(\tR\vstudentName\x12\x14\n" +
	"\x05email\x18\x03 \x01(\tR\x05email\x12!\n" +
	"\fphone_number\x18\x04 \x01(\tR\vphoneNumber\x12%\n" +
	"\x0ecourse_applied\x18\x05 \x01(\tR\rcourseApplied\x12\x1d\n" +
	"\n" +
	"created_at\x18\x06 \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\a \x01(\tR\tupdatedAt\"X\n" +
	"\x10ListFormsRequest\x12\x16\n" +
	"\x06status\x18\x01 \x01(\tR\x06status\x12\x14\n" +
	"\x05limit\x18\x02 \x01(\x05R\x05limit\x12\x16\n" +
	"\x06offset\x18\x03 \x01(\x05R\x06offset\"G\n" +
	"\x11ListFormsResponse\x122\n" +
	"\x05forms\x18\x01 \x03(\v2\x1c.admissions.v1.AdmissionFormR\x05forms\")\n" +
	"\x0eGetFormRequest\x12\x17\n" +
	"\aform_id\x18\x01 \x01(\tR\x06formId\"C\n" +
	"\x0fGetFormResponse\x120\n" +
	"\x04form\x18\x01 \x01(\v2\x1c.admissions.v1.AdmissionFormR\x04form\"@\n" +
	"\x12SearchFormsRequest\x12\x14\n" +
	"\x05query\x18\x01 \x01(\tR\x05query\x12\x14\n" +
	"\x05limit\x18\x02 \x01(\x05R\x05limit\"I\n" +
	"\x13SearchFormsResponse\x122\n" +
	"\x05forms\x18\x01 \x03(\v2\x1c.admissions.v1.AdmissionFormR\x05forms\"N\n" +
	"\x12ExtractFormRequest\x12\x1f\n" +
	"\vsource_path\x18\x01 \x01(\tR\n" +
	"sourcePath\x12\x17\n" +
	"\aform_id\x18\x02 \x01(\tR\x06formId\"e\n" +
	"\x13ExtractFormResponse\x120\n" +
	"\x04form\x18\x01 \x01(\v2\x1c.admissions.v1.AdmissionFormR\x04form\x12\x1c\n" +
	"\tduplicate\x18\x02 \x01(\bR\tduplicate\"\x8d\x01\n" +
	"\x13ImportFieldsRequest\x12\x17\n" +
	"\aform_id\x18\x01 \x01(\tR\x06formId\x12!\n" +
	"\fpayload_json\x18\x02 \x01(\tR\vpayloadJson\x12!\n" +
	"\fmerge_policy\x18\x03 \x01(\tR\vmergePolicy\x12\x17\n" +
	"\adry_run\x18\x04 \x01(\bR\x06dryRun\"m\n" +
	"\x14ImportFieldsResponse\x120\n" +
	"\x04form\x18\x01 \x01(\v2\x1c.admissions.v1.AdmissionFormR\x04form\x12#\n" +
	"\radjusted_keys\x18\x02 \x03(\tR\fadjustedKeys\"\xd0\x01\n" +
	"\x11UpdateFormRequest\x12\x17\n" +
	"\aform_id\x18\x01 \x01(\tR\x06formId\x12D\n" +
	"\x06fields\x18\x02 \x03(\v2,.admissions.v1.UpdateFormRequest.FieldsEntryR\x06fields\x12!\n" +
	"\fmerge_policy\x18\x03 \x01(\tR\vmergePolicy\x1a9\n" +
	"\vFieldsEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01\"F\n" +
	"\x12UpdateFormResponse\x120\n" +
	"\x04form\x18\x01 \x01(\v2\x1c.admissions.v1.AdmissionFormR\x04form\"\xf5\x01\n" +
	"\x11VerifyFormRequest\x12\x17\n" +
	"\aform_id\x18\x01 \x01(\tR\x06formId\x12\x1f\n" +
	"\vverified_by\x18\x02 \x01(\tR\n" +
	"verifiedBy\x12D\n" +
	"\x06fields\x18\x03 \x03(\v2,.admissions.v1.VerifyFormRequest.FieldsEntryR\x06fields\x12%\n" +
	"\x0ecreate_profile\x18\x04 \x01(\bR\rcreateProfile\x1a9\n" +
	"\vFieldsEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01\"\x7f\n" +
	"\x12VerifyFormResponse\x120\n" +
	"\x04form\x18\x01 \x01(\v2\x1c.admissions.v1.AdmissionFormR\x04form\x127\n" +
	"\aprofile\x18\x02 \x01(\v2\x1d.admissions.v1.StudentProfileR\aprofile\",\n" +
	"\x11DeleteFormRequest\x12\x17\n" +
	"\aform_id\x18\x01 \x01(\tR\x06formId\".\n" +
	"\x12DeleteFormResponse\x12\x18\n" +
	"\adeleted\x18\x01 \x01(\bR\adeleted\"e\n" +
	"\x12ExportFormsRequest\x12\x16\n" +
	"\x06format\x18\x01 \x01(\tR\x06format\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\x12\x1f\n" +
	"\voutput_path\x18\x03 \x01(\tR\n" +
	"outputPath\"L\n" +
	"\x13ExportFormsResponse\x12\x1f\n" +
	"\voutput_path\x18\x01 \x01(\tR\n" +
	"outputPath\x12\x14\n" +
	"\x05count\x18\x02 \x01(\x05R\x05count\"\x99\x01\n" +
	"\x14CreateProfileRequest\x12!\n" +
	"\fstudent_name\x18\x01 \x01(\tR\vstudentName\x12\x14\n" +
	"\x05email\x18\x02 \x01(\tR\x05email\x12!\n" +
	"\fphone_number\x18\x03 \x01(\tR\vphoneNumber\x12%\n" +
	"\x0ecourse_applied\x18\x04 \x01(\tR\rcourseApplied\"P\n" +
	"\x15CreateProfileResponse\x127\n" +
	"\aprofile\x18\x01 \x01(\v2\x1d.admissions.v1.StudentProfileR\aprofile\"\x15\n" +
	"\x13ListProfilesRequest\"Q\n" +
	"\x14ListProfilesResponse\x129\n" +
	"\bprofiles\x18\x01 \x03(\v2\x1d.admissions.v1.StudentProfileR\bprofiles2\xb6\a\n" +
	"\x11AdmissionsService\x12N\n" +
	"\tListForms\x12\x1f.admissions.v1.ListFormsRequest\x1a .admissions.v1.ListFormsResponse\x12H\n" +
	"\aGetForm\x12\x1d.admissions.v1.GetFormRequest\x1a\x1e.admissions.v1.GetFormResponse\x12T\n" +
	"\vSearchForms\x12!.admissions.v1.SearchFormsRequest\x1a\".admissions.v1.SearchFormsResponse\x12T\n" +
	"\vExtractForm\x12!.admissions.v1.ExtractFormRequest\x1a\".admissions.v1.ExtractFormResponse\x12W\n" +
	"\fImportFields\x12\".admissions.v1.ImportFieldsRequest\x1a#.admissions.v1.ImportFieldsResponse\x12Q\n" +
	"\n" +
	"UpdateForm\x12 .admissions.v1.UpdateFormRequest\x1a!.admissions.v1.UpdateFormResponse\x12Q\n" +
	"\n" +
	"VerifyForm\x12 .admissions.v1.VerifyFormRequest\x1a!.admissions.v1.VerifyFormResponse\x12Q\n" +
	"\n" +
	"DeleteForm\x12 .admissions.v1.DeleteFormRequest\x1a!.admissions.v1.DeleteFormResponse\x12T\n" +
	"\vExportForms\x12!.admissions.v1.ExportFormsRequest\x1a\".admissions.v1.ExportFormsResponse\x12Z\n" +
	"\rCreateProfile\x12#.admissions.v1.CreateProfileRequest\x1a$.admissions.v1.CreateProfileResponse\x12W\n" +
	"\fListProfiles\x12\".admissions.v1.ListProfilesRequest\x1a#.admissions.v1.ListProfilesResponseBRZPgithub.com/SmritaPandey/OCR-admission-forms/gen/proto/admissions/v1;admissionsv1b\x06proto3"

var (
	file_admissions_v1_admissions_proto_rawDescOnce sync.Once
	file_admissions_v1_admissions_proto_rawDescData []byte
)

func file_admissions_v1_admissions_proto_rawDescGZIP() []byte {
	file_admissions_v1_admissions_proto_rawDescOnce.Do(func() {
		file_admissions_v1_admissions_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_admissions_v1_admissions_proto_rawDesc), len(file_admissions_v1_admissions_proto_rawDesc)))
	})
	return file_admissions_v1_admissions_proto_rawDescData
}

var file_admissions_v1_admissions_proto_msgTypes = make([]protoimpl.MessageInfo, 27)
var file_admissions_v1_admissions_proto_goTypes = []any{
	(*AdmissionForm)(nil),         // 0: admissions.v1.AdmissionForm
	(*StudentProfile)(nil),        // 1: admissions.v1.StudentProfile
	(*ListFormsRequest)(nil),      // 2: admissions.v1.ListFormsRequest
	(*ListFormsResponse)(nil),     // 3: admissions.v1.ListFormsResponse
	(*GetFormRequest)(nil),        // 4: admissions.v1.GetFormRequest
	(*GetFormResponse)(nil),       // 5: admissions.v1.GetFormResponse
	(*SearchFormsRequest)(nil),    // 6: admissions.v1.SearchFormsRequest
	(*SearchFormsResponse)(nil),   // 7: admissions.v1.SearchFormsResponse
	(*ExtractFormRequest)(nil),    // 8: admissions.v1.ExtractFormRequest
	(*ExtractFormResponse)(nil),   // 9: admissions.v1.ExtractFormResponse
	(*ImportFieldsRequest)(nil),   // 10: admissions.v1.ImportFieldsRequest
	(*ImportFieldsResponse)(nil),  // 11: admissions.v1.ImportFieldsResponse
	(*UpdateFormRequest)(nil),     // 12: admissions.v1.UpdateFormRequest
	(*UpdateFormResponse)(nil),    // 13: admissions.v1.UpdateFormResponse
	(*VerifyFormRequest)(nil),     // 14: admissions.v1.VerifyFormRequest
	(*VerifyFormResponse)(nil),    // 15: admissions.v1.VerifyFormResponse
	(*DeleteFormRequest)(nil),     // 16: admissions.v1.DeleteFormRequest
	(*DeleteFormResponse)(nil),    // 17: admissions.v1.DeleteFormResponse
	(*ExportFormsRequest)(nil),    // 18: admissions.v1.ExportFormsRequest
	(*ExportFormsResponse)(nil),   // 19: admissions.v1.ExportFormsResponse
	(*CreateProfileRequest)(nil),  // 20: admissions.v1.CreateProfileRequest
	(*CreateProfileResponse)(nil), // 21: admissions.v1.CreateProfileResponse
	(*ListProfilesRequest)(nil),   // 22: admissions.v1.ListProfilesRequest
	(*ListProfilesResponse)(nil),  // 23: admissions.v1.ListProfilesResponse
	nil,                           // 24: admissions.v1.AdmissionForm.FieldsEntry
	nil,                           // 25: admissions.v1.UpdateFormRequest.FieldsEntry
	nil,                           // 26: admissions.v1.VerifyFormRequest.FieldsEntry
}
var file_admissions_v1_admissions_proto_depIdxs = []int32{
	24, // 0: admissions.v1.AdmissionForm.fields:type_name -> admissions.v1.AdmissionForm.FieldsEntry
	0,  // 1: admissions.v1.ListFormsResponse.forms:type_name -> admissions.v1.AdmissionForm
	0,  // 2: admissions.v1.GetFormResponse.form:type_name -> admissions.v1.AdmissionForm
	0,  // 3: admissions.v1.SearchFormsResponse.forms:type_name -> admissions.v1.AdmissionForm
	0,  // 4: admissions.v1.ExtractFormResponse.form:type_name -> admissions.v1.AdmissionForm
	0,  // 5: admissions.v1.ImportFieldsResponse.form:type_name -> admissions.v1.AdmissionForm
	25, // 6: admissions.v1.UpdateFormRequest.fields:type_name -> admissions.v1.UpdateFormRequest.FieldsEntry
	0,  // 7: admissions.v1.UpdateFormResponse.form:type_name -> admissions.v1.AdmissionForm
	26, // 8: admissions.v1.VerifyFormRequest.fields:type_name -> admissions.v1.VerifyFormRequest.FieldsEntry
	0,  // 9: admissions.v1.VerifyFormResponse.form:type_name -> admissions.v1.AdmissionForm
	1,  // 10: admissions.v1.VerifyFormResponse.profile:type_name -> admissions.v1.StudentProfile
	1,  // 11: admissions.v1.CreateProfileResponse.profile:type_name -> admissions.v1.StudentProfile
	1,  // 12: admissions.v1.ListProfilesResponse.profiles:type_name -> admissions.v1.StudentProfile
	2,  // 13: admissions.v1.AdmissionsService.ListForms:input_type -> admissions.v1.ListFormsRequest
	4,  // 14: admissions.v1.AdmissionsService.GetForm:input_type -> admissions.v1.GetFormRequest
	6,  // 15: admissions.v1.AdmissionsService.SearchForms:input_type -> admissions.v1.SearchFormsRequest
	8,  // 16: admissions.v1.AdmissionsService.ExtractForm:input_type -> admissions.v1.ExtractFormRequest
	10, // 17: admissions.v1.AdmissionsService.ImportFields:input_type -> admissions.v1.ImportFieldsRequest
	12, // 18: admissions.v1.AdmissionsService.UpdateForm:input_type -> admissions.v1.UpdateFormRequest
	14, // 19: admissions.v1.AdmissionsService.VerifyForm:input_type -> admissions.v1.VerifyFormRequest
	16, // 20: admissions.v1.AdmissionsService.DeleteForm:input_type -> admissions.v1.DeleteFormRequest
	18, // 21: admissions.v1.AdmissionsService.ExportForms:input_type -> admissions.v1.ExportFormsRequest
	20, // 22: admissions.v1.AdmissionsService.CreateProfile:input_type -> admissions.v1.CreateProfileRequest
	22, // 23: admissions.v1.AdmissionsService.ListProfiles:input_type -> admissions.v1.ListProfilesRequest
	3,  // 24: admissions.v1.AdmissionsService.ListForms:output_type -> admissions.v1.ListFormsResponse
	5,  // 25: admissions.v1.AdmissionsService.GetForm:output_type -> admissions.v1.GetFormResponse
	7,  // 26: admissions.v1.AdmissionsService.SearchForms:output_type -> admissions.v1.SearchFormsResponse
	9,  // 27: admissions.v1.AdmissionsService.ExtractForm:output_type -> admissions.v1.ExtractFormResponse
	11, // 28: admissions.v1.AdmissionsService.ImportFields:output_type -> admissions.v1.ImportFieldsResponse
	13, // 29: admissions.v1.AdmissionsService.UpdateForm:output_type -> admissions.v1.UpdateFormResponse
	15, // 30: admissions.v1.AdmissionsService.VerifyForm:output_type -> admissions.v1.VerifyFormResponse
	17, // 31: admissions.v1.AdmissionsService.DeleteForm:output_type -> admissions.v1.DeleteFormResponse
	19, // 32: admissions.v1.AdmissionsService.ExportForms:output_type -> admissions.v1.ExportFormsResponse
	21, // 33: admissions.v1.AdmissionsService.CreateProfile:output_type -> admissions.v1.CreateProfileResponse
	23, // 34: admissions.v1.AdmissionsService.ListProfiles:output_type -> admissions.v1.ListProfilesResponse
	24, // [24:35] is the sub-list for method output_type
	13, // [13:24] is the sub-list for method input_type
	13, // [13:13] is the sub-list for extension type_name
	13, // [13:13] is the sub-list for extension extendee
	0,  // [0:13] is the sub-list for field type_name
}

func init() { file_admissions_v1_admissions_proto_init() }
func file_admissions_v1_admissions_proto_init() {
	if File_admissions_v1_admissions_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_admissions_v1_admissions_proto_rawDesc), len(file_admissions_v1_admissions_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   27,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_admissions_v1_admissions_proto_goTypes,
		DependencyIndexes: file_admissions_v1_admissions_proto_depIdxs,
		MessageInfos:      file_admissions_v1_admissions_proto_msgTypes,
	}.Build()
	File_admissions_v1_admissions_proto = out.File
	file_admissions_v1_admissions_proto_goTypes = nil
	file_admissions_v1_admissions_proto_depIdxs = nil
}
