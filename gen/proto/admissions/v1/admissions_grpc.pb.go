// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: admissions/v1/admissions.proto

package admissionsv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	AdmissionsService_ListForms_FullMethodName     = "/admissions.v1.AdmissionsService/ListForms"
	AdmissionsService_GetForm_FullMethodName       = "/admissions.v1.AdmissionsService/GetForm"
	AdmissionsService_SearchForms_FullMethodName   = "/admissions.v1.AdmissionsService/SearchForms"
	AdmissionsService_ExtractForm_FullMethodName   = "/admissions.v1.AdmissionsService/ExtractForm"
	AdmissionsService_ImportFields_FullMethodName  = "/admissions.v1.AdmissionsService/ImportFields"
	AdmissionsService_UpdateForm_FullMethodName    = "/admissions.v1.AdmissionsService/UpdateForm"
	AdmissionsService_VerifyForm_FullMethodName    = "/admissions.v1.AdmissionsService/VerifyForm"
	AdmissionsService_DeleteForm_FullMethodName    = "/admissions.v1.AdmissionsService/DeleteForm"
	AdmissionsService_ExportForms_FullMethodName   = "/admissions.v1.AdmissionsService/ExportForms"
	AdmissionsService_CreateProfile_FullMethodName = "/admissions.v1.AdmissionsService/CreateProfile"
	AdmissionsService_ListProfiles_FullMethodName  = "/admissions.v1.AdmissionsService/ListProfiles"
)

// AdmissionsServiceClient is the client API for AdmissionsService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type AdmissionsServiceClient interface {
	ListForms(ctx context.Context, in *ListFormsRequest, opts ...grpc.CallOption) (*ListFormsResponse, error)
	GetForm(ctx context.Context, in *GetFormRequest, opts ...grpc.CallOption) (*GetFormResponse, error)
	SearchForms(ctx context.Context, in *SearchFormsRequest, opts ...grpc.CallOption) (*SearchFormsResponse, error)
	ExtractForm(ctx context.Context, in *ExtractFormRequest, opts ...grpc.CallOption) (*ExtractFormResponse, error)
	ImportFields(ctx context.Context, in *ImportFieldsRequest, opts ...grpc.CallOption) (*ImportFieldsResponse, error)
	UpdateForm(ctx context.Context, in *UpdateFormRequest, opts ...grpc.CallOption) (*UpdateFormResponse, error)
	VerifyForm(ctx context.Context, in *VerifyFormRequest, opts ...grpc.CallOption) (*VerifyFormResponse, error)
	DeleteForm(ctx context.Context, in *DeleteFormRequest, opts ...grpc.CallOption) (*DeleteFormResponse, error)
	ExportForms(ctx context.Context, in *ExportFormsRequest, opts ...grpc.CallOption) (*ExportFormsResponse, error)
	CreateProfile(ctx context.Context, in *CreateProfileRequest, opts ...grpc.CallOption) (*CreateProfileResponse, error)
	ListProfiles(ctx context.Context, in *ListProfilesRequest, opts ...grpc.CallOption) (*ListProfilesResponse, error)
}

type admissionsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewAdmissionsServiceClient(cc grpc.ClientConnInterface) AdmissionsServiceClient {
	return &admissionsServiceClient{cc}
}

func (c *admissionsServiceClient) ListForms(ctx context.Context, in *ListFormsRequest, opts ...grpc.CallOption) (*ListFormsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListFormsResponse)
	err := c.cc.Invoke(ctx, AdmissionsService_ListForms_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *admissionsServiceClient) GetForm(ctx context.Context, in *GetFormRequest, opts ...grpc.CallOption) (*GetFormResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetFormResponse)
	err := c.cc.Invoke(ctx, AdmissionsService_GetForm_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *admissionsServiceClient) SearchForms(ctx context.Context, in *SearchFormsRequest, opts ...grpc.CallOption) (*SearchFormsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SearchFormsResponse)
	err := c.cc.Invoke(ctx, AdmissionsService_SearchForms_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *admissionsServiceClient) ExtractForm(ctx context.Context, in *ExtractFormRequest, opts ...grpc.CallOption) (*ExtractFormResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExtractFormResponse)
	err := c.cc.Invoke(ctx, AdmissionsService_ExtractForm_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *admissionsServiceClient) ImportFields(ctx context.Context, in *ImportFieldsRequest, opts ...grpc.CallOption) (*ImportFieldsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ImportFieldsResponse)
	err := c.cc.Invoke(ctx, AdmissionsService_ImportFields_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *admissionsServiceClient) UpdateForm(ctx context.Context, in *UpdateFormRequest, opts ...grpc.CallOption) (*UpdateFormResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UpdateFormResponse)
	err := c.cc.Invoke(ctx, AdmissionsService_UpdateForm_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *admissionsServiceClient) VerifyForm(ctx context.Context, in *VerifyFormRequest, opts ...grpc.CallOption) (*VerifyFormResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(VerifyFormResponse)
	err := c.cc.Invoke(ctx, AdmissionsService_VerifyForm_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *admissionsServiceClient) DeleteForm(ctx context.Context, in *DeleteFormRequest, opts ...grpc.CallOption) (*DeleteFormResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DeleteFormResponse)
	err := c.cc.Invoke(ctx, AdmissionsService_DeleteForm_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *admissionsServiceClient) ExportForms(ctx context.Context, in *ExportFormsRequest, opts ...grpc.CallOption) (*ExportFormsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportFormsResponse)
	err := c.cc.Invoke(ctx, AdmissionsService_ExportForms_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *admissionsServiceClient) CreateProfile(ctx context.Context, in *CreateProfileRequest, opts ...grpc.CallOption) (*CreateProfileResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreateProfileResponse)
	err := c.cc.Invoke(ctx, AdmissionsService_CreateProfile_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *admissionsServiceClient) ListProfiles(ctx context.Context, in *ListProfilesRequest, opts ...grpc.CallOption) (*ListProfilesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListProfilesResponse)
	err := c.cc.Invoke(ctx, AdmissionsService_ListProfiles_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AdmissionsServiceServer is the server API for AdmissionsService service.
// All implementations must embed UnimplementedAdmissionsServiceServer
// for forward compatibility.
type AdmissionsServiceServer interface {
	ListForms(context.Context, *ListFormsRequest) (*ListFormsResponse, error)
	GetForm(context.Context, *GetFormRequest) (*GetFormResponse, error)
	SearchForms(context.Context, *SearchFormsRequest) (*SearchFormsResponse, error)
	ExtractForm(context.Context, *ExtractFormRequest) (*ExtractFormResponse, error)
	ImportFields(context.Context, *ImportFieldsRequest) (*ImportFieldsResponse, error)
	UpdateForm(context.Context, *UpdateFormRequest) (*UpdateFormResponse, error)
	VerifyForm(context.Context, *VerifyFormRequest) (*VerifyFormResponse, error)
	DeleteForm(context.Context, *DeleteFormRequest) (*DeleteFormResponse, error)
	ExportForms(context.Context, *ExportFormsRequest) (*ExportFormsResponse, error)
	CreateProfile(context.Context, *CreateProfileRequest) (*CreateProfileResponse, error)
	ListProfiles(context.Context, *ListProfilesRequest) (*ListProfilesResponse, error)
	mustEmbedUnimplementedAdmissionsServiceServer()
}

// UnimplementedAdmissionsServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedAdmissionsServiceServer struct{}

func (UnimplementedAdmissionsServiceServer) ListForms(context.Context, *ListFormsRequest) (*ListFormsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListForms not implemented")
}
func (UnimplementedAdmissionsServiceServer) GetForm(context.Context, *GetFormRequest) (*GetFormResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetForm not implemented")
}
func (UnimplementedAdmissionsServiceServer) SearchForms(context.Context, *SearchFormsRequest) (*SearchFormsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SearchForms not implemented")
}
func (UnimplementedAdmissionsServiceServer) ExtractForm(context.Context, *ExtractFormRequest) (*ExtractFormResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExtractForm not implemented")
}
func (UnimplementedAdmissionsServiceServer) ImportFields(context.Context, *ImportFieldsRequest) (*ImportFieldsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ImportFields not implemented")
}
func (UnimplementedAdmissionsServiceServer) UpdateForm(context.Context, *UpdateFormRequest) (*UpdateFormResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateForm not implemented")
}
func (UnimplementedAdmissionsServiceServer) VerifyForm(context.Context, *VerifyFormRequest) (*VerifyFormResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method VerifyForm not implemented")
}
func (UnimplementedAdmissionsServiceServer) DeleteForm(context.Context, *DeleteFormRequest) (*DeleteFormResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteForm not implemented")
}
func (UnimplementedAdmissionsServiceServer) ExportForms(context.Context, *ExportFormsRequest) (*ExportFormsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportForms not implemented")
}
func (UnimplementedAdmissionsServiceServer) CreateProfile(context.Context, *CreateProfileRequest) (*CreateProfileResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateProfile not implemented")
}
func (UnimplementedAdmissionsServiceServer) ListProfiles(context.Context, *ListProfilesRequest) (*ListProfilesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListProfiles not implemented")
}
func (UnimplementedAdmissionsServiceServer) mustEmbedUnimplementedAdmissionsServiceServer() {}
func (UnimplementedAdmissionsServiceServer) testEmbeddedByValue()                           {}

// UnsafeAdmissionsServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to AdmissionsServiceServer will
// result in compilation errors.
type UnsafeAdmissionsServiceServer interface {
	mustEmbedUnimplementedAdmissionsServiceServer()
}

func RegisterAdmissionsServiceServer(s grpc.ServiceRegistrar, srv AdmissionsServiceServer) {
	// If the following call pancis, it indicates UnimplementedAdmissionsServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&AdmissionsService_ServiceDesc, srv)
}

func _AdmissionsService_ListForms_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListFormsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdmissionsServiceServer).ListForms(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AdmissionsService_ListForms_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdmissionsServiceServer).ListForms(ctx, req.(*ListFormsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AdmissionsService_GetForm_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetFormRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdmissionsServiceServer).GetForm(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AdmissionsService_GetForm_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdmissionsServiceServer).GetForm(ctx, req.(*GetFormRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AdmissionsService_SearchForms_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SearchFormsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdmissionsServiceServer).SearchForms(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AdmissionsService_SearchForms_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdmissionsServiceServer).SearchForms(ctx, req.(*SearchFormsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AdmissionsService_ExtractForm_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExtractFormRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdmissionsServiceServer).ExtractForm(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AdmissionsService_ExtractForm_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdmissionsServiceServer).ExtractForm(ctx, req.(*ExtractFormRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AdmissionsService_ImportFields_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ImportFieldsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdmissionsServiceServer).ImportFields(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AdmissionsService_ImportFields_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdmissionsServiceServer).ImportFields(ctx, req.(*ImportFieldsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AdmissionsService_UpdateForm_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateFormRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdmissionsServiceServer).UpdateForm(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AdmissionsService_UpdateForm_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdmissionsServiceServer).UpdateForm(ctx, req.(*UpdateFormRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AdmissionsService_VerifyForm_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(VerifyFormRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdmissionsServiceServer).VerifyForm(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AdmissionsService_VerifyForm_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdmissionsServiceServer).VerifyForm(ctx, req.(*VerifyFormRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AdmissionsService_DeleteForm_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteFormRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdmissionsServiceServer).DeleteForm(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AdmissionsService_DeleteForm_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdmissionsServiceServer).DeleteForm(ctx, req.(*DeleteFormRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AdmissionsService_ExportForms_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportFormsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdmissionsServiceServer).ExportForms(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AdmissionsService_ExportForms_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdmissionsServiceServer).ExportForms(ctx, req.(*ExportFormsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AdmissionsService_CreateProfile_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateProfileRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdmissionsServiceServer).CreateProfile(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AdmissionsService_CreateProfile_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdmissionsServiceServer).CreateProfile(ctx, req.(*CreateProfileRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AdmissionsService_ListProfiles_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListProfilesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdmissionsServiceServer).ListProfiles(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AdmissionsService_ListProfiles_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdmissionsServiceServer).ListProfiles(ctx, req.(*ListProfilesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// AdmissionsService_ServiceDesc is the grpc.ServiceDesc for AdmissionsService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var AdmissionsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "admissions.v1.AdmissionsService",
	HandlerType: (*AdmissionsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListForms",
			Handler:    _AdmissionsService_ListForms_Handler,
		},
		{
			MethodName: "GetForm",
			Handler:    _AdmissionsService_GetForm_Handler,
		},
		{
			MethodName: "SearchForms",
			Handler:    _AdmissionsService_SearchForms_Handler,
		},
		{
			MethodName: "ExtractForm",
			Handler:    _AdmissionsService_ExtractForm_Handler,
		},
		{
			MethodName: "ImportFields",
			Handler:    _AdmissionsService_ImportFields_Handler,
		},
		{
			MethodName: "UpdateForm",
			Handler:    _AdmissionsService_UpdateForm_Handler,
		},
		{
			MethodName: "VerifyForm",
			Handler:    _AdmissionsService_VerifyForm_Handler,
		},
		{
			MethodName: "DeleteForm",
			Handler:    _AdmissionsService_DeleteForm_Handler,
		},
		{
			MethodName: "ExportForms",
			Handler:    _AdmissionsService_ExportForms_Handler,
		},
		{
			MethodName: "CreateProfile",
			Handler:    _AdmissionsService_CreateProfile_Handler,
		},
		{
			MethodName: "ListProfiles",
			Handler:    _AdmissionsService_ListProfiles_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "admissions/v1/admissions.proto",
}
