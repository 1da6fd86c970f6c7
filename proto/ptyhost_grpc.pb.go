// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: ptyhost.proto

package ptyhostv1

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
	PTYHostService_Deliver_FullMethodName       = "/ptyhost.v1.PTYHostService/Deliver"
	PTYHostService_ResumeSession_FullMethodName = "/ptyhost.v1.PTYHostService/ResumeSession"
	PTYHostService_SpawnSession_FullMethodName  = "/ptyhost.v1.PTYHostService/SpawnSession"
)

// PTYHostServiceClient is the client API for PTYHostService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// PTYHostService is the host-local daemon that owns terminal runtimes
// (tmux panes and friends). The bridge delivers trigger payloads and
// launches fallback sessions through it.
type PTYHostServiceClient interface {
	// Deliver injects a framed trigger payload into a live runtime.
	Deliver(ctx context.Context, in *DeliverRequest, opts ...grpc.CallOption) (*DeliverResponse, error)
	// ResumeSession re-attaches a resumable session.
	ResumeSession(ctx context.Context, in *ResumeSessionRequest, opts ...grpc.CallOption) (*ResumeSessionResponse, error)
	// SpawnSession launches a fresh runtime with an initial prompt.
	SpawnSession(ctx context.Context, in *SpawnSessionRequest, opts ...grpc.CallOption) (*SpawnSessionResponse, error)
}

type pTYHostServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewPTYHostServiceClient(cc grpc.ClientConnInterface) PTYHostServiceClient {
	return &pTYHostServiceClient{cc}
}

func (c *pTYHostServiceClient) Deliver(ctx context.Context, in *DeliverRequest, opts ...grpc.CallOption) (*DeliverResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DeliverResponse)
	err := c.cc.Invoke(ctx, PTYHostService_Deliver_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pTYHostServiceClient) ResumeSession(ctx context.Context, in *ResumeSessionRequest, opts ...grpc.CallOption) (*ResumeSessionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ResumeSessionResponse)
	err := c.cc.Invoke(ctx, PTYHostService_ResumeSession_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pTYHostServiceClient) SpawnSession(ctx context.Context, in *SpawnSessionRequest, opts ...grpc.CallOption) (*SpawnSessionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SpawnSessionResponse)
	err := c.cc.Invoke(ctx, PTYHostService_SpawnSession_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// PTYHostServiceServer is the server API for PTYHostService service.
// All implementations must embed UnimplementedPTYHostServiceServer
// for forward compatibility.
//
// PTYHostService is the host-local daemon that owns terminal runtimes
// (tmux panes and friends). The bridge delivers trigger payloads and
// launches fallback sessions through it.
type PTYHostServiceServer interface {
	// Deliver injects a framed trigger payload into a live runtime.
	Deliver(context.Context, *DeliverRequest) (*DeliverResponse, error)
	// ResumeSession re-attaches a resumable session.
	ResumeSession(context.Context, *ResumeSessionRequest) (*ResumeSessionResponse, error)
	// SpawnSession launches a fresh runtime with an initial prompt.
	SpawnSession(context.Context, *SpawnSessionRequest) (*SpawnSessionResponse, error)
	mustEmbedUnimplementedPTYHostServiceServer()
}

// UnimplementedPTYHostServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedPTYHostServiceServer struct{}

func (UnimplementedPTYHostServiceServer) Deliver(context.Context, *DeliverRequest) (*DeliverResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Deliver not implemented")
}
func (UnimplementedPTYHostServiceServer) ResumeSession(context.Context, *ResumeSessionRequest) (*ResumeSessionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ResumeSession not implemented")
}
func (UnimplementedPTYHostServiceServer) SpawnSession(context.Context, *SpawnSessionRequest) (*SpawnSessionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SpawnSession not implemented")
}
func (UnimplementedPTYHostServiceServer) mustEmbedUnimplementedPTYHostServiceServer() {}
func (UnimplementedPTYHostServiceServer) testEmbeddedByValue()                        {}

// UnsafePTYHostServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to PTYHostServiceServer will
// result in compilation errors.
type UnsafePTYHostServiceServer interface {
	mustEmbedUnimplementedPTYHostServiceServer()
}

func RegisterPTYHostServiceServer(s grpc.ServiceRegistrar, srv PTYHostServiceServer) {
	// If the following call panics, it indicates UnimplementedPTYHostServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&PTYHostService_ServiceDesc, srv)
}

func _PTYHostService_Deliver_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeliverRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PTYHostServiceServer).Deliver(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PTYHostService_Deliver_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PTYHostServiceServer).Deliver(ctx, req.(*DeliverRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PTYHostService_ResumeSession_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ResumeSessionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PTYHostServiceServer).ResumeSession(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PTYHostService_ResumeSession_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PTYHostServiceServer).ResumeSession(ctx, req.(*ResumeSessionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PTYHostService_SpawnSession_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SpawnSessionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PTYHostServiceServer).SpawnSession(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PTYHostService_SpawnSession_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PTYHostServiceServer).SpawnSession(ctx, req.(*SpawnSessionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// PTYHostService_ServiceDesc is the grpc.ServiceDesc for PTYHostService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var PTYHostService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "ptyhost.v1.PTYHostService",
	HandlerType: (*PTYHostServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Deliver",
			Handler:    _PTYHostService_Deliver_Handler,
		},
		{
			MethodName: "ResumeSession",
			Handler:    _PTYHostService_ResumeSession_Handler,
		},
		{
			MethodName: "SpawnSession",
			Handler:    _PTYHostService_SpawnSession_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "ptyhost.proto",
}
