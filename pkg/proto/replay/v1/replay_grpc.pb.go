// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.4.0
// - protoc             (unknown)
// source: replay/v1/replay.proto

package replayv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.62.0 or later.
const _ = grpc.SupportPackageIsVersion8

const (
	Replay_CreateBuffer_FullMethodName     = "/replay.v1.Replay/CreateBuffer"
	Replay_Append_FullMethodName           = "/replay.v1.Replay/Append"
	Replay_Sample_FullMethodName           = "/replay.v1.Replay/Sample"
	Replay_UpdatePriorities_FullMethodName = "/replay.v1.Replay/UpdatePriorities"
	Replay_GetEpisode_FullMethodName       = "/replay.v1.Replay/GetEpisode"
	Replay_DeleteEpisode_FullMethodName    = "/replay.v1.Replay/DeleteEpisode"
	Replay_GetStats_FullMethodName         = "/replay.v1.Replay/GetStats"
	Replay_Clear_FullMethodName            = "/replay.v1.Replay/Clear"
)

// ReplayClient is the client API for Replay service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// Replay is the experience replay buffer service. Learners and actors talk
// to it to append transitions, draw training batches and manage episodes.
type ReplayClient interface {
	// CreateBuffer registers a buffer for an environment.
	CreateBuffer(ctx context.Context, in *CreateBufferRequest, opts ...grpc.CallOption) (*CreateBufferResponse, error)
	// Append writes a batch of transitions to an environment's buffer.
	Append(ctx context.Context, in *AppendRequest, opts ...grpc.CallOption) (*AppendResponse, error)
	// Sample draws a training batch, with importance weights when the
	// buffer is prioritized and n-step fields when n-step is configured.
	Sample(ctx context.Context, in *SampleRequest, opts ...grpc.CallOption) (*SampleResponse, error)
	// UpdatePriorities rewrites priorities after a learner step.
	UpdatePriorities(ctx context.Context, in *UpdatePrioritiesRequest, opts ...grpc.CallOption) (*UpdatePrioritiesResponse, error)
	// GetEpisode reads one complete episode from an episodic buffer.
	GetEpisode(ctx context.Context, in *GetEpisodeRequest, opts ...grpc.CallOption) (*GetEpisodeResponse, error)
	// DeleteEpisode removes an episode and compacts the buffer.
	DeleteEpisode(ctx context.Context, in *DeleteEpisodeRequest, opts ...grpc.CallOption) (*DeleteEpisodeResponse, error)
	// GetStats reports per-buffer occupancy and configuration.
	GetStats(ctx context.Context, in *GetStatsRequest, opts ...grpc.CallOption) (*GetStatsResponse, error)
	// Clear resets an environment's buffer to empty.
	Clear(ctx context.Context, in *ClearRequest, opts ...grpc.CallOption) (*ClearResponse, error)
}

type replayClient struct {
	cc grpc.ClientConnInterface
}

func NewReplayClient(cc grpc.ClientConnInterface) ReplayClient {
	return &replayClient{cc}
}

func (c *replayClient) CreateBuffer(ctx context.Context, in *CreateBufferRequest, opts ...grpc.CallOption) (*CreateBufferResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreateBufferResponse)
	err := c.cc.Invoke(ctx, Replay_CreateBuffer_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *replayClient) Append(ctx context.Context, in *AppendRequest, opts ...grpc.CallOption) (*AppendResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(AppendResponse)
	err := c.cc.Invoke(ctx, Replay_Append_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *replayClient) Sample(ctx context.Context, in *SampleRequest, opts ...grpc.CallOption) (*SampleResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SampleResponse)
	err := c.cc.Invoke(ctx, Replay_Sample_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *replayClient) UpdatePriorities(ctx context.Context, in *UpdatePrioritiesRequest, opts ...grpc.CallOption) (*UpdatePrioritiesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UpdatePrioritiesResponse)
	err := c.cc.Invoke(ctx, Replay_UpdatePriorities_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *replayClient) GetEpisode(ctx context.Context, in *GetEpisodeRequest, opts ...grpc.CallOption) (*GetEpisodeResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetEpisodeResponse)
	err := c.cc.Invoke(ctx, Replay_GetEpisode_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *replayClient) DeleteEpisode(ctx context.Context, in *DeleteEpisodeRequest, opts ...grpc.CallOption) (*DeleteEpisodeResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DeleteEpisodeResponse)
	err := c.cc.Invoke(ctx, Replay_DeleteEpisode_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *replayClient) GetStats(ctx context.Context, in *GetStatsRequest, opts ...grpc.CallOption) (*GetStatsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetStatsResponse)
	err := c.cc.Invoke(ctx, Replay_GetStats_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *replayClient) Clear(ctx context.Context, in *ClearRequest, opts ...grpc.CallOption) (*ClearResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ClearResponse)
	err := c.cc.Invoke(ctx, Replay_Clear_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ReplayServer is the server API for Replay service.
// All implementations must embed UnimplementedReplayServer
// for forward compatibility
//
// Replay is the experience replay buffer service. Learners and actors talk
// to it to append transitions, draw training batches and manage episodes.
type ReplayServer interface {
	// CreateBuffer registers a buffer for an environment.
	CreateBuffer(context.Context, *CreateBufferRequest) (*CreateBufferResponse, error)
	// Append writes a batch of transitions to an environment's buffer.
	Append(context.Context, *AppendRequest) (*AppendResponse, error)
	// Sample draws a training batch, with importance weights when the
	// buffer is prioritized and n-step fields when n-step is configured.
	Sample(context.Context, *SampleRequest) (*SampleResponse, error)
	// UpdatePriorities rewrites priorities after a learner step.
	UpdatePriorities(context.Context, *UpdatePrioritiesRequest) (*UpdatePrioritiesResponse, error)
	// GetEpisode reads one complete episode from an episodic buffer.
	GetEpisode(context.Context, *GetEpisodeRequest) (*GetEpisodeResponse, error)
	// DeleteEpisode removes an episode and compacts the buffer.
	DeleteEpisode(context.Context, *DeleteEpisodeRequest) (*DeleteEpisodeResponse, error)
	// GetStats reports per-buffer occupancy and configuration.
	GetStats(context.Context, *GetStatsRequest) (*GetStatsResponse, error)
	// Clear resets an environment's buffer to empty.
	Clear(context.Context, *ClearRequest) (*ClearResponse, error)
	mustEmbedUnimplementedReplayServer()
}

// UnimplementedReplayServer must be embedded to have forward compatible implementations.
type UnimplementedReplayServer struct {
}

func (UnimplementedReplayServer) CreateBuffer(context.Context, *CreateBufferRequest) (*CreateBufferResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateBuffer not implemented")
}
func (UnimplementedReplayServer) Append(context.Context, *AppendRequest) (*AppendResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Append not implemented")
}
func (UnimplementedReplayServer) Sample(context.Context, *SampleRequest) (*SampleResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Sample not implemented")
}
func (UnimplementedReplayServer) UpdatePriorities(context.Context, *UpdatePrioritiesRequest) (*UpdatePrioritiesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdatePriorities not implemented")
}
func (UnimplementedReplayServer) GetEpisode(context.Context, *GetEpisodeRequest) (*GetEpisodeResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetEpisode not implemented")
}
func (UnimplementedReplayServer) DeleteEpisode(context.Context, *DeleteEpisodeRequest) (*DeleteEpisodeResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteEpisode not implemented")
}
func (UnimplementedReplayServer) GetStats(context.Context, *GetStatsRequest) (*GetStatsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetStats not implemented")
}
func (UnimplementedReplayServer) Clear(context.Context, *ClearRequest) (*ClearResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Clear not implemented")
}
func (UnimplementedReplayServer) mustEmbedUnimplementedReplayServer() {}

// UnsafeReplayServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ReplayServer will
// result in compilation errors.
type UnsafeReplayServer interface {
	mustEmbedUnimplementedReplayServer()
}

func RegisterReplayServer(s grpc.ServiceRegistrar, srv ReplayServer) {
	s.RegisterService(&Replay_ServiceDesc, srv)
}

func _Replay_CreateBuffer_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateBufferRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReplayServer).CreateBuffer(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Replay_CreateBuffer_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReplayServer).CreateBuffer(ctx, req.(*CreateBufferRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Replay_Append_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AppendRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReplayServer).Append(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Replay_Append_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReplayServer).Append(ctx, req.(*AppendRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Replay_Sample_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SampleRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReplayServer).Sample(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Replay_Sample_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReplayServer).Sample(ctx, req.(*SampleRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Replay_UpdatePriorities_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdatePrioritiesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReplayServer).UpdatePriorities(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Replay_UpdatePriorities_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReplayServer).UpdatePriorities(ctx, req.(*UpdatePrioritiesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Replay_GetEpisode_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetEpisodeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReplayServer).GetEpisode(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Replay_GetEpisode_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReplayServer).GetEpisode(ctx, req.(*GetEpisodeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Replay_DeleteEpisode_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteEpisodeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReplayServer).DeleteEpisode(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Replay_DeleteEpisode_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReplayServer).DeleteEpisode(ctx, req.(*DeleteEpisodeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Replay_GetStats_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetStatsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReplayServer).GetStats(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Replay_GetStats_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReplayServer).GetStats(ctx, req.(*GetStatsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Replay_Clear_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ClearRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReplayServer).Clear(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Replay_Clear_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReplayServer).Clear(ctx, req.(*ClearRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// Replay_ServiceDesc is the grpc.ServiceDesc for Replay service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var Replay_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "replay.v1.Replay",
	HandlerType: (*ReplayServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateBuffer",
			Handler:    _Replay_CreateBuffer_Handler,
		},
		{
			MethodName: "Append",
			Handler:    _Replay_Append_Handler,
		},
		{
			MethodName: "Sample",
			Handler:    _Replay_Sample_Handler,
		},
		{
			MethodName: "UpdatePriorities",
			Handler:    _Replay_UpdatePriorities_Handler,
		},
		{
			MethodName: "GetEpisode",
			Handler:    _Replay_GetEpisode_Handler,
		},
		{
			MethodName: "DeleteEpisode",
			Handler:    _Replay_DeleteEpisode_Handler,
		},
		{
			MethodName: "GetStats",
			Handler:    _Replay_GetStats_Handler,
		},
		{
			MethodName: "Clear",
			Handler:    _Replay_Clear_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "replay/v1/replay.proto",
}
