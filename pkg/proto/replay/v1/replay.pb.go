// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.34.2
// 	protoc        (unknown)
// source: replay/v1/replay.proto

package replayv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

// TransitionBatch carries count transitions in flat column-major arrays:
// obs and next_obs hold count*obs_dim values, act holds count*act_dim,
// rew and done hold count.
type TransitionBatch struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Count   uint32    `protobuf:"varint,1,opt,name=count,proto3" json:"count,omitempty"`
	Obs     []float64 `protobuf:"fixed64,2,rep,packed,name=obs,proto3" json:"obs,omitempty"`
	Act     []float64 `protobuf:"fixed64,3,rep,packed,name=act,proto3" json:"act,omitempty"`
	Rew     []float64 `protobuf:"fixed64,4,rep,packed,name=rew,proto3" json:"rew,omitempty"`
	NextObs []float64 `protobuf:"fixed64,5,rep,packed,name=next_obs,json=nextObs,proto3" json:"next_obs,omitempty"`
	Done    []float64 `protobuf:"fixed64,6,rep,packed,name=done,proto3" json:"done,omitempty"`
}

func (x *TransitionBatch) Reset() {
	*x = TransitionBatch{}
	if protoimpl.UnsafeEnabled {
		mi := &file_replay_v1_replay_proto_msgTypes[0]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *TransitionBatch) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TransitionBatch) ProtoMessage() {}

func (x *TransitionBatch) ProtoReflect() protoreflect.Message {
	mi := &file_replay_v1_replay_proto_msgTypes[0]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TransitionBatch.ProtoReflect.Descriptor instead.
func (*TransitionBatch) Descriptor() ([]byte, []int) {
	return file_replay_v1_replay_proto_rawDescGZIP(), []int{0}
}

func (x *TransitionBatch) GetCount() uint32 {
	if x != nil {
		return x.Count
	}
	return 0
}

func (x *TransitionBatch) GetObs() []float64 {
	if x != nil {
		return x.Obs
	}
	return nil
}

func (x *TransitionBatch) GetAct() []float64 {
	if x != nil {
		return x.Act
	}
	return nil
}

func (x *TransitionBatch) GetRew() []float64 {
	if x != nil {
		return x.Rew
	}
	return nil
}

func (x *TransitionBatch) GetNextObs() []float64 {
	if x != nil {
		return x.NextObs
	}
	return nil
}

func (x *TransitionBatch) GetDone() []float64 {
	if x != nil {
		return x.Done
	}
	return nil
}

type CreateBufferRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	EnvId       string  `protobuf:"bytes,1,opt,name=env_id,json=envId,proto3" json:"env_id,omitempty"`
	Capacity    uint32  `protobuf:"varint,2,opt,name=capacity,proto3" json:"capacity,omitempty"`
	ObsDim      uint32  `protobuf:"varint,3,opt,name=obs_dim,json=obsDim,proto3" json:"obs_dim,omitempty"`
	ActDim      uint32  `protobuf:"varint,4,opt,name=act_dim,json=actDim,proto3" json:"act_dim,omitempty"`
	Prioritized bool    `protobuf:"varint,5,opt,name=prioritized,proto3" json:"prioritized,omitempty"`
	Alpha       float64 `protobuf:"fixed64,6,opt,name=alpha,proto3" json:"alpha,omitempty"`
	Episodic    bool    `protobuf:"varint,7,opt,name=episodic,proto3" json:"episodic,omitempty"`
	NStep       uint32  `protobuf:"varint,8,opt,name=n_step,json=nStep,proto3" json:"n_step,omitempty"`
	Gamma       float64 `protobuf:"fixed64,9,opt,name=gamma,proto3" json:"gamma,omitempty"`
}

func (x *CreateBufferRequest) Reset() {
	*x = CreateBufferRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_replay_v1_replay_proto_msgTypes[1]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *CreateBufferRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateBufferRequest) ProtoMessage() {}

func (x *CreateBufferRequest) ProtoReflect() protoreflect.Message {
	mi := &file_replay_v1_replay_proto_msgTypes[1]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateBufferRequest.ProtoReflect.Descriptor instead.
func (*CreateBufferRequest) Descriptor() ([]byte, []int) {
	return file_replay_v1_replay_proto_rawDescGZIP(), []int{1}
}

func (x *CreateBufferRequest) GetEnvId() string {
	if x != nil {
		return x.EnvId
	}
	return ""
}

func (x *CreateBufferRequest) GetCapacity() uint32 {
	if x != nil {
		return x.Capacity
	}
	return 0
}

func (x *CreateBufferRequest) GetObsDim() uint32 {
	if x != nil {
		return x.ObsDim
	}
	return 0
}

func (x *CreateBufferRequest) GetActDim() uint32 {
	if x != nil {
		return x.ActDim
	}
	return 0
}

func (x *CreateBufferRequest) GetPrioritized() bool {
	if x != nil {
		return x.Prioritized
	}
	return false
}

func (x *CreateBufferRequest) GetAlpha() float64 {
	if x != nil {
		return x.Alpha
	}
	return 0
}

func (x *CreateBufferRequest) GetEpisodic() bool {
	if x != nil {
		return x.Episodic
	}
	return false
}

func (x *CreateBufferRequest) GetNStep() uint32 {
	if x != nil {
		return x.NStep
	}
	return 0
}

func (x *CreateBufferRequest) GetGamma() float64 {
	if x != nil {
		return x.Gamma
	}
	return 0
}

type CreateBufferResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	BufferId string `protobuf:"bytes,1,opt,name=buffer_id,json=bufferId,proto3" json:"buffer_id,omitempty"`
}

func (x *CreateBufferResponse) Reset() {
	*x = CreateBufferResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_replay_v1_replay_proto_msgTypes[2]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *CreateBufferResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateBufferResponse) ProtoMessage() {}

func (x *CreateBufferResponse) ProtoReflect() protoreflect.Message {
	mi := &file_replay_v1_replay_proto_msgTypes[2]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateBufferResponse.ProtoReflect.Descriptor instead.
func (*CreateBufferResponse) Descriptor() ([]byte, []int) {
	return file_replay_v1_replay_proto_rawDescGZIP(), []int{2}
}

func (x *CreateBufferResponse) GetBufferId() string {
	if x != nil {
		return x.BufferId
	}
	return ""
}

type AppendRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	EnvId string           `protobuf:"bytes,1,opt,name=env_id,json=envId,proto3" json:"env_id,omitempty"`
	Batch *TransitionBatch `protobuf:"bytes,2,opt,name=batch,proto3" json:"batch,omitempty"`
	// Optional explicit priorities, one per transition. Empty means the
	// buffer's running max priority is used.
	Priorities []float64 `protobuf:"fixed64,3,rep,packed,name=priorities,proto3" json:"priorities,omitempty"`
}

func (x *AppendRequest) Reset() {
	*x = AppendRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_replay_v1_replay_proto_msgTypes[3]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *AppendRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AppendRequest) ProtoMessage() {}

func (x *AppendRequest) ProtoReflect() protoreflect.Message {
	mi := &file_replay_v1_replay_proto_msgTypes[3]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AppendRequest.ProtoReflect.Descriptor instead.
func (*AppendRequest) Descriptor() ([]byte, []int) {
	return file_replay_v1_replay_proto_rawDescGZIP(), []int{3}
}

func (x *AppendRequest) GetEnvId() string {
	if x != nil {
		return x.EnvId
	}
	return ""
}

func (x *AppendRequest) GetBatch() *TransitionBatch {
	if x != nil {
		return x.Batch
	}
	return nil
}

func (x *AppendRequest) GetPriorities() []float64 {
	if x != nil {
		return x.Priorities
	}
	return nil
}

type AppendResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	StoredSize uint32 `protobuf:"varint,1,opt,name=stored_size,json=storedSize,proto3" json:"stored_size,omitempty"`
}

func (x *AppendResponse) Reset() {
	*x = AppendResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_replay_v1_replay_proto_msgTypes[4]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *AppendResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AppendResponse) ProtoMessage() {}

func (x *AppendResponse) ProtoReflect() protoreflect.Message {
	mi := &file_replay_v1_replay_proto_msgTypes[4]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AppendResponse.ProtoReflect.Descriptor instead.
func (*AppendResponse) Descriptor() ([]byte, []int) {
	return file_replay_v1_replay_proto_rawDescGZIP(), []int{4}
}

func (x *AppendResponse) GetStoredSize() uint32 {
	if x != nil {
		return x.StoredSize
	}
	return 0
}

type SampleRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	EnvId     string  `protobuf:"bytes,1,opt,name=env_id,json=envId,proto3" json:"env_id,omitempty"`
	BatchSize uint32  `protobuf:"varint,2,opt,name=batch_size,json=batchSize,proto3" json:"batch_size,omitempty"`
	Beta      float64 `protobuf:"fixed64,3,opt,name=beta,proto3" json:"beta,omitempty"`
}

func (x *SampleRequest) Reset() {
	*x = SampleRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_replay_v1_replay_proto_msgTypes[5]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *SampleRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SampleRequest) ProtoMessage() {}

func (x *SampleRequest) ProtoReflect() protoreflect.Message {
	mi := &file_replay_v1_replay_proto_msgTypes[5]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SampleRequest.ProtoReflect.Descriptor instead.
func (*SampleRequest) Descriptor() ([]byte, []int) {
	return file_replay_v1_replay_proto_rawDescGZIP(), []int{5}
}

func (x *SampleRequest) GetEnvId() string {
	if x != nil {
		return x.EnvId
	}
	return ""
}

func (x *SampleRequest) GetBatchSize() uint32 {
	if x != nil {
		return x.BatchSize
	}
	return 0
}

func (x *SampleRequest) GetBeta() float64 {
	if x != nil {
		return x.Beta
	}
	return 0
}

type SampleResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Batch   *TransitionBatch `protobuf:"bytes,1,opt,name=batch,proto3" json:"batch,omitempty"`
	Indexes []uint32         `protobuf:"varint,2,rep,packed,name=indexes,proto3" json:"indexes,omitempty"`
	Weights []float64        `protobuf:"fixed64,3,rep,packed,name=weights,proto3" json:"weights,omitempty"`
	// N-step fields, present only when the buffer was created with n_step.
	NstepReturns   []float64 `protobuf:"fixed64,4,rep,packed,name=nstep_returns,json=nstepReturns,proto3" json:"nstep_returns,omitempty"`
	NstepDiscounts []float64 `protobuf:"fixed64,5,rep,packed,name=nstep_discounts,json=nstepDiscounts,proto3" json:"nstep_discounts,omitempty"`
	NstepNextObs   []float64 `protobuf:"fixed64,6,rep,packed,name=nstep_next_obs,json=nstepNextObs,proto3" json:"nstep_next_obs,omitempty"`
	NstepSteps     []uint32  `protobuf:"varint,7,rep,packed,name=nstep_steps,json=nstepSteps,proto3" json:"nstep_steps,omitempty"`
	NstepTerminal  []bool    `protobuf:"varint,8,rep,packed,name=nstep_terminal,json=nstepTerminal,proto3" json:"nstep_terminal,omitempty"`
}

func (x *SampleResponse) Reset() {
	*x = SampleResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_replay_v1_replay_proto_msgTypes[6]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *SampleResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SampleResponse) ProtoMessage() {}

func (x *SampleResponse) ProtoReflect() protoreflect.Message {
	mi := &file_replay_v1_replay_proto_msgTypes[6]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SampleResponse.ProtoReflect.Descriptor instead.
func (*SampleResponse) Descriptor() ([]byte, []int) {
	return file_replay_v1_replay_proto_rawDescGZIP(), []int{6}
}

func (x *SampleResponse) GetBatch() *TransitionBatch {
	if x != nil {
		return x.Batch
	}
	return nil
}

func (x *SampleResponse) GetIndexes() []uint32 {
	if x != nil {
		return x.Indexes
	}
	return nil
}

func (x *SampleResponse) GetWeights() []float64 {
	if x != nil {
		return x.Weights
	}
	return nil
}

func (x *SampleResponse) GetNstepReturns() []float64 {
	if x != nil {
		return x.NstepReturns
	}
	return nil
}

func (x *SampleResponse) GetNstepDiscounts() []float64 {
	if x != nil {
		return x.NstepDiscounts
	}
	return nil
}

func (x *SampleResponse) GetNstepNextObs() []float64 {
	if x != nil {
		return x.NstepNextObs
	}
	return nil
}

func (x *SampleResponse) GetNstepSteps() []uint32 {
	if x != nil {
		return x.NstepSteps
	}
	return nil
}

func (x *SampleResponse) GetNstepTerminal() []bool {
	if x != nil {
		return x.NstepTerminal
	}
	return nil
}

type UpdatePrioritiesRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	EnvId      string    `protobuf:"bytes,1,opt,name=env_id,json=envId,proto3" json:"env_id,omitempty"`
	Indexes    []uint32  `protobuf:"varint,2,rep,packed,name=indexes,proto3" json:"indexes,omitempty"`
	Priorities []float64 `protobuf:"fixed64,3,rep,packed,name=priorities,proto3" json:"priorities,omitempty"`
}

func (x *UpdatePrioritiesRequest) Reset() {
	*x = UpdatePrioritiesRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_replay_v1_replay_proto_msgTypes[7]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *UpdatePrioritiesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdatePrioritiesRequest) ProtoMessage() {}

func (x *UpdatePrioritiesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_replay_v1_replay_proto_msgTypes[7]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdatePrioritiesRequest.ProtoReflect.Descriptor instead.
func (*UpdatePrioritiesRequest) Descriptor() ([]byte, []int) {
	return file_replay_v1_replay_proto_rawDescGZIP(), []int{7}
}

func (x *UpdatePrioritiesRequest) GetEnvId() string {
	if x != nil {
		return x.EnvId
	}
	return ""
}

func (x *UpdatePrioritiesRequest) GetIndexes() []uint32 {
	if x != nil {
		return x.Indexes
	}
	return nil
}

func (x *UpdatePrioritiesRequest) GetPriorities() []float64 {
	if x != nil {
		return x.Priorities
	}
	return nil
}

type UpdatePrioritiesResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	UpdatedCount uint32 `protobuf:"varint,1,opt,name=updated_count,json=updatedCount,proto3" json:"updated_count,omitempty"`
}

func (x *UpdatePrioritiesResponse) Reset() {
	*x = UpdatePrioritiesResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_replay_v1_replay_proto_msgTypes[8]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *UpdatePrioritiesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdatePrioritiesResponse) ProtoMessage() {}

func (x *UpdatePrioritiesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_replay_v1_replay_proto_msgTypes[8]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdatePrioritiesResponse.ProtoReflect.Descriptor instead.
func (*UpdatePrioritiesResponse) Descriptor() ([]byte, []int) {
	return file_replay_v1_replay_proto_rawDescGZIP(), []int{8}
}

func (x *UpdatePrioritiesResponse) GetUpdatedCount() uint32 {
	if x != nil {
		return x.UpdatedCount
	}
	return 0
}

type GetEpisodeRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	EnvId     string `protobuf:"bytes,1,opt,name=env_id,json=envId,proto3" json:"env_id,omitempty"`
	EpisodeId uint32 `protobuf:"varint,2,opt,name=episode_id,json=episodeId,proto3" json:"episode_id,omitempty"`
}

func (x *GetEpisodeRequest) Reset() {
	*x = GetEpisodeRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_replay_v1_replay_proto_msgTypes[9]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *GetEpisodeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetEpisodeRequest) ProtoMessage() {}

func (x *GetEpisodeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_replay_v1_replay_proto_msgTypes[9]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetEpisodeRequest.ProtoReflect.Descriptor instead.
func (*GetEpisodeRequest) Descriptor() ([]byte, []int) {
	return file_replay_v1_replay_proto_rawDescGZIP(), []int{9}
}

func (x *GetEpisodeRequest) GetEnvId() string {
	if x != nil {
		return x.EnvId
	}
	return ""
}

func (x *GetEpisodeRequest) GetEpisodeId() uint32 {
	if x != nil {
		return x.EpisodeId
	}
	return 0
}

type GetEpisodeResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	// Zero when the episode does not exist.
	Length uint32           `protobuf:"varint,1,opt,name=length,proto3" json:"length,omitempty"`
	Batch  *TransitionBatch `protobuf:"bytes,2,opt,name=batch,proto3" json:"batch,omitempty"`
}

func (x *GetEpisodeResponse) Reset() {
	*x = GetEpisodeResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_replay_v1_replay_proto_msgTypes[10]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *GetEpisodeResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetEpisodeResponse) ProtoMessage() {}

func (x *GetEpisodeResponse) ProtoReflect() protoreflect.Message {
	mi := &file_replay_v1_replay_proto_msgTypes[10]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetEpisodeResponse.ProtoReflect.Descriptor instead.
func (*GetEpisodeResponse) Descriptor() ([]byte, []int) {
	return file_replay_v1_replay_proto_rawDescGZIP(), []int{10}
}

func (x *GetEpisodeResponse) GetLength() uint32 {
	if x != nil {
		return x.Length
	}
	return 0
}

func (x *GetEpisodeResponse) GetBatch() *TransitionBatch {
	if x != nil {
		return x.Batch
	}
	return nil
}

type DeleteEpisodeRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	EnvId     string `protobuf:"bytes,1,opt,name=env_id,json=envId,proto3" json:"env_id,omitempty"`
	EpisodeId uint32 `protobuf:"varint,2,opt,name=episode_id,json=episodeId,proto3" json:"episode_id,omitempty"`
}

func (x *DeleteEpisodeRequest) Reset() {
	*x = DeleteEpisodeRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_replay_v1_replay_proto_msgTypes[11]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *DeleteEpisodeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteEpisodeRequest) ProtoMessage() {}

func (x *DeleteEpisodeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_replay_v1_replay_proto_msgTypes[11]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteEpisodeRequest.ProtoReflect.Descriptor instead.
func (*DeleteEpisodeRequest) Descriptor() ([]byte, []int) {
	return file_replay_v1_replay_proto_rawDescGZIP(), []int{11}
}

func (x *DeleteEpisodeRequest) GetEnvId() string {
	if x != nil {
		return x.EnvId
	}
	return ""
}

func (x *DeleteEpisodeRequest) GetEpisodeId() uint32 {
	if x != nil {
		return x.EpisodeId
	}
	return 0
}

type DeleteEpisodeResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	RemovedCount uint32 `protobuf:"varint,1,opt,name=removed_count,json=removedCount,proto3" json:"removed_count,omitempty"`
}

func (x *DeleteEpisodeResponse) Reset() {
	*x = DeleteEpisodeResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_replay_v1_replay_proto_msgTypes[12]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *DeleteEpisodeResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteEpisodeResponse) ProtoMessage() {}

func (x *DeleteEpisodeResponse) ProtoReflect() protoreflect.Message {
	mi := &file_replay_v1_replay_proto_msgTypes[12]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteEpisodeResponse.ProtoReflect.Descriptor instead.
func (*DeleteEpisodeResponse) Descriptor() ([]byte, []int) {
	return file_replay_v1_replay_proto_rawDescGZIP(), []int{12}
}

func (x *DeleteEpisodeResponse) GetRemovedCount() uint32 {
	if x != nil {
		return x.RemovedCount
	}
	return 0
}

type GetStatsRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	// Empty requests stats for every buffer.
	EnvId string `protobuf:"bytes,1,opt,name=env_id,json=envId,proto3" json:"env_id,omitempty"`
}

func (x *GetStatsRequest) Reset() {
	*x = GetStatsRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_replay_v1_replay_proto_msgTypes[13]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *GetStatsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetStatsRequest) ProtoMessage() {}

func (x *GetStatsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_replay_v1_replay_proto_msgTypes[13]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetStatsRequest.ProtoReflect.Descriptor instead.
func (*GetStatsRequest) Descriptor() ([]byte, []int) {
	return file_replay_v1_replay_proto_rawDescGZIP(), []int{13}
}

func (x *GetStatsRequest) GetEnvId() string {
	if x != nil {
		return x.EnvId
	}
	return ""
}

type BufferStats struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	BufferId    string  `protobuf:"bytes,1,opt,name=buffer_id,json=bufferId,proto3" json:"buffer_id,omitempty"`
	EnvId       string  `protobuf:"bytes,2,opt,name=env_id,json=envId,proto3" json:"env_id,omitempty"`
	Capacity    uint32  `protobuf:"varint,3,opt,name=capacity,proto3" json:"capacity,omitempty"`
	StoredSize  uint32  `protobuf:"varint,4,opt,name=stored_size,json=storedSize,proto3" json:"stored_size,omitempty"`
	NextIndex   uint32  `protobuf:"varint,5,opt,name=next_index,json=nextIndex,proto3" json:"next_index,omitempty"`
	Episodes    uint32  `protobuf:"varint,6,opt,name=episodes,proto3" json:"episodes,omitempty"`
	MaxPriority float64 `protobuf:"fixed64,7,opt,name=max_priority,json=maxPriority,proto3" json:"max_priority,omitempty"`
	Prioritized bool    `protobuf:"varint,8,opt,name=prioritized,proto3" json:"prioritized,omitempty"`
	Episodic    bool    `protobuf:"varint,9,opt,name=episodic,proto3" json:"episodic,omitempty"`
}

func (x *BufferStats) Reset() {
	*x = BufferStats{}
	if protoimpl.UnsafeEnabled {
		mi := &file_replay_v1_replay_proto_msgTypes[14]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *BufferStats) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BufferStats) ProtoMessage() {}

func (x *BufferStats) ProtoReflect() protoreflect.Message {
	mi := &file_replay_v1_replay_proto_msgTypes[14]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BufferStats.ProtoReflect.Descriptor instead.
func (*BufferStats) Descriptor() ([]byte, []int) {
	return file_replay_v1_replay_proto_rawDescGZIP(), []int{14}
}

func (x *BufferStats) GetBufferId() string {
	if x != nil {
		return x.BufferId
	}
	return ""
}

func (x *BufferStats) GetEnvId() string {
	if x != nil {
		return x.EnvId
	}
	return ""
}

func (x *BufferStats) GetCapacity() uint32 {
	if x != nil {
		return x.Capacity
	}
	return 0
}

func (x *BufferStats) GetStoredSize() uint32 {
	if x != nil {
		return x.StoredSize
	}
	return 0
}

func (x *BufferStats) GetNextIndex() uint32 {
	if x != nil {
		return x.NextIndex
	}
	return 0
}

func (x *BufferStats) GetEpisodes() uint32 {
	if x != nil {
		return x.Episodes
	}
	return 0
}

func (x *BufferStats) GetMaxPriority() float64 {
	if x != nil {
		return x.MaxPriority
	}
	return 0
}

func (x *BufferStats) GetPrioritized() bool {
	if x != nil {
		return x.Prioritized
	}
	return false
}

func (x *BufferStats) GetEpisodic() bool {
	if x != nil {
		return x.Episodic
	}
	return false
}

type GetStatsResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Buffers []*BufferStats `protobuf:"bytes,1,rep,name=buffers,proto3" json:"buffers,omitempty"`
}

func (x *GetStatsResponse) Reset() {
	*x = GetStatsResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_replay_v1_replay_proto_msgTypes[15]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *GetStatsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetStatsResponse) ProtoMessage() {}

func (x *GetStatsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_replay_v1_replay_proto_msgTypes[15]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetStatsResponse.ProtoReflect.Descriptor instead.
func (*GetStatsResponse) Descriptor() ([]byte, []int) {
	return file_replay_v1_replay_proto_rawDescGZIP(), []int{15}
}

func (x *GetStatsResponse) GetBuffers() []*BufferStats {
	if x != nil {
		return x.Buffers
	}
	return nil
}

type ClearRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	EnvId string `protobuf:"bytes,1,opt,name=env_id,json=envId,proto3" json:"env_id,omitempty"`
}

func (x *ClearRequest) Reset() {
	*x = ClearRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_replay_v1_replay_proto_msgTypes[16]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *ClearRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ClearRequest) ProtoMessage() {}

func (x *ClearRequest) ProtoReflect() protoreflect.Message {
	mi := &file_replay_v1_replay_proto_msgTypes[16]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ClearRequest.ProtoReflect.Descriptor instead.
func (*ClearRequest) Descriptor() ([]byte, []int) {
	return file_replay_v1_replay_proto_rawDescGZIP(), []int{16}
}

func (x *ClearRequest) GetEnvId() string {
	if x != nil {
		return x.EnvId
	}
	return ""
}

type ClearResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields
}

func (x *ClearResponse) Reset() {
	*x = ClearResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_replay_v1_replay_proto_msgTypes[17]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *ClearResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ClearResponse) ProtoMessage() {}

func (x *ClearResponse) ProtoReflect() protoreflect.Message {
	mi := &file_replay_v1_replay_proto_msgTypes[17]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ClearResponse.ProtoReflect.Descriptor instead.
func (*ClearResponse) Descriptor() ([]byte, []int) {
	return file_replay_v1_replay_proto_rawDescGZIP(), []int{17}
}

var File_replay_v1_replay_proto protoreflect.FileDescriptor

var file_replay_v1_replay_proto_rawDesc = []byte{
	0x0a, 0x16, 0x72, 0x65, 0x70, 0x6c, 0x61, 0x79, 0x2f, 0x76, 0x31, 0x2f, 0x72, 0x65, 0x70, 0x6c,
	0x61, 0x79, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x12, 0x09, 0x72, 0x65, 0x70, 0x6c, 0x61, 0x79,
	0x2e, 0x76, 0x31, 0x22, 0x8c, 0x01, 0x0a, 0x0f, 0x54, 0x72, 0x61, 0x6e, 0x73, 0x69, 0x74, 0x69,
	0x6f, 0x6e, 0x42, 0x61, 0x74, 0x63, 0x68, 0x12, 0x14, 0x0a, 0x05, 0x63, 0x6f, 0x75, 0x6e, 0x74,
	0x18, 0x01, 0x20, 0x01, 0x28, 0x0d, 0x52, 0x05, 0x63, 0x6f, 0x75, 0x6e, 0x74, 0x12, 0x10, 0x0a,
	0x03, 0x6f, 0x62, 0x73, 0x18, 0x02, 0x20, 0x03, 0x28, 0x01, 0x52, 0x03, 0x6f, 0x62, 0x73, 0x12,
	0x10, 0x0a, 0x03, 0x61, 0x63, 0x74, 0x18, 0x03, 0x20, 0x03, 0x28, 0x01, 0x52, 0x03, 0x61, 0x63,
	0x74, 0x12, 0x10, 0x0a, 0x03, 0x72, 0x65, 0x77, 0x18, 0x04, 0x20, 0x03, 0x28, 0x01, 0x52, 0x03,
	0x72, 0x65, 0x77, 0x12, 0x19, 0x0a, 0x08, 0x6e, 0x65, 0x78, 0x74, 0x5f, 0x6f, 0x62, 0x73, 0x18,
	0x05, 0x20, 0x03, 0x28, 0x01, 0x52, 0x07, 0x6e, 0x65, 0x78, 0x74, 0x4f, 0x62, 0x73, 0x12, 0x12,
	0x0a, 0x04, 0x64, 0x6f, 0x6e, 0x65, 0x18, 0x06, 0x20, 0x03, 0x28, 0x01, 0x52, 0x04, 0x64, 0x6f,
	0x6e, 0x65, 0x22, 0xfb, 0x01, 0x0a, 0x13, 0x43, 0x72, 0x65, 0x61, 0x74, 0x65, 0x42, 0x75, 0x66,
	0x66, 0x65, 0x72, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x15, 0x0a, 0x06, 0x65, 0x6e,
	0x76, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x05, 0x65, 0x6e, 0x76, 0x49,
	0x64, 0x12, 0x1a, 0x0a, 0x08, 0x63, 0x61, 0x70, 0x61, 0x63, 0x69, 0x74, 0x79, 0x18, 0x02, 0x20,
	0x01, 0x28, 0x0d, 0x52, 0x08, 0x63, 0x61, 0x70, 0x61, 0x63, 0x69, 0x74, 0x79, 0x12, 0x17, 0x0a,
	0x07, 0x6f, 0x62, 0x73, 0x5f, 0x64, 0x69, 0x6d, 0x18, 0x03, 0x20, 0x01, 0x28, 0x0d, 0x52, 0x06,
	0x6f, 0x62, 0x73, 0x44, 0x69, 0x6d, 0x12, 0x17, 0x0a, 0x07, 0x61, 0x63, 0x74, 0x5f, 0x64, 0x69,
	0x6d, 0x18, 0x04, 0x20, 0x01, 0x28, 0x0d, 0x52, 0x06, 0x61, 0x63, 0x74, 0x44, 0x69, 0x6d, 0x12,
	0x20, 0x0a, 0x0b, 0x70, 0x72, 0x69, 0x6f, 0x72, 0x69, 0x74, 0x69, 0x7a, 0x65, 0x64, 0x18, 0x05,
	0x20, 0x01, 0x28, 0x08, 0x52, 0x0b, 0x70, 0x72, 0x69, 0x6f, 0x72, 0x69, 0x74, 0x69, 0x7a, 0x65,
	0x64, 0x12, 0x14, 0x0a, 0x05, 0x61, 0x6c, 0x70, 0x68, 0x61, 0x18, 0x06, 0x20, 0x01, 0x28, 0x01,
	0x52, 0x05, 0x61, 0x6c, 0x70, 0x68, 0x61, 0x12, 0x1a, 0x0a, 0x08, 0x65, 0x70, 0x69, 0x73, 0x6f,
	0x64, 0x69, 0x63, 0x18, 0x07, 0x20, 0x01, 0x28, 0x08, 0x52, 0x08, 0x65, 0x70, 0x69, 0x73, 0x6f,
	0x64, 0x69, 0x63, 0x12, 0x15, 0x0a, 0x06, 0x6e, 0x5f, 0x73, 0x74, 0x65, 0x70, 0x18, 0x08, 0x20,
	0x01, 0x28, 0x0d, 0x52, 0x05, 0x6e, 0x53, 0x74, 0x65, 0x70, 0x12, 0x14, 0x0a, 0x05, 0x67, 0x61,
	0x6d, 0x6d, 0x61, 0x18, 0x09, 0x20, 0x01, 0x28, 0x01, 0x52, 0x05, 0x67, 0x61, 0x6d, 0x6d, 0x61,
	0x22, 0x33, 0x0a, 0x14, 0x43, 0x72, 0x65, 0x61, 0x74, 0x65, 0x42, 0x75, 0x66, 0x66, 0x65, 0x72,
	0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x1b, 0x0a, 0x09, 0x62, 0x75, 0x66, 0x66,
	0x65, 0x72, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x08, 0x62, 0x75, 0x66,
	0x66, 0x65, 0x72, 0x49, 0x64, 0x22, 0x78, 0x0a, 0x0d, 0x41, 0x70, 0x70, 0x65, 0x6e, 0x64, 0x52,
	0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x15, 0x0a, 0x06, 0x65, 0x6e, 0x76, 0x5f, 0x69, 0x64,
	0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x05, 0x65, 0x6e, 0x76, 0x49, 0x64, 0x12, 0x30, 0x0a,
	0x05, 0x62, 0x61, 0x74, 0x63, 0x68, 0x18, 0x02, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x1a, 0x2e, 0x72,
	0x65, 0x70, 0x6c, 0x61, 0x79, 0x2e, 0x76, 0x31, 0x2e, 0x54, 0x72, 0x61, 0x6e, 0x73, 0x69, 0x74,
	0x69, 0x6f, 0x6e, 0x42, 0x61, 0x74, 0x63, 0x68, 0x52, 0x05, 0x62, 0x61, 0x74, 0x63, 0x68, 0x12,
	0x1e, 0x0a, 0x0a, 0x70, 0x72, 0x69, 0x6f, 0x72, 0x69, 0x74, 0x69, 0x65, 0x73, 0x18, 0x03, 0x20,
	0x03, 0x28, 0x01, 0x52, 0x0a, 0x70, 0x72, 0x69, 0x6f, 0x72, 0x69, 0x74, 0x69, 0x65, 0x73, 0x22,
	0x31, 0x0a, 0x0e, 0x41, 0x70, 0x70, 0x65, 0x6e, 0x64, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73,
	0x65, 0x12, 0x1f, 0x0a, 0x0b, 0x73, 0x74, 0x6f, 0x72, 0x65, 0x64, 0x5f, 0x73, 0x69, 0x7a, 0x65,
	0x18, 0x01, 0x20, 0x01, 0x28, 0x0d, 0x52, 0x0a, 0x73, 0x74, 0x6f, 0x72, 0x65, 0x64, 0x53, 0x69,
	0x7a, 0x65, 0x22, 0x59, 0x0a, 0x0d, 0x53, 0x61, 0x6d, 0x70, 0x6c, 0x65, 0x52, 0x65, 0x71, 0x75,
	0x65, 0x73, 0x74, 0x12, 0x15, 0x0a, 0x06, 0x65, 0x6e, 0x76, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20,
	0x01, 0x28, 0x09, 0x52, 0x05, 0x65, 0x6e, 0x76, 0x49, 0x64, 0x12, 0x1d, 0x0a, 0x0a, 0x62, 0x61,
	0x74, 0x63, 0x68, 0x5f, 0x73, 0x69, 0x7a, 0x65, 0x18, 0x02, 0x20, 0x01, 0x28, 0x0d, 0x52, 0x09,
	0x62, 0x61, 0x74, 0x63, 0x68, 0x53, 0x69, 0x7a, 0x65, 0x12, 0x12, 0x0a, 0x04, 0x62, 0x65, 0x74,
	0x61, 0x18, 0x03, 0x20, 0x01, 0x28, 0x01, 0x52, 0x04, 0x62, 0x65, 0x74, 0x61, 0x22, 0xb2, 0x02,
	0x0a, 0x0e, 0x53, 0x61, 0x6d, 0x70, 0x6c, 0x65, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65,
	0x12, 0x30, 0x0a, 0x05, 0x62, 0x61, 0x74, 0x63, 0x68, 0x18, 0x01, 0x20, 0x01, 0x28, 0x0b, 0x32,
	0x1a, 0x2e, 0x72, 0x65, 0x70, 0x6c, 0x61, 0x79, 0x2e, 0x76, 0x31, 0x2e, 0x54, 0x72, 0x61, 0x6e,
	0x73, 0x69, 0x74, 0x69, 0x6f, 0x6e, 0x42, 0x61, 0x74, 0x63, 0x68, 0x52, 0x05, 0x62, 0x61, 0x74,
	0x63, 0x68, 0x12, 0x18, 0x0a, 0x07, 0x69, 0x6e, 0x64, 0x65, 0x78, 0x65, 0x73, 0x18, 0x02, 0x20,
	0x03, 0x28, 0x0d, 0x52, 0x07, 0x69, 0x6e, 0x64, 0x65, 0x78, 0x65, 0x73, 0x12, 0x18, 0x0a, 0x07,
	0x77, 0x65, 0x69, 0x67, 0x68, 0x74, 0x73, 0x18, 0x03, 0x20, 0x03, 0x28, 0x01, 0x52, 0x07, 0x77,
	0x65, 0x69, 0x67, 0x68, 0x74, 0x73, 0x12, 0x23, 0x0a, 0x0d, 0x6e, 0x73, 0x74, 0x65, 0x70, 0x5f,
	0x72, 0x65, 0x74, 0x75, 0x72, 0x6e, 0x73, 0x18, 0x04, 0x20, 0x03, 0x28, 0x01, 0x52, 0x0c, 0x6e,
	0x73, 0x74, 0x65, 0x70, 0x52, 0x65, 0x74, 0x75, 0x72, 0x6e, 0x73, 0x12, 0x27, 0x0a, 0x0f, 0x6e,
	0x73, 0x74, 0x65, 0x70, 0x5f, 0x64, 0x69, 0x73, 0x63, 0x6f, 0x75, 0x6e, 0x74, 0x73, 0x18, 0x05,
	0x20, 0x03, 0x28, 0x01, 0x52, 0x0e, 0x6e, 0x73, 0x74, 0x65, 0x70, 0x44, 0x69, 0x73, 0x63, 0x6f,
	0x75, 0x6e, 0x74, 0x73, 0x12, 0x24, 0x0a, 0x0e, 0x6e, 0x73, 0x74, 0x65, 0x70, 0x5f, 0x6e, 0x65,
	0x78, 0x74, 0x5f, 0x6f, 0x62, 0x73, 0x18, 0x06, 0x20, 0x03, 0x28, 0x01, 0x52, 0x0c, 0x6e, 0x73,
	0x74, 0x65, 0x70, 0x4e, 0x65, 0x78, 0x74, 0x4f, 0x62, 0x73, 0x12, 0x1f, 0x0a, 0x0b, 0x6e, 0x73,
	0x74, 0x65, 0x70, 0x5f, 0x73, 0x74, 0x65, 0x70, 0x73, 0x18, 0x07, 0x20, 0x03, 0x28, 0x0d, 0x52,
	0x0a, 0x6e, 0x73, 0x74, 0x65, 0x70, 0x53, 0x74, 0x65, 0x70, 0x73, 0x12, 0x25, 0x0a, 0x0e, 0x6e,
	0x73, 0x74, 0x65, 0x70, 0x5f, 0x74, 0x65, 0x72, 0x6d, 0x69, 0x6e, 0x61, 0x6c, 0x18, 0x08, 0x20,
	0x03, 0x28, 0x08, 0x52, 0x0d, 0x6e, 0x73, 0x74, 0x65, 0x70, 0x54, 0x65, 0x72, 0x6d, 0x69, 0x6e,
	0x61, 0x6c, 0x22, 0x6a, 0x0a, 0x17, 0x55, 0x70, 0x64, 0x61, 0x74, 0x65, 0x50, 0x72, 0x69, 0x6f,
	0x72, 0x69, 0x74, 0x69, 0x65, 0x73, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x15, 0x0a,
	0x06, 0x65, 0x6e, 0x76, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x05, 0x65,
	0x6e, 0x76, 0x49, 0x64, 0x12, 0x18, 0x0a, 0x07, 0x69, 0x6e, 0x64, 0x65, 0x78, 0x65, 0x73, 0x18,
	0x02, 0x20, 0x03, 0x28, 0x0d, 0x52, 0x07, 0x69, 0x6e, 0x64, 0x65, 0x78, 0x65, 0x73, 0x12, 0x1e,
	0x0a, 0x0a, 0x70, 0x72, 0x69, 0x6f, 0x72, 0x69, 0x74, 0x69, 0x65, 0x73, 0x18, 0x03, 0x20, 0x03,
	0x28, 0x01, 0x52, 0x0a, 0x70, 0x72, 0x69, 0x6f, 0x72, 0x69, 0x74, 0x69, 0x65, 0x73, 0x22, 0x3f,
	0x0a, 0x18, 0x55, 0x70, 0x64, 0x61, 0x74, 0x65, 0x50, 0x72, 0x69, 0x6f, 0x72, 0x69, 0x74, 0x69,
	0x65, 0x73, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x23, 0x0a, 0x0d, 0x75, 0x70,
	0x64, 0x61, 0x74, 0x65, 0x64, 0x5f, 0x63, 0x6f, 0x75, 0x6e, 0x74, 0x18, 0x01, 0x20, 0x01, 0x28,
	0x0d, 0x52, 0x0c, 0x75, 0x70, 0x64, 0x61, 0x74, 0x65, 0x64, 0x43, 0x6f, 0x75, 0x6e, 0x74, 0x22,
	0x49, 0x0a, 0x11, 0x47, 0x65, 0x74, 0x45, 0x70, 0x69, 0x73, 0x6f, 0x64, 0x65, 0x52, 0x65, 0x71,
	0x75, 0x65, 0x73, 0x74, 0x12, 0x15, 0x0a, 0x06, 0x65, 0x6e, 0x76, 0x5f, 0x69, 0x64, 0x18, 0x01,
	0x20, 0x01, 0x28, 0x09, 0x52, 0x05, 0x65, 0x6e, 0x76, 0x49, 0x64, 0x12, 0x1d, 0x0a, 0x0a, 0x65,
	0x70, 0x69, 0x73, 0x6f, 0x64, 0x65, 0x5f, 0x69, 0x64, 0x18, 0x02, 0x20, 0x01, 0x28, 0x0d, 0x52,
	0x09, 0x65, 0x70, 0x69, 0x73, 0x6f, 0x64, 0x65, 0x49, 0x64, 0x22, 0x5e, 0x0a, 0x12, 0x47, 0x65,
	0x74, 0x45, 0x70, 0x69, 0x73, 0x6f, 0x64, 0x65, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65,
	0x12, 0x16, 0x0a, 0x06, 0x6c, 0x65, 0x6e, 0x67, 0x74, 0x68, 0x18, 0x01, 0x20, 0x01, 0x28, 0x0d,
	0x52, 0x06, 0x6c, 0x65, 0x6e, 0x67, 0x74, 0x68, 0x12, 0x30, 0x0a, 0x05, 0x62, 0x61, 0x74, 0x63,
	0x68, 0x18, 0x02, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x1a, 0x2e, 0x72, 0x65, 0x70, 0x6c, 0x61, 0x79,
	0x2e, 0x76, 0x31, 0x2e, 0x54, 0x72, 0x61, 0x6e, 0x73, 0x69, 0x74, 0x69, 0x6f, 0x6e, 0x42, 0x61,
	0x74, 0x63, 0x68, 0x52, 0x05, 0x62, 0x61, 0x74, 0x63, 0x68, 0x22, 0x4c, 0x0a, 0x14, 0x44, 0x65,
	0x6c, 0x65, 0x74, 0x65, 0x45, 0x70, 0x69, 0x73, 0x6f, 0x64, 0x65, 0x52, 0x65, 0x71, 0x75, 0x65,
	0x73, 0x74, 0x12, 0x15, 0x0a, 0x06, 0x65, 0x6e, 0x76, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01,
	0x28, 0x09, 0x52, 0x05, 0x65, 0x6e, 0x76, 0x49, 0x64, 0x12, 0x1d, 0x0a, 0x0a, 0x65, 0x70, 0x69,
	0x73, 0x6f, 0x64, 0x65, 0x5f, 0x69, 0x64, 0x18, 0x02, 0x20, 0x01, 0x28, 0x0d, 0x52, 0x09, 0x65,
	0x70, 0x69, 0x73, 0x6f, 0x64, 0x65, 0x49, 0x64, 0x22, 0x3c, 0x0a, 0x15, 0x44, 0x65, 0x6c, 0x65,
	0x74, 0x65, 0x45, 0x70, 0x69, 0x73, 0x6f, 0x64, 0x65, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73,
	0x65, 0x12, 0x23, 0x0a, 0x0d, 0x72, 0x65, 0x6d, 0x6f, 0x76, 0x65, 0x64, 0x5f, 0x63, 0x6f, 0x75,
	0x6e, 0x74, 0x18, 0x01, 0x20, 0x01, 0x28, 0x0d, 0x52, 0x0c, 0x72, 0x65, 0x6d, 0x6f, 0x76, 0x65,
	0x64, 0x43, 0x6f, 0x75, 0x6e, 0x74, 0x22, 0x28, 0x0a, 0x0f, 0x47, 0x65, 0x74, 0x53, 0x74, 0x61,
	0x74, 0x73, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x15, 0x0a, 0x06, 0x65, 0x6e, 0x76,
	0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x05, 0x65, 0x6e, 0x76, 0x49, 0x64,
	0x22, 0x9a, 0x02, 0x0a, 0x0b, 0x42, 0x75, 0x66, 0x66, 0x65, 0x72, 0x53, 0x74, 0x61, 0x74, 0x73,
	0x12, 0x1b, 0x0a, 0x09, 0x62, 0x75, 0x66, 0x66, 0x65, 0x72, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20,
	0x01, 0x28, 0x09, 0x52, 0x08, 0x62, 0x75, 0x66, 0x66, 0x65, 0x72, 0x49, 0x64, 0x12, 0x15, 0x0a,
	0x06, 0x65, 0x6e, 0x76, 0x5f, 0x69, 0x64, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x05, 0x65,
	0x6e, 0x76, 0x49, 0x64, 0x12, 0x1a, 0x0a, 0x08, 0x63, 0x61, 0x70, 0x61, 0x63, 0x69, 0x74, 0x79,
	0x18, 0x03, 0x20, 0x01, 0x28, 0x0d, 0x52, 0x08, 0x63, 0x61, 0x70, 0x61, 0x63, 0x69, 0x74, 0x79,
	0x12, 0x1f, 0x0a, 0x0b, 0x73, 0x74, 0x6f, 0x72, 0x65, 0x64, 0x5f, 0x73, 0x69, 0x7a, 0x65, 0x18,
	0x04, 0x20, 0x01, 0x28, 0x0d, 0x52, 0x0a, 0x73, 0x74, 0x6f, 0x72, 0x65, 0x64, 0x53, 0x69, 0x7a,
	0x65, 0x12, 0x1d, 0x0a, 0x0a, 0x6e, 0x65, 0x78, 0x74, 0x5f, 0x69, 0x6e, 0x64, 0x65, 0x78, 0x18,
	0x05, 0x20, 0x01, 0x28, 0x0d, 0x52, 0x09, 0x6e, 0x65, 0x78, 0x74, 0x49, 0x6e, 0x64, 0x65, 0x78,
	0x12, 0x1a, 0x0a, 0x08, 0x65, 0x70, 0x69, 0x73, 0x6f, 0x64, 0x65, 0x73, 0x18, 0x06, 0x20, 0x01,
	0x28, 0x0d, 0x52, 0x08, 0x65, 0x70, 0x69, 0x73, 0x6f, 0x64, 0x65, 0x73, 0x12, 0x21, 0x0a, 0x0c,
	0x6d, 0x61, 0x78, 0x5f, 0x70, 0x72, 0x69, 0x6f, 0x72, 0x69, 0x74, 0x79, 0x18, 0x07, 0x20, 0x01,
	0x28, 0x01, 0x52, 0x0b, 0x6d, 0x61, 0x78, 0x50, 0x72, 0x69, 0x6f, 0x72, 0x69, 0x74, 0x79, 0x12,
	0x20, 0x0a, 0x0b, 0x70, 0x72, 0x69, 0x6f, 0x72, 0x69, 0x74, 0x69, 0x7a, 0x65, 0x64, 0x18, 0x08,
	0x20, 0x01, 0x28, 0x08, 0x52, 0x0b, 0x70, 0x72, 0x69, 0x6f, 0x72, 0x69, 0x74, 0x69, 0x7a, 0x65,
	0x64, 0x12, 0x1a, 0x0a, 0x08, 0x65, 0x70, 0x69, 0x73, 0x6f, 0x64, 0x69, 0x63, 0x18, 0x09, 0x20,
	0x01, 0x28, 0x08, 0x52, 0x08, 0x65, 0x70, 0x69, 0x73, 0x6f, 0x64, 0x69, 0x63, 0x22, 0x44, 0x0a,
	0x10, 0x47, 0x65, 0x74, 0x53, 0x74, 0x61, 0x74, 0x73, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73,
	0x65, 0x12, 0x30, 0x0a, 0x07, 0x62, 0x75, 0x66, 0x66, 0x65, 0x72, 0x73, 0x18, 0x01, 0x20, 0x03,
	0x28, 0x0b, 0x32, 0x16, 0x2e, 0x72, 0x65, 0x70, 0x6c, 0x61, 0x79, 0x2e, 0x76, 0x31, 0x2e, 0x42,
	0x75, 0x66, 0x66, 0x65, 0x72, 0x53, 0x74, 0x61, 0x74, 0x73, 0x52, 0x07, 0x62, 0x75, 0x66, 0x66,
	0x65, 0x72, 0x73, 0x22, 0x25, 0x0a, 0x0c, 0x43, 0x6c, 0x65, 0x61, 0x72, 0x52, 0x65, 0x71, 0x75,
	0x65, 0x73, 0x74, 0x12, 0x15, 0x0a, 0x06, 0x65, 0x6e, 0x76, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20,
	0x01, 0x28, 0x09, 0x52, 0x05, 0x65, 0x6e, 0x76, 0x49, 0x64, 0x22, 0x0f, 0x0a, 0x0d, 0x43, 0x6c,
	0x65, 0x61, 0x72, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x32, 0xd4, 0x04, 0x0a, 0x06,
	0x52, 0x65, 0x70, 0x6c, 0x61, 0x79, 0x12, 0x4f, 0x0a, 0x0c, 0x43, 0x72, 0x65, 0x61, 0x74, 0x65,
	0x42, 0x75, 0x66, 0x66, 0x65, 0x72, 0x12, 0x1e, 0x2e, 0x72, 0x65, 0x70, 0x6c, 0x61, 0x79, 0x2e,
	0x76, 0x31, 0x2e, 0x43, 0x72, 0x65, 0x61, 0x74, 0x65, 0x42, 0x75, 0x66, 0x66, 0x65, 0x72, 0x52,
	0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x1f, 0x2e, 0x72, 0x65, 0x70, 0x6c, 0x61, 0x79, 0x2e,
	0x76, 0x31, 0x2e, 0x43, 0x72, 0x65, 0x61, 0x74, 0x65, 0x42, 0x75, 0x66, 0x66, 0x65, 0x72, 0x52,
	0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x3d, 0x0a, 0x06, 0x41, 0x70, 0x70, 0x65, 0x6e,
	0x64, 0x12, 0x18, 0x2e, 0x72, 0x65, 0x70, 0x6c, 0x61, 0x79, 0x2e, 0x76, 0x31, 0x2e, 0x41, 0x70,
	0x70, 0x65, 0x6e, 0x64, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x19, 0x2e, 0x72, 0x65,
	0x70, 0x6c, 0x61, 0x79, 0x2e, 0x76, 0x31, 0x2e, 0x41, 0x70, 0x70, 0x65, 0x6e, 0x64, 0x52, 0x65,
	0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x3d, 0x0a, 0x06, 0x53, 0x61, 0x6d, 0x70, 0x6c, 0x65,
	0x12, 0x18, 0x2e, 0x72, 0x65, 0x70, 0x6c, 0x61, 0x79, 0x2e, 0x76, 0x31, 0x2e, 0x53, 0x61, 0x6d,
	0x70, 0x6c, 0x65, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x19, 0x2e, 0x72, 0x65, 0x70,
	0x6c, 0x61, 0x79, 0x2e, 0x76, 0x31, 0x2e, 0x53, 0x61, 0x6d, 0x70, 0x6c, 0x65, 0x52, 0x65, 0x73,
	0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x5b, 0x0a, 0x10, 0x55, 0x70, 0x64, 0x61, 0x74, 0x65, 0x50,
	0x72, 0x69, 0x6f, 0x72, 0x69, 0x74, 0x69, 0x65, 0x73, 0x12, 0x22, 0x2e, 0x72, 0x65, 0x70, 0x6c,
	0x61, 0x79, 0x2e, 0x76, 0x31, 0x2e, 0x55, 0x70, 0x64, 0x61, 0x74, 0x65, 0x50, 0x72, 0x69, 0x6f,
	0x72, 0x69, 0x74, 0x69, 0x65, 0x73, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x23, 0x2e,
	0x72, 0x65, 0x70, 0x6c, 0x61, 0x79, 0x2e, 0x76, 0x31, 0x2e, 0x55, 0x70, 0x64, 0x61, 0x74, 0x65,
	0x50, 0x72, 0x69, 0x6f, 0x72, 0x69, 0x74, 0x69, 0x65, 0x73, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e,
	0x73, 0x65, 0x12, 0x49, 0x0a, 0x0a, 0x47, 0x65, 0x74, 0x45, 0x70, 0x69, 0x73, 0x6f, 0x64, 0x65,
	0x12, 0x1c, 0x2e, 0x72, 0x65, 0x70, 0x6c, 0x61, 0x79, 0x2e, 0x76, 0x31, 0x2e, 0x47, 0x65, 0x74,
	0x45, 0x70, 0x69, 0x73, 0x6f, 0x64, 0x65, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x1d,
	0x2e, 0x72, 0x65, 0x70, 0x6c, 0x61, 0x79, 0x2e, 0x76, 0x31, 0x2e, 0x47, 0x65, 0x74, 0x45, 0x70,
	0x69, 0x73, 0x6f, 0x64, 0x65, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x52, 0x0a,
	0x0d, 0x44, 0x65, 0x6c, 0x65, 0x74, 0x65, 0x45, 0x70, 0x69, 0x73, 0x6f, 0x64, 0x65, 0x12, 0x1f,
	0x2e, 0x72, 0x65, 0x70, 0x6c, 0x61, 0x79, 0x2e, 0x76, 0x31, 0x2e, 0x44, 0x65, 0x6c, 0x65, 0x74,
	0x65, 0x45, 0x70, 0x69, 0x73, 0x6f, 0x64, 0x65, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a,
	0x20, 0x2e, 0x72, 0x65, 0x70, 0x6c, 0x61, 0x79, 0x2e, 0x76, 0x31, 0x2e, 0x44, 0x65, 0x6c, 0x65,
	0x74, 0x65, 0x45, 0x70, 0x69, 0x73, 0x6f, 0x64, 0x65, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73,
	0x65, 0x12, 0x43, 0x0a, 0x08, 0x47, 0x65, 0x74, 0x53, 0x74, 0x61, 0x74, 0x73, 0x12, 0x1a, 0x2e,
	0x72, 0x65, 0x70, 0x6c, 0x61, 0x79, 0x2e, 0x76, 0x31, 0x2e, 0x47, 0x65, 0x74, 0x53, 0x74, 0x61,
	0x74, 0x73, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x1b, 0x2e, 0x72, 0x65, 0x70, 0x6c,
	0x61, 0x79, 0x2e, 0x76, 0x31, 0x2e, 0x47, 0x65, 0x74, 0x53, 0x74, 0x61, 0x74, 0x73, 0x52, 0x65,
	0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x3a, 0x0a, 0x05, 0x43, 0x6c, 0x65, 0x61, 0x72, 0x12,
	0x17, 0x2e, 0x72, 0x65, 0x70, 0x6c, 0x61, 0x79, 0x2e, 0x76, 0x31, 0x2e, 0x43, 0x6c, 0x65, 0x61,
	0x72, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x18, 0x2e, 0x72, 0x65, 0x70, 0x6c, 0x61,
	0x79, 0x2e, 0x76, 0x31, 0x2e, 0x43, 0x6c, 0x65, 0x61, 0x72, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e,
	0x73, 0x65, 0x42, 0x3a, 0x5a, 0x38, 0x67, 0x69, 0x74, 0x68, 0x75, 0x62, 0x2e, 0x63, 0x6f, 0x6d,
	0x2f, 0x63, 0x61, 0x72, 0x74, 0x72, 0x69, 0x64, 0x67, 0x65, 0x2f, 0x72, 0x65, 0x70, 0x6c, 0x61,
	0x79, 0x2f, 0x70, 0x6b, 0x67, 0x2f, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x2f, 0x72, 0x65, 0x70, 0x6c,
	0x61, 0x79, 0x2f, 0x76, 0x31, 0x3b, 0x72, 0x65, 0x70, 0x6c, 0x61, 0x79, 0x76, 0x31, 0x62, 0x06,
	0x70, 0x72, 0x6f, 0x74, 0x6f, 0x33,
}

var (
	file_replay_v1_replay_proto_rawDescOnce sync.Once
	file_replay_v1_replay_proto_rawDescData = file_replay_v1_replay_proto_rawDesc
)

func file_replay_v1_replay_proto_rawDescGZIP() []byte {
	file_replay_v1_replay_proto_rawDescOnce.Do(func() {
		file_replay_v1_replay_proto_rawDescData = protoimpl.X.CompressGZIP(file_replay_v1_replay_proto_rawDescData)
	})
	return file_replay_v1_replay_proto_rawDescData
}

var file_replay_v1_replay_proto_msgTypes = make([]protoimpl.MessageInfo, 18)
var file_replay_v1_replay_proto_goTypes = []any{
	(*TransitionBatch)(nil),          // 0: replay.v1.TransitionBatch
	(*CreateBufferRequest)(nil),      // 1: replay.v1.CreateBufferRequest
	(*CreateBufferResponse)(nil),     // 2: replay.v1.CreateBufferResponse
	(*AppendRequest)(nil),            // 3: replay.v1.AppendRequest
	(*AppendResponse)(nil),           // 4: replay.v1.AppendResponse
	(*SampleRequest)(nil),            // 5: replay.v1.SampleRequest
	(*SampleResponse)(nil),           // 6: replay.v1.SampleResponse
	(*UpdatePrioritiesRequest)(nil),  // 7: replay.v1.UpdatePrioritiesRequest
	(*UpdatePrioritiesResponse)(nil), // 8: replay.v1.UpdatePrioritiesResponse
	(*GetEpisodeRequest)(nil),        // 9: replay.v1.GetEpisodeRequest
	(*GetEpisodeResponse)(nil),       // 10: replay.v1.GetEpisodeResponse
	(*DeleteEpisodeRequest)(nil),     // 11: replay.v1.DeleteEpisodeRequest
	(*DeleteEpisodeResponse)(nil),    // 12: replay.v1.DeleteEpisodeResponse
	(*GetStatsRequest)(nil),          // 13: replay.v1.GetStatsRequest
	(*BufferStats)(nil),              // 14: replay.v1.BufferStats
	(*GetStatsResponse)(nil),         // 15: replay.v1.GetStatsResponse
	(*ClearRequest)(nil),             // 16: replay.v1.ClearRequest
	(*ClearResponse)(nil),            // 17: replay.v1.ClearResponse
}
var file_replay_v1_replay_proto_depIdxs = []int32{
	0,  // 0: replay.v1.AppendRequest.batch:type_name -> replay.v1.TransitionBatch
	0,  // 1: replay.v1.SampleResponse.batch:type_name -> replay.v1.TransitionBatch
	0,  // 2: replay.v1.GetEpisodeResponse.batch:type_name -> replay.v1.TransitionBatch
	14, // 3: replay.v1.GetStatsResponse.buffers:type_name -> replay.v1.BufferStats
	1,  // 4: replay.v1.Replay.CreateBuffer:input_type -> replay.v1.CreateBufferRequest
	3,  // 5: replay.v1.Replay.Append:input_type -> replay.v1.AppendRequest
	5,  // 6: replay.v1.Replay.Sample:input_type -> replay.v1.SampleRequest
	7,  // 7: replay.v1.Replay.UpdatePriorities:input_type -> replay.v1.UpdatePrioritiesRequest
	9,  // 8: replay.v1.Replay.GetEpisode:input_type -> replay.v1.GetEpisodeRequest
	11, // 9: replay.v1.Replay.DeleteEpisode:input_type -> replay.v1.DeleteEpisodeRequest
	13, // 10: replay.v1.Replay.GetStats:input_type -> replay.v1.GetStatsRequest
	16, // 11: replay.v1.Replay.Clear:input_type -> replay.v1.ClearRequest
	2,  // 12: replay.v1.Replay.CreateBuffer:output_type -> replay.v1.CreateBufferResponse
	4,  // 13: replay.v1.Replay.Append:output_type -> replay.v1.AppendResponse
	6,  // 14: replay.v1.Replay.Sample:output_type -> replay.v1.SampleResponse
	8,  // 15: replay.v1.Replay.UpdatePriorities:output_type -> replay.v1.UpdatePrioritiesResponse
	10, // 16: replay.v1.Replay.GetEpisode:output_type -> replay.v1.GetEpisodeResponse
	12, // 17: replay.v1.Replay.DeleteEpisode:output_type -> replay.v1.DeleteEpisodeResponse
	15, // 18: replay.v1.Replay.GetStats:output_type -> replay.v1.GetStatsResponse
	17, // 19: replay.v1.Replay.Clear:output_type -> replay.v1.ClearResponse
	12, // [12:20] is the sub-list for method output_type
	4,  // [4:12] is the sub-list for method input_type
	4,  // [4:4] is the sub-list for extension type_name
	4,  // [4:4] is the sub-list for extension extendee
	0,  // [0:4] is the sub-list for field type_name
}

func init() { file_replay_v1_replay_proto_init() }
func file_replay_v1_replay_proto_init() {
	if File_replay_v1_replay_proto != nil {
		return
	}
	if !protoimpl.UnsafeEnabled {
		file_replay_v1_replay_proto_msgTypes[0].Exporter = func(v any, i int) any {
			switch v := v.(*TransitionBatch); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_replay_v1_replay_proto_msgTypes[1].Exporter = func(v any, i int) any {
			switch v := v.(*CreateBufferRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_replay_v1_replay_proto_msgTypes[2].Exporter = func(v any, i int) any {
			switch v := v.(*CreateBufferResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_replay_v1_replay_proto_msgTypes[3].Exporter = func(v any, i int) any {
			switch v := v.(*AppendRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_replay_v1_replay_proto_msgTypes[4].Exporter = func(v any, i int) any {
			switch v := v.(*AppendResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_replay_v1_replay_proto_msgTypes[5].Exporter = func(v any, i int) any {
			switch v := v.(*SampleRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_replay_v1_replay_proto_msgTypes[6].Exporter = func(v any, i int) any {
			switch v := v.(*SampleResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_replay_v1_replay_proto_msgTypes[7].Exporter = func(v any, i int) any {
			switch v := v.(*UpdatePrioritiesRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_replay_v1_replay_proto_msgTypes[8].Exporter = func(v any, i int) any {
			switch v := v.(*UpdatePrioritiesResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_replay_v1_replay_proto_msgTypes[9].Exporter = func(v any, i int) any {
			switch v := v.(*GetEpisodeRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_replay_v1_replay_proto_msgTypes[10].Exporter = func(v any, i int) any {
			switch v := v.(*GetEpisodeResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_replay_v1_replay_proto_msgTypes[11].Exporter = func(v any, i int) any {
			switch v := v.(*DeleteEpisodeRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_replay_v1_replay_proto_msgTypes[12].Exporter = func(v any, i int) any {
			switch v := v.(*DeleteEpisodeResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_replay_v1_replay_proto_msgTypes[13].Exporter = func(v any, i int) any {
			switch v := v.(*GetStatsRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_replay_v1_replay_proto_msgTypes[14].Exporter = func(v any, i int) any {
			switch v := v.(*BufferStats); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_replay_v1_replay_proto_msgTypes[15].Exporter = func(v any, i int) any {
			switch v := v.(*GetStatsResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_replay_v1_replay_proto_msgTypes[16].Exporter = func(v any, i int) any {
			switch v := v.(*ClearRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_replay_v1_replay_proto_msgTypes[17].Exporter = func(v any, i int) any {
			switch v := v.(*ClearResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: file_replay_v1_replay_proto_rawDesc,
			NumEnums:      0,
			NumMessages:   18,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_replay_v1_replay_proto_goTypes,
		DependencyIndexes: file_replay_v1_replay_proto_depIdxs,
		MessageInfos:      file_replay_v1_replay_proto_msgTypes,
	}.Build()
	File_replay_v1_replay_proto = out.File
	file_replay_v1_replay_proto_rawDesc = nil
	file_replay_v1_replay_proto_goTypes = nil
	file_replay_v1_replay_proto_depIdxs = nil
}
