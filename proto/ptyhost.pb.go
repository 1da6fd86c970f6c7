// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: ptyhost.proto

package ptyhostv1

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

type DeliverRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Runtime       string                 `protobuf:"bytes,1,opt,name=runtime,proto3" json:"runtime,omitempty"`
	TriggerId     string                 `protobuf:"bytes,2,opt,name=trigger_id,json=triggerId,proto3" json:"trigger_id,omitempty"`
	ThreadId      string                 `protobuf:"bytes,3,opt,name=thread_id,json=threadId,proto3" json:"thread_id,omitempty"`
	Reason        string                 `protobuf:"bytes,4,opt,name=reason,proto3" json:"reason,omitempty"`
	Payload       string                 `protobuf:"bytes,5,opt,name=payload,proto3" json:"payload,omitempty"`
	ForceOverride bool                   `protobuf:"varint,6,opt,name=force_override,json=forceOverride,proto3" json:"force_override,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeliverRequest) Reset() {
	*x = DeliverRequest{}
	mi := &file_ptyhost_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeliverRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeliverRequest) ProtoMessage() {}

func (x *DeliverRequest) ProtoReflect() protoreflect.Message {
	mi := &file_ptyhost_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeliverRequest.ProtoReflect.Descriptor instead.
func (*DeliverRequest) Descriptor() ([]byte, []int) {
	return file_ptyhost_proto_rawDescGZIP(), []int{0}
}

func (x *DeliverRequest) GetRuntime() string {
	if x != nil {
		return x.Runtime
	}
	return ""
}

func (x *DeliverRequest) GetTriggerId() string {
	if x != nil {
		return x.TriggerId
	}
	return ""
}

func (x *DeliverRequest) GetThreadId() string {
	if x != nil {
		return x.ThreadId
	}
	return ""
}

func (x *DeliverRequest) GetReason() string {
	if x != nil {
		return x.Reason
	}
	return ""
}

func (x *DeliverRequest) GetPayload() string {
	if x != nil {
		return x.Payload
	}
	return ""
}

func (x *DeliverRequest) GetForceOverride() bool {
	if x != nil {
		return x.ForceOverride
	}
	return false
}

type DeliverResponse struct {
	state     protoimpl.MessageState `protogen:"open.v1"`
	Delivered bool                   `protobuf:"varint,1,opt,name=delivered,proto3" json:"delivered,omitempty"`
	// Set when delivered is false. Known codes: OPERATOR_BUSY,
	// TARGET_NOT_FOUND, PANE_DEAD, SEND_KEYS_ERROR, PAYLOAD_TOO_LARGE,
	// PAYLOAD_EMPTY, UNSUPPORTED_RUNTIME.
	ErrorCode     string            `protobuf:"bytes,2,opt,name=error_code,json=errorCode,proto3" json:"error_code,omitempty"`
	Details       map[string]string `protobuf:"bytes,3,rep,name=details,proto3" json:"details,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeliverResponse) Reset() {
	*x = DeliverResponse{}
	mi := &file_ptyhost_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeliverResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeliverResponse) ProtoMessage() {}

func (x *DeliverResponse) ProtoReflect() protoreflect.Message {
	mi := &file_ptyhost_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeliverResponse.ProtoReflect.Descriptor instead.
func (*DeliverResponse) Descriptor() ([]byte, []int) {
	return file_ptyhost_proto_rawDescGZIP(), []int{1}
}

func (x *DeliverResponse) GetDelivered() bool {
	if x != nil {
		return x.Delivered
	}
	return false
}

func (x *DeliverResponse) GetErrorCode() string {
	if x != nil {
		return x.ErrorCode
	}
	return ""
}

func (x *DeliverResponse) GetDetails() map[string]string {
	if x != nil {
		return x.Details
	}
	return nil
}

type ResumeSessionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	WorkspaceId   string                 `protobuf:"bytes,1,opt,name=workspace_id,json=workspaceId,proto3" json:"workspace_id,omitempty"`
	AgentId       string                 `protobuf:"bytes,2,opt,name=agent_id,json=agentId,proto3" json:"agent_id,omitempty"`
	SessionId     string                 `protobuf:"bytes,3,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	Runtime       string                 `protobuf:"bytes,4,opt,name=runtime,proto3" json:"runtime,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ResumeSessionRequest) Reset() {
	*x = ResumeSessionRequest{}
	mi := &file_ptyhost_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ResumeSessionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ResumeSessionRequest) ProtoMessage() {}

func (x *ResumeSessionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_ptyhost_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ResumeSessionRequest.ProtoReflect.Descriptor instead.
func (*ResumeSessionRequest) Descriptor() ([]byte, []int) {
	return file_ptyhost_proto_rawDescGZIP(), []int{2}
}

func (x *ResumeSessionRequest) GetWorkspaceId() string {
	if x != nil {
		return x.WorkspaceId
	}
	return ""
}

func (x *ResumeSessionRequest) GetAgentId() string {
	if x != nil {
		return x.AgentId
	}
	return ""
}

func (x *ResumeSessionRequest) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

func (x *ResumeSessionRequest) GetRuntime() string {
	if x != nil {
		return x.Runtime
	}
	return ""
}

type ResumeSessionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Ok            bool                   `protobuf:"varint,1,opt,name=ok,proto3" json:"ok,omitempty"`
	ErrorCode     string                 `protobuf:"bytes,2,opt,name=error_code,json=errorCode,proto3" json:"error_code,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ResumeSessionResponse) Reset() {
	*x = ResumeSessionResponse{}
	mi := &file_ptyhost_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ResumeSessionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ResumeSessionResponse) ProtoMessage() {}

func (x *ResumeSessionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_ptyhost_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ResumeSessionResponse.ProtoReflect.Descriptor instead.
func (*ResumeSessionResponse) Descriptor() ([]byte, []int) {
	return file_ptyhost_proto_rawDescGZIP(), []int{3}
}

func (x *ResumeSessionResponse) GetOk() bool {
	if x != nil {
		return x.Ok
	}
	return false
}

func (x *ResumeSessionResponse) GetErrorCode() string {
	if x != nil {
		return x.ErrorCode
	}
	return ""
}

type SpawnSessionRequest struct {
	state       protoimpl.MessageState `protogen:"open.v1"`
	WorkspaceId string                 `protobuf:"bytes,1,opt,name=workspace_id,json=workspaceId,proto3" json:"workspace_id,omitempty"`
	AgentId     string                 `protobuf:"bytes,2,opt,name=agent_id,json=agentId,proto3" json:"agent_id,omitempty"`
	Prompt      string                 `protobuf:"bytes,3,opt,name=prompt,proto3" json:"prompt,omitempty"`
	// When true the daemon returns as soon as the child pid is known;
	// otherwise it blocks until the child exits.
	Detached      bool `protobuf:"varint,4,opt,name=detached,proto3" json:"detached,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SpawnSessionRequest) Reset() {
	*x = SpawnSessionRequest{}
	mi := &file_ptyhost_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SpawnSessionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SpawnSessionRequest) ProtoMessage() {}

func (x *SpawnSessionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_ptyhost_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SpawnSessionRequest.ProtoReflect.Descriptor instead.
func (*SpawnSessionRequest) Descriptor() ([]byte, []int) {
	return file_ptyhost_proto_rawDescGZIP(), []int{4}
}

func (x *SpawnSessionRequest) GetWorkspaceId() string {
	if x != nil {
		return x.WorkspaceId
	}
	return ""
}

func (x *SpawnSessionRequest) GetAgentId() string {
	if x != nil {
		return x.AgentId
	}
	return ""
}

func (x *SpawnSessionRequest) GetPrompt() string {
	if x != nil {
		return x.Prompt
	}
	return ""
}

func (x *SpawnSessionRequest) GetDetached() bool {
	if x != nil {
		return x.Detached
	}
	return false
}

type SpawnSessionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Ok            bool                   `protobuf:"varint,1,opt,name=ok,proto3" json:"ok,omitempty"`
	Pid           int64                  `protobuf:"varint,2,opt,name=pid,proto3" json:"pid,omitempty"`
	ExitCode      int32                  `protobuf:"varint,3,opt,name=exit_code,json=exitCode,proto3" json:"exit_code,omitempty"`
	ErrorCode     string                 `protobuf:"bytes,4,opt,name=error_code,json=errorCode,proto3" json:"error_code,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SpawnSessionResponse) Reset() {
	*x = SpawnSessionResponse{}
	mi := &file_ptyhost_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SpawnSessionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SpawnSessionResponse) ProtoMessage() {}

func (x *SpawnSessionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_ptyhost_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SpawnSessionResponse.ProtoReflect.Descriptor instead.
func (*SpawnSessionResponse) Descriptor() ([]byte, []int) {
	return file_ptyhost_proto_rawDescGZIP(), []int{5}
}

func (x *SpawnSessionResponse) GetOk() bool {
	if x != nil {
		return x.Ok
	}
	return false
}

func (x *SpawnSessionResponse) GetPid() int64 {
	if x != nil {
		return x.Pid
	}
	return 0
}

func (x *SpawnSessionResponse) GetExitCode() int32 {
	if x != nil {
		return x.ExitCode
	}
	return 0
}

func (x *SpawnSessionResponse) GetErrorCode() string {
	if x != nil {
		return x.ErrorCode
	}
	return ""
}

var File_ptyhost_proto protoreflect.FileDescriptor

const file_ptyhost_proto_rawDesc = "" +
	"\n" +
	"\rptyhost.proto\x12\n" +
	"ptyhost.v1\"\xbf\x01\n" +
	"\x0eDeliverRequest\x12\x18\n" +
	"\aruntime\x18\x01 \x01(\tR\aruntime\x12\x1d\n" +
	"\n" +
	"trigger_id\x18\x02 \x01(\tR\ttriggerId\x12\x1b\n" +
	"\tthread_id\x18\x03 \x01(\tR\bthreadId\x12\x16\n" +
	"\x06reason\x18\x04 \x01(\tR\x06reason\x12\x18\n" +
	"\apayload\x18\x05 \x01(\tR\apayload\x12%\n" +
	"\x0eforce_override\x18\x06 \x01(\bR\rforceOverride\"\xce\x01\n" +
	"\x0fDeliverResponse\x12\x1c\n" +
	"\tdelivered\x18\x01 \x01(\bR\tdelivered\x12\x1d\n" +
	"\n" +
	"error_code\x18\x02 \x01(\tR\terrorCode\x12B\n" +
	"\adetails\x18\x03 \x03(\v2(.ptyhost.v1.DeliverResponse.DetailsEntryR\adetails\x1a:\n" +
	"\fDetailsEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01\"\x8d\x01\n" +
	"\x14ResumeSessionRequest\x12!\n" +
	"\fworkspace_id\x18\x01 \x01(\tR\vworkspaceId\x12\x19\n" +
	"\bagent_id\x18\x02 \x01(\tR\aagentId\x12\x1d\n" +
	"\n" +
	"session_id\x18\x03 \x01(\tR\tsessionId\x12\x18\n" +
	"\aruntime\x18\x04 \x01(\tR\aruntime\"F\n" +
	"\x15ResumeSessionResponse\x12\x0e\n" +
	"\x02ok\x18\x01 \x01(\bR\x02ok\x12\x1d\n" +
	"\n" +
	"error_code\x18\x02 \x01(\tR\terrorCode\"\x87\x01\n" +
	"\x13SpawnSessionRequest\x12!\n" +
	"\fworkspace_id\x18\x01 \x01(\tR\vworkspaceId\x12\x19\n" +
	"\bagent_id\x18\x02 \x01(\tR\aagentId\x12\x16\n" +
	"\x06prompt\x18\x03 \x01(\tR\x06prompt\x12\x1a\n" +
	"\bdetached\x18\x04 \x01(\bR\bdetached\"t\n" +
	"\x14SpawnSessionResponse\x12\x0e\n" +
	"\x02ok\x18\x01 \x01(\bR\x02ok\x12\x10\n" +
	"\x03pid\x18\x02 \x01(\x03R\x03pid\x12\x1b\n" +
	"\texit_code\x18\x03 \x01(\x05R\bexitCode\x12\x1d\n" +
	"\n" +
	"error_code\x18\x04 \x01(\tR\terrorCode2\xfd\x01\n" +
	"\x0ePTYHostService\x12B\n" +
	"\aDeliver\x12\x1a.ptyhost.v1.DeliverRequest\x1a\x1b.ptyhost.v1.DeliverResponse\x12T\n" +
	"\rResumeSession\x12 .ptyhost.v1.ResumeSessionRequest\x1a!.ptyhost.v1.ResumeSessionResponse\x12Q\n" +
	"\fSpawnSession\x12\x1f.ptyhost.v1.SpawnSessionRequest\x1a .ptyhost.v1.SpawnSessionResponseB/Z-github.com/agentfabric/bridge/proto;ptyhostv1b\x06proto3"

var (
	file_ptyhost_proto_rawDescOnce sync.Once
	file_ptyhost_proto_rawDescData []byte
)

func file_ptyhost_proto_rawDescGZIP() []byte {
	file_ptyhost_proto_rawDescOnce.Do(func() {
		file_ptyhost_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_ptyhost_proto_rawDesc), len(file_ptyhost_proto_rawDesc)))
	})
	return file_ptyhost_proto_rawDescData
}

var file_ptyhost_proto_msgTypes = make([]protoimpl.MessageInfo, 7)
var file_ptyhost_proto_goTypes = []any{
	(*DeliverRequest)(nil),        // 0: ptyhost.v1.DeliverRequest
	(*DeliverResponse)(nil),       // 1: ptyhost.v1.DeliverResponse
	(*ResumeSessionRequest)(nil),  // 2: ptyhost.v1.ResumeSessionRequest
	(*ResumeSessionResponse)(nil), // 3: ptyhost.v1.ResumeSessionResponse
	(*SpawnSessionRequest)(nil),   // 4: ptyhost.v1.SpawnSessionRequest
	(*SpawnSessionResponse)(nil),  // 5: ptyhost.v1.SpawnSessionResponse
	nil,                           // 6: ptyhost.v1.DeliverResponse.DetailsEntry
}
var file_ptyhost_proto_depIdxs = []int32{
	6, // 0: ptyhost.v1.DeliverResponse.details:type_name -> ptyhost.v1.DeliverResponse.DetailsEntry
	0, // 1: ptyhost.v1.PTYHostService.Deliver:input_type -> ptyhost.v1.DeliverRequest
	2, // 2: ptyhost.v1.PTYHostService.ResumeSession:input_type -> ptyhost.v1.ResumeSessionRequest
	4, // 3: ptyhost.v1.PTYHostService.SpawnSession:input_type -> ptyhost.v1.SpawnSessionRequest
	1, // 4: ptyhost.v1.PTYHostService.Deliver:output_type -> ptyhost.v1.DeliverResponse
	3, // 5: ptyhost.v1.PTYHostService.ResumeSession:output_type -> ptyhost.v1.ResumeSessionResponse
	5, // 6: ptyhost.v1.PTYHostService.SpawnSession:output_type -> ptyhost.v1.SpawnSessionResponse
	4, // [4:7] is the sub-list for method output_type
	1, // [1:4] is the sub-list for method input_type
	1, // [1:1] is the sub-list for extension type_name
	1, // [1:1] is the sub-list for extension extendee
	0, // [0:1] is the sub-list for field type_name
}

func init() { file_ptyhost_proto_init() }
func file_ptyhost_proto_init() {
	if File_ptyhost_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_ptyhost_proto_rawDesc), len(file_ptyhost_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   7,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_ptyhost_proto_goTypes,
		DependencyIndexes: file_ptyhost_proto_depIdxs,
		MessageInfos:      file_ptyhost_proto_msgTypes,
	}.Build()
	File_ptyhost_proto = out.File
	file_ptyhost_proto_goTypes = nil
	file_ptyhost_proto_depIdxs = nil
}
