// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: policypulse/v1/analysis.proto

package policypulsev1

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

type BillContext struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	BillNumber    string                 `protobuf:"bytes,1,opt,name=bill_number,json=billNumber,proto3" json:"bill_number,omitempty"`
	Title         string                 `protobuf:"bytes,2,opt,name=title,proto3" json:"title,omitempty"`
	Description   string                 `protobuf:"bytes,3,opt,name=description,proto3" json:"description,omitempty"`
	GovtType      string                 `protobuf:"bytes,4,opt,name=govt_type,json=govtType,proto3" json:"govt_type,omitempty"`
	GovtSource    string                 `protobuf:"bytes,5,opt,name=govt_source,json=govtSource,proto3" json:"govt_source,omitempty"`
	BillStatus    string                 `protobuf:"bytes,6,opt,name=bill_status,json=billStatus,proto3" json:"bill_status,omitempty"`
	Url           string                 `protobuf:"bytes,7,opt,name=url,proto3" json:"url,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BillContext) Reset() {
	*x = BillContext{}
	mi := &file_policypulse_v1_analysis_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BillContext) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BillContext) ProtoMessage() {}

func (x *BillContext) ProtoReflect() protoreflect.Message {
	mi := &file_policypulse_v1_analysis_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BillContext.ProtoReflect.Descriptor instead.
func (*BillContext) Descriptor() ([]byte, []int) {
	return file_policypulse_v1_analysis_proto_rawDescGZIP(), []int{0}
}

func (x *BillContext) GetBillNumber() string {
	if x != nil {
		return x.BillNumber
	}
	return ""
}

func (x *BillContext) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *BillContext) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *BillContext) GetGovtType() string {
	if x != nil {
		return x.GovtType
	}
	return ""
}

func (x *BillContext) GetGovtSource() string {
	if x != nil {
		return x.GovtSource
	}
	return ""
}

func (x *BillContext) GetBillStatus() string {
	if x != nil {
		return x.BillStatus
	}
	return ""
}

func (x *BillContext) GetUrl() string {
	if x != nil {
		return x.Url
	}
	return ""
}

type AnalyzeRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// identifier of the bill in the upstream tracking system
	ExternalId string       `protobuf:"bytes,1,opt,name=external_id,json=externalId,proto3" json:"external_id,omitempty"`
	Bill       *BillContext `protobuf:"bytes,2,opt,name=bill,proto3" json:"bill,omitempty"`
	Content    []byte       `protobuf:"bytes,3,opt,name=content,proto3" json:"content,omitempty"`
	// TEXT or PDF
	ContentKind   string `protobuf:"bytes,4,opt,name=content_kind,json=contentKind,proto3" json:"content_kind,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AnalyzeRequest) Reset() {
	*x = AnalyzeRequest{}
	mi := &file_policypulse_v1_analysis_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AnalyzeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AnalyzeRequest) ProtoMessage() {}

func (x *AnalyzeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_policypulse_v1_analysis_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AnalyzeRequest.ProtoReflect.Descriptor instead.
func (*AnalyzeRequest) Descriptor() ([]byte, []int) {
	return file_policypulse_v1_analysis_proto_rawDescGZIP(), []int{1}
}

func (x *AnalyzeRequest) GetExternalId() string {
	if x != nil {
		return x.ExternalId
	}
	return ""
}

func (x *AnalyzeRequest) GetBill() *BillContext {
	if x != nil {
		return x.Bill
	}
	return nil
}

func (x *AnalyzeRequest) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

func (x *AnalyzeRequest) GetContentKind() string {
	if x != nil {
		return x.ContentKind
	}
	return ""
}

type AnalysisVersion struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	LegislationId string                 `protobuf:"bytes,2,opt,name=legislation_id,json=legislationId,proto3" json:"legislation_id,omitempty"`
	VersionNumber int32                  `protobuf:"varint,3,opt,name=version_number,json=versionNumber,proto3" json:"version_number,omitempty"`
	PredecessorId string                 `protobuf:"bytes,4,opt,name=predecessor_id,json=predecessorId,proto3" json:"predecessor_id,omitempty"`
	Fingerprint   string                 `protobuf:"bytes,5,opt,name=fingerprint,proto3" json:"fingerprint,omitempty"`
	ModelName     string                 `protobuf:"bytes,6,opt,name=model_name,json=modelName,proto3" json:"model_name,omitempty"`
	SchemaVersion string                 `protobuf:"bytes,7,opt,name=schema_version,json=schemaVersion,proto3" json:"schema_version,omitempty"`
	// canonical StructuredAnalysis document
	AnalysisJson     string  `protobuf:"bytes,8,opt,name=analysis_json,json=analysisJson,proto3" json:"analysis_json,omitempty"`
	Confidence       float64 `protobuf:"fixed64,9,opt,name=confidence,proto3" json:"confidence,omitempty"`
	ImpactLevel      string  `protobuf:"bytes,10,opt,name=impact_level,json=impactLevel,proto3" json:"impact_level,omitempty"`
	InsufficientText bool    `protobuf:"varint,11,opt,name=insufficient_text,json=insufficientText,proto3" json:"insufficient_text,omitempty"`
	Chunked          bool    `protobuf:"varint,12,opt,name=chunked,proto3" json:"chunked,omitempty"`
	ChunkCount       int32   `protobuf:"varint,13,opt,name=chunk_count,json=chunkCount,proto3" json:"chunk_count,omitempty"`
	DroppedChunks    []int32 `protobuf:"varint,14,rep,packed,name=dropped_chunks,json=droppedChunks,proto3" json:"dropped_chunks,omitempty"`
	ProcessingMs     int64   `protobuf:"varint,15,opt,name=processing_ms,json=processingMs,proto3" json:"processing_ms,omitempty"`
	CreatedAt        string  `protobuf:"bytes,16,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *AnalysisVersion) Reset() {
	*x = AnalysisVersion{}
	mi := &file_policypulse_v1_analysis_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AnalysisVersion) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AnalysisVersion) ProtoMessage() {}

func (x *AnalysisVersion) ProtoReflect() protoreflect.Message {
	mi := &file_policypulse_v1_analysis_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AnalysisVersion.ProtoReflect.Descriptor instead.
func (*AnalysisVersion) Descriptor() ([]byte, []int) {
	return file_policypulse_v1_analysis_proto_rawDescGZIP(), []int{2}
}

func (x *AnalysisVersion) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *AnalysisVersion) GetLegislationId() string {
	if x != nil {
		return x.LegislationId
	}
	return ""
}

func (x *AnalysisVersion) GetVersionNumber() int32 {
	if x != nil {
		return x.VersionNumber
	}
	return 0
}

func (x *AnalysisVersion) GetPredecessorId() string {
	if x != nil {
		return x.PredecessorId
	}
	return ""
}

func (x *AnalysisVersion) GetFingerprint() string {
	if x != nil {
		return x.Fingerprint
	}
	return ""
}

func (x *AnalysisVersion) GetModelName() string {
	if x != nil {
		return x.ModelName
	}
	return ""
}

func (x *AnalysisVersion) GetSchemaVersion() string {
	if x != nil {
		return x.SchemaVersion
	}
	return ""
}

func (x *AnalysisVersion) GetAnalysisJson() string {
	if x != nil {
		return x.AnalysisJson
	}
	return ""
}

func (x *AnalysisVersion) GetConfidence() float64 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *AnalysisVersion) GetImpactLevel() string {
	if x != nil {
		return x.ImpactLevel
	}
	return ""
}

func (x *AnalysisVersion) GetInsufficientText() bool {
	if x != nil {
		return x.InsufficientText
	}
	return false
}

func (x *AnalysisVersion) GetChunked() bool {
	if x != nil {
		return x.Chunked
	}
	return false
}

func (x *AnalysisVersion) GetChunkCount() int32 {
	if x != nil {
		return x.ChunkCount
	}
	return 0
}

func (x *AnalysisVersion) GetDroppedChunks() []int32 {
	if x != nil {
		return x.DroppedChunks
	}
	return nil
}

func (x *AnalysisVersion) GetProcessingMs() int64 {
	if x != nil {
		return x.ProcessingMs
	}
	return 0
}

func (x *AnalysisVersion) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type AnalyzeResponse struct {
	state   protoimpl.MessageState `protogen:"open.v1"`
	Version *AnalysisVersion       `protobuf:"bytes,1,opt,name=version,proto3" json:"version,omitempty"`
	// DONE, PARTIAL, or INSUFFICIENT
	Status        string `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	CacheHit      bool   `protobuf:"varint,3,opt,name=cache_hit,json=cacheHit,proto3" json:"cache_hit,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AnalyzeResponse) Reset() {
	*x = AnalyzeResponse{}
	mi := &file_policypulse_v1_analysis_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AnalyzeResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AnalyzeResponse) ProtoMessage() {}

func (x *AnalyzeResponse) ProtoReflect() protoreflect.Message {
	mi := &file_policypulse_v1_analysis_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AnalyzeResponse.ProtoReflect.Descriptor instead.
func (*AnalyzeResponse) Descriptor() ([]byte, []int) {
	return file_policypulse_v1_analysis_proto_rawDescGZIP(), []int{3}
}

func (x *AnalyzeResponse) GetVersion() *AnalysisVersion {
	if x != nil {
		return x.Version
	}
	return nil
}

func (x *AnalyzeResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *AnalyzeResponse) GetCacheHit() bool {
	if x != nil {
		return x.CacheHit
	}
	return false
}

type GetAnalysisRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	LegislationId string                 `protobuf:"bytes,1,opt,name=legislation_id,json=legislationId,proto3" json:"legislation_id,omitempty"`
	VersionNumber int32                  `protobuf:"varint,2,opt,name=version_number,json=versionNumber,proto3" json:"version_number,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetAnalysisRequest) Reset() {
	*x = GetAnalysisRequest{}
	mi := &file_policypulse_v1_analysis_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetAnalysisRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetAnalysisRequest) ProtoMessage() {}

func (x *GetAnalysisRequest) ProtoReflect() protoreflect.Message {
	mi := &file_policypulse_v1_analysis_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetAnalysisRequest.ProtoReflect.Descriptor instead.
func (*GetAnalysisRequest) Descriptor() ([]byte, []int) {
	return file_policypulse_v1_analysis_proto_rawDescGZIP(), []int{4}
}

func (x *GetAnalysisRequest) GetLegislationId() string {
	if x != nil {
		return x.LegislationId
	}
	return ""
}

func (x *GetAnalysisRequest) GetVersionNumber() int32 {
	if x != nil {
		return x.VersionNumber
	}
	return 0
}

type GetAnalysisResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Version       *AnalysisVersion       `protobuf:"bytes,1,opt,name=version,proto3" json:"version,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetAnalysisResponse) Reset() {
	*x = GetAnalysisResponse{}
	mi := &file_policypulse_v1_analysis_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetAnalysisResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetAnalysisResponse) ProtoMessage() {}

func (x *GetAnalysisResponse) ProtoReflect() protoreflect.Message {
	mi := &file_policypulse_v1_analysis_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetAnalysisResponse.ProtoReflect.Descriptor instead.
func (*GetAnalysisResponse) Descriptor() ([]byte, []int) {
	return file_policypulse_v1_analysis_proto_rawDescGZIP(), []int{5}
}

func (x *GetAnalysisResponse) GetVersion() *AnalysisVersion {
	if x != nil {
		return x.Version
	}
	return nil
}

type ListVersionsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	LegislationId string                 `protobuf:"bytes,1,opt,name=legislation_id,json=legislationId,proto3" json:"legislation_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListVersionsRequest) Reset() {
	*x = ListVersionsRequest{}
	mi := &file_policypulse_v1_analysis_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListVersionsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListVersionsRequest) ProtoMessage() {}

func (x *ListVersionsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_policypulse_v1_analysis_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListVersionsRequest.ProtoReflect.Descriptor instead.
func (*ListVersionsRequest) Descriptor() ([]byte, []int) {
	return file_policypulse_v1_analysis_proto_rawDescGZIP(), []int{6}
}

func (x *ListVersionsRequest) GetLegislationId() string {
	if x != nil {
		return x.LegislationId
	}
	return ""
}

type ListVersionsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Versions      []*AnalysisVersion     `protobuf:"bytes,1,rep,name=versions,proto3" json:"versions,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListVersionsResponse) Reset() {
	*x = ListVersionsResponse{}
	mi := &file_policypulse_v1_analysis_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListVersionsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListVersionsResponse) ProtoMessage() {}

func (x *ListVersionsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_policypulse_v1_analysis_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListVersionsResponse.ProtoReflect.Descriptor instead.
func (*ListVersionsResponse) Descriptor() ([]byte, []int) {
	return file_policypulse_v1_analysis_proto_rawDescGZIP(), []int{7}
}

func (x *ListVersionsResponse) GetVersions() []*AnalysisVersion {
	if x != nil {
		return x.Versions
	}
	return nil
}

type ExportAnalysesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	LegislationId string                 `protobuf:"bytes,1,opt,name=legislation_id,json=legislationId,proto3" json:"legislation_id,omitempty"`
	CurrentOnly   bool                   `protobuf:"varint,2,opt,name=current_only,json=currentOnly,proto3" json:"current_only,omitempty"`
	// RFC 3339; empty means unbounded
	CreatedFrom   string `protobuf:"bytes,3,opt,name=created_from,json=createdFrom,proto3" json:"created_from,omitempty"`
	CreatedTo     string `protobuf:"bytes,4,opt,name=created_to,json=createdTo,proto3" json:"created_to,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportAnalysesRequest) Reset() {
	*x = ExportAnalysesRequest{}
	mi := &file_policypulse_v1_analysis_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportAnalysesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportAnalysesRequest) ProtoMessage() {}

func (x *ExportAnalysesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_policypulse_v1_analysis_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportAnalysesRequest.ProtoReflect.Descriptor instead.
func (*ExportAnalysesRequest) Descriptor() ([]byte, []int) {
	return file_policypulse_v1_analysis_proto_rawDescGZIP(), []int{8}
}

func (x *ExportAnalysesRequest) GetLegislationId() string {
	if x != nil {
		return x.LegislationId
	}
	return ""
}

func (x *ExportAnalysesRequest) GetCurrentOnly() bool {
	if x != nil {
		return x.CurrentOnly
	}
	return false
}

func (x *ExportAnalysesRequest) GetCreatedFrom() string {
	if x != nil {
		return x.CreatedFrom
	}
	return ""
}

func (x *ExportAnalysesRequest) GetCreatedTo() string {
	if x != nil {
		return x.CreatedTo
	}
	return ""
}

type ExportAnalysesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportAnalysesResponse) Reset() {
	*x = ExportAnalysesResponse{}
	mi := &file_policypulse_v1_analysis_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportAnalysesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportAnalysesResponse) ProtoMessage() {}

func (x *ExportAnalysesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_policypulse_v1_analysis_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportAnalysesResponse.ProtoReflect.Descriptor instead.
func (*ExportAnalysesResponse) Descriptor() ([]byte, []int) {
	return file_policypulse_v1_analysis_proto_rawDescGZIP(), []int{9}
}

func (x *ExportAnalysesResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_policypulse_v1_analysis_proto protoreflect.FileDescriptor

const file_policypulse_v1_analysis_proto_rawDesc = "" +
	"\n" +
	"\x1dpolicypulse/v1/analysis.proto\x12\x0epolicypulse.v1\"\xd7\x01\n" +
	"\vBillContext\x12\x1f\n" +
	"\vbill_number\x18\x01 \x01(\tR\n" +
	"billNumber\x12\x14\n" +
	"\x05title\x18\x02 \x01(\tR\x05title\x12 \n" +
	"\vdescription\x18\x03 \x01(\tR\vdescription\x12\x1b\n" +
	"\tgovt_type\x18\x04 \x01(\tR\bgovtType\x12\x1f\n" +
	"\vgovt_source\x18\x05 \x01(\tR\n" +
	"govtSource\x12\x1f\n" +
	"\vbill_status\x18\x06 \x01(\tR\n" +
	"billStatus\x12\x10\n" +
	"\x03url\x18\a \x01(\tR\x03url\"\x9f\x01\n" +
	"\x0eAnalyzeRequest\x12\x1f\n" +
	"\vexternal_id\x18\x01 \x01(\tR\n" +
	"externalId\x12/\n" +
	"\x04bill\x18\x02 \x01(\v2\x1b.policypulse.v1.BillContextR\x04bill\x12\x18\n" +
	"\acontent\x18\x03 \x01(\fR\acontent\x12!\n" +
	"\fcontent_kind\x18\x04 \x01(\tR\vcontentKind\"\xb9\x04\n" +
	"\x0fAnalysisVersion\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12%\n" +
	"\x0elegislation_id\x18\x02 \x01(\tR\rlegislationId\x12%\n" +
	"\x0eversion_number\x18\x03 \x01(\x05R\rversionNumber\x12%\n" +
	"\x0epredecessor_id\x18\x04 \x01(\tR\rpredecessorId\x12 \n" +
	"\vfingerprint\x18\x05 \x01(\tR\vfingerprint\x12\x1d\n" +
	"\n" +
	"model_name\x18\x06 \x01(\tR\tmodelName\x12%\n" +
	"\x0eschema_version\x18\a \x01(\tR\rschemaVersion\x12#\n" +
	"\ranalysis_json\x18\b \x01(\tR\fanalysisJson\x12\x1e\n" +
	"\n" +
	"confidence\x18\t \x01(\x01R\n" +
	"confidence\x12!\n" +
	"\fimpact_level\x18\n" +
	" \x01(\tR\vimpactLevel\x12+\n" +
	"\x11insufficient_text\x18\v \x01(\bR\x10insufficientText\x12\x18\n" +
	"\achunked\x18\f \x01(\bR\achunked\x12\x1f\n" +
	"\vchunk_count\x18\r \x01(\x05R\n" +
	"chunkCount\x12%\n" +
	"\x0edropped_chunks\x18\x0e \x03(\x05R\rdroppedChunks\x12#\n" +
	"\rprocessing_ms\x18\x0f \x01(\x03R\fprocessingMs\x12\x1d\n" +
	"\n" +
	"created_at\x18\x10 \x01(\tR\tcreatedAt\"\x81\x01\n" +
	"\x0fAnalyzeResponse\x129\n" +
	"\aversion\x18\x01 \x01(\v2\x1f.policypulse.v1.AnalysisVersionR\aversion\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\x12\x1b\n" +
	"\tcache_hit\x18\x03 \x01(\bR\bcacheHit\"b\n" +
	"\x12GetAnalysisRequest\x12%\n" +
	"\x0elegislation_id\x18\x01 \x01(\tR\rlegislationId\x12%\n" +
	"\x0eversion_number\x18\x02 \x01(\x05R\rversionNumber\"P\n" +
	"\x13GetAnalysisResponse\x129\n" +
	"\aversion\x18\x01 \x01(\v2\x1f.policypulse.v1.AnalysisVersionR\aversion\"<\n" +
	"\x13ListVersionsRequest\x12%\n" +
	"\x0elegislation_id\x18\x01 \x01(\tR\rlegislationId\"S\n" +
	"\x14ListVersionsResponse\x12;\n" +
	"\bversions\x18\x01 \x03(\v2\x1f.policypulse.v1.AnalysisVersionR\bversions\"\xa3\x01\n" +
	"\x15ExportAnalysesRequest\x12%\n" +
	"\x0elegislation_id\x18\x01 \x01(\tR\rlegislationId\x12!\n" +
	"\fcurrent_only\x18\x02 \x01(\bR\vcurrentOnly\x12!\n" +
	"\fcreated_from\x18\x03 \x01(\tR\vcreatedFrom\x12\x1d\n" +
	"\n" +
	"created_to\x18\x04 \x01(\tR\tcreatedTo\",\n" +
	"\x16ExportAnalysesResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx2\xf1\x02\n" +
	"\x0fAnalysisService\x12J\n" +
	"\aAnalyze\x12\x1e.policypulse.v1.AnalyzeRequest\x1a\x1f.policypulse.v1.AnalyzeResponse\x12V\n" +
	"\vGetAnalysis\x12\".policypulse.v1.GetAnalysisRequest\x1a#.policypulse.v1.GetAnalysisResponse\x12Y\n" +
	"\fListVersions\x12#.policypulse.v1.ListVersionsRequest\x1a$.policypulse.v1.ListVersionsResponse\x12_\n" +
	"\x0eExportAnalyses\x12%.policypulse.v1.ExportAnalysesRequest\x1a&.policypulse.v1.ExportAnalysesResponseBEZCgithub.com/policypulse/policypulse/gen/policypulse/v1;policypulsev1b\x06proto3"

var (
	file_policypulse_v1_analysis_proto_rawDescOnce sync.Once
	file_policypulse_v1_analysis_proto_rawDescData []byte
)

func file_policypulse_v1_analysis_proto_rawDescGZIP() []byte {
	file_policypulse_v1_analysis_proto_rawDescOnce.Do(func() {
		file_policypulse_v1_analysis_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_policypulse_v1_analysis_proto_rawDesc), len(file_policypulse_v1_analysis_proto_rawDesc)))
	})
	return file_policypulse_v1_analysis_proto_rawDescData
}

var file_policypulse_v1_analysis_proto_msgTypes = make([]protoimpl.MessageInfo, 10)
var file_policypulse_v1_analysis_proto_goTypes = []any{
	(*BillContext)(nil),            // 0: policypulse.v1.BillContext
	(*AnalyzeRequest)(nil),         // 1: policypulse.v1.AnalyzeRequest
	(*AnalysisVersion)(nil),        // 2: policypulse.v1.AnalysisVersion
	(*AnalyzeResponse)(nil),        // 3: policypulse.v1.AnalyzeResponse
	(*GetAnalysisRequest)(nil),     // 4: policypulse.v1.GetAnalysisRequest
	(*GetAnalysisResponse)(nil),    // 5: policypulse.v1.GetAnalysisResponse
	(*ListVersionsRequest)(nil),    // 6: policypulse.v1.ListVersionsRequest
	(*ListVersionsResponse)(nil),   // 7: policypulse.v1.ListVersionsResponse
	(*ExportAnalysesRequest)(nil),  // 8: policypulse.v1.ExportAnalysesRequest
	(*ExportAnalysesResponse)(nil), // 9: policypulse.v1.ExportAnalysesResponse
}
var file_policypulse_v1_analysis_proto_depIdxs = []int32{
	0, // 0: policypulse.v1.AnalyzeRequest.bill:type_name -> policypulse.v1.BillContext
	2, // 1: policypulse.v1.AnalyzeResponse.version:type_name -> policypulse.v1.AnalysisVersion
	2, // 2: policypulse.v1.GetAnalysisResponse.version:type_name -> policypulse.v1.AnalysisVersion
	2, // 3: policypulse.v1.ListVersionsResponse.versions:type_name -> policypulse.v1.AnalysisVersion
	1, // 4: policypulse.v1.AnalysisService.Analyze:input_type -> policypulse.v1.AnalyzeRequest
	4, // 5: policypulse.v1.AnalysisService.GetAnalysis:input_type -> policypulse.v1.GetAnalysisRequest
	6, // 6: policypulse.v1.AnalysisService.ListVersions:input_type -> policypulse.v1.ListVersionsRequest
	8, // 7: policypulse.v1.AnalysisService.ExportAnalyses:input_type -> policypulse.v1.ExportAnalysesRequest
	3, // 8: policypulse.v1.AnalysisService.Analyze:output_type -> policypulse.v1.AnalyzeResponse
	5, // 9: policypulse.v1.AnalysisService.GetAnalysis:output_type -> policypulse.v1.GetAnalysisResponse
	7, // 10: policypulse.v1.AnalysisService.ListVersions:output_type -> policypulse.v1.ListVersionsResponse
	9, // 11: policypulse.v1.AnalysisService.ExportAnalyses:output_type -> policypulse.v1.ExportAnalysesResponse
	8, // [8:12] is the sub-list for method output_type
	4, // [4:8] is the sub-list for method input_type
	4, // [4:4] is the sub-list for extension type_name
	4, // [4:4] is the sub-list for extension extendee
	0, // [0:4] is the sub-list for field type_name
}

func init() { file_policypulse_v1_analysis_proto_init() }
func file_policypulse_v1_analysis_proto_init() {
	if File_policypulse_v1_analysis_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_policypulse_v1_analysis_proto_rawDesc), len(file_policypulse_v1_analysis_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   10,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_policypulse_v1_analysis_proto_goTypes,
		DependencyIndexes: file_policypulse_v1_analysis_proto_depIdxs,
		MessageInfos:      file_policypulse_v1_analysis_proto_msgTypes,
	}.Build()
	File_policypulse_v1_analysis_proto = out.File
	file_policypulse_v1_analysis_proto_goTypes = nil
	file_policypulse_v1_analysis_proto_depIdxs = nil
}
