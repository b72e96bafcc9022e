// Code generated by protoc-gen-go from proto/aethel.proto. This copy is
// hand-maintained: this workspace has no network access to run protoc, so
// the message types below are written in the legacy protoc-gen-go shape
// (Reset/String/ProtoMessage plus `protobuf:` struct tags) that
// google.golang.org/protobuf's legacy compatibility layer derives message
// descriptors from at runtime via reflection, rather than from compiled-in
// descriptor bytes. Keep this file in sync with proto/aethel.proto by
// hand until protoc is available again.

package pb

import (
	"fmt"

	"google.golang.org/protobuf/protoadapt"
)

// CreateContainerRequest is the request message for AethelService.CreateContainer.
type CreateContainerRequest struct {
	ImageName string   `protobuf:"bytes,1,opt,name=image_name,json=imageName,proto3" json:"image_name,omitempty"`
	Name      string   `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Command   string   `protobuf:"bytes,3,opt,name=command,proto3" json:"command,omitempty"`
	Args      []string `protobuf:"bytes,4,rep,name=args,proto3" json:"args,omitempty"`
}

func (m *CreateContainerRequest) Reset()         { *m = CreateContainerRequest{} }
func (m *CreateContainerRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*CreateContainerRequest) ProtoMessage()    {}

func (m *CreateContainerRequest) GetImageName() string {
	if m != nil {
		return m.ImageName
	}
	return ""
}

func (m *CreateContainerRequest) GetName() string {
	if m != nil {
		return m.Name
	}
	return ""
}

func (m *CreateContainerRequest) GetCommand() string {
	if m != nil {
		return m.Command
	}
	return ""
}

func (m *CreateContainerRequest) GetArgs() []string {
	if m != nil {
		return m.Args
	}
	return nil
}

// GetContainerRequest is the request message for AethelService.GetContainer.
type GetContainerRequest struct {
	ContainerId string `protobuf:"bytes,1,opt,name=container_id,json=containerId,proto3" json:"container_id,omitempty"`
}

func (m *GetContainerRequest) Reset()         { *m = GetContainerRequest{} }
func (m *GetContainerRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*GetContainerRequest) ProtoMessage()    {}

func (m *GetContainerRequest) GetContainerId() string {
	if m != nil {
		return m.ContainerId
	}
	return ""
}

// ListContainersRequest is the (empty) request message for
// AethelService.ListContainers.
type ListContainersRequest struct{}

func (m *ListContainersRequest) Reset()         { *m = ListContainersRequest{} }
func (m *ListContainersRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*ListContainersRequest) ProtoMessage()    {}

// DeleteContainerRequest is the request message for AethelService.DeleteContainer.
type DeleteContainerRequest struct {
	ContainerId string `protobuf:"bytes,1,opt,name=container_id,json=containerId,proto3" json:"container_id,omitempty"`
}

func (m *DeleteContainerRequest) Reset()         { *m = DeleteContainerRequest{} }
func (m *DeleteContainerRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*DeleteContainerRequest) ProtoMessage()    {}

func (m *DeleteContainerRequest) GetContainerId() string {
	if m != nil {
		return m.ContainerId
	}
	return ""
}

// DeleteContainerResponse is the (empty) response message for
// AethelService.DeleteContainer.
type DeleteContainerResponse struct{}

func (m *DeleteContainerResponse) Reset()         { *m = DeleteContainerResponse{} }
func (m *DeleteContainerResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*DeleteContainerResponse) ProtoMessage()    {}

// StreamLogsRequest is the request message for AethelService.StreamLogs.
type StreamLogsRequest struct {
	ContainerId string `protobuf:"bytes,1,opt,name=container_id,json=containerId,proto3" json:"container_id,omitempty"`
}

func (m *StreamLogsRequest) Reset()         { *m = StreamLogsRequest{} }
func (m *StreamLogsRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*StreamLogsRequest) ProtoMessage()    {}

func (m *StreamLogsRequest) GetContainerId() string {
	if m != nil {
		return m.ContainerId
	}
	return ""
}

// LogEntry carries one chunk of a container's forwarded stdout/stderr.
type LogEntry struct {
	Entry string `protobuf:"bytes,1,opt,name=entry,proto3" json:"entry,omitempty"`
}

func (m *LogEntry) Reset()         { *m = LogEntry{} }
func (m *LogEntry) String() string { return fmt.Sprintf("%+v", *m) }
func (*LogEntry) ProtoMessage()    {}

func (m *LogEntry) GetEntry() string {
	if m != nil {
		return m.Entry
	}
	return ""
}

// ContainerInfo is the wire form of a container record (spec §6: "id,
// name, image, status, ip_address (all text)").
type ContainerInfo struct {
	Id        string `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name      string `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Image     string `protobuf:"bytes,3,opt,name=image,proto3" json:"image,omitempty"`
	Status    string `protobuf:"bytes,4,opt,name=status,proto3" json:"status,omitempty"`
	IpAddress string `protobuf:"bytes,5,opt,name=ip_address,json=ipAddress,proto3" json:"ip_address,omitempty"`
}

func (m *ContainerInfo) Reset()         { *m = ContainerInfo{} }
func (m *ContainerInfo) String() string { return fmt.Sprintf("%+v", *m) }
func (*ContainerInfo) ProtoMessage()    {}

func (m *ContainerInfo) GetId() string {
	if m != nil {
		return m.Id
	}
	return ""
}

func (m *ContainerInfo) GetName() string {
	if m != nil {
		return m.Name
	}
	return ""
}

func (m *ContainerInfo) GetImage() string {
	if m != nil {
		return m.Image
	}
	return ""
}

func (m *ContainerInfo) GetStatus() string {
	if m != nil {
		return m.Status
	}
	return ""
}

func (m *ContainerInfo) GetIpAddress() string {
	if m != nil {
		return m.IpAddress
	}
	return ""
}

// DaemonStatusRequest is the (empty) request message for
// AethelService.GetDaemonStatus.
type DaemonStatusRequest struct{}

func (m *DaemonStatusRequest) Reset()         { *m = DaemonStatusRequest{} }
func (m *DaemonStatusRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*DaemonStatusRequest) ProtoMessage()    {}

// DaemonStatusResponse carries the daemon's build/version information
// (spec §10's supplemented status/version probe).
type DaemonStatusResponse struct {
	GitRepo   string `protobuf:"bytes,1,opt,name=git_repo,json=gitRepo,proto3" json:"git_repo,omitempty"`
	GitBranch string `protobuf:"bytes,2,opt,name=git_branch,json=gitBranch,proto3" json:"git_branch,omitempty"`
	GitCommit string `protobuf:"bytes,3,opt,name=git_commit,json=gitCommit,proto3" json:"git_commit,omitempty"`
	BuildTime string `protobuf:"bytes,4,opt,name=build_time,json=buildTime,proto3" json:"build_time,omitempty"`
	GoVersion string `protobuf:"bytes,5,opt,name=go_version,json=goVersion,proto3" json:"go_version,omitempty"`
}

func (m *DaemonStatusResponse) Reset()         { *m = DaemonStatusResponse{} }
func (m *DaemonStatusResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*DaemonStatusResponse) ProtoMessage()    {}

func (m *DaemonStatusResponse) GetGitRepo() string {
	if m != nil {
		return m.GitRepo
	}
	return ""
}

func (m *DaemonStatusResponse) GetGitBranch() string {
	if m != nil {
		return m.GitBranch
	}
	return ""
}

func (m *DaemonStatusResponse) GetGitCommit() string {
	if m != nil {
		return m.GitCommit
	}
	return ""
}

func (m *DaemonStatusResponse) GetBuildTime() string {
	if m != nil {
		return m.BuildTime
	}
	return ""
}

func (m *DaemonStatusResponse) GetGoVersion() string {
	if m != nil {
		return m.GoVersion
	}
	return ""
}

// compile-time assertions that every message satisfies the legacy
// (Reset/String/ProtoMessage) message shape that pb.Codec bridges to the
// modern proto.Message via protoadapt.
var (
	_ protoadapt.MessageV1 = (*CreateContainerRequest)(nil)
	_ protoadapt.MessageV1 = (*GetContainerRequest)(nil)
	_ protoadapt.MessageV1 = (*ListContainersRequest)(nil)
	_ protoadapt.MessageV1 = (*DeleteContainerRequest)(nil)
	_ protoadapt.MessageV1 = (*DeleteContainerResponse)(nil)
	_ protoadapt.MessageV1 = (*StreamLogsRequest)(nil)
	_ protoadapt.MessageV1 = (*LogEntry)(nil)
	_ protoadapt.MessageV1 = (*ContainerInfo)(nil)
	_ protoadapt.MessageV1 = (*DaemonStatusRequest)(nil)
	_ protoadapt.MessageV1 = (*DaemonStatusResponse)(nil)
)
