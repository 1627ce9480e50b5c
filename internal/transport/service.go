// Package transport exposes the builder service over gRPC and REST.
package transport

import (
	"context"

	"google.golang.org/grpc"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "blockforge.v1.BuilderService"

// BuilderServer is the server API of the builder service.
type BuilderServer interface {
	Health(context.Context, *HealthRequest) (*HealthResponse, error)
	Catalog(context.Context, *CatalogRequest) (*CatalogResponse, error)
	Toolbox(context.Context, *ToolboxRequest) (*ToolboxResponse, error)
	GenerateFromBlocks(context.Context, *GenerateRequest) (*GenerateResponse, error)
	RenderTemplate(context.Context, *TemplateRequest) (*SourceResponse, error)
	ComposeFeatures(context.Context, *ComposeRequest) (*SourceResponse, error)
	Validate(context.Context, *ValidateRequest) (*ValidateResponse, error)
	Deploy(context.Context, *DeployRequest) (*DeploymentResponse, error)
	GetDeployment(context.Context, *GetDeploymentRequest) (*DeploymentResponse, error)
	ListDeployments(context.Context, *ListDeploymentsRequest) (*ListDeploymentsResponse, error)
}

// BuilderServiceDesc describes the builder service for grpc.Server.RegisterService.
var BuilderServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*BuilderServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("Health", BuilderServer.Health),
		unary("Catalog", BuilderServer.Catalog),
		unary("Toolbox", BuilderServer.Toolbox),
		unary("GenerateFromBlocks", BuilderServer.GenerateFromBlocks),
		unary("RenderTemplate", BuilderServer.RenderTemplate),
		unary("ComposeFeatures", BuilderServer.ComposeFeatures),
		unary("Validate", BuilderServer.Validate),
		unary("Deploy", BuilderServer.Deploy),
		unary("GetDeployment", BuilderServer.GetDeployment),
		unary("ListDeployments", BuilderServer.ListDeployments),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "blockforge/v1/builder",
}

// RegisterBuilderServer registers srv on s.
func RegisterBuilderServer(s grpc.ServiceRegistrar, srv BuilderServer) {
	s.RegisterService(&BuilderServiceDesc, srv)
}

func fullMethod(name string) string {
	return "/" + ServiceName + "/" + name
}

func unary[Req, Resp any](name string, call func(BuilderServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(BuilderServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: fullMethod(name),
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(BuilderServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// BuilderClient calls a remote builder service. It implements BuilderServer
// so the REST gateway can proxy to a gRPC endpoint.
type BuilderClient struct {
	cc grpc.ClientConnInterface
}

// NewBuilderClient returns a BuilderClient over cc.
func NewBuilderClient(cc grpc.ClientConnInterface) *BuilderClient {
	return &BuilderClient{cc: cc}
}

func invoke[Req, Resp any](ctx context.Context, cc grpc.ClientConnInterface, name string, in *Req) (*Resp, error) {
	out := new(Resp)
	if err := cc.Invoke(ctx, fullMethod(name), in, out, grpc.CallContentSubtype(CodecName)); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *BuilderClient) Health(ctx context.Context, in *HealthRequest) (*HealthResponse, error) {
	return invoke[HealthRequest, HealthResponse](ctx, c.cc, "Health", in)
}

func (c *BuilderClient) Catalog(ctx context.Context, in *CatalogRequest) (*CatalogResponse, error) {
	return invoke[CatalogRequest, CatalogResponse](ctx, c.cc, "Catalog", in)
}

func (c *BuilderClient) Toolbox(ctx context.Context, in *ToolboxRequest) (*ToolboxResponse, error) {
	return invoke[ToolboxRequest, ToolboxResponse](ctx, c.cc, "Toolbox", in)
}

func (c *BuilderClient) GenerateFromBlocks(ctx context.Context, in *GenerateRequest) (*GenerateResponse, error) {
	return invoke[GenerateRequest, GenerateResponse](ctx, c.cc, "GenerateFromBlocks", in)
}

func (c *BuilderClient) RenderTemplate(ctx context.Context, in *TemplateRequest) (*SourceResponse, error) {
	return invoke[TemplateRequest, SourceResponse](ctx, c.cc, "RenderTemplate", in)
}

func (c *BuilderClient) ComposeFeatures(ctx context.Context, in *ComposeRequest) (*SourceResponse, error) {
	return invoke[ComposeRequest, SourceResponse](ctx, c.cc, "ComposeFeatures", in)
}

func (c *BuilderClient) Validate(ctx context.Context, in *ValidateRequest) (*ValidateResponse, error) {
	return invoke[ValidateRequest, ValidateResponse](ctx, c.cc, "Validate", in)
}

func (c *BuilderClient) Deploy(ctx context.Context, in *DeployRequest) (*DeploymentResponse, error) {
	return invoke[DeployRequest, DeploymentResponse](ctx, c.cc, "Deploy", in)
}

func (c *BuilderClient) GetDeployment(ctx context.Context, in *GetDeploymentRequest) (*DeploymentResponse, error) {
	return invoke[GetDeploymentRequest, DeploymentResponse](ctx, c.cc, "GetDeployment", in)
}

func (c *BuilderClient) ListDeployments(ctx context.Context, in *ListDeploymentsRequest) (*ListDeploymentsResponse, error) {
	return invoke[ListDeploymentsRequest, ListDeploymentsResponse](ctx, c.cc, "ListDeployments", in)
}
