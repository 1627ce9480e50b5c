package transport

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"

	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type route struct {
	method  string
	pattern string
	handle  func(ctx context.Context, r *http.Request, params map[string]string) (any, error)
}

// NewGateway returns the REST handler for srv. It serves the builder routes,
// /metrics and CORS preflight requests.
func NewGateway(srv BuilderServer) (http.Handler, error) {
	gw := gwruntime.NewServeMux()
	marshaler := &gwruntime.JSONBuiltin{}

	for _, rt := range routes(srv, marshaler) {
		handle := rt.handle
		err := gw.HandlePath(rt.method, rt.pattern, func(w http.ResponseWriter, r *http.Request, params map[string]string) {
			ctx := r.Context()
			if id := r.Header.Get(RequestIDHeader); id != "" {
				ctx = metadata.AppendToOutgoingContext(ctx, RequestIDHeader, id)
			}
			resp, err := handle(ctx, r, params)
			if err != nil {
				writeError(w, marshaler, err)
				return
			}
			w.Header().Set("Content-Type", marshaler.ContentType(resp))
			w.WriteHeader(http.StatusOK)
			_ = marshaler.NewEncoder(w).Encode(resp)
		})
		if err != nil {
			return nil, err
		}
	}

	mux := http.NewServeMux()
	mux.Handle("/", gw)
	mux.Handle("/metrics", promhttp.Handler())
	return cors.Default().Handler(mux), nil
}

func routes(srv BuilderServer, m gwruntime.Marshaler) []route {
	return []route{
		{http.MethodGet, "/v1/health", func(ctx context.Context, _ *http.Request, _ map[string]string) (any, error) {
			return srv.Health(ctx, &HealthRequest{})
		}},
		{http.MethodGet, "/v1/catalog", func(ctx context.Context, _ *http.Request, _ map[string]string) (any, error) {
			return srv.Catalog(ctx, &CatalogRequest{})
		}},
		{http.MethodPost, "/v1/toolbox", func(ctx context.Context, r *http.Request, _ map[string]string) (any, error) {
			req := new(ToolboxRequest)
			if err := decode(m, r, req); err != nil {
				return nil, err
			}
			return srv.Toolbox(ctx, req)
		}},
		{http.MethodPost, "/v1/contracts/generate", func(ctx context.Context, r *http.Request, _ map[string]string) (any, error) {
			req := new(GenerateRequest)
			if err := decode(m, r, req); err != nil {
				return nil, err
			}
			return srv.GenerateFromBlocks(ctx, req)
		}},
		{http.MethodPost, "/v1/contracts/template", func(ctx context.Context, r *http.Request, _ map[string]string) (any, error) {
			req := new(TemplateRequest)
			if err := decode(m, r, req); err != nil {
				return nil, err
			}
			return srv.RenderTemplate(ctx, req)
		}},
		{http.MethodPost, "/v1/contracts/compose", func(ctx context.Context, r *http.Request, _ map[string]string) (any, error) {
			req := new(ComposeRequest)
			if err := decode(m, r, req); err != nil {
				return nil, err
			}
			return srv.ComposeFeatures(ctx, req)
		}},
		{http.MethodPost, "/v1/contracts/validate", func(ctx context.Context, r *http.Request, _ map[string]string) (any, error) {
			req := new(ValidateRequest)
			if err := decode(m, r, req); err != nil {
				return nil, err
			}
			return srv.Validate(ctx, req)
		}},
		{http.MethodPost, "/v1/deployments", func(ctx context.Context, r *http.Request, _ map[string]string) (any, error) {
			req := new(DeployRequest)
			if err := decode(m, r, req); err != nil {
				return nil, err
			}
			return srv.Deploy(ctx, req)
		}},
		{http.MethodGet, "/v1/deployments", func(ctx context.Context, r *http.Request, _ map[string]string) (any, error) {
			req := new(ListDeploymentsRequest)
			if v := r.URL.Query().Get("limit"); v != "" {
				limit, err := strconv.Atoi(v)
				if err != nil {
					return nil, status.Errorf(codes.InvalidArgument, "invalid limit %q", v)
				}
				req.Limit = limit
			}
			return srv.ListDeployments(ctx, req)
		}},
		{http.MethodGet, "/v1/deployments/{address}", func(ctx context.Context, _ *http.Request, params map[string]string) (any, error) {
			return srv.GetDeployment(ctx, &GetDeploymentRequest{Address: params["address"]})
		}},
	}
}

func decode(m gwruntime.Marshaler, r *http.Request, v any) error {
	if err := m.NewDecoder(r.Body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return status.Errorf(codes.InvalidArgument, "decode request body: %v", err)
	}
	return nil
}

func writeError(w http.ResponseWriter, m gwruntime.Marshaler, err error) {
	st := status.Convert(err)
	w.Header().Set("Content-Type", m.ContentType(nil))
	w.WriteHeader(gwruntime.HTTPStatusFromCode(st.Code()))
	_ = m.NewEncoder(w).Encode(errorBody{Code: st.Code().String(), Message: st.Message()})
}
