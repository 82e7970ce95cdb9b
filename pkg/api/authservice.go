package api

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"
)

// AuthServiceName is the fully-qualified name of the AuthService service.
const AuthServiceName = "gradebook.v1.AuthService"

// AuthServiceLoginProcedure is the procedure name of AuthService.Login.
const AuthServiceLoginProcedure = "/gradebook.v1.AuthService/Login"

// AuthServiceHandler is implemented by the server.
type AuthServiceHandler interface {
	Login(context.Context, *connect.Request[LoginRequest]) (*connect.Response[LoginResponse], error)
}

// NewAuthServiceHandler builds an HTTP handler from the service implementation.
func NewAuthServiceHandler(svc AuthServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = withCodec(opts)
	return "/" + AuthServiceName + "/", routeProcedures(map[string]http.Handler{
		AuthServiceLoginProcedure: connect.NewUnaryHandler(AuthServiceLoginProcedure, svc.Login, opts...),
	})
}

// AuthServiceClient is a client for the gradebook.v1.AuthService service.
type AuthServiceClient struct {
	login *connect.Client[LoginRequest, LoginResponse]
}

// NewAuthServiceClient constructs a client for the AuthService.
func NewAuthServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *AuthServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(Codec{})}, opts...)
	return &AuthServiceClient{
		login: connect.NewClient[LoginRequest, LoginResponse](httpClient, baseURL+AuthServiceLoginProcedure, opts...),
	}
}

func (c *AuthServiceClient) Login(ctx context.Context, req *connect.Request[LoginRequest]) (*connect.Response[LoginResponse], error) {
	return c.login.CallUnary(ctx, req)
}
