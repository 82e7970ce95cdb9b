package api

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"
)

// GradeServiceName is the fully-qualified name of the GradeService service.
const GradeServiceName = "gradebook.v1.GradeService"

// Procedure names of the GradeService RPCs.
const (
	GradeServiceCalculateSemesterProcedure = "/gradebook.v1.GradeService/CalculateSemester"
	GradeServiceSaveSemesterProcedure      = "/gradebook.v1.GradeService/SaveSemester"
	GradeServiceListSemestersProcedure     = "/gradebook.v1.GradeService/ListSemesters"
	GradeServiceDeleteSemesterProcedure    = "/gradebook.v1.GradeService/DeleteSemester"
	GradeServiceClearSemestersProcedure    = "/gradebook.v1.GradeService/ClearSemesters"
	GradeServiceSaveOverallProcedure       = "/gradebook.v1.GradeService/SaveOverall"
	GradeServiceListOverallsProcedure      = "/gradebook.v1.GradeService/ListOveralls"
	GradeServiceGetOverallProcedure        = "/gradebook.v1.GradeService/GetOverall"
	GradeServiceDeleteOverallProcedure     = "/gradebook.v1.GradeService/DeleteOverall"
	GradeServiceClearOverallsProcedure     = "/gradebook.v1.GradeService/ClearOveralls"
	GradeServiceAverageGPAProcedure        = "/gradebook.v1.GradeService/AverageGPA"
)

// GradeServiceHandler is implemented by the server.
type GradeServiceHandler interface {
	CalculateSemester(context.Context, *connect.Request[CalculateSemesterRequest]) (*connect.Response[CalculateSemesterResponse], error)
	SaveSemester(context.Context, *connect.Request[SaveSemesterRequest]) (*connect.Response[SaveSemesterResponse], error)
	ListSemesters(context.Context, *connect.Request[ListSemestersRequest]) (*connect.Response[ListSemestersResponse], error)
	DeleteSemester(context.Context, *connect.Request[DeleteSemesterRequest]) (*connect.Response[DeleteSemesterResponse], error)
	ClearSemesters(context.Context, *connect.Request[ClearSemestersRequest]) (*connect.Response[ClearSemestersResponse], error)
	SaveOverall(context.Context, *connect.Request[SaveOverallRequest]) (*connect.Response[SaveOverallResponse], error)
	ListOveralls(context.Context, *connect.Request[ListOverallsRequest]) (*connect.Response[ListOverallsResponse], error)
	GetOverall(context.Context, *connect.Request[GetOverallRequest]) (*connect.Response[GetOverallResponse], error)
	DeleteOverall(context.Context, *connect.Request[DeleteOverallRequest]) (*connect.Response[DeleteOverallResponse], error)
	ClearOveralls(context.Context, *connect.Request[ClearOverallsRequest]) (*connect.Response[ClearOverallsResponse], error)
	AverageGPA(context.Context, *connect.Request[AverageGPARequest]) (*connect.Response[AverageGPAResponse], error)
}

// NewGradeServiceHandler builds an HTTP handler from the service
// implementation. It returns the path on which to mount the handler and the
// handler itself.
func NewGradeServiceHandler(svc GradeServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = withCodec(opts)
	handlers := map[string]http.Handler{
		GradeServiceCalculateSemesterProcedure: connect.NewUnaryHandler(GradeServiceCalculateSemesterProcedure, svc.CalculateSemester, opts...),
		GradeServiceSaveSemesterProcedure:      connect.NewUnaryHandler(GradeServiceSaveSemesterProcedure, svc.SaveSemester, opts...),
		GradeServiceListSemestersProcedure:     connect.NewUnaryHandler(GradeServiceListSemestersProcedure, svc.ListSemesters, opts...),
		GradeServiceDeleteSemesterProcedure:    connect.NewUnaryHandler(GradeServiceDeleteSemesterProcedure, svc.DeleteSemester, opts...),
		GradeServiceClearSemestersProcedure:    connect.NewUnaryHandler(GradeServiceClearSemestersProcedure, svc.ClearSemesters, opts...),
		GradeServiceSaveOverallProcedure:       connect.NewUnaryHandler(GradeServiceSaveOverallProcedure, svc.SaveOverall, opts...),
		GradeServiceListOverallsProcedure:      connect.NewUnaryHandler(GradeServiceListOverallsProcedure, svc.ListOveralls, opts...),
		GradeServiceGetOverallProcedure:        connect.NewUnaryHandler(GradeServiceGetOverallProcedure, svc.GetOverall, opts...),
		GradeServiceDeleteOverallProcedure:     connect.NewUnaryHandler(GradeServiceDeleteOverallProcedure, svc.DeleteOverall, opts...),
		GradeServiceClearOverallsProcedure:     connect.NewUnaryHandler(GradeServiceClearOverallsProcedure, svc.ClearOveralls, opts...),
		GradeServiceAverageGPAProcedure:        connect.NewUnaryHandler(GradeServiceAverageGPAProcedure, svc.AverageGPA, opts...),
	}
	return "/" + GradeServiceName + "/", routeProcedures(handlers)
}

// GradeServiceClient is a client for the gradebook.v1.GradeService service.
type GradeServiceClient struct {
	calculateSemester *connect.Client[CalculateSemesterRequest, CalculateSemesterResponse]
	saveSemester      *connect.Client[SaveSemesterRequest, SaveSemesterResponse]
	listSemesters     *connect.Client[ListSemestersRequest, ListSemestersResponse]
	deleteSemester    *connect.Client[DeleteSemesterRequest, DeleteSemesterResponse]
	clearSemesters    *connect.Client[ClearSemestersRequest, ClearSemestersResponse]
	saveOverall       *connect.Client[SaveOverallRequest, SaveOverallResponse]
	listOveralls      *connect.Client[ListOverallsRequest, ListOverallsResponse]
	getOverall        *connect.Client[GetOverallRequest, GetOverallResponse]
	deleteOverall     *connect.Client[DeleteOverallRequest, DeleteOverallResponse]
	clearOveralls     *connect.Client[ClearOverallsRequest, ClearOverallsResponse]
	averageGPA        *connect.Client[AverageGPARequest, AverageGPAResponse]
}

// NewGradeServiceClient constructs a client for the GradeService. baseURL
// is the server's scheme and host, e.g. "http://localhost:8080".
func NewGradeServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *GradeServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(Codec{})}, opts...)
	return &GradeServiceClient{
		calculateSemester: connect.NewClient[CalculateSemesterRequest, CalculateSemesterResponse](httpClient, baseURL+GradeServiceCalculateSemesterProcedure, opts...),
		saveSemester:      connect.NewClient[SaveSemesterRequest, SaveSemesterResponse](httpClient, baseURL+GradeServiceSaveSemesterProcedure, opts...),
		listSemesters:     connect.NewClient[ListSemestersRequest, ListSemestersResponse](httpClient, baseURL+GradeServiceListSemestersProcedure, opts...),
		deleteSemester:    connect.NewClient[DeleteSemesterRequest, DeleteSemesterResponse](httpClient, baseURL+GradeServiceDeleteSemesterProcedure, opts...),
		clearSemesters:    connect.NewClient[ClearSemestersRequest, ClearSemestersResponse](httpClient, baseURL+GradeServiceClearSemestersProcedure, opts...),
		saveOverall:       connect.NewClient[SaveOverallRequest, SaveOverallResponse](httpClient, baseURL+GradeServiceSaveOverallProcedure, opts...),
		listOveralls:      connect.NewClient[ListOverallsRequest, ListOverallsResponse](httpClient, baseURL+GradeServiceListOverallsProcedure, opts...),
		getOverall:        connect.NewClient[GetOverallRequest, GetOverallResponse](httpClient, baseURL+GradeServiceGetOverallProcedure, opts...),
		deleteOverall:     connect.NewClient[DeleteOverallRequest, DeleteOverallResponse](httpClient, baseURL+GradeServiceDeleteOverallProcedure, opts...),
		clearOveralls:     connect.NewClient[ClearOverallsRequest, ClearOverallsResponse](httpClient, baseURL+GradeServiceClearOverallsProcedure, opts...),
		averageGPA:        connect.NewClient[AverageGPARequest, AverageGPAResponse](httpClient, baseURL+GradeServiceAverageGPAProcedure, opts...),
	}
}

func (c *GradeServiceClient) CalculateSemester(ctx context.Context, req *connect.Request[CalculateSemesterRequest]) (*connect.Response[CalculateSemesterResponse], error) {
	return c.calculateSemester.CallUnary(ctx, req)
}

func (c *GradeServiceClient) SaveSemester(ctx context.Context, req *connect.Request[SaveSemesterRequest]) (*connect.Response[SaveSemesterResponse], error) {
	return c.saveSemester.CallUnary(ctx, req)
}

func (c *GradeServiceClient) ListSemesters(ctx context.Context, req *connect.Request[ListSemestersRequest]) (*connect.Response[ListSemestersResponse], error) {
	return c.listSemesters.CallUnary(ctx, req)
}

func (c *GradeServiceClient) DeleteSemester(ctx context.Context, req *connect.Request[DeleteSemesterRequest]) (*connect.Response[DeleteSemesterResponse], error) {
	return c.deleteSemester.CallUnary(ctx, req)
}

func (c *GradeServiceClient) ClearSemesters(ctx context.Context, req *connect.Request[ClearSemestersRequest]) (*connect.Response[ClearSemestersResponse], error) {
	return c.clearSemesters.CallUnary(ctx, req)
}

func (c *GradeServiceClient) SaveOverall(ctx context.Context, req *connect.Request[SaveOverallRequest]) (*connect.Response[SaveOverallResponse], error) {
	return c.saveOverall.CallUnary(ctx, req)
}

func (c *GradeServiceClient) ListOveralls(ctx context.Context, req *connect.Request[ListOverallsRequest]) (*connect.Response[ListOverallsResponse], error) {
	return c.listOveralls.CallUnary(ctx, req)
}

func (c *GradeServiceClient) GetOverall(ctx context.Context, req *connect.Request[GetOverallRequest]) (*connect.Response[GetOverallResponse], error) {
	return c.getOverall.CallUnary(ctx, req)
}

func (c *GradeServiceClient) DeleteOverall(ctx context.Context, req *connect.Request[DeleteOverallRequest]) (*connect.Response[DeleteOverallResponse], error) {
	return c.deleteOverall.CallUnary(ctx, req)
}

func (c *GradeServiceClient) ClearOveralls(ctx context.Context, req *connect.Request[ClearOverallsRequest]) (*connect.Response[ClearOverallsResponse], error) {
	return c.clearOveralls.CallUnary(ctx, req)
}

func (c *GradeServiceClient) AverageGPA(ctx context.Context, req *connect.Request[AverageGPARequest]) (*connect.Response[AverageGPAResponse], error) {
	return c.averageGPA.CallUnary(ctx, req)
}

// withCodec puts the JSON codec first so callers can still override it.
func withCodec(opts []connect.HandlerOption) []connect.HandlerOption {
	return append([]connect.HandlerOption{connect.WithCodec(Codec{})}, opts...)
}

// routeProcedures dispatches on the exact procedure path.
func routeProcedures(handlers map[string]http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h, ok := handlers[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		h.ServeHTTP(w, r)
	})
}
