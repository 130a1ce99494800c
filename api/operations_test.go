package api

import (
	"context"
	"net/http"
	"reflect"
	"testing"

	"github.com/Atomic-Germ/mcp-api-consumer/constants"
)

func TestAllOperationsRegistered(t *testing.T) {
	wantIDs := []string{
		constants.InterfaceIDImportSpec,
		constants.InterfaceIDHTTPRequest,
		constants.InterfaceIDListEndpoints,
		constants.InterfaceIDDescribeEndpoint,
		constants.InterfaceIDDocumentAPI,
		constants.InterfaceIDGenerateTests,
		constants.InterfaceIDMockServer,
		constants.InterfaceIDValidateResponse,
		constants.InterfaceIDGuide,
	}
	for _, id := range wantIDs {
		op, ok := GetOperation(id)
		if !ok {
			t.Errorf("operation %s not registered", id)
			continue
		}
		if op.Handler == nil {
			t.Errorf("operation %s has no handler", id)
		}
		if op.ArgsType == nil {
			t.Errorf("operation %s has no args type", id)
		}
		if op.MCPName == "" {
			t.Errorf("operation %s has no MCP name", id)
		}
		if op.HTTPMethod == "" || op.HTTPPath == "" {
			t.Errorf("operation %s has no HTTP binding", id)
		}
	}
	if len(GetAllOperations()) != len(wantIDs) {
		t.Errorf("registry holds %d operations, want %d", len(GetAllOperations()), len(wantIDs))
	}
}

func TestGetOperationMissing(t *testing.T) {
	if _, ok := GetOperation("nope"); ok {
		t.Error("expected lookup miss for unknown ID")
	}
}

func TestOperationArgTypes(t *testing.T) {
	op, _ := GetOperation(constants.InterfaceIDImportSpec)
	if op.ArgsType != reflect.TypeOf(ImportSpecArgs{}) {
		t.Errorf("importSpec args type = %v", op.ArgsType)
	}
	op, _ = GetOperation(constants.InterfaceIDHTTPRequest)
	if op.ArgsType != reflect.TypeOf(HTTPRequestArgs{}) {
		t.Errorf("httpRequest args type = %v", op.ArgsType)
	}
	op, _ = GetOperation(constants.InterfaceIDListEndpoints)
	if op.ArgsType != reflect.TypeOf(ListEndpointsArgs{}) {
		t.Errorf("listEndpoints args type = %v", op.ArgsType)
	}
	op, _ = GetOperation(constants.InterfaceIDDescribeEndpoint)
	if op.ArgsType != reflect.TypeOf(DescribeEndpointArgs{}) {
		t.Errorf("describeEndpoint args type = %v", op.ArgsType)
	}
}

func TestPendingOperations(t *testing.T) {
	svc := NewAPIService()
	cases := map[string]string{
		constants.InterfaceIDGenerateTests:    constants.MsgGenerateTestsPending,
		constants.InterfaceIDMockServer:       constants.MsgMockServerPending,
		constants.InterfaceIDValidateResponse: constants.MsgValidateResponsePending,
	}
	for id, want := range cases {
		op, ok := GetOperation(id)
		if !ok {
			t.Fatalf("operation %s not registered", id)
		}
		result, err := op.Handler(context.Background(), svc, &EmptyArgs{})
		if err != nil {
			t.Errorf("%s handler failed: %v", id, err)
		}
		if result != want {
			t.Errorf("%s handler = %v, want %q", id, result, want)
		}
		if op.HTTPHandler == nil {
			t.Errorf("%s should answer 501 over HTTP", id)
		}
	}
}

func TestGuideOperation(t *testing.T) {
	op, ok := GetOperation(constants.InterfaceIDGuide)
	if !ok {
		t.Fatal("guide operation not registered")
	}
	result, err := op.Handler(context.Background(), NewAPIService(), &EmptyArgs{})
	if err != nil {
		t.Fatalf("guide handler failed: %v", err)
	}
	guide, ok := result.(string)
	if !ok || guide == "" {
		t.Error("guide should return the embedded usage text")
	}
	if op.HTTPHandler == nil {
		t.Error("guide should have a custom HTTP handler for markdown output")
	}
	if op.HTTPMethod != http.MethodGet {
		t.Errorf("guide method = %s", op.HTTPMethod)
	}
}
