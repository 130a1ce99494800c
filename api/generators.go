package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/Atomic-Germ/mcp-api-consumer/constants"
	mcpserver "github.com/Atomic-Germ/mcp-api-consumer/mcp"
	"github.com/Atomic-Germ/mcp-api-consumer/openapi"
	"github.com/Atomic-Germ/mcp-api-consumer/telemetry"
	"github.com/Atomic-Germ/mcp-api-consumer/utils"
	mcp "github.com/metoro-io/mcp-golang"
	"github.com/spf13/cobra"
)

// GenerateHTTPHandlers creates HTTP handlers for all operations and registers them
func GenerateHTTPHandlers(mux *http.ServeMux, svc APIService) {
	// Group operations by path to handle multiple methods on same path
	pathOperations := make(map[string][]*OperationDefinition)

	for _, op := range GetAllOperations() {
		if op.SkipHTTP {
			continue
		}
		pathOperations[op.HTTPPath] = append(pathOperations[op.HTTPPath], op)
	}

	for path, ops := range pathOperations {
		handler := generateCombinedHTTPHandler(ops, svc)
		mux.HandleFunc(path, handler)
	}
}

// generateCombinedHTTPHandler creates a combined HTTP handler for multiple operations on the same path
func generateCombinedHTTPHandler(ops []*OperationDefinition, svc APIService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var matchingOp *OperationDefinition
		for _, op := range ops {
			if op.HTTPMethod == r.Method {
				matchingOp = op
				break
			}
		}

		if matchingOp == nil {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		// Use custom handler if provided
		if matchingOp.HTTPHandler != nil {
			matchingOp.HTTPHandler(w, r, svc)
			return
		}

		args, err := parseHTTPArgs(r, matchingOp)
		if err != nil {
			utils.WriteHTTPError(w, fmt.Sprintf("invalid arguments: %v", err), http.StatusBadRequest)
			return
		}

		result, err := matchingOp.Handler(r.Context(), svc, args)
		if err != nil {
			writeHTTPOperationError(w, err)
			return
		}

		if err := utils.WriteHTTPJSON(w, result); err != nil {
			utils.ErrorCtx(r.Context(), "failed to encode response", "error", err)
		}
	}
}

// writeHTTPOperationError maps operation errors onto HTTP status codes.
// Caller mistakes (bad document, missing source, unknown source type) are
// 4xx; everything else is a 500.
func writeHTTPOperationError(w http.ResponseWriter, err error) {
	var ve *openapi.ValidationError
	if errors.As(err, &ve) {
		utils.WriteHTTPError(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	var ie *openapi.ImportError
	if errors.As(err, &ie) {
		utils.WriteHTTPError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if errors.Is(err, ErrSourceRequired) {
		utils.WriteHTTPError(w, err.Error(), http.StatusBadRequest)
		return
	}
	utils.WriteHTTPError(w, err.Error(), http.StatusInternalServerError)
}

// parseHTTPArgs parses HTTP request into operation arguments
func parseHTTPArgs(r *http.Request, op *OperationDefinition) (any, error) {
	args := reflect.New(op.ArgsType).Interface()

	switch op.HTTPMethod {
	case http.MethodGet:
		return parseGetArgs(r, args)
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		return parsePostArgs(r, args)
	default:
		return args, nil
	}
}

// parseGetArgs parses GET request arguments from query params
func parseGetArgs(r *http.Request, args any) (any, error) {
	v := reflect.ValueOf(args).Elem()
	t := v.Type()

	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		fieldType := t.Field(i)

		if !field.CanSet() {
			continue
		}

		jsonTag := jsonFieldName(fieldType)
		if jsonTag == "" {
			continue
		}
		if value := r.URL.Query().Get(jsonTag); value != "" {
			if err := setFieldValue(field, value); err != nil {
				return nil, err
			}
		}
	}

	return args, nil
}

// parsePostArgs parses POST request arguments from JSON body
func parsePostArgs(r *http.Request, args any) (any, error) {
	if strings.HasPrefix(r.Header.Get(constants.HeaderContentType), constants.ContentTypeJSON) {
		if err := json.NewDecoder(r.Body).Decode(args); err != nil {
			return nil, err
		}
	}
	return args, nil
}

func jsonFieldName(field reflect.StructField) string {
	tag := field.Tag.Get("json")
	if tag == "" || tag == "-" {
		return ""
	}
	if idx := strings.Index(tag, ","); idx != -1 {
		tag = tag[:idx]
	}
	return tag
}

// setFieldValue sets a reflect.Value from a string
func setFieldValue(field reflect.Value, value string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(value)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return err
		}
		field.SetInt(i)
	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return err
		}
		field.SetBool(b)
	case reflect.Map, reflect.Interface:
		// JSON-encoded composite value
		target := reflect.New(field.Type())
		if err := json.Unmarshal([]byte(value), target.Interface()); err != nil {
			return err
		}
		field.Set(target.Elem())
	default:
		return fmt.Errorf("unsupported field type: %v", field.Kind())
	}
	return nil
}

// GenerateMCPTools creates MCP tool registrations for all operations
func GenerateMCPTools(svc APIService) []mcpserver.ToolRegistration {
	var tools []mcpserver.ToolRegistration

	for _, op := range GetAllOperations() {
		if op.SkipMCP {
			continue
		}
		tools = append(tools, mcpserver.ToolRegistration{
			Name:        op.MCPName,
			Description: op.Description,
			Handler:     generateMCPHandler(op, svc),
		})
	}

	return tools
}

var (
	ctxType     = reflect.TypeOf((*context.Context)(nil)).Elem()
	errType     = reflect.TypeOf((*error)(nil)).Elem()
	toolRspType = reflect.TypeOf((*mcp.ToolResponse)(nil))
)

// generateMCPHandler creates a typed MCP handler for the given operation.
// The handler is built as func(ctx, <ArgsType>) (*mcp.ToolResponse, error)
// so the MCP server can derive the tool's input schema from the args struct.
func generateMCPHandler(op *OperationDefinition, svc APIService) any {
	if op.MCPHandler != nil {
		return op.MCPHandler
	}

	fnType := reflect.FuncOf(
		[]reflect.Type{ctxType, op.ArgsType},
		[]reflect.Type{toolRspType, errType},
		false,
	)

	fn := reflect.MakeFunc(fnType, func(in []reflect.Value) []reflect.Value {
		ctx := in[0].Interface().(context.Context)
		args := reflect.New(op.ArgsType)
		args.Elem().Set(in[1])

		result, err := op.Handler(ctx, svc, args.Interface())
		if err != nil {
			telemetry.RecordToolCall(op.MCPName, "error")
			return []reflect.Value{reflect.Zero(toolRspType), errValue(err)}
		}

		resp, err := convertToMCPResponse(result)
		if err != nil {
			telemetry.RecordToolCall(op.MCPName, "error")
			return []reflect.Value{reflect.Zero(toolRspType), errValue(err)}
		}
		telemetry.RecordToolCall(op.MCPName, "ok")
		return []reflect.Value{reflect.ValueOf(resp), reflect.Zero(errType)}
	})

	return fn.Interface()
}

// errValue wraps a non-nil error in a reflect.Value of the error interface
// type, as required for MakeFunc return values.
func errValue(err error) reflect.Value {
	v := reflect.New(errType).Elem()
	v.Set(reflect.ValueOf(err))
	return v
}

// convertToMCPResponse converts operation result to MCP response
func convertToMCPResponse(result any) (*mcp.ToolResponse, error) {
	if result == nil {
		return mcp.NewToolResponse(mcp.NewTextContent("success")), nil
	}

	// If result is already a string, return as text
	if str, ok := result.(string); ok {
		return mcp.NewToolResponse(mcp.NewTextContent(str)), nil
	}

	data, err := json.MarshalIndent(result, "", constants.JSONIndent)
	if err != nil {
		return nil, err
	}

	return mcp.NewToolResponse(mcp.NewTextContent(string(data))), nil
}

// GenerateCLICommands creates CLI commands for all operations
func GenerateCLICommands(svc APIService) []*cobra.Command {
	var commands []*cobra.Command

	for _, op := range GetAllOperations() {
		if op.SkipCLI {
			continue
		}
		commands = append(commands, generateCLICommand(op, svc))
	}

	return commands
}

// generateCLICommand creates a CLI command for the given operation
func generateCLICommand(op *OperationDefinition, svc APIService) *cobra.Command {
	cmd := &cobra.Command{
		Use:   op.CLIUse,
		Short: op.CLIShort,
		Long:  op.Description,
	}

	addCLIFlags(cmd, op.ArgsType)

	if op.CLIHandler != nil {
		cmd.RunE = func(cmd *cobra.Command, args []string) error {
			return op.CLIHandler(cmd, args, svc)
		}
	} else {
		cmd.RunE = func(cmd *cobra.Command, args []string) error {
			return runGeneratedCLICommand(cmd, args, op, svc)
		}
	}

	return cmd
}

// addCLIFlags adds flags to a CLI command based on the args type
func addCLIFlags(cmd *cobra.Command, argsType reflect.Type) {
	if argsType.Name() == "EmptyArgs" {
		return
	}

	for i := 0; i < argsType.NumField(); i++ {
		field := argsType.Field(i)
		flagTag := field.Tag.Get("flag")
		descTag := field.Tag.Get("description")

		if flagTag == "" || flagTag == "-" {
			continue
		}

		switch field.Type.Kind() {
		case reflect.String:
			cmd.Flags().String(flagTag, "", descTag)
		case reflect.Bool:
			cmd.Flags().Bool(flagTag, false, descTag)
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			cmd.Flags().Int(flagTag, 0, descTag)
		case reflect.Map, reflect.Interface:
			cmd.Flags().String(flagTag, "", descTag)
		}
	}
}

// runGeneratedCLICommand executes a generated CLI command
func runGeneratedCLICommand(cmd *cobra.Command, args []string, op *OperationDefinition, svc APIService) error {
	opArgs, err := parseCLIArgs(cmd, args, op.ArgsType)
	if err != nil {
		return err
	}

	result, err := op.Handler(cmd.Context(), svc, opArgs)
	if err != nil {
		return err
	}

	return outputCLIResult(result)
}

// parseCLIArgs parses CLI arguments into the expected type
func parseCLIArgs(cmd *cobra.Command, args []string, argsType reflect.Type) (any, error) {
	target := reflect.New(argsType).Interface()
	targetVal := reflect.ValueOf(target).Elem()
	targetType := targetVal.Type()

	// First positional argument fills the first string field.
	if len(args) > 0 && targetType.NumField() > 0 {
		firstField := targetVal.Field(0)
		if firstField.CanSet() && firstField.Kind() == reflect.String {
			firstField.SetString(args[0])
		}
	}

	for i := 0; i < targetType.NumField(); i++ {
		field := targetVal.Field(i)
		fieldType := targetType.Field(i)

		if !field.CanSet() {
			continue
		}

		flagTag := fieldType.Tag.Get("flag")
		if flagTag == "" || flagTag == "-" {
			continue
		}

		switch field.Kind() {
		case reflect.String:
			if value, err := cmd.Flags().GetString(flagTag); err == nil && value != "" {
				field.SetString(value)
			} else if err != nil {
				return nil, fmt.Errorf("failed to get string flag %s: %w", flagTag, err)
			}
		case reflect.Bool:
			if value, err := cmd.Flags().GetBool(flagTag); err == nil {
				field.SetBool(value)
			} else {
				return nil, fmt.Errorf("failed to get bool flag %s: %w", flagTag, err)
			}
		case reflect.Int, reflect.Int64:
			if value, err := cmd.Flags().GetInt(flagTag); err == nil && value != 0 {
				field.SetInt(int64(value))
			} else if err != nil {
				return nil, fmt.Errorf("failed to get int flag %s: %w", flagTag, err)
			}
		case reflect.Map, reflect.Interface:
			// JSON-encoded composite flags
			value, err := cmd.Flags().GetString(flagTag)
			if err != nil {
				return nil, fmt.Errorf("failed to get string flag %s: %w", flagTag, err)
			}
			if value == "" {
				continue
			}
			fieldTarget := reflect.New(field.Type())
			if err := json.Unmarshal([]byte(value), fieldTarget.Interface()); err != nil {
				return nil, fmt.Errorf("failed to parse JSON for flag %s: %w", flagTag, err)
			}
			field.Set(fieldTarget.Elem())
		}
	}

	return target, nil
}

// outputCLIResult outputs the result of a CLI operation
func outputCLIResult(result any) error {
	if result == nil {
		utils.Info("Success")
		return nil
	}

	if str, ok := result.(string); ok {
		utils.User("%s", str)
		return nil
	}

	data, err := json.MarshalIndent(result, "", constants.JSONIndent)
	if err != nil {
		return err
	}

	utils.User("%s", string(data))
	return nil
}
