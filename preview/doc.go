// Package preview serves rendered schema documentation over HTTP.
//
// The server reads a directory of JSON schema files (as written by
// render.ExportDir or by any tool speaking the same format), renders them
// as Markdown or JSON on request, and watches the directory for changes.
// Connected browsers are told to reload over a WebSocket channel whenever
// a schema file changes.
//
//	srv := preview.New(":8080", "./schemas")
//	if err := srv.Serve(ctx); err != nil {
//	    ...
//	}
//
// Routes:
//
//	GET /                  index of known schemas
//	GET /schema/{name}     Markdown rendering; ?format=json for the raw tree
//	GET /reload            WebSocket endpoint for live reload events
//
// Requests are traced and counted with OpenTelemetry; a token bucket rate
// limit can be enabled for shared hosts.
package preview
