package tools

import (
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Register registers all tools with the MCP server.
func Register(srv *sdkmcp.Server, d *Deps) {
	// Tool 1: json_infer_shape
	AddTool(srv, &sdkmcp.Tool{
		Name:        "json_infer_shape",
		Description: "Infer the structural shape of a JSON input and render it as an indented skeleton. Leaf values collapse to their type names (string, number, boolean, null); arrays show only the structure of their first element, tagged array[N]. Input comes from inline json, a history_id, or the clipboard. Use options to toggle lengths, samples, keys_only skeleton, compact one-line output, and max_depth. Set annotated=true for kind-tagged spans (syntax highlighting), filter to narrow the input with a jq expression first, save_history to remember the input.",
	}, ToolInferShape(d))

	// Tool 2: json_generate_types
	AddTool(srv, &sdkmcp.Tool{
		Name:        "json_generate_types",
		Description: "Generate a TypeScript-style type declaration for a JSON input. Objects produce an interface, anything else a type alias; arrays are typed from their first element (Array<{...}> for composite elements, T[] for primitives). Set root_name to name the generated type (default IGenerated).",
	}, ToolGenerateTypes(d))

	// Tool 3: json_diff
	AddTool(srv, &sdkmcp.Tool{
		Name:        "json_diff",
		Description: "Compare the structure of two JSON inputs in lock-step and classify every path as same, added, or removed. Value changes of the same type are ignored; a type change at a path reports it as removed plus added and masks everything beneath. Arrays compare only their first elements. Set report=true for a human-readable summary.",
	}, ToolDiff(d))

	// Tool 4: json_batch_infer
	AddTool(srv, &sdkmcp.Tool{
		Name:        "json_batch_infer",
		Description: "Infer shapes for many JSON documents in one call. Documents are processed concurrently; a malformed document reports its error in place without failing the batch.",
	}, ToolBatchInfer(d))

	// Tool 5: json_history_list
	AddTool(srv, &sdkmcp.Tool{
		Name:        "json_history_list",
		Description: "List remembered inputs, most recent first, with previews. Use the returned id as history_id in other tools.",
	}, ToolHistoryList(d))

	// Tool 6: json_history_get
	AddTool(srv, &sdkmcp.Tool{
		Name:        "json_history_get",
		Description: "Get one remembered input by ID, including its full raw text.",
	}, ToolHistoryGet(d))

	// Tool 7: json_history_clear
	AddTool(srv, &sdkmcp.Tool{
		Name:        "json_history_clear",
		Description: "Remove all remembered inputs.",
	}, ToolHistoryClear(d))

	// Tool 8: json_history_search
	AddTool(srv, &sdkmcp.Tool{
		Name:        "json_history_search",
		Description: "Search remembered inputs by free text over their keys and values (tokens ANDed). Entries whose top-level keys match score higher; recent entries rank first on ties. An empty query lists the most recent entries.",
	}, ToolHistorySearch(d))

	// Tool 9: json_options_get
	AddTool(srv, &sdkmcp.Tool{
		Name:        "json_options_get",
		Description: "Get the effective display options (lengths, samples, keys_only, compact, max_depth) and color theme.",
	}, ToolOptionsGet(d))

	// Tool 10: json_options_set
	AddTool(srv, &sdkmcp.Tool{
		Name:        "json_options_set",
		Description: "Update and persist display options and the color theme. Unset fields keep their current values.",
	}, ToolOptionsSet(d))

	// Tool 11: json_copy
	AddTool(srv, &sdkmcp.Tool{
		Name:        "json_copy",
		Description: "Render a result and copy it to the clipboard. Target selects what is copied: shape (default), types, or raw.",
	}, ToolCopy(d))
}
