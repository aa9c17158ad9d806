package shape

// Policy controls inference and rendering verbosity. All switches are
// independent; the zero value is the quietest setting.
type Policy struct {
	ShowLength bool `json:"show_length"` // include the array cardinality tag [N]
	ShowSample bool `json:"show_sample"` // capture an example value alongside leaf type names
	KeysOnly   bool `json:"keys_only"`   // emit only key presence and nesting, no value types
	Compact    bool `json:"compact"`     // suppress indentation and newlines when rendering
	MaxDepth   int  `json:"max_depth"`   // stop recursion at this depth; 0 means unlimited
}

// DefaultPolicy returns the default display policy: lengths on, samples off,
// full type information, indented output, unlimited depth.
func DefaultPolicy() *Policy {
	return &Policy{ShowLength: true}
}
