package errors

import "sort"

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Render Errors (E001-E019)
	// ============================================

	"E001": {
		Category: CategoryRender,
		Message:  "Render called with a nil container",
		Detail:   "The container is the real node the tree is mounted into. It must exist before Render is called.",
	},
	"E002": {
		Category: CategoryRender,
		Message:  "Nil tree description",
		Detail:   "Render and Mount need a description built with Build or one of the element helpers.",
	},
	"E003": {
		Category: CategoryComponent,
		Message:  "Component returned no tree",
		Detail:   "A component callable must return a non-nil description every time it is invoked.",
	},
	"E004": {
		Category: CategoryComponent,
		Message:  "Component nesting too deep",
		Detail:   "Resolving a component produced another component more times than the engine allows. This usually means a component returns itself.",
	},
	"E005": {
		Category: CategoryRender,
		Message:  "Element has no tag",
		Detail:   "Element descriptions need a tag name such as \"div\".",
	},
	"E006": {
		Category: CategoryRender,
		Message:  "Event handler is not callable",
		Detail:   "Attributes starting with \"on\" are event bindings. Their value must be a func(dom.Event), a func() or a dom.Listener.",
	},
	"E007": {
		Category: CategoryRender,
		Message:  "Render re-entered while in progress",
		Detail:   "Render was called again before a previous render on the same engine returned. Schedule the second render after the first completes.",
	},
	"E008": {
		Category: CategoryRender,
		Message:  "Container has no owner document",
		Detail:   "The engine creates nodes through the container's owner document.",
	},
	"E009": {
		Category: CategoryRender,
		Message:  "Text node with children",
		Detail:   "Text descriptions hold their value in the textContent attribute and cannot have children.",
	},

	// ============================================
	// Config Errors (E120-E129)
	// ============================================

	"E120": {
		Category: CategoryConfig,
		Message:  "Invalid configuration file",
		Detail:   "The configuration file could not be read or parsed.",
	},
	"E121": {
		Category: CategoryConfig,
		Message:  "Configuration file not found",
		Detail:   "No minireact.json or minireact.yaml was found.",
	},
	"E122": {
		Category: CategoryConfig,
		Message:  "Invalid configuration value",
		Detail:   "A configuration value is out of range.",
	},

	// ============================================
	// Server Errors (E140-E149)
	// ============================================

	"E140": {
		Category: CategoryServer,
		Message:  "Server failed to start",
		Detail:   "The HTTP listener could not be started on the configured address.",
	},
	"E141": {
		Category: CategoryServer,
		Message:  "Root directory not found",
		Detail:   "The directory to serve does not exist or is not a directory.",
	},
	"E142": {
		Category: CategoryServer,
		Message:  "File watcher failed",
		Detail:   "Live reload could not watch the served directory.",
	},
}

// Lookup returns the template registered for code.
func Lookup(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}

// Codes returns all registered codes in order.
func Codes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
