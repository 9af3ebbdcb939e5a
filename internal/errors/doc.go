// Package errors provides structured, actionable error messages for minireact.
//
// Every error raised by the render pipeline, the configuration loader and the
// dev server is an *Error carrying:
//   - a stable code (e.g. "E001") that maps to a registered template
//   - a category (render, component, config, server)
//   - a short message and a longer detail
//   - an optional hint on how to fix the problem
//
// # Error Codes
//
// Codes E001-E019 are render precondition failures. They are returned before
// the engine performs its first mutation, so the real node tree is never left
// half-reconciled. Codes E120-E129 are configuration errors and E140-E149 are
// server errors.
//
// # Usage
//
//	err := errors.New("E001").
//	    WithDetail("Render was called for the #root container").
//	    WithSuggestion("Check that document.getElementById returned a node")
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR E001: Render called with a nil container
//	//
//	//   Render was called for the #root container
//	//
//	//   Hint: Check that document.getElementById returned a node
package errors
