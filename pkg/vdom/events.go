package vdom

// event creates an EventHandler with the given name and handler.
// The name is prefixed with "on" (e.g., "Click" becomes "onClick").
func event(name string, handler any) EventHandler {
	return EventHandler{Event: "on" + name, Handler: handler}
}

// On binds handler to an arbitrary event name.
func On(name string, handler any) EventHandler { return event(name, handler) }

// Mouse events

// OnClick handles click events.
func OnClick(handler any) EventHandler { return event("Click", handler) }

// OnDblClick handles double-click events.
func OnDblClick(handler any) EventHandler { return event("DblClick", handler) }

// OnMouseEnter handles mouseenter events.
func OnMouseEnter(handler any) EventHandler { return event("MouseEnter", handler) }

// OnMouseLeave handles mouseleave events.
func OnMouseLeave(handler any) EventHandler { return event("MouseLeave", handler) }

// Keyboard events

// OnKeyDown handles keydown events.
func OnKeyDown(handler any) EventHandler { return event("KeyDown", handler) }

// OnKeyUp handles keyup events.
func OnKeyUp(handler any) EventHandler { return event("KeyUp", handler) }

// Form events

// OnInput handles input events (fired when value changes).
func OnInput(handler any) EventHandler { return event("Input", handler) }

// OnChange handles change events (fired when value is committed).
func OnChange(handler any) EventHandler { return event("Change", handler) }

// OnSubmit handles form submit events.
func OnSubmit(handler any) EventHandler { return event("Submit", handler) }

// OnFocus handles focus events.
func OnFocus(handler any) EventHandler { return event("Focus", handler) }

// OnBlur handles blur events.
func OnBlur(handler any) EventHandler { return event("Blur", handler) }
