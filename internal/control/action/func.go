package action

// Func is an Action that calls a function and is described by a fixed text.
type Func struct {
	Description string
	Call        func()
}

// Do calls the function.
func (f Func) Do() { f.Call() }

// Explain returns the description.
func (f Func) Explain() string { return f.Description }
