package compiler

// emitPush pushes the value of a declared name onto the stack, using the
// VM segment its kind maps to.
func (e *Engine) emitPush(name string) {
	e.vm.WritePush(e.st.KindOf(name).Segment(), e.st.IndexOf(name))
}

// emitPop pops the top of the stack into a declared name's storage.
func (e *Engine) emitPop(name string) {
	e.vm.WritePop(e.st.KindOf(name).Segment(), e.st.IndexOf(name))
}
