package host

import "io"

// RegisterDefaults installs Arcane's reference host-function library into
// r. out and in back the builtins that do I/O (print/println/input); a
// caller embedding the interpreter elsewhere can pass its own streams, or
// call the individual register* helpers directly to build a narrower
// library.
func RegisterDefaults(r *Registry, out io.Writer, in io.Reader) {
	registerStrings(r, out)
	registerConvert(r)
	registerMath(r)
	registerDate(r)
	registerArray(r)
	registerPlatform(r, out, in)
}
