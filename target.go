package mdtype

// Handle identifies a node created by a Target.
type Handle int

// NoHandle is the handle of a node that does not exist.
const NoHandle Handle = -1

// Target is the structure the bridge renders into. Implementations decide what
// a node is: an AST entry, a DOM element or a run of terminal output.
type Target interface {
	// Create makes a detached node of the given kind.
	Create(kind string) Handle
	// Nest places child inside parent.
	Nest(parent, child Handle)
	// AppendRoot attaches node to the target's top-level container.
	AppendRoot(node Handle)
	// AppendText appends text to the node's content.
	AppendText(node Handle, text string)
}
