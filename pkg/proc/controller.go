package proc

import (
	"io"
	"log"
)

var logger = log.New(io.Discard, "proc: ", log.LstdFlags)

// SetLogOutput redirects the package logger, e.g. to os.Stderr during
// development. The default discards everything, matching the library's
// silent-by-default posture elsewhere in the stack.
func SetLogOutput(w io.Writer) {
	logger.SetOutput(w)
}

// Controller is the lifecycle state machine coordinating spawn -> running
// -> exited/killed -> removed for every named process, plus restart and
// shutdown semantics. It is the type embedding hosts wire their command
// dispatch to; every method returns promptly on success or an *Error.
type Controller struct {
	reg      *Registry
	resolver *Resolver
	sink     EventSink
}

// NewController builds a Controller publishing events on sink. A nil sink
// discards every event, which is convenient for tests that only care about
// return values.
func NewController(sink EventSink) *Controller {
	if sink == nil {
		sink = discardSink{}
	}
	return &Controller{
		reg:      newRegistry(),
		resolver: NewResolver(),
		sink:     sink,
	}
}

// Resolver exposes the runtime resolver for set_runtime_path,
// get_runtime_paths, and detect_runtimes.
func (c *Controller) Resolver() *Resolver { return c.resolver }
