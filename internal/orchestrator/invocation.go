package orchestrator

import (
	"github.com/google/uuid"
	"github.com/specialistvlad/rootpatch/internal/outdir"
)

// Invocation is the state of one build invocation. The shared output root
// is resolved on first use and reused afterwards.
type Invocation struct {
	ID   string
	root outdir.Root
}

// NewInvocation starts a new build invocation with a fresh ID.
func NewInvocation() *Invocation {
	return &Invocation{ID: uuid.NewString()}
}

// SharedRoot returns the invocation's shared output root, resolving it from
// graphRoot the first time it is called. Later graph roots are ignored.
func (inv *Invocation) SharedRoot(graphRoot string) outdir.Root {
	if inv.root.IsZero() {
		inv.root = outdir.ResolveRoot(graphRoot)
	}
	return inv.root
}
