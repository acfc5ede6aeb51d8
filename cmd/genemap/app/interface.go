package app

import (
	"github.com/neurocrista/genemap/internal/appcontext"
)

// Interface is an alias to the shared appcontext.Interface.
// Commands accept this interface rather than the concrete App type.
type Interface = appcontext.Interface

// Ensure App implements appcontext.Interface at compile time.
var _ appcontext.Interface = (*App)(nil)
