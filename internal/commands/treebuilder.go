package commands

import (
	"go.uber.org/zap"

	"github.com/temirov/file-struct-stringer/internal/types"
)

// TreeBuilder collects the filtered, sorted entry list for one rendering root.
type TreeBuilder struct {
	Options types.DisplayOptions
	Logger  *zap.Logger
}

// NewTreeBuilder constructs a TreeBuilder. A nil logger discards all messages.
func NewTreeBuilder(options types.DisplayOptions, logger *zap.Logger) *TreeBuilder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TreeBuilder{Options: options, Logger: logger}
}
