package tools

import "github.com/philipparndt/hyperdisk/internal/config"

// Set returns the editor tools in toolbar order
func Set(cfg config.Interaction) []Tool {
	return []Tool{
		&AddLineAndPoint{},
		NewMove(cfg.DeleteRadius),
		NewCreateParallels(cfg.ParallelPickDistance),
		&FreeHandDraw{},
		&AddMirror{},
	}
}

// ByName finds a tool of the set by its name
func ByName(set []Tool, name string) (Tool, bool) {
	for _, t := range set {
		if t.Name() == name {
			return t, true
		}
	}
	return nil, false
}
