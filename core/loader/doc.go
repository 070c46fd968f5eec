// Package loader provides the plugin-like feature loading system.
//
// Each feature implements the Feature interface:
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// The Manager holds the registry of available features. Register adds one,
// LoadAll loads the enabled ones in registration order. Features such as
// 'authors', 'books' or 'export' are developed and tested in isolation.
package loader
