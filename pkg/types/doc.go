// Package types defines the menu item and course types, the Store
// interface, configuration, and the standard error values shared by every
// FlavorScape component.
package types
