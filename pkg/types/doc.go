// Package types defines the entity types, configuration, and standard
// errors for the recipe organizer storage layer.
package types
