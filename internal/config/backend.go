// Package config stores the user's formatting preferences on disk.
package config

// Backend reads and writes named configuration documents.
type Backend interface {
	Get(filename string) (string, error)
	Set(filename, value string) error
}
