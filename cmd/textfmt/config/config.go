package config

// Version is the CLI version, injected at build time via ldflags.
var Version = "development"
