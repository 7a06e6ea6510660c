package config

// Version is stamped at build time via
// -ldflags "-X github.com/example/notch/internal/config.Version=...".
var Version = "dev"
