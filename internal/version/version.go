package version

// Version is stamped at build time with -ldflags "-X pafcheck/internal/version.Version=...".
var Version = "dev"
