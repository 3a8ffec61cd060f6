// internal/version/version.go
package version

// Version is stamped at release; keep in sync with git tags.
const Version = "0.3.0"
