package types

// AppName is the service identifier used in logs, health responses and the
// MCP server handshake.
const AppName = "relq"

// Version is the application version. Overwritten at build time via ldflags.
var Version = "dev"
