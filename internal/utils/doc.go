// Package utils exposes reusable helpers consumed by the dashboard commands.
//
// It houses the ConfigurationLoader that layers the embedded defaults, an
// optional configuration file, and SCRIPTDASH_* environment variables through
// Viper, the LoggerFactory that builds zap loggers writing diagnostics to
// standard error, and the FlushingWriter used for interactive console output.
package utils
