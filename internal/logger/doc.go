// Package logger wraps zap for the simulator:
//   - a global sugared logger with a console encoder on stderr,
//   - context helpers (ToContext/FromContext/WithName/WithKV),
//   - level parsing and configuration,
//   - leveled convenience functions (Infof, ErrorKV, etc.).
//
// Services take a context and pull the logger from it, so a name or
// key-value pairs attached once follow every entry of that run.
package logger
