// Package logger wraps zap for the verifier:
//   - a global sugared logger writing numbered progress lines to stdout,
//   - context helpers (ToContext/FromContext/WithName/WithKV),
//   - level parsing for the --log-level flag.
//
// The verifier service pulls its logger from the context so every line of a run
// carries the same run_id.
package logger
