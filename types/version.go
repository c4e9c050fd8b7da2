package types

// Version is the canonical project version.
// The CLI, the REPL banner, and the transcript format share this constant
// per the lockstep versioning policy.
const Version = "0.3.0"
