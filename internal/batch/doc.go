// Package batch sweeps a directory of caption files into transcript files.
//
// A sweep is idempotent: caption files whose transcript already exists are
// skipped, and per-file failures (header damage, malformed cues) are logged
// and skipped so one bad recording never blocks the rest. The destination
// directory is locked for the duration of a sweep so concurrent sweeps cannot
// interleave their outputs.
package batch
