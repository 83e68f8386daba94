// Package pipeline walks a directory tree and hands every regular file to
// the Dispatcher, which filters by extension, skips videos whose contact
// sheet already exists, and runs ffmpeg for the rest.
//
// Everything is sequential: each file reaches a terminal outcome before the
// walk moves to the next entry. Failures are logged once and never abort
// the run; an unreadable directory only loses its own subtree.
package pipeline
