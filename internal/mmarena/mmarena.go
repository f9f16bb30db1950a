// Package mmarena reserves fixed-size anonymous memory regions for
// arena allocators. On unix platforms regions come from mmap and live
// outside the traced Go heap; elsewhere a plain byte slice stands in.
// Callers must treat a region as untraced either way and keep
// GC-visible pointer data out of it.
package mmarena
