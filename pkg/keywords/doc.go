// Package keywords holds the keyword store: the run-scoped mapping from
// placeholder token text, such as {{$HOME}} or {{$NAME:read}}, to the value
// it resolved to.
//
// A store is seeded once per run with home, project, date and environment
// defaults, grows while a template is extracted and is discarded afterwards.
// Iteration follows first-write order, which keeps substitution
// deterministic for a given store.
package keywords
