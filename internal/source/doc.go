// Package source acquires the carousel's data set.
//
// Every backend implements Source, a single Fetch call that returns the full
// list of items. The carousel calls it once after init; a failure is logged
// and never retried.
//
// # Backends
//
//   - demo: built-in items, used when nothing is configured
//   - file: a TOML document with one [[item]] table per entry
//   - http: a two-step feed (ids.json, then data.json?ids=...)
//   - sqlite: the items table of a SQLite database, ordered by position
//
// # HTTP Feed
//
// The feed client lists ids first and then asks for their payloads:
//
//	GET <feed>/ids.json            {"ids": ["a", "b"]}
//	GET <feed>/data.json?ids=a,b   {"items": [{"id": "a", "title": "...", "imgUrl": "..."}]}
//
// Requests carry Accept: application/json and a cubecarousel User-Agent, and
// time out after 5 seconds.
package source
