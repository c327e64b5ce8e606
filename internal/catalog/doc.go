// Package catalog holds the function catalog: the static metadata of every
// utility function, and the read-only Store used for lookup and search.
//
// A Store is produced once at startup by a Builder and never changes
// afterwards. Build rejects duplicate names, so lookups by name are never
// ambiguous. Every accessor returns copies, which makes a Store safe to
// share between concurrent requests without locking.
//
// Search is a case-insensitive substring match over name, description,
// category and tags, with an optional exact category filter. Results keep
// registration order; there is no relevance ranking.
package catalog
