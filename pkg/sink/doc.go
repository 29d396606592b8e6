// Package sink stores packaged blueprint documents.
//
// A [Sink] is the final step of an export: it receives the finished
// document text and a validated blueprint name, and persists it. Several
// backends are provided:
//   - file: one <name>.blueprint file per document, for the host's prefab
//     folder
//   - redis: one key per document, for build services sharing output
//   - mongo: one record per document, keyed by name
//   - memory: an in-process map, for tests and dry runs
//   - null: discards everything
//
// # Usage
//
//	s, err := sink.NewFileSink("out/prefabs")
//	if err != nil {
//	    return err
//	}
//	defer s.Close()
//
//	loc, err := s.Write(ctx, "AimAssist", doc)
//
// # Errors
//
// Every failure to persist or fetch a document is returned as an error with
// code STORAGE_ERROR (see package errors). Reading a document that does not
// exist yields NOT_FOUND. Invalid names are rejected with INVALID_NAME
// before any backend is touched.
package sink
