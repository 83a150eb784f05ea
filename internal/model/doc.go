// Package model defines the core data structures used throughout sgreport.
//
// This package contains the following main types:
//   - Finding: One static-analysis result as read from the input file
//   - Taxonomy: The fixed raw-label to severity Bucket lookup
//   - Report: The classified, counted view of a findings list
//
// Design decision: We keep the models free of I/O so that classification and
// counting can be tested in isolation, and so that the loader (semgrep) and
// the renderers (report) do not depend on each other.
package model
