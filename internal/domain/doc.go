// Package domain contains the probability models behind probtable.
//
// The domain has no knowledge of YAML, terminals or the filesystem. It holds the
// binomial routines, the distribution aggregates built on them and the report
// record that renderers and stores consume.
package domain
