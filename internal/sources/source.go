// Package sources defines upstream mapping sources and the fetcher that
// retrieves their key-to-URL documents.
//
// A source is one library endpoint of the upstream (movies, shows, ...).
// Sources are constructed once per run from static configuration and keep a
// fixed order; that order is what makes merges deterministic.
package sources

import (
	"strings"
)

// Source is one upstream endpoint supplying a partial key-to-URL mapping.
// Immutable within a run.
type Source struct {
	// Name identifies the source in logs and reports, e.g. "movies".
	Name string

	// URL is the fully-resolved endpoint address, without the credential.
	URL string
}

// String returns the source name.
func (s Source) String() string {
	return s.Name
}

// Result is the outcome of fetching one source. A failed fetch carries Err
// and a nil Mapping; it contributes nothing to the merge.
type Result struct {
	Source  Source
	Mapping map[string]string
	Err     error
}

// OK reports whether the fetch succeeded.
func (r Result) OK() bool {
	return r.Err == nil
}

// Build constructs the ordered source list for the given upstream base URL
// and library names. The returned order is the configured order and must be
// preserved through fetch and merge.
func Build(baseURL string, libraries []string) []Source {
	base := strings.TrimRight(baseURL, "/")
	sources := make([]Source, 0, len(libraries))
	for _, lib := range libraries {
		lib = strings.Trim(strings.TrimSpace(lib), "/")
		if lib == "" {
			continue
		}
		sources = append(sources, Source{
			Name: lib,
			URL:  base + "/" + lib,
		})
	}
	return sources
}
