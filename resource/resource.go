// Package resource defines the content records threaded through the build
// pipeline. A resource pairs a source file (or inline content for synthetic
// resources) with a mutable destination path relative to the build output.
// The pipeline treats resources as opaque: it moves the collection between
// transform stages but never inspects content itself.
package resource

// Resource is a single content item headed for the output tree.
//
// ID is the stable identity of the resource and survives destination
// rewrites. For file-backed resources it is the source-relative path; for
// synthetic resources it is whatever the creating extension chose.
type Resource struct {
	// ID identifies the resource independently of where it will be written.
	ID string

	// SourcePath is the absolute path of the backing file. Empty for
	// synthetic resources, which carry their bytes in Content.
	SourcePath string

	// DestinationPath is the output-relative path the resource will be
	// written to. Transform stages may rewrite it freely.
	DestinationPath string

	// Content holds inline bytes for synthetic resources. When nil the
	// resource is materialised by reading SourcePath.
	Content []byte

	// Data carries optional per-resource metadata for extensions that need
	// to pass information between pipeline stages.
	Data map[string]any
}

// New returns a file-backed resource. The destination doubles as the
// identity, since it is the source-relative path at creation time.
func New(sourcePath, destinationPath string) *Resource {
	return &Resource{
		ID:              destinationPath,
		SourcePath:      sourcePath,
		DestinationPath: destinationPath,
	}
}

// Synthetic returns a resource with inline content and no backing file.
func Synthetic(id, destinationPath string, content []byte) *Resource {
	return &Resource{
		ID:              id,
		DestinationPath: destinationPath,
		Content:         content,
	}
}

// List is an ordered collection of resources. Order is significant: it is
// the order resources entered the pipeline, as adjusted by transform stages.
type List []*Resource

// Destinations returns the destination paths in list order.
func (l List) Destinations() []string {
	out := make([]string, len(l))
	for i, r := range l {
		out[i] = r.DestinationPath
	}
	return out
}

// ByDestination returns the first resource with the given destination path,
// or nil if none matches.
func (l List) ByDestination(path string) *Resource {
	for _, r := range l {
		if r.DestinationPath == path {
			return r
		}
	}
	return nil
}

// ByID returns the first resource with the given identity, or nil.
func (l List) ByID(id string) *Resource {
	for _, r := range l {
		if r.ID == id {
			return r
		}
	}
	return nil
}
