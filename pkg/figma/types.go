package figma

// FileResponse is the slice of the Figma file API payload this package
// reads: file metadata, the published component maps, and the document tree.
type FileResponse struct {
	Name          string               `json:"name"`
	LastModified  string               `json:"lastModified"`
	Version       string               `json:"version"`
	Document      Node                 `json:"document"`
	Components    map[string]Component `json:"components"`
	ComponentSets map[string]Component `json:"componentSets"`
}

// Component is a published component or component-set definition. The map
// key in FileResponse is the defining node's ID.
type Component struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Node is a single element in the Figma document tree. Only the fields
// needed to recognize component nodes are decoded; everything else in the
// payload is ignored.
type Node struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Children []Node `json:"children,omitempty"`
}
