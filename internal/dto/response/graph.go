package response

// GraphNode is one leaf of the hierarchical edge bundling dataset. Imports
// holds the names of the nodes this one references by foreign key.
type GraphNode struct {
	Name    string   `json:"name"`
	Label   string   `json:"label"`
	Type    string   `json:"type"`
	Imports []string `json:"imports"`
}

type GraphPage struct {
	Notice
	Nodes []GraphNode `json:"graph_data"`
}
