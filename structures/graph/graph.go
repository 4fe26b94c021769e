// Package graph holds the graph value structures a query can return:
// nodes, relationships and paths. Values of these types come back from
// the server inside result records.
package graph

// Signature bytes for the graph structures of Bolt v1
const (
	// NodeSignature is the signature byte for a Node object
	NodeSignature = 0x4E
	// PathSignature is the signature byte for a Path object
	PathSignature = 0x50
	// RelationshipSignature is the signature byte for a Relationship object
	RelationshipSignature = 0x52
	// UnboundRelationshipSignature is the signature byte for an UnboundRelationship object
	UnboundRelationshipSignature = 0x72
)

// Node represents a node in the graph
type Node struct {
	NodeIdentity int64
	Labels       []string
	Properties   map[string]interface{}
}

// Signature gets the signature byte for the struct
func (n Node) Signature() int {
	return NodeSignature
}

// AllFields gets the fields to encode for the struct
func (n Node) AllFields() []interface{} {
	labels := make([]interface{}, len(n.Labels))
	for i, label := range n.Labels {
		labels[i] = label
	}
	return []interface{}{n.NodeIdentity, labels, n.Properties}
}

// Relationship represents a directed relationship between two nodes
type Relationship struct {
	RelIdentity       int64
	StartNodeIdentity int64
	EndNodeIdentity   int64
	Type              string
	Properties        map[string]interface{}
}

// Signature gets the signature byte for the struct
func (r Relationship) Signature() int {
	return RelationshipSignature
}

// AllFields gets the fields to encode for the struct
func (r Relationship) AllFields() []interface{} {
	return []interface{}{r.RelIdentity, r.StartNodeIdentity, r.EndNodeIdentity, r.Type, r.Properties}
}

// UnboundRelationship represents a relationship detached from its
// start and end nodes, as it appears inside a Path
type UnboundRelationship struct {
	RelIdentity int64
	Type        string
	Properties  map[string]interface{}
}

// Signature gets the signature byte for the struct
func (r UnboundRelationship) Signature() int {
	return UnboundRelationshipSignature
}

// AllFields gets the fields to encode for the struct
func (r UnboundRelationship) AllFields() []interface{} {
	return []interface{}{r.RelIdentity, r.Type, r.Properties}
}

// Path represents an alternating sequence of nodes and relationships
type Path struct {
	Nodes         []Node
	Relationships []UnboundRelationship
	Sequence      []int
}

// Signature gets the signature byte for the struct
func (p Path) Signature() int {
	return PathSignature
}

// AllFields gets the fields to encode for the struct
func (p Path) AllFields() []interface{} {
	nodes := make([]interface{}, len(p.Nodes))
	for i, node := range p.Nodes {
		nodes[i] = node
	}
	rels := make([]interface{}, len(p.Relationships))
	for i, rel := range p.Relationships {
		rels[i] = rel
	}
	seq := make([]interface{}, len(p.Sequence))
	for i, s := range p.Sequence {
		seq[i] = s
	}
	return []interface{}{nodes, rels, seq}
}
