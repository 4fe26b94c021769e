package encoding

import (
	"github.com/graphbolt/golang-neo4j-bolt-session/errors"
	"github.com/graphbolt/golang-neo4j-bolt-session/structures/graph"
)

func fieldAt(fields []interface{}, i int, what string) (interface{}, error) {
	if i >= len(fields) {
		return nil, errors.New("Missing structure field %d (%s)", i, what)
	}
	return fields[i], nil
}

func fieldAsString(fields []interface{}, i int, what string) (string, error) {
	f, err := fieldAt(fields, i, what)
	if err != nil {
		return "", err
	}
	s, ok := f.(string)
	if !ok {
		return "", errors.New("Expected %s to be a string, got %T %+v", what, f, f)
	}
	return s, nil
}

func fieldAsMap(fields []interface{}, i int, what string) (map[string]interface{}, error) {
	f, err := fieldAt(fields, i, what)
	if err != nil {
		return nil, err
	}
	m, ok := f.(map[string]interface{})
	if !ok {
		return nil, errors.New("Expected %s to be a map, got %T %+v", what, f, f)
	}
	return m, nil
}

func fieldAsSlice(fields []interface{}, i int, what string) ([]interface{}, error) {
	f, err := fieldAt(fields, i, what)
	if err != nil {
		return nil, err
	}
	sl, ok := f.([]interface{})
	if !ok {
		return nil, errors.New("Expected %s to be a list, got %T %+v", what, f, f)
	}
	return sl, nil
}

// fieldAsInt64 widens whatever integer width the wire used.
func fieldAsInt64(fields []interface{}, i int, what string) (int64, error) {
	f, err := fieldAt(fields, i, what)
	if err != nil {
		return 0, err
	}
	switch v := f.(type) {
	case int8:
		return int64(v), nil
	case int16:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case int64:
		return v, nil
	default:
		return 0, errors.New("Expected %s to be an integer, got %T %+v", what, f, f)
	}
}

func sliceAsStrings(from []interface{}, what string) ([]string, error) {
	to := make([]string, len(from))
	for i, item := range from {
		s, ok := item.(string)
		if !ok {
			return nil, errors.New("Expected %s to hold strings, got %T %+v", what, item, item)
		}
		to[i] = s
	}
	return to, nil
}

func nodeFromFields(fields []interface{}) (graph.Node, error) {
	identity, err := fieldAsInt64(fields, 0, "node identity")
	if err != nil {
		return graph.Node{}, err
	}
	labelsInt, err := fieldAsSlice(fields, 1, "node labels")
	if err != nil {
		return graph.Node{}, err
	}
	labels, err := sliceAsStrings(labelsInt, "node labels")
	if err != nil {
		return graph.Node{}, err
	}
	properties, err := fieldAsMap(fields, 2, "node properties")
	if err != nil {
		return graph.Node{}, err
	}
	return graph.Node{NodeIdentity: identity, Labels: labels, Properties: properties}, nil
}

func relationshipFromFields(fields []interface{}) (graph.Relationship, error) {
	identity, err := fieldAsInt64(fields, 0, "relationship identity")
	if err != nil {
		return graph.Relationship{}, err
	}
	start, err := fieldAsInt64(fields, 1, "relationship start node")
	if err != nil {
		return graph.Relationship{}, err
	}
	end, err := fieldAsInt64(fields, 2, "relationship end node")
	if err != nil {
		return graph.Relationship{}, err
	}
	typ, err := fieldAsString(fields, 3, "relationship type")
	if err != nil {
		return graph.Relationship{}, err
	}
	properties, err := fieldAsMap(fields, 4, "relationship properties")
	if err != nil {
		return graph.Relationship{}, err
	}
	return graph.Relationship{
		RelIdentity:       identity,
		StartNodeIdentity: start,
		EndNodeIdentity:   end,
		Type:              typ,
		Properties:        properties,
	}, nil
}

func unboundRelationshipFromFields(fields []interface{}) (graph.UnboundRelationship, error) {
	identity, err := fieldAsInt64(fields, 0, "unbound relationship identity")
	if err != nil {
		return graph.UnboundRelationship{}, err
	}
	typ, err := fieldAsString(fields, 1, "unbound relationship type")
	if err != nil {
		return graph.UnboundRelationship{}, err
	}
	properties, err := fieldAsMap(fields, 2, "unbound relationship properties")
	if err != nil {
		return graph.UnboundRelationship{}, err
	}
	return graph.UnboundRelationship{RelIdentity: identity, Type: typ, Properties: properties}, nil
}

func pathFromFields(fields []interface{}) (graph.Path, error) {
	nodesInt, err := fieldAsSlice(fields, 0, "path nodes")
	if err != nil {
		return graph.Path{}, err
	}
	nodes := make([]graph.Node, len(nodesInt))
	for i, item := range nodesInt {
		node, ok := item.(graph.Node)
		if !ok {
			return graph.Path{}, errors.New("Expected path nodes to hold nodes, got %T %+v", item, item)
		}
		nodes[i] = node
	}

	relsInt, err := fieldAsSlice(fields, 1, "path relationships")
	if err != nil {
		return graph.Path{}, err
	}
	rels := make([]graph.UnboundRelationship, len(relsInt))
	for i, item := range relsInt {
		rel, ok := item.(graph.UnboundRelationship)
		if !ok {
			return graph.Path{}, errors.New("Expected path relationships to hold relationships, got %T %+v", item, item)
		}
		rels[i] = rel
	}

	seqInt, err := fieldAsSlice(fields, 2, "path sequence")
	if err != nil {
		return graph.Path{}, err
	}
	seq := make([]int, len(seqInt))
	for i := range seqInt {
		v, err := fieldAsInt64(seqInt, i, "path sequence")
		if err != nil {
			return graph.Path{}, err
		}
		seq[i] = int(v)
	}

	return graph.Path{Nodes: nodes, Relationships: rels, Sequence: seq}, nil
}
