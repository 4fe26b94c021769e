package bolt

import "github.com/graphbolt/golang-neo4j-bolt-session/structures/graph"

// hydrate converts a raw wire value into its native representation.
// The decoder hands back integers at whatever width the wire used;
// here they all widen to int64 so callers never have to care how many
// bytes a number happened to need. Collections hydrate element-wise,
// including the property maps of graph values. Strings, booleans,
// floats and nil pass through.
func hydrate(raw interface{}) interface{} {
	switch v := raw.(type) {
	case int8:
		return int64(v)
	case int16:
		return int64(v)
	case int32:
		return int64(v)
	case []interface{}:
		out := make([]interface{}, len(v))
		for i, item := range v {
			out[i] = hydrate(item)
		}
		return out
	case map[string]interface{}:
		out := make(map[string]interface{}, len(v))
		for k, item := range v {
			out[k] = hydrate(item)
		}
		return out
	case graph.Node:
		v.Properties = hydrateProperties(v.Properties)
		return v
	case graph.Relationship:
		v.Properties = hydrateProperties(v.Properties)
		return v
	case graph.UnboundRelationship:
		v.Properties = hydrateProperties(v.Properties)
		return v
	case graph.Path:
		for i, node := range v.Nodes {
			node.Properties = hydrateProperties(node.Properties)
			v.Nodes[i] = node
		}
		for i, rel := range v.Relationships {
			rel.Properties = hydrateProperties(rel.Properties)
			v.Relationships[i] = rel
		}
		return v
	default:
		return raw
	}
}

func hydrateProperties(properties map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(properties))
	for k, v := range properties {
		out[k] = hydrate(v)
	}
	return out
}
