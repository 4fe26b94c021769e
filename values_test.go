package bolt

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/graphbolt/golang-neo4j-bolt-session/structures/graph"
)

func TestHydrateWidensIntegers(t *testing.T) {
	assert.Equal(t, int64(7), hydrate(int8(7)))
	assert.Equal(t, int64(300), hydrate(int16(300)))
	assert.Equal(t, int64(70000), hydrate(int32(70000)))
	assert.Equal(t, int64(5000000000), hydrate(int64(5000000000)))
}

func TestHydratePassthrough(t *testing.T) {
	assert.Nil(t, hydrate(nil))
	assert.Equal(t, "x", hydrate("x"))
	assert.Equal(t, true, hydrate(true))
	assert.Equal(t, 1.5, hydrate(1.5))
}

func TestHydrateCollections(t *testing.T) {
	raw := []interface{}{
		int8(1),
		map[string]interface{}{"n": int16(2), "s": "x"},
		[]interface{}{int32(3)},
	}
	assert.Equal(t, []interface{}{
		int64(1),
		map[string]interface{}{"n": int64(2), "s": "x"},
		[]interface{}{int64(3)},
	}, hydrate(raw))
}

func TestHydrateGraphProperties(t *testing.T) {
	raw := graph.Path{
		Nodes: []graph.Node{
			{NodeIdentity: 1, Labels: []string{"Person"}, Properties: map[string]interface{}{"age": int8(30)}},
		},
		Relationships: []graph.UnboundRelationship{
			{RelIdentity: 2, Type: "KNOWS", Properties: map[string]interface{}{"weight": int16(200)}},
		},
		Sequence: []int{1, 1},
	}

	hydrated, ok := hydrate(raw).(graph.Path)
	assert.True(t, ok)
	assert.Equal(t, int64(30), hydrated.Nodes[0].Properties["age"])
	assert.Equal(t, int64(200), hydrated.Relationships[0].Properties["weight"])
}
