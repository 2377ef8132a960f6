package algorithms

import (
	"slices"
)

// Community is a set of vertices connected through alive edges
type Community struct {
	ID      int
	Members []int // ascending vertex ids
}

// Size returns the number of members
func (c *Community) Size() int {
	return len(c.Members)
}

// Partition assigns every vertex to exactly one community
type Partition struct {
	Communities     []*Community
	VertexCommunity []int // vertex id -> community id
}

// Len returns the number of communities
func (p *Partition) Len() int {
	return len(p.Communities)
}

// CommunityOf returns the community id of vertex v
func (p *Partition) CommunityOf(v int) (int, error) {
	if v < 0 || v >= len(p.VertexCommunity) {
		return 0, vertexErr("CommunityOf", v, ErrVertexOutOfRange)
	}
	return p.VertexCommunity[v], nil
}

// Sets returns community id -> sorted member ids. The slices are copies.
func (p *Partition) Sets() map[int][]int {
	sets := make(map[int][]int, len(p.Communities))
	for _, c := range p.Communities {
		sets[c.ID] = slices.Clone(c.Members)
	}
	return sets
}

// Clone returns a deep copy
func (p *Partition) Clone() *Partition {
	out := &Partition{
		Communities:     make([]*Community, len(p.Communities)),
		VertexCommunity: slices.Clone(p.VertexCommunity),
	}
	for i, c := range p.Communities {
		out.Communities[i] = &Community{ID: c.ID, Members: slices.Clone(c.Members)}
	}
	return out
}

// Equivalent reports whether both partitions group the vertices the same
// way, ignoring how communities are numbered.
func (p *Partition) Equivalent(other *Partition) bool {
	if other == nil || len(p.VertexCommunity) != len(other.VertexCommunity) || p.Len() != other.Len() {
		return false
	}

	forward := make(map[int]int, p.Len())
	backward := make(map[int]int, p.Len())
	for v, c := range p.VertexCommunity {
		o := other.VertexCommunity[v]
		if mapped, ok := forward[c]; ok && mapped != o {
			return false
		}
		if mapped, ok := backward[o]; ok && mapped != c {
			return false
		}
		forward[c] = o
		backward[o] = c
	}
	return true
}
