// Package scene is a minimal scene graph: a perspective camera, lights and
// point clouds held under one root and rendered as a unit.
package scene

import "github.com/go-gl/mathgl/mgl64"

// Node carries the placement shared by every scene member.
type Node struct {
	Position mgl64.Vec3
}

func (n *Node) node() *Node { return n }

// Object is anything that can be attached to a Scene.
type Object interface {
	node() *Node
}

// Scene is the root of the graph. Membership changes only through Add and
// Remove; children keep insertion order.
type Scene struct {
	children []Object
}

func New() *Scene {
	return &Scene{}
}

// Add attaches objects in order. Objects already attached are skipped.
func (s *Scene) Add(objs ...Object) {
	for _, o := range objs {
		if o == nil || s.index(o) >= 0 {
			continue
		}
		s.children = append(s.children, o)
	}
}

// Remove detaches obj and reports whether it was a member.
func (s *Scene) Remove(obj Object) bool {
	i := s.index(obj)
	if i < 0 {
		return false
	}
	s.children = append(s.children[:i], s.children[i+1:]...)
	return true
}

// Children returns a copy of the member list.
func (s *Scene) Children() []Object {
	out := make([]Object, len(s.children))
	copy(out, s.children)
	return out
}

func (s *Scene) Len() int { return len(s.children) }

// Points returns the attached point clouds in insertion order.
func (s *Scene) Points() []*Points {
	var out []*Points
	for _, o := range s.children {
		if p, ok := o.(*Points); ok {
			out = append(out, p)
		}
	}
	return out
}

func (s *Scene) index(obj Object) int {
	for i, o := range s.children {
		if o == obj {
			return i
		}
	}
	return -1
}
