package service

import (
	"fmt"

	"github.com/google/uuid"

	"xintern-backend/internal/domain"
)

// OrphanPolicy decides what happens to a comment whose declared parent
// is missing from its review's comment list.
type OrphanPolicy string

const (
	// OrphanDrop leaves the orphan out of the assembled forest.
	OrphanDrop OrphanPolicy = "drop"
	// OrphanPromote turns the orphan into a root.
	OrphanPromote OrphanPolicy = "promote"
	// OrphanError refuses to assemble and reports the broken reference.
	OrphanError OrphanPolicy = "error"
)

func ParseOrphanPolicy(s string) (OrphanPolicy, error) {
	switch OrphanPolicy(s) {
	case OrphanDrop, OrphanPromote, OrphanError:
		return OrphanPolicy(s), nil
	case "":
		return OrphanDrop, nil
	}
	return "", fmt.Errorf("unknown orphan policy %q", s)
}

// ThreadAssembler turns a review's flat, insertion-ordered comment list
// into a forest of reply trees rooted at the top-level comments.
type ThreadAssembler struct {
	policy OrphanPolicy
}

func NewThreadAssembler(policy OrphanPolicy) *ThreadAssembler {
	return &ThreadAssembler{policy: policy}
}

// Assemble partitions the list into roots and replies, indexes replies
// by parent identity and walks each root breadth-first, attaching every
// node's direct children in original insertion order. The input slice is
// not modified; nodes in the returned forest are copies.
func (a *ThreadAssembler) Assemble(comments []domain.Comment) ([]*domain.Comment, error) {
	nodes := make([]*domain.Comment, len(comments))
	present := make(map[uuid.UUID]*domain.Comment, len(comments))
	for i := range comments {
		node := comments[i]
		node.Replies = nil
		nodes[i] = &node
		present[node.ID] = nodes[i]
	}

	roots := []*domain.Comment{}
	children := make(map[uuid.UUID][]*domain.Comment)
	for _, node := range nodes {
		switch {
		case node.ParentID == nil:
			roots = append(roots, node)
		case present[*node.ParentID] != nil:
			children[*node.ParentID] = append(children[*node.ParentID], node)
		default:
			switch a.policy {
			case OrphanPromote:
				roots = append(roots, node)
			case OrphanError:
				return nil, fmt.Errorf("comment %s references missing parent %s", node.ID, *node.ParentID)
			}
			// OrphanDrop: silently absent from the forest.
		}
	}

	for _, root := range roots {
		queue := []*domain.Comment{root}
		for len(queue) > 0 {
			node := queue[0]
			queue = queue[1:]
			node.Replies = children[node.ID]
			queue = append(queue, node.Replies...)
		}
	}

	return roots, nil
}
