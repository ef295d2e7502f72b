package cleaning

import (
	"fmt"

	"goscrub/domain/core"
)

// Proposal is the result of proposing an action to the queue. Rejections
// are soft: the caller surfaces Reason to the user and the recipe is left
// untouched.
type Proposal struct {
	Accepted bool   `json:"accepted"`
	Reason   string `json:"reason,omitempty"`
	Action   Action `json:"-"`
}

// Queue is the ordered, user-editable list of pending cleaning actions.
// Redundancy is enforced at insertion time only; reordering and removal
// never re-check it.
type Queue struct {
	actions []Action
}

// NewQueue creates an empty action queue
func NewQueue() *Queue {
	return &Queue{}
}

// Actions returns the queued actions in order
func (q *Queue) Actions() []Action {
	out := make([]Action, len(q.actions))
	copy(out, q.actions)
	return out
}

// Len returns the number of queued actions
func (q *Queue) Len() int {
	return len(q.actions)
}

// Propose appends the action unless an already-queued action makes it
// redundant. Rejection is a declinable result, not an error.
func (q *Queue) Propose(a Action) Proposal {
	for _, existing := range q.actions {
		if redundant(existing, a) {
			return Proposal{
				Accepted: false,
				Reason:   rejectionReason(a),
				Action:   a,
			}
		}
	}
	q.actions = append(q.actions, a)
	return Proposal{Accepted: true, Action: a}
}

// Remove deletes the action with the given id
func (q *Queue) Remove(id core.ActionID) error {
	for i, a := range q.actions {
		if a.ID() == id {
			q.actions = append(q.actions[:i], q.actions[i+1:]...)
			return nil
		}
	}
	return core.NewNotFoundError("action", id.String())
}

// Reorder rearranges the queue to match ids, which must be a permutation
// of the currently queued action ids.
func (q *Queue) Reorder(ids []core.ActionID) error {
	if len(ids) != len(q.actions) {
		return core.ErrBadReorder
	}
	byID := make(map[core.ActionID]Action, len(q.actions))
	for _, a := range q.actions {
		byID[a.ID()] = a
	}
	reordered := make([]Action, 0, len(ids))
	for _, id := range ids {
		a, ok := byID[id]
		if !ok {
			return core.ErrBadReorder
		}
		delete(byID, id)
		reordered = append(reordered, a)
	}
	q.actions = reordered
	return nil
}

// Clear empties the queue. Called by the apply boundary the moment the
// queue's effects are committed into a new baseline dataset.
func (q *Queue) Clear() {
	q.actions = nil
}

// redundant reports whether next duplicates the effect-defining fields of
// an already-queued action. Column-less kinds are unique per kind; column
// kinds are unique per kind and column. Replace actions are finer grained:
// same column and same find text counts as redundant even when the
// replacement text differs.
func redundant(existing, next Action) bool {
	if existing.Kind() != next.Kind() {
		return false
	}
	if next.Column() == "" {
		return true
	}
	if existing.Column() != next.Column() {
		return false
	}
	if next.Kind() == KindReplaceSubstring {
		e := existing.(ReplaceSubstring)
		n := next.(ReplaceSubstring)
		return e.Find == n.Find
	}
	return true
}

func rejectionReason(a Action) string {
	if a.Column() == "" {
		return fmt.Sprintf("a %q step is already queued", a.Kind())
	}
	if a.Kind() == KindReplaceSubstring {
		r := a.(ReplaceSubstring)
		return fmt.Sprintf("a replace of %q in column %q is already queued", r.Find, r.Col)
	}
	return fmt.Sprintf("a %q step already targets column %q", a.Kind(), a.Column())
}
