// Package editor implements the section editors: self-contained list CRUD
// over one section's items. An editor never owns persistent state; it holds a
// working copy and proposes full slice replacements through its onChange
// callback, which the shell folds back into the document.
package editor

import (
	"strings"

	"github.com/google/uuid"
)

// IDGen produces ids for newly added items. Every editor takes the same
// generator so id assignment is uniform across section kinds.
type IDGen func() string

// NewID is the default IDGen.
func NewID() string { return uuid.NewString() }

// Item is anything keyed by a stable string id.
type Item interface {
	ItemID() string
}

// Toggleable items carry the tri-state visible flag.
type Toggleable[T any] interface {
	Item
	IsVisible() bool
	WithVisible(v *bool) T
}

// Confirm guards destructive actions. A nil Confirm accepts.
type Confirm func() bool

// List is the shared core of all keyed list editors: a working slice, a
// selection, and a callback receiving each proposed replacement.
type List[T Item] struct {
	items    []T
	selected string
	onChange func([]T)
	newID    IDGen
}

// NewList builds a list editor over items. The first item is selected, or
// nothing if the list is empty. gen may be nil to use NewID.
func NewList[T Item](items []T, onChange func([]T), gen IDGen) *List[T] {
	if gen == nil {
		gen = NewID
	}
	l := &List[T]{
		items:    append([]T(nil), items...),
		onChange: onChange,
		newID:    gen,
	}
	if len(l.items) > 0 {
		l.selected = l.items[0].ItemID()
	}
	return l
}

// Items returns a copy of the working slice.
func (l *List[T]) Items() []T {
	return append([]T(nil), l.items...)
}

func (l *List[T]) Len() int { return len(l.items) }

// SelectedID returns the id of the item shown in the detail form, or "".
func (l *List[T]) SelectedID() string { return l.selected }

// Selected returns the selected item.
func (l *List[T]) Selected() (T, bool) {
	return l.find(l.selected)
}

// Select changes the selection. Unknown ids are ignored.
func (l *List[T]) Select(id string) {
	if _, ok := l.find(id); ok {
		l.selected = id
	}
}

func (l *List[T]) find(id string) (T, bool) {
	for _, it := range l.items {
		if it.ItemID() == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// Update replaces the matching item with mutate's result and leaves the rest
// untouched. Items are never mutated in place.
func (l *List[T]) Update(id string, mutate func(T) T) {
	next := make([]T, len(l.items))
	for i, it := range l.items {
		if it.ItemID() == id {
			next[i] = mutate(it)
		} else {
			next[i] = it
		}
	}
	l.emit(next)
}

// add appends (or prepends) an item built from template with a fresh id and
// selects it. The loop guards the add invariant that the new id is not
// already present.
func (l *List[T]) add(template func(id string) T, prepend bool) T {
	id := l.newID()
	for {
		if _, exists := l.find(id); !exists {
			break
		}
		id = l.newID()
	}
	item := template(id)
	var next []T
	if prepend {
		next = append([]T{item}, l.items...)
	} else {
		next = append(append([]T(nil), l.items...), item)
	}
	l.emit(next)
	l.selected = id
	return item
}

// Remove deletes the item after confirmation. If it was selected, the first
// remaining item (or nothing) becomes selected.
func (l *List[T]) Remove(id string, confirm Confirm) bool {
	if confirm != nil && !confirm() {
		return false
	}
	next := make([]T, 0, len(l.items))
	removed := false
	for _, it := range l.items {
		if it.ItemID() == id {
			removed = true
			continue
		}
		next = append(next, it)
	}
	if !removed {
		return false
	}
	l.emit(next)
	if l.selected == id {
		l.selected = ""
		if len(l.items) > 0 {
			l.selected = l.items[0].ItemID()
		}
	}
	return true
}

// MoveUp swaps the item with its upper neighbor. No-op at index 0.
func (l *List[T]) MoveUp(index int) {
	if index <= 0 || index >= len(l.items) {
		return
	}
	next := append([]T(nil), l.items...)
	next[index-1], next[index] = next[index], next[index-1]
	l.emit(next)
}

// MoveDown swaps the item with its lower neighbor. No-op at the last index.
func (l *List[T]) MoveDown(index int) {
	if index < 0 || index >= len(l.items)-1 {
		return
	}
	next := append([]T(nil), l.items...)
	next[index+1], next[index] = next[index], next[index+1]
	l.emit(next)
}

func (l *List[T]) emit(next []T) {
	l.items = next
	if l.onChange != nil {
		l.onChange(append([]T(nil), next...))
	}
}

// ToggleVisible flips an item's visibility: nil and true both count as shown,
// only explicit false hides.
func ToggleVisible[T Toggleable[T]](l *List[T], id string) {
	l.Update(id, func(it T) T {
		return it.WithVisible(visiblePtr(!it.IsVisible()))
	})
}

func visiblePtr(v bool) *bool { return &v }

// splitTrim splits on commas and trims each entry, keeping empties.
func splitTrim(s string) []string {
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// SplitCSV turns a comma separated input into a trimmed list, dropping empty
// entries.
func SplitCSV(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
