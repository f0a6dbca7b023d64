package dom

// ChangeEvent describes a structural change: Node has been added to or
// removed from Parent.
type ChangeEvent struct {
	Parent *Node // the new parent, or the former parent for removals
	Node   *Node // the node added or removed
}

// ChangeListener is informed about structural changes. Listeners are
// registered with a node and receive events for changes anywhere in the
// subtree of that node.
//
// Events for an added or removed node are dispatched starting at its (former)
// parent. A listener registered on the node itself is not informed about the
// node's own insertion or removal.
//
// Listeners are identified by equality, therefore implementations have to
// be comparable, e.g. pointer types.
type ChangeListener interface {
	NodeAdded(ChangeEvent)
	NodeDeleted(ChangeEvent)
}

// DataChangeEvent describes a change of character data.
type DataChangeEvent struct {
	Node     *Node  // node whose data changed
	OldValue string // data before the change
}

// DataListener is informed about changes of character data. Listeners are
// registered with a node and receive events for changes anywhere in the
// subtree of that node.
//
// Listeners are identified by equality, therefore implementations have to
// be comparable, e.g. pointer types.
type DataListener interface {
	CharacterDataChanged(DataChangeEvent)
}

// ChangeListenerFuncs is an adapter to use functions as a ChangeListener.
// Use a pointer to it for registration.
type ChangeListenerFuncs struct {
	Added   func(ChangeEvent)
	Deleted func(ChangeEvent)
}

// NodeAdded is part of interface ChangeListener.
func (l *ChangeListenerFuncs) NodeAdded(e ChangeEvent) {
	if l.Added != nil {
		l.Added(e)
	}
}

// NodeDeleted is part of interface ChangeListener.
func (l *ChangeListenerFuncs) NodeDeleted(e ChangeEvent) {
	if l.Deleted != nil {
		l.Deleted(e)
	}
}

type dataListenerFunc struct {
	f func(DataChangeEvent)
}

func (l *dataListenerFunc) CharacterDataChanged(e DataChangeEvent) {
	l.f(e)
}

// DataListenerFunc wraps a function as a DataListener.
func DataListenerFunc(f func(DataChangeEvent)) DataListener {
	return &dataListenerFunc{f: f}
}

// --- Registration ----------------------------------------------------------

// AddChangeListener registers a listener for structural changes in the
// subtree of n. Registering a listener twice has no effect.
func (n *Node) AddChangeListener(l ChangeListener) {
	if n.changes == nil {
		n.changes = &registry[ChangeListener]{}
	}
	n.changes.add(l)
}

// RemoveChangeListener unregisters a listener for structural changes.
func (n *Node) RemoveChangeListener(l ChangeListener) {
	n.changes.remove(l)
}

// ChangeListeners returns the listeners for structural changes registered
// with n. The slice must not be modified.
func (n *Node) ChangeListeners() []ChangeListener {
	return n.changes.listeners()
}

// AddDataListener registers a listener for changes of character data in the
// subtree of n. Registering a listener twice has no effect.
func (n *Node) AddDataListener(l DataListener) {
	if n.dataChg == nil {
		n.dataChg = &registry[DataListener]{}
	}
	n.dataChg.add(l)
}

// RemoveDataListener unregisters a listener for changes of character data.
func (n *Node) RemoveDataListener(l DataListener) {
	n.dataChg.remove(l)
}

// DataListeners returns the listeners for changes of character data
// registered with n. The slice must not be modified.
func (n *Node) DataListeners() []DataListener {
	return n.dataChg.listeners()
}

// --- Dispatch --------------------------------------------------------------

// fireNodeAdded informs the listeners of n and all of its ancestors.
func (n *Node) fireNodeAdded(child *Node) {
	e := ChangeEvent{Parent: n, Node: child}
	for m := n; m != nil; m = m.Parent() {
		for _, l := range m.changes.listeners() {
			l.NodeAdded(e)
		}
	}
}

// fireNodeDeleted informs the listeners of n, the former parent of child,
// and all of its ancestors.
func (n *Node) fireNodeDeleted(child *Node) {
	e := ChangeEvent{Parent: n, Node: child}
	for m := n; m != nil; m = m.Parent() {
		for _, l := range m.changes.listeners() {
			l.NodeDeleted(e)
		}
	}
}

func (n *Node) fireDataChanged(old string) {
	e := DataChangeEvent{Node: n, OldValue: old}
	for m := n; m != nil; m = m.Parent() {
		for _, l := range m.dataChg.listeners() {
			l.CharacterDataChanged(e)
		}
	}
}

// registry is an ordered set of listeners. Dispatch iterates over an
// immutable snapshot, which is re-created after the set has changed.
// Listeners may thus add or remove listeners while an event is dispatched.
type registry[L any] struct {
	set      []L
	snapshot []L // nil if invalidated
}

func (r *registry[L]) indexOf(l L) int {
	for i, m := range r.set {
		if any(m) == any(l) {
			return i
		}
	}
	return -1
}

func (r *registry[L]) add(l L) {
	if r.indexOf(l) >= 0 {
		return
	}
	r.set = append(r.set, l)
	r.snapshot = nil
}

func (r *registry[L]) remove(l L) {
	if r == nil {
		return
	}
	if i := r.indexOf(l); i >= 0 {
		r.set = append(r.set[:i], r.set[i+1:]...)
		r.snapshot = nil
	}
}

func (r *registry[L]) listeners() []L {
	if r == nil || len(r.set) == 0 {
		return nil
	}
	if r.snapshot == nil {
		r.snapshot = make([]L, len(r.set))
		copy(r.snapshot, r.set)
	}
	return r.snapshot
}
