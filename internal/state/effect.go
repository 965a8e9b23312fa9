package state

// Effect describes a side effect the reducer wants performed. It is inert
// data: the reducer never performs I/O itself, it hands one of these to the
// executor. A nil Effect means no side effect.
type Effect interface {
	isEffect()
}

// SaveEffect asks for the given task snapshot to be written to disk.
type SaveEffect struct {
	Tasks []Task
}

// LoadEffect asks for the persisted task list to be read from disk.
type LoadEffect struct{}

func (SaveEffect) isEffect() {}
func (LoadEffect) isEffect() {}
