package edit

// Action says which history operation just ran.
type Action int

const (
	Executed Action = iota
	Undone
	Redone
)

func (a Action) String() string {
	switch a {
	case Executed:
		return "Executed"
	case Undone:
		return "Undone"
	case Redone:
		return "Redone"
	default:
		return "Unknown"
	}
}

// Listener is called after every Execute, Undo and Redo.
type Listener func(action Action, cmd Command)

// History is the done/undone stack pair. It is not safe for concurrent use;
// the editor drives it from the frame loop.
type History struct {
	done      []Command
	undone    []Command
	listeners []Listener

	depth int
	batch []Command
}

func NewHistory() *History {
	return &History{}
}

// OnEditApplied registers fn to run after every Execute, Undo and Redo.
func (h *History) OnEditApplied(fn Listener) {
	if fn == nil {
		return
	}
	h.listeners = append(h.listeners, fn)
}

func (h *History) notify(action Action, cmd Command) {
	for _, fn := range h.listeners {
		fn(action, cmd)
	}
}

// Execute applies cmd and records it. Any redo history is dropped.
// Inside a transaction the command is applied and held until Commit.
func (h *History) Execute(cmd Command) {
	if cmd == nil {
		return
	}
	cmd.Apply()
	if h.depth > 0 {
		h.batch = append(h.batch, cmd)
		return
	}
	h.push(cmd)
	h.notify(Executed, cmd)
}

func (h *History) push(cmd Command) {
	h.done = append(h.done, cmd)
	h.undone = nil
}

// Undo reverses the most recent command. It reports false when there is
// nothing to undo.
func (h *History) Undo() bool {
	if len(h.done) == 0 || h.depth > 0 {
		return false
	}
	i := len(h.done) - 1
	cmd := h.done[i]
	h.done[i] = nil
	h.done = h.done[:i]
	cmd.Undo()
	h.undone = append(h.undone, cmd)
	h.notify(Undone, cmd)
	return true
}

// Redo repeats the most recently undone command.
func (h *History) Redo() bool {
	if len(h.undone) == 0 || h.depth > 0 {
		return false
	}
	i := len(h.undone) - 1
	cmd := h.undone[i]
	h.undone[i] = nil
	h.undone = h.undone[:i]
	cmd.Redo()
	h.done = append(h.done, cmd)
	h.notify(Redone, cmd)
	return true
}

// Clear drops both stacks without touching any command. Pending transaction
// state is discarded too.
func (h *History) Clear() {
	h.done = nil
	h.undone = nil
	h.batch = nil
	h.depth = 0
}

// CanUndo and CanRedo report false while a transaction is open, matching
// Undo and Redo.
func (h *History) CanUndo() bool { return len(h.done) > 0 && h.depth == 0 }
func (h *History) CanRedo() bool { return len(h.undone) > 0 && h.depth == 0 }

// Len returns the sizes of the done and undone stacks.
func (h *History) Len() (done, undone int) {
	return len(h.done), len(h.undone)
}

// Peek returns the command Undo would reverse next.
func (h *History) Peek() (Command, bool) {
	if len(h.done) == 0 {
		return nil, false
	}
	return h.done[len(h.done)-1], true
}

// Begin opens a transaction. Calls nest; only the outermost Commit records.
func (h *History) Begin() {
	h.depth++
}

func (h *History) InTransaction() bool { return h.depth > 0 }

// Commit closes a transaction. The outermost Commit records everything
// executed since Begin as a single composite entry and returns it, or nil
// when nothing was executed.
func (h *History) Commit() Command {
	if h.depth == 0 {
		return nil
	}
	h.depth--
	if h.depth > 0 || len(h.batch) == 0 {
		if h.depth == 0 {
			h.batch = nil
		}
		return nil
	}
	cmd := Composite(h.batch...)
	h.batch = nil
	h.push(cmd)
	h.notify(Executed, cmd)
	return cmd
}

// Rollback undoes everything executed in the current transaction and closes
// it entirely, including any outer levels.
func (h *History) Rollback() {
	for i := len(h.batch) - 1; i >= 0; i-- {
		h.batch[i].Undo()
	}
	h.batch = nil
	h.depth = 0
}
