package timezone

// ResetStage marks which side of a full row-set reset a notification is on.
type ResetStage int

const (
	// ResetBegin: the row set is about to be replaced; drop cached rows.
	ResetBegin ResetStage = iota
	// ResetEnd: the new row set is in place; re-read row count and data.
	ResetEnd
)

func (s ResetStage) String() string {
	if s == ResetBegin {
		return "begin"
	}
	return "end"
}

// Observer receives the two signals a presentation layer needs from a view.
// Calls are synchronous, on the goroutine that caused the change.
type Observer interface {
	RowsReplaced(stage ResetStage)
	PropertyChanged(name string)
}

// ObserverFuncs adapts optional callbacks to an Observer. Nil fields are
// skipped.
type ObserverFuncs struct {
	OnRowsReplaced    func(stage ResetStage)
	OnPropertyChanged func(name string)
}

func (f ObserverFuncs) RowsReplaced(stage ResetStage) {
	if f.OnRowsReplaced != nil {
		f.OnRowsReplaced(stage)
	}
}

func (f ObserverFuncs) PropertyChanged(name string) {
	if f.OnPropertyChanged != nil {
		f.OnPropertyChanged(name)
	}
}

// Observers is a callback list owned by a single view. It is not safe for
// concurrent use; views are driven from one goroutine at a time.
type Observers struct {
	next  int
	slots []observerSlot
}

type observerSlot struct {
	id  int
	obs Observer
}

// Add subscribes obs and returns a function that unsubscribes it.
func (o *Observers) Add(obs Observer) (remove func()) {
	o.next++
	id := o.next
	o.slots = append(o.slots, observerSlot{id: id, obs: obs})
	return func() {
		for i, s := range o.slots {
			if s.id == id {
				o.slots = append(o.slots[:i:i], o.slots[i+1:]...)
				return
			}
		}
	}
}

// Len returns the number of subscribed observers.
func (o *Observers) Len() int {
	return len(o.slots)
}

func (o *Observers) rowsReplaced(stage ResetStage) {
	for _, s := range o.snapshot() {
		s.obs.RowsReplaced(stage)
	}
}

func (o *Observers) propertyChanged(name string) {
	for _, s := range o.snapshot() {
		s.obs.PropertyChanged(name)
	}
}

// snapshot lets callbacks unsubscribe themselves during delivery.
func (o *Observers) snapshot() []observerSlot {
	out := make([]observerSlot, len(o.slots))
	copy(out, o.slots)
	return out
}
