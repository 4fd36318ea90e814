package store

// Stores bundles the three stores of one application instance.
type Stores struct {
	Trips      *TripStore
	Activities *ActivityStore
	Notes      *NoteStore
}

// New returns an empty set of stores. Initial data is loaded explicitly by
// the caller (see package seed); nothing is created on first use.
func New() *Stores {
	return &Stores{
		Trips:      NewTripStore(),
		Activities: NewActivityStore(),
		Notes:      NewNoteStore(),
	}
}

// Subscribe registers fn on all three stores and returns a function that
// removes every registration.
func (s *Stores) Subscribe(fn func(Event)) (cancel func()) {
	cancels := []func(){
		s.Trips.Subscribe(fn),
		s.Activities.Subscribe(fn),
		s.Notes.Subscribe(fn),
	}
	return func() {
		for _, c := range cancels {
			c()
		}
	}
}
