package viewstate

// Modal is the certificate modal: closed, or open on one carousel index.
type Modal struct {
	open     bool
	selected int
}

// Open shows index i. Opening an open modal just replaces the index.
func (m *Modal) Open(i int) {
	m.open = true
	m.selected = i
}

// Close returns the modal to the closed state.
func (m *Modal) Close() {
	m.open = false
	m.selected = 0
}

// Selected returns the shown index and whether the modal is open.
func (m Modal) Selected() (int, bool) {
	return m.selected, m.open
}
