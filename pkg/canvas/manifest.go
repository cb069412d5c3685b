package canvas

import "fmt"

// Manifest maps destination names to 1-based page numbers. It is filled while
// planning the document and is read-only once drawing starts.
type Manifest struct {
	pages map[string]int
	names []string
}

func NewManifest() *Manifest {
	return &Manifest{pages: make(map[string]int)}
}

// Register assigns name to page.
func (m *Manifest) Register(name string, page int) error {
	if _, ok := m.pages[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateDestination, name)
	}
	m.pages[name] = page
	m.names = append(m.names, name)
	return nil
}

// Page returns the page a destination was assigned to.
func (m *Manifest) Page(name string) (int, bool) {
	page, ok := m.pages[name]
	return page, ok
}

// Has reports whether name is a known destination.
func (m *Manifest) Has(name string) bool {
	_, ok := m.pages[name]
	return ok
}

// Names returns destination names in registration order.
func (m *Manifest) Names() []string {
	out := make([]string, len(m.names))
	copy(out, m.names)
	return out
}

func (m *Manifest) Len() int {
	return len(m.names)
}

// tracker enforces the manifest contract for a backend: destinations are placed
// on the page the manifest planned for them, links only target known names, and
// every planned destination has been placed by the time the document is finished.
type tracker struct {
	manifest *Manifest
	page     int
	placed   map[string]bool
	err      error
}

func newTracker(m *Manifest) tracker {
	if m == nil {
		m = NewManifest()
	}
	return tracker{manifest: m, placed: make(map[string]bool)}
}

func (t *tracker) fail(err error) {
	if t.err == nil {
		t.err = err
	}
}

func (t *tracker) newPage() {
	t.page++
}

func (t *tracker) place(name string) bool {
	if t.page == 0 {
		t.fail(ErrNoPage)
		return false
	}
	planned, ok := t.manifest.Page(name)
	if !ok {
		t.fail(fmt.Errorf("%w: %s", ErrUnresolvedDestination, name))
		return false
	}
	if planned != t.page {
		t.fail(fmt.Errorf("%w: %s planned for page %d, placed on page %d", ErrDestinationMismatch, name, planned, t.page))
		return false
	}
	t.placed[name] = true
	return true
}

func (t *tracker) target(name string) bool {
	if t.page == 0 {
		t.fail(ErrNoPage)
		return false
	}
	if !t.manifest.Has(name) {
		t.fail(fmt.Errorf("%w: %s", ErrUnresolvedDestination, name))
		return false
	}
	return true
}

func (t *tracker) finish() error {
	if t.err != nil {
		return t.err
	}
	for _, name := range t.manifest.Names() {
		if !t.placed[name] {
			return fmt.Errorf("%w: %s", ErrDestinationMissing, name)
		}
	}
	return nil
}
