package page

import "sync"

// ScrollThreshold is the scroll offset in pixels past which the navbar
// switches to its compact style.
const ScrollThreshold = 10

// Navbar holds the header's scroll style and mobile menu state.
type Navbar struct {
	mu       sync.Mutex
	scrolled bool
	menuOpen bool
}

// Scroll records the page scroll offset. It reports whether the style changed.
func (n *Navbar) Scroll(y int) bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	scrolled := y > ScrollThreshold
	changed := scrolled != n.scrolled
	n.scrolled = scrolled
	return changed
}

// ToggleMenu flips the mobile menu and returns the new state.
func (n *Navbar) ToggleMenu() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.menuOpen = !n.menuOpen
	return n.menuOpen
}

// CloseMenu closes the mobile menu, as following one of its links does.
func (n *Navbar) CloseMenu() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.menuOpen = false
}

// NavView is a snapshot of the navbar.
type NavView struct {
	Scrolled bool
	MenuOpen bool
}

// View returns the current navbar state.
func (n *Navbar) View() NavView {
	n.mu.Lock()
	defer n.mu.Unlock()
	return NavView{Scrolled: n.scrolled, MenuOpen: n.menuOpen}
}
