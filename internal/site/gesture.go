package site

// GestureClicks is how many masthead activations open the sign-in form.
const GestureClicks = 5

// MastheadGesture counts activations of the masthead. It is not safe for
// concurrent use.
type MastheadGesture struct {
	clicks int
}

// Click records one activation and reports whether the gesture completed.
// Completing it resets the counter.
func (g *MastheadGesture) Click() bool {
	g.clicks++
	if g.clicks >= GestureClicks {
		g.clicks = 0
		return true
	}
	return false
}

// Progress returns the number of clicks so far; zero means no hint is shown.
func (g *MastheadGesture) Progress() int {
	return g.clicks
}

func (g *MastheadGesture) Reset() {
	g.clicks = 0
}
