package main

// handleNavigation pans the canvas, or moves the shape in move mode.
func (m *model) handleNavigation(key string, speed int) {
	if m.mode == ModeMove {
		m.handleShapeMove(key, speed)
		return
	}
	m.handlePan(key, speed)
}

func (m *model) handlePan(key string, speed int) {
	switch key {
	case "h", "left", "H", "shift+left":
		m.ws.panX -= speed
	case "l", "right", "L", "shift+right":
		m.ws.panX += speed
	case "k", "up", "K", "shift+up":
		m.ws.panY -= speed
	case "j", "down", "J", "shift+down":
		m.ws.panY += speed
	}
}

func (m *model) handleShapeMove(key string, speed int) {
	step := float64(speed * moveStep)
	switch key {
	case "h", "left", "H", "shift+left":
		m.ws.move(-step, 0)
	case "l", "right", "L", "shift+right":
		m.ws.move(step, 0)
	case "k", "up", "K", "shift+up":
		m.ws.move(0, -step)
	case "j", "down", "J", "shift+down":
		m.ws.move(0, step)
	}
}

func (m *model) getMoveSpeed(key string) int {
	switch key {
	case "H", "L", "K", "J", "shift+left", "shift+right", "shift+up", "shift+down":
		return 2
	default:
		return 1
	}
}

func isNavigationKey(key string) bool {
	switch key {
	case "h", "j", "k", "l", "H", "J", "K", "L",
		"left", "right", "up", "down",
		"shift+left", "shift+right", "shift+up", "shift+down":
		return true
	}
	return false
}
