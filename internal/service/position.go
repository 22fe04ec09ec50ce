package service

// nextPosition appends after the current maximum. Positions are never
// renumbered, so gaps left by deletions persist.
func nextPosition(max int, exists bool) int {
	if !exists {
		return 0
	}
	return max + 1
}
