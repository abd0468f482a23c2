package service

// clampPage normalizes a pagination window: both page and limit are
// clamped to at least 1 whatever the caller sends.
func clampPage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}
	return page, limit
}
