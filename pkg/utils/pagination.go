package utils

// CalculateTotalPages returns the page count for a total row count at the
// given page size.
func CalculateTotalPages(total int64, perPage int) int {
	if perPage <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}

// CalculateOffset converts a 1-based page number to a row offset. Pages
// below 1 clamp to the first page.
func CalculateOffset(page, perPage int) int {
	if page < 1 || perPage < 0 {
		return 0
	}
	return (page - 1) * perPage
}
