package constant

const (
	PAGE_SIZE = 10
)
