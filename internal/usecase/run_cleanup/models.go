package run_cleanup

// Response reports how many bookings each sweep step touched.
type Response struct {
	Completed int64 `json:"completed"`
	Deleted   int64 `json:"deleted"`
}
