package statistics

// StatisticCount is the number of employees in one role or department.
type StatisticCount struct {
	Name  string
	Count int64
}
