package domain

type Operator struct {
	ID        int64
	FirstName string
	LastName  string
	Password  string
}
