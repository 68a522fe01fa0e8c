package domain

// User is a single record returned by the users endpoint
type User struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Username string  `json:"username" validate:"required"`
	Email    string  `json:"email"`
	Phone    string  `json:"phone"`
	Website  string  `json:"website"`
	Address  Address `json:"address"`
	Company  Company `json:"company"`
}

// Address is the postal part of a user record
type Address struct {
	Street  string `json:"street"`
	Suite   string `json:"suite"`
	City    string `json:"city"`
	Zipcode string `json:"zipcode"`
}

// Company is the employer part of a user record
type Company struct {
	Name        string `json:"name"`
	CatchPhrase string `json:"catchPhrase"`
	BS          string `json:"bs"`
}

// LoadProgress tracks the state of the data source fetch
type LoadProgress struct {
	IsLoading bool
	Attempt   int
	Finished  int // last loader attempt that produced a result
	LastError string
}
