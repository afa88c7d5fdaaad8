package domain

type Passenger struct {
	ID             int64  `json:"id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	DateOfBirth    Date   `json:"date_of_birth"`
	PassportNumber string `json:"passport_number"`
	Nationality    string `json:"nationality"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
}

func (p Passenger) String() string {
	return p.FirstName + " " + p.LastName
}

func (p Passenger) PrimaryKey() int64 {
	return p.ID
}
