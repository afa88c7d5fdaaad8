package domain

import "fmt"

type Airline struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Code    string `json:"code"`
	Country string `json:"country"`
}

func (a Airline) String() string {
	return fmt.Sprintf("%s (%s)", a.Name, a.Code)
}

func (a Airline) PrimaryKey() int64 {
	return a.ID
}
