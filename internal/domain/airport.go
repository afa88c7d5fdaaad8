package domain

import "fmt"

type Airport struct {
	ID      int64  `json:"id"`
	Code    string `json:"code"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Country string `json:"country"`
}

func (a Airport) String() string {
	return fmt.Sprintf("%s (%s)", a.City, a.Code)
}

func (a Airport) PrimaryKey() int64 {
	return a.ID
}
