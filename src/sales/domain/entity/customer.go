package entity

import "time"

// Customer cliente identificado por documento. Su alta y edición son
// externas al motor de ventas; aquí sólo se resuelve por ID.
type Customer struct {
	ID         int64     `json:"id"`
	NationalID string    `json:"national_id"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Phone      string    `json:"phone"`
	CreatedAt  time.Time `json:"created_at"`
}

// FullName nombre para mostrar
func (c *Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}
