package entity

import "time"

// Quadra representa uma subdivisão nomeada de um mapa que agrupa lotes.
type Quadra struct {
	ID        string
	MapaID    string
	Nome      string
	Descricao string
	CreatedAt time.Time
	UpdatedAt time.Time
}
