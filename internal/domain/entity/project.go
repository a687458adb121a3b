package entity

import "time"

// Project representa un proyecto asociado a un cliente. A diferencia de
// Client, es alcanzable por su creador o por cualquier usuario de la misma
// compañía (Company se copia del sujeto al crearlo). Archived es reversible.
type Project struct {
	ID        string
	Name      string
	ClientID  string
	CreatedBy string
	Company   string // nombre de compañía copiado del creador; vacío = sin compañía
	Archived  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
