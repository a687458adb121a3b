package dto

import "time"

// CreateProjectRequest alta de proyecto. Client es el ID de un cliente
// alcanzable por el solicitante.
type CreateProjectRequest struct {
	Name   string `json:"name" validate:"required"`
	Client string `json:"client" validate:"required"`
}

// UpdateProjectRequest actualización de proyecto.
type UpdateProjectRequest struct {
	Name   string `json:"name" validate:"required"`
	Client string `json:"client" validate:"required"`
}

// ProjectResponse proyecto en respuestas.
type ProjectResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Client    string    `json:"client"`
	CreatedBy string    `json:"createdBy"`
	Company   string    `json:"company,omitempty"`
	Archived  bool      `json:"archived"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
