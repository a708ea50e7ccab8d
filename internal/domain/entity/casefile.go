package entity

import "time"

// Note es una anotación libre sobre la cuenta, inmutable y con autor.
type Note struct {
	ID        string
	CompanyID string
	DebtorID  string
	Content   string
	CreatedBy string
	CreatedAt time.Time
}

// Document es un puntero a un archivo generado o subido (carta, estado de
// cuenta, soporte). El binario vive fuera; aquí solo metadatos.
type Document struct {
	ID         string
	CompanyID  string
	DebtorID   string
	Name       string
	Type       string
	URL        string
	UploadedBy string
	UploadedAt time.Time
}

// Action es una tarea o recordatorio sobre la cuenta.
type Action struct {
	ID          string
	CompanyID   string
	DebtorID    string
	Type        string
	Description string
	DueDate     *time.Time
	CompletedAt *time.Time
	CompletedBy string
	Status      string // pending, completed, overdue
	CreatedAt   time.Time
}
