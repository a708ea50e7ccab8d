package dto

import "time"

// CreateNoteRequest entrada para anotar una cuenta.
type CreateNoteRequest struct {
	ID        string `json:"id"`
	DebtorID  string `json:"debtorId" validate:"required"`
	Content   string `json:"content" validate:"required"`
	CreatedBy string `json:"createdBy"`
}

// NoteResponse salida de una nota.
type NoteResponse struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"company_id"`
	DebtorID  string    `json:"debtor_id"`
	Content   string    `json:"content"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateDocumentRequest entrada para registrar los metadatos de un documento.
type CreateDocumentRequest struct {
	ID         string `json:"id"`
	DebtorID   string `json:"debtorId" validate:"required"`
	Name       string `json:"name" validate:"required"`
	Type       string `json:"type"`
	URL        string `json:"url"`
	UploadedBy string `json:"uploadedBy"`
}

// DocumentResponse salida de un documento.
type DocumentResponse struct {
	ID         string    `json:"id"`
	CompanyID  string    `json:"company_id"`
	DebtorID   string    `json:"debtor_id"`
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	URL        string    `json:"url"`
	UploadedBy string    `json:"uploaded_by"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// CreateActionRequest entrada para crear una tarea o recordatorio.
type CreateActionRequest struct {
	ID          string  `json:"id"`
	DebtorID    string  `json:"debtorId" validate:"required"`
	Type        string  `json:"type" validate:"required"`
	Description string  `json:"description"`
	DueDate     *string `json:"dueDate"`
	Status      string  `json:"status"`
}

// ActionResponse salida de una acción.
type ActionResponse struct {
	ID          string     `json:"id"`
	CompanyID   string     `json:"company_id"`
	DebtorID    string     `json:"debtor_id"`
	Type        string     `json:"type"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"due_date"`
	CompletedAt *time.Time `json:"completed_at"`
	CompletedBy string     `json:"completed_by"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
}

// CreateCoDebtorRequest entrada para asociar un codeudor a la cuenta.
type CreateCoDebtorRequest struct {
	ID           string `json:"id"`
	DebtorID     string `json:"debtorId" validate:"required"`
	FirstName    string `json:"firstName" validate:"required"`
	LastName     string `json:"lastName" validate:"required"`
	Email        string `json:"email"`
	Address      string `json:"address"`
	City         string `json:"city"`
	State        string `json:"state"`
	Zip          string `json:"zip"`
	SSN          string `json:"ssn"`
	DOB          string `json:"dob"`
	Employer     string `json:"employer"`
	Relationship string `json:"relationship"`
}

// CoDebtorResponse salida de un codeudor.
type CoDebtorResponse struct {
	ID           string    `json:"id"`
	CompanyID    string    `json:"company_id"`
	DebtorID     string    `json:"debtor_id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	Address      string    `json:"address"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	Zip          string    `json:"zip"`
	SSN          string    `json:"ssn"`
	DOB          string    `json:"dob"`
	Employer     string    `json:"employer"`
	Relationship string    `json:"relationship"`
	DateAdded    time.Time `json:"date_added"`
}
