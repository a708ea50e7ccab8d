package repository

import (
	"context"

	"github.com/cloudcollect/cobranza-api/internal/domain/entity"
)

// NoteRepository define el puerto para notas de la cuenta (inmutables).
type NoteRepository interface {
	Create(ctx context.Context, note *entity.Note) error
	// ListByDebtor devuelve las notas ordenadas por created_at descendente.
	ListByDebtor(ctx context.Context, companyID, debtorID string) ([]*entity.Note, error)
}

// DocumentRepository define el puerto para metadatos de documentos.
type DocumentRepository interface {
	Create(ctx context.Context, doc *entity.Document) error
	// ListByDebtor devuelve los documentos ordenados por uploaded_at descendente.
	ListByDebtor(ctx context.Context, companyID, debtorID string) ([]*entity.Document, error)
}

// ActionRepository define el puerto para tareas/recordatorios de la cuenta.
type ActionRepository interface {
	Create(ctx context.Context, action *entity.Action) error
	// ListByDebtor devuelve las acciones ordenadas por created_at descendente.
	ListByDebtor(ctx context.Context, companyID, debtorID string) ([]*entity.Action, error)
}
