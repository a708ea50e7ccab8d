package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schemaStatements contiene el DDL completo del sistema. Cada sentencia es
// idempotente (IF NOT EXISTS), así que EnsureSchema puede ejecutarse en cada
// arranque sin efectos secundarios. Cascada: companies -> hijos y
// debtors -> nietos vía ON DELETE CASCADE.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS companies (
		id TEXT PRIMARY KEY,
		code TEXT UNIQUE NOT NULL CHECK (code ~ '^[0-9]{4}$'),
		name TEXT NOT NULL,
		email TEXT NOT NULL DEFAULT '',
		phone TEXT NOT NULL DEFAULT '',
		address TEXT NOT NULL DEFAULT '',
		city TEXT NOT NULL DEFAULT '',
		state TEXT NOT NULL DEFAULT '',
		zip TEXT NOT NULL DEFAULT '',
		website TEXT NOT NULL DEFAULT '',
		tax_id TEXT NOT NULL DEFAULT '',
		logo_url TEXT NOT NULL DEFAULT '',
		settings TEXT NOT NULL DEFAULT '{}',
		status TEXT NOT NULL DEFAULT 'active',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS debtors (
		id TEXT PRIMARY KEY,
		company_id TEXT NOT NULL REFERENCES companies (id) ON DELETE CASCADE,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		email TEXT NOT NULL DEFAULT '',
		address TEXT NOT NULL DEFAULT '',
		city TEXT NOT NULL DEFAULT '',
		state TEXT NOT NULL DEFAULT '',
		zip TEXT NOT NULL DEFAULT '',
		ssn TEXT NOT NULL DEFAULT '',
		dob TEXT NOT NULL DEFAULT '',
		employer TEXT NOT NULL DEFAULT '',
		account_number TEXT NOT NULL,
		original_balance NUMERIC(14,2) NOT NULL,
		current_balance NUMERIC(14,2) NOT NULL,
		status TEXT NOT NULL DEFAULT 'active',
		last_payment_date DATE,
		last_payment_amount NUMERIC(14,2),
		creditor_id TEXT NOT NULL DEFAULT '',
		creditor_name TEXT NOT NULL DEFAULT '',
		client_name TEXT NOT NULL DEFAULT '',
		portfolio_id TEXT NOT NULL DEFAULT '',
		case_file_number TEXT NOT NULL DEFAULT '',
		client_claim_number TEXT NOT NULL DEFAULT '',
		date_loaded TEXT NOT NULL DEFAULT '',
		origination_date TEXT NOT NULL DEFAULT '',
		charged_off_date TEXT NOT NULL DEFAULT '',
		purchase_date TEXT NOT NULL DEFAULT '',
		assigned_collector TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		UNIQUE (company_id, account_number)
	)`,

	`CREATE TABLE IF NOT EXISTS phone_numbers (
		id TEXT PRIMARY KEY,
		company_id TEXT NOT NULL REFERENCES companies (id) ON DELETE CASCADE,
		debtor_id TEXT NOT NULL REFERENCES debtors (id) ON DELETE CASCADE,
		type TEXT NOT NULL,
		number TEXT NOT NULL,
		is_primary BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS payments (
		id TEXT PRIMARY KEY,
		company_id TEXT NOT NULL REFERENCES companies (id) ON DELETE CASCADE,
		debtor_id TEXT NOT NULL REFERENCES debtors (id) ON DELETE CASCADE,
		amount NUMERIC(14,2) NOT NULL,
		payment_date DATE NOT NULL,
		method TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'completed',
		reference TEXT NOT NULL DEFAULT '',
		notes TEXT NOT NULL DEFAULT '',
		created_by TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS scheduled_payments (
		id TEXT PRIMARY KEY,
		company_id TEXT NOT NULL REFERENCES companies (id) ON DELETE CASCADE,
		debtor_id TEXT NOT NULL REFERENCES debtors (id) ON DELETE CASCADE,
		amount NUMERIC(14,2) NOT NULL,
		scheduled_date DATE NOT NULL,
		method TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'scheduled',
		reference TEXT NOT NULL DEFAULT '',
		notes TEXT NOT NULL DEFAULT '',
		created_by TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		last_updated TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS notes (
		id TEXT PRIMARY KEY,
		company_id TEXT NOT NULL REFERENCES companies (id) ON DELETE CASCADE,
		debtor_id TEXT NOT NULL REFERENCES debtors (id) ON DELETE CASCADE,
		content TEXT NOT NULL,
		created_by TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS documents (
		id TEXT PRIMARY KEY,
		company_id TEXT NOT NULL REFERENCES companies (id) ON DELETE CASCADE,
		debtor_id TEXT NOT NULL REFERENCES debtors (id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		type TEXT NOT NULL,
		url TEXT NOT NULL,
		uploaded_by TEXT NOT NULL DEFAULT '',
		uploaded_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS actions (
		id TEXT PRIMARY KEY,
		company_id TEXT NOT NULL REFERENCES companies (id) ON DELETE CASCADE,
		debtor_id TEXT NOT NULL REFERENCES debtors (id) ON DELETE CASCADE,
		type TEXT NOT NULL,
		description TEXT NOT NULL,
		due_date TIMESTAMPTZ,
		completed_at TIMESTAMPTZ,
		completed_by TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'pending',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS co_debtors (
		id TEXT PRIMARY KEY,
		company_id TEXT NOT NULL REFERENCES companies (id) ON DELETE CASCADE,
		debtor_id TEXT NOT NULL REFERENCES debtors (id) ON DELETE CASCADE,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		email TEXT NOT NULL DEFAULT '',
		address TEXT NOT NULL DEFAULT '',
		city TEXT NOT NULL DEFAULT '',
		state TEXT NOT NULL DEFAULT '',
		zip TEXT NOT NULL DEFAULT '',
		ssn TEXT NOT NULL DEFAULT '',
		dob TEXT NOT NULL DEFAULT '',
		employer TEXT NOT NULL DEFAULT '',
		relationship TEXT NOT NULL DEFAULT '',
		date_added TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS roles (
		id TEXT PRIMARY KEY,
		company_id TEXT NOT NULL REFERENCES companies (id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		permissions TEXT NOT NULL DEFAULT '[]',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		UNIQUE (company_id, name)
	)`,

	`CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		company_id TEXT NOT NULL REFERENCES companies (id) ON DELETE CASCADE,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		email TEXT NOT NULL,
		password_hash TEXT NOT NULL DEFAULT '',
		role_id TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'active',
		last_login TIMESTAMPTZ,
		department TEXT NOT NULL DEFAULT '',
		position TEXT NOT NULL DEFAULT '',
		phone TEXT NOT NULL DEFAULT '',
		supervisor TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		UNIQUE (company_id, email)
	)`,

	`CREATE TABLE IF NOT EXISTS user_sessions (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL REFERENCES users (id) ON DELETE CASCADE,
		company_id TEXT NOT NULL REFERENCES companies (id) ON DELETE CASCADE,
		token TEXT UNIQUE NOT NULL,
		expires_at TIMESTAMPTZ NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE INDEX IF NOT EXISTS idx_companies_code ON companies (code)`,
	`CREATE INDEX IF NOT EXISTS idx_debtors_company ON debtors (company_id)`,
	`CREATE INDEX IF NOT EXISTS idx_debtors_account_number ON debtors (company_id, account_number)`,
	`CREATE INDEX IF NOT EXISTS idx_debtors_status ON debtors (company_id, status)`,
	`CREATE INDEX IF NOT EXISTS idx_debtors_creditor ON debtors (company_id, creditor_id)`,
	`CREATE INDEX IF NOT EXISTS idx_phone_numbers_debtor ON phone_numbers (company_id, debtor_id)`,
	`CREATE INDEX IF NOT EXISTS idx_payments_debtor ON payments (company_id, debtor_id)`,
	`CREATE INDEX IF NOT EXISTS idx_payments_date ON payments (company_id, payment_date)`,
	`CREATE INDEX IF NOT EXISTS idx_scheduled_payments_debtor ON scheduled_payments (company_id, debtor_id)`,
	`CREATE INDEX IF NOT EXISTS idx_notes_debtor ON notes (company_id, debtor_id)`,
	`CREATE INDEX IF NOT EXISTS idx_documents_debtor ON documents (company_id, debtor_id)`,
	`CREATE INDEX IF NOT EXISTS idx_actions_debtor ON actions (company_id, debtor_id)`,
	`CREATE INDEX IF NOT EXISTS idx_actions_status ON actions (company_id, status)`,
	`CREATE INDEX IF NOT EXISTS idx_co_debtors_debtor ON co_debtors (company_id, debtor_id)`,
	`CREATE INDEX IF NOT EXISTS idx_users_email ON users (company_id, email)`,
	`CREATE INDEX IF NOT EXISTS idx_sessions_token ON user_sessions (token)`,
	`CREATE INDEX IF NOT EXISTS idx_sessions_user ON user_sessions (user_id)`,
}

// EnsureSchema crea tablas e índices si no existen. Se ejecuta una vez en el
// arranque; si falla, el proceso no puede atender peticiones.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
