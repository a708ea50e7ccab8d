package dto

import "github.com/shopspring/decimal"

// DashboardStatsResponse respuesta de GET /api/dashboard/stats. Las claves
// van en camelCase porque el tablero las consume tal cual.
type DashboardStatsResponse struct {
	TotalAccounts     int64           `json:"totalAccounts"`
	ActiveAccounts    int64           `json:"activeAccounts"`
	TotalDebt         decimal.Decimal `json:"totalDebt"`
	CollectedDebt     decimal.Decimal `json:"collectedDebt"`
	MonthlyCollection decimal.Decimal `json:"monthlyCollection"`
	SuccessRate       int             `json:"successRate"`
}
