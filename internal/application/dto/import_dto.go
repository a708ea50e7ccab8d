package dto

// ImportRowError describe una fila del CSV que no pudo cargarse.
type ImportRowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// ImportSummaryResponse resultado de una carga masiva de cuentas.
type ImportSummaryResponse struct {
	Imported int              `json:"imported"`
	Failed   int              `json:"failed"`
	Errors   []ImportRowError `json:"errors"`
}
