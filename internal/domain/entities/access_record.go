package entities

import "github.com/shopspring/decimal"

// TipoLigacao is the utility connection type declared on the access request.
type TipoLigacao string

const (
	LigacaoMonofasica TipoLigacao = "monofasico"
	LigacaoBifasica   TipoLigacao = "bifasico"
	LigacaoTrifasica  TipoLigacao = "trifasico"
)

// AccessRecord holds the utility grid-connection data of an installation.
//
// Storage model:
//   - PK: id (derived from the client's tax document, see AccessRecordID)
//
// An access record is created together with its project but may be updated
// independently afterwards without touching project identity.
type AccessRecord struct {
	ID                string          `json:"id"`
	ClientTaxID       string          `json:"client_tax_id"`
	TipoLigacao       TipoLigacao     `json:"tipo_ligacao"`
	TensaoAtendimento string          `json:"tensao_atendimento"`
	Concessionaria    string          `json:"concessionaria"`
	PotenciaInstalada decimal.Decimal `json:"potencia_instalada"`
	Latitude          decimal.Decimal `json:"latitude"`
	Longitude         decimal.Decimal `json:"longitude"`
}

// AccessRecordID derives the storage key from the client's tax document,
// keeping the record addressable by PUT /access/{clientTaxId}.
func AccessRecordID(clientTaxID string) string {
	return "acc-" + clientTaxID
}
