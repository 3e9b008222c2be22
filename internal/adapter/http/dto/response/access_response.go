package response

import "projeto_solar/internal/domain/entities"

// AccessResponse exposes an access record. MapaURL is derived from the
// coordinates when both were informed.
type AccessResponse struct {
	ClientTaxID       string  `json:"client_tax_id"`
	TipoLigacao       string  `json:"tipo_ligacao"`
	TensaoAtendimento string  `json:"tensao_atendimento,omitempty"`
	Concessionaria    string  `json:"concessionaria,omitempty"`
	PotenciaInstalada float64 `json:"potencia_instalada"`
	Latitude          float64 `json:"latitude"`
	Longitude         float64 `json:"longitude"`
	MapaURL           string  `json:"mapa_url,omitempty"`
}

func FromAccessRecord(a entities.AccessRecord) AccessResponse {
	out := AccessResponse{
		ClientTaxID:       a.ClientTaxID,
		TipoLigacao:       string(a.TipoLigacao),
		TensaoAtendimento: a.TensaoAtendimento,
		Concessionaria:    a.Concessionaria,
		PotenciaInstalada: a.PotenciaInstalada.InexactFloat64(),
		Latitude:          a.Latitude.InexactFloat64(),
		Longitude:         a.Longitude.InexactFloat64(),
	}
	if !a.Latitude.IsZero() || !a.Longitude.IsZero() {
		out.MapaURL = mapsURL(a.Latitude.String(), a.Longitude.String())
	}
	return out
}
