package entities

// TipoRegistro is the professional council that issued the technician's
// registration.
type TipoRegistro string

const (
	TipoRegistroCREA TipoRegistro = "crea"
	TipoRegistroCFT  TipoRegistro = "cft"
)

// Technician is the professional legally responsible for the installation.
//
// Storage model:
//   - PK: id (derived from the registration number, one record per registro)
type Technician struct {
	ID           string       `json:"id"`
	Nome         string       `json:"nome"`
	Registro     string       `json:"registro"`
	TipoRegistro TipoRegistro `json:"tipo_registro"`
	Email        string       `json:"email,omitempty"`
	Telefone     string       `json:"telefone,omitempty"`
	Endereco     Endereco     `json:"endereco"`
}

// TechnicianID derives the storage key from the professional registration.
func TechnicianID(registro string) string {
	return "tec-" + registro
}
