package entities

// TipoPessoa discriminates the client's tax document: CPF for natural
// persons, CNPJ for companies.
type TipoPessoa string

const (
	TipoPessoaFisica   TipoPessoa = "fisica"
	TipoPessoaJuridica TipoPessoa = "juridica"
)

// Endereco is the address block shared by clients and technicians.
type Endereco struct {
	Logradouro string `json:"logradouro"`
	Numero     string `json:"numero"`
	Bairro     string `json:"bairro"`
	Cidade     string `json:"cidade"`
	UF         string `json:"uf"`
	CEP        string `json:"cep"`
}

// Client is the installation owner persisted in DynamoDB.
//
// Storage model:
//   - PK: id
//
// The id is derived from the tax document (see ClientID), which guarantees
// at most one client record per CPF/CNPJ and makes the project-submission
// upsert a plain Put.
type Client struct {
	ID         string     `json:"id"`
	Nome       string     `json:"nome"`
	TipoPessoa TipoPessoa `json:"tipo_pessoa"`
	CPFCNPJ    string     `json:"cpf_cnpj"`
	Email      string     `json:"email,omitempty"`
	Telefone   string     `json:"telefone,omitempty"`
	Endereco   Endereco   `json:"endereco"`
}

// ClientID derives the storage key from the client's tax document.
func ClientID(cpfCNPJ string) string {
	return "cli-" + cpfCNPJ
}
