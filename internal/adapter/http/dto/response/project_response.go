package response

import (
	"fmt"
	"time"

	"projeto_solar/internal/domain/entities"
)

// ProjectResponse is the summary row returned by the project listing.
type ProjectResponse struct {
	ID             string    `json:"id"`
	NumProjeto     string    `json:"num_projeto"`
	ClientID       string    `json:"client_id"`
	TechnicianID   string    `json:"technician_id,omitempty"`
	AccessRecordID string    `json:"access_record_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

func FromProject(p entities.Project) ProjectResponse {
	return ProjectResponse{
		ID:             p.ID,
		NumProjeto:     p.NumProjeto,
		ClientID:       p.ClientID,
		TechnicianID:   p.TechnicianID,
		AccessRecordID: p.AccessRecordID,
		CreatedAt:      p.CreatedAt,
	}
}

func FromProjects(projects []entities.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, FromProject(p))
	}
	return out
}

// ProjectRecordResponse is the denormalized view returned after creation and
// by the project detail lookup.
type ProjectRecordResponse struct {
	ID         string              `json:"id"`
	NumProjeto string              `json:"num_projeto"`
	CreatedAt  time.Time           `json:"created_at"`
	Cliente    ClientResponse      `json:"cliente"`
	Tecnico    *TechnicianResponse `json:"tecnico,omitempty"`
	Acesso     *AccessResponse     `json:"acesso,omitempty"`
	Kits       []KitResponse       `json:"kits"`
}

type ClientResponse struct {
	ID         string           `json:"id"`
	Nome       string           `json:"nome"`
	TipoPessoa string           `json:"tipo_pessoa"`
	CPFCNPJ    string           `json:"cpf_cnpj"`
	Email      string           `json:"email,omitempty"`
	Telefone   string           `json:"telefone,omitempty"`
	Endereco   EnderecoResponse `json:"endereco"`
}

type TechnicianResponse struct {
	ID           string           `json:"id"`
	Nome         string           `json:"nome"`
	Registro     string           `json:"registro"`
	TipoRegistro string           `json:"tipo_registro"`
	Email        string           `json:"email,omitempty"`
	Telefone     string           `json:"telefone,omitempty"`
	Endereco     EnderecoResponse `json:"endereco"`
}

type EnderecoResponse struct {
	Logradouro string `json:"logradouro"`
	Numero     string `json:"numero"`
	Bairro     string `json:"bairro,omitempty"`
	Cidade     string `json:"cidade"`
	UF         string `json:"uf"`
	CEP        string `json:"cep"`
}

type KitResponse struct {
	ID          string            `json:"id"`
	EquipmentID string            `json:"equipment_id"`
	Categoria   string            `json:"categoria"`
	Quantidade  int               `json:"quantidade"`
	Equipment   EquipmentResponse `json:"equipment"`
}

func FromProjectRecord(rec entities.ProjectRecord) ProjectRecordResponse {
	out := ProjectRecordResponse{
		ID:         rec.Project.ID,
		NumProjeto: rec.Project.NumProjeto,
		CreatedAt:  rec.Project.CreatedAt,
		Cliente:    fromClient(rec.Client),
		Kits:       make([]KitResponse, 0, len(rec.Kits)),
	}
	if rec.Technician != nil {
		tec := fromTechnician(*rec.Technician)
		out.Tecnico = &tec
	}
	if rec.Access != nil {
		acc := FromAccessRecord(*rec.Access)
		out.Acesso = &acc
	}
	for _, kit := range rec.Kits {
		out.Kits = append(out.Kits, KitResponse{
			ID:          kit.Kit.ID,
			EquipmentID: kit.Kit.EquipmentID,
			Categoria:   string(kit.Kit.Categoria),
			Quantidade:  kit.Kit.Quantidade,
			Equipment:   FromEquipmentItem(kit.Equipment),
		})
	}
	return out
}

func fromClient(c entities.Client) ClientResponse {
	return ClientResponse{
		ID:         c.ID,
		Nome:       c.Nome,
		TipoPessoa: string(c.TipoPessoa),
		CPFCNPJ:    c.CPFCNPJ,
		Email:      c.Email,
		Telefone:   c.Telefone,
		Endereco:   fromEndereco(c.Endereco),
	}
}

func fromTechnician(t entities.Technician) TechnicianResponse {
	return TechnicianResponse{
		ID:           t.ID,
		Nome:         t.Nome,
		Registro:     t.Registro,
		TipoRegistro: string(t.TipoRegistro),
		Email:        t.Email,
		Telefone:     t.Telefone,
		Endereco:     fromEndereco(t.Endereco),
	}
}

func fromEndereco(e entities.Endereco) EnderecoResponse {
	return EnderecoResponse{
		Logradouro: e.Logradouro,
		Numero:     e.Numero,
		Bairro:     e.Bairro,
		Cidade:     e.Cidade,
		UF:         e.UF,
		CEP:        e.CEP,
	}
}

// mapsURL builds a Google Maps link from the installation coordinates.
func mapsURL(lat, long string) string {
	return fmt.Sprintf("https://www.google.com/maps?q=%s,%s", lat, long)
}
