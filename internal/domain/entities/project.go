package entities

import "time"

// Project is the registration unit aggregating client, technician, access
// record and equipment kits for one solar installation.
//
// Storage model:
//   - PK: id
//   - GSI: user_id-index (PK: user_id)
//   - num_projeto uniqueness is enforced by a guard row in the
//     project_numbers table written in the same transaction.
type Project struct {
	ID             string    `json:"id"`
	NumProjeto     string    `json:"num_projeto"`
	UserID         string    `json:"user_id"`
	ClientID       string    `json:"client_id"`
	TechnicianID   string    `json:"technician_id,omitempty"`
	AccessRecordID string    `json:"access_record_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// Kit links one equipment item to a project with its quantity and the
// wizard slot (category) it was selected for.
//
// Storage model:
//   - PK: id
//   - GSI: project_id-index (PK: project_id)
type Kit struct {
	ID          string            `json:"id"`
	ProjectID   string            `json:"project_id"`
	EquipmentID string            `json:"equipment_id"`
	Categoria   EquipmentCategory `json:"categoria"`
	Quantidade  int               `json:"quantidade"`
}

// KitRecord is a kit row joined with the equipment item it references.
type KitRecord struct {
	Kit       Kit           `json:"kit"`
	Equipment EquipmentItem `json:"equipment"`
}

// ProjectRecord is the denormalized, immutable snapshot returned after a
// successful registration (and by the project detail lookup). It carries
// copies, never live references to committed state.
type ProjectRecord struct {
	Project    Project       `json:"project"`
	Client     Client        `json:"client"`
	Technician *Technician   `json:"technician,omitempty"`
	Access     *AccessRecord `json:"access,omitempty"`
	Kits       []KitRecord   `json:"kits"`
}

// Snapshot deep-copies the record so callers cannot mutate shared state.
func (r ProjectRecord) Snapshot() ProjectRecord {
	out := r
	if r.Technician != nil {
		t := *r.Technician
		out.Technician = &t
	}
	if r.Access != nil {
		a := *r.Access
		out.Access = &a
	}
	out.Kits = make([]KitRecord, len(r.Kits))
	copy(out.Kits, r.Kits)
	return out
}
