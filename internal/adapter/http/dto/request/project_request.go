package request

import (
	"projeto_solar/internal/domain/wizard"
)

// ProjectRequest is the aggregate wizard submission accepted by
// POST /projects. Step payloads are declared in the wizard package; the
// request only assembles them.
type ProjectRequest struct {
	Cliente      wizard.ClientePayload      `json:"cliente"`
	Tecnico      *wizard.TecnicoPayload     `json:"tecnico,omitempty"`
	Acesso       *wizard.AcessoPayload      `json:"acesso,omitempty"`
	Equipamentos wizard.EquipamentosPayload `json:"equipamentos"`
}

// NewStepPayload returns an empty payload to bind the step-validate request
// body into.
func NewStepPayload(s wizard.Step) wizard.StepPayload {
	switch s {
	case wizard.StepCliente:
		return &wizard.ClientePayload{}
	case wizard.StepTecnico:
		return &wizard.TecnicoPayload{}
	case wizard.StepAcesso:
		return &wizard.AcessoPayload{}
	case wizard.StepEquipamentos:
		return &wizard.EquipamentosPayload{}
	}
	return nil
}
