package wizard

import (
	"fmt"
	"reflect"
	"strings"

	"projeto_solar/internal/domain/entities"

	"github.com/go-playground/validator/v10"
)

// Step indexes the wizard pages in submission order.
type Step int

const (
	StepCliente Step = iota
	StepTecnico
	StepAcesso
	StepEquipamentos

	stepCount
)

// StepCount is the number of wizard steps.
const StepCount = int(stepCount)

func (s Step) String() string {
	switch s {
	case StepCliente:
		return "cliente"
	case StepTecnico:
		return "tecnico"
	case StepAcesso:
		return "acesso"
	case StepEquipamentos:
		return "equipamentos"
	}
	return fmt.Sprintf("step(%d)", int(s))
}

// ParseStep resolves a step from its path name.
func ParseStep(name string) (Step, bool) {
	switch name {
	case "cliente":
		return StepCliente, true
	case "tecnico":
		return StepTecnico, true
	case "acesso":
		return StepAcesso, true
	case "equipamentos":
		return StepEquipamentos, true
	}
	return 0, false
}

// FieldError points at a single offending field.
type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// FieldErrors is the failure side of every validation in this package.
type FieldErrors []FieldError

func (e FieldErrors) Error() string {
	if len(e) == 0 {
		return "invalid payload"
	}
	parts := make([]string, len(e))
	for i, fe := range e {
		parts[i] = fe.Path + ": " + fe.Message
	}
	return strings.Join(parts, "; ")
}

// StepPayload is the tagged variant implemented by each step's payload.
// Validation is total: every payload either comes back sanitized or with
// field errors, never as an untyped pass-through.
type StepPayload interface {
	step() Step
	sanitize()
}

// EnderecoPayload mirrors entities.Endereco on the wire.
type EnderecoPayload struct {
	Logradouro string `json:"logradouro" validate:"required,max=128"`
	Numero     string `json:"numero" validate:"required,max=16"`
	Bairro     string `json:"bairro" validate:"omitempty,max=64"`
	Cidade     string `json:"cidade" validate:"required,max=64"`
	UF         string `json:"uf" validate:"required,uf"`
	CEP        string `json:"cep" validate:"required,numeric,len=8"`
}

func (p *EnderecoPayload) sanitizeFields() {
	p.Logradouro = strings.TrimSpace(p.Logradouro)
	p.Numero = strings.TrimSpace(p.Numero)
	p.Bairro = strings.TrimSpace(p.Bairro)
	p.Cidade = strings.TrimSpace(p.Cidade)
	p.UF = strings.ToUpper(strings.TrimSpace(p.UF))
	p.CEP = onlyDigits(p.CEP)
}

func (p EnderecoPayload) ToEntity() entities.Endereco {
	return entities.Endereco{
		Logradouro: p.Logradouro,
		Numero:     p.Numero,
		Bairro:     p.Bairro,
		Cidade:     p.Cidade,
		UF:         p.UF,
		CEP:        p.CEP,
	}
}

// ClientePayload is step 0: the installation owner.
type ClientePayload struct {
	Nome       string          `json:"nome" validate:"required,min=3,max=128"`
	TipoPessoa string          `json:"tipo_pessoa" validate:"required,oneof=fisica juridica"`
	CPFCNPJ    string          `json:"cpf_cnpj" validate:"required"`
	Email      string          `json:"email" validate:"omitempty,email"`
	Telefone   string          `json:"telefone" validate:"omitempty,numeric,min=10,max=11"`
	Endereco   EnderecoPayload `json:"endereco"`
}

func (ClientePayload) step() Step { return StepCliente }

func (p *ClientePayload) sanitize() {
	p.Nome = strings.TrimSpace(p.Nome)
	p.TipoPessoa = strings.ToLower(strings.TrimSpace(p.TipoPessoa))
	p.CPFCNPJ = onlyDigits(p.CPFCNPJ)
	p.Email = strings.TrimSpace(p.Email)
	p.Telefone = onlyDigits(p.Telefone)
	p.Endereco.sanitizeFields()
}

// TecnicoPayload is step 1: the responsible professional. The step is
// optional; an entirely empty payload means the wizard skipped it.
type TecnicoPayload struct {
	Nome         string          `json:"nome" validate:"omitempty,min=3,max=128"`
	Registro     string          `json:"registro" validate:"required_with=Nome,omitempty,min=4,max=32"`
	TipoRegistro string          `json:"tipo_registro" validate:"required_with=Registro,omitempty,oneof=crea cft"`
	Email        string          `json:"email" validate:"omitempty,email"`
	Telefone     string          `json:"telefone" validate:"omitempty,numeric,min=10,max=11"`
	Endereco     EnderecoPayload `json:"endereco" validate:"-"`
}

func (TecnicoPayload) step() Step { return StepTecnico }

func (p *TecnicoPayload) sanitize() {
	p.Nome = strings.TrimSpace(p.Nome)
	p.Registro = strings.TrimSpace(p.Registro)
	p.TipoRegistro = strings.ToLower(strings.TrimSpace(p.TipoRegistro))
	p.Email = strings.TrimSpace(p.Email)
	p.Telefone = onlyDigits(p.Telefone)
	p.Endereco.sanitizeFields()
}

// Empty reports whether the step was skipped.
func (p TecnicoPayload) Empty() bool {
	return p.Nome == "" && p.Registro == ""
}

/// AcessoPayload is step 2: utility grid-connection data. Also optional.
type AcessoPayload struct {
	TipoLigacao       string `json:"tipo_ligacao" validate:"omitempty,oneof=monofasico bifasico trifasico"`
	TensaoAtendimento string `json:"tensao_atendimento" validate:"required_with=TipoLigacao,omitempty,max=16"`
	Concessionaria    string `json:"concessionaria" validate:"required_with=TipoLigacao,omitempty,max=64"`
	PotenciaInstalada string `json:"potencia_instalada" validate:"omitempty,decimal"`
	Latitude          string `json:"latitude" validate:"omitempty,decimal"`
	Longitude         string `json:"longitude" validate:"omitempty,decimal"`
}

func (AcessoPayload) step() Step { return StepAcesso }

func (p *AcessoPayload) sanitize() {
	p.TipoLigacao = strings.ToLower(strings.TrimSpace(p.TipoLigacao))
	p.TensaoAtendimento = strings.TrimSpace(p.TensaoAtendimento)
	p.Concessionaria = strings.TrimSpace(p.Concessionaria)
	p.PotenciaInstalada = strings.TrimSpace(p.PotenciaInstalada)
	p.Latitude = strings.TrimSpace(p.Latitude)
	p.Longitude = strings.TrimSpace(p.Longitude)
}

// Empty reports whether the step was skipped.
func (p AcessoPayload) Empty() bool {
	return p.TipoLigacao == ""
}

// EquipmentRef is one equipment selection made in the wizard.
type EquipmentRef struct {
	ItemID     string `json:"item_id" validate:"required"`
	Categoria  string `json:"categoria" validate:"required,oneof=inversor modulo protecao_ca protecao_cc"`
	Quantidade int    `json:"quantidade" validate:"omitempty,min=1,max=1000"`
}

// EquipamentosPayload is step 3: the equipment selection.
type EquipamentosPayload struct {
	Itens []EquipmentRef `json:"itens" validate:"required,min=1,dive"`
}

func (EquipamentosPayload) step() Step { return StepEquipamentos }

func (p *EquipamentosPayload) sanitize() {
	for i := range p.Itens {
		p.Itens[i].ItemID = strings.TrimSpace(p.Itens[i].ItemID)
		p.Itens[i].Categoria = strings.ToLower(strings.TrimSpace(p.Itens[i].Categoria))
		if p.Itens[i].Quantidade == 0 {
			p.Itens[i].Quantidade = 1
		}
	}
}

// Submission is the union of all step payloads, re-validated as a whole
// before it may reach the registration orchestrator.
type Submission struct {
	Cliente      ClientePayload      `json:"cliente"`
	Tecnico      *TecnicoPayload     `json:"tecnico,omitempty"`
	Acesso       *AcessoPayload      `json:"acesso,omitempty"`
	Equipamentos EquipamentosPayload `json:"equipamentos"`
}

// ValidateStep validates one step's payload in isolation. The payload comes
// back sanitized (trimmed strings, digits-only documents, defaults applied)
// or not at all. It never touches storage.
func ValidateStep(s Step, payload StepPayload) (StepPayload, FieldErrors) {
	if payload == nil || payload.step() != s {
		return nil, FieldErrors{{Path: s.String(), Message: "payload does not match step"}}
	}
	payload.sanitize()

	// Optional steps validate clean when skipped.
	switch p := payload.(type) {
	case *TecnicoPayload:
		if p.Empty() {
			return payload, nil
		}
		if errs := validateStruct(p, s.String()); errs != nil {
			return nil, errs
		}
		if errs := validateStruct(&p.Endereco, s.String()+".endereco"); errs != nil {
			return nil, errs
		}
		return payload, nil
	case *AcessoPayload:
		if p.Empty() {
			return payload, nil
		}
	case *ClientePayload:
		if errs := validateStruct(p, s.String()); errs != nil {
			return nil, errs
		}
		if errs := clienteDocumentErrors(*p); errs != nil {
			return nil, errs
		}
		return payload, nil
	}

	if errs := validateStruct(payload, s.String()); errs != nil {
		return nil, errs
	}
	return payload, nil
}

// ValidateAggregate re-validates the union of all step payloads and applies
// the cross-step constraints that cannot be expressed per-step.
func ValidateAggregate(sub Submission) (Submission, FieldErrors) {
	var all FieldErrors

	if _, errs := ValidateStep(StepCliente, &sub.Cliente); errs != nil {
		all = append(all, errs...)
	}
	if sub.Tecnico != nil {
		if _, errs := ValidateStep(StepTecnico, sub.Tecnico); errs != nil {
			all = append(all, errs...)
		}
	}
	if sub.Acesso != nil {
		if _, errs := ValidateStep(StepAcesso, sub.Acesso); errs != nil {
			all = append(all, errs...)
		}
	}
	if _, errs := ValidateStep(StepEquipamentos, &sub.Equipamentos); errs != nil {
		all = append(all, errs...)
	}
	if all != nil {
		return Submission{}, all
	}

	// Cross-step: an informed access request implies a generating system,
	// which needs at least one inverter among the selected equipment.
	if sub.Acesso != nil && !sub.Acesso.Empty() && !hasCategoria(sub.Equipamentos.Itens, string(entities.CategoriaInversor)) {
		all = append(all, FieldError{
			Path:    "equipamentos",
			Message: "pelo menos um inversor é obrigatório quando o acesso é informado",
		})
	}

	if all != nil {
		return Submission{}, all
	}
	return sub, nil
}

func hasCategoria(refs []EquipmentRef, categoria string) bool {
	for _, r := range refs {
		if r.Categoria == categoria {
			return true
		}
	}
	return false
}

// clienteDocumentErrors checks the tax document against the declared person
// type. Both fields live in the same step, so this stays out of the
// aggregate pass.
func clienteDocumentErrors(p ClientePayload) FieldErrors {
	switch p.TipoPessoa {
	case string(entities.TipoPessoaFisica):
		if !isCPF(p.CPFCNPJ) {
			return FieldErrors{{Path: "cliente.cpf_cnpj", Message: "CPF deve ter 11 dígitos"}}
		}
	case string(entities.TipoPessoaJuridica):
		if !isCNPJ(p.CPFCNPJ) {
			return FieldErrors{{Path: "cliente.cpf_cnpj", Message: "CNPJ deve ter 14 dígitos"}}
		}
	}
	return nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("uf", func(fl validator.FieldLevel) bool {
		_, ok := brazilianStates[fl.Field().String()]
		return ok
	})
	_ = v.RegisterValidation("decimal", func(fl validator.FieldLevel) bool {
		return isDecimal(fl.Field().String())
	})
	return v
}

func validateStruct(payload any, prefix string) FieldErrors {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return FieldErrors{{Path: prefix, Message: "payload inválido"}}
	}

	errs := make(FieldErrors, 0, len(ve))
	for _, fe := range ve {
		errs = append(errs, FieldError{
			Path:    prefix + "." + fieldPath(fe),
			Message: messageFor(fe),
		})
	}
	return errs
}

// fieldPath strips the root struct name from the validator namespace,
// leaving the json-tag path of the offending field.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_with":
		return "campo obrigatório"
	case "min":
		return "valor muito curto, mínimo: " + fe.Param()
	case "max":
		return "valor muito longo, máximo: " + fe.Param()
	case "len":
		return "tamanho esperado: " + fe.Param()
	case "oneof":
		return "valor deve ser um de: " + fe.Param()
	case "email":
		return "email inválido"
	case "numeric":
		return "apenas dígitos são permitidos"
	case "uf":
		return "UF inválida"
	case "decimal":
		return "número decimal inválido"
	default:
		return "valor inválido"
	}
}

var brazilianStates = map[string]struct{}{
	"AC": {}, "AL": {}, "AP": {}, "AM": {}, "BA": {}, "CE": {}, "DF": {},
	"ES": {}, "GO": {}, "MA": {}, "MT": {}, "MS": {}, "MG": {}, "PA": {},
	"PB": {}, "PR": {}, "PE": {}, "PI": {}, "RJ": {}, "RN": {}, "RS": {},
	"RO": {}, "RR": {}, "SC": {}, "SP": {}, "SE": {}, "TO": {},
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isCPF(s string) bool { return len(s) == 11 && s == onlyDigits(s) }

func isCNPJ(s string) bool { return len(s) == 14 && s == onlyDigits(s) }

func isDecimal(s string) bool {
	if s == "" {
		return false
	}
	dot := false
	for i, r := range s {
		switch {
		case r == '-' && i == 0:
		case r == '.' && !dot:
			dot = true
		case r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}
