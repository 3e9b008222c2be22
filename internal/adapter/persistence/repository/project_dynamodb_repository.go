package repository

import (
	"context"
	"strconv"
	"time"

	"projeto_solar/internal/domain/entities"
	"projeto_solar/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultProjectsTableName       = "projects"
	defaultClientsTableName        = "clients"
	defaultTechniciansTableName    = "technicians"
	defaultAccessRecordsTableName  = "access_records"
	defaultProjectNumbersTableName = "project_numbers"
	defaultKitsTableName           = "kits"
	defaultCountersTableName       = "counters"

	projectUserIndex = "user_id-index"
	kitProjectIndex  = "project_id-index"

	projectNumberCounter = "project_number"

	coordinateScale = 6
)

type projectItem struct {
	ID             string `dynamodbav:"id"`
	NumProjeto     string `dynamodbav:"num_projeto"`
	UserID         string `dynamodbav:"user_id"`
	ClientID       string `dynamodbav:"client_id"`
	TechnicianID   string `dynamodbav:"technician_id,omitempty"`
	AccessRecordID string `dynamodbav:"access_record_id,omitempty"`
	CreatedAt      string `dynamodbav:"created_at"`
}

type clientItem struct {
	ID         string `dynamodbav:"id"`
	Nome       string `dynamodbav:"nome"`
	TipoPessoa string `dynamodbav:"tipo_pessoa"`
	CPFCNPJ    string `dynamodbav:"cpf_cnpj"`
	Email      string `dynamodbav:"email,omitempty"`
	Telefone   string `dynamodbav:"telefone,omitempty"`
	Logradouro string `dynamodbav:"logradouro"`
	Numero     string `dynamodbav:"numero"`
	Bairro     string `dynamodbav:"bairro"`
	Cidade     string `dynamodbav:"cidade"`
	UF         string `dynamodbav:"uf"`
	CEP        string `dynamodbav:"cep"`
}

type technicianItem struct {
	ID           string `dynamodbav:"id"`
	Nome         string `dynamodbav:"nome"`
	Registro     string `dynamodbav:"registro"`
	TipoRegistro string `dynamodbav:"tipo_registro"`
	Email        string `dynamodbav:"email,omitempty"`
	Telefone     string `dynamodbav:"telefone,omitempty"`
	Logradouro   string `dynamodbav:"logradouro"`
	Numero       string `dynamodbav:"numero"`
	Bairro       string `dynamodbav:"bairro"`
	Cidade       string `dynamodbav:"cidade"`
	UF           string `dynamodbav:"uf"`
	CEP          string `dynamodbav:"cep"`
}

type accessItem struct {
	ID                string `dynamodbav:"id"`
	ClientTaxID       string `dynamodbav:"client_tax_id"`
	TipoLigacao       string `dynamodbav:"tipo_ligacao"`
	TensaoAtendimento string `dynamodbav:"tensao_atendimento"`
	Concessionaria    string `dynamodbav:"concessionaria"`
	PotenciaInstalada string `dynamodbav:"potencia_instalada"`
	Latitude          string `dynamodbav:"latitude"`
	Longitude         string `dynamodbav:"longitude"`
}

type kitItem struct {
	ID          string `dynamodbav:"id"`
	ProjectID   string `dynamodbav:"project_id"`
	EquipmentID string `dynamodbav:"equipment_id"`
	Categoria   string `dynamodbav:"categoria"`
	Quantidade  int    `dynamodbav:"quantidade"`
}

// ProjectDynamoRepository persists project aggregates across the projects,
// clients, technicians, access_records, project_numbers and kits tables.
//
// Table requirements:
//   - projects: PK id (string), GSI user_id-index (PK user_id)
//   - clients, technicians, access_records: PK id (string)
//   - project_numbers: PK num_projeto (string)
//   - kits: PK id (string), GSI project_id-index (PK project_id)
//   - counters: PK name (string), numeric attribute seq
type ProjectDynamoRepository struct {
	ddb           *dynamodb.Client
	projectsTable string
	clientsTable  string
	techsTable    string
	accessTable   string
	numbersTable  string
	kitsTable     string
	countersTable string
	equipTable    string
}

var _ interfaces.IProjectRepository = (*ProjectDynamoRepository)(nil)

func NewProjectDynamoRepository(ddb *dynamodb.Client) *ProjectDynamoRepository {
	return &ProjectDynamoRepository{
		ddb:           ddb,
		projectsTable: getenvDefault("PROJECTS_TABLE", defaultProjectsTableName),
		clientsTable:  getenvDefault("CLIENTS_TABLE", defaultClientsTableName),
		techsTable:    getenvDefault("TECHNICIANS_TABLE", defaultTechniciansTableName),
		accessTable:   getenvDefault("ACCESS_RECORDS_TABLE", defaultAccessRecordsTableName),
		numbersTable:  getenvDefault("PROJECT_NUMBERS_TABLE", defaultProjectNumbersTableName),
		kitsTable:     getenvDefault("KITS_TABLE", defaultKitsTableName),
		countersTable: getenvDefault("COUNTERS_TABLE", defaultCountersTableName),
		equipTable:    getenvDefault("EQUIPMENT_TABLE", defaultEquipmentTableName),
	}
}

// CreateAggregate writes the whole project graph in one TransactWriteItems
// call. Client, technician and access rows use derived natural-key ids, so
// their unconditional puts are idempotent upserts. The num_projeto guard row
// carries the only caller-fixable condition: its failure classifies as a
// conflict on num_projeto, everything else as a persistence failure.
func (r *ProjectDynamoRepository) CreateAggregate(ctx context.Context, graph interfaces.ProjectGraph) error {
	var (
		items  []types.TransactWriteItem
		fields []string
	)

	add := func(tableName string, it any, condition, field string) error {
		av, err := attributevalue.MarshalMap(it)
		if err != nil {
			return err
		}
		put := &types.Put{
			TableName: aws.String(tableName),
			Item:      av,
		}
		if condition != "" {
			put.ConditionExpression = aws.String(condition)
		}
		items = append(items, types.TransactWriteItem{Put: put})
		fields = append(fields, field)
		return nil
	}

	if err := add(r.clientsTable, toClientItem(graph.Client), "", ""); err != nil {
		return &interfaces.PersistenceError{Op: "projects.create", Err: err}
	}
	if graph.Technician != nil {
		if err := add(r.techsTable, toTechnicianItem(*graph.Technician), "", ""); err != nil {
			return &interfaces.PersistenceError{Op: "projects.create", Err: err}
		}
	}
	if graph.Access != nil {
		if err := add(r.accessTable, toAccessItem(*graph.Access), "", ""); err != nil {
			return &interfaces.PersistenceError{Op: "projects.create", Err: err}
		}
	}

	guard := map[string]string{"num_projeto": graph.Project.NumProjeto, "project_id": graph.Project.ID}
	if err := add(r.numbersTable, guard, "attribute_not_exists(num_projeto)", "num_projeto"); err != nil {
		return &interfaces.PersistenceError{Op: "projects.create", Err: err}
	}

	if err := add(r.projectsTable, toProjectItem(graph.Project), "attribute_not_exists(id)", ""); err != nil {
		return &interfaces.PersistenceError{Op: "projects.create", Err: err}
	}
	for _, kit := range graph.Kits {
		if err := add(r.kitsTable, toKitItem(kit), "", ""); err != nil {
			return &interfaces.PersistenceError{Op: "projects.create", Err: err}
		}
	}

	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: items,
	})
	return classifyTransact("projects.create", fields, err)
}

// NextProjectSequence atomically increments the project-number counter and
// returns the new value. Candidates may be burned by failed transactions;
// the guard row, not the counter, is the uniqueness authority.
func (r *ProjectDynamoRepository) NextProjectSequence(ctx context.Context) (int64, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.countersTable),
		Key: map[string]types.AttributeValue{
			"name": &types.AttributeValueMemberS{Value: projectNumberCounter},
		},
		UpdateExpression: aws.String("ADD #seq :one"),
		ExpressionAttributeNames: map[string]string{
			"#seq": "seq",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, &interfaces.PersistenceError{Op: "projects.next_sequence", Err: err}
	}

	n, ok := out.Attributes["seq"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, &interfaces.PersistenceError{Op: "projects.next_sequence", Err: errMissingCounter}
	}
	seq, err := strconv.ParseInt(n.Value, 10, 64)
	if err != nil {
		return 0, &interfaces.PersistenceError{Op: "projects.next_sequence", Err: err}
	}
	return seq, nil
}

func (r *ProjectDynamoRepository) GetByID(ctx context.Context, id string) (entities.Project, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.projectsTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Project{}, classify("projects.get", "", err)
	}
	if len(out.Item) == 0 {
		return entities.Project{}, nil
	}

	var it projectItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Project{}, &interfaces.PersistenceError{Op: "projects.get", Err: err}
	}
	return fromProjectItem(it), nil
}

// GetRecord assembles the denormalized view: project row, then the client,
// technician and access rows it points at, then kits joined with their
// equipment items.
func (r *ProjectDynamoRepository) GetRecord(ctx context.Context, id string) (entities.ProjectRecord, error) {
	project, err := r.GetByID(ctx, id)
	if err != nil {
		return entities.ProjectRecord{}, err
	}
	if project.ID == "" {
		return entities.ProjectRecord{}, nil
	}

	rec := entities.ProjectRecord{Project: project}

	client, err := r.getClient(ctx, project.ClientID)
	if err != nil {
		return entities.ProjectRecord{}, err
	}
	rec.Client = client

	if project.TechnicianID != "" {
		tec, err := r.getTechnician(ctx, project.TechnicianID)
		if err != nil {
			return entities.ProjectRecord{}, err
		}
		if tec.ID != "" {
			rec.Technician = &tec
		}
	}
	if project.AccessRecordID != "" {
		acc, err := r.getAccess(ctx, project.AccessRecordID)
		if err != nil {
			return entities.ProjectRecord{}, err
		}
		if acc.ID != "" {
			rec.Access = &acc
		}
	}

	kits, err := r.listKits(ctx, project.ID)
	if err != nil {
		return entities.ProjectRecord{}, err
	}
	rec.Kits = make([]entities.KitRecord, 0, len(kits))
	for _, kit := range kits {
		equip, err := r.getEquipment(ctx, kit.EquipmentID)
		if err != nil {
			return entities.ProjectRecord{}, err
		}
		rec.Kits = append(rec.Kits, entities.KitRecord{Kit: kit, Equipment: equip})
	}
	return rec, nil
}

func (r *ProjectDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Project, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.projectsTable),
		IndexName:              aws.String(projectUserIndex),
		KeyConditionExpression: aws.String("#user_id = :user_id"),
		ExpressionAttributeNames: map[string]string{
			"#user_id": "user_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":user_id": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, classify("projects.list", "", err)
	}

	projects := make([]entities.Project, 0, len(out.Items))
	for _, raw := range out.Items {
		var it projectItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, &interfaces.PersistenceError{Op: "projects.list", Err: err}
		}
		projects = append(projects, fromProjectItem(it))
	}
	return projects, nil
}

func (r *ProjectDynamoRepository) getClient(ctx context.Context, id string) (entities.Client, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.clientsTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.Client{}, classify("clients.get", "", err)
	}
	if len(out.Item) == 0 {
		return entities.Client{}, nil
	}
	var it clientItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Client{}, &interfaces.PersistenceError{Op: "clients.get", Err: err}
	}
	return fromClientItem(it), nil
}

func (r *ProjectDynamoRepository) getTechnician(ctx context.Context, id string) (entities.Technician, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.techsTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.Technician{}, classify("technicians.get", "", err)
	}
	if len(out.Item) == 0 {
		return entities.Technician{}, nil
	}
	var it technicianItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Technician{}, &interfaces.PersistenceError{Op: "technicians.get", Err: err}
	}
	return fromTechnicianItem(it), nil
}

func (r *ProjectDynamoRepository) getAccess(ctx context.Context, id string) (entities.AccessRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.accessTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.AccessRecord{}, classify("access.get", "", err)
	}
	if len(out.Item) == 0 {
		return entities.AccessRecord{}, nil
	}
	var it accessItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.AccessRecord{}, &interfaces.PersistenceError{Op: "access.get", Err: err}
	}
	return fromAccessItem(it), nil
}

func (r *ProjectDynamoRepository) getEquipment(ctx context.Context, id string) (entities.EquipmentItem, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.equipTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.EquipmentItem{}, classify("equipment.get", "", err)
	}
	if len(out.Item) == 0 {
		return entities.EquipmentItem{}, nil
	}
	var it equipmentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.EquipmentItem{}, &interfaces.PersistenceError{Op: "equipment.get", Err: err}
	}
	return fromEquipmentItem(it), nil
}

func (r *ProjectDynamoRepository) listKits(ctx context.Context, projectID string) ([]entities.Kit, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.kitsTable),
		IndexName:              aws.String(kitProjectIndex),
		KeyConditionExpression: aws.String("#project_id = :project_id"),
		ExpressionAttributeNames: map[string]string{
			"#project_id": "project_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":project_id": &types.AttributeValueMemberS{Value: projectID},
		},
	})
	if err != nil {
		return nil, classify("kits.list", "", err)
	}

	kits := make([]entities.Kit, 0, len(out.Items))
	for _, raw := range out.Items {
		var it kitItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, &interfaces.PersistenceError{Op: "kits.list", Err: err}
		}
		kits = append(kits, fromKitItem(it))
	}
	return kits, nil
}

func toProjectItem(p entities.Project) projectItem {
	return projectItem{
		ID:             p.ID,
		NumProjeto:     p.NumProjeto,
		UserID:         p.UserID,
		ClientID:       p.ClientID,
		TechnicianID:   p.TechnicianID,
		AccessRecordID: p.AccessRecordID,
		CreatedAt:      p.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromProjectItem(it projectItem) entities.Project {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Project{
		ID:             it.ID,
		NumProjeto:     it.NumProjeto,
		UserID:         it.UserID,
		ClientID:       it.ClientID,
		TechnicianID:   it.TechnicianID,
		AccessRecordID: it.AccessRecordID,
		CreatedAt:      createdAt,
	}
}

func toClientItem(c entities.Client) clientItem {
	return clientItem{
		ID:         c.ID,
		Nome:       c.Nome,
		TipoPessoa: string(c.TipoPessoa),
		CPFCNPJ:    c.CPFCNPJ,
		Email:      c.Email,
		Telefone:   c.Telefone,
		Logradouro: c.Endereco.Logradouro,
		Numero:     c.Endereco.Numero,
		Bairro:     c.Endereco.Bairro,
		Cidade:     c.Endereco.Cidade,
		UF:         c.Endereco.UF,
		CEP:        c.Endereco.CEP,
	}
}

func fromClientItem(it clientItem) entities.Client {
	return entities.Client{
		ID:         it.ID,
		Nome:       it.Nome,
		TipoPessoa: entities.TipoPessoa(it.TipoPessoa),
		CPFCNPJ:    it.CPFCNPJ,
		Email:      it.Email,
		Telefone:   it.Telefone,
		Endereco: entities.Endereco{
			Logradouro: it.Logradouro,
			Numero:     it.Numero,
			Bairro:     it.Bairro,
			Cidade:     it.Cidade,
			UF:         it.UF,
			CEP:        it.CEP,
		},
	}
}

func toTechnicianItem(t entities.Technician) technicianItem {
	return technicianItem{
		ID:           t.ID,
		Nome:         t.Nome,
		Registro:     t.Registro,
		TipoRegistro: string(t.TipoRegistro),
		Email:        t.Email,
		Telefone:     t.Telefone,
		Logradouro:   t.Endereco.Logradouro,
		Numero:       t.Endereco.Numero,
		Bairro:       t.Endereco.Bairro,
		Cidade:       t.Endereco.Cidade,
		UF:           t.Endereco.UF,
		CEP:          t.Endereco.CEP,
	}
}

func fromTechnicianItem(it technicianItem) entities.Technician {
	return entities.Technician{
		ID:           it.ID,
		Nome:         it.Nome,
		Registro:     it.Registro,
		TipoRegistro: entities.TipoRegistro(it.TipoRegistro),
		Email:        it.Email,
		Telefone:     it.Telefone,
		Endereco: entities.Endereco{
			Logradouro: it.Logradouro,
			Numero:     it.Numero,
			Bairro:     it.Bairro,
			Cidade:     it.Cidade,
			UF:         it.UF,
			CEP:        it.CEP,
		},
	}
}

func toAccessItem(a entities.AccessRecord) accessItem {
	return accessItem{
		ID:                a.ID,
		ClientTaxID:       a.ClientTaxID,
		TipoLigacao:       string(a.TipoLigacao),
		TensaoAtendimento: a.TensaoAtendimento,
		Concessionaria:    a.Concessionaria,
		PotenciaInstalada: decToString(a.PotenciaInstalada, entities.RatingScale),
		Latitude:          decToString(a.Latitude, coordinateScale),
		Longitude:         decToString(a.Longitude, coordinateScale),
	}
}

func fromAccessItem(it accessItem) entities.AccessRecord {
	return entities.AccessRecord{
		ID:                it.ID,
		ClientTaxID:       it.ClientTaxID,
		TipoLigacao:       entities.TipoLigacao(it.TipoLigacao),
		TensaoAtendimento: it.TensaoAtendimento,
		Concessionaria:    it.Concessionaria,
		PotenciaInstalada: stringToDec(it.PotenciaInstalada),
		Latitude:          stringToDec(it.Latitude),
		Longitude:         stringToDec(it.Longitude),
	}
}

func toKitItem(k entities.Kit) kitItem {
	return kitItem{
		ID:          k.ID,
		ProjectID:   k.ProjectID,
		EquipmentID: k.EquipmentID,
		Categoria:   string(k.Categoria),
		Quantidade:  k.Quantidade,
	}
}

func fromKitItem(it kitItem) entities.Kit {
	return entities.Kit{
		ID:          it.ID,
		ProjectID:   it.ProjectID,
		EquipmentID: it.EquipmentID,
		Categoria:   entities.EquipmentCategory(it.Categoria),
		Quantidade:  it.Quantidade,
	}
}
