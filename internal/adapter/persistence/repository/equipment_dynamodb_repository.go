package repository

import (
	"context"
	"time"

	"projeto_solar/internal/domain/entities"
	"projeto_solar/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultEquipmentTableName = "equipment"

const equipmentUserIndex = "user_id-index"

type equipmentItem struct {
	ID           string `dynamodbav:"id"`
	UserID       string `dynamodbav:"user_id"`
	ClientID     string `dynamodbav:"client_id,omitempty"`
	Categoria    string `dynamodbav:"categoria"`
	Fabricante   string `dynamodbav:"fabricante"`
	Modelo       string `dynamodbav:"modelo"`
	PotenciaW    string `dynamodbav:"potencia_w"`
	TensaoMaxV   string `dynamodbav:"tensao_max_v"`
	CorrenteMaxA string `dynamodbav:"corrente_max_a"`
	CreatedAt    string `dynamodbav:"created_at"`
}

// EquipmentDynamoRepository persists the user-owned equipment catalog.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id)
//
// Category and client filters are applied with filter expressions on top of
// the user query; catalogs are small enough per user that this stays cheap.
type EquipmentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEquipmentRepository = (*EquipmentDynamoRepository)(nil)

func NewEquipmentDynamoRepository(ddb *dynamodb.Client) *EquipmentDynamoRepository {
	return &EquipmentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("EQUIPMENT_TABLE", defaultEquipmentTableName),
	}
}

func (r *EquipmentDynamoRepository) Create(ctx context.Context, item entities.EquipmentItem) (entities.EquipmentItem, error) {
	av, err := attributevalue.MarshalMap(toEquipmentItem(item))
	if err != nil {
		return entities.EquipmentItem{}, &interfaces.PersistenceError{Op: "equipment.create", Err: err}
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.EquipmentItem{}, classify("equipment.create", "id", err)
	}
	return item, nil
}

func (r *EquipmentDynamoRepository) GetByID(ctx context.Context, id string) (entities.EquipmentItem, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
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

func (r *EquipmentDynamoRepository) ListByUserID(ctx context.Context, userID string, categoria entities.EquipmentCategory, clientID string) ([]entities.EquipmentItem, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(equipmentUserIndex),
		KeyConditionExpression: aws.String("#user_id = :user_id"),
		ExpressionAttributeNames: map[string]string{
			"#user_id": "user_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":user_id": &types.AttributeValueMemberS{Value: userID},
		},
	}

	var filter string
	if categoria != "" {
		filter = "#categoria = :categoria"
		input.ExpressionAttributeNames["#categoria"] = "categoria"
		input.ExpressionAttributeValues[":categoria"] = &types.AttributeValueMemberS{Value: string(categoria)}
	}
	if clientID != "" {
		if filter != "" {
			filter += " AND "
		}
		filter += "#client_id = :client_id"
		input.ExpressionAttributeNames["#client_id"] = "client_id"
		input.ExpressionAttributeValues[":client_id"] = &types.AttributeValueMemberS{Value: clientID}
	}
	if filter != "" {
		input.FilterExpression = aws.String(filter)
	}

	out, err := r.ddb.Query(ctx, input)
	if err != nil {
		return nil, classify("equipment.list", "", err)
	}

	items := make([]entities.EquipmentItem, 0, len(out.Items))
	for _, raw := range out.Items {
		var it equipmentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, &interfaces.PersistenceError{Op: "equipment.list", Err: err}
		}
		items = append(items, fromEquipmentItem(it))
	}
	return items, nil
}

func toEquipmentItem(e entities.EquipmentItem) equipmentItem {
	return equipmentItem{
		ID:           e.ID,
		UserID:       e.UserID,
		ClientID:     e.ClientID,
		Categoria:    string(e.Categoria),
		Fabricante:   e.Fabricante,
		Modelo:       e.Modelo,
		PotenciaW:    decToString(e.PotenciaW, entities.RatingScale),
		TensaoMaxV:   decToString(e.TensaoMaxV, entities.RatingScale),
		CorrenteMaxA: decToString(e.CorrenteMaxA, entities.RatingScale),
		CreatedAt:    e.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromEquipmentItem(it equipmentItem) entities.EquipmentItem {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.EquipmentItem{
		ID:           it.ID,
		UserID:       it.UserID,
		ClientID:     it.ClientID,
		Categoria:    entities.EquipmentCategory(it.Categoria),
		Fabricante:   it.Fabricante,
		Modelo:       it.Modelo,
		PotenciaW:    stringToDec(it.PotenciaW),
		TensaoMaxV:   stringToDec(it.TensaoMaxV),
		CorrenteMaxA: stringToDec(it.CorrenteMaxA),
		CreatedAt:    createdAt,
	}
}
