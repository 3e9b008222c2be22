package repository

import (
	"context"
	"errors"
	"fmt"

	"projeto_solar/internal/domain/entities"
	"projeto_solar/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// AccessDynamoRepository maintains access records after project creation.
//
// Table requirements:
//   - PK: id (string), derived from the client tax document
//
// Updates require the row to exist already; a failed existence condition
// maps to the zero value so the use case reports not-found.
type AccessDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAccessRepository = (*AccessDynamoRepository)(nil)

func NewAccessDynamoRepository(ddb *dynamodb.Client) *AccessDynamoRepository {
	return &AccessDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ACCESS_RECORDS_TABLE", defaultAccessRecordsTableName),
	}
}

func (r *AccessDynamoRepository) GetByClientTaxID(ctx context.Context, clientTaxID string) (entities.AccessRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: entities.AccessRecordID(clientTaxID)},
		},
		ConsistentRead: aws.Bool(true),
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

func (r *AccessDynamoRepository) UpdateByClientTaxID(ctx context.Context, clientTaxID string, update interfaces.AccessUpdate) (entities.AccessRecord, error) {
	expr := ""
	vals := map[string]types.AttributeValue{}
	names := map[string]string{"#id": "id"}

	set := func(attr, placeholder, value string) {
		if expr == "" {
			expr = "SET "
		} else {
			expr += ", "
		}
		expr += fmt.Sprintf("#%s = :%s", placeholder, placeholder)
		names["#"+placeholder] = attr
		vals[":"+placeholder] = &types.AttributeValueMemberS{Value: value}
	}

	if update.TipoLigacao != nil {
		set("tipo_ligacao", "tipo_ligacao", string(*update.TipoLigacao))
	}
	if update.TensaoAtendimento != nil {
		set("tensao_atendimento", "tensao_atendimento", *update.TensaoAtendimento)
	}
	if update.Concessionaria != nil {
		set("concessionaria", "concessionaria", *update.Concessionaria)
	}
	if update.PotenciaInstalada != nil {
		set("potencia_instalada", "potencia_instalada", decToString(*update.PotenciaInstalada, entities.RatingScale))
	}
	if update.Latitude != nil {
		set("latitude", "latitude", decToString(*update.Latitude, coordinateScale))
	}
	if update.Longitude != nil {
		set("longitude", "longitude", decToString(*update.Longitude, coordinateScale))
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: entities.AccessRecordID(clientTaxID)},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: vals,
		ExpressionAttributeNames:  names,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.AccessRecord{}, nil
		}
		return entities.AccessRecord{}, classify("access.update", "", err)
	}
	if len(out.Attributes) == 0 {
		return entities.AccessRecord{}, nil
	}

	var it accessItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.AccessRecord{}, &interfaces.PersistenceError{Op: "access.update", Err: err}
	}
	return fromAccessItem(it), nil
}
