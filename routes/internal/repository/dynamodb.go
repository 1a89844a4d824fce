package repository

import (
	"context"
	"sort"
	"strconv"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/meetupaws/flight_route_manager/routes/internal/model"
	"github.com/pkg/errors"
)

// DynamoDBRepository stores one item per route in a table whose hash key is
// flight_id.
type DynamoDBRepository struct {
	client *dynamodb.DynamoDB
	table  string
}

func (r *DynamoDBRepository) Save(ctx context.Context, route model.Route) error {
	_, err := r.client.PutItemWithContext(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.table),
		ConditionExpression: aws.String("attribute_not_exists(flight_id)"),
		Item: map[string]*dynamodb.AttributeValue{
			"flight_id": {
				S: aws.String(route.FlightID),
			},
			"date": {
				S: aws.String(orDash(route.Date)),
			},
			"time": {
				S: aws.String(orDash(route.Time)),
			},
			"origin": {
				S: aws.String(orDash(route.Origin)),
			},
			"destination": {
				S: aws.String(orDash(route.Destination)),
			},
			"capacity": {
				N: aws.String(strconv.Itoa(route.Capacity)),
			},
		},
	})

	if aerr, ok := err.(awserr.Error); ok && aerr.Code() == dynamodb.ErrCodeConditionalCheckFailedException {
		return ErrRouteExists
	}
	return err
}

func (r *DynamoDBRepository) Find(ctx context.Context, flightID string) (model.Route, error) {
	out, err := r.client.GetItemWithContext(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.table),
		ConsistentRead: aws.Bool(true),
		Key: map[string]*dynamodb.AttributeValue{
			"flight_id": {
				S: aws.String(flightID),
			},
		},
	})
	if err != nil {
		return model.Route{}, err
	}

	if len(out.Item) == 0 {
		return model.Route{}, ErrNoRoutesFound
	}

	routes, err := r.hydrate([]map[string]*dynamodb.AttributeValue{out.Item})
	if err != nil {
		return model.Route{}, err
	}
	return routes[0], nil
}

// List scans the whole table. Items come back unordered, so routes are
// sorted by departure date, time and flight id.
func (r *DynamoDBRepository) List(ctx context.Context) ([]model.Route, error) {
	items := []map[string]*dynamodb.AttributeValue{}
	err := r.client.ScanPagesWithContext(ctx, &dynamodb.ScanInput{
		TableName:      aws.String(r.table),
		ConsistentRead: aws.Bool(true),
	}, func(page *dynamodb.ScanOutput, lastPage bool) bool {
		items = append(items, page.Items...)
		return true
	})
	if err != nil {
		return []model.Route{}, errors.Wrapf(err, "scanning %v", r.table)
	}

	routes, err := r.hydrate(items)
	if err != nil {
		return []model.Route{}, err
	}

	sort.SliceStable(routes, func(i, j int) bool {
		if routes[i].Date != routes[j].Date {
			return routes[i].Date < routes[j].Date
		}
		if routes[i].Time != routes[j].Time {
			return routes[i].Time < routes[j].Time
		}
		return routes[i].FlightID < routes[j].FlightID
	})
	return routes, nil
}

// Flush is a no-op: every Save is already durable.
func (r *DynamoDBRepository) Flush(ctx context.Context) error {
	return nil
}

func (r *DynamoDBRepository) hydrate(items []map[string]*dynamodb.AttributeValue) ([]model.Route, error) {

	routes := make([]model.Route, len(items))
	for i, item := range items {

		if v, ok := item["flight_id"]; ok {
			routes[i].FlightID = *v.S
		}
		if v, ok := item["date"]; ok {
			routes[i].Date = fromDash(*v.S)
		}
		if v, ok := item["time"]; ok {
			routes[i].Time = fromDash(*v.S)
		}
		if v, ok := item["origin"]; ok {
			routes[i].Origin = fromDash(*v.S)
		}
		if v, ok := item["destination"]; ok {
			routes[i].Destination = fromDash(*v.S)
		}
		if v, ok := item["capacity"]; ok {
			capacity, err := strconv.Atoi(*v.N)
			if err != nil {
				return []model.Route{}, errors.Wrapf(err, "capacity of %v", routes[i].FlightID)
			}
			routes[i].Capacity = capacity
		}
	}
	return routes, nil
}

// DynamoDB rejects empty string attributes, so absent values are stored as "-".
func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func fromDash(s string) string {
	if s == "-" {
		return ""
	}
	return s
}

func NewDynamoDBRepository(client *dynamodb.DynamoDB, table string) *DynamoDBRepository {
	return &DynamoDBRepository{
		client: client,
		table:  table,
	}
}
