package db

import (
	"github.com/T-PsyOl/iMove-Workshop/constants"
	"github.com/T-PsyOl/iMove-Workshop/model"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
)

// GetRosterEntries looks up workshop participant metadata keyed by
// stream name. Lookup is best-effort: callers fall back to raw stream
// names when the roster table is unreachable or entries are missing.
func GetRosterEntries(names []string) (map[string]model.RosterEntry, error) {
	res := make(map[string]model.RosterEntry)
	if len(names) == 0 {
		return res, nil
	}

	var keys []map[string]*dynamodb.AttributeValue
	for _, name := range names {
		key := make(map[string]*dynamodb.AttributeValue)
		key["PK"] = &dynamodb.AttributeValue{
			S: aws.String(name),
		}
		keys = append(keys, key)
	}

	endpoint := constants.GetRosterEndpoint()
	sess, err := session.NewSession(&aws.Config{
		Region:   aws.String("localhost"),
		Endpoint: &endpoint,
	})
	if err != nil {
		return nil, err
	}

	client := dynamodb.New(sess)
	table := constants.GetRosterTable()
	input := &dynamodb.BatchGetItemInput{
		RequestItems: map[string]*dynamodb.KeysAndAttributes{
			table: {Keys: keys},
		},
	}
	dbres, err := client.BatchGetItem(input)
	if err != nil {
		return nil, err
	}

	for _, v := range dbres.Responses[table] {
		var entry model.RosterEntry
		if v["DisplayName"] != nil && v["DisplayName"].S != nil {
			entry.DisplayName = *v["DisplayName"].S
		}
		if v["Group"] != nil && v["Group"].S != nil {
			entry.Group = *v["Group"].S
		}
		res[*v["PK"].S] = entry
	}

	return res, nil
}
