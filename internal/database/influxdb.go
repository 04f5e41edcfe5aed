// Package database loads benchmark records from InfluxDB, for setups where
// the result producers write to a bucket instead of dropping JSON files.
// Rows come back as the same flat records the file loaders produce, so the
// aggregator does not care where data came from.
package database

import (
	"context"
	"fmt"
	"os"

	"diskplot/internal/loader"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/sirupsen/logrus"
)

type Client struct {
	client   influxdb2.Client
	queryAPI api.QueryAPI
	bucket   string
	org      string
	logger   *logrus.Logger
}

// NewClientFromEnv builds a client from INFLUXDB_HOST, INFLUXDB_TOKEN,
// INFLUXDB_ORG and INFLUXDB_BUCKET, typically loaded from a .env file.
func NewClientFromEnv(logger *logrus.Logger) (*Client, error) {
	host := os.Getenv("INFLUXDB_HOST")
	token := os.Getenv("INFLUXDB_TOKEN")
	org := os.Getenv("INFLUXDB_ORG")
	bucket := os.Getenv("INFLUXDB_BUCKET")

	if host == "" || token == "" || org == "" || bucket == "" {
		return nil, fmt.Errorf("missing required environment variables for InfluxDB connection")
	}

	client := influxdb2.NewClient(host, token)
	queryAPI := client.QueryAPI(org)

	return &Client{
		client:   client,
		queryAPI: queryAPI,
		bucket:   bucket,
		org:      org,
		logger:   logger,
	}, nil
}

func (c *Client) Close() {
	c.client.Close()
}

// QueryRecords reads every row of a measurement, pivoted so each returned
// record carries the measurement fields as columns next to the tags.
func (c *Client) QueryRecords(ctx context.Context, measurement string) ([]loader.Record, error) {
	c.logger.WithFields(logrus.Fields{
		"bucket":      c.bucket,
		"measurement": measurement,
	}).Debug("Querying benchmark records")

	query := fmt.Sprintf(`
		from(bucket: "%s")
		|> range(start: 0)
		|> filter(fn: (r) => r["_measurement"] == "%s")
		|> pivot(rowKey:["_time"], columnKey: ["_field"], valueColumn: "_value")
		|> sort(columns: ["_time"])
	`, c.bucket, measurement)

	result, err := c.queryAPI.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}

	var records []loader.Record
	for result.Next() {
		row := result.Record()

		rec := make(loader.Record)
		for key, value := range row.Values() {
			switch key {
			case "result", "table", "_start", "_stop", "_time", "_measurement":
				continue
			}
			rec[key] = value
		}
		records = append(records, rec)
	}
	if result.Err() != nil {
		return nil, fmt.Errorf("query iteration failed: %w", result.Err())
	}

	c.logger.WithField("records", len(records)).Debug("Loaded records from InfluxDB")
	return records, nil
}
